// Package places proxies the Google Places Text Search API.
// The rest of the application treats search results purely as optional
// enrichment for activity location fields; nothing depends on this data
// being present.
package places

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const textSearchURL = "https://maps.googleapis.com/maps/api/place/textsearch/json"

// Default search bias when the caller supplies no coordinates: Amsterdam.
const (
	defaultLatitude  = "52.3676"
	defaultLongitude = "4.9041"
	searchRadius     = "50000"
	searchLanguage   = "nl"
)

// ErrUpstream is returned when the Places API responds with a non-OK API
// status or an unexpected HTTP status. Handlers map it to 502 Bad Gateway.
var ErrUpstream = errors.New("places upstream error")

// Place is one search candidate, trimmed to the fields the app stores on an
// activity.
type Place struct {
	PlaceID   string   `json:"place_id"`
	Name      string   `json:"name"`
	Address   string   `json:"address"`
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Rating    *float64 `json:"rating,omitempty"`
	PhotoURL  string   `json:"photo_url,omitempty"`
	Types     []string `json:"types"`
}

// Query carries the free-text search input. Type, Lat, and Lng are optional.
type Query struct {
	Text string
	Type string
	Lat  string
	Lng  string
}

// Client calls the Google Places Text Search endpoint.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient constructs a Client with the given API key.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    textSearchURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// NewClientWithBaseURL is NewClient with an overridable endpoint, for tests
// that point the client at a local httptest server.
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	c := NewClient(apiKey)
	c.baseURL = baseURL
	return c
}

// searchResponse mirrors the subset of the Places API response the app reads.
type searchResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Results      []struct {
		PlaceID          string  `json:"place_id"`
		Name             string  `json:"name"`
		FormattedAddress string  `json:"formatted_address"`
		Rating           float64 `json:"rating"`
		Geometry         struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
		Photos []struct {
			PhotoReference string `json:"photo_reference"`
		} `json:"photos"`
		Types []string `json:"types"`
	} `json:"results"`
}

// Search runs a text search biased to the query coordinates (or the default
// location) and returns the candidates. ZERO_RESULTS yields an empty,
// non-nil slice; any other non-OK API status returns ErrUpstream.
func (c *Client) Search(ctx context.Context, q Query) ([]Place, error) {
	lat, lng := q.Lat, q.Lng
	if lat == "" || lng == "" {
		lat, lng = defaultLatitude, defaultLongitude
	}

	params := url.Values{}
	params.Set("query", q.Text)
	params.Set("location", lat+","+lng)
	params.Set("radius", searchRadius)
	params.Set("language", searchLanguage)
	params.Set("key", c.apiKey)
	if q.Type != "" {
		params.Set("type", q.Type)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("places.Client.Search: build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("places.Client.Search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("places.Client.Search: http status %d: %w", resp.StatusCode, ErrUpstream)
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("places.Client.Search: decode: %w", err)
	}

	if body.Status != "OK" && body.Status != "ZERO_RESULTS" {
		return nil, fmt.Errorf("places.Client.Search: api status %s: %w", body.Status, ErrUpstream)
	}

	results := []Place{}
	for _, r := range body.Results {
		p := Place{
			PlaceID:   r.PlaceID,
			Name:      r.Name,
			Address:   r.FormattedAddress,
			Latitude:  r.Geometry.Location.Lat,
			Longitude: r.Geometry.Location.Lng,
			Types:     r.Types,
		}
		if r.Rating > 0 {
			rating := r.Rating
			p.Rating = &rating
		}
		if len(r.Photos) > 0 {
			p.PhotoURL = c.photoURL(r.Photos[0].PhotoReference)
		}
		results = append(results, p)
	}
	return results, nil
}

// photoURL builds the Places photo endpoint URL for a photo reference.
func (c *Client) photoURL(ref string) string {
	params := url.Values{}
	params.Set("maxwidth", "400")
	params.Set("photo_reference", ref)
	params.Set("key", c.apiKey)
	return "https://maps.googleapis.com/maps/api/place/photo?" + params.Encode()
}
