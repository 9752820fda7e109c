package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrAssie/reisdagboek/internal/domain"
)

// BudgetItemRequest is the body of the budget item create and update endpoints.
// Category is an open string; an empty currency defaults to EUR.
type BudgetItemRequest struct {
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency,omitempty"`
	Paid     bool            `json:"paid"`
}

// handleGetBudget handles GET /trips/{tripID}/budget.
// The response is the derived summary plus the raw items, recomputed from
// the full item collection on every call.
func (s *Server) handleGetBudget(w http.ResponseWriter, r *http.Request) {
	tripID, err := uuidParam(r, "tripID")
	if err != nil {
		writeJSON(w, http.StatusNotFound, notFoundBody("trip not found"))
		return
	}

	overview, err := s.budget.Overview(r.Context(), tripID)
	if err != nil {
		writeError(w, err, "trip not found")
		return
	}

	writeJSON(w, http.StatusOK, overview)
}

// handleCreateBudgetItem handles POST /trips/{tripID}/budget.
func (s *Server) handleCreateBudgetItem(w http.ResponseWriter, r *http.Request) {
	tripID, err := uuidParam(r, "tripID")
	if err != nil {
		writeJSON(w, http.StatusNotFound, notFoundBody("trip not found"))
		return
	}

	var req BudgetItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("invalid request body: "+err.Error()))
		return
	}

	created, err := s.budget.CreateItem(r.Context(), requestToBudgetItem(tripID, uuid.Nil, req))
	if err != nil {
		writeError(w, err, "trip not found")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// handleUpdateBudgetItem handles PUT /trips/{tripID}/budget/{itemID}.
func (s *Server) handleUpdateBudgetItem(w http.ResponseWriter, r *http.Request) {
	tripID, itemID, ok := budgetItemParams(w, r)
	if !ok {
		return
	}

	var req BudgetItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("invalid request body: "+err.Error()))
		return
	}

	updated, err := s.budget.UpdateItem(r.Context(), requestToBudgetItem(tripID, itemID, req))
	if err != nil {
		writeError(w, err, "budget item not found")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// handleToggleBudgetItemPaid handles POST /trips/{tripID}/budget/{itemID}/toggle-paid.
// It flips the paid flag and returns the updated item.
func (s *Server) handleToggleBudgetItemPaid(w http.ResponseWriter, r *http.Request) {
	tripID, itemID, ok := budgetItemParams(w, r)
	if !ok {
		return
	}

	updated, err := s.budget.TogglePaid(r.Context(), tripID, itemID)
	if err != nil {
		writeError(w, err, "budget item not found")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// handleDeleteBudgetItem handles DELETE /trips/{tripID}/budget/{itemID}.
func (s *Server) handleDeleteBudgetItem(w http.ResponseWriter, r *http.Request) {
	tripID, itemID, ok := budgetItemParams(w, r)
	if !ok {
		return
	}

	if err := s.budget.DeleteItem(r.Context(), tripID, itemID); err != nil {
		writeError(w, err, "budget item not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// budgetItemParams parses the tripID and itemID URL parameters, answering
// 404 itself when either is malformed.
func budgetItemParams(w http.ResponseWriter, r *http.Request) (tripID, itemID uuid.UUID, ok bool) {
	tripID, err := uuidParam(r, "tripID")
	if err != nil {
		writeJSON(w, http.StatusNotFound, notFoundBody("trip not found"))
		return uuid.Nil, uuid.Nil, false
	}
	itemID, err = uuidParam(r, "itemID")
	if err != nil {
		writeJSON(w, http.StatusNotFound, notFoundBody("budget item not found"))
		return uuid.Nil, uuid.Nil, false
	}
	return tripID, itemID, true
}

// requestToBudgetItem converts a BudgetItemRequest into a domain.BudgetItem
// with the given IDs (uuid.Nil item ID for creates).
func requestToBudgetItem(tripID, itemID uuid.UUID, req BudgetItemRequest) domain.BudgetItem {
	currency := req.Currency
	if currency == "" {
		currency = "EUR"
	}
	return domain.BudgetItem{
		ID:       itemID,
		TripID:   tripID,
		Name:     req.Name,
		Category: req.Category,
		Amount:   req.Amount,
		Currency: currency,
		Paid:     req.Paid,
	}
}
