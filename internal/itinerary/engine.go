// Package itinerary implements the ordering engine for trip activities.
//
// The engine is a pure computation over an in-memory snapshot of a trip's
// days: it never touches storage, holds no locks, and returns fresh values
// instead of mutating its inputs. Callers apply the result optimistically to
// the view and commit the change list to storage as a single batch write.
package itinerary

import (
	"errors"
	"slices"

	"github.com/google/uuid"

	"github.com/MrAssie/reisdagboek/internal/domain"
)

// ErrInvalidPosition is returned by ApplyMove when a move references an
// unknown day or an out-of-range index. Indices are rejected, never clamped:
// the drag layer only ever produces in-range positions, so an out-of-range
// value means the caller's snapshot is stale and must be re-fetched.
var ErrInvalidPosition = errors.New("invalid position")

// Move describes dragging one activity from a source day/position to a
// destination day/position. Source and destination may be the same day.
// Indices are zero-based positions in the day's activity sequence ordered by
// Activity.Order ascending.
type Move struct {
	SourceDayID uuid.UUID `json:"source_day_id"`
	SourceIndex int       `json:"source_index"`
	DestDayID   uuid.UUID `json:"dest_day_id"`
	DestIndex   int       `json:"dest_index"`
}

// Change records the new placement of a single activity whose (day, order)
// pair differs from its pre-move placement. The batch of changes for one move
// is the minimal persistence write: days the move never touched contribute
// nothing.
type Change struct {
	ActivityID uuid.UUID
	DayID      uuid.UUID
	Order      int
}

// ApplyMove computes the itinerary state after mv.
//
// For every day the move touches the Order values are reassigned densely
// (0..n-1 in sequence order), so the per-day ordering invariant holds in the
// result regardless of gaps or duplicates in the input. Untouched days are
// carried over unchanged.
//
// The returned day list is a fresh slice safe to swap into the view
// wholesale; the input is not modified. A move to the same day and same
// index returns an empty change list.
func ApplyMove(days []domain.DayPlan, mv Move) ([]domain.DayPlan, []Change, error) {
	srcIdx := dayIndex(days, mv.SourceDayID)
	dstIdx := dayIndex(days, mv.DestDayID)
	if srcIdx < 0 || dstIdx < 0 {
		return nil, nil, ErrInvalidPosition
	}

	src := canonical(days[srcIdx].Activities)
	if mv.SourceIndex < 0 || mv.SourceIndex >= len(src) {
		return nil, nil, ErrInvalidPosition
	}

	sameDay := mv.SourceDayID == mv.DestDayID

	// The destination index ranges over the destination sequence after the
	// source activity has been removed, hence len-1 when moving within one day.
	destLen := len(days[dstIdx].Activities)
	if sameDay {
		destLen = len(src) - 1
	}
	if mv.DestIndex < 0 || mv.DestIndex > destLen {
		return nil, nil, ErrInvalidPosition
	}

	// Remember the pre-move placement of every activity in the touched days
	// so the change list can be limited to activities that actually moved.
	before := placementIndex(days[srcIdx], days[dstIdx])

	moved := src[mv.SourceIndex]
	src = slices.Delete(src, mv.SourceIndex, mv.SourceIndex+1)

	var dst []domain.Activity
	if sameDay {
		dst = src
	} else {
		dst = canonical(days[dstIdx].Activities)
	}
	dst = slices.Insert(dst, mv.DestIndex, moved)

	out := slices.Clone(days)
	var changes []Change
	if sameDay {
		out[srcIdx].Activities = renumber(dst, mv.SourceDayID)
		changes = diff(out[srcIdx].Activities, before)
	} else {
		out[srcIdx].Activities = renumber(src, mv.SourceDayID)
		out[dstIdx].Activities = renumber(dst, mv.DestDayID)
		changes = diff(out[srcIdx].Activities, before)
		changes = append(changes, diff(out[dstIdx].Activities, before)...)
	}

	return out, changes, nil
}

// Densify returns the change list that restores the dense 0..n-1 order
// invariant for a single day, e.g. after an activity was deleted from the
// middle of the sequence. Activities already at their dense position
// contribute no change.
func Densify(day domain.DayPlan) []Change {
	before := placementIndex(day)
	return diff(renumber(canonical(day.Activities), day.Day.ID), before)
}

// placement is an activity's (day, order) pair at a point in time.
type placement struct {
	dayID uuid.UUID
	order int
}

// placementIndex maps every activity in the given days to its current placement.
func placementIndex(days ...domain.DayPlan) map[uuid.UUID]placement {
	idx := make(map[uuid.UUID]placement)
	for _, d := range days {
		for _, a := range d.Activities {
			idx[a.ID] = placement{dayID: a.DayID, order: a.Order}
		}
	}
	return idx
}

// canonical returns a copy of acts sorted by Order ascending.
// The sort is stable so duplicate Order values (a broken invariant in the
// input) resolve deterministically instead of depending on map iteration.
func canonical(acts []domain.Activity) []domain.Activity {
	out := slices.Clone(acts)
	slices.SortStableFunc(out, func(a, b domain.Activity) int {
		return a.Order - b.Order
	})
	return out
}

// renumber assigns dayID and dense order values (position in slice) to every
// activity in seq, returning seq for convenience.
func renumber(seq []domain.Activity, dayID uuid.UUID) []domain.Activity {
	for i := range seq {
		seq[i].DayID = dayID
		seq[i].Order = i
	}
	return seq
}

// diff returns one Change per activity in seq whose placement differs from
// the recorded pre-move placement.
func diff(seq []domain.Activity, before map[uuid.UUID]placement) []Change {
	var changes []Change
	for _, a := range seq {
		prev, ok := before[a.ID]
		if ok && prev.dayID == a.DayID && prev.order == a.Order {
			continue
		}
		changes = append(changes, Change{ActivityID: a.ID, DayID: a.DayID, Order: a.Order})
	}
	return changes
}

// dayIndex returns the position of the day with the given ID, or -1.
func dayIndex(days []domain.DayPlan, id uuid.UUID) int {
	return slices.IndexFunc(days, func(d domain.DayPlan) bool {
		return d.Day.ID == id
	})
}
