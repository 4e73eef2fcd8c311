package booking

import (
	"coworking/models"
)

// MinShrunkMinutes is the shortest interval a flexible booking may be shrunk to.
const MinShrunkMinutes = 60

// Shrink strategies, tried in this order.
const (
	StrategyEndShrink   = "end"
	StrategyStartShrink = "start"
	StrategyTwoSided    = "two_sided"
)

// Adjustment is the shrink to apply to one existing flexible booking so that
// a new request can be admitted.
type Adjustment struct {
	BookingID string
	Strategy  string
	NewStart  int
	NewEnd    int
	// Shrink is the number of minutes taken from the booking's remaining flexibility.
	Shrink int
	// MakeInflexible is set when Shrink exhausts the remaining flexibility exactly.
	MakeInflexible bool
}

// FindFlexibleAdjustments computes, for every flexible booking in existing that
// overlaps req, the shrink that makes room for req. The decision is
// all-or-nothing: if any overlapping flexible booking cannot be shrunk, or no
// flexible booking overlaps at all, it returns ErrNoFlexibleSolution.
// Non-flexible bookings are ignored; callers reject hard conflicts first.
func FindFlexibleAdjustments(existing []models.Booking, req Interval) ([]Adjustment, error) {
	var adjustments []Adjustment

	for _, b := range existing {
		if !b.IsFlexible || !intervalOf(b).Overlaps(req) {
			continue
		}
		adj, ok := shrinkToFit(b, req)
		if !ok {
			return nil, ErrNoFlexibleSolution
		}
		adjustments = append(adjustments, adj)
	}

	if len(adjustments) == 0 {
		return nil, ErrNoFlexibleSolution
	}
	return adjustments, nil
}

// shrinkToFit tries end-shrink, start-shrink and two-sided shrink in order and
// returns the first that fits both the flexibility budget and the floor.
func shrinkToFit(b models.Booking, req Interval) (Adjustment, bool) {
	bStart, bEnd := b.Start, b.End
	flex := b.RemainingFlexibility

	fits := func(shrink, resulting int) bool {
		return shrink <= flex && resulting >= MinShrunkMinutes
	}
	adjustment := func(strategy string, start, end, shrink int) Adjustment {
		return Adjustment{
			BookingID:      b.ID,
			Strategy:       strategy,
			NewStart:       start,
			NewEnd:         end,
			Shrink:         shrink,
			MakeInflexible: shrink == flex,
		}
	}

	// The request starts inside the booking: cut the booking's tail.
	if req.Start >= bStart && req.Start < bEnd {
		shrink := bEnd - req.Start
		if fits(shrink, req.Start-bStart) {
			return adjustment(StrategyEndShrink, bStart, req.Start, shrink), true
		}
	}

	// The request ends inside the booking: cut the booking's head.
	if req.End > bStart && req.End <= bEnd {
		shrink := req.End - bStart
		if fits(shrink, bEnd-req.End) {
			return adjustment(StrategyStartShrink, req.End, bEnd, shrink), true
		}
	}

	// The request lies strictly inside the booking: pull both edges in to the
	// request boundaries.
	if req.Start > bStart && req.End < bEnd {
		shrink := (req.Start - bStart) + (bEnd - req.End)
		if fits(shrink, req.Duration()) {
			return adjustment(StrategyTwoSided, req.Start, req.End, shrink), true
		}
	}

	return Adjustment{}, false
}

// ApplyAdjustment mutates b in place: new interval, consumed flexibility, and
// the flexible flag cleared once the budget is spent.
func ApplyAdjustment(b *models.Booking, adj Adjustment) {
	b.Start = adj.NewStart
	b.End = adj.NewEnd

	if !b.IsFlexible {
		return
	}
	b.RemainingFlexibility = max(0, b.RemainingFlexibility-adj.Shrink)
	if b.RemainingFlexibility == 0 || adj.MakeInflexible {
		b.IsFlexible = false
	}
}
