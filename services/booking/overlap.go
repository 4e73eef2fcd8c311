package booking

import "coworking/models"

// Interval is a half-open [Start, End) range of minutes of day.
type Interval struct {
	Start int
	End   int
}

// Duration returns the interval length in minutes.
func (iv Interval) Duration() int {
	return iv.End - iv.Start
}

// Overlaps reports whether two half-open intervals share at least one minute.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start < other.End && other.Start < iv.End
}

func intervalOf(b models.Booking) Interval {
	return Interval{Start: b.Start, End: b.End}
}

// HasHardConflict reports whether any non-flexible booking overlaps iv.
func HasHardConflict(existing []models.Booking, iv Interval) bool {
	for _, b := range existing {
		if !b.IsFlexible && intervalOf(b).Overlaps(iv) {
			return true
		}
	}
	return false
}

// FlexibleConflicts returns the flexible bookings that overlap iv.
func FlexibleConflicts(existing []models.Booking, iv Interval) []models.Booking {
	var conflicts []models.Booking
	for _, b := range existing {
		if b.IsFlexible && intervalOf(b).Overlaps(iv) {
			conflicts = append(conflicts, b)
		}
	}
	return conflicts
}
