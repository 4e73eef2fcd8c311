package booking

import (
	"context"

	"go.uber.org/zap"
)

// CompleteElapsedBookings marks every elapsed active booking as completed and
// returns how many were changed. Store failures are logged and count as zero;
// the next run picks the bookings up again.
func (s *DefaultBookingService) CompleteElapsedBookings(ctx context.Context) int64 {
	today, nowMinutes := s.Settings.today(s.Clock.Now())

	n, err := s.Bookings.CompleteElapsed(ctx, today, nowMinutes)
	if err != nil {
		s.Logger.Error("Completion sweep failed",
			zap.String("today", today),
			zap.Int("nowMinutes", nowMinutes),
			zap.Error(err),
		)
		return 0
	}
	if n > 0 {
		s.Logger.Info("Bookings marked as completed", zap.Int64("count", n))
	}
	return n
}
