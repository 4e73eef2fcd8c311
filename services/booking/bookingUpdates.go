// File: services/booking/bookingUpdates.go
package booking

import (
	"context"
	"errors"
	"fmt"

	"coworking/database"
	"coworking/models"
	"coworking/utils"

	"go.uber.org/zap"
)

// CancelBooking moves an active booking to cancelled. Only the owner or an
// admin may cancel.
func (s *DefaultBookingService) CancelBooking(ctx context.Context, actor models.Actor, bookingID string) (*models.Booking, error) {
	b, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !actor.Privileged && b.UserID != actor.UserID {
		return nil, ErrNotAllowed
	}

	unlock, err := s.Locker.Lock(ctx, workspaceLockKey(b.WorkspaceID, b.Date))
	if err != nil {
		return nil, utils.Transient("acquire workspace lock", err)
	}
	defer unlock()

	// Reload under the lock; a concurrent sweep or cancel may have won.
	if b, err = s.getBooking(ctx, bookingID); err != nil {
		return nil, err
	}
	if b.Status != models.BookingStatusActive {
		return nil, ErrBookingNotActive
	}

	b.Status = models.BookingStatusCancelled
	b.UpdatedAt = s.Clock.Now()
	if err := s.Bookings.UpdateBooking(ctx, b); err != nil {
		return nil, utils.Transient("cancel booking", err)
	}

	s.Logger.Info("Booking cancelled", zap.String("bookingId", b.ID), zap.String("by", actor.UserID))
	s.notify(ctx, b.UserID, fmt.Sprintf("Your booking on %s from %s to %s has been cancelled.",
		b.Date, utils.ClockString(b.Start), utils.ClockString(b.End)))

	return b, nil
}

// ExtendBooking moves an active booking to a new interval on the same date.
// Admin only. The price is recomputed from the new interval with the
// flexibility the booking was created with.
func (s *DefaultBookingService) ExtendBooking(ctx context.Context, actor models.Actor, bookingID string, req models.ExtendRequest) (*models.Booking, error) {
	if !actor.Privileged {
		return nil, ErrNotAllowed
	}

	start, err := utils.TimeToMinutes(req.StartTime)
	if err != nil {
		return nil, ErrInvalidTime
	}
	end, err := utils.TimeToMinutes(req.EndTime)
	if err != nil {
		return nil, ErrInvalidTime
	}
	iv := Interval{Start: start, End: end}
	if err := s.checkBusinessHours(iv); err != nil {
		return nil, err
	}

	b, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	unlock, err := s.Locker.Lock(ctx, workspaceLockKey(b.WorkspaceID, b.Date))
	if err != nil {
		return nil, utils.Transient("acquire workspace lock", err)
	}
	defer unlock()

	if b, err = s.getBooking(ctx, bookingID); err != nil {
		return nil, err
	}
	if b.Status != models.BookingStatusActive {
		return nil, ErrBookingNotActive
	}

	existing, err := s.Bookings.FindActiveByWorkspaceAndDate(ctx, b.WorkspaceID, b.Date)
	if err != nil {
		return nil, utils.Transient("load workspace bookings", err)
	}
	for _, other := range existing {
		if other.ID != b.ID && intervalOf(other).Overlaps(iv) {
			return nil, ErrExtendOverlap
		}
	}

	ws, err := s.Workspaces.GetByID(ctx, b.WorkspaceID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrWorkspaceUnavailable
		}
		return nil, utils.Transient("load workspace", err)
	}

	b.Start, b.End = iv.Start, iv.End
	b.Price = CalculatePrice(iv.Start, iv.End, ws.PricePerHour, b.FlexibilityRange > 0, b.FlexibilityRange)
	b.UpdatedAt = s.Clock.Now()
	if err := s.Bookings.UpdateBooking(ctx, b); err != nil {
		return nil, utils.Transient("extend booking", err)
	}

	s.Logger.Info("Booking extended",
		zap.String("bookingId", b.ID),
		zap.Int("start", b.Start),
		zap.Int("end", b.End),
		zap.Float64("price", b.Price),
	)
	s.notify(ctx, b.UserID, fmt.Sprintf("Your booking on %s now runs from %s to %s.",
		b.Date, utils.ClockString(b.Start), utils.ClockString(b.End)))

	return b, nil
}

func (s *DefaultBookingService) getBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	b, err := s.Bookings.GetBookingByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, utils.Transient("load booking", err)
	}
	return b, nil
}
