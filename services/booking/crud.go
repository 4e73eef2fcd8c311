package booking

import (
	"context"
	"strings"
	"time"

	"coworking/models"
	"coworking/utils"
)

// ListMyBookings returns the actor's bookings ordered by date then start.
func (s *DefaultBookingService) ListMyBookings(ctx context.Context, actor models.Actor) ([]models.Booking, error) {
	bookings, err := s.Bookings.ListByUser(ctx, actor.UserID)
	if err != nil {
		return nil, utils.Transient("list user bookings", err)
	}
	return bookings, nil
}

// ListWorkspaceBookings returns the active bookings of a workspace, optionally
// restricted to one date. Bookings the actor does not own are redacted unless
// the actor is an admin.
func (s *DefaultBookingService) ListWorkspaceBookings(ctx context.Context, actor models.Actor, workspaceID, date string) ([]VisibleBooking, error) {
	date = strings.TrimSpace(date)
	if date != "" {
		if _, err := time.Parse(utils.DateLayout, date); err != nil {
			return nil, ErrInvalidDate
		}
	}

	bookings, err := s.Bookings.ListActiveByWorkspace(ctx, workspaceID, date)
	if err != nil {
		return nil, utils.Transient("list workspace bookings", err)
	}

	visible := make([]VisibleBooking, 0, len(bookings))
	for _, b := range bookings {
		full := actor.Privileged || (actor.UserID != "" && b.UserID == actor.UserID)
		visible = append(visible, VisibleBooking{Booking: b, Redacted: !full})
	}
	return visible, nil
}

// ListAllBookings returns every booking, newest first.
func (s *DefaultBookingService) ListAllBookings(ctx context.Context) ([]models.Booking, error) {
	bookings, err := s.Bookings.ListAll(ctx)
	if err != nil {
		return nil, utils.Transient("list bookings", err)
	}
	return bookings, nil
}
