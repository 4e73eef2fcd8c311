package booking

import (
	"context"

	"coworking/models"
)

// AdmissionResult is the committed booking plus the existing flexible
// bookings that were shrunk to make room for it.
type AdmissionResult struct {
	Booking  *models.Booking
	Adjusted []models.Booking
}

// VisibleBooking is a booking as seen by a given actor. Redacted bookings
// must be rendered with the public view only.
type VisibleBooking struct {
	Booking  models.Booking
	Redacted bool
}

// View returns the JSON representation the actor is allowed to see.
func (v VisibleBooking) View() any {
	if v.Redacted {
		return v.Booking.ToPublicView()
	}
	return v.Booking.ToResponse()
}

// BookingService defines the booking lifecycle operations.
type BookingService interface {
	CreateBooking(ctx context.Context, actor models.Actor, req models.BookingRequest) (*AdmissionResult, error)
	CancelBooking(ctx context.Context, actor models.Actor, bookingID string) (*models.Booking, error)
	ExtendBooking(ctx context.Context, actor models.Actor, bookingID string, req models.ExtendRequest) (*models.Booking, error)
	ListMyBookings(ctx context.Context, actor models.Actor) ([]models.Booking, error)
	ListWorkspaceBookings(ctx context.Context, actor models.Actor, workspaceID, date string) ([]VisibleBooking, error)
	ListAllBookings(ctx context.Context) ([]models.Booking, error)
	CompleteElapsedBookings(ctx context.Context) int64
}
