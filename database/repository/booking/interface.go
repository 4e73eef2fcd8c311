// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"

	"coworking/models"
)

// BookingRepository defines the data access methods used by the booking engine.
type BookingRepository interface {
	// CreateBooking persists a new booking record.
	CreateBooking(ctx context.Context, booking *models.Booking) error
	// GetBookingByID retrieves a booking by its ID; database.ErrNotFound when absent.
	GetBookingByID(ctx context.Context, bookingID string) (*models.Booking, error)
	// UpdateBooking saves a booking in place.
	UpdateBooking(ctx context.Context, booking *models.Booking) error
	// FindActiveByWorkspaceAndDate returns every active booking of a workspace on a date.
	FindActiveByWorkspaceAndDate(ctx context.Context, workspaceID, date string) ([]models.Booking, error)
	// FindActiveByUserAndDate returns the user's active booking on a date, or nil.
	FindActiveByUserAndDate(ctx context.Context, userID, date string) (*models.Booking, error)
	// ListByUser returns the user's bookings ordered by date and start.
	ListByUser(ctx context.Context, userID string) ([]models.Booking, error)
	// ListActiveByWorkspace returns active bookings of a workspace, optionally for one date.
	ListActiveByWorkspace(ctx context.Context, workspaceID, date string) ([]models.Booking, error)
	// ListAll returns every booking, newest first.
	ListAll(ctx context.Context) ([]models.Booking, error)
	// CompleteElapsed marks as completed every active booking dated before today,
	// or dated today with end <= nowMinutes. It returns the modified count.
	CompleteElapsed(ctx context.Context, today string, nowMinutes int) (int64, error)
}
