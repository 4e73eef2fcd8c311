package models

import "time"

// Booking statuses. Cancelled and completed are terminal.
const (
	BookingStatusActive    = "active"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

// Booking is a reservation of one workspace for one user on one calendar date.
type Booking struct {
	ID                   string    `bson:"id" json:"id"`                                       // Unique booking identifier (UUID)
	UserID               string    `bson:"user_id" json:"user_id"`                             // User who made the booking
	WorkspaceID          string    `bson:"workspace_id" json:"workspace_id"`                   // Workspace that was booked
	Date                 string    `bson:"date" json:"date"`                                   // Booking date in "YYYY-MM-DD" format
	Start                int       `bson:"start" json:"start"`                                 // Start time (minutes from midnight)
	End                  int       `bson:"end" json:"end"`                                     // End time (minutes from midnight)
	IsFlexible           bool      `bson:"is_flexible" json:"is_flexible"`                     // May be shrunk to admit a later request
	FlexibilityRange     int       `bson:"flexibility_range" json:"flexibility_range"`         // Shrink budget granted at creation, minutes
	RemainingFlexibility int       `bson:"remaining_flexibility" json:"remaining_flexibility"` // Unspent shrink budget, minutes
	Price                float64   `bson:"price" json:"price"`                                 // Computed once at creation
	Status               string    `bson:"status" json:"status"`                               // active, cancelled or completed
	CreatedAt            time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt            time.Time `bson:"updated_at" json:"updated_at"`
}

// Duration returns the booked interval length in minutes.
func (b Booking) Duration() int {
	return b.End - b.Start
}

// IsTerminal reports whether no further transition is allowed.
func (b Booking) IsTerminal() bool {
	return b.Status == BookingStatusCancelled || b.Status == BookingStatusCompleted
}

// BookingRequest carries the caller-supplied fields of an admission request.
type BookingRequest struct {
	WorkspaceID      string  `json:"workspace" binding:"required"`
	Date             string  `json:"date" binding:"required"`
	StartTime        string  `json:"startTime" binding:"required"`
	EndTime          string  `json:"endTime" binding:"required"`
	IsFlexible       bool    `json:"isFlexible"`
	FlexibilityRange int     `json:"flexibilityRange"`
	Price            float64 `json:"price"` // advisory, the server recomputes it
}

// ExtendRequest carries the new interval of an extend operation.
type ExtendRequest struct {
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
}

// Actor identifies who performs an operation.
type Actor struct {
	UserID     string
	Privileged bool
}
