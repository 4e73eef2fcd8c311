// models/booking_response.go
package models

import (
	"time"

	"coworking/utils"
)

// BookingResponse is the full view of a booking, with wall-clock times.
type BookingResponse struct {
	ID                   string    `json:"id"`
	UserID               string    `json:"userId"`
	WorkspaceID          string    `json:"workspaceId"`
	Date                 string    `json:"date"`
	StartTime            string    `json:"startTime"`
	EndTime              string    `json:"endTime"`
	IsFlexible           bool      `json:"isFlexible"`
	FlexibilityRange     int       `json:"flexibilityRange"`
	RemainingFlexibility int       `json:"remainingFlexibility"`
	Price                float64   `json:"price"`
	Status               string    `json:"status"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

// PublicBookingView is what anonymous users and non-owners see of a booking.
type PublicBookingView struct {
	ID               string `json:"id"`
	WorkspaceID      string `json:"workspaceId"`
	Date             string `json:"date"`
	StartTime        string `json:"startTime"`
	EndTime          string `json:"endTime"`
	IsFlexible       bool   `json:"isFlexible"`
	FlexibilityRange int    `json:"flexibilityRange"`
}

// ToResponse renders the full view.
func (b Booking) ToResponse() BookingResponse {
	return BookingResponse{
		ID:                   b.ID,
		UserID:               b.UserID,
		WorkspaceID:          b.WorkspaceID,
		Date:                 b.Date,
		StartTime:            utils.ClockString(b.Start),
		EndTime:              utils.ClockString(b.End),
		IsFlexible:           b.IsFlexible,
		FlexibilityRange:     b.FlexibilityRange,
		RemainingFlexibility: b.RemainingFlexibility,
		Price:                b.Price,
		Status:               b.Status,
		CreatedAt:            b.CreatedAt,
		UpdatedAt:            b.UpdatedAt,
	}
}

// ToPublicView renders the redacted view.
func (b Booking) ToPublicView() PublicBookingView {
	return PublicBookingView{
		ID:               b.ID,
		WorkspaceID:      b.WorkspaceID,
		Date:             b.Date,
		StartTime:        utils.ClockString(b.Start),
		EndTime:          utils.ClockString(b.End),
		IsFlexible:       b.IsFlexible,
		FlexibilityRange: b.FlexibilityRange,
	}
}
