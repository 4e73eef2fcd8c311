package models

import "time"

// NotificationTypeBooking tags notifications about booking lifecycle events.
const NotificationTypeBooking = "booking"

type Notification struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"user_id" json:"userId"`
	Message   string    `bson:"message" json:"message"`
	Type      string    `bson:"type" json:"type"`
	Read      bool      `bson:"read" json:"read"`
	Deleted   bool      `bson:"deleted" json:"-"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// NotificationPayload is the queued form of a notification.
type NotificationPayload struct {
	UserID  string `json:"userId"`
	Message string `json:"message"`
	Type    string `json:"type"`
}
