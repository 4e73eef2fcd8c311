package notification

import (
	"context"

	"coworking/models"
)

// Notifier delivers a message to a user. Callers treat delivery as best effort.
type Notifier interface {
	Notify(ctx context.Context, userID, message, notifType string) error
}

// NotificationService is the user-facing notification inbox.
type NotificationService interface {
	Notifier
	ListNotifications(ctx context.Context, userID string) ([]models.Notification, error)
	MarkAsRead(ctx context.Context, userID, notificationID string) (*models.Notification, error)
	DeleteNotification(ctx context.Context, userID, notificationID string) error
}
