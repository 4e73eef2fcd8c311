package notificationRepo

import (
	"context"

	"coworking/models"
)

// NotificationRepository stores per-user notifications.
type NotificationRepository interface {
	Create(ctx context.Context, n *models.Notification) error
	// ListByUser returns the user's non-deleted notifications, newest first.
	ListByUser(ctx context.Context, userID string) ([]models.Notification, error)
	// MarkRead flags a notification of the user as read; database.ErrNotFound when absent.
	MarkRead(ctx context.Context, userID, id string) (*models.Notification, error)
	// SoftDelete hides a notification of the user; database.ErrNotFound when absent.
	SoftDelete(ctx context.Context, userID, id string) error
}
