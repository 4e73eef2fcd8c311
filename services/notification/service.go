package notification

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"coworking/database"
	notificationRepo "coworking/database/repository/notification"
	"coworking/models"
	"coworking/utils"

	"github.com/google/uuid"
)

var ErrNotificationNotFound = utils.NewAppError(utils.ErrNotFound, "notification_not_found", "notification not found")

// DefaultNotificationService stores notifications in the inbox collection.
type DefaultNotificationService struct {
	Repo notificationRepo.NotificationRepository
}

func NewDefaultNotificationService(repo notificationRepo.NotificationRepository) (*DefaultNotificationService, error) {
	if repo == nil {
		return nil, fmt.Errorf("notification service initialization error: repository is nil")
	}
	return &DefaultNotificationService{Repo: repo}, nil
}

// Notify writes a new unread notification for the user.
func (s *DefaultNotificationService) Notify(ctx context.Context, userID, message, notifType string) error {
	if strings.TrimSpace(userID) == "" {
		return fmt.Errorf("Notify: user id is required")
	}
	now := time.Now()
	n := &models.Notification{
		ID:        uuid.New().String(),
		UserID:    userID,
		Message:   message,
		Type:      notifType,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.Create(ctx, n); err != nil {
		return fmt.Errorf("Notify: failed to store notification for %s: %w", userID, err)
	}
	return nil
}

func (s *DefaultNotificationService) ListNotifications(ctx context.Context, userID string) ([]models.Notification, error) {
	list, err := s.Repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.Transient("list notifications", err)
	}
	return list, nil
}

func (s *DefaultNotificationService) MarkAsRead(ctx context.Context, userID, notificationID string) (*models.Notification, error) {
	n, err := s.Repo.MarkRead(ctx, userID, notificationID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, utils.Transient("mark notification read", err)
	}
	return n, nil
}

func (s *DefaultNotificationService) DeleteNotification(ctx context.Context, userID, notificationID string) error {
	if err := s.Repo.SoftDelete(ctx, userID, notificationID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return ErrNotificationNotFound
		}
		return utils.Transient("delete notification", err)
	}
	return nil
}
