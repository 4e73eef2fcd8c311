package notification

import (
	"context"
	"fmt"

	"coworking/models"
	"coworking/services/tasks"

	"github.com/hibiken/asynq"
)

// Enqueuer is the part of *asynq.Client used to queue notifications.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// QueueNotifier hands notifications to the asynq worker instead of writing them inline.
type QueueNotifier struct {
	client Enqueuer
}

func NewQueueNotifier(client Enqueuer) *QueueNotifier {
	return &QueueNotifier{client: client}
}

func (q *QueueNotifier) Notify(ctx context.Context, userID, message, notifType string) error {
	task, opts, err := tasks.NewNotificationTask(models.NotificationPayload{
		UserID:  userID,
		Message: message,
		Type:    notifType,
	})
	if err != nil {
		return fmt.Errorf("QueueNotifier: failed to build task: %w", err)
	}
	if _, err := q.client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("QueueNotifier: failed to enqueue notification for %s: %w", userID, err)
	}
	return nil
}
