package cron

import (
	"context"
	"time"

	"coworking/config"
	"coworking/services/notification"
	"coworking/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// QueueRedisOpt returns the asynq connection for the notification queue.
func QueueRedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// InitNotificationWorker runs the async notification worker in background and
// returns the server so the caller can shut it down.
func InitNotificationWorker(sink notification.Notifier, logger *zap.Logger) *asynq.Server {
	srv := asynq.NewServer(
		QueueRedisOpt(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendNotification, HandleNotificationTask(sink, logger))

	// Start async worker with retry logic
	go func() {
		logger.Info("Starting notification worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Run(mux)
			if err == nil {
				return
			}
			logger.Error("Notification worker failed to start",
				zap.Int("attempt", attempts),
				zap.Int("maxAttempts", maxAttempts),
				zap.Error(err),
			)
			if attempts == maxAttempts {
				logger.Fatal("Notification worker: max retry attempts reached")
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()

	return srv
}

// HandleNotificationTask persists a queued notification through sink.
func HandleNotificationTask(sink notification.Notifier, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		p, err := tasks.ParseNotificationTask(task)
		if err != nil {
			logger.Error("Invalid notification payload", zap.Error(err))
			// Retrying a malformed payload cannot succeed.
			return asynq.SkipRetry
		}

		if err := sink.Notify(ctx, p.UserID, p.Message, p.Type); err != nil {
			logger.Warn("Failed to persist notification", zap.String("userId", p.UserID), zap.Error(err))
			return err
		}
		return nil
	}
}
