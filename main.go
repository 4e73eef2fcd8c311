package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"coworking/config"
	"coworking/cron"
	"coworking/database"
	bookingRepo "coworking/database/repository/booking"
	notificationRepo "coworking/database/repository/notification"
	workspaceRepo "coworking/database/repository/workspace"
	"coworking/handlers"
	"coworking/routes"
	"coworking/services/booking"
	"coworking/services/notification"
	"coworking/services/workspace"
	"coworking/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	database.InitDB()
	db := database.Database()

	// repositories.
	bookings := bookingRepo.NewMongoBookingRepo(db)
	workspaces := workspaceRepo.NewMongoWorkspaceRepo(db)
	notifications := notificationRepo.NewMongoNotificationRepo(db)

	// services.
	notificationService, err := notification.NewDefaultNotificationService(notifications)
	if err != nil {
		logger.Fatal("main: failed to initialize notification service", zap.Error(err))
	}

	var redisClients []*redis.Client
	var notifier notification.Notifier = notificationService
	var queueClient *asynq.Client
	var worker *asynq.Server
	if config.AppConfig.NotificationMode == "queue" {
		queueClient = asynq.NewClient(cron.QueueRedisOpt())
		notifier = notification.NewQueueNotifier(queueClient)
		worker = cron.InitNotificationWorker(notificationService, logger)
	}

	var locker booking.Locker
	if config.AppConfig.LockBackend == "redis" {
		lockClient := utils.GetLockClient()
		redisClients = append(redisClients, lockClient)
		locker = booking.NewRedisLocker(lockClient)
	} else {
		locker = booking.NewKeyedMutex()
	}

	settings, err := booking.NewSettings(config.AppConfig.Timezone, config.AppConfig.BusinessOpen, config.AppConfig.BusinessClose)
	if err != nil {
		logger.Fatal("main: invalid scheduling settings", zap.Error(err))
	}

	bookingService := booking.NewDefaultBookingService(
		bookings,
		workspaces,
		notifier,
		locker,
		booking.SystemClock{Location: settings.Location},
		settings,
		logger.Named("booking"),
	)
	workspaceService := workspace.NewDefaultWorkspaceService(workspaces, logger.Named("workspace"))

	completionCron, err := cron.StartCompletionJob(config.AppConfig.CompletionSchedule, bookingService, logger.Named("completion"))
	if err != nil {
		logger.Fatal("main: invalid completion schedule", zap.String("schedule", config.AppConfig.CompletionSchedule), zap.Error(err))
	}

	monitorCtx, stopMonitor := context.WithCancel(context.Background())
	utils.StartHealthMonitor(monitorCtx, redisClients, database.MongoClient)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Booking:      handlers.NewBookingHandler(bookingService),
		Workspace:    handlers.NewWorkspaceHandler(workspaceService),
		Notification: handlers.NewNotificationHandler(notificationService),
	}

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}

	// Let a running sweep finish before the store goes away.
	<-completionCron.Stop().Done()
	stopMonitor()

	if worker != nil {
		worker.Shutdown()
	}
	if queueClient != nil {
		if err := queueClient.Close(); err != nil {
			logger.Warn("main: failed to close queue client", zap.Error(err))
		}
	}
	for _, c := range redisClients {
		_ = c.Close()
	}
	if err := database.CloseDB(ctx); err != nil {
		logger.Warn("main: failed to disconnect MongoDB", zap.Error(err))
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
