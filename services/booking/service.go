package booking

import (
	bookingRepo "coworking/database/repository/booking"
	workspaceRepo "coworking/database/repository/workspace"
	"coworking/services/notification"

	"go.uber.org/zap"
)

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Bookings   bookingRepo.BookingRepository
	Workspaces workspaceRepo.WorkspaceRepository
	Notifier   notification.Notifier
	Locker     Locker
	Clock      Clock
	Settings   Settings
	Logger     *zap.Logger
}

// NewDefaultBookingService wires the engine. A nil locker, clock or logger
// falls back to an in-process mutex, the system clock and a no-op logger.
func NewDefaultBookingService(
	bookings bookingRepo.BookingRepository,
	workspaces workspaceRepo.WorkspaceRepository,
	notifier notification.Notifier,
	locker Locker,
	clock Clock,
	settings Settings,
	logger *zap.Logger,
) *DefaultBookingService {
	if locker == nil {
		locker = NewKeyedMutex()
	}
	if clock == nil {
		clock = SystemClock{Location: settings.Location}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultBookingService{
		Bookings:   bookings,
		Workspaces: workspaces,
		Notifier:   notifier,
		Locker:     locker,
		Clock:      clock,
		Settings:   settings,
		Logger:     logger,
	}
}
