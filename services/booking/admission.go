package booking

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"coworking/database"
	"coworking/models"
	"coworking/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateBooking admits a booking request. Checks run in a fixed order and the
// first failure is returned. Store reads and writes for one workspace and date
// happen under the workspace lock.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, actor models.Actor, req models.BookingRequest) (*AdmissionResult, error) {
	if math.IsNaN(req.Price) || req.Price <= 0 {
		return nil, ErrInvalidPrice
	}

	ws, err := s.activeWorkspace(ctx, req.WorkspaceID)
	if err != nil {
		return nil, err
	}

	date, iv, err := s.parseRequestInterval(req.Date, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	today, nowMinutes := s.Settings.today(s.Clock.Now())
	if date < today || (date == today && iv.Start <= nowMinutes) {
		return nil, ErrPastBooking
	}

	if err := s.checkBusinessHours(iv); err != nil {
		return nil, err
	}

	if iv.Duration() < MinBookingMinutes {
		return nil, ErrTooShort
	}
	if req.IsFlexible && iv.Duration() < MinFlexibleBookingMinutes {
		return nil, ErrFlexibleTooShort
	}
	if req.FlexibilityRange < 0 {
		return nil, ErrInvalidFlexibility
	}

	result, err := s.admit(ctx, actor, ws, date, iv, req)
	if err != nil {
		return nil, err
	}

	s.notify(ctx, result.Booking.UserID, fmt.Sprintf("Your booking for %s on %s from %s to %s is confirmed.",
		ws.Name, date, utils.ClockString(iv.Start), utils.ClockString(iv.End)))

	return result, nil
}

// admit runs the store-dependent checks and commits under the workspace and
// user locks. Locks are always taken in that order.
func (s *DefaultBookingService) admit(
	ctx context.Context,
	actor models.Actor,
	ws *models.Workspace,
	date string,
	iv Interval,
	req models.BookingRequest,
) (*AdmissionResult, error) {
	unlockWorkspace, err := s.Locker.Lock(ctx, workspaceLockKey(ws.ID, date))
	if err != nil {
		return nil, utils.Transient("acquire workspace lock", err)
	}
	defer unlockWorkspace()

	unlockUser, err := s.Locker.Lock(ctx, userLockKey(actor.UserID, date))
	if err != nil {
		return nil, utils.Transient("acquire user lock", err)
	}
	defer unlockUser()

	if !actor.Privileged {
		mine, err := s.Bookings.FindActiveByUserAndDate(ctx, actor.UserID, date)
		if err != nil {
			return nil, utils.Transient("load user bookings", err)
		}
		if mine != nil {
			return nil, ErrAlreadyBookedToday
		}
	}

	existing, err := s.Bookings.FindActiveByWorkspaceAndDate(ctx, ws.ID, date)
	if err != nil {
		return nil, utils.Transient("load workspace bookings", err)
	}

	if HasHardConflict(existing, iv) {
		return nil, ErrSlotTaken
	}

	var adjusted, originals []models.Booking
	if conflicts := FlexibleConflicts(existing, iv); len(conflicts) > 0 {
		adjustments, err := FindFlexibleAdjustments(conflicts, iv)
		if err != nil {
			return nil, err
		}
		adjusted, originals, err = s.applyAdjustments(ctx, conflicts, adjustments)
		if err != nil {
			return nil, err
		}
	}

	now := s.Clock.Now()
	booking := &models.Booking{
		ID:          uuid.New().String(),
		UserID:      actor.UserID,
		WorkspaceID: ws.ID,
		Date:        date,
		Start:       iv.Start,
		End:         iv.End,
		IsFlexible:  req.IsFlexible,
		Price:       CalculatePrice(iv.Start, iv.End, ws.PricePerHour, req.IsFlexible, req.FlexibilityRange),
		Status:      models.BookingStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if req.IsFlexible {
		booking.FlexibilityRange = req.FlexibilityRange
		booking.RemainingFlexibility = req.FlexibilityRange
	}

	if err := s.Bookings.CreateBooking(ctx, booking); err != nil {
		s.restore(ctx, originals)
		return nil, utils.Transient("create booking", err)
	}

	s.Logger.Info("Booking admitted",
		zap.String("bookingId", booking.ID),
		zap.String("workspaceId", ws.ID),
		zap.String("date", date),
		zap.Int("start", iv.Start),
		zap.Int("end", iv.End),
		zap.Int("shrunk", len(adjusted)),
	)

	return &AdmissionResult{Booking: booking, Adjusted: adjusted}, nil
}

// applyAdjustments persists every shrink. On failure the already written
// bookings are put back before returning.
func (s *DefaultBookingService) applyAdjustments(ctx context.Context, conflicts []models.Booking, adjustments []Adjustment) ([]models.Booking, []models.Booking, error) {
	byID := make(map[string]models.Booking, len(conflicts))
	for _, b := range conflicts {
		byID[b.ID] = b
	}

	adjusted := make([]models.Booking, 0, len(adjustments))
	originals := make([]models.Booking, 0, len(adjustments))
	for _, adj := range adjustments {
		original, ok := byID[adj.BookingID]
		if !ok {
			continue
		}
		updated := original
		ApplyAdjustment(&updated, adj)
		updated.UpdatedAt = s.Clock.Now()

		if err := s.Bookings.UpdateBooking(ctx, &updated); err != nil {
			s.restore(ctx, originals)
			return nil, nil, utils.Transient("shrink flexible booking", err)
		}

		s.Logger.Debug("Flexible booking shrunk",
			zap.String("bookingId", updated.ID),
			zap.String("strategy", adj.Strategy),
			zap.Int("shrink", adj.Shrink),
			zap.Int("remaining", updated.RemainingFlexibility),
		)
		adjusted = append(adjusted, updated)
		originals = append(originals, original)
	}
	return adjusted, originals, nil
}

// restore writes back the given booking snapshots, logging what it cannot undo.
func (s *DefaultBookingService) restore(ctx context.Context, originals []models.Booking) {
	for i := range originals {
		if err := s.Bookings.UpdateBooking(ctx, &originals[i]); err != nil {
			s.Logger.Error("Failed to restore shrunk booking",
				zap.String("bookingId", originals[i].ID),
				zap.Error(err),
			)
		}
	}
}

func (s *DefaultBookingService) activeWorkspace(ctx context.Context, workspaceID string) (*models.Workspace, error) {
	if strings.TrimSpace(workspaceID) == "" {
		return nil, ErrWorkspaceUnavailable
	}
	ws, err := s.Workspaces.GetByID(ctx, workspaceID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrWorkspaceUnavailable
		}
		return nil, utils.Transient("load workspace", err)
	}
	if !ws.IsActive {
		return nil, ErrWorkspaceUnavailable
	}
	return ws, nil
}

// parseRequestInterval normalizes the date and converts both clock strings.
func (s *DefaultBookingService) parseRequestInterval(dateStr, startStr, endStr string) (string, Interval, error) {
	loc := s.Settings.Location
	if loc == nil {
		loc = time.Local
	}
	day, err := time.ParseInLocation(utils.DateLayout, strings.TrimSpace(dateStr), loc)
	if err != nil {
		return "", Interval{}, ErrInvalidDate
	}

	start, err := utils.TimeToMinutes(startStr)
	if err != nil {
		return "", Interval{}, ErrInvalidTime
	}
	end, err := utils.TimeToMinutes(endStr)
	if err != nil {
		return "", Interval{}, ErrInvalidTime
	}
	return day.Format(utils.DateLayout), Interval{Start: start, End: end}, nil
}

func (s *DefaultBookingService) checkBusinessHours(iv Interval) error {
	if iv.Start < s.Settings.OpenMinute || iv.End > s.Settings.CloseMinute {
		return ErrOutsideBusinessHours.WithMessage("bookings are only possible between %s and %s",
			utils.ClockString(s.Settings.OpenMinute), utils.ClockString(s.Settings.CloseMinute))
	}
	if iv.End <= iv.Start {
		return ErrInvalidInterval
	}
	return nil
}

// notify delivers a booking notification. Delivery failures never fail the caller.
func (s *DefaultBookingService) notify(ctx context.Context, userID, message string) {
	if s.Notifier == nil {
		return
	}
	if err := s.Notifier.Notify(ctx, userID, message, models.NotificationTypeBooking); err != nil {
		s.Logger.Warn("Failed to deliver booking notification",
			zap.String("userId", userID),
			zap.Error(err),
		)
	}
}
