package booking

import (
	"context"
	"testing"

	"coworking/models"
	"coworking/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCancelBooking(t *testing.T) {
	t.Run("owner cancels", func(t *testing.T) {
		env := newTestEnv(t, active("b1", "u1", 600, 720))

		b, err := env.svc.CancelBooking(context.Background(), asUser("u1"), "b1")
		require.NoError(t, err)
		assert.Equal(t, models.BookingStatusCancelled, b.Status)
		assert.Equal(t, models.BookingStatusCancelled, env.repo.get("b1").Status)
		env.notifier.AssertNumberOfCalls(t, "Notify", 1)
	})

	t.Run("admin cancels someone else's booking", func(t *testing.T) {
		env := newTestEnv(t, active("b1", "u1", 600, 720))

		_, err := env.svc.CancelBooking(context.Background(), asAdmin("root"), "b1")
		assert.NoError(t, err)
	})

	t.Run("stranger is rejected", func(t *testing.T) {
		env := newTestEnv(t, active("b1", "u1", 600, 720))

		_, err := env.svc.CancelBooking(context.Background(), asUser("u2"), "b1")
		assert.ErrorIs(t, err, ErrNotAllowed)
		assert.ErrorIs(t, err, utils.ErrPermission)
		assert.Equal(t, models.BookingStatusActive, env.repo.get("b1").Status)
	})

	t.Run("terminal state is final", func(t *testing.T) {
		done := active("b1", "u1", 600, 720)
		done.Status = models.BookingStatusCompleted
		env := newTestEnv(t, done)

		_, err := env.svc.CancelBooking(context.Background(), asUser("u1"), "b1")
		assert.ErrorIs(t, err, ErrBookingNotActive)
		assert.Equal(t, models.BookingStatusCompleted, env.repo.get("b1").Status)
	})

	t.Run("unknown booking", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.svc.CancelBooking(context.Background(), asUser("u1"), "missing")
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestCancelBooking_FreesTheSlot(t *testing.T) {
	env := newTestEnv(t, active("b1", "u1", 600, 720))

	_, err := env.svc.CancelBooking(context.Background(), asUser("u1"), "b1")
	require.NoError(t, err)

	_, err = env.svc.CreateBooking(context.Background(), asUser("u2"), request("10:00", "12:00"))
	assert.NoError(t, err)
}

func TestExtendBooking(t *testing.T) {
	t.Run("admin extends and price is recomputed", func(t *testing.T) {
		b := flexible("b1", "u1", 600, 780, 30)
		b.Price = 275
		env := newTestEnv(t, b)

		got, err := env.svc.ExtendBooking(context.Background(), asAdmin("root"), "b1", models.ExtendRequest{StartTime: "10:00", EndTime: "14:00"})
		require.NoError(t, err)
		assert.Equal(t, 600, got.Start)
		assert.Equal(t, 840, got.End)
		assert.Equal(t, float64(375), got.Price)
		assert.Equal(t, got.Price, env.repo.get("b1").Price)
	})

	t.Run("exhausted flexible booking keeps its discount", func(t *testing.T) {
		b := flexible("b1", "u1", 600, 780, 30)
		b.IsFlexible = false
		b.RemainingFlexibility = 0
		env := newTestEnv(t, b)

		got, err := env.svc.ExtendBooking(context.Background(), asAdmin("root"), "b1", models.ExtendRequest{StartTime: "10:00", EndTime: "13:00"})
		require.NoError(t, err)
		assert.Equal(t, float64(275), got.Price)
	})

	t.Run("regular user is rejected", func(t *testing.T) {
		env := newTestEnv(t, active("b1", "u1", 600, 720))

		_, err := env.svc.ExtendBooking(context.Background(), asUser("u1"), "b1", models.ExtendRequest{StartTime: "10:00", EndTime: "13:00"})
		assert.ErrorIs(t, err, ErrNotAllowed)
	})

	t.Run("overlap with another booking", func(t *testing.T) {
		env := newTestEnv(t, active("b1", "u1", 600, 720), active("b2", "u2", 780, 840))

		_, err := env.svc.ExtendBooking(context.Background(), asAdmin("root"), "b1", models.ExtendRequest{StartTime: "10:00", EndTime: "13:30"})
		assert.ErrorIs(t, err, ErrExtendOverlap)
		assert.Equal(t, 720, env.repo.get("b1").End)
	})

	t.Run("own interval does not count as overlap", func(t *testing.T) {
		env := newTestEnv(t, active("b1", "u1", 600, 720))

		_, err := env.svc.ExtendBooking(context.Background(), asAdmin("root"), "b1", models.ExtendRequest{StartTime: "09:00", EndTime: "12:00"})
		assert.NoError(t, err)
	})

	t.Run("outside business hours", func(t *testing.T) {
		env := newTestEnv(t, active("b1", "u1", 600, 720))

		_, err := env.svc.ExtendBooking(context.Background(), asAdmin("root"), "b1", models.ExtendRequest{StartTime: "10:00", EndTime: "23:00"})
		assert.ErrorIs(t, err, ErrOutsideBusinessHours)
	})

	t.Run("end before start", func(t *testing.T) {
		env := newTestEnv(t, active("b1", "u1", 600, 720))

		_, err := env.svc.ExtendBooking(context.Background(), asAdmin("root"), "b1", models.ExtendRequest{StartTime: "12:00", EndTime: "11:00"})
		assert.ErrorIs(t, err, ErrInvalidInterval)
	})

	t.Run("cancelled booking", func(t *testing.T) {
		b := active("b1", "u1", 600, 720)
		b.Status = models.BookingStatusCancelled
		env := newTestEnv(t, b)

		_, err := env.svc.ExtendBooking(context.Background(), asAdmin("root"), "b1", models.ExtendRequest{StartTime: "10:00", EndTime: "13:00"})
		assert.ErrorIs(t, err, ErrBookingNotActive)
	})
}
