package booking

import (
	"context"
	"testing"

	"coworking/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListWorkspaceBookings_Visibility(t *testing.T) {
	cancelled := active("b3", "u1", 900, 960)
	cancelled.Status = models.BookingStatusCancelled
	env := newTestEnv(t, active("b1", "u1", 600, 720), active("b2", "u2", 780, 840), cancelled)

	mine, err := env.svc.ListWorkspaceBookings(context.Background(), asUser("u1"), testWorkspace, "")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.False(t, mine[0].Redacted)
	assert.True(t, mine[1].Redacted)

	view, ok := mine[1].View().(models.PublicBookingView)
	require.True(t, ok)
	assert.Equal(t, "13:00", view.StartTime)
	assert.Equal(t, "14:00", view.EndTime)

	anon, err := env.svc.ListWorkspaceBookings(context.Background(), models.Actor{}, testWorkspace, testDate)
	require.NoError(t, err)
	for _, v := range anon {
		assert.True(t, v.Redacted)
	}

	all, err := env.svc.ListWorkspaceBookings(context.Background(), asAdmin("root"), testWorkspace, "")
	require.NoError(t, err)
	for _, v := range all {
		assert.False(t, v.Redacted)
		_, full := v.View().(models.BookingResponse)
		assert.True(t, full)
	}
}

func TestListWorkspaceBookings_BadDate(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.ListWorkspaceBookings(context.Background(), asUser("u1"), testWorkspace, "tomorrow")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestListMyBookings_Ordered(t *testing.T) {
	later := active("b2", "u1", 540, 600)
	later.Date = "2030-05-11"
	env := newTestEnv(t, later, active("b1", "u1", 900, 960), active("x", "u2", 600, 660))

	list, err := env.svc.ListMyBookings(context.Background(), asUser("u1"))
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "b1", list[0].ID)
	assert.Equal(t, "b2", list[1].ID)
}
