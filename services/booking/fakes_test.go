package booking

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"coworking/database"
	"coworking/models"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type memBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]models.Booking
	order    []string

	createErr   error
	updateErr   error
	findErr     error
	completeErr error
	// onFind runs after the workspace read, outside the repo lock.
	onFind func()
}

func newMemBookingRepo(seed ...models.Booking) *memBookingRepo {
	r := &memBookingRepo{bookings: map[string]models.Booking{}}
	for _, b := range seed {
		r.bookings[b.ID] = b
		r.order = append(r.order, b.ID)
	}
	return r
}

func (r *memBookingRepo) get(id string) models.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.bookings[id]
}

func (r *memBookingRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.bookings)
}

func (r *memBookingRepo) CreateBooking(_ context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	r.bookings[b.ID] = *b
	r.order = append(r.order, b.ID)
	return nil
}

func (r *memBookingRepo) GetBookingByID(_ context.Context, id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	return &b, nil
}

func (r *memBookingRepo) UpdateBooking(_ context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.bookings[b.ID]; !ok {
		return database.ErrNotFound
	}
	r.bookings[b.ID] = *b
	return nil
}

func (r *memBookingRepo) FindActiveByWorkspaceAndDate(_ context.Context, workspaceID, date string) ([]models.Booking, error) {
	r.mu.Lock()
	if r.findErr != nil {
		r.mu.Unlock()
		return nil, r.findErr
	}
	var out []models.Booking
	for _, id := range r.order {
		b := r.bookings[id]
		if b.WorkspaceID == workspaceID && b.Date == date && b.Status == models.BookingStatusActive {
			out = append(out, b)
		}
	}
	hook := r.onFind
	r.mu.Unlock()

	if hook != nil {
		hook()
	}
	return out, nil
}

func (r *memBookingRepo) FindActiveByUserAndDate(_ context.Context, userID, date string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range r.order {
		b := r.bookings[id]
		if b.UserID == userID && b.Date == date && b.Status == models.BookingStatusActive {
			return &b, nil
		}
	}
	return nil, nil
}

func (r *memBookingRepo) ListByUser(_ context.Context, userID string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, id := range r.order {
		if b := r.bookings[id]; b.UserID == userID {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Start < out[j].Start
	})
	return out, nil
}

func (r *memBookingRepo) ListActiveByWorkspace(_ context.Context, workspaceID, date string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, id := range r.order {
		b := r.bookings[id]
		if b.WorkspaceID == workspaceID && b.Status == models.BookingStatusActive && (date == "" || b.Date == date) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *memBookingRepo) ListAll(_ context.Context) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Booking, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		out = append(out, r.bookings[r.order[i]])
	}
	return out, nil
}

func (r *memBookingRepo) CompleteElapsed(_ context.Context, today string, nowMinutes int) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.completeErr != nil {
		return 0, r.completeErr
	}
	var n int64
	for id, b := range r.bookings {
		if b.Status != models.BookingStatusActive {
			continue
		}
		if b.Date < today || (b.Date == today && b.End <= nowMinutes) {
			b.Status = models.BookingStatusCompleted
			r.bookings[id] = b
			n++
		}
	}
	return n, nil
}

type memWorkspaceRepo struct {
	workspaces map[string]models.Workspace
	err        error
}

func (r *memWorkspaceRepo) GetByID(_ context.Context, id string) (*models.Workspace, error) {
	if r.err != nil {
		return nil, r.err
	}
	ws, ok := r.workspaces[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	return &ws, nil
}

func (r *memWorkspaceRepo) Create(context.Context, *models.Workspace) error { return nil }
func (r *memWorkspaceRepo) Update(context.Context, *models.Workspace) error { return nil }
func (r *memWorkspaceRepo) List(context.Context, models.WorkspaceFilter) ([]models.Workspace, error) {
	return nil, nil
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) Notify(ctx context.Context, userID, message, notifType string) error {
	args := m.Called(ctx, userID, message, notifType)
	return args.Error(0)
}

const (
	testDate      = "2030-05-10"
	testWorkspace = "ws-1"
)

// testNow is 07:00 on testDate in UTC.
var testNow = time.Date(2030, 5, 10, 7, 0, 0, 0, time.UTC)

type testEnv struct {
	svc      *DefaultBookingService
	repo     *memBookingRepo
	ws       *memWorkspaceRepo
	clock    *fakeClock
	notifier *mockNotifier
}

func newTestEnv(t *testing.T, seed ...models.Booking) *testEnv {
	t.Helper()
	repo := newMemBookingRepo(seed...)
	ws := &memWorkspaceRepo{workspaces: map[string]models.Workspace{
		testWorkspace: {ID: testWorkspace, Name: "Desk 1", PricePerHour: 100, IsActive: true},
		"ws-off":      {ID: "ws-off", Name: "Closed", PricePerHour: 100, IsActive: false},
	}}
	clock := &fakeClock{now: testNow}
	notifier := &mockNotifier{}
	notifier.On("Notify", mock.Anything, mock.Anything, mock.Anything, models.NotificationTypeBooking).Return(nil).Maybe()

	settings := DefaultSettings()
	settings.Location = time.UTC

	svc := NewDefaultBookingService(repo, ws, notifier, NewKeyedMutex(), clock, settings, zap.NewNop())
	return &testEnv{svc: svc, repo: repo, ws: ws, clock: clock, notifier: notifier}
}

func active(id, user string, start, end int) models.Booking {
	return models.Booking{
		ID:          id,
		UserID:      user,
		WorkspaceID: testWorkspace,
		Date:        testDate,
		Start:       start,
		End:         end,
		Status:      models.BookingStatusActive,
	}
}

func flexible(id, user string, start, end, flex int) models.Booking {
	b := active(id, user, start, end)
	b.IsFlexible = true
	b.FlexibilityRange = flex
	b.RemainingFlexibility = flex
	return b
}

func request(start, end string) models.BookingRequest {
	return models.BookingRequest{
		WorkspaceID: testWorkspace,
		Date:        testDate,
		StartTime:   start,
		EndTime:     end,
		Price:       1,
	}
}

func asUser(id string) models.Actor { return models.Actor{UserID: id} }
func asAdmin(id string) models.Actor { return models.Actor{UserID: id, Privileged: true} }
