package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"coworking/config"
	"coworking/handlers"
	"coworking/models"
	"coworking/routes"
	"coworking/services/booking"
	"coworking/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockBookingService struct {
	mock.Mock
}

func (m *mockBookingService) CreateBooking(ctx context.Context, actor models.Actor, req models.BookingRequest) (*booking.AdmissionResult, error) {
	args := m.Called(actor, req)
	res, _ := args.Get(0).(*booking.AdmissionResult)
	return res, args.Error(1)
}

func (m *mockBookingService) CancelBooking(ctx context.Context, actor models.Actor, id string) (*models.Booking, error) {
	args := m.Called(actor, id)
	b, _ := args.Get(0).(*models.Booking)
	return b, args.Error(1)
}

func (m *mockBookingService) ExtendBooking(ctx context.Context, actor models.Actor, id string, req models.ExtendRequest) (*models.Booking, error) {
	args := m.Called(actor, id, req)
	b, _ := args.Get(0).(*models.Booking)
	return b, args.Error(1)
}

func (m *mockBookingService) ListMyBookings(ctx context.Context, actor models.Actor) ([]models.Booking, error) {
	args := m.Called(actor)
	list, _ := args.Get(0).([]models.Booking)
	return list, args.Error(1)
}

func (m *mockBookingService) ListWorkspaceBookings(ctx context.Context, actor models.Actor, workspaceID, date string) ([]booking.VisibleBooking, error) {
	args := m.Called(actor, workspaceID, date)
	list, _ := args.Get(0).([]booking.VisibleBooking)
	return list, args.Error(1)
}

func (m *mockBookingService) ListAllBookings(ctx context.Context) ([]models.Booking, error) {
	args := m.Called()
	list, _ := args.Get(0).([]models.Booking)
	return list, args.Error(1)
}

func (m *mockBookingService) CompleteElapsedBookings(ctx context.Context) int64 {
	return int64(m.Called().Int(0))
}

func newRouter(t *testing.T, svc booking.BookingService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.AppConfig.JWTSecret = "test-secret"
	config.AppConfig.MaxRequestsPerMin = 10000

	r := gin.New()
	routes.RegisterRoutes(r, &handlers.HandlerBundle{
		Booking:      handlers.NewBookingHandler(svc),
		Workspace:    handlers.NewWorkspaceHandler(nil),
		Notification: handlers.NewNotificationHandler(nil),
	})
	return r
}

func token(t *testing.T, userID, role string) string {
	t.Helper()
	tok, err := utils.GenerateToken(userID, role, time.Hour)
	require.NoError(t, err)
	return "Bearer " + tok
}

func do(r *gin.Engine, method, path, auth, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) utils.ErrorResponse {
	t.Helper()
	var body utils.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestCreateBookingHandler_Created(t *testing.T) {
	svc := &mockBookingService{}
	r := newRouter(t, svc)

	created := &models.Booking{ID: "b1", UserID: "u1", WorkspaceID: "ws-1", Date: "2030-05-10", Start: 540, End: 660, Price: 200, Status: models.BookingStatusActive}
	svc.On("CreateBooking", models.Actor{UserID: "u1"}, mock.MatchedBy(func(req models.BookingRequest) bool {
		return req.WorkspaceID == "ws-1" && req.StartTime == "09:00" && req.EndTime == "11:00"
	})).Return(&booking.AdmissionResult{Booking: created}, nil).Once()

	body := `{"workspace":"ws-1","date":"2030-05-10","startTime":"09:00","endTime":"11:00","price":200}`
	w := do(r, http.MethodPost, "/api/bookings", token(t, "u1", utils.RoleUser), body)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp struct {
		Booking  models.BookingResponse   `json:"booking"`
		Adjusted []models.BookingResponse `json:"adjusted"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "b1", resp.Booking.ID)
	assert.Equal(t, "09:00", resp.Booking.StartTime)
	assert.Equal(t, "11:00", resp.Booking.EndTime)
	assert.Empty(t, resp.Adjusted)
	svc.AssertExpectations(t)
}

func TestCreateBookingHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{booking.ErrInvalidPrice, http.StatusBadRequest, "invalid_price"},
		{booking.ErrWorkspaceUnavailable, http.StatusNotFound, "workspace_unavailable"},
		{booking.ErrSlotTaken, http.StatusConflict, "slot_taken"},
		{booking.ErrNoFlexibleSolution, http.StatusConflict, "no_flexible_solution"},
		{booking.ErrAlreadyBookedToday, http.StatusConflict, "already_booked_today"},
		{utils.Transient("load bookings", assert.AnError), http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			svc := &mockBookingService{}
			r := newRouter(t, svc)
			svc.On("CreateBooking", mock.Anything, mock.Anything).Return(nil, tt.err)

			body := `{"workspace":"ws-1","date":"2030-05-10","startTime":"09:00","endTime":"11:00","price":1}`
			w := do(r, http.MethodPost, "/api/bookings", token(t, "u1", utils.RoleUser), body)

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.code, decodeError(t, w).Code)
		})
	}
}

func TestCreateBookingHandler_Unauthenticated(t *testing.T) {
	svc := &mockBookingService{}
	r := newRouter(t, svc)

	w := do(r, http.MethodPost, "/api/bookings", "", `{}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(r, http.MethodPost, "/api/bookings", "Bearer garbage", `{}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	svc.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
}

func TestCreateBookingHandler_BadBody(t *testing.T) {
	svc := &mockBookingService{}
	r := newRouter(t, svc)

	w := do(r, http.MethodPost, "/api/bookings", token(t, "u1", utils.RoleUser), `{"workspace":"ws-1"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_input", decodeError(t, w).Code)
}

func TestAdminRoutes_RequireAdmin(t *testing.T) {
	svc := &mockBookingService{}
	r := newRouter(t, svc)

	w := do(r, http.MethodPatch, "/api/bookings/mark-completed", token(t, "u1", utils.RoleUser), "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	svc.On("CompleteElapsedBookings").Return(4).Once()
	w = do(r, http.MethodPatch, "/api/bookings/mark-completed", token(t, "root", utils.RoleAdmin), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"completed":4}`, w.Body.String())
}

func TestExtendBookingHandler(t *testing.T) {
	svc := &mockBookingService{}
	r := newRouter(t, svc)

	extended := &models.Booking{ID: "b1", Start: 600, End: 840, Price: 400, Status: models.BookingStatusActive}
	svc.On("ExtendBooking", models.Actor{UserID: "root", Privileged: true}, "b1",
		models.ExtendRequest{StartTime: "10:00", EndTime: "14:00"}).Return(extended, nil).Once()

	w := do(r, http.MethodPatch, "/api/bookings/b1/extend", token(t, "root", utils.RoleAdmin), `{"startTime":"10:00","endTime":"14:00"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "14:00", resp.EndTime)
	assert.Equal(t, float64(400), resp.Price)
}

func TestCancelBookingHandler_Forbidden(t *testing.T) {
	svc := &mockBookingService{}
	r := newRouter(t, svc)
	svc.On("CancelBooking", models.Actor{UserID: "u2"}, "b1").Return(nil, booking.ErrNotAllowed)

	w := do(r, http.MethodPatch, "/api/bookings/b1/cancel", token(t, "u2", utils.RoleUser), "")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "not_allowed", decodeError(t, w).Code)
}

func TestListWorkspaceBookingsHandler_Anonymous(t *testing.T) {
	svc := &mockBookingService{}
	r := newRouter(t, svc)

	b := models.Booking{ID: "b1", UserID: "u1", WorkspaceID: "ws-1", Date: "2030-05-10", Start: 540, End: 600, Price: 100}
	svc.On("ListWorkspaceBookings", models.Actor{}, "ws-1", "2030-05-10").
		Return([]booking.VisibleBooking{{Booking: b, Redacted: true}}, nil).Once()

	w := do(r, http.MethodGet, "/api/bookings/workspace/ws-1?date=2030-05-10", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var views []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &views))
	require.Len(t, views, 1)
	assert.Equal(t, "09:00", views[0]["startTime"])
	assert.NotContains(t, views[0], "userId")
	assert.NotContains(t, views[0], "price")
}
