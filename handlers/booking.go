package handlers

import (
	"net/http"

	"coworking/middleware"
	"coworking/models"
	"coworking/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BookingHandler struct {
	BookingService booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{BookingService: svc}
}

func toResponses(bookings []models.Booking) []models.BookingResponse {
	out := make([]models.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, b.ToResponse())
	}
	return out
}

// CreateBookingHandler handles POST /api/bookings.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	actor := middleware.ActorFromContext(c)
	result, err := h.BookingService.CreateBooking(c.Request.Context(), actor, req)
	if err != nil {
		getLogger(c).Info("Booking rejected",
			zap.String("userId", actor.UserID),
			zap.String("workspaceId", req.WorkspaceID),
			zap.Error(err),
		)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"booking":  result.Booking.ToResponse(),
		"adjusted": toResponses(result.Adjusted),
	})
}

// ListMyBookingsHandler handles GET /api/bookings/mine.
func (h *BookingHandler) ListMyBookingsHandler(c *gin.Context) {
	bookings, err := h.BookingService.ListMyBookings(c.Request.Context(), middleware.ActorFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponses(bookings))
}

// ListWorkspaceBookingsHandler handles GET /api/bookings/workspace/:id?date=YYYY-MM-DD.
func (h *BookingHandler) ListWorkspaceBookingsHandler(c *gin.Context) {
	visible, err := h.BookingService.ListWorkspaceBookings(
		c.Request.Context(),
		middleware.ActorFromContext(c),
		c.Param("id"),
		c.Query("date"),
	)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]any, 0, len(visible))
	for _, v := range visible {
		out = append(out, v.View())
	}
	c.JSON(http.StatusOK, out)
}

// CancelBookingHandler handles PATCH /api/bookings/:id/cancel.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	b, err := h.BookingService.CancelBooking(c.Request.Context(), middleware.ActorFromContext(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b.ToResponse())
}

// ListAllBookingsHandler handles GET /api/bookings (admin).
func (h *BookingHandler) ListAllBookingsHandler(c *gin.Context) {
	bookings, err := h.BookingService.ListAllBookings(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponses(bookings))
}

// MarkCompletedHandler handles PATCH /api/bookings/mark-completed (admin).
func (h *BookingHandler) MarkCompletedHandler(c *gin.Context) {
	n := h.BookingService.CompleteElapsedBookings(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"completed": n})
}

// ExtendBookingHandler handles PATCH /api/bookings/:id/extend (admin).
func (h *BookingHandler) ExtendBookingHandler(c *gin.Context) {
	var req models.ExtendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	b, err := h.BookingService.ExtendBooking(c.Request.Context(), middleware.ActorFromContext(c), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b.ToResponse())
}
