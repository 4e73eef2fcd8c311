package routes

import (
	"coworking/handlers"
	"coworking/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes sets up the endpoints for the booking engine.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/bookings")
	{
		// Anyone may look at a workspace's schedule; other people's bookings are redacted.
		bookingGroup.GET("/workspace/:id", middleware.JWTAuthUserMiddleware(true), hb.Booking.ListWorkspaceBookingsHandler)

		user := bookingGroup.Group("")
		user.Use(middleware.JWTAuthUserMiddleware(false))
		user.POST("", hb.Booking.CreateBookingHandler)
		user.GET("/mine", hb.Booking.ListMyBookingsHandler)
		user.PATCH("/:id/cancel", hb.Booking.CancelBookingHandler)

		admin := bookingGroup.Group("")
		admin.Use(middleware.JWTAuthUserMiddleware(false), middleware.RequireAdmin())
		admin.GET("", hb.Booking.ListAllBookingsHandler)
		admin.PATCH("/mark-completed", hb.Booking.MarkCompletedHandler)
		admin.PATCH("/:id/extend", hb.Booking.ExtendBookingHandler)
	}
}
