package routes

import (
	"time"

	"coworking/config"
	"coworking/handlers"
	"coworking/middleware"
	"coworking/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// RegisterWorkspaceRoutes registers the public and admin workspace catalogue.
func RegisterWorkspaceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/workspaces")
	{
		api.GET("", hb.Workspace.ListWorkspacesHandler)
		api.GET("/:id", hb.Workspace.GetWorkspaceHandler)
	}

	admin := r.Group("/api/admin/workspaces")
	{
		admin.Use(middleware.JWTAuthUserMiddleware(false), middleware.RequireAdmin())
		admin.GET("", hb.Workspace.AdminListWorkspacesHandler)
		admin.POST("", hb.Workspace.CreateWorkspaceHandler)
		admin.PUT("/:id", hb.Workspace.UpdateWorkspaceHandler)
		admin.PATCH("/:id/toggle", hb.Workspace.ToggleWorkspaceHandler)
	}
}

// RegisterNotificationRoutes registers the caller's notification inbox.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/notifications")
	{
		api.Use(middleware.JWTAuthUserMiddleware(false))
		api.GET("", hb.Notification.ListNotificationsHandler)
		api.PATCH("/:id/read", hb.Notification.MarkReadHandler)
		api.DELETE("/:id", hb.Notification.DeleteNotificationHandler)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(utils.ErrorHandler(), handlers.RequestLogger())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	RegisterHealthRoute(r)
	RegisterWorkspaceRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
}
