package handlers

import (
	"net/http"

	"coworking/middleware"
	"coworking/models"
	"coworking/services/notification"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	NotificationService notification.NotificationService
}

func NewNotificationHandler(svc notification.NotificationService) *NotificationHandler {
	return &NotificationHandler{NotificationService: svc}
}

// ListNotificationsHandler handles GET /api/notifications.
func (h *NotificationHandler) ListNotificationsHandler(c *gin.Context) {
	actor := middleware.ActorFromContext(c)
	list, err := h.NotificationService.ListNotifications(c.Request.Context(), actor.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	if list == nil {
		list = []models.Notification{}
	}
	c.JSON(http.StatusOK, list)
}

// MarkReadHandler handles PATCH /api/notifications/:id/read.
func (h *NotificationHandler) MarkReadHandler(c *gin.Context) {
	actor := middleware.ActorFromContext(c)
	n, err := h.NotificationService.MarkAsRead(c.Request.Context(), actor.UserID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, n)
}

// DeleteNotificationHandler handles DELETE /api/notifications/:id.
func (h *NotificationHandler) DeleteNotificationHandler(c *gin.Context) {
	actor := middleware.ActorFromContext(c)
	if err := h.NotificationService.DeleteNotification(c.Request.Context(), actor.UserID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification deleted"})
}
