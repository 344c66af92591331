package handlers

import (
	"errors"
	"net/http"

	notificationRepo "petshop/database/repository/notification"
	"petshop/middleware"
	"petshop/services/notification"

	"github.com/gin-gonic/gin"
)

// NotificationHandler serves the member notification feed.
type NotificationHandler struct {
	Svc notification.NotificationService
}

// NewNotificationHandler creates a notification handler.
func NewNotificationHandler(svc notification.NotificationService) *NotificationHandler {
	return &NotificationHandler{Svc: svc}
}

// ListNotificationsHandler returns the caller's notifications, newest first.
// GET /api/notifications
func (h *NotificationHandler) ListNotificationsHandler(c *gin.Context) {
	ident := middleware.CallerIdentity(c)
	notifications, err := h.Svc.ListForUser(ident.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

// MarkNotificationReadHandler flags one notification as read.
// PUT /api/notifications/:id/read
func (h *NotificationHandler) MarkNotificationReadHandler(c *gin.Context) {
	ident := middleware.CallerIdentity(c)
	if err := h.Svc.MarkRead(c.Param("id"), ident.UserID); err != nil {
		if errors.Is(err, notificationRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "notification not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"read": true})
}
