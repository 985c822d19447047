package handlers

import (
	"net/http"

	"talentlink/internal/services"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	*BaseHandler
	notifications services.NotificationService
}

func NewNotificationHandler(base *BaseHandler, notifications services.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		BaseHandler:   base,
		notifications: notifications,
	}
}

func (h *NotificationHandler) RegisterRoutes(r *gin.RouterGroup) {
	notifications := r.Group("/notifications")
	{
		notifications.GET("/unread", h.Unread)
		notifications.POST("/:notificationId/view", h.Acknowledge)
	}
}

func (h *NotificationHandler) Unread(c *gin.Context) {
	sess, ok := h.Session(c)
	if !ok {
		return
	}

	unread, err := h.notifications.Unread(c.Request.Context(), sess)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, unread)
}

// Acknowledge is the "View" action: mark read upstream, then hand back the
// link for navigation.
func (h *NotificationHandler) Acknowledge(c *gin.Context) {
	sess, ok := h.Session(c)
	if !ok {
		return
	}
	notificationID, ok := h.pathID(c, "notificationId")
	if !ok {
		return
	}

	resp, err := h.notifications.Acknowledge(c.Request.Context(), sess, notificationID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
