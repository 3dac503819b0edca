package handlers

import (
	"net/http"
	"strconv"

	"pawcare/services/notification"
	"pawcare/utils"

	"github.com/gin-gonic/gin"
)

// NotificationHandler exposes the in-app notification feed.
type NotificationHandler struct {
	Svc notification.NotificationService
}

func NewNotificationHandler(svc notification.NotificationService) *NotificationHandler {
	return &NotificationHandler{Svc: svc}
}

// FeedHandler lists a recipient's notifications, newest first.
func (h *NotificationHandler) FeedHandler(c *gin.Context) {
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "50"), 10, 64)
	notifications, err := h.Svc.Feed(c.Param("recipientID"), limit)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load notifications", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

// MarkReadHandler marks one notification as read.
func (h *NotificationHandler) MarkReadHandler(c *gin.Context) {
	if err := h.Svc.MarkRead(c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to mark notification read", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// UnreadCountHandler returns the recipient's unread notification count.
func (h *NotificationHandler) UnreadCountHandler(c *gin.Context) {
	count, err := h.Svc.UnreadCount(c.Param("recipientID"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to count notifications", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"unread": count})
}
