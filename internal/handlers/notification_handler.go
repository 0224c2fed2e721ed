package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/tasmimahana/cse470/internal/httperr"
	"github.com/tasmimahana/cse470/internal/httpresp"
	"github.com/tasmimahana/cse470/internal/infra/repository"
	"github.com/tasmimahana/cse470/internal/middleware"
	"github.com/tasmimahana/cse470/internal/query"
	ucNotification "github.com/tasmimahana/cse470/internal/usecase/notification"
)

// NotificationHandler serves the caller's own inbox. Every read and write
// is scoped to the authenticated user; only Compose crosses users.
type NotificationHandler struct {
	notifications *repository.NotificationGormRepository
	compose       *ucNotification.Compose
}

func NewNotificationHandler(
	notifications *repository.NotificationGormRepository,
	compose *ucNotification.Compose,
) *NotificationHandler {
	return &NotificationHandler{notifications: notifications, compose: compose}
}

type ComposeNotificationRequest struct {
	User      string `json:"user"`
	Message   string `json:"message"`
	Type      string `json:"type"`
	Broadcast bool   `json:"broadcast"`
}

func (h *NotificationHandler) List(c *gin.Context) {
	spec := query.Build(c.Request.URL.Query(), query.NotificationRules)

	list, err := h.notifications.ListForUser(c.Request.Context(), middleware.MustPrincipal(c).UserID, spec)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, list)
}

func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	n, err := h.notifications.CountUnread(c.Request.Context(), middleware.MustPrincipal(c).UserID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"unreadCount": n})
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	n, err := h.notifications.MarkAllRead(c.Request.Context(), middleware.MustPrincipal(c).UserID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"msg": "All notifications marked as read", "modifiedCount": n})
}

func (h *NotificationHandler) Get(c *gin.Context) {
	id := c.Param("id")
	n, err := h.notifications.GetForUser(c.Request.Context(), id, middleware.MustPrincipal(c).UserID)
	if err != nil {
		h.respondLookup(c, id, err)
		return
	}

	httpresp.OK(c, gin.H{"notification": n})
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id := c.Param("id")
	n, err := h.notifications.MarkRead(c.Request.Context(), id, middleware.MustPrincipal(c).UserID)
	if err != nil {
		h.respondLookup(c, id, err)
		return
	}

	httpresp.OK(c, gin.H{"notification": n})
}

func (h *NotificationHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.notifications.DeleteForUser(c.Request.Context(), id, middleware.MustPrincipal(c).UserID); err != nil {
		h.respondLookup(c, id, err)
		return
	}

	httpresp.Message(c, "Notification deleted successfully")
}

// Compose is admin only.
func (h *NotificationHandler) Compose(c *gin.Context) {
	var req ComposeNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}

	res, err := h.compose.Execute(c.Request.Context(), middleware.MustPrincipal(c), ucNotification.ComposeInput{
		UserID:    req.User,
		Message:   req.Message,
		Type:      req.Type,
		Broadcast: req.Broadcast,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	if req.Broadcast {
		httpresp.Created(c, gin.H{
			"message": fmt.Sprintf("Notification sent to %d users", res.Count),
			"count":   res.Count,
		})
		return
	}

	httpresp.Created(c, gin.H{"notification": res.Notification})
}

// another user's notification is reported exactly like a missing one
func (h *NotificationHandler) respondLookup(c *gin.Context, id string, err error) {
	if httperr.IsRecordNotFound(err) {
		httperr.NotFound(c, "notification_not_found", "No notification with id: "+id)
		return
	}
	httperr.Respond(c, err)
}
