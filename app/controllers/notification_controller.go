package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shopkit/admin/app/services"
	"github.com/shopkit/admin/pkg/response"
)

type NotificationController struct {
	activities *services.ActivityService
}

func NewNotificationController(activities *services.ActivityService) *NotificationController {
	return &NotificationController{activities: activities}
}

func (c *NotificationController) Index(w http.ResponseWriter, r *http.Request) {
	notes, err := c.activities.Notifications(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.Success(w, notes)
}

// UnreadCount backs the badge in the admin header.
func (c *NotificationController) UnreadCount(w http.ResponseWriter, r *http.Request) {
	count, err := c.activities.UnreadCount(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.Success(w, map[string]int{"unread": count})
}

func (c *NotificationController) MarkRead(w http.ResponseWriter, r *http.Request) {
	if err := c.activities.MarkRead(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, r, err)
		return
	}
	response.Success(w, map[string]string{"message": "Marked read"})
}

func (c *NotificationController) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	if err := c.activities.MarkAllRead(r.Context()); err != nil {
		respondError(w, r, err)
		return
	}
	response.Success(w, map[string]string{"message": "All marked read"})
}
