// Package jobs defines the background jobs dispatched through pkg/queue.
//
// Jobs are serialised to JSON, so they carry only plain payload fields; the
// gateway handle is injected once at boot via Configure.
package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/shopkit/admin/app/gateway"
	"github.com/shopkit/admin/app/models"
	"github.com/shopkit/admin/pkg/queue"
)

var store gateway.Store

// Configure injects the gateway used by job handlers and registers every
// job type with the queue. Call once during boot, after the gateway is up.
func Configure(s gateway.Store) {
	store = s

	queue.Register("jobs.RecordActivity", func() queue.Job { return &RecordActivity{} })
	queue.Register("jobs.PushNotification", func() queue.Job { return &PushNotification{} })
}

// RecordActivity appends one entry to the admin activity log.
type RecordActivity struct {
	Kind   string `json:"kind"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

func (j RecordActivity) Handle() error {
	if store == nil {
		return fmt.Errorf("jobs: gateway not configured")
	}

	entry := models.Activity{
		ID:        gateway.NewID(),
		Kind:      j.Kind,
		Title:     j.Title,
		Detail:    j.Detail,
		CreatedAt: time.Now().UTC(),
	}
	return store.Create(context.Background(), gateway.Activities, entry.ID, entry)
}

// PushNotification adds an unread notification for the admin header badge.
type PushNotification struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

func (j PushNotification) Handle() error {
	if store == nil {
		return fmt.Errorf("jobs: gateway not configured")
	}

	n := models.Notification{
		ID:        gateway.NewID(),
		Title:     j.Title,
		Message:   j.Message,
		CreatedAt: time.Now().UTC(),
	}
	return store.Create(context.Background(), gateway.Notifications, n.ID, n)
}
