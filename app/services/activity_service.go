package services

import (
	"context"
	"sort"
	"time"

	"github.com/shopkit/admin/app/gateway"
	"github.com/shopkit/admin/app/models"
)

// ActivityService reads the action log and the notification feed. Both
// are written by queue jobs, never directly by request handlers.
type ActivityService struct {
	store gateway.Store
}

func NewActivityService(store gateway.Store) *ActivityService {
	return &ActivityService{store: store}
}

// Activities returns the most recent entries, newest first. limit <= 0
// means all of them.
func (s *ActivityService) Activities(ctx context.Context, limit int) ([]models.Activity, error) {
	var entries []models.Activity
	if err := s.store.List(ctx, gateway.Activities, &entries); err != nil {
		return nil, err
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].CreatedAt.Equal(entries[j].CreatedAt) {
			return entries[i].ID < entries[j].ID
		}
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// Notifications returns the feed, newest first.
func (s *ActivityService) Notifications(ctx context.Context) ([]models.Notification, error) {
	var notes []models.Notification
	if err := s.store.List(ctx, gateway.Notifications, &notes); err != nil {
		return nil, err
	}
	sort.Slice(notes, func(i, j int) bool {
		if notes[i].CreatedAt.Equal(notes[j].CreatedAt) {
			return notes[i].ID < notes[j].ID
		}
		return notes[i].CreatedAt.After(notes[j].CreatedAt)
	})
	return notes, nil
}

// UnreadCount backs the header badge.
func (s *ActivityService) UnreadCount(ctx context.Context) (int, error) {
	notes, err := s.Notifications(ctx)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, n := range notes {
		if !n.Read {
			count++
		}
	}
	return count, nil
}

// MarkRead flags one notification as read.
func (s *ActivityService) MarkRead(ctx context.Context, id string) error {
	return s.store.Update(ctx, gateway.Notifications, id, map[string]any{"read": true})
}

// Prune trims the feeds: activities beyond keepActivities entries are
// dropped, and read notifications older than notificationAge go too.
// Run daily by the scheduler.
func (s *ActivityService) Prune(ctx context.Context, keepActivities int, notificationAge time.Duration) error {
	entries, err := s.Activities(ctx, 0)
	if err != nil {
		return err
	}
	for i := keepActivities; i < len(entries); i++ {
		if err := s.store.Delete(ctx, gateway.Activities, entries[i].ID); err != nil {
			return err
		}
	}

	notes, err := s.Notifications(ctx)
	if err != nil {
		return err
	}
	cutoff := time.Now().UTC().Add(-notificationAge)
	for _, n := range notes {
		if n.Read && n.CreatedAt.Before(cutoff) {
			if err := s.store.Delete(ctx, gateway.Notifications, n.ID); err != nil {
				return err
			}
		}
	}
	return nil
}

// MarkAllRead clears the badge.
func (s *ActivityService) MarkAllRead(ctx context.Context) error {
	notes, err := s.Notifications(ctx)
	if err != nil {
		return err
	}
	for _, n := range notes {
		if n.Read {
			continue
		}
		if err := s.store.Update(ctx, gateway.Notifications, n.ID, map[string]any{"read": true}); err != nil {
			return err
		}
	}
	return nil
}
