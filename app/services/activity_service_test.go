package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopkit/admin/app/gateway"
	"github.com/shopkit/admin/app/models"
	"github.com/shopkit/admin/app/services"
)

func seedActivity(t *testing.T, store gateway.Store, id string, at time.Time) {
	t.Helper()
	require.NoError(t, store.Create(context.Background(), gateway.Activities, id,
		models.Activity{ID: id, Kind: "order", Title: "Order updated", CreatedAt: at}))
}

func seedNotification(t *testing.T, store gateway.Store, id string, read bool, at time.Time) {
	t.Helper()
	require.NoError(t, store.Create(context.Background(), gateway.Notifications, id,
		models.Notification{ID: id, Title: "Order delivered", Read: read, CreatedAt: at}))
}

func TestActivitiesNewestFirstWithLimit(t *testing.T) {
	store := gateway.NewMemory()
	svc := services.NewActivityService(store)
	base := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)

	seedActivity(t, store, "a1", base.Add(1*time.Minute))
	seedActivity(t, store, "a3", base.Add(3*time.Minute))
	seedActivity(t, store, "a2", base.Add(2*time.Minute))

	entries, err := svc.Activities(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "a3", entries[0].ID)
	assert.Equal(t, "a2", entries[1].ID)

	all, err := svc.Activities(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestUnreadCountAndMarkRead(t *testing.T) {
	store := gateway.NewMemory()
	svc := services.NewActivityService(store)
	ctx := context.Background()
	now := time.Now().UTC()

	seedNotification(t, store, "n1", false, now)
	seedNotification(t, store, "n2", false, now)
	seedNotification(t, store, "n3", true, now)

	count, err := svc.UnreadCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	require.NoError(t, svc.MarkRead(ctx, "n1"))
	count, err = svc.UnreadCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.NoError(t, svc.MarkAllRead(ctx))
	count, err = svc.UnreadCount(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestPrune(t *testing.T) {
	store := gateway.NewMemory()
	svc := services.NewActivityService(store)
	ctx := context.Background()
	now := time.Now().UTC()

	for i := 0; i < 5; i++ {
		seedActivity(t, store, fmt.Sprintf("a%d", i), now.Add(time.Duration(i)*time.Minute))
	}
	seedNotification(t, store, "old-read", true, now.Add(-60*24*time.Hour))
	seedNotification(t, store, "old-unread", false, now.Add(-60*24*time.Hour))
	seedNotification(t, store, "fresh-read", true, now)

	require.NoError(t, svc.Prune(ctx, 3, 30*24*time.Hour))

	entries, err := svc.Activities(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	// The newest three survive.
	assert.Equal(t, "a4", entries[0].ID)
	assert.Equal(t, "a2", entries[2].ID)

	notes, err := svc.Notifications(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	for _, n := range notes {
		assert.NotEqual(t, "old-read", n.ID)
	}
}
