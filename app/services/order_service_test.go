package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopkit/admin/app/gateway"
	"github.com/shopkit/admin/app/models"
	"github.com/shopkit/admin/app/services"
)

func seedOrder(t *testing.T, store gateway.Store, id string, status models.OrderStatus, total float64) {
	t.Helper()
	err := store.Create(context.Background(), gateway.Orders, id, models.Order{
		ID:           id,
		CustomerName: "Ana",
		Total:        total,
		Status:       status,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	})
	require.NoError(t, err)
}

func TestSetStatusAdvances(t *testing.T) {
	ctx := context.Background()
	store := gateway.NewMemory()
	svc := services.NewOrderService(store)
	seedOrder(t, store, "o1", models.StatusPending, 40)

	require.NoError(t, svc.SetStatus(ctx, "o1", models.StatusProcessing))

	order, err := svc.Get(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusProcessing, order.Status)
}

func TestSetStatusSkipsIntermediateStates(t *testing.T) {
	// Delivering or cancelling straight from pending is allowed; no
	// adjacency is enforced between non-terminal states.
	ctx := context.Background()
	store := gateway.NewMemory()
	svc := services.NewOrderService(store)

	seedOrder(t, store, "o1", models.StatusPending, 10)
	require.NoError(t, svc.SetStatus(ctx, "o1", models.StatusDelivered))

	seedOrder(t, store, "o2", models.StatusPending, 10)
	require.NoError(t, svc.SetStatus(ctx, "o2", models.StatusCancelled))
}

func TestSetStatusTerminalOrdersAreLocked(t *testing.T) {
	ctx := context.Background()
	store := gateway.NewMemory()
	svc := services.NewOrderService(store)

	seedOrder(t, store, "done", models.StatusDelivered, 10)
	seedOrder(t, store, "gone", models.StatusCancelled, 10)

	for _, target := range models.OrderStatuses {
		assert.ErrorIs(t, svc.SetStatus(ctx, "done", target), services.ErrInvalidTransition,
			"delivered order accepted transition to %q", target)
		assert.ErrorIs(t, svc.SetStatus(ctx, "gone", target), services.ErrInvalidTransition,
			"cancelled order accepted transition to %q", target)
	}
}

func TestSetStatusSameStatusIsNoop(t *testing.T) {
	ctx := context.Background()
	store := gateway.NewMemory()
	svc := services.NewOrderService(store)
	seedOrder(t, store, "o1", models.StatusProcessing, 10)

	before, err := svc.Get(ctx, "o1")
	require.NoError(t, err)

	require.NoError(t, svc.SetStatus(ctx, "o1", models.StatusProcessing))

	after, err := svc.Get(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, before.UpdatedAt, after.UpdatedAt)
}

func TestSetStatusUnknownStatus(t *testing.T) {
	store := gateway.NewMemory()
	svc := services.NewOrderService(store)
	seedOrder(t, store, "o1", models.StatusPending, 10)

	err := svc.SetStatus(context.Background(), "o1", "lost in transit")
	var verr services.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr, "status")
}

func TestSetStatusMissingOrder(t *testing.T) {
	svc := services.NewOrderService(gateway.NewMemory())
	err := svc.SetStatus(context.Background(), "nope", models.StatusShipped)
	assert.ErrorIs(t, err, gateway.ErrNotFound)
}

func TestListByStatus(t *testing.T) {
	ctx := context.Background()
	store := gateway.NewMemory()
	svc := services.NewOrderService(store)

	seedOrder(t, store, "o1", models.StatusPending, 10)
	seedOrder(t, store, "o2", models.StatusShipped, 20)
	seedOrder(t, store, "o3", models.StatusPending, 30)

	pending, err := svc.ListByStatus(ctx, models.StatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	for _, o := range pending {
		assert.Equal(t, models.StatusPending, o.Status)
	}

	delivered, err := svc.ListByStatus(ctx, models.StatusDelivered)
	require.NoError(t, err)
	assert.Empty(t, delivered)

	_, err = svc.ListByStatus(ctx, "bogus")
	var verr services.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestDeleteOrder(t *testing.T) {
	ctx := context.Background()
	store := gateway.NewMemory()
	svc := services.NewOrderService(store)
	seedOrder(t, store, "o1", models.StatusCancelled, 10)

	require.NoError(t, svc.Delete(ctx, "o1"))
	_, err := svc.Get(ctx, "o1")
	assert.ErrorIs(t, err, gateway.ErrNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, "o1"), gateway.ErrNotFound)
}
