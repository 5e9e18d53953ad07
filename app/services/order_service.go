package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopkit/admin/app/gateway"
	"github.com/shopkit/admin/app/jobs"
	"github.com/shopkit/admin/app/models"
	"github.com/shopkit/admin/pkg/logger"
	"github.com/shopkit/admin/pkg/metrics"
	"github.com/shopkit/admin/pkg/queue"
)

// OrderService owns the order status workflow. Orders are created by the
// storefront checkout; here they are only read and their status advanced.
type OrderService struct {
	store gateway.Store
}

func NewOrderService(store gateway.Store) *OrderService {
	return &OrderService{store: store}
}

func (s *OrderService) List(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := s.store.List(ctx, gateway.Orders, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// ListByStatus returns the orders currently in the given status, for the
// orders-view filter tabs.
func (s *OrderService) ListByStatus(ctx context.Context, status models.OrderStatus) ([]models.Order, error) {
	if !status.Valid() {
		return nil, ValidationError{"status": fmt.Sprintf("unknown status %q", status)}
	}

	orders, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	filtered := orders[:0]
	for _, o := range orders {
		if o.Status == status {
			filtered = append(filtered, o)
		}
	}
	return filtered, nil
}

func (s *OrderService) Get(ctx context.Context, id string) (models.Order, error) {
	var order models.Order
	if err := s.store.Get(ctx, gateway.Orders, id, &order); err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// SetStatus moves an order to newStatus.
//
// Rules: the target must be a canonical status; delivered and cancelled are
// terminal, so any request out of them fails with ErrInvalidTransition,
// including a request for the same status. Between non-terminal states no
// adjacency is enforced (cancelling or delivering straight from pending is a
// legitimate admin shortcut). Setting the current status again on a
// non-terminal order is a no-op success.
func (s *OrderService) SetStatus(ctx context.Context, id string, newStatus models.OrderStatus) error {
	if !newStatus.Valid() {
		return ValidationError{"status": fmt.Sprintf("unknown status %q", newStatus)}
	}

	order, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if order.Status.Terminal() {
		return fmt.Errorf("order %s is %s: %w", id, order.Status, ErrInvalidTransition)
	}
	if order.Status == newStatus {
		logger.Debug("order already in requested status", "order_id", id, "status", newStatus)
		return nil
	}

	err = s.store.Update(ctx, gateway.Orders, id, map[string]interface{}{
		"status":     newStatus,
		"updated_at": time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	metrics.OrderStatusChanges.WithLabelValues(string(newStatus)).Inc()
	logger.Info("order status updated",
		"order_id", id, "from", order.Status, "to", newStatus)

	if err := queue.Dispatch(jobs.RecordActivity{
		Kind:   "order",
		Title:  fmt.Sprintf("Order %.8s %s", id, newStatus),
		Detail: fmt.Sprintf("status changed from %s to %s", order.Status, newStatus),
	}); err != nil {
		logger.Error("failed to queue activity entry", "error", err)
	}

	// Terminal transitions light up the header badge.
	if newStatus.Terminal() {
		queue.Dispatch(jobs.PushNotification{
			Title:   fmt.Sprintf("Order %.8s %s", id, newStatus),
			Message: fmt.Sprintf("%s's order for %.2f is %s", order.CustomerName, order.Total, newStatus),
		})
	}

	return nil
}

// Delete removes an order record entirely. Kept for cleaning up test or
// abandoned orders; regular flow retires orders by cancelling them.
func (s *OrderService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, gateway.Orders, id); err != nil {
		return err
	}
	logger.Info("order deleted", "order_id", id)
	queue.Dispatch(jobs.RecordActivity{Kind: "order", Title: "Order removed", Detail: id})
	return nil
}
