package services

import (
	"context"
	"sort"

	"github.com/shopkit/admin/app/gateway"
	"github.com/shopkit/admin/app/models"
	"github.com/shopkit/admin/config"
	"github.com/shopkit/admin/pkg/logger"
)

// DashboardStats is the derived, never-persisted dashboard snapshot.
// Recomputed from the live collections on every load.
type DashboardStats struct {
	TotalOrders   int                        `json:"total_orders"`
	TotalRevenue  float64                    `json:"total_revenue"`
	StatusCounts  map[models.OrderStatus]int `json:"status_counts"`
	TotalProducts int                        `json:"total_products"`
	TotalUsers    int                        `json:"total_users"`
}

// StatsService aggregates orders into dashboard figures. Aggregation itself
// is a pure function of its input; only Dashboard touches the gateway.
type StatsService struct {
	store       gateway.Store
	revenueSet  map[models.OrderStatus]bool
	recentLimit int
}

func NewStatsService(store gateway.Store) *StatsService {
	revenue := make(map[models.OrderStatus]bool)
	for _, s := range config.RevenueStatuses() {
		revenue[models.OrderStatus(s)] = true
	}
	return &StatsService{
		store:       store,
		revenueSet:  revenue,
		recentLimit: config.RecentOrdersLimit(),
	}
}

// NewStatsServiceWith builds a StatsService with an explicit revenue policy
// and recent-orders limit instead of reading them from config.
func NewStatsServiceWith(store gateway.Store, revenueStatuses []models.OrderStatus, recentLimit int) *StatsService {
	revenue := make(map[models.OrderStatus]bool, len(revenueStatuses))
	for _, s := range revenueStatuses {
		revenue[s] = true
	}
	if recentLimit <= 0 {
		recentLimit = config.RecentOrdersLimit()
	}
	return &StatsService{store: store, revenueSet: revenue, recentLimit: recentLimit}
}

// Dashboard fetches the live order/product/user sets and aggregates them.
func (s *StatsService) Dashboard(ctx context.Context) (DashboardStats, []models.Order, error) {
	var orders []models.Order
	if err := s.store.List(ctx, gateway.Orders, &orders); err != nil {
		return DashboardStats{}, nil, err
	}
	var products []models.Product
	if err := s.store.List(ctx, gateway.Products, &products); err != nil {
		return DashboardStats{}, nil, err
	}
	var users []models.User
	if err := s.store.List(ctx, gateway.Users, &users); err != nil {
		return DashboardStats{}, nil, err
	}

	stats := s.Aggregate(orders, len(products), len(users))
	return stats, s.RecentOrders(orders), nil
}

// Aggregate computes dashboard figures from the full order set.
//
// Revenue counts only orders whose status is in the configured revenue set
// (default: delivered). Every canonical status appears in StatusCounts even
// at zero. A malformed total contributes 0 and is logged rather than
// breaking the whole view.
func (s *StatsService) Aggregate(orders []models.Order, productCount, userCount int) DashboardStats {
	stats := DashboardStats{
		TotalOrders:   len(orders),
		StatusCounts:  make(map[models.OrderStatus]int, len(models.OrderStatuses)),
		TotalProducts: productCount,
		TotalUsers:    userCount,
	}
	for _, status := range models.OrderStatuses {
		stats.StatusCounts[status] = 0
	}

	for _, order := range orders {
		stats.StatusCounts[order.Status]++

		if !s.revenueSet[order.Status] {
			continue
		}
		if order.Total < 0 {
			logger.Warn("order has malformed total, counting as 0",
				"order_id", order.ID, "total", order.Total)
			continue
		}
		stats.TotalRevenue += order.Total
	}

	return stats
}

// RecentOrders returns the newest orders, creation time descending, ties
// broken by id ascending so reloads always render the same list.
func (s *StatsService) RecentOrders(orders []models.Order) []models.Order {
	recent := make([]models.Order, len(orders))
	copy(recent, orders)

	sort.Slice(recent, func(i, j int) bool {
		if recent[i].CreatedAt.Equal(recent[j].CreatedAt) {
			return recent[i].ID < recent[j].ID
		}
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})

	if len(recent) > s.recentLimit {
		recent = recent[:s.recentLimit]
	}
	return recent
}
