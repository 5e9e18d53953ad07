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

func deliveredOnlyStats(store gateway.Store) *services.StatsService {
	return services.NewStatsServiceWith(store, []models.OrderStatus{models.StatusDelivered}, 5)
}

func TestAggregateRevenueDeliveredOnly(t *testing.T) {
	svc := deliveredOnlyStats(gateway.NewMemory())

	orders := []models.Order{
		{ID: "o1", Status: models.StatusDelivered, Total: 100},
		{ID: "o2", Status: models.StatusPending, Total: 50},
		{ID: "o3", Status: models.StatusCancelled, Total: 30},
	}
	stats := svc.Aggregate(orders, 7, 2)

	assert.Equal(t, 3, stats.TotalOrders)
	assert.Equal(t, 100.0, stats.TotalRevenue)
	assert.Equal(t, 7, stats.TotalProducts)
	assert.Equal(t, 2, stats.TotalUsers)

	assert.Equal(t, 1, stats.StatusCounts[models.StatusDelivered])
	assert.Equal(t, 1, stats.StatusCounts[models.StatusPending])
	assert.Equal(t, 1, stats.StatusCounts[models.StatusCancelled])
}

func TestAggregateEveryStatusPresentAtZero(t *testing.T) {
	svc := deliveredOnlyStats(gateway.NewMemory())

	stats := svc.Aggregate(nil, 0, 0)

	require.Len(t, stats.StatusCounts, len(models.OrderStatuses))
	for _, status := range models.OrderStatuses {
		n, ok := stats.StatusCounts[status]
		assert.True(t, ok, "missing status %q", status)
		assert.Zero(t, n)
	}
	assert.Zero(t, stats.TotalOrders)
	assert.Zero(t, stats.TotalRevenue)
}

func TestAggregateMalformedTotalCountsAsZero(t *testing.T) {
	svc := deliveredOnlyStats(gateway.NewMemory())

	stats := svc.Aggregate([]models.Order{
		{ID: "o1", Status: models.StatusDelivered, Total: -40},
		{ID: "o2", Status: models.StatusDelivered, Total: 60},
	}, 0, 0)

	assert.Equal(t, 60.0, stats.TotalRevenue)
	assert.Equal(t, 2, stats.StatusCounts[models.StatusDelivered])
}

func TestAggregateConfigurableRevenuePolicy(t *testing.T) {
	svc := services.NewStatsServiceWith(gateway.NewMemory(),
		[]models.OrderStatus{models.StatusDelivered, models.StatusShipped}, 5)

	stats := svc.Aggregate([]models.Order{
		{ID: "o1", Status: models.StatusDelivered, Total: 100},
		{ID: "o2", Status: models.StatusShipped, Total: 25},
		{ID: "o3", Status: models.StatusPending, Total: 10},
	}, 0, 0)

	assert.Equal(t, 125.0, stats.TotalRevenue)
}

func TestRecentOrdersNewestFirst(t *testing.T) {
	svc := deliveredOnlyStats(gateway.NewMemory())

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	orders := []models.Order{
		{ID: "o1", CreatedAt: base.Add(1 * time.Hour)},
		{ID: "o3", CreatedAt: base.Add(3 * time.Hour)},
		{ID: "o2", CreatedAt: base.Add(2 * time.Hour)},
	}

	recent := svc.RecentOrders(orders)
	require.Len(t, recent, 3)
	assert.Equal(t, "o3", recent[0].ID)
	assert.Equal(t, "o2", recent[1].ID)
	assert.Equal(t, "o1", recent[2].ID)

	// Input slice is left untouched.
	assert.Equal(t, "o1", orders[0].ID)
}

func TestRecentOrdersTiesBreakByID(t *testing.T) {
	svc := deliveredOnlyStats(gateway.NewMemory())

	at := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	recent := svc.RecentOrders([]models.Order{
		{ID: "zz", CreatedAt: at},
		{ID: "aa", CreatedAt: at},
	})
	assert.Equal(t, "aa", recent[0].ID)
	assert.Equal(t, "zz", recent[1].ID)
}

func TestRecentOrdersRespectsLimit(t *testing.T) {
	svc := services.NewStatsServiceWith(gateway.NewMemory(), nil, 2)

	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	recent := svc.RecentOrders([]models.Order{
		{ID: "o1", CreatedAt: base.Add(1 * time.Minute)},
		{ID: "o2", CreatedAt: base.Add(2 * time.Minute)},
		{ID: "o3", CreatedAt: base.Add(3 * time.Minute)},
	})
	require.Len(t, recent, 2)
	assert.Equal(t, "o3", recent[0].ID)
	assert.Equal(t, "o2", recent[1].ID)
}

func TestDashboardReadsLiveCollections(t *testing.T) {
	ctx := context.Background()
	store := gateway.NewMemory()

	require.NoError(t, store.Create(ctx, gateway.Orders, "o1",
		models.Order{ID: "o1", Status: models.StatusDelivered, Total: 75, CreatedAt: time.Now().UTC()}))
	require.NoError(t, store.Create(ctx, gateway.Products, "p1", models.Product{ID: "p1", Name: "Lamp"}))
	require.NoError(t, store.Create(ctx, gateway.Users, "u1", models.User{ID: "u1", Name: "Ana"}))

	stats, recent, err := deliveredOnlyStats(store).Dashboard(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.TotalOrders)
	assert.Equal(t, 75.0, stats.TotalRevenue)
	assert.Equal(t, 1, stats.TotalProducts)
	assert.Equal(t, 1, stats.TotalUsers)
	require.Len(t, recent, 1)
	assert.Equal(t, "o1", recent[0].ID)
}
