package controllers

import (
	"net/http"
	"strconv"

	"github.com/shopkit/admin/app/services"
	"github.com/shopkit/admin/pkg/response"
)

type DashboardController struct {
	stats      *services.StatsService
	activities *services.ActivityService
}

func NewDashboardController(stats *services.StatsService, activities *services.ActivityService) *DashboardController {
	return &DashboardController{stats: stats, activities: activities}
}

// Show returns the aggregate counters plus the recent-orders panel in
// one payload, matching what the dashboard renders on load.
func (c *DashboardController) Show(w http.ResponseWriter, r *http.Request) {
	stats, recent, err := c.stats.Dashboard(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.Success(w, map[string]any{
		"stats":         stats,
		"recent_orders": recent,
	})
}

// Activities returns the latest entries of the admin action log.
func (c *DashboardController) Activities(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	entries, err := c.activities.Activities(r.Context(), limit)
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.Success(w, entries)
}
