// Package routes wires controllers onto the router. Everything under
// /api except login sits behind the auth middleware, and every
// management route additionally requires the admin role.
package routes

import (
	"net/http"
	"time"

	"github.com/shopkit/admin/app/controllers"
	"github.com/shopkit/admin/app/models"
	"github.com/shopkit/admin/app/services"
	"github.com/shopkit/admin/pkg/middleware"
	"github.com/shopkit/admin/pkg/rbac"
	"github.com/shopkit/admin/pkg/response"
	"github.com/shopkit/admin/pkg/router"
	"github.com/shopkit/admin/pkg/ws"
)

// Services bundles everything the routes need, built once in
// internal/server.
type Services struct {
	Auth       *services.AuthService
	Users      *services.UserService
	Catalog    *services.CatalogService
	Orders     *services.OrderService
	Stats      *services.StatsService
	Banners    *services.BannerService
	Activities *services.ActivityService
	Hub        *ws.Hub
}

func RegisterAPI(r *router.Router, svc Services) error {
	authCtrl := controllers.NewAuthController(svc.Auth, svc.Users)
	dashboardCtrl := controllers.NewDashboardController(svc.Stats, svc.Activities)
	productCtrl := controllers.NewProductController(svc.Catalog)
	categoryCtrl := controllers.NewCategoryController(svc.Catalog)
	orderCtrl := controllers.NewOrderController(svc.Orders)
	userCtrl := controllers.NewUserController(svc.Users)
	bannerCtrl := controllers.NewBannerController(svc.Banners)
	notifCtrl := controllers.NewNotificationController(svc.Activities)

	gqlCtrl, err := controllers.NewGraphQLController(svc.Stats, svc.Catalog, svc.Orders)
	if err != nil {
		return err
	}

	r.Get("/healthz", "health", func(w http.ResponseWriter, _ *http.Request) {
		response.Success(w, map[string]string{"status": "ok"})
	})

	api := r.Group("/api", middleware.RateLimit(300, time.Minute))
	api.Post("/login", "auth.login", authCtrl.Login, rbac.Guest)

	// Authenticated, any role.
	session := api.Group("", middleware.AuthMiddleware)
	session.Post("/logout", "auth.logout", authCtrl.Logout)
	session.Get("/me", "auth.me", authCtrl.Me)

	// Admin panel.
	admin := session.Group("", rbac.HasRole(models.RoleAdmin))

	admin.Get("/dashboard", "dashboard.show", dashboardCtrl.Show)
	admin.Get("/dashboard/activities", "dashboard.activities", dashboardCtrl.Activities)

	admin.Get("/products", "products.index", productCtrl.Index)
	admin.Post("/products", "products.store", productCtrl.Store)
	admin.Get("/products/{id}", "products.show", productCtrl.Show)
	admin.Put("/products/{id}", "products.update", productCtrl.Update)
	admin.Delete("/products/{id}", "products.destroy", productCtrl.Destroy)

	admin.Get("/categories", "categories.index", categoryCtrl.Index)
	admin.Post("/categories", "categories.store", categoryCtrl.Store)
	admin.Put("/categories/{id}", "categories.update", categoryCtrl.Update)
	admin.Delete("/categories/{id}", "categories.destroy", categoryCtrl.Destroy)

	admin.Get("/orders", "orders.index", orderCtrl.Index)
	admin.Get("/orders/{id}", "orders.show", orderCtrl.Show)
	admin.Patch("/orders/{id}/status", "orders.status", orderCtrl.UpdateStatus)
	admin.Delete("/orders/{id}", "orders.destroy", orderCtrl.Destroy)

	admin.Get("/users", "users.index", userCtrl.Index)
	admin.Post("/users", "users.store", userCtrl.Store)
	admin.Get("/users/{id}", "users.show", userCtrl.Show)
	admin.Put("/users/{id}", "users.update", userCtrl.Update)
	admin.Delete("/users/{id}", "users.destroy", userCtrl.Destroy)

	admin.Get("/banners", "banners.index", bannerCtrl.Index)
	admin.Post("/banners", "banners.store", bannerCtrl.Store)
	admin.Get("/banners/{id}", "banners.show", bannerCtrl.Show)
	admin.Put("/banners/{id}", "banners.update", bannerCtrl.Update)
	admin.Delete("/banners/{id}", "banners.destroy", bannerCtrl.Destroy)

	admin.Get("/notifications", "notifications.index", notifCtrl.Index)
	admin.Get("/notifications/unread", "notifications.unread", notifCtrl.UnreadCount)
	admin.Post("/notifications/{id}/read", "notifications.read", notifCtrl.MarkRead)
	admin.Post("/notifications/read-all", "notifications.read_all", notifCtrl.MarkAllRead)

	admin.Post("/graphql", "graphql.query", gqlCtrl.Query)

	// Live dashboard updates.
	if svc.Hub != nil {
		session.Get("/ws", "ws.dashboard", func(w http.ResponseWriter, r *http.Request) {
			ws.Upgrade(w, r, svc.Hub)
		})
	}

	return nil
}
