// Package server boots the whole application: config, the document
// gateway, cache, storage, queue workers, seeders, services, and the
// HTTP stack.
package server

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"gorm.io/gorm"

	"github.com/shopkit/admin/app/gateway"
	"github.com/shopkit/admin/app/jobs"
	"github.com/shopkit/admin/app/routes"
	"github.com/shopkit/admin/app/services"
	"github.com/shopkit/admin/config"
	"github.com/shopkit/admin/database/seeders"
	"github.com/shopkit/admin/pkg/cache"
	"github.com/shopkit/admin/pkg/logger"
	"github.com/shopkit/admin/pkg/metrics"
	"github.com/shopkit/admin/pkg/middleware"
	"github.com/shopkit/admin/pkg/queue"
	"github.com/shopkit/admin/pkg/reqid"
	"github.com/shopkit/admin/pkg/router"
	"github.com/shopkit/admin/pkg/schedule"
	"github.com/shopkit/admin/pkg/storage"
	"github.com/shopkit/admin/pkg/ws"
)

// liveCollections are the ones the dashboard cares about; a change in
// any of them is pushed to connected websocket clients.
var liveCollections = []string{
	gateway.Products,
	gateway.Categories,
	gateway.Orders,
	gateway.Users,
	gateway.Banners,
}

func Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := config.Load(); err != nil {
		return err
	}

	if col := config.LogMongoCollection(); col != "" {
		closeLogs, err := logger.AttachMongo(config.MongoURI(), config.MongoDatabase(), col)
		if err != nil {
			logger.Warn("mongo log sink unavailable", "error", err)
		} else {
			defer closeLogs()
		}
	}

	store, err := gateway.Connect(ctx)
	if err != nil {
		return err
	}
	defer store.Close(context.Background())

	if err := cache.Connect(); err != nil {
		logger.Warn("cache unavailable, running without redis", "error", err)
	}
	storage.Connect()

	jobs.Configure(store)
	if sqlStore, ok := store.(interface{ DB() *gorm.DB }); ok {
		queue.UseDB(sqlStore.DB())
	}
	if cache.RDB != nil {
		queue.SetDriver(queue.NewRedisDriver(cache.RDB))
	}
	queue.StartWorkers(ctx, queueWorkers())

	if err := seeders.RunAll(ctx, store); err != nil {
		return err
	}

	catalog, err := services.NewCatalogService(ctx, store)
	if err != nil {
		return err
	}
	defer catalog.Close()

	hub := ws.NewHub()
	go hub.Run()
	for _, collection := range liveCollections {
		collection := collection
		defer store.Subscribe(collection, func(string) {
			hub.BroadcastEvent(ws.Event{Collection: collection, Kind: "changed"})
		})()
	}

	activities := services.NewActivityService(store)
	svc := routes.Services{
		Auth:       services.NewAuthService(store),
		Users:      services.NewUserService(store),
		Catalog:    catalog,
		Orders:     services.NewOrderService(store),
		Stats:      services.NewStatsService(store),
		Banners:    services.NewBannerService(store),
		Activities: activities,
		Hub:        hub,
	}

	schedule.Daily().Name("prune-feeds").Run(func() {
		pruneCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if err := activities.Prune(pruneCtx, 500, 30*24*time.Hour); err != nil {
			logger.Warn("feed pruning failed", "error", err)
		}
	})
	schedule.Start(ctx)

	r := router.New()
	r.Use(
		metrics.Middleware(),
		reqid.Middleware(),
		middleware.Recovery,
		middleware.Logger,
		middleware.CORS(middleware.DefaultCORSOptions()),
	)
	r.Handle("/metrics", metrics.Handler())
	if err := routes.RegisterAPI(r, svc); err != nil {
		return err
	}

	addr := ":" + config.AppPort()
	srv := &http.Server{
		Addr:         addr,
		Handler:      r.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", addr, "env", config.AppEnv())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func queueWorkers() int {
	n, err := strconv.Atoi(config.Get("QUEUE_WORKERS", "5"))
	if err != nil || n < 1 {
		return 5
	}
	return n
}
