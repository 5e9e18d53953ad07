package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/shopkit/admin/app/gateway"
	"github.com/shopkit/admin/app/jobs"
	"github.com/shopkit/admin/config"
	"github.com/shopkit/admin/pkg/cache"
	"github.com/shopkit/admin/pkg/queue"
)

var queueWorkersFlag int

// admin queue:work runs a standalone worker process against the shared
// Redis queue, for deployments that split web and workers.
var queueWorkCmd = &cobra.Command{
	Use:   "queue:work",
	Short: "Start queue workers",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if err := config.Load(); err != nil {
			return err
		}
		store, err := gateway.Connect(ctx)
		if err != nil {
			return err
		}
		defer store.Close(context.Background())

		jobs.Configure(store)
		if err := cache.Connect(); err != nil {
			return fmt.Errorf("queue:work needs redis: %w", err)
		}
		queue.SetDriver(queue.NewRedisDriver(cache.RDB))

		workers := queueWorkersFlag
		if workers < 1 {
			workers = 5
		}
		queue.StartWorkers(ctx, workers)

		<-ctx.Done()
		return nil
	},
}

func init() {
	queueWorkCmd.Flags().IntVarP(&queueWorkersFlag, "workers", "w", 5, "Number of concurrent workers")
}
