package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shopkit/admin/app/gateway"
	"github.com/shopkit/admin/app/routes"
	"github.com/shopkit/admin/app/services"
	"github.com/shopkit/admin/config"
	"github.com/shopkit/admin/database/seeders"
	"github.com/shopkit/admin/internal/server"
	"github.com/shopkit/admin/pkg/router"
)

// admin serve
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return server.Start()
	},
}

// admin seed
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Run all registered seeders",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}
		ctx := cmd.Context()
		store, err := gateway.Connect(ctx)
		if err != nil {
			return err
		}
		defer store.Close(context.Background())
		return seeders.RunAll(ctx, store)
	},
}

// admin route:list prints every mounted route. The routes are built
// against an empty in-memory store, so no external services are needed.
var routeListCmd = &cobra.Command{
	Use:   "route:list",
	Short: "List all registered routes",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}

		store := gateway.NewMemory()
		catalog, err := services.NewCatalogService(context.Background(), store)
		if err != nil {
			return err
		}
		defer catalog.Close()

		r := router.New()
		err = routes.RegisterAPI(r, routes.Services{
			Auth:       services.NewAuthService(store),
			Users:      services.NewUserService(store),
			Catalog:    catalog,
			Orders:     services.NewOrderService(store),
			Stats:      services.NewStatsService(store),
			Banners:    services.NewBannerService(store),
			Activities: services.NewActivityService(store),
		})
		if err != nil {
			return err
		}

		infos := r.Routes()
		sort.Slice(infos, func(i, j int) bool {
			if infos[i].Path != infos[j].Path {
				return infos[i].Path < infos[j].Path
			}
			return infos[i].Method < infos[j].Method
		})

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "METHOD\tPATH\tNAME")
		for _, ri := range infos {
			fmt.Fprintf(w, "%s\t%s\t%s\n", ri.Method, ri.Path, ri.Name)
		}
		return w.Flush()
	},
}
