package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/safebite/safebite/internal/ioproduct"
	"github.com/safebite/safebite/internal/ioprofile"
	"github.com/safebite/safebite/internal/ioserver"
	"github.com/safebite/safebite/internal/iotaxonomy"
	"github.com/spf13/cobra"
)

func getServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Runs the HTTP detection API",
		Long: `Loads the taxonomy caches into memory and serves the detection API:
ingredient search, barcode scanning and per-user avoid-list profiles.

The taxonomy is built once at startup and shared read-only by all
requests. Run 'safebite build' first to generate the caches.

Examples:
  safebite serve
  SAFEBITE_SERVER_PORT=9000 safebite serve`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := getConfig()
			ctx, stop := signal.NotifyContext(
				context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			tx, err := iotaxonomy.LoadTaxonomy(cfg)
			if err != nil {
				return fmt.Errorf(
					"failed to load taxonomy (did you run 'safebite build'?): %w", err)
			}

			profiles, err := ioprofile.New(ctx, cfg)
			if err != nil {
				return fmt.Errorf("failed to connect profile store: %w", err)
			}
			defer profiles.Close()

			products := ioproduct.New(cfg)

			srv := ioserver.New(cfg, tx, products, profiles)
			if err := srv.Run(ctx); err != nil {
				return fmt.Errorf("server failed: %w", err)
			}
			return nil
		},
	}
	return cmd
}
