package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/light-bringer/autocat-service/internal/app/vehicle/fixtures"
	"github.com/light-bringer/autocat-service/internal/config"
	"github.com/light-bringer/autocat-service/internal/services"
)

var SeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the demo catalog into the configured store",
	Long:  "seed replaces the catalog in the configured Spanner or Postgres store with the demo vehicles. Run cmd/migrate first.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, log, err := bootstrap()
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		return seed(cmd.Context(), cfg, log)
	},
}

func seed(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	if cfg.Store.Driver == config.DriverMemory {
		return fmt.Errorf("the memory store is seeded on startup; nothing to do")
	}

	store, closeStore, err := services.OpenStore(ctx, cfg.Store, log)
	if err != nil {
		return err
	}
	defer closeStore()

	summaries, details := fixtures.Summaries(), fixtures.Details()
	if err := store.Load(ctx, summaries, details); err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	log.Info("catalog seeded",
		zap.String("driver", cfg.Store.Driver),
		zap.Int("vehicles", len(summaries)),
		zap.Int("details", len(details)),
	)
	return nil
}
