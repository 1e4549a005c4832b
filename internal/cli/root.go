// Package cli is the autocat command line.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/light-bringer/autocat-service/internal/config"
	"github.com/light-bringer/autocat-service/internal/pkg/logctx"
)

const (
	RootCmdName  = "autocat"
	RootCmdShort = "Vehicle catalog service"
	RootCmdLong  = "autocat serves a vehicle catalog over REST and gRPC: filtered, sorted and paginated listings, filter options, vehicle details with similar vehicles, and contact inquiries."
)

var configPath string

var RootCmd = &cobra.Command{
	Use:           RootCmdName,
	Short:         RootCmdShort,
	Long:          RootCmdLong,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	RootCmd.AddCommand(ServeCmd, SeedCmd)
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// bootstrap loads the configuration and builds the process logger.
func bootstrap() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	log, err := logctx.New(cfg.Env)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build logger: %w", err)
	}
	zap.ReplaceGlobals(log)

	return cfg, log, nil
}
