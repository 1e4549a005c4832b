package main

import (
	"context"
	"flag"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/light-bringer/autocat-service/internal/config"
	"github.com/light-bringer/autocat-service/internal/migrate"
	"github.com/light-bringer/autocat-service/internal/pkg/logctx"
)

var (
	driver     = flag.String("driver", getEnvOrDefault("STORE_DRIVER", config.DriverSpanner), "Store driver: spanner or postgres")
	projectID  = flag.String("project", getEnvOrDefault("SPANNER_PROJECT_ID", "test-project"), "GCP project ID")
	instanceID = flag.String("instance", getEnvOrDefault("SPANNER_INSTANCE_ID", "dev-instance"), "Spanner instance ID")
	databaseID = flag.String("database", getEnvOrDefault("SPANNER_DATABASE_ID", "autocat-db"), "Spanner database ID")
	dsn        = flag.String("dsn", os.Getenv("POSTGRES_DSN"), "Postgres connection string")
	migrateDir = flag.String("migrations", "migrations", "Directory containing per-driver migration folders")
)

func main() {
	flag.Parse()

	log, err := logctx.New(getEnvOrDefault("ENV", "local"))
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	ctx := context.Background()
	dir := filepath.Join(*migrateDir, *driver)

	switch *driver {
	case config.DriverSpanner:
		err = migrate.Spanner(ctx, log, migrate.SpannerTarget{
			Project:  *projectID,
			Instance: *instanceID,
			Database: *databaseID,
		}, dir)
	case config.DriverPostgres:
		if *dsn == "" {
			log.Fatal("postgres driver requires -dsn or POSTGRES_DSN")
		}
		err = migrate.Postgres(ctx, log, *dsn, dir)
	default:
		log.Fatal("unsupported driver", zap.String("driver", *driver))
	}
	if err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}

	log.Info("migrations completed", zap.String("driver", *driver))
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
