// Package migrate bootstraps the catalog schema in Spanner and Postgres.
package migrate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	database "cloud.google.com/go/spanner/admin/database/apiv1"
	"cloud.google.com/go/spanner/admin/database/apiv1/databasepb"
	instance "cloud.google.com/go/spanner/admin/instance/apiv1"
	"cloud.google.com/go/spanner/admin/instance/apiv1/instancepb"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// SpannerTarget names the database to migrate.
type SpannerTarget struct {
	Project  string
	Instance string
	Database string
}

func (t SpannerTarget) instancePath() string {
	return fmt.Sprintf("projects/%s/instances/%s", t.Project, t.Instance)
}

// DatabasePath is the fully qualified database name the client expects.
func (t SpannerTarget) DatabasePath() string {
	return fmt.Sprintf("%s/databases/%s", t.instancePath(), t.Database)
}

// Spanner ensures the instance and database exist, then applies every
// *.sql file in dir in lexical order.
func Spanner(ctx context.Context, log *zap.Logger, t SpannerTarget, dir string) error {
	if host := os.Getenv("SPANNER_EMULATOR_HOST"); host != "" {
		log.Info("using spanner emulator", zap.String("host", host))
	}

	if err := ensureInstance(ctx, log, t); err != nil {
		return fmt.Errorf("failed to ensure instance: %w", err)
	}
	if err := ensureDatabase(ctx, log, t); err != nil {
		return fmt.Errorf("failed to ensure database: %w", err)
	}
	if err := applySpannerDDL(ctx, log, t, dir); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

func ensureInstance(ctx context.Context, log *zap.Logger, t SpannerTarget) error {
	instanceAdmin, err := instance.NewInstanceAdminClient(ctx)
	if err != nil {
		return fmt.Errorf("failed to create instance admin client: %w", err)
	}
	defer instanceAdmin.Close()

	_, err = instanceAdmin.GetInstance(ctx, &instancepb.GetInstanceRequest{Name: t.instancePath()})
	if err == nil {
		log.Info("instance already exists", zap.String("instance", t.Instance))
		return nil
	}
	if status.Code(err) != codes.NotFound {
		log.Warn("unexpected error checking instance", zap.Error(err))
		return nil
	}

	log.Info("creating instance", zap.String("instance", t.Instance))
	op, err := instanceAdmin.CreateInstance(ctx, &instancepb.CreateInstanceRequest{
		Parent:     fmt.Sprintf("projects/%s", t.Project),
		InstanceId: t.Instance,
		Instance: &instancepb.Instance{
			Config:      fmt.Sprintf("projects/%s/instanceConfigs/emulator-config", t.Project),
			DisplayName: "Catalog Instance",
			NodeCount:   1,
		},
	})
	if err != nil {
		if status.Code(err) != codes.AlreadyExists {
			return fmt.Errorf("failed to create instance: %w", err)
		}
		return nil
	}

	// The emulator may finish before Wait is called.
	if _, err := op.Wait(ctx); err != nil && status.Code(err) != codes.AlreadyExists {
		log.Warn("instance creation wait failed", zap.Error(err))
	}
	return nil
}

func ensureDatabase(ctx context.Context, log *zap.Logger, t SpannerTarget) error {
	adminClient, err := database.NewDatabaseAdminClient(ctx)
	if err != nil {
		return fmt.Errorf("failed to create admin client: %w", err)
	}
	defer adminClient.Close()

	_, err = adminClient.GetDatabase(ctx, &databasepb.GetDatabaseRequest{Name: t.DatabasePath()})
	if err == nil {
		log.Info("database already exists", zap.String("database", t.Database))
		return nil
	}

	if status.Code(err) == codes.NotFound {
		log.Info("creating database", zap.String("database", t.Database))
		op, err := adminClient.CreateDatabase(ctx, &databasepb.CreateDatabaseRequest{
			Parent:          t.instancePath(),
			CreateStatement: fmt.Sprintf("CREATE DATABASE `%s`", t.Database),
		})
		if err != nil {
			if status.Code(err) != codes.AlreadyExists {
				return fmt.Errorf("failed to create database: %w", err)
			}
			return nil
		}
		if _, err := op.Wait(ctx); err != nil {
			return fmt.Errorf("failed to wait for database creation: %w", err)
		}
		return nil
	}

	if os.Getenv("SPANNER_EMULATOR_HOST") != "" {
		log.Warn("proceeding with database in emulator mode", zap.Error(err))
		return nil
	}
	return fmt.Errorf("failed to check database: %w", err)
}

func applySpannerDDL(ctx context.Context, log *zap.Logger, t SpannerTarget, dir string) error {
	files, err := Files(dir, "*.sql")
	if err != nil {
		return err
	}
	if len(files) == 0 {
		log.Info("no migration files found", zap.String("dir", dir))
		return nil
	}

	adminClient, err := database.NewDatabaseAdminClient(ctx)
	if err != nil {
		return fmt.Errorf("failed to create admin client: %w", err)
	}
	defer adminClient.Close()

	for _, file := range files {
		name := filepath.Base(file)

		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", file, err)
		}

		op, err := adminClient.UpdateDatabaseDdl(ctx, &databasepb.UpdateDatabaseDdlRequest{
			Database:   t.DatabasePath(),
			Statements: SplitStatements(string(content)),
		})
		if err != nil {
			return fmt.Errorf("failed to start DDL update for %s: %w", name, err)
		}
		if err := op.Wait(ctx); err != nil {
			return fmt.Errorf("failed to apply DDL for %s: %w", name, err)
		}

		log.Info("applied migration", zap.String("file", name))
	}
	return nil
}
