package migrate

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const historyDDL = `CREATE TABLE IF NOT EXISTS schema_migrations (
    name       TEXT PRIMARY KEY,
    applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// Postgres applies every *.up.sql file in dir that has not been applied yet.
// Each file runs in its own transaction together with its history row.
func Postgres(ctx context.Context, log *zap.Logger, dsn, dir string) error {
	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer conn.Close(context.Background())

	if _, err := conn.Exec(ctx, historyDDL); err != nil {
		return fmt.Errorf("failed to create history table: %w", err)
	}

	files, err := Files(dir, "*.up.sql")
	if err != nil {
		return err
	}

	for _, file := range files {
		name := filepath.Base(file)

		var applied string
		err := conn.QueryRow(ctx, `SELECT name FROM schema_migrations WHERE name = $1`, name).Scan(&applied)
		if err == nil {
			log.Debug("migration already applied", zap.String("file", name))
			continue
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("failed to check %s: %w", name, err)
		}

		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", file, err)
		}

		err = pgx.BeginFunc(ctx, conn, func(tx pgx.Tx) error {
			if _, err := tx.Exec(ctx, string(content)); err != nil {
				return err
			}
			_, err := tx.Exec(ctx, `INSERT INTO schema_migrations (name) VALUES ($1)`, name)
			return err
		})
		if err != nil {
			return fmt.Errorf("failed to apply %s: %w", name, err)
		}

		log.Info("applied migration", zap.String("file", name))
	}
	return nil
}
