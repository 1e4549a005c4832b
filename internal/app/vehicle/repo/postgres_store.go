package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/light-bringer/autocat-service/internal/app/vehicle/contracts"
	"github.com/light-bringer/autocat-service/internal/app/vehicle/domain"
	"github.com/light-bringer/autocat-service/internal/models/m_vehicle"
	"github.com/light-bringer/autocat-service/internal/models/m_vehicle_detail"
	"github.com/light-bringer/autocat-service/internal/pkg/query"
)

// PostgresStore implements RecordStore over PostgreSQL. Details are kept
// as jsonb documents next to the vehicles table.
type PostgresStore struct {
	db *pgxpool.Pool
}

var (
	_ contracts.RecordStore   = (*PostgresStore)(nil)
	_ contracts.CatalogLoader = (*PostgresStore)(nil)
)

// NewPostgresStore opens a pool for dsn and checks connectivity.
func NewPostgresStore(ctx context.Context, dsn string) (*PostgresStore, error) {
	const op = "repo.postgres.New"

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	db, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &PostgresStore{db: db}, nil
}

// Close releases the pool.
func (s *PostgresStore) Close() {
	s.db.Close()
}

// Ping checks the connection, for readiness probes.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

// querier is satisfied by both the pool and a transaction.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// AllSummaries reads every vehicle row in catalog order.
func (s *PostgresStore) AllSummaries(ctx context.Context) ([]domain.VehicleSummary, error) {
	return readSummariesPG(ctx, s.db)
}

// DetailByKey reads one detail document.
func (s *PostgresStore) DetailByKey(ctx context.Context, key string) (domain.VehicleDetail, bool, error) {
	return readDetailPG(ctx, s.db, key)
}

// DetailWithSummaries runs both reads in one read-only repeatable-read
// transaction.
func (s *PostgresStore) DetailWithSummaries(ctx context.Context, key string) (domain.VehicleDetail, []domain.VehicleSummary, bool, error) {
	const op = "repo.postgres.DetailWithSummaries"

	var (
		detail    domain.VehicleDetail
		summaries []domain.VehicleSummary
		found     bool
	)
	opts := pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}
	err := pgx.BeginTxFunc(ctx, s.db, opts, func(tx pgx.Tx) error {
		var err error
		detail, found, err = readDetailPG(ctx, tx, key)
		if err != nil || !found {
			return err
		}
		summaries, err = readSummariesPG(ctx, tx)
		return err
	})
	if err != nil {
		return domain.VehicleDetail{}, nil, false, fmt.Errorf("%s: %w", op, err)
	}
	if !found {
		return domain.VehicleDetail{}, nil, false, nil
	}
	return detail, summaries, true, nil
}

func readSummariesPG(ctx context.Context, q querier) ([]domain.VehicleSummary, error) {
	const op = "repo.postgres.AllSummaries"

	sql, args := query.From(m_vehicle.TableName).
		Select(m_vehicle.Columns()...).
		OrderBy(m_vehicle.Position, query.Asc).
		BuildPositional()

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	summaries := make([]domain.VehicleSummary, 0)
	for rows.Next() {
		var (
			v            domain.VehicleSummary
			position     int64
			mileage      *int
			transmission *string
		)
		if err := rows.Scan(
			&v.Key,
			&position,
			&v.Brand,
			&v.Model,
			&v.Year,
			&v.Price,
			&v.MainImageURL,
			&mileage,
			&transmission,
		); err != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, err)
		}

		v.Mileage = mileage
		if transmission != nil && *transmission != "" {
			t := domain.Transmission(*transmission)
			v.Transmission = &t
		}
		summaries = append(summaries, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, err)
	}

	return summaries, nil
}

func readDetailPG(ctx context.Context, q querier, key string) (domain.VehicleDetail, bool, error) {
	const op = "repo.postgres.DetailByKey"

	sql, args := query.From(m_vehicle_detail.TableName).
		Select(m_vehicle_detail.Payload).
		Where(query.Eq(m_vehicle_detail.VehicleKey, key)).
		BuildPositional()

	var payload []byte
	if err := q.QueryRow(ctx, sql, args...).Scan(&payload); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.VehicleDetail{}, false, nil
		}
		return domain.VehicleDetail{}, false, fmt.Errorf("%s: %w", op, err)
	}

	var detail domain.VehicleDetail
	if err := json.Unmarshal(payload, &detail); err != nil {
		return domain.VehicleDetail{}, false, fmt.Errorf("%s: decode payload: %w", op, err)
	}
	detail.Key = key
	return detail, true, nil
}

// Load replaces the stored catalog in one transaction.
func (s *PostgresStore) Load(ctx context.Context, summaries []domain.VehicleSummary, details map[string]domain.VehicleDetail) error {
	const op = "repo.postgres.Load"

	if err := ValidateCatalog(summaries, details); err != nil {
		return err
	}

	batch := &pgx.Batch{}
	batch.Queue(`DELETE FROM vehicle_details`)
	batch.Queue(`DELETE FROM vehicles`)

	for i, v := range summaries {
		var transmission *string
		if v.HasTransmission() {
			t := string(*v.Transmission)
			transmission = &t
		}
		batch.Queue(`
		INSERT INTO vehicles (vehicle_key, position, brand, model, year, price, main_image_url, mileage, transmission)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`, v.Key, i, v.Brand, v.Model, v.Year, v.Price, v.MainImageURL, v.Mileage, transmission)
	}

	for key, d := range details {
		payload, err := json.Marshal(d)
		if err != nil {
			return fmt.Errorf("%s: encode detail %q: %w", op, key, err)
		}
		batch.Queue(`INSERT INTO vehicle_details (vehicle_key, payload) VALUES ($1, $2)`, key, payload)
	}

	err := pgx.BeginFunc(ctx, s.db, func(tx pgx.Tx) error {
		br := tx.SendBatch(ctx, batch)
		for i := 0; i < batch.Len(); i++ {
			if _, err := br.Exec(); err != nil {
				_ = br.Close()
				return fmt.Errorf("batch item %d: %w", i, err)
			}
		}
		return br.Close()
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
