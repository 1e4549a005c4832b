package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/autocat-service/internal/app/vehicle/contracts"
	"github.com/light-bringer/autocat-service/internal/app/vehicle/domain"
	"github.com/light-bringer/autocat-service/internal/models/m_vehicle"
	"github.com/light-bringer/autocat-service/internal/models/m_vehicle_detail"
	"github.com/light-bringer/autocat-service/internal/pkg/committer"
	"github.com/light-bringer/autocat-service/internal/pkg/query"
)

// SpannerStore implements RecordStore for Spanner. Each call runs in one
// read-only transaction, so one call sees one snapshot.
type SpannerStore struct {
	client    *spanner.Client
	committer *committer.Committer
	vehicles  *m_vehicle.Model
	details   *m_vehicle_detail.Model
}

var (
	_ contracts.RecordStore   = (*SpannerStore)(nil)
	_ contracts.CatalogLoader = (*SpannerStore)(nil)
)

// NewSpannerStore creates a new Spanner-backed store.
func NewSpannerStore(client *spanner.Client, comm *committer.Committer) *SpannerStore {
	return &SpannerStore{
		client:    client,
		committer: comm,
		vehicles:  m_vehicle.NewModel(),
		details:   m_vehicle_detail.NewModel(),
	}
}

// AllSummaries reads every vehicle row in catalog order.
func (s *SpannerStore) AllSummaries(ctx context.Context) ([]domain.VehicleSummary, error) {
	return readSummaries(ctx, s.client.Single())
}

// DetailByKey reads one detail row.
func (s *SpannerStore) DetailByKey(ctx context.Context, key string) (domain.VehicleDetail, bool, error) {
	return readDetail(ctx, s.client.Single(), key)
}

// DetailWithSummaries runs both reads in a multi-use read-only
// transaction pinned to one timestamp.
func (s *SpannerStore) DetailWithSummaries(ctx context.Context, key string) (domain.VehicleDetail, []domain.VehicleSummary, bool, error) {
	txn := s.client.ReadOnlyTransaction()
	defer txn.Close()

	detail, found, err := readDetail(ctx, txn, key)
	if err != nil || !found {
		return domain.VehicleDetail{}, nil, false, err
	}

	summaries, err := readSummaries(ctx, txn)
	if err != nil {
		return domain.VehicleDetail{}, nil, false, err
	}
	return detail, summaries, true, nil
}

func readSummaries(ctx context.Context, txn *spanner.ReadOnlyTransaction) ([]domain.VehicleSummary, error) {
	stmt := query.From(m_vehicle.TableName).
		Select(m_vehicle.Columns()...).
		OrderBy(m_vehicle.Position, query.Asc).
		Build()

	iter := txn.Query(ctx, stmt)
	defer iter.Stop()

	summaries := make([]domain.VehicleSummary, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate vehicles: %w", err)
		}

		var data m_vehicle.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse vehicle: %w", err)
		}
		summaries = append(summaries, data.ToSummary())
	}

	return summaries, nil
}

func readDetail(ctx context.Context, txn *spanner.ReadOnlyTransaction, key string) (domain.VehicleDetail, bool, error) {
	stmt := query.From(m_vehicle_detail.TableName).
		Select(m_vehicle_detail.VehicleKey, m_vehicle_detail.Payload).
		Where(query.Eq(m_vehicle_detail.VehicleKey, key)).
		Build()

	iter := txn.Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return domain.VehicleDetail{}, false, nil
	}
	if err != nil {
		return domain.VehicleDetail{}, false, fmt.Errorf("failed to read vehicle detail: %w", err)
	}

	var data m_vehicle_detail.Data
	if err := row.ToStruct(&data); err != nil {
		return domain.VehicleDetail{}, false, fmt.Errorf("failed to parse vehicle detail: %w", err)
	}

	detail, err := data.ToDetail()
	if err != nil {
		return domain.VehicleDetail{}, false, err
	}
	return detail, true, nil
}

// Load replaces the stored catalog in one transaction.
func (s *SpannerStore) Load(ctx context.Context, summaries []domain.VehicleSummary, details map[string]domain.VehicleDetail) error {
	if err := ValidateCatalog(summaries, details); err != nil {
		return err
	}
	return s.committer.Apply(ctx, s.LoadPlan(summaries, details))
}

// LoadPlan builds the mutations that replace the stored catalog.
func (s *SpannerStore) LoadPlan(summaries []domain.VehicleSummary, details map[string]domain.VehicleDetail) *committer.CommitPlan {
	plan := committer.NewPlan()
	plan.Add(s.details.DeleteAllMut())
	plan.Add(s.vehicles.DeleteAllMut())

	for i, v := range summaries {
		plan.Add(s.vehicles.InsertMut(m_vehicle.FromSummary(i, v)))
	}
	for _, d := range details {
		plan.Add(s.details.InsertMut(m_vehicle_detail.FromDetail(d)))
	}
	return plan
}
