package contracts

import (
	"context"

	"github.com/light-bringer/autocat-service/internal/app/vehicle/domain"
)

//go:generate mockgen -source=record_store.go -destination=../../../../mocks/mock_record_store.go -package=mocks

// RecordStore is the authoritative source of vehicle records.
// Every call must observe one consistent snapshot of the catalog.
type RecordStore interface {
	// AllSummaries returns every summary in the store's natural order.
	// Callers own the returned slice.
	AllSummaries(ctx context.Context) ([]domain.VehicleSummary, error)

	// DetailByKey returns the detail record for key. found is false when
	// the key has no detail record; that is not an error.
	DetailByKey(ctx context.Context, key string) (detail domain.VehicleDetail, found bool, err error)

	// DetailWithSummaries reads the detail record for key and every summary
	// from the same snapshot. summaries is nil when found is false.
	DetailWithSummaries(ctx context.Context, key string) (detail domain.VehicleDetail, summaries []domain.VehicleSummary, found bool, err error)
}
