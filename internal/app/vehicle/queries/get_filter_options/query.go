package get_filter_options

import (
	"context"

	"go.uber.org/zap"

	"github.com/light-bringer/autocat-service/internal/app/vehicle/catalog"
	"github.com/light-bringer/autocat-service/internal/app/vehicle/contracts"
	"github.com/light-bringer/autocat-service/internal/app/vehicle/domain"
	"github.com/light-bringer/autocat-service/internal/metrics"
	"github.com/light-bringer/autocat-service/internal/pkg/logctx"
)

// Query handles the filter options query use case.
type Query struct {
	store contracts.RecordStore
}

// NewQuery creates a new filter options query.
func NewQuery(store contracts.RecordStore) *Query {
	return &Query{
		store: store,
	}
}

// Execute derives the filter options from the current store snapshot.
// Results are never cached.
func (q *Query) Execute(ctx context.Context) (*domain.FilterOptions, error) {
	records, err := q.store.AllSummaries(ctx)
	if err != nil {
		metrics.StoreErrors.WithLabelValues("all_summaries").Inc()
		logctx.From(ctx).Error("failed to read summaries",
			zap.String("op", "get_filter_options"),
			zap.Error(err),
		)
		return nil, domain.StoreUnavailable(err)
	}

	opts := catalog.Options(records)
	return &opts, nil
}
