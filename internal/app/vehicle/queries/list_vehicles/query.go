package list_vehicles

import (
	"context"

	"go.uber.org/zap"

	"github.com/light-bringer/autocat-service/internal/app/vehicle/catalog"
	"github.com/light-bringer/autocat-service/internal/app/vehicle/contracts"
	"github.com/light-bringer/autocat-service/internal/app/vehicle/domain"
	"github.com/light-bringer/autocat-service/internal/metrics"
	"github.com/light-bringer/autocat-service/internal/pkg/logctx"
)

// Request contains filtering, ordering and pagination parameters.
// Zero Page and PageSize select the defaults.
type Request struct {
	Criteria domain.FilterCriteria
	Sort     domain.SortOrder
	Page     int
	PageSize int
}

// Query handles the list vehicles query use case.
type Query struct {
	store contracts.RecordStore
}

// NewQuery creates a new list vehicles query.
func NewQuery(store contracts.RecordStore) *Query {
	return &Query{
		store: store,
	}
}

// Execute reads the store once and runs the listing pipeline over that snapshot.
// Zero matches and out-of-range pages are successful results.
func (q *Query) Execute(ctx context.Context, req *Request) (*domain.ListingResponse, error) {
	log := logctx.From(ctx).With(zap.String("op", "list_vehicles"))

	records, err := q.store.AllSummaries(ctx)
	if err != nil {
		metrics.StoreErrors.WithLabelValues("all_summaries").Inc()
		log.Error("failed to read summaries", zap.Error(err))
		return nil, domain.StoreUnavailable(err)
	}

	resp := catalog.List(records, domain.ListingRequest{
		Criteria: req.Criteria,
		Sort:     req.Sort,
		Page:     req.Page,
		PageSize: req.PageSize,
	})

	metrics.ListingRequests.WithLabelValues(resp.AppliedFilters.Sort.String()).Inc()
	metrics.ListingMatches.Observe(float64(resp.Pagination.TotalCount))
	log.Debug("listed vehicles",
		zap.Int("store_size", len(records)),
		zap.Int("matches", resp.Pagination.TotalCount),
		zap.Int("page", resp.Pagination.CurrentPage),
		zap.Stringer("sort", resp.AppliedFilters.Sort),
	)

	return &resp, nil
}
