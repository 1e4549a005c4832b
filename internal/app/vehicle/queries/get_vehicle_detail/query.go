package get_vehicle_detail

import (
	"context"

	"go.uber.org/zap"

	"github.com/light-bringer/autocat-service/internal/app/vehicle/catalog"
	"github.com/light-bringer/autocat-service/internal/app/vehicle/contracts"
	"github.com/light-bringer/autocat-service/internal/app/vehicle/domain"
	"github.com/light-bringer/autocat-service/internal/metrics"
	"github.com/light-bringer/autocat-service/internal/pkg/logctx"
)

// Request identifies the vehicle to resolve.
type Request struct {
	Key string
}

// Query handles the vehicle detail query use case.
type Query struct {
	store contracts.RecordStore
}

// NewQuery creates a new vehicle detail query.
func NewQuery(store contracts.RecordStore) *Query {
	return &Query{
		store: store,
	}
}

// Execute resolves the detail for req.Key and attaches similar vehicles
// drawn from the same store snapshot as the detail.
// The bool is false when the key has no detail record; mapping that to a
// not-found response is the caller's job.
func (q *Query) Execute(ctx context.Context, req *Request) (*domain.VehicleDetailView, bool, error) {
	log := logctx.From(ctx).With(zap.String("op", "get_vehicle_detail"), zap.String("key", req.Key))

	detail, records, found, err := q.store.DetailWithSummaries(ctx, req.Key)
	if err != nil {
		return nil, false, q.storeFailure(log, "detail_with_summaries", err)
	}
	if !found {
		metrics.DetailLookups.WithLabelValues(metrics.OutcomeNotFound).Inc()
		log.Debug("vehicle detail not found")
		return nil, false, nil
	}

	v := catalog.Augment(detail, records)
	metrics.DetailLookups.WithLabelValues(metrics.OutcomeFound).Inc()
	log.Debug("resolved vehicle detail", zap.Int("similar", len(v.SimilarVehicles)))

	return &v, true, nil
}

func (q *Query) storeFailure(log *zap.Logger, op string, err error) error {
	metrics.StoreErrors.WithLabelValues(op).Inc()
	metrics.DetailLookups.WithLabelValues(metrics.OutcomeError).Inc()
	log.Error("record store read failed", zap.String("store_op", op), zap.Error(err))
	return domain.StoreUnavailable(err)
}
