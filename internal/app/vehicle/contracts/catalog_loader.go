package contracts

import (
	"context"

	"github.com/light-bringer/autocat-service/internal/app/vehicle/domain"
)

// CatalogLoader replaces the whole stored catalog. Implementations validate
// the catalog first and leave the stored one untouched on failure.
type CatalogLoader interface {
	Load(ctx context.Context, summaries []domain.VehicleSummary, details map[string]domain.VehicleDetail) error
}
