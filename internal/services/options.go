package services

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"go.uber.org/zap"

	contactrepo "github.com/light-bringer/autocat-service/internal/app/contact/repo"
	"github.com/light-bringer/autocat-service/internal/app/contact/usecases/submit_inquiry"
	"github.com/light-bringer/autocat-service/internal/app/vehicle/contracts"
	"github.com/light-bringer/autocat-service/internal/app/vehicle/fixtures"
	"github.com/light-bringer/autocat-service/internal/app/vehicle/queries/get_filter_options"
	"github.com/light-bringer/autocat-service/internal/app/vehicle/queries/get_vehicle_detail"
	"github.com/light-bringer/autocat-service/internal/app/vehicle/queries/list_vehicles"
	"github.com/light-bringer/autocat-service/internal/app/vehicle/repo"
	"github.com/light-bringer/autocat-service/internal/config"
	"github.com/light-bringer/autocat-service/internal/pkg/clock"
	"github.com/light-bringer/autocat-service/internal/pkg/committer"
	"github.com/light-bringer/autocat-service/internal/pkg/ratelimit"
	"github.com/light-bringer/autocat-service/internal/transport/grpc/catalog"
	httptransport "github.com/light-bringer/autocat-service/internal/transport/http"
)

// Store is a record store that can also be (re)loaded.
type Store interface {
	contracts.RecordStore
	contracts.CatalogLoader
}

// ServiceOptions holds all dependencies for the application.
type ServiceOptions struct {
	Store          Store
	CatalogHandler *catalog.Handler
	HTTPHandler    *httptransport.Handler

	closers []func()
}

// OpenStore connects the record store selected by cfg. The memory store
// starts with the demo catalog.
func OpenStore(ctx context.Context, cfg config.StoreConfig, log *zap.Logger) (Store, func(), error) {
	switch cfg.Driver {
	case config.DriverMemory:
		store, err := repo.NewMemoryStore(fixtures.Summaries(), fixtures.Details())
		if err != nil {
			return nil, nil, fmt.Errorf("failed to build memory store: %w", err)
		}
		log.Info("record store ready", zap.String("driver", cfg.Driver))
		return store, func() {}, nil

	case config.DriverSpanner:
		client, err := spanner.NewClient(ctx, cfg.SpannerDatabase)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create Spanner client: %w", err)
		}
		log.Info("record store ready", zap.String("driver", cfg.Driver), zap.String("database", cfg.SpannerDatabase))
		return repo.NewSpannerStore(client, committer.NewCommitter(client)), client.Close, nil

	case config.DriverPostgres:
		store, err := repo.NewPostgresStore(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to Postgres: %w", err)
		}
		log.Info("record store ready", zap.String("driver", cfg.Driver))
		return store, store.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}

// NewServiceOptions creates and wires up all application dependencies.
func NewServiceOptions(ctx context.Context, cfg *config.Config, log *zap.Logger) (*ServiceOptions, error) {
	// 1. Record store
	store, closeStore, err := OpenStore(ctx, cfg.Store, log)
	if err != nil {
		return nil, err
	}

	// 2. Infrastructure components
	clk := clock.System
	limiter := ratelimit.NewKeyed(cfg.Contact.MaxAttempts, cfg.Contact.Window, clk)

	// 3. Queries (read operations)
	listVehicles := list_vehicles.NewQuery(store)
	filterOptions := get_filter_options.NewQuery(store)
	vehicleDetail := get_vehicle_detail.NewQuery(store)

	// 4. Use cases (write operations)
	submitInquiry := submit_inquiry.NewInteractor(contactrepo.NewMemoryRepo(), limiter, clk)

	return &ServiceOptions{
		Store:          store,
		CatalogHandler: catalog.NewHandler(listVehicles, filterOptions, vehicleDetail),
		HTTPHandler:    httptransport.NewHandler(listVehicles, filterOptions, vehicleDetail, submitInquiry),
		closers:        []func(){closeStore},
	}, nil
}

// Close closes all resources.
func (s *ServiceOptions) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
}
