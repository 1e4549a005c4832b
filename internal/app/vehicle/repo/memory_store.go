package repo

import (
	"context"
	"fmt"
	"slices"
	"sync/atomic"

	"github.com/light-bringer/autocat-service/internal/app/vehicle/contracts"
	"github.com/light-bringer/autocat-service/internal/app/vehicle/domain"
)

// snapshot is an immutable view of the catalog. It is never modified after
// it is published.
type snapshot struct {
	summaries []domain.VehicleSummary
	details   map[string]domain.VehicleDetail
}

// MemoryStore is a RecordStore over an in-memory snapshot. Replace swaps the
// whole catalog atomically, so readers see either the old or the new one.
type MemoryStore struct {
	current atomic.Pointer[snapshot]
}

var (
	_ contracts.RecordStore   = (*MemoryStore)(nil)
	_ contracts.CatalogLoader = (*MemoryStore)(nil)
)

// NewMemoryStore builds a store from summaries (in natural order) and details.
func NewMemoryStore(summaries []domain.VehicleSummary, details map[string]domain.VehicleDetail) (*MemoryStore, error) {
	s := &MemoryStore{}
	if err := s.Replace(summaries, details); err != nil {
		return nil, err
	}
	return s, nil
}

// Replace validates and publishes a new catalog. On error the current
// catalog stays in place.
func (s *MemoryStore) Replace(summaries []domain.VehicleSummary, details map[string]domain.VehicleDetail) error {
	if err := ValidateCatalog(summaries, details); err != nil {
		return err
	}

	next := &snapshot{
		summaries: slices.Clone(summaries),
		details:   make(map[string]domain.VehicleDetail, len(details)),
	}
	for k, d := range details {
		next.details[k] = d
	}
	s.current.Store(next)
	return nil
}

// Load is Replace for the CatalogLoader contract.
func (s *MemoryStore) Load(_ context.Context, summaries []domain.VehicleSummary, details map[string]domain.VehicleDetail) error {
	return s.Replace(summaries, details)
}

// AllSummaries returns a copy of the current summaries.
func (s *MemoryStore) AllSummaries(_ context.Context) ([]domain.VehicleSummary, error) {
	snap := s.current.Load()
	if snap == nil {
		return []domain.VehicleSummary{}, nil
	}
	out := make([]domain.VehicleSummary, len(snap.summaries))
	copy(out, snap.summaries)
	return out, nil
}

// DetailByKey returns the detail record for key from the current snapshot.
func (s *MemoryStore) DetailByKey(_ context.Context, key string) (domain.VehicleDetail, bool, error) {
	snap := s.current.Load()
	if snap == nil {
		return domain.VehicleDetail{}, false, nil
	}
	d, ok := snap.details[key]
	return d, ok, nil
}

// DetailWithSummaries reads the detail and the summaries from one snapshot.
func (s *MemoryStore) DetailWithSummaries(_ context.Context, key string) (domain.VehicleDetail, []domain.VehicleSummary, bool, error) {
	snap := s.current.Load()
	if snap == nil {
		return domain.VehicleDetail{}, nil, false, nil
	}
	d, ok := snap.details[key]
	if !ok {
		return domain.VehicleDetail{}, nil, false, nil
	}
	return d, slices.Clone(snap.summaries), true, nil
}

// ValidateCatalog checks the consistency rules every store load must meet:
// unique summary keys, every detail backed by a summary, and exactly one
// primary photo per gallery.
func ValidateCatalog(summaries []domain.VehicleSummary, details map[string]domain.VehicleDetail) error {
	keys := make(map[string]struct{}, len(summaries))
	for _, v := range summaries {
		if _, dup := keys[v.Key]; dup {
			return fmt.Errorf("%w: %q", domain.ErrDuplicateKey, v.Key)
		}
		keys[v.Key] = struct{}{}
	}

	for k, d := range details {
		if d.Key != k {
			return fmt.Errorf("%w: detail indexed as %q carries key %q", domain.ErrOrphanDetail, k, d.Key)
		}
		if _, ok := keys[k]; !ok {
			return fmt.Errorf("%w: %q", domain.ErrOrphanDetail, k)
		}
		if _, err := d.PrimaryPhoto(); err != nil {
			return fmt.Errorf("detail %q: %w", k, err)
		}
	}
	return nil
}
