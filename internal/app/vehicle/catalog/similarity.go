package catalog

import "github.com/light-bringer/autocat-service/internal/app/vehicle/domain"

const (
	// MaxSimilar caps the similar-vehicle list.
	MaxSimilar = 6
	// PriceBand is the fraction of the target price that still counts as similar.
	PriceBand = 0.2
)

// Similar picks up to MaxSimilar records, other than the target itself,
// that share its brand or sit within PriceBand of its price. Candidates
// are taken in store order; there is no ranking.
func Similar(target domain.VehicleSummary, records []domain.VehicleSummary) []domain.VehicleSummary {
	band := target.Price * PriceBand
	low, high := target.Price-band, target.Price+band

	out := make([]domain.VehicleSummary, 0, MaxSimilar)
	for _, v := range records {
		if len(out) == MaxSimilar {
			break
		}
		if v.Key == target.Key {
			continue
		}
		if v.Brand == target.Brand || (v.Price >= low && v.Price <= high) {
			out = append(out, v)
		}
	}
	return out
}

// Augment builds the detail view for d using records as the candidate pool.
func Augment(d domain.VehicleDetail, records []domain.VehicleSummary) domain.VehicleDetailView {
	target := domain.VehicleSummary{Key: d.Key, Brand: d.Brand, Model: d.Model, Price: d.Price}
	for _, v := range records {
		if v.Key == d.Key {
			target = v
			break
		}
	}

	return domain.VehicleDetailView{
		VehicleDetail:      d,
		SimilarVehicles:    Similar(target, records),
		SimilarityCriteria: append([]string(nil), domain.SimilarityCriteria...),
		DisplayFormat:      domain.DisplayCarousel,
		CardFields:         append([]string(nil), domain.CardFields...),
	}
}
