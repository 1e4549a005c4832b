package catalog

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/light-bringer/autocat-service/internal/app/vehicle/domain"
)

// Sort returns a stably ordered copy of records. Ties keep their input order.
func Sort(records []domain.VehicleSummary, order domain.SortOrder) []domain.VehicleSummary {
	out := slices.Clone(records)
	if out == nil {
		out = []domain.VehicleSummary{}
	}

	spec := order.Spec()
	compare := comparator(spec.Key)
	if compare == nil {
		return out
	}
	if spec.Descending {
		asc := compare
		compare = func(a, b domain.VehicleSummary) int { return asc(b, a) }
	}

	slices.SortStableFunc(out, compare)
	return out
}

func comparator(key domain.SortKey) func(a, b domain.VehicleSummary) int {
	switch key {
	case domain.KeyPrice:
		return func(a, b domain.VehicleSummary) int { return cmp.Compare(a.Price, b.Price) }
	case domain.KeyYear:
		return func(a, b domain.VehicleSummary) int { return cmp.Compare(a.Year, b.Year) }
	case domain.KeyModel:
		// Collator keeps a scratch buffer, so each sort gets its own.
		col := collate.New(language.English, collate.IgnoreCase)
		return func(a, b domain.VehicleSummary) int { return col.CompareString(a.Model, b.Model) }
	default:
		return nil
	}
}
