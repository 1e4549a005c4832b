package catalog

import "github.com/light-bringer/autocat-service/internal/app/vehicle/domain"

// Paginate slices one page out of records and computes its metadata.
// Pages past the end are clamped to the last page. page and pageSize are
// expected to be normalized; a page below 1 is treated as 1 and a
// non-positive size as the default.
func Paginate[T any](records []T, page, pageSize int) ([]T, domain.PaginationMetadata) {
	if page < 1 {
		page = domain.DefaultPage
	}
	if pageSize < 1 {
		pageSize = domain.DefaultPageSize
	}

	total := len(records)
	totalPages := (total + pageSize - 1) / pageSize

	effective := min(page, max(totalPages, 1))
	start := min((effective-1)*pageSize, total)
	end := min(start+pageSize, total)

	from := 0
	if total > 0 {
		from = start + 1
	}

	meta := domain.PaginationMetadata{
		CurrentPage:    effective,
		PageSize:       pageSize,
		TotalPages:     max(totalPages, 1),
		TotalCount:     total,
		HasNext:        effective < totalPages,
		HasPrevious:    effective > 1,
		ExhibitingFrom: from,
		ExhibitingTo:   min(effective*pageSize, total),
	}

	out := make([]T, end-start)
	copy(out, records[start:end])
	return out, meta
}
