package domain

import (
	"errors"
	"fmt"
)

// Domain errors as sentinel values
var (
	// Lookup errors
	ErrVehicleNotFound  = errors.New("vehicle not found")
	ErrStoreUnavailable = errors.New("record store unavailable")

	// Listing request errors
	ErrInvalidPage         = errors.New("page must be at least 1")
	ErrInvalidPageSize     = errors.New("page size must be 12, 24, 36 or 48")
	ErrInvalidYear         = errors.New("year bound must be 1900 or later")
	ErrInvalidPrice        = errors.New("price bound cannot be negative")
	ErrInvalidYearRange    = errors.New("minimum year cannot be greater than maximum year")
	ErrInvalidPriceRange   = errors.New("minimum price cannot be greater than maximum price")
	ErrInvalidSortOrder    = errors.New("unknown sort order")
	ErrInvalidTransmission = errors.New("unknown transmission type")

	// Catalog consistency errors
	ErrDuplicateKey = errors.New("duplicate vehicle key")
	ErrOrphanDetail = errors.New("detail record has no matching summary")
	ErrPrimaryPhoto = errors.New("gallery must have exactly one primary photo")
)

// StoreUnavailable marks err as a record store failure. It is a no-op for
// errors that already carry ErrStoreUnavailable.
func StoreUnavailable(err error) error {
	if err == nil || errors.Is(err, ErrStoreUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
}
