package catalog

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/light-bringer/autocat-service/internal/app/vehicle/domain"
)

var errMalformedRequest = errors.New("malformed request")

// mapDomainErrorToGRPC converts domain errors to gRPC status codes.
func mapDomainErrorToGRPC(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, domain.ErrVehicleNotFound):
		return status.Error(codes.NotFound, "vehicle not found")

	case errors.Is(err, errMalformedRequest),
		errors.Is(err, domain.ErrInvalidPage),
		errors.Is(err, domain.ErrInvalidPageSize),
		errors.Is(err, domain.ErrInvalidYear),
		errors.Is(err, domain.ErrInvalidPrice),
		errors.Is(err, domain.ErrInvalidYearRange),
		errors.Is(err, domain.ErrInvalidPriceRange),
		errors.Is(err, domain.ErrInvalidSortOrder),
		errors.Is(err, domain.ErrInvalidTransmission):
		return status.Error(codes.InvalidArgument, err.Error())

	case errors.Is(err, domain.ErrStoreUnavailable):
		return status.Error(codes.Unavailable, "catalog temporarily unavailable")

	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "deadline exceeded")
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "request canceled")

	default:
		return status.Error(codes.Internal, "internal server error")
	}
}
