package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	contactdomain "github.com/light-bringer/autocat-service/internal/app/contact/domain"
	"github.com/light-bringer/autocat-service/internal/app/vehicle/domain"
	"github.com/light-bringer/autocat-service/internal/transport/http/middleware"
)

// StatusClientClosedRequest is the non-standard "client went away" status.
const StatusClientClosedRequest = 499

var (
	errRouteNotFound    = errors.New("route not found")
	errMethodNotAllowed = errors.New("method not allowed")
	errMalformedBody    = errors.New("malformed request body")
	errInternal         = errors.New("internal")
)

// APIError is the error object of every failed response.
type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"requestId,omitempty"`
	Details   any    `json:"details,omitempty"`
}

// ErrorResponse is the failure envelope.
type ErrorResponse struct {
	Success bool     `json:"success"`
	Error   APIError `json:"error"`
}

// SuccessResponse is the success envelope.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data"`
	Message string `json:"message,omitempty"`
}

// toHTTP maps an error to a status code and a client-safe APIError.
func toHTTP(err error) (int, APIError) {
	var invalid *contactdomain.ValidationError

	switch {
	case err == nil:
		return http.StatusInternalServerError, APIError{Code: "internal", Message: "internal error"}

	case errors.As(err, &invalid):
		return http.StatusBadRequest, APIError{
			Code:    "validation_error",
			Message: "please fill in all required fields",
			Details: invalid.Fields,
		}
	case errors.Is(err, contactdomain.ErrRateLimited):
		return http.StatusTooManyRequests, APIError{
			Code:    "rate_limit_exceeded",
			Message: "multiple submissions detected, please wait a few minutes before trying again",
		}

	case errors.Is(err, domain.ErrInvalidYearRange):
		return http.StatusBadRequest, APIError{Code: "invalid_year_range", Message: domain.ErrInvalidYearRange.Error()}
	case errors.Is(err, domain.ErrInvalidPriceRange):
		return http.StatusBadRequest, APIError{Code: "invalid_price_range", Message: domain.ErrInvalidPriceRange.Error()}
	case errors.Is(err, domain.ErrInvalidPage),
		errors.Is(err, domain.ErrInvalidPageSize),
		errors.Is(err, domain.ErrInvalidYear),
		errors.Is(err, domain.ErrInvalidPrice),
		errors.Is(err, domain.ErrInvalidSortOrder),
		errors.Is(err, domain.ErrInvalidTransmission):
		return http.StatusBadRequest, APIError{Code: "validation_error", Message: err.Error()}
	case errors.Is(err, errMalformedBody):
		return http.StatusBadRequest, APIError{Code: "invalid_body", Message: "request body is not valid JSON"}

	case errors.Is(err, domain.ErrVehicleNotFound):
		return http.StatusNotFound, APIError{Code: "not_found", Message: "vehicle not found"}
	case errors.Is(err, errRouteNotFound):
		return http.StatusNotFound, APIError{Code: "not_found", Message: "not found"}
	case errors.Is(err, errMethodNotAllowed):
		return http.StatusMethodNotAllowed, APIError{Code: "method_not_allowed", Message: "method not allowed"}

	case errors.Is(err, domain.ErrStoreUnavailable):
		return http.StatusServiceUnavailable, APIError{Code: "unavailable", Message: "catalog temporarily unavailable"}
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, APIError{Code: "deadline_exceeded", Message: "request timed out"}
	case errors.Is(err, context.Canceled):
		return StatusClientClosedRequest, APIError{Code: "canceled", Message: "request canceled"}

	default:
		return http.StatusInternalServerError, APIError{Code: "internal", Message: "internal error"}
	}
}

// WriteError writes the failure envelope for err, tagged with the request id.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, apiErr := toHTTP(err)

	apiErr.RequestID = middleware.RequestIDFrom(r.Context())
	if apiErr.RequestID == "" {
		apiErr.RequestID = r.Header.Get(middleware.HeaderRequestID)
	}

	writeJSON(w, status, ErrorResponse{Error: apiErr})
}

func writeData(w http.ResponseWriter, status int, data any, message string) {
	writeJSON(w, status, SuccessResponse{Success: true, Data: data, Message: message})
}

func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}
