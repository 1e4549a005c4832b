package http

import (
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/light-bringer/autocat-service/internal/app/contact/usecases/submit_inquiry"
	"github.com/light-bringer/autocat-service/internal/app/vehicle/domain"
	"github.com/light-bringer/autocat-service/internal/app/vehicle/queries/get_filter_options"
	"github.com/light-bringer/autocat-service/internal/app/vehicle/queries/get_vehicle_detail"
	"github.com/light-bringer/autocat-service/internal/app/vehicle/queries/list_vehicles"
)

const maxContactBody = 64 << 10

// Handler serves the REST API. It's a thin coordinator that delegates to
// queries and use cases.
type Handler struct {
	listVehicles  *list_vehicles.Query
	filterOptions *get_filter_options.Query
	vehicleDetail *get_vehicle_detail.Query
	submitInquiry *submit_inquiry.Interactor
}

// NewHandler creates a new HTTP handler.
func NewHandler(
	listVehicles *list_vehicles.Query,
	filterOptions *get_filter_options.Query,
	vehicleDetail *get_vehicle_detail.Query,
	submitInquiry *submit_inquiry.Interactor,
) *Handler {
	return &Handler{
		listVehicles:  listVehicles,
		filterOptions: filterOptions,
		vehicleDetail: vehicleDetail,
		submitInquiry: submitInquiry,
	}
}

// ListVehicles handles GET /api/v1/vehicles.
func (h *Handler) ListVehicles(w http.ResponseWriter, r *http.Request) {
	req, err := parseListingRequest(r.URL.Query())
	if err != nil {
		WriteError(w, r, err)
		return
	}

	resp, err := h.listVehicles.Execute(r.Context(), &list_vehicles.Request{
		Criteria: req.Criteria,
		Sort:     req.Sort,
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		WriteError(w, r, err)
		return
	}

	writeData(w, http.StatusOK, resp, "")
}

// FilterOptions handles GET /api/v1/vehicles/filter-options.
func (h *Handler) FilterOptions(w http.ResponseWriter, r *http.Request) {
	opts, err := h.filterOptions.Execute(r.Context())
	if err != nil {
		WriteError(w, r, err)
		return
	}

	writeData(w, http.StatusOK, opts, "")
}

// VehicleDetail handles GET /api/v1/vehicles/{key}.
func (h *Handler) VehicleDetail(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	view, found, err := h.vehicleDetail.Execute(r.Context(), &get_vehicle_detail.Request{Key: key})
	if err != nil {
		WriteError(w, r, err)
		return
	}
	if !found {
		WriteError(w, r, domain.ErrVehicleNotFound)
		return
	}

	writeData(w, http.StatusOK, view, "")
}

// SubmitContact handles POST /api/v1/contact.
func (h *Handler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req submit_inquiry.Request
	if err := decodeStrict(w, r, &req); err != nil {
		WriteError(w, r, err)
		return
	}
	req.ClientIP = clientIP(r)

	receipt, err := h.submitInquiry.Execute(r.Context(), &req)
	if err != nil {
		WriteError(w, r, err)
		return
	}

	writeData(w, http.StatusCreated, receipt, "contact sent successfully")
}

// decodeStrict rejects unknown fields, trailing data and oversized bodies.
func decodeStrict(w http.ResponseWriter, r *http.Request, value any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxContactBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(value); err != nil {
		return errors.Join(errMalformedBody, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errMalformedBody
	}
	return nil
}

// clientIP prefers the first X-Forwarded-For hop, then the peer address.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if first := strings.TrimSpace(strings.Split(fwd, ",")[0]); first != "" {
			return first
		}
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil && host != "" {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return "unknown"
}
