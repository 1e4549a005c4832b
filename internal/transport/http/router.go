package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/light-bringer/autocat-service/internal/transport/http/middleware"
)

// Options configures the REST router.
type Options struct {
	Logger  *zap.Logger
	Timeout time.Duration
}

// NewRouter builds the REST API handler.
func NewRouter(h *Handler, opts Options) http.Handler {
	root := chi.NewRouter()

	// Outermost first.
	root.Use(
		middleware.Recover(func(w http.ResponseWriter, r *http.Request) { WriteError(w, r, errInternal) }),
		middleware.RequestID(),
		middleware.Logging(opts.Logger),
		middleware.Metrics(),
		middleware.Timeout(opts.Timeout),
	)

	root.NotFound(func(w http.ResponseWriter, r *http.Request) { WriteError(w, r, errRouteNotFound) })
	root.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) { WriteError(w, r, errMethodNotAllowed) })

	root.Route("/api/v1", func(r chi.Router) {
		r.Get("/vehicles", h.ListVehicles)
		r.Get("/vehicles/filter-options", h.FilterOptions)
		r.Get("/vehicles/{key}", h.VehicleDetail)
		r.Post("/contact", h.SubmitContact)
	})

	return otelhttp.NewHandler(root, "autocat-http")
}
