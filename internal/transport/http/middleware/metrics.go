package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/light-bringer/autocat-service/internal/metrics"
)

// Metrics observes request latency labelled by the matched chi route
// pattern, so path parameters do not explode label cardinality.
func Metrics() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := newStatusWriter(w)
			start := time.Now()
			next.ServeHTTP(sw, r)

			route := "unmatched"
			if rc := chi.RouteContext(r.Context()); rc != nil {
				if p := rc.RoutePattern(); p != "" {
					route = p
				}
			}
			metrics.HTTPDuration.
				WithLabelValues(route, r.Method, strconv.Itoa(sw.code())).
				Observe(time.Since(start).Seconds())
		})
	}
}
