package middleware

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/light-bringer/autocat-service/internal/pkg/logctx"
)

// Logging puts a request-scoped logger in the context and writes one
// "http" line per request.
func Logging(l *zap.Logger) Middleware {
	if l == nil {
		l = zap.NewNop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqLogger := l
			if rid := r.Header.Get(HeaderRequestID); rid != "" {
				reqLogger = reqLogger.With(zap.String("request_id", rid))
			}
			r = r.WithContext(logctx.Into(r.Context(), reqLogger))

			sw := newStatusWriter(w)
			start := time.Now()
			next.ServeHTTP(sw, r)

			reqLogger.Info("http",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", sw.code()),
				zap.Duration("dur", time.Since(start)),
				zap.Int("bytes", sw.count),
			)
		})
	}
}
