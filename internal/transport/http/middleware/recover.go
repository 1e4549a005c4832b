package middleware

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/light-bringer/autocat-service/internal/pkg/logctx"
)

// Recover turns a panic into a 500 written by onPanic. Panic details are
// logged, never returned to the client.
func Recover(onPanic func(http.ResponseWriter, *http.Request)) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}
					logctx.From(r.Context()).Error("panic",
						zap.String("path", r.URL.Path),
						zap.Any("reason", rec),
						zap.Stack("stack"),
					)
					onPanic(w, r)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
