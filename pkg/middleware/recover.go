package middleware

import (
	"fmt"
	"net/http"

	"travel-functions/pkg/apperror"
	"travel-functions/pkg/utils"

	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Recover answers a handler panic with the internal error body. http.ErrAbortHandler
// is re-raised so net/http can drop the connection.
func Recover(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				appErr := apperror.Internal(fmt.Errorf("panic: %v", rec))
				logger.Error("Handler panicked",
					zap.String("request_id", chimw.GetReqID(r.Context())),
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Error(appErr),
					zap.Stack("stack"),
				)
				utils.ResponseError(w, appErr)
			}()
			next.ServeHTTP(w, r)
		})
	}
}
