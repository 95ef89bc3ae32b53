// internal/wire/wire.go
package wire

import (
	"net/http"

	"travel-functions/internal/adaptor"
	"travel-functions/internal/usecase"
	"travel-functions/pkg/middleware"
	"travel-functions/pkg/storage"
	"travel-functions/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// App menyimpan semua dependencies
type App struct {
	Router  *chi.Mux
	Handler *adaptor.Handler
}

// Wiring builds services, handlers and routes. store may be nil when only
// the booking function is served.
func Wiring(store storage.ObjectStore, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(store, config, logger)
	handler := adaptor.NewHandler(service, logger)

	return &App{
		Router:  setupRouter(handler, logger),
		Handler: handler,
	}
}

// setupRouter konfigurasi Chi router
func setupRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))

	// Apply routes
	wireBooking(r, handler.Booking)
	if handler.Storage != nil {
		wireStorage(r, handler.Storage, handler.Ingest)
	}

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
