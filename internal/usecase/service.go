package usecase

import (
	"travel-functions/pkg/storage"
	"travel-functions/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Booking BookingService
	Storage StorageService
	Ingest  IngestService
}

// NewService wires the use cases. store may be nil for the booking-only function.
func NewService(store storage.ObjectStore, config *utils.Config, log *zap.Logger) *Service {
	svc := &Service{
		Booking: NewBookingService(BookingConfig{
			Runtime:  config.Runtime,
			Location: config.App.Location,
		}, log),
	}

	if store != nil {
		svc.Storage = NewStorageService(store, log)
		svc.Ingest = NewIngestService(svc.Storage, config.Ingest.Prefix, log)
	}

	return svc
}
