package adaptor

import (
	"travel-functions/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Booking *BookingHandler
	Ingest  *IngestHandler
	Storage *StorageHandler
	Lambda  *LambdaHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	h := &Handler{
		Booking: NewBookingHandler(service.Booking, log),
		Lambda:  NewLambdaHandler(service.Booking, service.Ingest, log),
	}
	if service.Storage != nil {
		h.Ingest = NewIngestHandler(service.Ingest, log)
		h.Storage = NewStorageHandler(service.Storage, log)
	}
	return h
}
