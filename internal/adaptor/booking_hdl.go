package adaptor

import (
	"io"
	"net/http"

	"travel-functions/internal/dto/request"
	"travel-functions/internal/usecase"
	"travel-functions/pkg/utils"

	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// CreateBooking handles /api/booking for every method, the service rejects non-POST
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var body []byte
	if r.Body != nil {
		b, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		if err != nil {
			// an unreadable body is reported as a missing one
			h.log.Warn("Failed to read request body", zap.Error(err))
		} else {
			body = b
		}
	}

	booking, err := h.service.CreateBooking(r.Context(), request.BookingInvocation{
		Method: r.Method,
		Body:   body,
	})
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseCreated(w, booking)
}
