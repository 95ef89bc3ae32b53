package wire

import (
	"travel-functions/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	// /api/booking - every method reaches the handler so non-POST gets the booking error body
	r.HandleFunc("/api/booking", bookingHandler.CreateBooking)
}
