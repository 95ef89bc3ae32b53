package response

import "encoding/json"

const (
	BookingStatusSuccess = "success"
	BookingMessage       = "Your booking has been received and is being processed."
)

type BookingResponse struct {
	Status           string          `json:"status"`
	BookingReference string          `json:"booking_reference"`
	Customer         json.RawMessage `json:"customer"`
	TravelDate       string          `json:"travel_date"`
	Route            string          `json:"route"`
	Passengers       json.RawMessage `json:"passengers"`
	TripType         json.RawMessage `json:"trip_type"`
	Env              string          `json:"env"`
	RunDate          string          `json:"run_date"`
	Message          string          `json:"message"`
}
