package request

import "encoding/json"

// BookingInvocation is what every transport hands to the booking service.
type BookingInvocation struct {
	Method string
	Body   []byte
}

// BookingRequest keeps raw values per key so presence can be checked before types.
type BookingRequest map[string]json.RawMessage

// RequiredBookingFields in declared order, the missing-fields message keeps it.
var RequiredBookingFields = []string{"customer_name", "travel_date", "origin", "destination", "passengers"}

const DefaultTripType = "one_way"

type TravelDate struct {
	TravelDate string `json:"travel_date" validate:"required,datetime=2006-01-02"`
}
