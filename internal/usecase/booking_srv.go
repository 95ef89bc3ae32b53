package usecase

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
	"unicode/utf8"

	"travel-functions/internal/dto/request"
	"travel-functions/internal/dto/response"
	"travel-functions/pkg/apperror"
	"travel-functions/pkg/utils"

	"go.uber.org/zap"
)

const travelDateLayout = "2006-01-02"

type BookingService interface {
	CreateBooking(ctx context.Context, inv request.BookingInvocation) (*response.BookingResponse, error)
}

// BookingConfig holds what a booking decision depends on besides the request.
// Zero Clock, NewID and Location fall back to time.Now, uuid v4 and UTC.
type BookingConfig struct {
	Runtime  utils.RuntimeContext
	Location *time.Location
	Clock    func() time.Time
	NewID    utils.IDSource
}

type bookingService struct {
	runtime utils.RuntimeContext
	loc     *time.Location
	clock   func() time.Time
	newID   utils.IDSource
	log     *zap.Logger
}

func NewBookingService(cfg BookingConfig, log *zap.Logger) BookingService {
	s := &bookingService{
		runtime: cfg.Runtime,
		loc:     cfg.Location,
		clock:   cfg.Clock,
		newID:   cfg.NewID,
		log:     log.With(zap.String("service", "booking")),
	}
	if s.loc == nil {
		s.loc = time.UTC
	}
	if s.clock == nil {
		s.clock = time.Now
	}
	if s.newID == nil {
		s.newID = utils.NewRandomID
	}
	return s
}

// bookingState is filled in as steps pass.
type bookingState struct {
	inv        request.BookingInvocation
	payload    request.BookingRequest
	travelDate time.Time
}

// bookingStep either passes or returns the failure that ends the request.
type bookingStep struct {
	name string
	run  func(st *bookingState) *apperror.AppError
}

func (s *bookingService) steps() []bookingStep {
	return []bookingStep{
		{name: "method", run: s.checkMethod},
		{name: "payload", run: s.parsePayload},
		{name: "required_fields", run: s.checkRequiredFields},
		{name: "date_format", run: s.parseTravelDate},
		{name: "date_range", run: s.checkDateRange},
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, inv request.BookingInvocation) (*response.BookingResponse, error) {
	s.log.Info("Function invoked",
		zap.String("env", s.runtime.Env),
		zap.String("run_date", s.runtime.RunDate))

	st := &bookingState{inv: inv}
	for _, step := range s.steps() {
		if appErr := step.run(st); appErr != nil {
			s.log.Debug("Booking rejected",
				zap.String("step", step.name),
				zap.String("kind", string(appErr.Kind)))
			return nil, appErr
		}
	}

	ref := utils.GenerateBookingReference(s.newID())
	s.log.Info("Generated booking reference", zap.String("booking_reference", ref))

	tripType, ok := st.payload["trip_type"]
	if !ok {
		tripType, _ = json.Marshal(request.DefaultTripType)
	}

	resp := &response.BookingResponse{
		Status:           response.BookingStatusSuccess,
		BookingReference: ref,
		Customer:         st.payload["customer_name"],
		TravelDate:       st.travelDate.Format(travelDateLayout),
		Route:            text(st.payload["origin"]) + " → " + text(st.payload["destination"]),
		Passengers:       st.payload["passengers"],
		TripType:         tripType,
		Env:              s.runtime.Env,
		RunDate:          s.runtime.RunDate,
		Message:          response.BookingMessage,
	}

	s.log.Info("Responding with booking confirmation", zap.String("booking_reference", ref))
	return resp, nil
}

func (s *bookingService) checkMethod(st *bookingState) *apperror.AppError {
	if st.inv.Method != http.MethodPost {
		s.log.Warn("Invalid HTTP method", zap.String("method", st.inv.Method))
		return apperror.MethodNotAllowed()
	}
	return nil
}

func (s *bookingService) parsePayload(st *bookingState) *apperror.AppError {
	// raw values are echoed back, so the body must be valid UTF-8 as a whole
	var payload request.BookingRequest
	if !utf8.Valid(st.inv.Body) {
		s.log.Error("No JSON payload received", zap.String("reason", "invalid utf-8"))
		return apperror.InvalidPayload()
	}
	if err := json.Unmarshal(st.inv.Body, &payload); err != nil || len(payload) == 0 {
		s.log.Error("No JSON payload received", zap.Int("body_bytes", len(st.inv.Body)))
		return apperror.InvalidPayload()
	}
	st.payload = payload
	return nil
}

func (s *bookingService) checkRequiredFields(st *bookingState) *apperror.AppError {
	var missing []string
	for _, field := range request.RequiredBookingFields {
		if _, ok := st.payload[field]; !ok {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		s.log.Error("Missing fields", zap.Strings("missing", missing))
		return apperror.MissingFields(missing)
	}

	tripType := request.DefaultTripType
	if raw, ok := st.payload["trip_type"]; ok {
		tripType = text(raw)
	}
	s.log.Info("Booking request",
		zap.String("customer", text(st.payload["customer_name"])),
		zap.String("date", text(st.payload["travel_date"])),
		zap.String("route", text(st.payload["origin"])+"→"+text(st.payload["destination"])),
		zap.String("trip_type", tripType),
		zap.String("pax", text(st.payload["passengers"])),
	)
	return nil
}

func (s *bookingService) parseTravelDate(st *bookingState) *apperror.AppError {
	var input request.TravelDate
	if err := json.Unmarshal(st.payload["travel_date"], &input.TravelDate); err != nil {
		s.log.Error("Invalid date format", zap.ByteString("travel_date", st.payload["travel_date"]))
		return apperror.InvalidDateFormat()
	}

	if errs := utils.ValidateStruct(input); len(errs) > 0 {
		s.log.Error("Invalid date format",
			zap.String("travel_date", input.TravelDate),
			zap.String("reason", utils.FormatValidationErrors(errs)))
		return apperror.InvalidDateFormat()
	}

	travelDate, err := time.ParseInLocation(travelDateLayout, input.TravelDate, s.loc)
	if err != nil {
		s.log.Error("Invalid date format", zap.String("travel_date", input.TravelDate), zap.Error(err))
		return apperror.InvalidDateFormat()
	}
	st.travelDate = travelDate
	return nil
}

func (s *bookingService) checkDateRange(st *bookingState) *apperror.AppError {
	now := s.clock().In(s.loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc)
	if st.travelDate.Before(today) {
		s.log.Warn("Travel date in the past",
			zap.String("travel_date", st.travelDate.Format(travelDateLayout)),
			zap.String("today", today.Format(travelDateLayout)))
		return apperror.PastDate()
	}
	return nil
}

// text renders a raw JSON value for messages: strings unquoted, anything else as written.
func text(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}
