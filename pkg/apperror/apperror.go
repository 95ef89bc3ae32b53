package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind string

const (
	KindMethodNotAllowed  Kind = "METHOD_NOT_ALLOWED"
	KindInvalidPayload    Kind = "INVALID_PAYLOAD"
	KindMissingFields     Kind = "MISSING_FIELDS"
	KindInvalidDateFormat Kind = "INVALID_DATE_FORMAT"
	KindPastDate          Kind = "PAST_DATE"
	KindBadRequest        Kind = "BAD_REQUEST"
	KindUpstream          Kind = "UPSTREAM_ERROR"
	KindInternal          Kind = "INTERNAL_ERROR"
)

// AppError is a client-facing failure. Message is what the caller sees.
type AppError struct {
	Kind       Kind
	Message    string
	HTTPStatus int
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string, httpStatus int) *AppError {
	return &AppError{
		Kind:       kind,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

func Wrap(err error, kind Kind, message string, httpStatus int) *AppError {
	return &AppError{
		Kind:       kind,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

func MethodNotAllowed() *AppError {
	return New(KindMethodNotAllowed, "Method not allowed; use POST", http.StatusMethodNotAllowed)
}

func InvalidPayload() *AppError {
	return New(KindInvalidPayload, "Invalid or missing JSON", http.StatusBadRequest)
}

// MissingFields renders names like a list literal: ['origin', 'passengers'].
func MissingFields(names []string) *AppError {
	quoted := ""
	for i, name := range names {
		if i > 0 {
			quoted += ", "
		}
		quoted += "'" + name + "'"
	}
	return New(KindMissingFields, fmt.Sprintf("Missing fields: [%s]", quoted), http.StatusBadRequest)
}

func InvalidDateFormat() *AppError {
	return New(KindInvalidDateFormat, "Invalid date format; use YYYY-MM-DD", http.StatusBadRequest)
}

func PastDate() *AppError {
	return New(KindPastDate, "Travel date cannot be in the past", http.StatusBadRequest)
}

func BadRequest(message string) *AppError {
	return New(KindBadRequest, message, http.StatusBadRequest)
}

// Upstream is a storage or cloud call failure. message is shown to the caller.
func Upstream(err error, message string) *AppError {
	return Wrap(err, KindUpstream, message, http.StatusInternalServerError)
}

func Internal(err error) *AppError {
	return Wrap(err, KindInternal, "Internal server error", http.StatusInternalServerError)
}

// From returns err as an *AppError, treating anything unknown as internal.
func From(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}
