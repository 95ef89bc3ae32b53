package utils

import (
	"strings"

	"github.com/google/uuid"
)

const bookingReferencePrefix = "BK-"

// IDSource yields fresh random identifiers.
type IDSource func() uuid.UUID

// NewRandomID is the default IDSource (UUID v4).
func NewRandomID() uuid.UUID {
	return uuid.New()
}

// GenerateBookingReference formats BK- plus the first 8 hex digits of id, upper-cased.
func GenerateBookingReference(id uuid.UUID) string {
	hex := strings.ReplaceAll(id.String(), "-", "")
	return bookingReferencePrefix + strings.ToUpper(hex[:8])
}
