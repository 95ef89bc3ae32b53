package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMissingFields(t *testing.T) {
	err := MissingFields([]string{"origin", "passengers"})
	assert.Equal(t, "Missing fields: ['origin', 'passengers']", err.Message)
	assert.Equal(t, http.StatusBadRequest, err.HTTPStatus)
	assert.Equal(t, KindMissingFields, err.Kind)
}

func TestAppError_Error(t *testing.T) {
	assert.Equal(t, "PAST_DATE: Travel date cannot be in the past", PastDate().Error())

	cause := errors.New("connection reset")
	wrapped := Internal(cause)
	assert.Equal(t, "INTERNAL_ERROR: Internal server error (caused by: connection reset)", wrapped.Error())
	assert.ErrorIs(t, wrapped, cause)
}

func TestBadRequestAndUpstream(t *testing.T) {
	bad := BadRequest("rows must be a number")
	assert.Equal(t, KindBadRequest, bad.Kind)
	assert.Equal(t, http.StatusBadRequest, bad.HTTPStatus)

	cause := errors.New("AccessDenied")
	up := Upstream(cause, "Failed to list buckets")
	assert.Equal(t, KindUpstream, up.Kind)
	assert.Equal(t, http.StatusInternalServerError, up.HTTPStatus)
	assert.Equal(t, "Failed to list buckets", up.Message)
	assert.ErrorIs(t, up, cause)
}

func TestFrom(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", MethodNotAllowed())
	assert.Equal(t, KindMethodNotAllowed, From(wrapped).Kind)

	plain := From(errors.New("boom"))
	assert.Equal(t, KindInternal, plain.Kind)
	assert.Equal(t, http.StatusInternalServerError, plain.HTTPStatus)
}
