package errors

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError(t *testing.T) {
	assert.Equal(t, "INVALID_REQUEST: Invalid request parameters", ErrInvalidRequest.Error())
	assert.Equal(t, http.StatusBadRequest, ErrInvalidRequest.StatusCode)

	detailed := ErrInvalidRequest.WithDetails(map[string]interface{}{"zipcode": "required"})
	assert.Equal(t, "required", detailed.Details["zipcode"])
	assert.Equal(t, ErrInvalidRequest.Code, detailed.Code)
	assert.Nil(t, ErrInvalidRequest.Details, "sentinel must stay untouched")
}
