package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Zipcode string `validate:"required,max=8"`
	Name    string `validate:"omitempty,min=2"`
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(&sample{Zipcode: "1500002"}))

	err := Validate(&sample{Name: "x"})
	require.Error(t, err)

	details := FieldErrors(err)
	assert.Equal(t, "required", details["zipcode"])
	assert.Equal(t, "min", details["name"])
}

func TestFieldErrors_NotValidationError(t *testing.T) {
	assert.Nil(t, FieldErrors(errors.New("boom")))
	assert.Nil(t, FieldErrors(nil))
}
