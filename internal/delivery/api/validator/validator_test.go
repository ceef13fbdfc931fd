package validator

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name     string   `json:"name" validate:"required"`
	Latitude *float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Radius   float64  `query:"distance" validate:"gte=0"`
}

func TestCustomValidator_Validate(t *testing.T) {
	cv := New()
	zero := 0.0
	tooFar := 91.0

	require.NoError(t, cv.Validate(&sample{Name: "Main St", Latitude: &zero}))

	err := cv.Validate(&sample{Latitude: &tooFar, Radius: -1})
	require.Error(t, err)

	fields := Describe(err)
	assert.ElementsMatch(t, []FieldError{
		{Field: "name", Rule: "required"},
		{Field: "latitude", Rule: "lte", Param: "90"},
		{Field: "distance", Rule: "gte", Param: "0"},
	}, fields)
}

func TestCustomValidator_MissingPointerField(t *testing.T) {
	err := New().Validate(&sample{Name: "Main St"})

	require.Error(t, err)
	assert.Equal(t, []FieldError{{Field: "latitude", Rule: "required"}}, Describe(err))
}

func TestDescribe_NonValidationError(t *testing.T) {
	assert.Nil(t, Describe(errors.New("boom")))
}
