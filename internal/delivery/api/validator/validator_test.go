package validator

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	ContractNumber string   `json:"contract_number" validate:"required"`
	Latitude       *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
}

func TestValidator_ReportsJSONFieldNames(t *testing.T) {
	v := New()

	lat := 91.0
	err := v.Validate(&sample{Latitude: &lat})
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	assert.ElementsMatch(t, []string{"contract_number", "latitude"}, fields)
}

func TestValidator_Valid(t *testing.T) {
	lat := 54.2
	assert.NoError(t, New().Validate(&sample{ContractNumber: "1", Latitude: &lat}))
}
