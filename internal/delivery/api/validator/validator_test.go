package validator

import (
	"testing"

	domainerrors "houses/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Operation string   `json:"operation" validate:"required,max=64"`
	Fields    []string `json:"fields" validate:"omitempty,dive,oneof=nearby"`
}

func TestCustomValidator_Valid(t *testing.T) {
	v := New()
	assert.NoError(t, v.Validate(&sample{Operation: "house", Fields: []string{"nearby"}}))
}

func TestCustomValidator_ReportsJSONFieldNames(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		input     *sample
		wantField string
		wantText  string
	}{
		{"missing operation", &sample{}, "operation", "is required"},
		{"unknown field selection", &sample{Operation: "house", Fields: []string{"owner"}}, "fields[0]", "must be one of nearby"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.input)

			var validationErr *domainerrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantField, validationErr.Field)
			assert.Equal(t, tt.wantText, validationErr.Reason)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}
