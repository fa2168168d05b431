package usecase

import (
	"encoding/json"
	"math"
	"testing"

	domainerrors "houses/internal/domain/errors"
	"houses/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() *CreateHouseInput {
	return &CreateHouseInput{
		Address:     "1 Main St",
		Image:       "img/x.jpg",
		Coordinates: &CoordinatesInput{Latitude: float64Ptr(43.0), Longitude: float64Ptr(-79.0)},
		Bedrooms:    3,
	}
}

func TestCreateHouseInput_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(in *CreateHouseInput)
		wantField string
	}{
		{name: "valid", mutate: func(*CreateHouseInput) {}},
		{name: "bedrooms lower bound", mutate: func(in *CreateHouseInput) { in.Bedrooms = 1 }},
		{name: "bedrooms upper bound", mutate: func(in *CreateHouseInput) { in.Bedrooms = 10 }},
		{name: "bedrooms zero", mutate: func(in *CreateHouseInput) { in.Bedrooms = 0 }, wantField: "bedrooms"},
		{name: "bedrooms eleven", mutate: func(in *CreateHouseInput) { in.Bedrooms = 11 }, wantField: "bedrooms"},
		{name: "latitude north pole", mutate: func(in *CreateHouseInput) { in.Coordinates.Latitude = float64Ptr(90) }},
		{name: "latitude south pole", mutate: func(in *CreateHouseInput) { in.Coordinates.Latitude = float64Ptr(-90) }},
		{name: "latitude above range", mutate: func(in *CreateHouseInput) { in.Coordinates.Latitude = float64Ptr(90.0001) }, wantField: "coordinates.latitude"},
		{name: "latitude below range", mutate: func(in *CreateHouseInput) { in.Coordinates.Latitude = float64Ptr(-90.0001) }, wantField: "coordinates.latitude"},
		{name: "latitude NaN", mutate: func(in *CreateHouseInput) { in.Coordinates.Latitude = float64Ptr(math.NaN()) }, wantField: "coordinates.latitude"},
		{name: "longitude bounds", mutate: func(in *CreateHouseInput) { in.Coordinates.Longitude = float64Ptr(-180) }},
		{name: "longitude below range", mutate: func(in *CreateHouseInput) { in.Coordinates.Longitude = float64Ptr(-180.5) }, wantField: "coordinates.longitude"},
		{name: "longitude above range", mutate: func(in *CreateHouseInput) { in.Coordinates.Longitude = float64Ptr(180.5) }, wantField: "coordinates.longitude"},
		{name: "coordinates missing", mutate: func(in *CreateHouseInput) { in.Coordinates = nil }, wantField: "coordinates"},
		{name: "latitude missing", mutate: func(in *CreateHouseInput) { in.Coordinates.Latitude = nil }, wantField: "coordinates.latitude"},
		{name: "longitude missing", mutate: func(in *CreateHouseInput) { in.Coordinates.Longitude = nil }, wantField: "coordinates.longitude"},
		{name: "empty address", mutate: func(in *CreateHouseInput) { in.Address = "  " }, wantField: "address"},
		{name: "empty image", mutate: func(in *CreateHouseInput) { in.Image = "" }, wantField: "image"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(in)

			err := in.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)

				return
			}

			var validationErr *domainerrors.ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tt.wantField, validationErr.Field)
		})
	}
}

func TestCreateHouseInput_ValidateDecodedJSON(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{
			name:      "coordinates omitted",
			body:      `{"address":"1 Main St","image":"img/x.jpg","bedrooms":3}`,
			wantField: "coordinates",
		},
		{
			name:      "coordinates null",
			body:      `{"address":"1 Main St","image":"img/x.jpg","coordinates":{"latitude":null,"longitude":null},"bedrooms":3}`,
			wantField: "coordinates.latitude",
		},
		{
			name:      "longitude omitted",
			body:      `{"address":"1 Main St","image":"img/x.jpg","coordinates":{"latitude":0},"bedrooms":3}`,
			wantField: "coordinates.longitude",
		},
		{
			name: "equator and meridian",
			body: `{"address":"1 Main St","image":"img/x.jpg","coordinates":{"latitude":0,"longitude":0},"bedrooms":3}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in CreateHouseInput
			require.NoError(t, json.Unmarshal([]byte(tt.body), &in))

			err := in.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)

				return
			}

			var validationErr *domainerrors.ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tt.wantField, validationErr.Field)
		})
	}
}

func TestCreateHouseInput_ValidateNil(t *testing.T) {
	var in *CreateHouseInput

	assert.ErrorIs(t, in.Validate(), domainerrors.ErrValidationFailed)
}

func TestRequestContext(t *testing.T) {
	anon := NewRequestContext("")
	assert.False(t, anon.Authenticated())
	assert.Nil(t, anon.UID)
	assert.Equal(t, "", anon.UserID())

	authed := NewRequestContext("user-1")
	assert.True(t, authed.Authenticated())
	assert.Equal(t, "user-1", authed.UserID())
}

func float64Ptr(v float64) *float64 {
	return &v
}
