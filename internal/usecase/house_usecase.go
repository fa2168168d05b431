package usecase

import (
	"context"
	"math"
	"strings"

	"houses/internal/domain/entity"
	domainerrors "houses/internal/domain/errors"
)

// Field limits for new listings.
const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
	MinBedrooms  = 1
	MaxBedrooms  = 10
)

// CoordinatesInput packages latitude and longitude of a new listing.
// Both are pointers so an omitted or null value is told apart from 0.
type CoordinatesInput struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// CreateHouseInput represents the input for creating a house listing
type CreateHouseInput struct {
	Address     string           `json:"address"`
	Image       string           `json:"image"`
	Coordinates *CoordinatesInput `json:"coordinates"`
	Bedrooms    int              `json:"bedrooms"`
}

// Validate checks every field and returns a *domainerrors.ValidationError for the first bad one.
func (in *CreateHouseInput) Validate() error {
	if in == nil {
		return domainerrors.NewValidationError("input", "is required")
	}
	if strings.TrimSpace(in.Address) == "" {
		return domainerrors.NewValidationError("address", "must not be empty")
	}
	if strings.TrimSpace(in.Image) == "" {
		return domainerrors.NewValidationError("image", "must not be empty")
	}
	if in.Coordinates == nil {
		return domainerrors.NewValidationError("coordinates", "is required")
	}
	if in.Coordinates.Latitude == nil {
		return domainerrors.NewValidationError("coordinates.latitude", "is required")
	}
	if lat := *in.Coordinates.Latitude; math.IsNaN(lat) || lat < MinLatitude || lat > MaxLatitude {
		return domainerrors.NewValidationError("coordinates.latitude", "must be between -90 and 90")
	}
	if in.Coordinates.Longitude == nil {
		return domainerrors.NewValidationError("coordinates.longitude", "is required")
	}
	if lon := *in.Coordinates.Longitude; math.IsNaN(lon) || lon < MinLongitude || lon > MaxLongitude {
		return domainerrors.NewValidationError("coordinates.longitude", "must be between -180 and 180")
	}
	if in.Bedrooms < MinBedrooms || in.Bedrooms > MaxBedrooms {
		return domainerrors.NewValidationError("bedrooms", "must be between 1 and 10")
	}

	return nil
}

// HouseUsecase defines the interface for house listing use cases
type HouseUsecase interface {
	// GetHouse loads a house by its string ID. A missing house is (nil, nil).
	GetHouse(ctx context.Context, id string) (*entity.House, error)

	// CreateHouse stores a new listing owned by the request identity.
	CreateHouse(ctx context.Context, rc RequestContext, input *CreateHouseInput) (*entity.House, error)

	// NearbyHouses lists other houses within the nearby radius of house.
	NearbyHouses(ctx context.Context, house *entity.House) ([]*entity.House, error)
}
