// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"houses/internal/domain/entity"

	"github.com/paulmach/orb"
)

// NearbyQuery selects houses inside a rectangular bound.
type NearbyQuery struct {
	Bound     orb.Bound // Min is southwest, Max is northeast; edges are inclusive.
	ExcludeID int64     // House to leave out of the result, usually the origin.
	Limit     int       // Maximum rows returned.
}

// HouseRepository defines the interface for house-related database operations.
// Houses are insert-only: there is no update or delete.
type HouseRepository interface {
	// CreateHouse persists a new house and fills in its ID and CreatedAt.
	CreateHouse(ctx context.Context, house *entity.House) error

	// FindHouseByID retrieves a house by its ID.
	// Returns (nil, nil) when no house has that ID.
	FindHouseByID(ctx context.Context, id int64) (*entity.House, error)

	// FindHousesInBound retrieves houses whose coordinates fall inside the query bound.
	// Ordering is store-determined.
	FindHousesInBound(ctx context.Context, query NearbyQuery) ([]*entity.House, error)
}
