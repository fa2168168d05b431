// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"houses/internal/domain/entity"
	domainerrors "houses/internal/domain/errors"
	"houses/internal/domain/repository"
	"houses/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// houseRepository implements the repository.HouseRepository interface.
type houseRepository struct {
	db *gorm.DB
}

// NewHouseRepository is the constructor for houseRepository.
func NewHouseRepository(db *gorm.DB) repository.HouseRepository {
	return &houseRepository{
		db: db,
	}
}

// CreateHouse inserts a house and copies the generated id and timestamp back.
func (repo *houseRepository) CreateHouse(ctx context.Context, house *entity.House) error {
	houseM := fromHouseDomain(house)

	if err := repo.db.WithContext(ctx).Create(houseM).Error; err != nil {
		return translateWriteError(err, "failed to create house")
	}

	house.ID = houseM.ID
	house.CreatedAt = houseM.CreatedAt

	return nil
}

// FindHouseByID returns (nil, nil) when no row matches.
func (repo *houseRepository) FindHouseByID(ctx context.Context, id int64) (*entity.House, error) {
	var houseM model.HouseModel

	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Take(&houseM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, domainerrors.NewUpstreamError(err, "failed to find house by ID")
	}

	return toHouseDomain(&houseM), nil
}

// FindHousesInBound runs a rectangular latitude/longitude range query.
func (repo *houseRepository) FindHousesInBound(ctx context.Context, query repository.NearbyQuery) ([]*entity.House, error) {
	var houseModels []*model.HouseModel

	tx := repo.db.WithContext(ctx).
		Where("latitude BETWEEN ? AND ?", query.Bound.Min.Lat(), query.Bound.Max.Lat()).
		Where("longitude BETWEEN ? AND ?", query.Bound.Min.Lon(), query.Bound.Max.Lon()).
		Where("id <> ?", query.ExcludeID).
		Order("id")
	if query.Limit > 0 {
		tx = tx.Limit(query.Limit)
	}

	if err := tx.Find(&houseModels).Error; err != nil {
		return nil, domainerrors.NewUpstreamError(err, "failed to find houses in bound")
	}

	houses := make([]*entity.House, 0, len(houseModels))
	for _, houseM := range houseModels {
		houses = append(houses, toHouseDomain(houseM))
	}

	return houses, nil
}

func toHouseDomain(houseM *model.HouseModel) *entity.House {
	if houseM == nil {
		return nil
	}

	return &entity.House{
		ID:        houseM.ID,
		UserID:    houseM.UserID,
		Address:   houseM.Address,
		Latitude:  houseM.Latitude,
		Longitude: houseM.Longitude,
		Image:     houseM.Image,
		Bedrooms:  houseM.Bedrooms,
		CreatedAt: houseM.CreatedAt,
	}
}

func fromHouseDomain(house *entity.House) *model.HouseModel {
	return &model.HouseModel{
		ID:        house.ID,
		UserID:    house.UserID,
		Address:   house.Address,
		Latitude:  house.Latitude,
		Longitude: house.Longitude,
		Image:     house.Image,
		Bedrooms:  house.Bedrooms,
		CreatedAt: house.CreatedAt,
	}
}
