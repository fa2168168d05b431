package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"houses/config"
	deliverycontext "houses/internal/delivery/context"
	"houses/internal/domain/constants"
	"houses/internal/domain/entity"
	domainerrors "houses/internal/domain/errors"
	"houses/internal/domain/geo"
	"houses/internal/domain/repository"
	"houses/internal/domain/service"
	"houses/internal/errors"
	"houses/internal/usecase"

	"github.com/google/uuid"
)

const (
	// NearbyRadiusMeters is the search radius around a house, in meters.
	NearbyRadiusMeters = 10000.0
	// NearbyLimit caps the nearby list regardless of configuration.
	NearbyLimit = 25

	publishTimeout = 5 * time.Second
)

type houseService struct {
	houseRepo    repository.HouseRepository
	publisher    service.EventPublisher
	logger       *slog.Logger
	nearbyRadius float64
	nearbyLimit  int
}

// NewHouseService creates a new house service instance
func NewHouseService(
	houseRepo repository.HouseRepository,
	publisher service.EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.HouseUsecase {
	radius := NearbyRadiusMeters
	limit := NearbyLimit
	if cfg.Houses != nil {
		if cfg.Houses.NearbyRadius > 0 {
			radius = cfg.Houses.NearbyRadius
		}
		if cfg.Houses.NearbyLimit > 0 && cfg.Houses.NearbyLimit < NearbyLimit {
			limit = cfg.Houses.NearbyLimit
		}
	}

	return &houseService{
		houseRepo:    houseRepo,
		publisher:    publisher,
		logger:       logger,
		nearbyRadius: radius,
		nearbyLimit:  limit,
	}
}

// GetHouse retrieves a house by its string ID
func (s *houseService) GetHouse(ctx context.Context, id string) (*entity.House, error) {
	houseID, err := parseHouseID(id)
	if err != nil {
		return nil, err
	}

	house, err := s.houseRepo.FindHouseByID(ctx, houseID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find house by ID")
	}

	return house, nil
}

// CreateHouse stores a new listing owned by the resolved identity
func (s *houseService) CreateHouse(ctx context.Context, rc usecase.RequestContext, input *usecase.CreateHouseInput) (*entity.House, error) {
	if !rc.Authenticated() {
		return nil, domainerrors.ErrNotAuthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	house := &entity.House{
		UserID:    rc.UserID(),
		Address:   strings.TrimSpace(input.Address),
		Latitude:  *input.Coordinates.Latitude,
		Longitude: *input.Coordinates.Longitude,
		Image:     strings.TrimSpace(input.Image),
		Bedrooms:  input.Bedrooms,
	}

	if err := s.houseRepo.CreateHouse(ctx, house); err != nil {
		return nil, errors.Wrap(err, "failed to create house")
	}

	s.publishCreated(ctx, house)

	return house, nil
}

// NearbyHouses lists up to the nearby limit of other houses inside the
// bounding box around house. Corner regions of the box lie outside the true
// radius and are included.
func (s *houseService) NearbyHouses(ctx context.Context, house *entity.House) ([]*entity.House, error) {
	if house == nil {
		return []*entity.House{}, nil
	}

	bound, err := geo.BoundsAround(house.Point(), s.nearbyRadius)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute nearby bounds")
	}

	houses, err := s.houseRepo.FindHousesInBound(ctx, repository.NearbyQuery{
		Bound:     bound,
		ExcludeID: house.ID,
		Limit:     s.nearbyLimit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find nearby houses")
	}

	nearby := make([]*entity.House, 0, min(len(houses), s.nearbyLimit))
	for _, candidate := range houses {
		if candidate == nil || candidate.ID == house.ID {
			continue
		}
		nearby = append(nearby, candidate)
		if len(nearby) == s.nearbyLimit {
			break
		}
	}

	return nearby, nil
}

// publishCreated emits a house.created event. The listing is already stored,
// so a failed publish is logged and not returned.
func (s *houseService) publishCreated(ctx context.Context, house *entity.House) {
	if s.publisher == nil {
		return
	}

	event := &service.HouseEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		EventID:   uuid.New().String(),
		Type:      constants.EventTypeHouseCreated,
		HouseID:   house.ID,
		UserID:    house.UserID,
		Latitude:  house.Latitude,
		Longitude: house.Longitude,
		Address:   house.Address,
		Bedrooms:  house.Bedrooms,
		CreatedAt: house.CreatedAt,
	}

	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := s.publisher.PublishHouseEvent(publishCtx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Warn("Failed to publish house event",
			slog.Int64("house_id", house.ID),
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
		)
	}
}

func parseHouseID(id string) (int64, error) {
	houseID, err := strconv.ParseInt(strings.TrimSpace(id), 10, 64)
	if err != nil || houseID <= 0 {
		return 0, domainerrors.NewValidationError("id", "must be a positive integer")
	}

	return houseID, nil
}
