package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"houses/config"
	"houses/internal/domain/entity"
	"houses/internal/domain/repository"
	"houses/internal/infra/metrics"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const houseKeyPrefix = "houses:house:"

// cachedHouse is the stored JSON form of a house.
type cachedHouse struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	Address   string    `json:"address"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Image     string    `json:"image"`
	Bedrooms  int       `json:"bedrooms"`
	CreatedAt time.Time `json:"created_at"`
}

// houseCache wraps a HouseRepository with a read-through cache for
// FindHouseByID. Houses are never updated, so entries only expire.
// Misses are not cached because the id may be assigned later.
type houseCache struct {
	next    repository.HouseRepository
	client  *redis.Client
	ttl     time.Duration
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// DecorateParams defines the parameters for DecorateHouseRepository
type DecorateParams struct {
	fx.In

	Next    repository.HouseRepository
	Client  *redis.Client `optional:"true"`
	Config  *config.Config
	Metrics *metrics.Metrics
	Logger  *slog.Logger
}

// DecorateHouseRepository adds the cache in front of the store when Redis is enabled.
func DecorateHouseRepository(params DecorateParams) repository.HouseRepository {
	if params.Client == nil {
		return params.Next
	}

	return NewHouseCache(params.Next, params.Client, TTL(params.Config), params.Metrics, params.Logger)
}

// NewHouseCache creates the caching decorator
func NewHouseCache(
	next repository.HouseRepository,
	client *redis.Client,
	ttl time.Duration,
	m *metrics.Metrics,
	logger *slog.Logger,
) repository.HouseRepository {
	return &houseCache{
		next:    next,
		client:  client,
		ttl:     ttl,
		metrics: m,
		logger:  logger,
	}
}

func (c *houseCache) CreateHouse(ctx context.Context, house *entity.House) error {
	return c.next.CreateHouse(ctx, house)
}

// FindHouseByID serves from Redis when possible. Cache failures fall back to
// the store; they never fail the lookup.
func (c *houseCache) FindHouseByID(ctx context.Context, id int64) (*entity.House, error) {
	key := houseKey(id)

	if house, ok := c.get(ctx, key); ok {
		c.metrics.CacheHitsTotal.Inc()

		return house, nil
	}
	c.metrics.CacheMissesTotal.Inc()

	house, err := c.next.FindHouseByID(ctx, id)
	if err != nil || house == nil {
		return house, err
	}

	c.set(ctx, key, house)

	return house, nil
}

func (c *houseCache) FindHousesInBound(ctx context.Context, query repository.NearbyQuery) ([]*entity.House, error) {
	return c.next.FindHousesInBound(ctx, query)
}

func (c *houseCache) get(ctx context.Context, key string) (*entity.House, bool) {
	start := time.Now()
	data, err := c.client.Get(ctx, key).Bytes()
	c.metrics.RedisOperationDuration.WithLabelValues("get").Observe(time.Since(start).Seconds())
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		c.metrics.RedisErrorsTotal.WithLabelValues("get").Inc()
		c.logger.Warn("Redis get failed", slog.String("key", key), slog.Any("error", err))

		return nil, false
	}

	var cached cachedHouse
	if err := json.Unmarshal(data, &cached); err != nil {
		c.logger.Warn("Discarding undecodable cache entry", slog.String("key", key), slog.Any("error", err))

		return nil, false
	}

	return &entity.House{
		ID:        cached.ID,
		UserID:    cached.UserID,
		Address:   cached.Address,
		Latitude:  cached.Latitude,
		Longitude: cached.Longitude,
		Image:     cached.Image,
		Bedrooms:  cached.Bedrooms,
		CreatedAt: cached.CreatedAt,
	}, true
}

func (c *houseCache) set(ctx context.Context, key string, house *entity.House) {
	data, err := json.Marshal(cachedHouse{
		ID:        house.ID,
		UserID:    house.UserID,
		Address:   house.Address,
		Latitude:  house.Latitude,
		Longitude: house.Longitude,
		Image:     house.Image,
		Bedrooms:  house.Bedrooms,
		CreatedAt: house.CreatedAt,
	})
	if err != nil {
		return
	}

	start := time.Now()
	err = c.client.Set(ctx, key, data, c.ttl).Err()
	c.metrics.RedisOperationDuration.WithLabelValues("set").Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.RedisErrorsTotal.WithLabelValues("set").Inc()
		c.logger.Warn("Redis set failed", slog.String("key", key), slog.Any("error", err))
	}
}

func houseKey(id int64) string {
	return houseKeyPrefix + strconv.FormatInt(id, 10)
}
