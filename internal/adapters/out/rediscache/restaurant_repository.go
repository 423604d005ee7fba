// Package rediscache provides a Redis-backed read-through cache for
// restaurant lookups. Restaurants change rarely but are resolved on every
// status update, so a short TTL cache takes most reads off the database.
package rediscache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"ownplate/internal/core/domain/model/kernel"
	"ownplate/internal/core/domain/model/restaurant"
	"ownplate/internal/core/ports"

	"github.com/go-redis/redis/v8"
)

// DefaultTTL is the cache lifetime used when no TTL is configured.
const DefaultTTL = 5 * time.Minute

// restaurantRecord is the cached representation of a restaurant entity.
type restaurantRecord struct {
	ID   string `json:"id"`
	UID  string `json:"uid"`
	Name string `json:"name"`
}

// CachedRestaurantRepository decorates a RestaurantRepository with a Redis
// read-through cache. Cache failures are ignored; the inner repository
// remains the source of truth.
type CachedRestaurantRepository struct {
	inner  ports.RestaurantRepository
	client *redis.Client
	ttl    time.Duration
}

// NewCachedRestaurantRepository creates a caching decorator around the given
// repository. A non-positive ttl falls back to DefaultTTL.
func NewCachedRestaurantRepository(inner ports.RestaurantRepository, client *redis.Client, ttl time.Duration) *CachedRestaurantRepository {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &CachedRestaurantRepository{
		inner:  inner,
		client: client,
		ttl:    ttl,
	}
}

// Get resolves a restaurant from the cache, falling back to the inner
// repository on a miss and populating the cache on the way out.
func (r *CachedRestaurantRepository) Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error) {
	key := cacheKey(id)

	if cached, err := r.client.Get(ctx, key).Result(); err == nil {
		var record restaurantRecord
		if err := json.Unmarshal([]byte(cached), &record); err == nil {
			if rest, err := record.toDomain(); err == nil {
				return rest, nil
			}
		}
	}

	rest, err := r.inner.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	record := restaurantRecord{
		ID:   rest.ID().String(),
		UID:  rest.OperatorUID(),
		Name: rest.Name(),
	}
	if data, err := json.Marshal(record); err == nil {
		r.client.Set(ctx, key, data, r.ttl)
	}

	return rest, nil
}

func (record restaurantRecord) toDomain() (*restaurant.Restaurant, error) {
	id, err := kernel.UUIDFromString(record.ID)
	if err != nil {
		return nil, err
	}
	return restaurant.NewRestaurant(id, record.UID, record.Name)
}

func cacheKey(id kernel.UUID) string {
	return fmt.Sprintf("restaurant:%s", id.String())
}
