package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"clicktoeat/internal/cache"
	"clicktoeat/internal/metrics"
	"clicktoeat/internal/models"
)

const restaurantListKey = "restaurants:all"

// CachedRestaurantRepository keeps short-lived copies of restaurant reads.
// Cache failures fall through to the wrapped repository.
type CachedRestaurantRepository struct {
	next   RestaurantRepository
	cache  cache.Provider
	ttl    time.Duration
	logger zerolog.Logger

	mu   sync.Mutex
	keys map[string]struct{}
}

func NewCachedRestaurantRepository(next RestaurantRepository, provider cache.Provider, ttl time.Duration, logger zerolog.Logger) *CachedRestaurantRepository {
	return &CachedRestaurantRepository{
		next:   next,
		cache:  provider,
		ttl:    ttl,
		logger: logger,
		keys:   make(map[string]struct{}),
	}
}

func restaurantKey(id string) string {
	return "restaurants:" + id
}

func (r *CachedRestaurantRepository) GetRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	var list []models.Restaurant
	if r.lookup(ctx, restaurantListKey, &list) {
		return list, nil
	}
	list, err := r.next.GetRestaurants(ctx)
	if err != nil {
		return nil, err
	}
	r.store(ctx, restaurantListKey, list)
	return list, nil
}

func (r *CachedRestaurantRepository) GetRestaurant(ctx context.Context, id string) (models.Restaurant, error) {
	var rest models.Restaurant
	if r.lookup(ctx, restaurantKey(id), &rest) {
		return rest, nil
	}
	rest, err := r.next.GetRestaurant(ctx, id)
	if err != nil {
		return models.Restaurant{}, err
	}
	r.store(ctx, restaurantKey(id), rest)
	return rest, nil
}

func (r *CachedRestaurantRepository) CreateRestaurant(ctx context.Context, token string, input models.RestaurantInput) (string, error) {
	id, err := r.next.CreateRestaurant(ctx, token, input)
	if err == nil {
		r.drop(ctx, restaurantListKey)
	}
	return id, err
}

func (r *CachedRestaurantRepository) UpdateRestaurant(ctx context.Context, token, id string, input models.RestaurantInput) error {
	err := r.next.UpdateRestaurant(ctx, token, id, input)
	if err == nil {
		r.drop(ctx, restaurantListKey, restaurantKey(id))
	}
	return err
}

func (r *CachedRestaurantRepository) DeleteRestaurant(ctx context.Context, token, id string) error {
	err := r.next.DeleteRestaurant(ctx, token, id)
	if err == nil {
		r.drop(ctx, restaurantListKey, restaurantKey(id))
	}
	return err
}

// Invalidate drops every restaurant entry this repository has written.
func (r *CachedRestaurantRepository) Invalidate(ctx context.Context) error {
	r.mu.Lock()
	keys := make([]string, 0, len(r.keys)+1)
	keys = append(keys, restaurantListKey)
	for k := range r.keys {
		if k != restaurantListKey {
			keys = append(keys, k)
		}
	}
	r.keys = make(map[string]struct{})
	r.mu.Unlock()
	return r.cache.Delete(ctx, keys...)
}

func (r *CachedRestaurantRepository) lookup(ctx context.Context, key string, dst any) bool {
	data, err := r.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			r.logger.Warn().Err(err).Str("key", key).Msg("restaurant cache read failed")
		}
		metrics.RecordCacheLookup(false)
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		r.logger.Warn().Err(err).Str("key", key).Msg("restaurant cache entry corrupt")
		metrics.RecordCacheLookup(false)
		return false
	}
	metrics.RecordCacheLookup(true)
	return true
}

func (r *CachedRestaurantRepository) store(ctx context.Context, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := r.cache.Set(ctx, key, data, r.ttl); err != nil {
		r.logger.Warn().Err(err).Str("key", key).Msg("restaurant cache write failed")
		return
	}
	r.mu.Lock()
	r.keys[key] = struct{}{}
	r.mu.Unlock()
}

func (r *CachedRestaurantRepository) drop(ctx context.Context, keys ...string) {
	r.mu.Lock()
	for _, k := range keys {
		delete(r.keys, k)
	}
	r.mu.Unlock()
	if err := r.cache.Delete(ctx, keys...); err != nil {
		r.logger.Warn().Err(err).Strs("keys", keys).Msg("restaurant cache delete failed")
	}
}
