package repositories

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"clicktoeat/internal/cache"
	"clicktoeat/internal/models"
)

type MockRestaurantRepository struct {
	mock.Mock
}

func (m *MockRestaurantRepository) GetRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepository) GetRestaurant(ctx context.Context, id string) (models.Restaurant, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepository) CreateRestaurant(ctx context.Context, token string, input models.RestaurantInput) (string, error) {
	args := m.Called(ctx, token, input)
	return args.String(0), args.Error(1)
}

func (m *MockRestaurantRepository) UpdateRestaurant(ctx context.Context, token, id string, input models.RestaurantInput) error {
	args := m.Called(ctx, token, id, input)
	return args.Error(0)
}

func (m *MockRestaurantRepository) DeleteRestaurant(ctx context.Context, token, id string) error {
	args := m.Called(ctx, token, id)
	return args.Error(0)
}

type mapCache struct {
	mu      sync.Mutex
	data    map[string][]byte
	failGet bool
}

func newMapCache() *mapCache {
	return &mapCache{data: make(map[string][]byte)}
}

func (c *mapCache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failGet {
		return nil, errors.New("connection refused")
	}
	v, ok := c.data[key]
	if !ok {
		return nil, cache.ErrMiss
	}
	return v, nil
}

func (c *mapCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	return nil
}

func (c *mapCache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.data, k)
	}
	return nil
}

func (c *mapCache) has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.data[key]
	return ok
}

func TestCachedRestaurantsServedFromCache(t *testing.T) {
	ctx := context.Background()
	upstream := new(MockRestaurantRepository)
	list := []models.Restaurant{{ID: "1", Name: "Sushi Go"}}
	upstream.On("GetRestaurants", ctx).Return(list, nil).Once()

	repo := NewCachedRestaurantRepository(upstream, newMapCache(), time.Minute, zerolog.Nop())

	first, err := repo.GetRestaurants(ctx)
	require.NoError(t, err)
	second, err := repo.GetRestaurants(ctx)
	require.NoError(t, err)

	assert.Equal(t, list, first)
	assert.Equal(t, first, second)
	upstream.AssertExpectations(t)
}

func TestCachedRestaurantsInvalidate(t *testing.T) {
	ctx := context.Background()
	upstream := new(MockRestaurantRepository)
	upstream.On("GetRestaurants", ctx).Return([]models.Restaurant{{ID: "1"}}, nil).Twice()
	upstream.On("GetRestaurant", ctx, "1").Return(models.Restaurant{ID: "1"}, nil).Twice()

	store := newMapCache()
	repo := NewCachedRestaurantRepository(upstream, store, time.Minute, zerolog.Nop())

	_, err := repo.GetRestaurants(ctx)
	require.NoError(t, err)
	_, err = repo.GetRestaurant(ctx, "1")
	require.NoError(t, err)
	assert.True(t, store.has("restaurants:1"))

	require.NoError(t, repo.Invalidate(ctx))
	assert.False(t, store.has(restaurantListKey))
	assert.False(t, store.has("restaurants:1"))

	_, err = repo.GetRestaurants(ctx)
	require.NoError(t, err)
	_, err = repo.GetRestaurant(ctx, "1")
	require.NoError(t, err)
	upstream.AssertExpectations(t)
}

func TestCachedRestaurantsWritesDropEntries(t *testing.T) {
	ctx := context.Background()
	upstream := new(MockRestaurantRepository)
	upstream.On("GetRestaurant", ctx, "9").Return(models.Restaurant{ID: "9"}, nil).Once()
	upstream.On("UpdateRestaurant", ctx, "tok", "9", mock.Anything).Return(nil).Once()

	store := newMapCache()
	repo := NewCachedRestaurantRepository(upstream, store, time.Minute, zerolog.Nop())

	_, err := repo.GetRestaurant(ctx, "9")
	require.NoError(t, err)
	require.NoError(t, repo.UpdateRestaurant(ctx, "tok", "9", models.RestaurantInput{Name: "n"}))
	assert.False(t, store.has("restaurants:9"))
}

func TestCachedRestaurantsFallsThroughOnCacheFailure(t *testing.T) {
	ctx := context.Background()
	upstream := new(MockRestaurantRepository)
	upstream.On("GetRestaurants", ctx).Return([]models.Restaurant{{ID: "1"}}, nil).Twice()

	store := newMapCache()
	store.failGet = true
	repo := NewCachedRestaurantRepository(upstream, store, time.Minute, zerolog.Nop())

	for i := 0; i < 2; i++ {
		got, err := repo.GetRestaurants(ctx)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	}
	upstream.AssertExpectations(t)
}

func TestCachedRestaurantsDoesNotCacheErrors(t *testing.T) {
	ctx := context.Background()
	upstream := new(MockRestaurantRepository)
	upstream.On("GetRestaurants", ctx).Return(nil, models.NewDefaultError("boom")).Once()

	store := newMapCache()
	repo := NewCachedRestaurantRepository(upstream, store, time.Minute, zerolog.Nop())

	_, err := repo.GetRestaurants(ctx)
	require.Error(t, err)
	assert.False(t, store.has(restaurantListKey))
}
