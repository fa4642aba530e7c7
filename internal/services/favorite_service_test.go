package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clicktoeat/internal/models"
)

func TestFavoriteToggle(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.login("ann")
	other := f.store.SeedUser("bob", "bob@example.com", "secret2")
	r := f.store.SeedRestaurant("Pizza Oven", "wood fired")
	f.store.SeedFavorite(other.ID, r.ID)

	on, err := models.Await(f.favorites.Toggle(ctx, r.ID))
	require.NoError(t, err)
	assert.Equal(t, models.FavoriteStatus{RestaurantID: r.ID, IsFavorite: true, Count: 2}, on)

	off, err := models.Await(f.favorites.Toggle(ctx, r.ID))
	require.NoError(t, err)
	assert.Equal(t, models.FavoriteStatus{RestaurantID: r.ID, IsFavorite: false, Count: 1}, off)
}

func TestFavoriteToggleRequiresLogin(t *testing.T) {
	f := newFixture()
	r := f.store.SeedRestaurant("Pizza Oven", "wood fired")

	values := models.Collect(f.favorites.Toggle(context.Background(), r.ID))
	require.Len(t, values, 1)
	assert.ErrorIs(t, values[0].Err, models.ErrNotLoggedIn)
}

func TestGetFavoritesOfUser(t *testing.T) {
	f := newFixture()
	ann := f.store.SeedUser("ann", "ann@example.com", "secret1")
	first := f.store.SeedRestaurant("Pizza Oven", "wood fired")
	f.store.SeedRestaurant("Soup Bar", "broths")
	second := f.store.SeedRestaurant("Taco Stand", "al pastor")
	f.store.SeedFavorite(ann.ID, first.ID)
	f.store.SeedFavorite(ann.ID, second.ID)

	values := models.Collect(f.favorites.GetFavoritesOfUser(context.Background(), ann.ID))
	require.Len(t, values, 2)
	assert.True(t, values[0].Loading)
	got := values[1].Data
	require.NoError(t, values[1].Err)
	require.Len(t, got, 2)
	assert.Equal(t, first.ID, got[0].ID)
	assert.Equal(t, second.ID, got[1].ID)
}
