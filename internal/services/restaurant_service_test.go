package services

import (
	"context"
	"net/http"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clicktoeat/internal/models"
)

func TestAverageRating(t *testing.T) {
	assert.Equal(t, 0.0, AverageRating(nil))

	comments := make([]models.Comment, 0, 10)
	for _, r := range []int{0, 1, 2, 3, 4, 0, 1, 2, 3, 4} {
		comments = append(comments, models.Comment{Rating: r})
	}
	assert.Equal(t, 2.0, AverageRating(comments))
}

func TestGetRestaurantsAggregates(t *testing.T) {
	f := newFixture()
	author := f.store.SeedUser("ann", "ann@example.com", "secret1")
	fan := f.store.SeedUser("bob", "bob@example.com", "secret2")
	r := f.store.SeedRestaurant("Noodle Bar", "hand pulled", models.Location{Address: "1 Main St", Latitude: 43.2, Longitude: 76.9})
	for _, rating := range []int{0, 1, 2, 3, 4, 0, 1, 2, 3, 4} {
		f.store.SeedComment(author.ID, r.ID, "review", rating)
	}
	f.store.SeedFavorite(fan.ID, r.ID)
	first := f.store.Comments()[0]
	f.store.SeedLike(fan.ID, first.ID)

	values := models.Collect(f.restaurants.GetRestaurants(context.Background(), RestaurantQuery{}))
	require.Len(t, values, 2)
	assert.Equal(t, models.StateLoading, values[0].State)
	assert.True(t, values[0].Loading)
	require.Equal(t, models.StateSuccess, values[1].State)

	require.Len(t, values[1].Data, 1)
	got := values[1].Data[0]
	assert.Equal(t, r.ID, got.ID)
	assert.Equal(t, 2.0, got.AverageRating)
	assert.Equal(t, 10, got.RatingCount)
	assert.Equal(t, []string{fan.ID}, got.FavoritedBy)
	assert.False(t, got.IsFavoriteByCurrentUser)
	require.Len(t, got.Comments, 10)
	assert.Equal(t, []string{fan.ID}, got.Comments[0].Likes)
	assert.Empty(t, got.Comments[0].Dislikes)
	assert.Equal(t, "ann", got.Comments[0].User.Username)
}

func TestGetRestaurantsWithoutComments(t *testing.T) {
	f := newFixture()
	f.store.SeedRestaurant("Empty Cafe", "quiet")

	got, err := models.Await(f.restaurants.GetRestaurants(context.Background(), RestaurantQuery{}))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 0.0, got[0].AverageRating)
	assert.Equal(t, 0, got[0].RatingCount)
	assert.NotNil(t, got[0].Comments)
	assert.NotNil(t, got[0].FavoritedBy)
}

func TestGetRestaurantsMarksViewerFavorites(t *testing.T) {
	f := newFixture()
	viewer := f.login("ann")
	liked := f.store.SeedRestaurant("Pho Place", "broth")
	f.store.SeedRestaurant("Burger Joint", "fries")
	f.store.SeedFavorite(viewer.ID, liked.ID)

	got, err := models.Await(f.restaurants.GetRestaurants(context.Background(), RestaurantQuery{}))
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, tr := range got {
		assert.Equal(t, tr.ID == liked.ID, tr.IsFavoriteByCurrentUser, tr.Name)
	}

	favorites, err := models.Await(f.restaurants.GetRestaurants(context.Background(), RestaurantQuery{FavoritesOf: viewer.ID}))
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, liked.ID, favorites[0].ID)

	for _, tr := range favorites {
		assert.True(t, tr.IsFavoriteByCurrentUser)
	}

	mine, err := models.Await(f.restaurants.GetFavoriteRestaurants(context.Background(), false))
	require.NoError(t, err)
	assert.Equal(t, favorites, mine)
}

func TestGetRestaurantsIsAllOrNothing(t *testing.T) {
	f := newFixture()
	f.store.SeedRestaurant("Good", "fine")
	bad := f.store.SeedRestaurant("Bad", "broken")
	f.restaurants.Comments = failingComments{CommentRepository: f.store, failFor: bad.ID}

	values := models.Collect(f.restaurants.GetRestaurants(context.Background(), RestaurantQuery{}))
	require.Len(t, values, 2)
	assert.Equal(t, models.StateLoading, values[0].State)
	require.Equal(t, models.StateFailure, values[1].State)
	assert.Empty(t, values[1].Data)
	assert.ErrorIs(t, values[1].Err, models.ErrRestaurantsFailed)
	assert.Equal(t, "unable to fetch latest restaurant data", values[1].Err.Error())
}

func TestGetRestaurantNotFound(t *testing.T) {
	f := newFixture()

	_, err := models.Await(f.restaurants.GetRestaurant(context.Background(), "missing", false))
	de, ok := models.AsDefault(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, de.Status)
}

func TestGetFavoriteRestaurantsRequiresLogin(t *testing.T) {
	f := newFixture()

	values := models.Collect(f.restaurants.GetFavoriteRestaurants(context.Background(), false))
	require.Len(t, values, 1)
	assert.ErrorIs(t, values[0].Err, models.ErrNotLoggedIn)
}

func TestCreateRestaurantValidation(t *testing.T) {
	f := newFixture()
	f.login("ann")

	values := models.Collect(f.restaurants.CreateRestaurant(context.Background(), models.RestaurantInput{
		Name:      " ",
		Locations: []models.Location{{Address: "", Latitude: 91}},
	}))
	require.Len(t, values, 1)
	errs, ok := models.AsFieldErrors(values[0].Err)
	require.True(t, ok)
	for _, field := range []string{"name", "description", "image", "locations[0].address", "locations[0].lat"} {
		assert.True(t, slices.ContainsFunc(errs, func(fe models.FieldError) bool { return fe.Field == field }), field)
	}
	got, err := models.Await(f.restaurants.GetRestaurants(context.Background(), RestaurantQuery{}))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRestaurantLifecycle(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.login("ann")

	created, err := models.Await(f.restaurants.CreateRestaurant(ctx, models.RestaurantInput{
		Name:        "Kebab Hut",
		Description: "grill",
		Image:       &models.ImageUpload{FileName: "k.png", ContentType: "image/png", Data: []byte{1, 2}},
	}))
	require.NoError(t, err)
	assert.Equal(t, "Kebab Hut", created.Name)

	updated, err := models.Await(f.restaurants.UpdateRestaurant(ctx, created.ID, models.RestaurantInput{
		Name:        "Kebab House",
		Description: "grill",
	}))
	require.NoError(t, err)
	assert.Equal(t, "Kebab House", updated.Name)

	id, err := models.Await(f.restaurants.DeleteRestaurant(ctx, created.ID))
	require.NoError(t, err)
	assert.Equal(t, created.ID, id)
}

func TestStreamStopsOnCancel(t *testing.T) {
	f := newFixture()
	f.store.SeedRestaurant("Any", "thing")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	values := models.Collect(f.restaurants.GetRestaurants(ctx, RestaurantQuery{}))
	assert.Empty(t, values)
}

func TestFavoritesFilterOfAnotherUser(t *testing.T) {
	f := newFixture()
	bob := f.store.SeedUser("bob", "bob@example.com", "secret2")
	a := f.store.SeedRestaurant("A", "first")
	f.store.SeedRestaurant("B", "second")
	c := f.store.SeedRestaurant("C", "third")
	f.store.SeedFavorite(bob.ID, a.ID)
	f.store.SeedFavorite(bob.ID, c.ID)

	got, err := models.Await(f.restaurants.GetRestaurants(context.Background(), RestaurantQuery{FavoritesOf: bob.ID}))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, a.ID, got[0].ID)
	assert.Equal(t, c.ID, got[1].ID)
	for _, tr := range got {
		assert.Contains(t, tr.FavoritedBy, bob.ID)
		assert.True(t, tr.IsFavoriteByCurrentUser)
	}
}
