package remote

import (
	"context"
	"net/http"

	"clicktoeat/internal/models"
)

// FavoriteRemote implements repositories.FavoriteRepository.
type FavoriteRemote struct {
	client *Client
}

func NewFavoriteRemote(client *Client) *FavoriteRemote {
	return &FavoriteRemote{client: client}
}

func (r *FavoriteRemote) GetFavoritesOfUser(ctx context.Context, userID string) ([]models.Restaurant, error) {
	return do[[]models.Restaurant](ctx, r.client, call{
		operation: "favorites.of_user",
		method:    http.MethodGet,
		path:      pathf("/api/favorites/user/%s", userID),
	})
}

func (r *FavoriteRemote) GetUsersWhoFavorited(ctx context.Context, restaurantID string) ([]models.User, error) {
	return do[[]models.User](ctx, r.client, call{
		operation: "favorites.of_restaurant",
		method:    http.MethodGet,
		path:      pathf("/api/favorites/restaurant/%s", restaurantID),
	})
}

func (r *FavoriteRemote) AddFavorite(ctx context.Context, token, restaurantID string) error {
	_, err := do[models.MessageResponse](ctx, r.client, call{
		operation: "favorites.add",
		method:    http.MethodPost,
		path:      pathf("/api/favorites/restaurant/%s", restaurantID),
		token:     token,
	})
	return err
}

func (r *FavoriteRemote) RemoveFavorite(ctx context.Context, token, restaurantID string) error {
	_, err := do[models.MessageResponse](ctx, r.client, call{
		operation: "favorites.remove",
		method:    http.MethodDelete,
		path:      pathf("/api/favorites/restaurant/%s", restaurantID),
		token:     token,
	})
	return err
}
