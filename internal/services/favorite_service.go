package services

import (
	"context"

	"github.com/rs/zerolog"

	"clicktoeat/internal/models"
	"clicktoeat/internal/repositories"
)

type FavoriteService struct {
	Favorites repositories.FavoriteRepository
	Users     repositories.UserRepository
	Tokens    repositories.TokenRepository
	Logger    zerolog.Logger
}

// Toggle favorites or unfavorites a restaurant for the session user and
// returns the state read back from the backend.
func (s *FavoriteService) Toggle(ctx context.Context, restaurantID string) <-chan models.Resource[models.FavoriteStatus] {
	if _, err := s.Tokens.Token(ctx); err != nil {
		return failNow[models.FavoriteStatus](err)
	}
	return run(ctx, func(ctx context.Context) (models.FavoriteStatus, error) {
		token, user, err := currentUser(ctx, s.Tokens, s.Users, s.Logger)
		if err != nil {
			return models.FavoriteStatus{}, err
		}
		status, err := s.status(ctx, restaurantID, user.ID)
		if err != nil {
			return models.FavoriteStatus{}, err
		}
		if status.IsFavorite {
			err = s.Favorites.RemoveFavorite(ctx, token, restaurantID)
		} else {
			err = s.Favorites.AddFavorite(ctx, token, restaurantID)
		}
		if err != nil {
			return status, err
		}
		return s.status(ctx, restaurantID, user.ID)
	})
}

func (s *FavoriteService) status(ctx context.Context, restaurantID, userID string) (models.FavoriteStatus, error) {
	fans, err := s.Favorites.GetUsersWhoFavorited(ctx, restaurantID)
	if err != nil {
		return models.FavoriteStatus{}, err
	}
	status := models.FavoriteStatus{RestaurantID: restaurantID, Count: len(fans)}
	for _, u := range fans {
		if u.ID == userID {
			status.IsFavorite = true
			break
		}
	}
	return status, nil
}

// GetFavoritesOfUser lists the raw restaurant records a user has favorited,
// without comments or ratings.
func (s *FavoriteService) GetFavoritesOfUser(ctx context.Context, userID string) <-chan models.Resource[[]models.Restaurant] {
	return run(ctx, func(ctx context.Context) ([]models.Restaurant, error) {
		restaurants, err := s.Favorites.GetFavoritesOfUser(ctx, userID)
		if err != nil {
			return nil, err
		}
		if restaurants == nil {
			restaurants = []models.Restaurant{}
		}
		return restaurants, nil
	})
}
