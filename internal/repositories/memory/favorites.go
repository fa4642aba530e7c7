package memory

import (
	"context"
	"net/http"

	"clicktoeat/internal/models"
)

func (s *Store) GetFavoritesOfUser(_ context.Context, userID string) ([]models.Restaurant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Restaurant{}
	for _, id := range s.restaurantOrder {
		if hasID(s.favorites[id], userID) {
			out = append(out, s.restaurants[id])
		}
	}
	return out, nil
}

func (s *Store) GetUsersWhoFavorited(_ context.Context, restaurantID string) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.restaurants[restaurantID]; !ok {
		return nil, errNotFound("restaurant")
	}
	return s.usersByID(s.favorites[restaurantID]), nil
}

func (s *Store) AddFavorite(_ context.Context, token, restaurantID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	userID, err := s.authorize(token)
	if err != nil {
		return err
	}
	if _, ok := s.restaurants[restaurantID]; !ok {
		return errNotFound("restaurant")
	}
	if hasID(s.favorites[restaurantID], userID) {
		return &models.DefaultError{Status: http.StatusConflict, Message: "restaurant already in favorites"}
	}
	s.favorites[restaurantID] = append(s.favorites[restaurantID], userID)
	return nil
}

func (s *Store) RemoveFavorite(_ context.Context, token, restaurantID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	userID, err := s.authorize(token)
	if err != nil {
		return err
	}
	ids, ok := removeID(s.favorites[restaurantID], userID)
	if !ok {
		return errNotFound("favorite")
	}
	s.favorites[restaurantID] = ids
	return nil
}
