package memory

import (
	"context"
	"strings"

	"clicktoeat/internal/models"
)

func (s *Store) GetRestaurants(_ context.Context) ([]models.Restaurant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Restaurant, 0, len(s.restaurantOrder))
	for _, id := range s.restaurantOrder {
		out = append(out, s.restaurants[id])
	}
	return out, nil
}

func (s *Store) GetRestaurant(_ context.Context, id string) (models.Restaurant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.restaurants[id]
	if !ok {
		return models.Restaurant{}, errNotFound("restaurant")
	}
	return r, nil
}

func (s *Store) CreateRestaurant(_ context.Context, token string, input models.RestaurantInput) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.authorize(token); err != nil {
		return "", err
	}
	if fe := checkRestaurant(input); len(fe) > 0 {
		return "", fe
	}
	r := models.Restaurant{
		ID:          s.nextID(),
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		ImageURL:    imageURL(input.Image),
		Locations:   append([]models.Location{}, input.Locations...),
		CreatedAt:   s.now(),
	}
	s.restaurants[r.ID] = r
	s.restaurantOrder = append(s.restaurantOrder, r.ID)
	return r.ID, nil
}

func (s *Store) UpdateRestaurant(_ context.Context, token, id string, input models.RestaurantInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.authorize(token); err != nil {
		return err
	}
	r, ok := s.restaurants[id]
	if !ok {
		return errNotFound("restaurant")
	}
	if fe := checkRestaurant(input); len(fe) > 0 {
		return fe
	}
	r.Name = strings.TrimSpace(input.Name)
	r.Description = strings.TrimSpace(input.Description)
	r.Locations = append([]models.Location{}, input.Locations...)
	if u := imageURL(input.Image); u != nil {
		r.ImageURL = u
	}
	now := s.now()
	r.UpdatedAt = &now
	s.restaurants[id] = r
	return nil
}

func (s *Store) DeleteRestaurant(_ context.Context, token, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.authorize(token); err != nil {
		return err
	}
	if _, ok := s.restaurants[id]; !ok {
		return errNotFound("restaurant")
	}
	delete(s.restaurants, id)
	s.restaurantOrder, _ = removeID(s.restaurantOrder, id)
	delete(s.favorites, id)

	kept := s.comments[:0]
	for _, c := range s.comments {
		if c.RestaurantID == id {
			delete(s.likes, c.ID)
			delete(s.dislikes, c.ID)
			continue
		}
		kept = append(kept, c)
	}
	s.comments = kept
	return nil
}

func checkRestaurant(input models.RestaurantInput) models.FieldErrors {
	var fe models.FieldErrors
	if strings.TrimSpace(input.Name) == "" {
		fe = append(fe, models.FieldError{Field: "name", Error: "name is required"})
	}
	if strings.TrimSpace(input.Description) == "" {
		fe = append(fe, models.FieldError{Field: "description", Error: "description is required"})
	}
	return fe
}
