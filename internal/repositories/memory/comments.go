package memory

import (
	"context"
	"strings"

	"clicktoeat/internal/models"
)

// withAuthor resolves the author's current profile. Callers hold s.mu.
func (s *Store) withAuthor(c models.Comment) models.Comment {
	if rec, ok := s.users[c.User.ID]; ok {
		c.User = rec.user
	}
	return c
}

func (s *Store) findComment(id string) (int, bool) {
	for i, c := range s.comments {
		if c.ID == id {
			return i, true
		}
	}
	return -1, false
}

func (s *Store) GetCommentsByRestaurant(_ context.Context, restaurantID string) ([]models.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.restaurants[restaurantID]; !ok {
		return nil, errNotFound("restaurant")
	}
	out := []models.Comment{}
	for _, c := range s.comments {
		if c.RestaurantID == restaurantID {
			out = append(out, s.withAuthor(c))
		}
	}
	return out, nil
}

func (s *Store) GetCommentsByUser(_ context.Context, userID string) ([]models.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Comment{}
	for _, c := range s.comments {
		if c.User.ID == userID {
			out = append(out, s.withAuthor(c))
		}
	}
	return out, nil
}

func (s *Store) GetComment(_ context.Context, id string) (models.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.findComment(id)
	if !ok {
		return models.Comment{}, errNotFound("comment")
	}
	return s.withAuthor(s.comments[i]), nil
}

func (s *Store) CreateComment(_ context.Context, token, restaurantID string, input models.CommentInput) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	userID, err := s.authorize(token)
	if err != nil {
		return "", err
	}
	if _, ok := s.restaurants[restaurantID]; !ok {
		return "", errNotFound("restaurant")
	}
	if fe := checkComment(input); len(fe) > 0 {
		return "", fe
	}
	c := models.Comment{
		ID:           s.nextID(),
		Review:       strings.TrimSpace(input.Review),
		Rating:       input.Rating,
		User:         models.User{ID: userID},
		RestaurantID: restaurantID,
		CreatedAt:    s.now(),
	}
	s.comments = append(s.comments, c)
	return c.ID, nil
}

func (s *Store) UpdateComment(_ context.Context, token, id string, input models.CommentInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	userID, err := s.authorize(token)
	if err != nil {
		return err
	}
	i, ok := s.findComment(id)
	if !ok {
		return errNotFound("comment")
	}
	if s.comments[i].User.ID != userID {
		return errForbidden
	}
	if fe := checkComment(input); len(fe) > 0 {
		return fe
	}
	now := s.now()
	s.comments[i].Review = strings.TrimSpace(input.Review)
	s.comments[i].Rating = input.Rating
	s.comments[i].UpdatedAt = &now
	return nil
}

func (s *Store) DeleteComment(_ context.Context, token, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	userID, err := s.authorize(token)
	if err != nil {
		return err
	}
	i, ok := s.findComment(id)
	if !ok {
		return errNotFound("comment")
	}
	if s.comments[i].User.ID != userID {
		return errForbidden
	}
	s.comments = append(s.comments[:i:i], s.comments[i+1:]...)
	delete(s.likes, id)
	delete(s.dislikes, id)
	return nil
}

func checkComment(input models.CommentInput) models.FieldErrors {
	var fe models.FieldErrors
	if strings.TrimSpace(input.Review) == "" {
		fe = append(fe, models.FieldError{Field: "review", Error: "review is required"})
	}
	if input.Rating < 0 || input.Rating > 5 {
		fe = append(fe, models.FieldError{Field: "rating", Error: "rating must be between 0 and 5"})
	}
	return fe
}
