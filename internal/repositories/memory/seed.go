package memory

import (
	"clicktoeat/internal/models"
)

// Seeding helpers bypass tokens and validation.

func (s *Store) SeedUser(username, email, password string) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := models.User{ID: s.nextID(), Username: username, Email: email, CreatedAt: s.now()}
	s.users[u.ID] = &userRecord{user: u, password: password}
	s.userOrder = append(s.userOrder, u.ID)
	return u
}

// IssueToken logs userID in and returns its bearer token.
func (s *Store) IssueToken(userID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.issueTokenLocked(userID)
}

func (s *Store) SeedRestaurant(name, description string, locations ...models.Location) models.Restaurant {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := models.Restaurant{
		ID:          s.nextID(),
		Name:        name,
		Description: description,
		Locations:   append([]models.Location{}, locations...),
		CreatedAt:   s.now(),
	}
	s.restaurants[r.ID] = r
	s.restaurantOrder = append(s.restaurantOrder, r.ID)
	return r
}

func (s *Store) SeedComment(userID, restaurantID, review string, rating int) models.Comment {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := models.Comment{
		ID:           s.nextID(),
		Review:       review,
		Rating:       rating,
		User:         models.User{ID: userID},
		RestaurantID: restaurantID,
		CreatedAt:    s.now(),
	}
	s.comments = append(s.comments, c)
	return s.withAuthor(c)
}

func (s *Store) SeedFavorite(userID, restaurantID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !hasID(s.favorites[restaurantID], userID) {
		s.favorites[restaurantID] = append(s.favorites[restaurantID], userID)
	}
}

func (s *Store) SeedLike(userID, commentID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.likes[commentID] = append(s.likes[commentID], userID)
}

func (s *Store) SeedDislike(userID, commentID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dislikes[commentID] = append(s.dislikes[commentID], userID)
}

// Comments returns a snapshot of every comment in insertion order.
func (s *Store) Comments() []models.Comment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Comment, 0, len(s.comments))
	for _, c := range s.comments {
		out = append(out, s.withAuthor(c))
	}
	return out
}
