package memory

import (
	"context"
	"net/http"
	"strings"

	"clicktoeat/internal/models"
)

func (s *Store) Login(_ context.Context, creds models.Credentials) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range s.userOrder {
		rec := s.users[id]
		if strings.EqualFold(rec.user.Email, strings.TrimSpace(creds.Email)) && rec.password == creds.Password {
			return s.issueTokenLocked(id), nil
		}
	}
	return "", &models.DefaultError{Status: http.StatusUnauthorized, Message: "invalid email or password"}
}

func (s *Store) Logout(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.authorize(token); err != nil {
		return err
	}
	delete(s.tokens, token)
	return nil
}

func (s *Store) Refresh(_ context.Context, token string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	userID, err := s.authorize(token)
	if err != nil {
		return "", err
	}
	delete(s.tokens, token)
	return s.issueTokenLocked(userID), nil
}

func (s *Store) Authenticate(_ context.Context, token string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	userID, err := s.authorize(token)
	if err != nil {
		return models.User{}, err
	}
	return s.users[userID].user, nil
}

func (s *Store) GetUsers(_ context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.usersByID(s.userOrder), nil
}

func (s *Store) GetUser(_ context.Context, id string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.users[id]
	if !ok {
		return models.User{}, errNotFound("user")
	}
	return rec.user, nil
}

func (s *Store) Register(_ context.Context, input models.AccountInput) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if fe := s.checkAccount(input, ""); len(fe) > 0 {
		return "", fe
	}
	u := models.User{
		ID:        s.nextID(),
		Username:  strings.TrimSpace(input.Username),
		Email:     strings.TrimSpace(input.Email),
		ImageURL:  imageURL(input.Image),
		CreatedAt: s.now(),
	}
	s.users[u.ID] = &userRecord{user: u, password: input.Password}
	s.userOrder = append(s.userOrder, u.ID)
	return u.ID, nil
}

func (s *Store) UpdateAccount(_ context.Context, token string, input models.AccountInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	userID, err := s.authorize(token)
	if err != nil {
		return err
	}
	if fe := s.checkAccount(input, userID); len(fe) > 0 {
		return fe
	}
	rec := s.users[userID]
	rec.user.Username = strings.TrimSpace(input.Username)
	rec.user.Email = strings.TrimSpace(input.Email)
	if input.Password != "" {
		rec.password = input.Password
	}
	if u := imageURL(input.Image); u != nil {
		rec.user.ImageURL = u
	}
	now := s.now()
	rec.user.UpdatedAt = &now
	return nil
}

func (s *Store) DeleteAccount(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	userID, err := s.authorize(token)
	if err != nil {
		return err
	}
	delete(s.users, userID)
	s.userOrder, _ = removeID(s.userOrder, userID)
	for tok, id := range s.tokens {
		if id == userID {
			delete(s.tokens, tok)
		}
	}
	for rid, ids := range s.favorites {
		s.favorites[rid], _ = removeID(ids, userID)
	}
	for _, m := range []map[string][]string{s.likes, s.dislikes} {
		for cid, ids := range m {
			m[cid], _ = removeID(ids, userID)
		}
	}
	kept := s.comments[:0]
	for _, c := range s.comments {
		if c.User.ID == userID {
			delete(s.likes, c.ID)
			delete(s.dislikes, c.ID)
			continue
		}
		kept = append(kept, c)
	}
	s.comments = kept
	return nil
}

// checkAccount enforces unique usernames and emails. self is the id of the
// account being updated, empty on registration.
func (s *Store) checkAccount(input models.AccountInput, self string) models.FieldErrors {
	var fe models.FieldErrors
	username := strings.TrimSpace(input.Username)
	email := strings.TrimSpace(input.Email)
	if username == "" {
		fe = append(fe, models.FieldError{Field: "username", Error: "username is required"})
	}
	if email == "" {
		fe = append(fe, models.FieldError{Field: "email", Error: "email is required"})
	}
	if self == "" && input.Password == "" {
		fe = append(fe, models.FieldError{Field: "password", Error: "password is required"})
	}
	for id, rec := range s.users {
		if id == self {
			continue
		}
		if username != "" && strings.EqualFold(rec.user.Username, username) {
			fe = append(fe, models.FieldError{Field: "username", Error: "username already taken"})
		}
		if email != "" && strings.EqualFold(rec.user.Email, email) {
			fe = append(fe, models.FieldError{Field: "email", Error: "email already registered"})
		}
	}
	return fe
}
