package memory

import (
	"context"
	"net/http"

	"clicktoeat/internal/models"
)

// Reactions exposes one reaction kind as a repositories.ReactionRepository.
type Reactions struct {
	s        *Store
	kind     string
	own      func(*Store) map[string][]string
	opposite func(*Store) map[string][]string
}

// Likes returns the like repository of the store.
func (s *Store) Likes() *Reactions {
	return &Reactions{
		s:        s,
		kind:     "like",
		own:      func(s *Store) map[string][]string { return s.likes },
		opposite: func(s *Store) map[string][]string { return s.dislikes },
	}
}

// Dislikes returns the dislike repository of the store.
func (s *Store) Dislikes() *Reactions {
	return &Reactions{
		s:        s,
		kind:     "dislike",
		own:      func(s *Store) map[string][]string { return s.dislikes },
		opposite: func(s *Store) map[string][]string { return s.likes },
	}
}

func (v *Reactions) GetReactors(_ context.Context, commentID string) ([]models.User, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	if _, ok := v.s.findComment(commentID); !ok {
		return nil, errNotFound("comment")
	}
	return v.s.usersByID(v.own(v.s)[commentID]), nil
}

func (v *Reactions) React(_ context.Context, token, commentID string) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	userID, err := v.s.authorize(token)
	if err != nil {
		return err
	}
	if _, ok := v.s.findComment(commentID); !ok {
		return errNotFound("comment")
	}
	own := v.own(v.s)
	if hasID(own[commentID], userID) {
		return &models.DefaultError{Status: http.StatusConflict, Message: "comment already has your " + v.kind}
	}
	if hasID(v.opposite(v.s)[commentID], userID) {
		return &models.DefaultError{Status: http.StatusConflict, Message: "remove your previous reaction first"}
	}
	own[commentID] = append(own[commentID], userID)
	return nil
}

func (v *Reactions) Unreact(_ context.Context, token, commentID string) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	userID, err := v.s.authorize(token)
	if err != nil {
		return err
	}
	own := v.own(v.s)
	ids, ok := removeID(own[commentID], userID)
	if !ok {
		return errNotFound(v.kind)
	}
	own[commentID] = ids
	return nil
}
