// Package memory is an in-process ClickToEat backend. It serves the gateway's
// offline mode and the use-case tests, and enforces the same rules the REST
// API does: bearer tokens on writes, authorship on edits and mutually
// exclusive reactions.
package memory

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"clicktoeat/internal/models"
	"clicktoeat/internal/repositories"
)

var (
	_ repositories.RestaurantRepository = (*Store)(nil)
	_ repositories.CommentRepository    = (*Store)(nil)
	_ repositories.FavoriteRepository   = (*Store)(nil)
	_ repositories.UserRepository       = (*Store)(nil)
	_ repositories.ReactionRepository   = (*Reactions)(nil)
)

type userRecord struct {
	user     models.User
	password string
}

// Store holds every entity of the backend.
type Store struct {
	mu  sync.RWMutex
	seq int
	now func() time.Time

	users           map[string]*userRecord
	userOrder       []string
	tokens          map[string]string
	restaurants     map[string]models.Restaurant
	restaurantOrder []string
	comments        []models.Comment
	favorites       map[string][]string
	likes           map[string][]string
	dislikes        map[string][]string
}

func New() *Store {
	return &Store{
		now:         time.Now,
		users:       make(map[string]*userRecord),
		tokens:      make(map[string]string),
		restaurants: make(map[string]models.Restaurant),
		favorites:   make(map[string][]string),
		likes:       make(map[string][]string),
		dislikes:    make(map[string][]string),
	}
}

func (s *Store) nextID() string {
	s.seq++
	return strconv.Itoa(s.seq)
}

func errNotFound(what string) *models.DefaultError {
	return &models.DefaultError{Status: http.StatusNotFound, Message: what + " not found"}
}

var (
	errUnauthorized = &models.DefaultError{Status: http.StatusUnauthorized, Message: "invalid or missing token"}
	errForbidden    = &models.DefaultError{Status: http.StatusForbidden, Message: "not allowed"}
)

// authorize resolves the user behind token. Callers hold s.mu.
func (s *Store) authorize(token string) (string, error) {
	id, ok := s.tokens[token]
	if !ok || token == "" {
		return "", errUnauthorized
	}
	if _, ok := s.users[id]; !ok {
		return "", errUnauthorized
	}
	return id, nil
}

func (s *Store) issueTokenLocked(userID string) string {
	token := uuid.NewString()
	s.tokens[token] = userID
	return token
}

func imageURL(img *models.ImageUpload) *string {
	if img == nil || len(img.Data) == 0 {
		return nil
	}
	u := "/images/" + uuid.NewString() + "-" + img.FileName
	return &u
}

func removeID(ids []string, id string) ([]string, bool) {
	for i, v := range ids {
		if v == id {
			out := make([]string, 0, len(ids)-1)
			out = append(out, ids[:i]...)
			return append(out, ids[i+1:]...), true
		}
	}
	return ids, false
}

func hasID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func (s *Store) usersByID(ids []string) []models.User {
	out := make([]models.User, 0, len(ids))
	for _, id := range ids {
		if rec, ok := s.users[id]; ok {
			out = append(out, rec.user)
		}
	}
	return out
}
