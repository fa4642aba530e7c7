// Package session owns the bearer token of the gateway's single user
// session.
package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt"

	"clicktoeat/internal/models"
)

// Store keeps the token in memory and, when path is set, in a file readable
// only by the owner. It is safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	path  string
	token string
	now   func() time.Time
}

// NewStore returns a Store, loading a previously persisted token from path.
// An empty path keeps the token in memory only.
func NewStore(path string) (*Store, error) {
	s := &Store{path: path, now: time.Now}
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("session: read %s: %w", path, err)
	}
	s.token = strings.TrimSpace(string(data))
	return s, nil
}

// Token returns the current token or models.ErrNotLoggedIn. A token that
// decodes as a JWT with a past expiry is cleared first.
func (s *Store) Token(ctx context.Context) (string, error) {
	s.mu.RLock()
	token := s.token
	s.mu.RUnlock()

	if token == "" {
		return "", models.ErrNotLoggedIn
	}
	if claims, ok := parseClaims(token); ok && claims.ExpiresAt != 0 && s.now().Unix() >= claims.ExpiresAt {
		if err := s.ClearIf(ctx, token); err != nil {
			return "", err
		}
		return "", models.ErrNotLoggedIn
	}
	return token, nil
}

func (s *Store) Save(_ context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return errors.New("session: empty token")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.persist(token); err != nil {
		return err
	}
	s.token = token
	return nil
}

func (s *Store) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clearLocked()
}

// Subject returns the "sub" claim of the current token, if it has one.
func (s *Store) Subject() string {
	s.mu.RLock()
	token := s.token
	s.mu.RUnlock()
	if claims, ok := parseClaims(token); ok {
		return claims.Subject
	}
	return ""
}

// ExpiresAt returns the "exp" claim of the current token. Opaque tokens and
// tokens without an expiry report false.
func (s *Store) ExpiresAt() (time.Time, bool) {
	s.mu.RLock()
	token := s.token
	s.mu.RUnlock()
	claims, ok := parseClaims(token)
	if !ok || claims.ExpiresAt == 0 {
		return time.Time{}, false
	}
	return time.Unix(claims.ExpiresAt, 0), true
}

// ClearIf clears the store only if it still holds token, so a login that
// raced with the check that rejected token is kept.
func (s *Store) ClearIf(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token != token {
		return nil
	}
	return s.clearLocked()
}

func (s *Store) clearLocked() error {
	s.token = ""
	if s.path == "" {
		return nil
	}
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("session: remove %s: %w", s.path, err)
	}
	return nil
}

func (s *Store) persist(token string) error {
	if s.path == "" {
		return nil
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("session: create %s: %w", dir, err)
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(token), 0o600); err != nil {
		return fmt.Errorf("session: write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("session: rename %s: %w", tmp, err)
	}
	return nil
}

// parseClaims decodes JWT claims without verifying the signature; the
// gateway does not hold the backend's signing key and only reads expiry.
func parseClaims(token string) (*jwt.StandardClaims, bool) {
	if strings.Count(token, ".") != 2 {
		return nil, false
	}
	claims := &jwt.StandardClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(token, claims); err != nil {
		return nil, false
	}
	return claims, true
}
