package main

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clicktoeat/internal/repositories"
	"clicktoeat/internal/services"
	"clicktoeat/internal/session"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

type renewingUsers struct {
	repositories.UserRepository
	fresh string
}

func (u renewingUsers) Refresh(context.Context, string) (string, error) {
	return u.fresh, nil
}

func jwtFor(t *testing.T, subject string, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{Subject: subject, ExpiresAt: exp.Unix()})
	s, err := tok.SignedString([]byte("backend-secret"))
	require.NoError(t, err)
	return s
}

func TestSessionRefresherRenewsExpiringToken(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := session.NewStore("")
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, jwtFor(t, "user-7", time.Now().Add(2*time.Minute))))
	fresh := jwtFor(t, "user-7", time.Now().Add(time.Hour))

	var out syncBuffer
	logger := zerolog.New(&out)
	users := &services.UserService{Users: renewingUsers{fresh: fresh}, Tokens: store, Logger: logger}

	startSessionRefresher(ctx, store, users, logger)

	require.Eventually(t, func() bool {
		token, err := store.Token(ctx)
		return err == nil && token == fresh
	}, 2*time.Second, 10*time.Millisecond)
	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "session refreshed")
	}, 2*time.Second, 10*time.Millisecond)
	assert.Contains(t, out.String(), `"subject":"user-7"`)
}

func TestSessionRefresherLeavesOpaqueToken(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := session.NewStore("")
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, "opaque-token"))

	var out syncBuffer
	logger := zerolog.New(&out)
	users := &services.UserService{Users: renewingUsers{fresh: "other"}, Tokens: store, Logger: logger}

	startSessionRefresher(ctx, store, users, logger)
	time.Sleep(50 * time.Millisecond)

	token, err := store.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "opaque-token", token)
	assert.Empty(t, out.String())
}
