package services

import (
	"context"
	"slices"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clicktoeat/internal/models"
	"clicktoeat/internal/session"
)

func TestLoginStoresToken(t *testing.T) {
	f := newFixture()
	u := f.store.SeedUser("ann", "ann@example.com", "secret1")

	got, err := models.Await(f.users.Login(context.Background(), models.Credentials{Email: "ANN@example.com", Password: "secret1"}))
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.NotEmpty(t, f.tokens.current())
}

func TestLoginFailures(t *testing.T) {
	f := newFixture()
	f.store.SeedUser("ann", "ann@example.com", "secret1")

	values := models.Collect(f.users.Login(context.Background(), models.Credentials{}))
	require.Len(t, values, 1)
	errs, ok := models.AsFieldErrors(values[0].Err)
	require.True(t, ok)
	assert.Len(t, errs, 2)

	_, err := models.Await(f.users.Login(context.Background(), models.Credentials{Email: "ann@example.com", Password: "wrong"}))
	require.Error(t, err)
	assert.Empty(t, f.tokens.current())
}

func TestLogoutClearsTokenWhenUpstreamFails(t *testing.T) {
	f := newFixture()
	f.login("ann")
	f.users.Users = failingLogout{UserRepository: f.store}

	msg, err := models.Await(f.users.Logout(context.Background()))
	require.NoError(t, err)
	assert.Equal(t, "logged out", msg)
	assert.Empty(t, f.tokens.current())
}

func TestCurrentUserDropsRejectedToken(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	u := f.login("ann")

	got, err := models.Await(f.users.CurrentUser(ctx))
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	f.tokens.token = "revoked"
	_, err = models.Await(f.users.CurrentUser(ctx))
	assert.ErrorIs(t, err, models.ErrNotLoggedIn)
	assert.Empty(t, f.tokens.current())
}

func TestRejectedTokenKeepsNewerLogin(t *testing.T) {
	ctx := context.Background()
	store, err := session.NewStore("")
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, "stale-token"))

	svc := &UserService{
		Users:  loginDuringCheck{tokens: store, fresh: "fresh-login-token"},
		Tokens: store,
		Logger: zerolog.Nop(),
	}
	_, err = models.Await(svc.CurrentUser(ctx))
	assert.ErrorIs(t, err, models.ErrNotLoggedIn)

	token, err := store.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "fresh-login-token", token)
}

func TestRefreshReplacesToken(t *testing.T) {
	f := newFixture()
	f.login("ann")
	before := f.tokens.current()

	_, err := models.Await(f.users.Refresh(context.Background()))
	require.NoError(t, err)
	assert.NotEqual(t, before, f.tokens.current())

	_, err = models.Await(f.users.CurrentUser(context.Background()))
	assert.NoError(t, err)
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name  string
		input models.AccountInput
		field string
	}{
		{name: "username", input: models.AccountInput{Email: "a@example.com", Password: "secret1"}, field: "username"},
		{name: "email format", input: models.AccountInput{Username: "ann", Email: "not-an-email", Password: "secret1"}, field: "email"},
		{name: "short password", input: models.AccountInput{Username: "ann", Email: "a@example.com", Password: "123"}, field: "password"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			values := models.Collect(f.users.Register(context.Background(), tt.input))
			require.Len(t, values, 1)
			errs, ok := models.AsFieldErrors(values[0].Err)
			require.True(t, ok)
			assert.True(t, slices.ContainsFunc(errs, func(fe models.FieldError) bool { return fe.Field == tt.field }))
		})
	}
}

func TestAccountLifecycle(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	created, err := models.Await(f.users.Register(ctx, models.AccountInput{Username: "ann", Email: "ann@example.com", Password: "secret1"}))
	require.NoError(t, err)
	assert.Equal(t, "ann", created.Username)
	assert.Empty(t, f.tokens.current(), "registering does not log in")

	_, err = models.Await(f.users.Login(ctx, models.Credentials{Email: "ann@example.com", Password: "secret1"}))
	require.NoError(t, err)

	updated, err := models.Await(f.users.UpdateAccount(ctx, models.AccountInput{Username: "annie", Email: "ann@example.com"}))
	require.NoError(t, err)
	assert.Equal(t, "annie", updated.Username)

	id, err := models.Await(f.users.DeleteAccount(ctx))
	require.NoError(t, err)
	assert.Equal(t, created.ID, id)
	assert.Empty(t, f.tokens.current())

	users, err := models.Await(f.users.GetUsers(ctx))
	require.NoError(t, err)
	assert.Empty(t, users)
}
