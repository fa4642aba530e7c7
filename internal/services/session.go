package services

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"

	"clicktoeat/internal/models"
	"clicktoeat/internal/repositories"
)

// currentUser resolves the session user by revalidating the stored token
// with the backend. A token the backend rejects is dropped unless a newer
// login has replaced it meanwhile.
func currentUser(ctx context.Context, tokens repositories.TokenRepository, users repositories.UserRepository, logger zerolog.Logger) (string, models.User, error) {
	token, err := tokens.Token(ctx)
	if err != nil {
		return "", models.User{}, err
	}
	user, err := users.Authenticate(ctx, token)
	if err != nil {
		if de, ok := models.AsDefault(err); ok && de.Status == http.StatusUnauthorized {
			if cerr := tokens.ClearIf(ctx, token); cerr != nil {
				logger.Error().Err(cerr).Msg("failed to clear rejected token")
			}
			return "", models.User{}, models.ErrNotLoggedIn
		}
		return "", models.User{}, err
	}
	return token, user, nil
}
