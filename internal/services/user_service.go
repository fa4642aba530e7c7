package services

import (
	"context"

	"github.com/rs/zerolog"

	"clicktoeat/internal/models"
	"clicktoeat/internal/repositories"
)

type UserService struct {
	Users  repositories.UserRepository
	Tokens repositories.TokenRepository
	Logger zerolog.Logger
}

// Login exchanges credentials for a token, stores it and returns the
// authenticated user.
func (s *UserService) Login(ctx context.Context, creds models.Credentials) <-chan models.Resource[models.User] {
	if errs := ValidateCredentials(creds); len(errs) > 0 {
		return failNow[models.User](errs)
	}
	return run(ctx, func(ctx context.Context) (models.User, error) {
		token, err := s.Users.Login(ctx, creds)
		if err != nil {
			return models.User{}, err
		}
		if err := s.Tokens.Save(ctx, token); err != nil {
			return models.User{}, err
		}
		user, err := s.Users.Authenticate(ctx, token)
		if err != nil {
			return models.User{}, err
		}
		s.Logger.Info().Str("user_id", user.ID).Msg("logged in")
		return user, nil
	})
}

// Logout ends the session. The local token is dropped even when the backend
// call fails.
func (s *UserService) Logout(ctx context.Context) <-chan models.Resource[string] {
	token, err := s.Tokens.Token(ctx)
	if err != nil {
		return failNow[string](err)
	}
	return run(ctx, func(ctx context.Context) (string, error) {
		if err := s.Users.Logout(ctx, token); err != nil {
			s.Logger.Warn().Err(err).Msg("upstream logout failed")
		}
		if err := s.Tokens.Clear(ctx); err != nil {
			return "", err
		}
		return "logged out", nil
	})
}

// Refresh swaps the stored token for a fresh one.
func (s *UserService) Refresh(ctx context.Context) <-chan models.Resource[string] {
	token, err := s.Tokens.Token(ctx)
	if err != nil {
		return failNow[string](err)
	}
	return run(ctx, func(ctx context.Context) (string, error) {
		fresh, err := s.Users.Refresh(ctx, token)
		if err != nil {
			return "", err
		}
		if err := s.Tokens.Save(ctx, fresh); err != nil {
			return "", err
		}
		return "session refreshed", nil
	})
}

func (s *UserService) CurrentUser(ctx context.Context) <-chan models.Resource[models.User] {
	if _, err := s.Tokens.Token(ctx); err != nil {
		return failNow[models.User](err)
	}
	return run(ctx, func(ctx context.Context) (models.User, error) {
		_, user, err := currentUser(ctx, s.Tokens, s.Users, s.Logger)
		return user, err
	})
}

// Register creates an account. It does not log the new user in.
func (s *UserService) Register(ctx context.Context, input models.AccountInput) <-chan models.Resource[models.User] {
	if errs := ValidateAccount(input, true); len(errs) > 0 {
		return failNow[models.User](errs)
	}
	return run(ctx, func(ctx context.Context) (models.User, error) {
		id, err := s.Users.Register(ctx, input)
		if err != nil {
			return models.User{}, err
		}
		s.Logger.Info().Str("user_id", id).Msg("account registered")
		return s.Users.GetUser(ctx, id)
	})
}

func (s *UserService) UpdateAccount(ctx context.Context, input models.AccountInput) <-chan models.Resource[models.User] {
	if errs := ValidateAccount(input, false); len(errs) > 0 {
		return failNow[models.User](errs)
	}
	token, err := s.Tokens.Token(ctx)
	if err != nil {
		return failNow[models.User](err)
	}
	return run(ctx, func(ctx context.Context) (models.User, error) {
		if err := s.Users.UpdateAccount(ctx, token, input); err != nil {
			return models.User{}, err
		}
		return s.Users.Authenticate(ctx, token)
	})
}

// DeleteAccount removes the session user and returns its id.
func (s *UserService) DeleteAccount(ctx context.Context) <-chan models.Resource[string] {
	if _, err := s.Tokens.Token(ctx); err != nil {
		return failNow[string](err)
	}
	return run(ctx, func(ctx context.Context) (string, error) {
		token, user, err := currentUser(ctx, s.Tokens, s.Users, s.Logger)
		if err != nil {
			return "", err
		}
		if err := s.Users.DeleteAccount(ctx, token); err != nil {
			return "", err
		}
		if err := s.Tokens.Clear(ctx); err != nil {
			s.Logger.Error().Err(err).Msg("failed to clear token of deleted account")
		}
		s.Logger.Info().Str("user_id", user.ID).Msg("account deleted")
		return user.ID, nil
	})
}

func (s *UserService) GetUser(ctx context.Context, id string) <-chan models.Resource[models.User] {
	return run(ctx, func(ctx context.Context) (models.User, error) {
		return s.Users.GetUser(ctx, id)
	})
}

func (s *UserService) GetUsers(ctx context.Context) <-chan models.Resource[[]models.User] {
	return run(ctx, func(ctx context.Context) ([]models.User, error) {
		return s.Users.GetUsers(ctx)
	})
}
