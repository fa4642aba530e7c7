package main

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"clicktoeat/internal/models"
	"clicktoeat/internal/services"
	"clicktoeat/internal/session"
)

const (
	sessionRefreshInterval = time.Minute
	sessionRefreshWindow   = 5 * time.Minute
	sessionRefreshTimeout  = 30 * time.Second
)

// startSessionRefresher renews the stored token shortly before its expiry.
// Opaque tokens carry no expiry and are left alone.
func startSessionRefresher(ctx context.Context, tokens *session.Store, users *services.UserService, logger zerolog.Logger) {
	if tokens == nil || users == nil {
		return
	}
	logger = logger.With().Str("component", "session_refresher").Logger()

	go func() {
		ticker := time.NewTicker(sessionRefreshInterval)
		defer ticker.Stop()

		runOnce := func() {
			exp, ok := tokens.ExpiresAt()
			if !ok || time.Until(exp) > sessionRefreshWindow {
				return
			}
			logger := logger.With().Str("subject", tokens.Subject()).Logger()
			runCtx, cancel := context.WithTimeout(ctx, sessionRefreshTimeout)
			_, err := models.Await(users.Refresh(runCtx))
			cancel()
			if err != nil {
				logger.Warn().Err(err).Time("expires_at", exp).Msg("failed to refresh session")
				return
			}
			logger.Info().Time("expires_at", exp).Msg("session refreshed")
		}

		runOnce()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				runOnce()
			}
		}
	}()
}
