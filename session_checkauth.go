package panelauth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hostpanel/panelauth/jwt"
	"github.com/hostpanel/panelauth/tokenstore"
)

// CheckAuth hydrates the session from a previously persisted token. It is
// intended to run once at process startup.
//
// With no persisted token it resolves immediately to unauthenticated and
// makes no network call. With a token it asks the panel who the token
// belongs to; a rejection (expired token, revoked token, or any transport
// failure) discards the persisted token and resolves to unauthenticated
// without surfacing an error — failure here means "please log in", not
// "something broke". Only [ErrSuperseded] is ever returned.
func (s *Session) CheckAuth(ctx context.Context) error {
	if s == nil || s.api == nil {
		return ErrSessionNotReady
	}

	g := s.begin()
	attempt := uuid.NewString()

	token, err := s.tokens.Load(ctx)
	if err != nil {
		if !errors.Is(err, tokenstore.ErrNotFound) {
			// An unreadable store and an absent token both mean the same
			// thing at startup: nothing to restore.
			s.log.Debug().
				Str("attempt_id", attempt).
				Err(err).
				Msg("token store unreadable at startup")
		}
		return s.resolveUnchecked(g, MetricCheckAuthSkipped)
	}

	if s.config.CheckAuth.PreflightExpiry && jwt.ExpiredAt(token, time.Now()) {
		s.log.Debug().
			Str("attempt_id", attempt).
			Msg("persisted token expired locally; discarding without round trip")
		return s.downgrade(ctx, g, attempt, MetricCheckAuthSkipped)
	}

	user, err := s.api.Me(ctx, token)
	if err != nil {
		s.log.Debug().
			Str("attempt_id", attempt).
			Err(err).
			Msg("persisted token rejected; downgrading to unauthenticated")
		return s.downgrade(ctx, g, attempt, MetricCheckAuthRejected)
	}

	s.mu.Lock()
	if !s.current(g) {
		s.checked = true
		s.mu.Unlock()
		s.metrics.Inc(MetricStaleDiscarded)
		return ErrSuperseded
	}
	s.pending = 0
	s.checked = true
	s.user = user
	s.token = token
	s.lastErr = ""
	s.mu.Unlock()

	s.metrics.Inc(MetricCheckAuthHydrated)
	s.log.Info().
		Str("attempt_id", attempt).
		Str("user_id", user.ID).
		Msg("session restored from persisted token")
	return nil
}

// resolveUnchecked finishes a startup check that found nothing to restore.
// The checked flag is set even for a superseded resolution so the guard
// never reports Pending after the check has actually run.
func (s *Session) resolveUnchecked(g uint64, id MetricID) error {
	s.mu.Lock()
	if !s.current(g) {
		s.checked = true
		s.mu.Unlock()
		s.metrics.Inc(MetricStaleDiscarded)
		return ErrSuperseded
	}
	s.pending = 0
	s.checked = true
	s.user = nil
	s.token = ""
	s.mu.Unlock()

	s.metrics.Inc(id)
	return nil
}

// downgrade resolves a startup check whose token proved stale. The persisted
// token is discarded only when the resolution was accepted: a superseded
// check must not clear a token a newer login just persisted.
func (s *Session) downgrade(ctx context.Context, g uint64, attempt string, id MetricID) error {
	if err := s.resolveUnchecked(g, id); err != nil {
		return err
	}
	if err := s.tokens.Clear(ctx); err != nil {
		s.log.Warn().
			Str("attempt_id", attempt).
			Err(err).
			Msg("failed to discard persisted token")
	}
	return nil
}

// Logout clears the credential and user record. It always succeeds locally
// and never contacts the panel; the returned error reports only a persisted
// store that could not be cleared, after the in-memory session is already
// gone. Logout supersedes any in-flight login, registration, or startup
// check.
func (s *Session) Logout(ctx context.Context) error {
	if s == nil {
		return ErrSessionNotReady
	}

	// Bump the generation first: anything still in flight is now stale.
	s.gen.Add(1)

	s.mu.Lock()
	s.pending = 0
	s.user = nil
	s.token = ""
	s.lastErr = ""
	s.mu.Unlock()

	s.metrics.Inc(MetricLogout)
	s.log.Info().Msg("logged out")

	if err := s.tokens.Clear(ctx); err != nil {
		return fmt.Errorf("clear persisted token: %w", err)
	}
	return nil
}
