package panelauth

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// Login exchanges credentials for an authenticated session.
//
// On success the token is persisted, the user record is installed, and the
// session reports authenticated. On failure the session stays (or becomes)
// unauthenticated, LastError carries a human-readable message, and the error
// propagates to the caller. Login never retries; callers decide whether to
// ask again.
func (s *Session) Login(ctx context.Context, email, password string) error {
	if s == nil || s.api == nil {
		return ErrSessionNotReady
	}

	g := s.begin()
	attempt := uuid.NewString()
	s.log.Debug().
		Str("attempt_id", attempt).
		Str("email", email).
		Msg("login issued")

	payload, err := s.api.Login(ctx, strings.TrimSpace(email), password)
	if err != nil {
		s.log.Debug().
			Str("attempt_id", attempt).
			Err(err).
			Msg("login failed")
		return s.resolveFailure(g, MetricLoginFailure, err)
	}

	if err := s.resolveSuccess(g, MetricLoginSuccess, payload); err != nil {
		return err
	}
	s.persistToken(ctx, g, attempt, payload.AccessToken)
	s.log.Info().
		Str("attempt_id", attempt).
		Str("user_id", payload.User.ID).
		Str("role", string(payload.User.Role)).
		Msg("login succeeded")
	return nil
}

// Register creates a panel account and signs it in immediately; the contract
// is otherwise identical to [Session.Login]. No separate email-verification
// step is modeled.
func (s *Session) Register(ctx context.Context, req RegisterRequest) error {
	if s == nil || s.api == nil {
		return ErrSessionNotReady
	}

	g := s.begin()
	attempt := uuid.NewString()
	req.Email = strings.TrimSpace(req.Email)
	s.log.Debug().
		Str("attempt_id", attempt).
		Str("email", req.Email).
		Msg("registration issued")

	payload, err := s.api.Register(ctx, req)
	if err != nil {
		s.log.Debug().
			Str("attempt_id", attempt).
			Err(err).
			Msg("registration failed")
		return s.resolveFailure(g, MetricRegisterFailure, err)
	}

	if err := s.resolveSuccess(g, MetricRegisterSuccess, payload); err != nil {
		return err
	}
	s.persistToken(ctx, g, attempt, payload.AccessToken)
	s.log.Info().
		Str("attempt_id", attempt).
		Str("user_id", payload.User.ID).
		Msg("registration succeeded")
	return nil
}

// persistToken writes the credential to the token store. Persistence is best
// effort: a write failure costs "remember me across restarts", not the live
// session.
//
// The write itself is subject to the generation rule: a logout or newer
// operation issued while Save is in flight owns the store, so a late write
// is undone rather than left as the last word.
func (s *Session) persistToken(ctx context.Context, g uint64, attempt, token string) {
	if !s.current(g) {
		return
	}
	if err := s.tokens.Save(ctx, token); err != nil {
		s.log.Warn().
			Str("attempt_id", attempt).
			Err(err).
			Msg("token persistence failed; session will not survive restart")
		return
	}
	if s.current(g) {
		return
	}
	if err := s.tokens.Clear(ctx); err != nil {
		s.log.Warn().
			Str("attempt_id", attempt).
			Err(err).
			Msg("failed to discard token persisted after supersession")
	}
}
