package panelauth

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/hostpanel/panelauth/tokenstore"
)

// Session is the single source of truth for "who is currently using the
// panel". All mutation funnels through Login, Register, Logout, and
// CheckAuth; every other method is a read.
//
// Overlapping operations resolve deterministically: each mutating call takes
// a generation number at issue time, and a resolution is applied only while
// its generation is still the latest issued. A caller whose outcome was
// discarded receives [ErrSuperseded].
type Session struct {
	config  Config
	api     AuthAPI
	tokens  tokenstore.Store
	metrics *Metrics
	log     zerolog.Logger

	// gen is the issue counter for mutating operations. Logout bumps it
	// too, so an in-flight login can never resurrect a session the user
	// already left.
	gen atomic.Uint64

	mu      sync.Mutex
	user    *User
	token   string
	pending uint64 // generation currently in flight, 0 when idle
	checked bool
	lastErr string
}

// Snapshot returns an immutable view of the current session state.
func (s *Session) Snapshot() Snapshot {
	if s == nil {
		return Snapshot{}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshotOf(s.user, s.token, s.pending != 0, s.checked, s.lastErr)
}

// CurrentUser returns a copy of the signed-in user, or nil.
func (s *Session) CurrentUser() *User {
	return s.Snapshot().User
}

// Token returns the current credential, or "" when unauthenticated.
func (s *Session) Token() string {
	if s == nil {
		return ""
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// AuthorizedToken returns the credential for an authorized panel call, or
// [ErrNotAuthenticated] when no session is live. Callers making requests on
// the user's behalf should prefer it over [Session.Token] so a signed-out
// state fails before reaching the wire.
func (s *Session) AuthorizedToken() (string, error) {
	if s == nil {
		return "", ErrSessionNotReady
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == "" || s.user == nil {
		return "", ErrNotAuthenticated
	}
	return s.token, nil
}

// IsAuthenticated reports whether a token and user are both present.
func (s *Session) IsAuthenticated() bool {
	return s.Snapshot().Authenticated
}

// IsAdmin reports whether the current user holds at least the admin tier.
// It is false when unauthenticated.
func (s *Session) IsAdmin() bool {
	u := s.CurrentUser()
	return u != nil && u.Role.AtLeast(RoleAdmin)
}

// IsSuperAdmin reports whether the current user holds the super-admin tier.
func (s *Session) IsSuperAdmin() bool {
	u := s.CurrentUser()
	return u != nil && u.Role.AtLeast(RoleSuperAdmin)
}

// LastError returns the human-readable message of the most recent failed
// login or registration, or "".
func (s *Session) LastError() string {
	if s == nil {
		return ""
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Metrics exposes the session's counters for exporters.
func (s *Session) Metrics() *Metrics {
	if s == nil {
		return nil
	}
	return s.metrics
}

// MetricsSnapshot returns a point-in-time copy of all counters.
func (s *Session) MetricsSnapshot() MetricsSnapshot {
	if s == nil {
		return MetricsSnapshot{Counters: map[MetricID]uint64{}}
	}
	return s.metrics.Snapshot()
}

// begin issues a new generation, marks it in flight, and clears the error
// of the previous attempt.
func (s *Session) begin() uint64 {
	g := s.gen.Add(1)
	s.mu.Lock()
	s.pending = g
	s.lastErr = ""
	s.mu.Unlock()
	return g
}

// current reports whether g is still the latest issued generation.
func (s *Session) current(g uint64) bool {
	return s.gen.Load() == g
}

// resolveFailure applies a failed login/register outcome: unauthenticated
// state plus a caller-facing message. Stale outcomes are discarded.
func (s *Session) resolveFailure(g uint64, id MetricID, err error) error {
	s.mu.Lock()
	if !s.current(g) {
		s.mu.Unlock()
		s.metrics.Inc(MetricStaleDiscarded)
		return ErrSuperseded
	}
	s.pending = 0
	s.user = nil
	s.token = ""
	s.lastErr = humanize(err)
	s.mu.Unlock()

	s.metrics.Inc(id)
	return err
}

// resolveSuccess applies an authenticated outcome. Stale outcomes are
// discarded; the superseding operation owns the persisted token by then.
func (s *Session) resolveSuccess(g uint64, id MetricID, payload *AuthPayload) error {
	user := payload.User

	s.mu.Lock()
	if !s.current(g) {
		s.mu.Unlock()
		s.metrics.Inc(MetricStaleDiscarded)
		return ErrSuperseded
	}
	s.pending = 0
	s.user = &user
	s.token = payload.AccessToken
	s.lastErr = ""
	s.mu.Unlock()

	s.metrics.Inc(id)
	return nil
}

// humanize maps API errors to the message shown next to the login form.
func humanize(err error) string {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return "Invalid email or password."
	case errors.Is(err, ErrEmailTaken):
		return "That email is already registered."
	case errors.Is(err, ErrRegistrationRejected):
		return "Registration was rejected. Check the form and try again."
	case errors.Is(err, ErrAPIUnavailable):
		return "Could not reach the panel. Try again shortly."
	default:
		return err.Error()
	}
}
