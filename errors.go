package panelauth

import "errors"

var (
	// ErrInvalidCredentials is returned by Login when the panel API rejects
	// the email/password pair.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrRegistrationRejected is returned by Register when the panel API
	// rejects the registration payload.
	ErrRegistrationRejected = errors.New("registration rejected")
	// ErrEmailTaken is returned by Register when the email is already in use.
	ErrEmailTaken = errors.New("email already registered")
	// ErrAPIUnavailable wraps transport-level failures reaching the panel API.
	ErrAPIUnavailable = errors.New("panel api unavailable")
	// ErrTokenRejected is returned by AuthAPI.Me when the server refuses the
	// presented token. CheckAuth treats it as "please log in", never as a
	// user-visible failure.
	ErrTokenRejected = errors.New("token rejected")
	// ErrNotAuthenticated is returned by Session.AuthorizedToken when a call
	// needing a live session finds none.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrSuperseded is returned to a caller whose login, registration, or
	// startup check resolved after a newer operation was issued; its outcome
	// was discarded and the newer operation's outcome is authoritative.
	ErrSuperseded = errors.New("operation superseded by a newer attempt")
	// ErrSessionNotReady is returned when a Session method is called on a
	// nil or unbuilt engine.
	ErrSessionNotReady = errors.New("session not initialized")
)
