package panelauth

import "context"

// AuthPayload is the response of the panel's login and register endpoints:
// an access token plus the account it belongs to.
type AuthPayload struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        User   `json:"user"`
}

// AuthAPI is the slice of the remote panel API the session core depends on.
// The production implementation is [panelapi.Client]; tests substitute fakes.
//
// Implementations must be safe for concurrent use and must map server
// rejections to the sentinel errors in this package (ErrInvalidCredentials,
// ErrEmailTaken, ErrRegistrationRejected, ErrTokenRejected) and transport
// failures to ErrAPIUnavailable.
type AuthAPI interface {
	// Login exchanges credentials for a token and user record.
	Login(ctx context.Context, email, password string) (*AuthPayload, error)
	// Register creates an account and signs it in immediately.
	Register(ctx context.Context, req RegisterRequest) (*AuthPayload, error)
	// Me resolves the account a previously issued token belongs to.
	Me(ctx context.Context, token string) (*User, error)
}
