package jwt

import (
	"errors"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
)

// ErrNotAJWT is returned by Inspect when the token does not parse as a JWT.
var ErrNotAJWT = errors.New("token is not a jwt")

// TokenInfo carries the registered claims extracted from a token. Zero time
// values mean the claim was absent.
type TokenInfo struct {
	Subject   string
	ExpiresAt time.Time
	IssuedAt  time.Time
}

// Inspect parses token's registered claims without verifying its signature.
// The result is informational only and must never be treated as proof of
// validity.
func Inspect(token string) (*TokenInfo, error) {
	claims := &gojwt.RegisteredClaims{}
	parser := gojwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, ErrNotAJWT
	}

	info := &TokenInfo{Subject: claims.Subject}
	if claims.ExpiresAt != nil {
		info.ExpiresAt = claims.ExpiresAt.Time
	}
	if claims.IssuedAt != nil {
		info.IssuedAt = claims.IssuedAt.Time
	}
	return info, nil
}

// ExpiredAt reports whether token is a parseable JWT whose expiry is before
// now. Non-JWT tokens and tokens without an exp claim report false: absence
// of evidence is not staleness.
func ExpiredAt(token string, now time.Time) bool {
	info, err := Inspect(token)
	if err != nil {
		return false
	}
	if info.ExpiresAt.IsZero() {
		return false
	}
	return now.After(info.ExpiresAt)
}
