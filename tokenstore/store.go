package tokenstore

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Load when no token is persisted. Callers treat
// it as "logged out", never as a failure.
var ErrNotFound = errors.New("no persisted token")

// Store is the persisted-token collaborator of the panelauth Session.
// Implementations must be safe for concurrent use.
type Store interface {
	// Load returns the persisted token, or ErrNotFound when absent.
	Load(ctx context.Context) (string, error)
	// Save persists token, replacing any previous value.
	Save(ctx context.Context, token string) error
	// Clear removes the persisted token. Clearing an empty store is not an
	// error; Clear must be idempotent.
	Clear(ctx context.Context) error
}
