package panelauth

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/hostpanel/panelauth/tokenstore"
)

// fakeAPI is an in-memory AuthAPI with per-call overrides and call counting.
type fakeAPI struct {
	mu            sync.Mutex
	loginFn       func(ctx context.Context, email, password string) (*AuthPayload, error)
	registerFn    func(ctx context.Context, req RegisterRequest) (*AuthPayload, error)
	meFn          func(ctx context.Context, token string) (*User, error)
	loginCalls    int
	registerCalls int
	meCalls       int
}

func (f *fakeAPI) Login(ctx context.Context, email, password string) (*AuthPayload, error) {
	f.mu.Lock()
	f.loginCalls++
	fn := f.loginFn
	f.mu.Unlock()
	if fn == nil {
		return nil, ErrInvalidCredentials
	}
	return fn(ctx, email, password)
}

func (f *fakeAPI) Register(ctx context.Context, req RegisterRequest) (*AuthPayload, error) {
	f.mu.Lock()
	f.registerCalls++
	fn := f.registerFn
	f.mu.Unlock()
	if fn == nil {
		return nil, ErrRegistrationRejected
	}
	return fn(ctx, req)
}

func (f *fakeAPI) Me(ctx context.Context, token string) (*User, error) {
	f.mu.Lock()
	f.meCalls++
	fn := f.meFn
	f.mu.Unlock()
	if fn == nil {
		return nil, ErrTokenRejected
	}
	return fn(ctx, token)
}

func (f *fakeAPI) calls() (login, register, me int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loginCalls, f.registerCalls, f.meCalls
}

func testUser(role Role) User {
	return User{
		ID:        "u-1",
		Email:     "alice@example.com",
		FullName:  "Alice Winters",
		Role:      role,
		Status:    AccountActive,
		CreatedAt: time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC),
	}
}

func payloadFor(token string, role Role) *AuthPayload {
	return &AuthPayload{
		AccessToken: token,
		TokenType:   "bearer",
		User:        testUser(role),
	}
}

// acceptingAPI returns a fakeAPI that accepts every login and registration
// and recognizes the issued token.
func acceptingAPI(token string, role Role) *fakeAPI {
	return &fakeAPI{
		loginFn: func(context.Context, string, string) (*AuthPayload, error) {
			return payloadFor(token, role), nil
		},
		registerFn: func(_ context.Context, req RegisterRequest) (*AuthPayload, error) {
			payload := payloadFor(token, role)
			payload.User.Email = req.Email
			payload.User.FullName = req.FullName
			return payload, nil
		},
		meFn: func(_ context.Context, got string) (*User, error) {
			if got != token {
				return nil, ErrTokenRejected
			}
			u := testUser(role)
			return &u, nil
		},
	}
}

func newTestSession(t *testing.T, api AuthAPI, store tokenstore.Store) *Session {
	t.Helper()

	if store == nil {
		store = tokenstore.NewMemory()
	}
	session, err := New().
		WithAPI(api).
		WithTokenStore(store).
		Build()
	if err != nil {
		t.Fatalf("build session: %v", err)
	}
	return session
}

// requirePaired fails the test when the snapshot violates the token/user
// pairing invariant.
func requirePaired(t *testing.T, snap Snapshot) {
	t.Helper()

	hasToken := snap.Token != ""
	hasUser := snap.User != nil
	if hasToken != hasUser {
		t.Fatalf("token/user pairing violated: token=%q user=%v", snap.Token, snap.User)
	}
	if snap.Authenticated != (hasToken && hasUser) {
		t.Fatalf("Authenticated=%v disagrees with token=%q user=%v", snap.Authenticated, snap.Token, snap.User)
	}
}
