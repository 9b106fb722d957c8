package guard

import (
	"context"
	"testing"

	panelauth "github.com/hostpanel/panelauth"
	"github.com/hostpanel/panelauth/tokenstore"
)

type roleAPI struct {
	role panelauth.Role
}

func (a *roleAPI) payload() *panelauth.AuthPayload {
	return &panelauth.AuthPayload{
		AccessToken: "tok-guard",
		TokenType:   "bearer",
		User: panelauth.User{
			ID:    "u-1",
			Email: "a@b.c",
			Role:  a.role,
		},
	}
}

func (a *roleAPI) Login(context.Context, string, string) (*panelauth.AuthPayload, error) {
	return a.payload(), nil
}

func (a *roleAPI) Register(context.Context, panelauth.RegisterRequest) (*panelauth.AuthPayload, error) {
	return a.payload(), nil
}

func (a *roleAPI) Me(context.Context, string) (*panelauth.User, error) {
	user := a.payload().User
	return &user, nil
}

// newGuardedSession builds a signed-in session with the given role.
func newGuardedSession(t *testing.T, role panelauth.Role) *panelauth.Session {
	t.Helper()

	session, err := panelauth.New().
		WithAPI(&roleAPI{role: role}).
		WithTokenStore(tokenstore.NewMemory()).
		Build()
	if err != nil {
		t.Fatalf("build session: %v", err)
	}
	if err := session.Login(context.Background(), "a@b.c", "pw"); err != nil {
		t.Fatalf("login: %v", err)
	}
	return session
}
