package panelapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	panelauth "github.com/hostpanel/panelauth"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := New(Config{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client, server
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		t.Fatalf("encode response: %v", err)
	}
}

func TestLoginSendsCredentialsAndParsesPayload(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/auth/login" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Fatal("missing X-Request-ID header")
		}
		if !strings.HasPrefix(r.Header.Get("User-Agent"), "panelauth/") {
			t.Fatalf("user agent = %q", r.Header.Get("User-Agent"))
		}

		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if req.Email != "alice@example.com" || req.Password != "hunter2" {
			t.Fatalf("body = %+v", req)
		}

		writeJSON(t, w, http.StatusOK, map[string]any{
			"access_token": "tok-1",
			"token_type":   "bearer",
			"user": map[string]any{
				"id":    "u-1",
				"email": req.Email,
				"role":  "admin",
			},
		})
	}))

	payload, err := client.Login(context.Background(), "alice@example.com", "hunter2")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if payload.AccessToken != "tok-1" {
		t.Fatalf("token = %q", payload.AccessToken)
	}
	if payload.User.Role != panelauth.RoleAdmin {
		t.Fatalf("role = %q", payload.User.Role)
	}
}

func TestLoginRejectionMapsToInvalidCredentials(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, map[string]string{"detail": "Incorrect email or password"})
	}))

	_, err := client.Login(context.Background(), "alice@example.com", "nope")
	if !errors.Is(err, panelauth.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if !strings.Contains(err.Error(), "Incorrect email or password") {
		t.Fatalf("server detail lost: %v", err)
	}
}

func TestRegisterConflictMapsToEmailTaken(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/register" {
			t.Fatalf("path = %s", r.URL.Path)
		}
		var req struct {
			FullName string `json:"full_name"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if req.FullName != "Bob Ames" {
			t.Fatalf("full_name = %q", req.FullName)
		}
		writeJSON(t, w, http.StatusConflict, map[string]string{"detail": "email exists"})
	}))

	_, err := client.Register(context.Background(), panelauth.RegisterRequest{
		Email:    "bob@example.com",
		Password: "pw",
		FullName: "Bob Ames",
	})
	if !errors.Is(err, panelauth.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestMeAttachesBearerToken(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-1" {
			t.Fatalf("authorization = %q", got)
		}
		writeJSON(t, w, http.StatusOK, map[string]any{"id": "u-1", "email": "a@b.c", "role": "user"})
	}))

	user, err := client.Me(context.Background(), "tok-1")
	if err != nil {
		t.Fatalf("me: %v", err)
	}
	if user.ID != "u-1" {
		t.Fatalf("user id = %q", user.ID)
	}
}

func TestMeRejectionMapsToTokenRejected(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, map[string]string{"detail": "token expired"})
	}))

	_, err := client.Me(context.Background(), "stale")
	if !errors.Is(err, panelauth.ErrTokenRejected) {
		t.Fatalf("expected ErrTokenRejected, got %v", err)
	}
}

func TestTransportFailureMapsToAPIUnavailable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close() // refuse all connections

	client, err := New(Config{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	_, err = client.Login(context.Background(), "a@b.c", "pw")
	if !errors.Is(err, panelauth.ErrAPIUnavailable) {
		t.Fatalf("expected ErrAPIUnavailable, got %v", err)
	}
}

func TestWithRequestIDPropagates(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-Request-ID"); got != "req-fixed" {
			t.Fatalf("request id = %q", got)
		}
		writeJSON(t, w, http.StatusOK, map[string]any{"id": "u-1"})
	}))

	ctx := WithRequestID(context.Background(), "req-fixed")
	if _, err := client.Me(ctx, "tok"); err != nil {
		t.Fatalf("me: %v", err)
	}
}

func TestListServersDecodesInventory(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/servers" {
			t.Fatalf("path = %s", r.URL.Path)
		}
		writeJSON(t, w, http.StatusOK, []map[string]any{
			{"id": "srv-1", "hostname": "web01.example.net", "status": "running"},
			{"id": "srv-2", "hostname": "db01.example.net", "status": "stopped"},
		})
	}))

	servers, err := client.ListServers(context.Background(), "tok-1")
	if err != nil {
		t.Fatalf("list servers: %v", err)
	}
	if len(servers) != 2 || servers[0].Hostname != "web01.example.net" {
		t.Fatalf("servers = %+v", servers)
	}
}

func TestListUsersPagination(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("page"); got != "2" {
			t.Fatalf("page = %q", got)
		}
		if got := r.URL.Query().Get("per_page"); got != "25" {
			t.Fatalf("per_page = %q", got)
		}
		writeJSON(t, w, http.StatusOK, []map[string]any{{"id": "u-9", "email": "z@b.c", "role": "user"}})
	}))

	users, err := client.ListUsers(context.Background(), "tok-1", 2, 25)
	if err != nil {
		t.Fatalf("list users: %v", err)
	}
	if len(users) != 1 || users[0].ID != "u-9" {
		t.Fatalf("users = %+v", users)
	}
}

func TestNewRequiresBaseURL(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Fatal("expected error without base URL")
	}
}
