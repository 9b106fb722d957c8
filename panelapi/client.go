package panelapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	panelauth "github.com/hostpanel/panelauth"
)

// Config carries the client's construction parameters. HTTPClient overrides
// the default client built from Timeout; tests use it to point at stubs.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	UserAgent  string
	Logger     zerolog.Logger
	HTTPClient *http.Client
}

// Client talks to the remote panel API. It is stateless and safe for
// concurrent use.
type Client struct {
	baseURL   string
	http      *http.Client
	log       zerolog.Logger
	userAgent string
}

// New creates a panel API client.
func New(cfg Config) (*Client, error) {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		return nil, errors.New("panelapi: base URL required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = "panelauth/1.0"
	}

	return &Client{
		baseURL:   base,
		http:      httpClient,
		log:       cfg.Logger.With().Str("component", "panelapi").Logger(),
		userAgent: userAgent,
	}, nil
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	FullName     string `json:"full_name"`
	ReferralCode string `json:"referral_code,omitempty"`
}

// errorBody is the panel's error envelope.
type errorBody struct {
	Detail string `json:"detail"`
}

// Login implements [panelauth.AuthAPI].
func (c *Client) Login(ctx context.Context, email, password string) (*panelauth.AuthPayload, error) {
	var payload panelauth.AuthPayload
	err := c.call(ctx, "", http.MethodPost, "/auth/login", loginRequest{Email: email, Password: password}, &payload, mapLoginStatus)
	if err != nil {
		return nil, err
	}
	return &payload, nil
}

// Register implements [panelauth.AuthAPI].
func (c *Client) Register(ctx context.Context, req panelauth.RegisterRequest) (*panelauth.AuthPayload, error) {
	body := registerRequest{
		Email:        req.Email,
		Password:     req.Password,
		FullName:     req.FullName,
		ReferralCode: req.ReferralCode,
	}
	var payload panelauth.AuthPayload
	err := c.call(ctx, "", http.MethodPost, "/auth/register", body, &payload, mapRegisterStatus)
	if err != nil {
		return nil, err
	}
	return &payload, nil
}

// Me implements [panelauth.AuthAPI].
func (c *Client) Me(ctx context.Context, token string) (*panelauth.User, error) {
	var user panelauth.User
	err := c.call(ctx, token, http.MethodGet, "/auth/me", nil, &user, mapAuthorizedStatus)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Do performs an arbitrary authorized call against the panel API and decodes
// the JSON response into out (which may be nil for fire-and-forget calls).
// Dashboard screens use it for endpoints this package has no typed wrapper
// for.
func (c *Client) Do(ctx context.Context, token, method, path string, body, out any) error {
	return c.call(ctx, token, method, path, body, out, mapAuthorizedStatus)
}

// statusMapper converts a non-2xx response into a sentinel error.
type statusMapper func(status int, detail string) error

func (c *Client) call(ctx context.Context, token, method, path string, body, out any, mapStatus statusMapper) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("panelapi: encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("panelapi: build request: %w", err)
	}

	requestID := requestIDFromContext(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	req.Header.Set("X-Request-ID", requestID)
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug().
			Str("request_id", requestID).
			Str("method", method).
			Str("path", path).
			Err(err).
			Msg("panel request failed in transport")
		return fmt.Errorf("%w: %v", panelauth.ErrAPIUnavailable, err)
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("request_id", requestID).
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(started)).
		Msg("panel request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return mapStatus(resp.StatusCode, readDetail(resp.Body))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("panelapi: decode response: %w", err)
	}
	return nil
}

// readDetail extracts the panel's error detail, bounded to keep a hostile
// response from ballooning log lines.
func readDetail(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil {
		return ""
	}
	var envelope errorBody
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return ""
	}
	return envelope.Detail
}

func mapLoginStatus(status int, detail string) error {
	switch status {
	case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden:
		return wrapDetail(panelauth.ErrInvalidCredentials, detail)
	default:
		return fmt.Errorf("panelapi: login: unexpected status %d", status)
	}
}

func mapRegisterStatus(status int, detail string) error {
	switch status {
	case http.StatusConflict:
		return wrapDetail(panelauth.ErrEmailTaken, detail)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return wrapDetail(panelauth.ErrRegistrationRejected, detail)
	default:
		return fmt.Errorf("panelapi: register: unexpected status %d", status)
	}
}

func mapAuthorizedStatus(status int, detail string) error {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return wrapDetail(panelauth.ErrTokenRejected, detail)
	default:
		return fmt.Errorf("panelapi: unexpected status %d", status)
	}
}

func wrapDetail(sentinel error, detail string) error {
	if detail == "" {
		return sentinel
	}
	return fmt.Errorf("%w: %s", sentinel, detail)
}
