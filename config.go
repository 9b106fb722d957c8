package panelauth

import (
	"errors"
	"net/url"
	"strings"
	"time"
)

// Config carries the tunable settings of the session core. Construct with
// [DefaultConfig], adjust, and pass to [Builder.WithConfig]; the builder
// validates it once during Build and treats it as immutable afterwards.
type Config struct {
	API       APIConfig
	CheckAuth CheckAuthConfig
	Metrics   MetricsConfig
}

/*
====================================
API CONFIG
====================================
*/

// APIConfig describes how to reach the remote panel API. It is consumed by
// callers constructing a [panelapi.Client]; the session core itself only
// talks to the [AuthAPI] interface.
type APIConfig struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

/*
====================================
CHECK AUTH CONFIG
====================================
*/

// CheckAuthConfig controls the one-shot startup hydration.
type CheckAuthConfig struct {
	// PreflightExpiry discards a persisted token without a network round
	// trip when it is a parseable JWT already past its expiry. Tokens that
	// are not JWTs are always sent to the server for validation.
	PreflightExpiry bool
}

/*
====================================
METRICS CONFIG
====================================
*/

// MetricsConfig controls the in-process counters.
type MetricsConfig struct {
	Enabled bool
}

// DefaultConfig returns the settings used by the builder when no config is
// supplied: a 10 second API timeout, preflight expiry checks off, metrics on.
func DefaultConfig() Config {
	return Config{
		API: APIConfig{
			Timeout:   10 * time.Second,
			UserAgent: "panelauth/1.0",
		},
		CheckAuth: CheckAuthConfig{
			PreflightExpiry: false,
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
	}
}

// Validate reports the first configuration problem found, or nil.
func (c *Config) Validate() error {
	if c.API.Timeout <= 0 {
		return errors.New("API.Timeout must be positive")
	}
	if c.API.Timeout > 5*time.Minute {
		return errors.New("API.Timeout exceeds 5 minutes")
	}
	if c.API.BaseURL != "" {
		u, err := url.Parse(c.API.BaseURL)
		if err != nil {
			return errors.New("API.BaseURL is not a valid URL")
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return errors.New("API.BaseURL must use http or https")
		}
	}
	if strings.TrimSpace(c.API.UserAgent) == "" {
		return errors.New("API.UserAgent must not be empty")
	}
	return nil
}

func cloneConfig(c Config) Config {
	// All fields are value types; a shallow copy is a deep copy.
	return c
}
