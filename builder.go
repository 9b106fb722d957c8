package panelauth

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/hostpanel/panelauth/tokenstore"
)

// Builder assembles a [Session]. A builder is single-use: Build returns an
// error when called twice.
type Builder struct {
	config Config
	api    AuthAPI
	tokens tokenstore.Store
	log    zerolog.Logger
	logSet bool

	built bool
}

// New starts a builder preloaded with [DefaultConfig].
func New() *Builder {
	return &Builder{
		config: DefaultConfig(),
	}
}

// WithConfig replaces the builder's configuration.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cloneConfig(cfg)
	return b
}

// WithAPI sets the remote panel API client. Required.
func (b *Builder) WithAPI(api AuthAPI) *Builder {
	b.api = api
	return b
}

// WithTokenStore sets the persisted-token store. Required; use
// [tokenstore.NewMemory] for a session that should not survive restarts.
func (b *Builder) WithTokenStore(store tokenstore.Store) *Builder {
	b.tokens = store
	return b
}

// WithLogger sets the structured logger. Defaults to a no-op logger.
func (b *Builder) WithLogger(log zerolog.Logger) *Builder {
	b.log = log
	b.logSet = true
	return b
}

// WithMetricsEnabled toggles the in-process counters.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// WithPreflightExpiry toggles the local JWT expiry check during CheckAuth.
func (b *Builder) WithPreflightExpiry(enabled bool) *Builder {
	b.config.CheckAuth.PreflightExpiry = enabled
	return b
}

// Build validates the configuration and returns a ready [Session].
func (b *Builder) Build() (*Session, error) {
	if b.built {
		return nil, errors.New("builder already used")
	}

	cfg := cloneConfig(b.config)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if b.api == nil {
		return nil, errors.New("panel api client required")
	}
	if b.tokens == nil {
		return nil, errors.New("token store required")
	}

	log := b.log
	if !b.logSet {
		log = zerolog.Nop()
	}

	session := &Session{
		config:  cfg,
		api:     b.api,
		tokens:  b.tokens,
		metrics: NewMetrics(cfg.Metrics),
		log:     log.With().Str("component", "panelauth").Logger(),
	}

	b.built = true
	return session, nil
}
