// Command panelauth-probe exercises a panel deployment end to end: it
// restores any persisted session, optionally logs in with supplied
// credentials, fetches the account profile, and logs out, reporting the
// timing of each step.
//
// Configuration is read from panelauth-probe.yaml in the working directory
// and from PANELAUTH_* environment variables; flags override both.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	panelauth "github.com/hostpanel/panelauth"
	"github.com/hostpanel/panelauth/metrics/export/prometheus"
	"github.com/hostpanel/panelauth/panelapi"
	"github.com/hostpanel/panelauth/tokenstore"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "panelauth-probe: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	flags := pflag.NewFlagSet("panelauth-probe", pflag.ExitOnError)
	flags.String("base-url", "", "panel API base URL")
	flags.String("email", "", "login email; with --password, attempts a fresh login")
	flags.String("password", "", "login password")
	flags.Bool("keep-session", false, "skip the final logout so the token stays persisted")
	flags.Bool("verbose", false, "log every panel request")
	if err := flags.Parse(os.Args[1:]); err != nil {
		return err
	}

	v := viper.New()
	v.SetConfigName("panelauth-probe")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("PANELAUTH")
	v.AutomaticEnv()

	v.SetDefault("api.timeout", "10s")
	v.SetDefault("token.file", ".panelauth-token.json")
	v.SetDefault("checkauth.preflight_expiry", true)

	if err := v.BindPFlag("api.base_url", flags.Lookup("base-url")); err != nil {
		return err
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("load config: %w", err)
		}
	}

	verbose, _ := flags.GetBool("verbose")
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().Logger()

	baseURL := v.GetString("api.base_url")
	if baseURL == "" {
		return errors.New("api.base_url is required (flag --base-url, config, or PANELAUTH_API_BASE_URL)")
	}

	client, err := panelapi.New(panelapi.Config{
		BaseURL: baseURL,
		Timeout: v.GetDuration("api.timeout"),
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	store, closeStore, err := buildTokenStore(v, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	session, err := panelauth.New().
		WithAPI(client).
		WithTokenStore(store).
		WithLogger(logger).
		WithPreflightExpiry(v.GetBool("checkauth.preflight_expiry")).
		Build()
	if err != nil {
		return err
	}

	ctx := context.Background()

	step(logger, "check_auth", func() error { return session.CheckAuth(ctx) })
	if user := session.CurrentUser(); user != nil {
		logger.Info().Str("email", user.Email).Str("role", string(user.Role)).Msg("session restored from persisted token")
	} else {
		logger.Info().Str("reason", session.LastError()).Msg("no session restored")
	}

	email, _ := flags.GetString("email")
	password, _ := flags.GetString("password")
	if !session.IsAuthenticated() && email != "" && password != "" {
		if err := step(logger, "login", func() error { return session.Login(ctx, email, password) }); err != nil {
			return fmt.Errorf("login: %s", session.LastError())
		}
	}

	if session.IsAuthenticated() {
		if err := step(logger, "me", func() error {
			token, err := session.AuthorizedToken()
			if err != nil {
				return err
			}
			_, err = client.Me(ctx, token)
			return err
		}); err != nil {
			return fmt.Errorf("me: %w", err)
		}

		if keep, _ := flags.GetBool("keep-session"); !keep {
			if err := step(logger, "logout", func() error { return session.Logout(ctx) }); err != nil {
				return fmt.Errorf("logout: %w", err)
			}
		}
	}

	fmt.Println(prometheus.NewExporter(session).Render())
	return nil
}

// step runs fn, logging its outcome and elapsed time under name.
func step(logger zerolog.Logger, name string, fn func() error) error {
	started := time.Now()
	err := fn()
	event := logger.Info()
	if err != nil {
		event = logger.Warn().Err(err)
	}
	event.Str("step", name).Dur("elapsed", time.Since(started)).Msg("probe step")
	return err
}

// buildTokenStore picks Redis when token.redis_addr is configured and falls
// back to the file store otherwise.
func buildTokenStore(v *viper.Viper, logger zerolog.Logger) (tokenstore.Store, func(), error) {
	if addr := v.GetString("token.redis_addr"); addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: v.GetString("token.redis_password"),
			DB:       v.GetInt("token.redis_db"),
		})
		logger.Debug().Str("addr", addr).Msg("using redis token store")

		var opts []tokenstore.RedisOption
		if key := v.GetString("token.redis_key"); key != "" {
			opts = append(opts, tokenstore.WithRedisKey(key))
		}
		store, err := tokenstore.NewRedis(client, opts...)
		if err != nil {
			_ = client.Close()
			return nil, nil, err
		}
		return store, func() { _ = client.Close() }, nil
	}

	path := v.GetString("token.file")
	logger.Debug().Str("path", path).Msg("using file token store")
	store, err := tokenstore.NewFile(path)
	if err != nil {
		return nil, nil, err
	}
	return store, func() {}, nil
}
