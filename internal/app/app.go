// Package app assembles the wellbe client from configuration. The mock or live mode is
// decided once here; switching modes means building a new App.
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"

	"github.com/jrsteele09/wellbe/internal/config"
	"github.com/jrsteele09/wellbe/internal/delay"
	"github.com/jrsteele09/wellbe/nutrition"
	"github.com/jrsteele09/wellbe/session"
	"github.com/jrsteele09/wellbe/token"
	refreshrepofake "github.com/jrsteele09/wellbe/token/refresh/repofake"
	"github.com/jrsteele09/wellbe/tokenstore"
	"github.com/jrsteele09/wellbe/tokenstore/badgerstore"
	"github.com/jrsteele09/wellbe/transport"
	"github.com/jrsteele09/wellbe/users"
	fakeuserrepo "github.com/jrsteele09/wellbe/users/repofake"
	"github.com/jrsteele09/wellbe/workout"
)

type App struct {
	Config      config.Config
	Registry    *prometheus.Registry
	Credentials *tokenstore.Credentials
	Client      *transport.Client
	Session     *session.Manager
	Nutrition   *nutrition.Service
	Workout     *workout.Service

	closers []io.Closer
}

type options struct {
	store        tokenstore.Store
	connectivity transport.ConnectivityChecker
	transport    []transport.Option
	latency      *delay.Simulator
}

type Option func(*options)

// WithStore uses store instead of opening the configured backend. The App does not
// close it.
func WithStore(store tokenstore.Store) Option {
	return func(o *options) { o.store = store }
}

// WithConnectivity replaces the connectivity probe used in live mode.
func WithConnectivity(c transport.ConnectivityChecker) Option {
	return func(o *options) { o.connectivity = c }
}

// WithTransportOptions passes extra options to the HTTP client.
func WithTransportOptions(opts ...transport.Option) Option {
	return func(o *options) { o.transport = append(o.transport, opts...) }
}

// WithLatency overrides the configured mock latency.
func WithLatency(s delay.Simulator) Option {
	return func(o *options) { o.latency = &s }
}

func New(ctx context.Context, cfg config.Config, opts ...Option) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("[app.New] config is required")
	}
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	a := &App{Config: cfg, Registry: prometheus.NewRegistry()}
	if err := a.build(ctx, o); err != nil {
		_ = a.Close()
		return nil, err
	}
	return a, nil
}

func (a *App) build(ctx context.Context, o options) error {
	cfg := a.Config

	store := o.store
	if store == nil {
		s, err := OpenStore(cfg)
		if err != nil {
			return err
		}
		a.closers = append(a.closers, s)
		store = s
	}
	a.Credentials = tokenstore.NewCredentials(store)

	topts := []transport.Option{transport.WithMetrics(transport.NewMetrics(a.Registry))}
	if !cfg.GetUseMockServices() {
		checker := o.connectivity
		if checker == nil {
			dc, err := transport.NewDialChecker(cfg.GetBaseURL(), cfg.GetRequestTimeout())
			if err != nil {
				return errors.Wrap(err, "[app.New] connectivity checker")
			}
			checker = dc
		}
		topts = append(topts, transport.WithConnectivity(checker))
	}
	client, err := transport.New(cfg, a.Credentials, append(topts, o.transport...)...)
	if err != nil {
		return err
	}
	a.Client = client
	if err := client.LoadAuthToken(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to load auth token")
	}

	latency := delay.Simulator{Scale: cfg.GetMockLatencyScale()}
	if o.latency != nil {
		latency = *o.latency
	}

	var (
		auth          session.Authenticator
		foodSource    nutrition.Source
		workoutSource workout.Source
	)
	if cfg.GetUseMockServices() {
		userRepo := fakeuserrepo.NewFakeUserRepo(users.MockUsers()...)
		tokens, err := token.NewService(cfg, userRepo, refreshrepofake.NewFakeRefreshTokenRepo())
		if err != nil {
			return err
		}
		if auth, err = session.NewMockAuthenticator(userRepo, tokens, latency); err != nil {
			return err
		}
		foodSource = nutrition.NewMockSource(latency, nutrition.WithUserResolver(a.currentUserID))
		workoutSource = workout.NewMockSource(latency, workout.WithUserResolver(a.currentUserID))
	} else {
		endpoints := cfg.GetEndpoints()
		if auth, err = session.NewHTTPAuthenticator(client, endpoints.Auth); err != nil {
			return err
		}
		if foodSource, err = nutrition.NewHTTPSource(client, endpoints.Nutrition); err != nil {
			return err
		}
		if workoutSource, err = workout.NewHTTPSource(client, endpoints.Exercise, endpoints.Workout); err != nil {
			return err
		}
	}

	if a.Session, err = session.NewManager(auth, a.Credentials); err != nil {
		return err
	}
	if a.Nutrition, err = nutrition.NewService(foodSource); err != nil {
		return err
	}
	if a.Workout, err = workout.NewService(workoutSource); err != nil {
		return err
	}

	log.Debug().Bool("mock", cfg.GetUseMockServices()).Str("baseURL", client.BaseURL()).Msg("wellbe client ready")
	return nil
}

// currentUserID owns records created by the mock sources. A session persisted by an
// earlier process counts.
func (a *App) currentUserID(ctx context.Context) string {
	if u, err := a.Credentials.LoadUser(ctx); err == nil && u != nil {
		return u.ID
	}
	return nutrition.MockUserID
}

func (a *App) Close() error {
	var first error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil
	return first
}

// OpenStore opens the configured token store backend.
func OpenStore(cfg config.StorageConfig) (*badgerstore.Store, error) {
	var opts []badgerstore.Option
	if p := cfg.GetStoragePassphrase(); p != "" {
		opts = append(opts, badgerstore.WithPassphrase(p))
	}
	switch cfg.GetStorageBackend() {
	case config.StorageMemory:
		return badgerstore.Open("", append(opts, badgerstore.InMemory())...)
	case config.StorageBadger:
		return badgerstore.Open(cfg.GetStorageDir(), append(opts, badgerstore.WithLogger(log.Logger))...)
	default:
		return nil, fmt.Errorf("[app.OpenStore] unknown storage backend %q", cfg.GetStorageBackend())
	}
}
