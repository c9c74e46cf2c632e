// Package devserver serves the wellbe API over the in-memory catalogue and user
// directory. Live-mode clients can run against it locally.
package devserver

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"

	"github.com/jrsteele09/wellbe/internal/config"
	"github.com/jrsteele09/wellbe/internal/delay"
	"github.com/jrsteele09/wellbe/nutrition"
	"github.com/jrsteele09/wellbe/session"
	"github.com/jrsteele09/wellbe/token"
	refreshrepofake "github.com/jrsteele09/wellbe/token/refresh/repofake"
	"github.com/jrsteele09/wellbe/users"
	fakeuserrepo "github.com/jrsteele09/wellbe/users/repofake"
	"github.com/jrsteele09/wellbe/workout"
)

type Server struct {
	env      string
	origins  config.AllowedOrigins
	router   *mux.Router
	api      *mux.Router
	routes   []string
	registry *prometheus.Registry
	metrics  serverMetrics

	tokens    *token.Service
	auth      *session.MockAuthenticator
	nutrition *nutrition.Service
	workout   *workout.Service
}

type options struct {
	userRepo users.UserRepo
	intn     func(n int) int
}

type Option func(*options)

// WithUserRepo replaces the development user directory.
func WithUserRepo(repo users.UserRepo) Option {
	return func(o *options) { o.userRepo = repo }
}

// WithRandom fixes the random source used for generated workouts.
func WithRandom(intn func(n int) int) Option {
	return func(o *options) { o.intn = intn }
}

func New(cfg config.Config, opts ...Option) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("[devserver.New] config is required")
	}
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.userRepo == nil {
		o.userRepo = fakeuserrepo.NewFakeUserRepo(users.MockUsers()...)
	}

	tokens, err := token.NewService(cfg, o.userRepo, refreshrepofake.NewFakeRefreshTokenRepo())
	if err != nil {
		return nil, fmt.Errorf("[devserver.New] token service: %w", err)
	}
	latency := delay.Simulator{Scale: cfg.GetMockLatencyScale()}
	auth, err := session.NewMockAuthenticator(o.userRepo, tokens, latency)
	if err != nil {
		return nil, fmt.Errorf("[devserver.New] authenticator: %w", err)
	}

	workoutOpts := []workout.MockOption{workout.WithUserResolver(requestUserID)}
	if o.intn != nil {
		workoutOpts = append(workoutOpts, workout.WithRandom(o.intn))
	}
	nutritionSvc, err := nutrition.NewService(nutrition.NewMockSource(latency, nutrition.WithUserResolver(requestUserID)))
	if err != nil {
		return nil, err
	}
	workoutSvc, err := workout.NewService(workout.NewMockSource(latency, workoutOpts...))
	if err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())

	s := &Server{
		env:       cfg.GetEnv(),
		origins:   cfg.GetAllowedOrigins(),
		router:    mux.NewRouter(),
		registry:  registry,
		metrics:   newServerMetrics(registry),
		tokens:    tokens,
		auth:      auth,
		nutrition: nutritionSvc,
		workout:   workoutSvc,
	}

	s.api = s.router
	if prefix := apiPrefix(cfg.GetBaseURL()); prefix != "" {
		s.api = s.router.PathPrefix(prefix).Subrouter()
	}
	s.initRoutes(cfg.GetEndpoints())
	s.logRoutes()
	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if s.cors(w, r) {
		return
	}
	s.router.ServeHTTP(w, r)
}

// Authenticator exposes the mock directory, e.g. to read pending reset tokens.
func (s *Server) Authenticator() *session.MockAuthenticator {
	return s.auth
}

func (s *Server) Registry() *prometheus.Registry {
	return s.registry
}

func (s *Server) handle(r *mux.Router, method, path string, h http.HandlerFunc, mw ...Middleware) {
	base := []Middleware{s.LoggingMiddleware, s.RecoverMiddleware, s.MetricsMiddleware}
	route := r.HandleFunc(path, ChainMiddleware(h, append(base, mw...)...)).Methods(method)

	full := path
	if tmpl, err := route.GetPathTemplate(); err == nil {
		full = tmpl
	}
	s.routes = append(s.routes, method+" "+full)
}

func (s *Server) logRoutes() {
	if s.env != config.EnvDev {
		return
	}
	for _, route := range s.routes {
		method, path, _ := strings.Cut(route, " ")
		log.Info().Msgf("[%-16s] %s", colourMethod(method), path)
	}
}

// apiPrefix is the path component of the API base URL, without a trailing slash.
func apiPrefix(baseURL string) string {
	u, err := url.Parse(baseURL)
	if err != nil {
		return ""
	}
	return strings.TrimRight(u.Path, "/")
}

func requestUserID(ctx context.Context) string {
	if u, ok := UserFromContext(ctx); ok {
		return u.ID
	}
	return users.MockUsers()[0].ID
}
