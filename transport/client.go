// Package transport is the HTTP client shared by every networked service. It attaches
// the bearer token, fails fast when offline, logs latency and refreshes the session
// once when a request comes back 401.
package transport

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jrsteele09/wellbe/internal/config"
	"github.com/jrsteele09/wellbe/tokenstore"
)

// Config is the subset of application configuration the client needs.
type Config interface {
	GetBaseURL() string
	GetRequestTimeout() time.Duration
	GetRateLimit() (float64, int)
	GetEndpoints() config.Endpoints
}

type Client struct {
	baseURL     string
	refreshPath string
	http        *http.Client
	creds       *tokenstore.Credentials
}

type options struct {
	base         http.RoundTripper
	connectivity ConnectivityChecker
	metrics      *Metrics
	extra        []Middleware
}

type Option func(*options)

// WithBaseTransport replaces http.DefaultTransport as the innermost round tripper.
func WithBaseTransport(rt http.RoundTripper) Option {
	return func(o *options) { o.base = rt }
}

func WithConnectivity(c ConnectivityChecker) Option {
	return func(o *options) { o.connectivity = c }
}

func WithMetrics(m *Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// WithMiddleware appends middleware after the built-in chain.
func WithMiddleware(mw ...Middleware) Option {
	return func(o *options) { o.extra = append(o.extra, mw...) }
}

func New(cfg Config, creds *tokenstore.Credentials, opts ...Option) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("[transport.New] config is required")
	}
	if creds == nil {
		return nil, fmt.Errorf("[transport.New] credentials are required")
	}
	o := options{base: http.DefaultTransport, connectivity: AlwaysOnline{}}
	for _, opt := range opts {
		opt(&o)
	}

	mw := []Middleware{
		ConnectivityMiddleware(o.connectivity),
		AuthMiddleware(creds),
	}
	if rps, burst := cfg.GetRateLimit(); rps > 0 {
		mw = append(mw, RateLimitMiddleware(rps, burst))
	}
	mw = append(mw, LoggingMiddleware())
	if o.metrics != nil {
		mw = append(mw, o.metrics.Middleware())
	}
	mw = append(mw, o.extra...)

	return &Client{
		baseURL:     strings.TrimRight(cfg.GetBaseURL(), "/"),
		refreshPath: cfg.GetEndpoints().Auth.Refresh,
		http: &http.Client{
			Timeout:   cfg.GetRequestTimeout(),
			Transport: ChainMiddleware(o.base, mw...),
		},
		creds: creds,
	}, nil
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) Credentials() *tokenstore.Credentials {
	return c.creds
}

// LoadAuthToken hydrates the in-process token from the token store.
func (c *Client) LoadAuthToken(ctx context.Context) error {
	if _, err := c.creds.LoadAccessToken(ctx); err != nil {
		log.Err(err).Msg("Failed to load auth token")
		return err
	}
	return nil
}

// SetAuthToken persists token and uses it for subsequent requests.
func (c *Client) SetAuthToken(ctx context.Context, token string) error {
	if err := c.creds.SetAccessToken(ctx, token); err != nil {
		log.Err(err).Msg("Failed to save auth token")
		return err
	}
	return nil
}

// ClearAuthToken removes the access token from memory and the store.
func (c *Client) ClearAuthToken(ctx context.Context) error {
	if err := c.creds.ClearAccessToken(ctx); err != nil {
		log.Err(err).Msg("Failed to clear auth token")
		return err
	}
	return nil
}
