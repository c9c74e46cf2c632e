package transport

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	wellbeerrors "github.com/jrsteele09/wellbe/internal/errors"
	"github.com/jrsteele09/wellbe/tokenstore"
)

// Middleware wraps a round tripper.
type Middleware func(http.RoundTripper) http.RoundTripper

// RoundTripperFunc adapts a function to http.RoundTripper.
type RoundTripperFunc func(*http.Request) (*http.Response, error)

func (f RoundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

// ChainMiddleware wraps rt so that mw[0] runs first.
func ChainMiddleware(rt http.RoundTripper, mw ...Middleware) http.RoundTripper {
	chained := rt
	// Apply middleware in reverse order
	for i := len(mw) - 1; i >= 0; i-- {
		chained = mw[i](chained)
	}
	return chained
}

// ConnectivityMiddleware fails with ErrNoConnection without sending anything when offline.
func ConnectivityMiddleware(checker ConnectivityChecker) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
			if !checker.Connected(r.Context()) {
				return nil, wellbeerrors.ErrNoConnection
			}
			return next.RoundTrip(r)
		})
	}
}

// AuthMiddleware attaches the current access token, if any.
func AuthMiddleware(creds *tokenstore.Credentials) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
			tok := creds.Token()
			if tok == nil || r.Header.Get("Authorization") != "" {
				return next.RoundTrip(r)
			}
			r = r.Clone(r.Context())
			tok.SetAuthHeader(r)
			return next.RoundTrip(r)
		})
	}
}

// RateLimitMiddleware blocks until the limiter admits the request or the context ends.
func RateLimitMiddleware(rps float64, burst int) Middleware {
	if burst < 1 {
		burst = 1
	}
	limiter := rate.NewLimiter(rate.Limit(rps), burst)
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
			if err := limiter.Wait(r.Context()); err != nil {
				return nil, err
			}
			return next.RoundTrip(r)
		})
	}
}

// LoggingMiddleware records each request and its latency.
func LoggingMiddleware() Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
			start := time.Now()
			attempt := attemptFromContext(r.Context())
			log.Debug().Str("method", r.Method).Str("url", r.URL.String()).Int("attempt", attempt).Msg("API Request")

			resp, err := next.RoundTrip(r)
			elapsed := time.Since(start)
			if err != nil {
				log.Err(err).Str("method", r.Method).Str("url", r.URL.String()).Dur("duration", elapsed).Msg("API Error")
				return nil, err
			}
			ev := log.Debug()
			if resp.StatusCode >= http.StatusBadRequest {
				ev = log.Warn()
			}
			ev.Str("method", r.Method).Str("url", r.URL.String()).Int("status", resp.StatusCode).Dur("duration", elapsed).Msg("API Response")
			return resp, nil
		})
	}
}
