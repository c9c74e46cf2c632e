package transport_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/jrsteele09/wellbe/internal/config"
	"github.com/jrsteele09/wellbe/tokenstore"
	tokenstorefake "github.com/jrsteele09/wellbe/tokenstore/repofake"
	"github.com/jrsteele09/wellbe/transport"
)

type testFixture struct {
	server *httptest.Server
	mux    *http.ServeMux
	store  *tokenstorefake.FakeStore
	creds  *tokenstore.Credentials
	client *transport.Client
}

func setupTestFixture(t *testing.T, opts ...transport.Option) *testFixture {
	t.Helper()
	f := &testFixture{mux: http.NewServeMux(), store: tokenstorefake.NewFakeStore()}
	f.server = httptest.NewServer(f.mux)
	t.Cleanup(f.server.Close)

	v := config.Defaults()
	v.API.BaseURL = f.server.URL + "/api"
	f.creds = tokenstore.NewCredentials(f.store)

	var err error
	f.client, err = transport.New(config.FromValues(v), f.creds, opts...)
	require.NoError(t, err)
	return f
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type item struct {
	Name string `json:"name"`
}

func TestGetDecodesEnvelopeWithAuthAndParams(t *testing.T) {
	f := setupTestFixture(t)
	ctx := context.Background()
	require.NoError(t, f.client.SetAuthToken(ctx, "abc"))

	f.mux.HandleFunc("/api/items", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer abc", r.Header.Get("Authorization"))
		require.Equal(t, "chicken", r.URL.Query().Get("query"))
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": []item{{Name: "Grilled Chicken Breast"}}})
	})

	resp := transport.Get[[]item](ctx, f.client, "/items", transport.WithParams(url.Values{"query": {"chicken"}}))
	require.True(t, resp.Success)
	require.Equal(t, []item{{Name: "Grilled Chicken Breast"}}, resp.Data)
	require.True(t, f.store.Has(tokenstore.AuthTokenKey))
}

func TestPostSendsJSONBody(t *testing.T) {
	f := setupTestFixture(t)

	f.mux.HandleFunc("/api/items", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.Empty(t, r.Header.Get("Authorization"))
		var in item
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		writeJSON(w, http.StatusCreated, map[string]any{"success": true, "data": in})
	})

	resp := transport.Post[item](context.Background(), f.client, "/items", item{Name: "Brown Rice"})
	require.True(t, resp.Success)
	require.Equal(t, "Brown Rice", resp.Data.Name)
}

func TestUnauthorizedRefreshesOnceAndRetries(t *testing.T) {
	f := setupTestFixture(t)
	ctx := context.Background()
	require.NoError(t, f.creds.Rotate(ctx, "stale", "refresh-1"))

	var dataHits, refreshHits atomic.Int32
	f.mux.HandleFunc("/api/data", func(w http.ResponseWriter, r *http.Request) {
		dataHits.Add(1)
		if r.Header.Get("Authorization") != "Bearer fresh" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": item{Name: "ok"}})
	})
	f.mux.HandleFunc("/api/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		refreshHits.Add(1)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "refresh-1", body["refreshToken"])
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"data":    map[string]string{"accessToken": "fresh", "refreshToken": "refresh-2"},
		})
	})

	resp := transport.Get[item](ctx, f.client, "/data")
	require.True(t, resp.Success)
	require.Equal(t, "ok", resp.Data.Name)
	require.EqualValues(t, 2, dataHits.Load())
	require.EqualValues(t, 1, refreshHits.Load())

	require.Equal(t, "fresh", f.creds.AccessToken())
	rt, err := f.creds.RefreshToken(ctx)
	require.NoError(t, err)
	require.Equal(t, "refresh-2", rt)
}

func TestRefreshAcceptsTopLevelPair(t *testing.T) {
	f := setupTestFixture(t)
	ctx := context.Background()
	require.NoError(t, f.creds.SetRefreshToken(ctx, "refresh-1"))

	f.mux.HandleFunc("/api/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"accessToken": "a2", "refreshToken": "r2"})
	})

	require.NoError(t, f.client.Refresh(ctx))
	require.Equal(t, "a2", f.creds.AccessToken())
}

func TestDoubleUnauthorizedClearsCredentials(t *testing.T) {
	f := setupTestFixture(t)
	ctx := context.Background()
	require.NoError(t, f.store.Set(ctx, tokenstore.UserDataKey, `{"id":"1"}`))
	require.NoError(t, f.creds.Rotate(ctx, "stale", "refresh-1"))

	var dataHits, refreshHits atomic.Int32
	f.mux.HandleFunc("/api/data", func(w http.ResponseWriter, r *http.Request) {
		dataHits.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	})
	f.mux.HandleFunc("/api/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		refreshHits.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	})

	resp := transport.Get[item](ctx, f.client, "/data")
	require.False(t, resp.Success)
	require.Equal(t, "Authentication required. Please log in.", resp.Error)
	require.EqualValues(t, 1, dataHits.Load())
	require.EqualValues(t, 1, refreshHits.Load())

	require.Nil(t, f.creds.Token())
	require.Equal(t, 0, f.store.Len())
}

func TestRetryThatStillFailsIsNotRefreshedAgain(t *testing.T) {
	f := setupTestFixture(t)
	ctx := context.Background()
	require.NoError(t, f.creds.Rotate(ctx, "stale", "refresh-1"))

	var dataHits, refreshHits atomic.Int32
	f.mux.HandleFunc("/api/data", func(w http.ResponseWriter, r *http.Request) {
		dataHits.Add(1)
		writeJSON(w, http.StatusUnauthorized, map[string]any{"success": false, "message": "Session revoked"})
	})
	f.mux.HandleFunc("/api/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		refreshHits.Add(1)
		writeJSON(w, http.StatusOK, map[string]string{"accessToken": "a2", "refreshToken": "r2"})
	})

	resp := transport.Get[item](ctx, f.client, "/data")
	require.False(t, resp.Success)
	require.Equal(t, "Session revoked", resp.Error)
	require.EqualValues(t, 2, dataHits.Load())
	require.EqualValues(t, 1, refreshHits.Load())
}

func TestUnauthorizedWithoutRefreshToken(t *testing.T) {
	f := setupTestFixture(t)
	ctx := context.Background()
	require.NoError(t, f.client.SetAuthToken(ctx, "stale"))

	var refreshHits atomic.Int32
	f.mux.HandleFunc("/api/data", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	f.mux.HandleFunc("/api/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		refreshHits.Add(1)
	})

	resp := transport.Get[item](ctx, f.client, "/data")
	require.False(t, resp.Success)
	require.EqualValues(t, 0, refreshHits.Load())
	require.Empty(t, f.creds.AccessToken())
	require.False(t, f.store.Has(tokenstore.AuthTokenKey))
}

func TestOfflineFailsWithoutSending(t *testing.T) {
	f := setupTestFixture(t, transport.WithConnectivity(transport.StaticConnectivity(false)))

	var hits atomic.Int32
	f.mux.HandleFunc("/api/data", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	})

	resp := transport.Get[item](context.Background(), f.client, "/data")
	require.False(t, resp.Success)
	require.Equal(t, "No internet connection", resp.Error)
	require.EqualValues(t, 0, hits.Load())
}

func TestStatusMessages(t *testing.T) {
	f := setupTestFixture(t)
	f.mux.HandleFunc("/api/status/", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/status/message":
			writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": "Email is required"})
		case "/api/status/error":
			writeJSON(w, http.StatusConflict, map[string]any{"success": false, "error": "User with this email already exists"})
		case "/api/status/forbidden":
			w.WriteHeader(http.StatusForbidden)
		case "/api/status/teapot":
			w.WriteHeader(http.StatusTeapot)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	})

	tests := []struct {
		path string
		want string
	}{
		{"/status/message", "Email is required"},
		{"/status/error", "User with this email already exists"},
		{"/status/forbidden", "Access denied. You don't have permission."},
		{"/status/teapot", "Request failed with status code 418"},
		{"/status/boom", "Server error. Please try again later."},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp := transport.Delete[item](context.Background(), f.client, tt.path)
			require.False(t, resp.Success)
			require.Equal(t, tt.want, resp.Error)
		})
	}
}

func TestErrorMessageFallback(t *testing.T) {
	require.Equal(t, "", transport.ErrorMessage(nil))
	require.Equal(t, "Resource not found.", transport.ErrorMessage(&transport.StatusError{Status: http.StatusNotFound}))
	require.Equal(t, "Too many requests. Please try again later.", transport.ErrorMessage(&transport.StatusError{Status: http.StatusTooManyRequests}))
	require.Equal(t, transport.UnexpectedErrorMessage, transport.ErrorMessage(blankError{}))
}

func TestFailedEnvelopeAlwaysCarriesError(t *testing.T) {
	f := setupTestFixture(t)
	ctx := context.Background()
	f.mux.HandleFunc("/api/bare", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"success": false})
	})
	f.mux.HandleFunc("/api/message", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"success": false, "message": "Try later", "data": item{Name: "stale"}})
	})

	bare := transport.Get[item](ctx, f.client, "/bare")
	require.False(t, bare.Success)
	require.Equal(t, transport.UnexpectedErrorMessage, bare.Error)

	withMessage := transport.Get[item](ctx, f.client, "/message")
	require.False(t, withMessage.Success)
	require.Equal(t, "Try later", withMessage.Error)
	require.Equal(t, item{}, withMessage.Data)
}

type blankError struct{}

func (blankError) Error() string { return "" }

func TestMetricsCountRequests(t *testing.T) {
	m := transport.NewMetrics(prometheus.NewRegistry())
	f := setupTestFixture(t, transport.WithMetrics(m))
	f.mux.HandleFunc("/api/data", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"success": true})
	})

	resp := transport.Get[item](context.Background(), f.client, "/data")
	require.True(t, resp.Success)
	require.Equal(t, float64(1), testutil.ToFloat64(m.Requests.WithLabelValues(http.MethodGet, "200")))
}

func TestExtraMiddlewareRunsInOrder(t *testing.T) {
	var order []string
	mark := func(name string) transport.Middleware {
		return func(next http.RoundTripper) http.RoundTripper {
			return transport.RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
				order = append(order, name)
				return next.RoundTrip(r)
			})
		}
	}
	rt := transport.ChainMiddleware(transport.RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
		order = append(order, "base")
		return &http.Response{StatusCode: http.StatusOK, Body: io.NopCloser(nil)}, nil
	}), mark("first"), mark("second"))

	req := httptest.NewRequest(http.MethodGet, "http://example.test", nil)
	_, err := rt.RoundTrip(req)
	require.NoError(t, err)
	require.Equal(t, []string{"first", "second", "base"}, order)
}
