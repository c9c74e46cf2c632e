package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/jrsteele09/wellbe/api"
	wellbeerrors "github.com/jrsteele09/wellbe/internal/errors"
)

// maxAttempts is the attempt number of the single re-issue after a refresh.
const maxAttempts = 1

type attemptKey struct{}

func attemptFromContext(ctx context.Context) int {
	n, _ := ctx.Value(attemptKey{}).(int)
	return n
}

// bodyFunc produces a fresh request body for every attempt.
type bodyFunc func() (body io.Reader, contentType string, length int64, err error)

type request struct {
	method    string
	path      string
	params    url.Values
	headers   http.Header
	body      bodyFunc
	noRefresh bool
}

// RequestOption customises a single call.
type RequestOption func(*request)

// WithParams adds query parameters.
func WithParams(params url.Values) RequestOption {
	return func(r *request) {
		for k, vs := range params {
			for _, v := range vs {
				r.params.Add(k, v)
			}
		}
	}
}

func WithHeader(key, value string) RequestOption {
	return func(r *request) { r.headers.Set(key, value) }
}

// withoutRefresh stops a 401 from triggering the refresh procedure.
func withoutRefresh() RequestOption {
	return func(r *request) { r.noRefresh = true }
}

func newRequest(method, path string, body any, opts []RequestOption) (*request, error) {
	r := &request{
		method:  method,
		path:    path,
		params:  url.Values{},
		headers: http.Header{},
	}
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrap(err, "encode request body")
		}
		r.body = func() (io.Reader, string, int64, error) {
			return bytes.NewReader(raw), "application/json", int64(len(raw)), nil
		}
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

func Get[T any](ctx context.Context, c *Client, path string, opts ...RequestOption) api.Response[T] {
	return Do[T](ctx, c, http.MethodGet, path, nil, opts...)
}

func Post[T any](ctx context.Context, c *Client, path string, body any, opts ...RequestOption) api.Response[T] {
	return Do[T](ctx, c, http.MethodPost, path, body, opts...)
}

func Put[T any](ctx context.Context, c *Client, path string, body any, opts ...RequestOption) api.Response[T] {
	return Do[T](ctx, c, http.MethodPut, path, body, opts...)
}

func Patch[T any](ctx context.Context, c *Client, path string, body any, opts ...RequestOption) api.Response[T] {
	return Do[T](ctx, c, http.MethodPatch, path, body, opts...)
}

func Delete[T any](ctx context.Context, c *Client, path string, opts ...RequestOption) api.Response[T] {
	return Do[T](ctx, c, http.MethodDelete, path, nil, opts...)
}

// Do issues the request and decodes the server envelope. Failures of any kind come
// back as a failed envelope carrying the mapped message. A failed envelope always
// has its Error set and no Data.
func Do[T any](ctx context.Context, c *Client, method, path string, body any, opts ...RequestOption) api.Response[T] {
	r, err := newRequest(method, path, body, opts)
	if err != nil {
		return api.Failed[T](UnexpectedErrorMessage)
	}
	return decode[T](c.send(ctx, r))
}

func decode[T any](raw []byte, err error) api.Response[T] {
	if err != nil {
		return api.Failed[T](ErrorMessage(err))
	}
	var resp api.Response[T]
	if len(bytes.TrimSpace(raw)) == 0 {
		resp.Success = true
		return resp
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		log.Err(err).Msg("Failed to decode API response")
		return api.Failed[T](UnexpectedErrorMessage)
	}
	if !resp.Success {
		msg := resp.Error
		if msg == "" {
			msg = resp.Message
		}
		if msg == "" {
			msg = UnexpectedErrorMessage
		}
		failed := api.Failed[T](msg)
		failed.Message = resp.Message
		return failed
	}
	return resp
}

// send runs the request. A 401 on the first attempt triggers one refresh and one
// re-issue. If the refresh fails the stored credentials are cleared and the original
// error is returned.
func (c *Client) send(ctx context.Context, r *request) ([]byte, error) {
	raw, err := c.roundTrip(ctx, r, 0)
	if r.noRefresh || !IsStatus(err, http.StatusUnauthorized) {
		return raw, err
	}

	if rerr := c.Refresh(ctx); rerr != nil {
		log.Err(rerr).Msg("Token refresh failed, credentials cleared")
		if cerr := c.creds.Clear(ctx); cerr != nil {
			log.Err(cerr).Msg("Failed to clear credentials")
		}
		return nil, err
	}
	return c.roundTrip(ctx, r, maxAttempts)
}

func (c *Client) roundTrip(ctx context.Context, r *request, attempt int) ([]byte, error) {
	u, err := url.Parse(c.baseURL + r.path)
	if err != nil {
		return nil, errors.Wrap(err, "build url")
	}
	if len(r.params) > 0 {
		q := u.Query()
		for k, vs := range r.params {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		u.RawQuery = q.Encode()
	}

	var (
		body          io.Reader
		contentType   string
		contentLength int64
	)
	if r.body != nil {
		if body, contentType, contentLength, err = r.body(); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(context.WithValue(ctx, attemptKey{}, attempt), r.method, u.String(), body)
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}
	if body != nil {
		req.ContentLength = contentLength
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	for k, vs := range r.headers {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		var uerr *url.Error
		if errors.As(err, &uerr) && errors.Is(uerr.Err, wellbeerrors.ErrNoConnection) {
			return nil, wellbeerrors.ErrNoConnection
		}
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read response")
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Status: resp.StatusCode, Body: raw}
	}
	return raw, nil
}
