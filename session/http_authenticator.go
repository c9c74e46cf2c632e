package session

import (
	"context"
	"fmt"

	"github.com/jrsteele09/wellbe/api"
	"github.com/jrsteele09/wellbe/internal/config"
	"github.com/jrsteele09/wellbe/transport"
)

var _ Authenticator = (*HTTPAuthenticator)(nil)

// HTTPAuthenticator calls the wellbe API auth endpoints.
type HTTPAuthenticator struct {
	client    *transport.Client
	endpoints config.AuthEndpoints
}

func NewHTTPAuthenticator(client *transport.Client, endpoints config.AuthEndpoints) (*HTTPAuthenticator, error) {
	if client == nil {
		return nil, fmt.Errorf("[NewHTTPAuthenticator] client is required")
	}
	return &HTTPAuthenticator{client: client, endpoints: endpoints}, nil
}

func (a *HTTPAuthenticator) Mock() bool { return false }

func (a *HTTPAuthenticator) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	return authResult(transport.Post[AuthResponse](ctx, a.client, a.endpoints.Login, req))
}

func (a *HTTPAuthenticator) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	return authResult(transport.Post[AuthResponse](ctx, a.client, a.endpoints.Register, req))
}

func (a *HTTPAuthenticator) Logout(ctx context.Context, refreshToken string) error {
	_, err := transport.Post[api.MessageResponse](ctx, a.client, a.endpoints.Logout, LogoutRequest{RefreshToken: refreshToken}).Result()
	return err
}

func (a *HTTPAuthenticator) ForgotPassword(ctx context.Context, req ForgotPasswordRequest) (string, error) {
	msg, err := transport.Post[api.MessageResponse](ctx, a.client, a.endpoints.ForgotPassword, req).Result()
	return msg.Message, err
}

func (a *HTTPAuthenticator) ResetPassword(ctx context.Context, req ResetPasswordRequest) (string, error) {
	msg, err := transport.Post[api.MessageResponse](ctx, a.client, a.endpoints.ResetPassword, req).Result()
	return msg.Message, err
}

func authResult(resp api.Response[AuthResponse]) (*AuthResponse, error) {
	res, err := resp.Result()
	if err != nil {
		return nil, err
	}
	if res.User == nil || res.AccessToken == "" {
		return nil, fmt.Errorf("incomplete authentication response")
	}
	return &res, nil
}
