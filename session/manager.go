// Package session manages login state: it runs authentication through an
// Authenticator and keeps the resulting credentials in a tokenstore.Credentials.
package session

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/jrsteele09/wellbe/api"
	wellbeerrors "github.com/jrsteele09/wellbe/internal/errors"
	"github.com/jrsteele09/wellbe/tokenstore"
	"github.com/jrsteele09/wellbe/users"
)

type Manager struct {
	auth  Authenticator
	creds *tokenstore.Credentials
}

func NewManager(auth Authenticator, creds *tokenstore.Credentials) (*Manager, error) {
	if auth == nil {
		return nil, fmt.Errorf("[session.NewManager] authenticator is required")
	}
	if creds == nil {
		return nil, fmt.Errorf("[session.NewManager] credentials are required")
	}
	return &Manager{auth: auth, creds: creds}, nil
}

func (m *Manager) Login(ctx context.Context, email, password string) api.Response[AuthResponse] {
	res, err := m.auth.Login(ctx, LoginRequest{Email: email, Password: password})
	if err != nil {
		log.Err(err).Str("email", email).Msg("Login error")
		return api.Fail[AuthResponse](err, "Login failed")
	}
	return m.establish(ctx, res, "Login failed")
}

func (m *Manager) Register(ctx context.Context, req RegisterRequest) api.Response[AuthResponse] {
	res, err := m.auth.Register(ctx, req)
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("Registration error")
		return api.Fail[AuthResponse](err, "Registration failed")
	}
	return m.establish(ctx, res, "Registration failed")
}

// establish persists the new session and then caches it.
func (m *Manager) establish(ctx context.Context, res *AuthResponse, fallback string) api.Response[AuthResponse] {
	if err := m.creds.SaveSession(ctx, res.AccessToken, res.RefreshToken, res.User); err != nil {
		log.Err(err).Msg("Failed to persist session")
		return api.Failed[AuthResponse](fallback)
	}
	log.Info().Str("email", res.User.Email).Msg("Signed in")
	return api.OK(*res)
}

// Logout tells the server (best effort) and then always clears local credentials.
func (m *Manager) Logout(ctx context.Context) {
	rt, _ := m.creds.RefreshToken(ctx)
	if err := m.auth.Logout(ctx, rt); err != nil {
		log.Err(err).Msg("Logout error")
	}
	if err := m.creds.Clear(ctx); err != nil {
		log.Err(err).Msg("Failed to clear credentials")
		return
	}
	log.Info().Msg("Logout successful")
}

// CurrentUser returns the cached user, reading the persisted snapshot at most once.
func (m *Manager) CurrentUser(ctx context.Context) *users.User {
	u, err := m.creds.LoadUser(ctx)
	if err != nil {
		log.Err(err).Msg("Error loading user data")
		return nil
	}
	return u
}

// IsAuthenticated reports whether both a token and a user snapshot are persisted.
// When they are, the in-process session is restored from them.
func (m *Manager) IsAuthenticated(ctx context.Context) bool {
	ok, err := m.creds.Load(ctx)
	if err != nil {
		log.Err(err).Msg("Error checking authentication")
		return false
	}
	return ok
}

func (m *Manager) CheckOnboardingStatus(ctx context.Context) bool {
	u := m.CurrentUser(ctx)
	return u != nil && u.IsOnboardingComplete
}

func (m *Manager) ForgotPassword(ctx context.Context, email string) api.Response[api.MessageResponse] {
	msg, err := m.auth.ForgotPassword(ctx, ForgotPasswordRequest{Email: email})
	if err != nil {
		log.Err(err).Msg("Forgot password error")
		return api.Fail[api.MessageResponse](err, "Failed to send reset email")
	}
	return api.OK(api.MessageResponse{Message: msg})
}

func (m *Manager) ResetPassword(ctx context.Context, resetToken, newPassword string) api.Response[api.MessageResponse] {
	msg, err := m.auth.ResetPassword(ctx, ResetPasswordRequest{Token: resetToken, NewPassword: newPassword})
	if err != nil {
		log.Err(err).Msg("Reset password error")
		return api.Fail[api.MessageResponse](err, "Failed to reset password")
	}
	return api.OK(api.MessageResponse{Message: msg})
}

// LoginAsDefaultUser signs in as the first development user. It only works against
// the mock directory.
func (m *Manager) LoginAsDefaultUser(ctx context.Context) api.Response[AuthResponse] {
	if !m.auth.Mock() {
		return api.Failed[AuthResponse](wellbeerrors.ErrMockOnly.Error())
	}
	return m.Login(ctx, DefaultUserEmail, DefaultUserPassword)
}
