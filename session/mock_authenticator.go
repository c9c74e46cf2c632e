package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/jrsteele09/wellbe/internal/delay"
	wellbeerrors "github.com/jrsteele09/wellbe/internal/errors"
	"github.com/jrsteele09/wellbe/token"
	"github.com/jrsteele09/wellbe/users"
)

// NowTimeFunc returns the current time. It can be overridden in tests.
var NowTimeFunc = time.Now

// Simulated round-trip times of the mock directory.
const (
	loginLatency    = 1000 * time.Millisecond
	registerLatency = 1200 * time.Millisecond
	forgotLatency   = 800 * time.Millisecond
	resetLatency    = 800 * time.Millisecond
)

const (
	DefaultUserEmail    = "john@example.com"
	DefaultUserPassword = "password123"

	ResetEmailSentMessage = "Password reset email sent successfully"
	PasswordResetMessage  = "Password reset successfully"
)

var _ Authenticator = (*MockAuthenticator)(nil)

// MockAuthenticator authenticates against an in-memory user directory. Any password
// of at least users.MinPasswordLength characters is accepted for a known email.
type MockAuthenticator struct {
	users       users.UserRepo
	tokens      *token.Service
	latency     delay.Simulator
	mu          sync.Mutex
	resetTokens map[string]string // reset token to email
}

func NewMockAuthenticator(userRepo users.UserRepo, tokens *token.Service, latency delay.Simulator) (*MockAuthenticator, error) {
	if userRepo == nil {
		return nil, errors.New("[NewMockAuthenticator] user repo is required")
	}
	if tokens == nil {
		return nil, errors.New("[NewMockAuthenticator] token service is required")
	}
	return &MockAuthenticator{
		users:       userRepo,
		tokens:      tokens,
		latency:     latency,
		resetTokens: make(map[string]string),
	}, nil
}

func (a *MockAuthenticator) Mock() bool { return true }

func (a *MockAuthenticator) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	if err := a.latency.Wait(ctx, loginLatency); err != nil {
		return nil, err
	}
	user, err := a.users.GetByEmail(req.Email)
	if err != nil || len(req.Password) < users.MinPasswordLength {
		return nil, wellbeerrors.ErrInvalidCredentials
	}
	log.Debug().Str("email", user.Email).Msg("Mock login successful")
	return a.issue(user.Clone())
}

func (a *MockAuthenticator) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	if err := a.latency.Wait(ctx, registerLatency); err != nil {
		return nil, err
	}
	if _, err := a.users.GetByEmail(req.Email); err == nil {
		return nil, wellbeerrors.ErrDuplicateEmail
	}
	if err := users.ValidateCredentials(req.Email, req.Password); err != nil {
		return nil, err
	}

	now := NowTimeFunc().UTC()
	user := &users.User{
		ID:                   uuid.New().String(),
		Email:                req.Email,
		FirstName:            req.FirstName,
		LastName:             req.LastName,
		IsOnboardingComplete: false,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if err := a.users.Upsert(user.Clone()); err != nil {
		return nil, errors.Wrap(err, "store user")
	}
	log.Debug().Str("email", user.Email).Msg("Mock registration successful")
	return a.issue(user)
}

// Logout revokes the refresh token when one is given. The mock directory has no
// other remote state.
func (a *MockAuthenticator) Logout(_ context.Context, refreshToken string) error {
	if refreshToken != "" {
		return a.tokens.Revoke(nil, refreshToken)
	}
	return nil
}

// ForgotPassword records a reset token for a known email. Unknown emails get the same
// generic failure as any other problem so the message does not confirm which accounts exist.
func (a *MockAuthenticator) ForgotPassword(ctx context.Context, req ForgotPasswordRequest) (string, error) {
	if err := a.latency.Wait(ctx, forgotLatency); err != nil {
		return "", err
	}
	if _, err := a.users.GetByEmail(req.Email); err != nil {
		return "", wellbeerrors.ErrResetRequest
	}

	resetToken := uuid.New().String()
	a.mu.Lock()
	a.resetTokens[resetToken] = req.Email
	a.mu.Unlock()

	log.Info().Str("email", req.Email).Str("reset_token", resetToken).Msg("Mock password reset email sent")
	return ResetEmailSentMessage, nil
}

// PendingResetToken returns the most recent unused reset token for email.
func (a *MockAuthenticator) PendingResetToken(email string) (string, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for tok, e := range a.resetTokens {
		if e == email {
			return tok, true
		}
	}
	return "", false
}

func (a *MockAuthenticator) ResetPassword(ctx context.Context, req ResetPasswordRequest) (string, error) {
	if err := a.latency.Wait(ctx, resetLatency); err != nil {
		return "", err
	}
	if err := users.ValidatePassword(req.NewPassword); err != nil {
		return "", err
	}

	a.mu.Lock()
	email, ok := a.resetTokens[req.Token]
	if ok {
		delete(a.resetTokens, req.Token)
	}
	a.mu.Unlock()
	if !ok {
		return "", wellbeerrors.ErrInvalidResetToken
	}

	user, err := a.users.GetByEmail(email)
	if err != nil {
		return "", wellbeerrors.ErrInvalidResetToken
	}
	updated := user.Clone()
	updated.UpdatedAt = NowTimeFunc().UTC()
	if err := a.users.Upsert(updated); err != nil {
		return "", errors.Wrap(err, "store user")
	}
	return PasswordResetMessage, nil
}

func (a *MockAuthenticator) issue(user *users.User) (*AuthResponse, error) {
	pair, err := a.tokens.Issue(user)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{User: user, AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken}, nil
}
