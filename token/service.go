package token

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/jrsteele09/wellbe/internal/config"
	wellbeerrors "github.com/jrsteele09/wellbe/internal/errors"
	"github.com/jrsteele09/wellbe/token/refresh"
	"github.com/jrsteele09/wellbe/users"
)

// Pair is the access/refresh token pair handed to a client after login or refresh.
type Pair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Service issues, rotates and revokes token pairs for users in a directory.
type Service struct {
	issuer  *Issuer
	refresh *refresh.Manager
	users   users.UserRepo
}

func NewService(cfg config.AuthConfig, userRepo users.UserRepo, refreshRepo refresh.Repo) (*Service, error) {
	if cfg == nil {
		return nil, fmt.Errorf("[token.NewService] config is required")
	}
	if userRepo == nil {
		return nil, fmt.Errorf("[token.NewService] user repo is required")
	}
	issuer, err := NewIssuer(NewHMACSigner(cfg.GetJWTSecret()), cfg.GetAccessTokenExpiry(), nil)
	if err != nil {
		return nil, err
	}
	rm, err := refresh.NewManager(refreshRepo, cfg.GetRefreshTokenLength(), 0)
	if err != nil {
		return nil, err
	}
	return &Service{issuer: issuer, refresh: rm, users: userRepo}, nil
}

func (s *Service) Issue(user *users.User) (Pair, error) {
	access, err := s.issuer.Issue(user)
	if err != nil {
		return Pair{}, errors.Wrap(err, "issue access token")
	}
	rt, err := s.refresh.Create(user.ID)
	if err != nil {
		return Pair{}, errors.Wrap(err, "issue refresh token")
	}
	return Pair{AccessToken: access, RefreshToken: rt}, nil
}

// Refresh rotates refreshToken and issues a new access token for its owner.
func (s *Service) Refresh(refreshToken string) (Pair, *users.User, error) {
	userID, next, err := s.refresh.Rotate(refreshToken)
	if err != nil {
		return Pair{}, nil, err
	}
	user, err := s.users.GetByID(userID)
	if err != nil {
		s.refresh.Revoke(next)
		return Pair{}, nil, wellbeerrors.ErrInvalidRefreshToken
	}
	access, err := s.issuer.Issue(user)
	if err != nil {
		return Pair{}, nil, errors.Wrap(err, "issue access token")
	}
	return Pair{AccessToken: access, RefreshToken: next}, user, nil
}

// Authenticate verifies an access token and loads its user.
func (s *Service) Authenticate(access string) (*Claims, *users.User, error) {
	claims, err := s.issuer.Verify(access)
	if err != nil {
		return nil, nil, err
	}
	user, err := s.users.GetByID(claims.Subject)
	if err != nil {
		return nil, nil, wellbeerrors.ErrInvalidToken
	}
	return claims, user, nil
}

// Revoke invalidates the access token's jti and the refresh token, if given.
func (s *Service) Revoke(claims *Claims, refreshToken string) error {
	if refreshToken != "" {
		s.refresh.Revoke(refreshToken)
	}
	return s.issuer.Revoke(claims)
}
