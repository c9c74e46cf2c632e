package refresh

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	wellbeerrors "github.com/jrsteele09/wellbe/internal/errors"
)

// NowTimeFunc returns the current time. It can be overridden in tests.
var NowTimeFunc = time.Now

// DefaultExpiry is how long an unused refresh token stays valid.
const DefaultExpiry = 30 * 24 * time.Hour

// Manager handles refresh token creation and rotation. Each user holds at most
// one live refresh token and every rotation invalidates the previous one.
type Manager struct {
	repo   Repo
	length int
	expiry time.Duration
}

func NewManager(repo Repo, length int, expiry time.Duration) (*Manager, error) {
	if repo == nil {
		return nil, fmt.Errorf("[refresh.NewManager] repo is required")
	}
	if length <= 0 {
		length = 32
	}
	if expiry <= 0 {
		expiry = DefaultExpiry
	}
	return &Manager{repo: repo, length: length, expiry: expiry}, nil
}

// Create generates a new refresh token for userID, replacing any existing one.
func (m *Manager) Create(userID string) (string, error) {
	if existing, err := m.repo.GetByUserID(userID); err == nil && existing != nil {
		if err := m.repo.Delete(existing.Token); err != nil {
			return "", fmt.Errorf("failed to delete existing refresh token: %w", err)
		}
	}

	tokenBytes := make([]byte, m.length)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	tokenStr := hex.EncodeToString(tokenBytes)
	if err := m.repo.Upsert(&StoredRefreshToken{
		Token:  tokenStr,
		UserID: userID,
		Iat:    NowTimeFunc(),
	}); err != nil {
		return "", fmt.Errorf("failed to store refresh token: %w", err)
	}
	return tokenStr, nil
}

// Rotate consumes token and returns the owning user id and a replacement token.
// An unknown, already-rotated or expired token fails with ErrInvalidRefreshToken.
func (m *Manager) Rotate(token string) (string, string, error) {
	rt, err := m.repo.Get(token)
	if err != nil || rt == nil {
		return "", "", wellbeerrors.ErrInvalidRefreshToken
	}
	if m.IsExpired(rt) {
		_ = m.repo.Delete(token)
		return "", "", wellbeerrors.ErrInvalidRefreshToken
	}
	next, err := m.Create(rt.UserID)
	if err != nil {
		return "", "", err
	}
	return rt.UserID, next, nil
}

// Revoke removes token. Unknown tokens are ignored.
func (m *Manager) Revoke(token string) {
	_ = m.repo.Delete(token)
}

func (m *Manager) IsExpired(rt *StoredRefreshToken) bool {
	return NowTimeFunc().Sub(rt.Iat) > m.expiry
}
