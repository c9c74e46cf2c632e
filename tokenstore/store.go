package tokenstore

import (
	"context"

	wellbeerrors "github.com/jrsteele09/wellbe/internal/errors"
)

// Persisted keys. They are written and cleared together as a unit.
const (
	AuthTokenKey    = "auth_token"
	RefreshTokenKey = "refresh_token"
	UserDataKey     = "user_data"
)

// SessionKeys lists every key owned by a login session.
var SessionKeys = []string{AuthTokenKey, RefreshTokenKey, UserDataKey}

// ErrKeyNotFound is returned by Get when the key has never been set or was deleted.
var ErrKeyNotFound = wellbeerrors.ErrKeyNotFound

// Store is persistent string key/value storage for credentials.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	// Delete removes every key given. Missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error
}
