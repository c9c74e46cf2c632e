package tokenstore

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"

	wellbeerrors "github.com/jrsteele09/wellbe/internal/errors"
	"github.com/jrsteele09/wellbe/users"
)

// Credentials owns the session state: the persisted token pair and user record plus
// their in-process copies. Writes persist first and only then update the cache, so a
// cached value always has a persisted counterpart.
type Credentials struct {
	store Store
	mu    sync.RWMutex
	token *oauth2.Token
	user  *users.User
}

func NewCredentials(store Store) *Credentials {
	return &Credentials{store: store}
}

// Token returns the in-process access token, or nil.
func (c *Credentials) Token() *oauth2.Token {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.token == nil {
		return nil
	}
	t := *c.token
	return &t
}

// AccessToken returns the in-process access token string, or "".
func (c *Credentials) AccessToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.token == nil {
		return ""
	}
	return c.token.AccessToken
}

// LoadAccessToken hydrates the in-process token from the store. A missing token is
// not an error.
func (c *Credentials) LoadAccessToken(ctx context.Context) (string, error) {
	v, err := c.store.Get(ctx, AuthTokenKey)
	if errors.Is(err, ErrKeyNotFound) {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrap(err, "load access token")
	}
	c.mu.Lock()
	c.token = bearer(v)
	c.mu.Unlock()
	return v, nil
}

func (c *Credentials) SetAccessToken(ctx context.Context, token string) error {
	if err := c.store.Set(ctx, AuthTokenKey, token); err != nil {
		return errors.Wrap(err, "persist access token")
	}
	c.mu.Lock()
	c.token = bearer(token)
	c.mu.Unlock()
	return nil
}

// ClearAccessToken drops the in-process token even when the store delete fails.
func (c *Credentials) ClearAccessToken(ctx context.Context) error {
	c.mu.Lock()
	c.token = nil
	c.mu.Unlock()
	return c.store.Delete(ctx, AuthTokenKey)
}

// RefreshToken reads the refresh token from the store.
func (c *Credentials) RefreshToken(ctx context.Context) (string, error) {
	v, err := c.store.Get(ctx, RefreshTokenKey)
	if errors.Is(err, ErrKeyNotFound) || (err == nil && v == "") {
		return "", wellbeerrors.ErrNoRefreshToken
	}
	if err != nil {
		return "", errors.Wrap(err, "read refresh token")
	}
	return v, nil
}

func (c *Credentials) SetRefreshToken(ctx context.Context, token string) error {
	return c.store.Set(ctx, RefreshTokenKey, token)
}

// Rotate stores a new token pair from a refresh.
func (c *Credentials) Rotate(ctx context.Context, access, refresh string) error {
	if err := c.store.Set(ctx, AuthTokenKey, access); err != nil {
		return errors.Wrap(err, "persist access token")
	}
	if err := c.store.Set(ctx, RefreshTokenKey, refresh); err != nil {
		return errors.Wrap(err, "persist refresh token")
	}
	c.mu.Lock()
	c.token = bearer(access)
	c.mu.Unlock()
	return nil
}

// SaveSession persists the full login result and then caches it.
func (c *Credentials) SaveSession(ctx context.Context, access, refresh string, user *users.User) error {
	if user == nil {
		return errors.New("save session: user is required")
	}
	raw, err := json.Marshal(user)
	if err != nil {
		return errors.Wrap(err, "encode user")
	}
	if err := c.persistSession(ctx, access, refresh, string(raw)); err != nil {
		// The three keys are written as a unit; drop whatever made it to disk.
		if delErr := c.store.Delete(ctx, SessionKeys...); delErr != nil {
			log.Warn().Err(delErr).Msg("tokenstore: rollback of partial session failed")
		}
		return err
	}

	c.mu.Lock()
	c.token = bearer(access)
	c.user = user.Clone()
	c.mu.Unlock()
	return nil
}

func (c *Credentials) persistSession(ctx context.Context, access, refresh, user string) error {
	if err := c.store.Set(ctx, AuthTokenKey, access); err != nil {
		return errors.Wrap(err, "persist access token")
	}
	if err := c.store.Set(ctx, RefreshTokenKey, refresh); err != nil {
		return errors.Wrap(err, "persist refresh token")
	}
	if err := c.store.Set(ctx, UserDataKey, user); err != nil {
		return errors.Wrap(err, "persist user")
	}
	return nil
}

// Clear wipes the cache and then every persisted session key. The cache is
// cleared even if the store fails.
func (c *Credentials) Clear(ctx context.Context) error {
	c.mu.Lock()
	c.token = nil
	c.user = nil
	c.mu.Unlock()
	return c.store.Delete(ctx, SessionKeys...)
}

// CachedUser returns a copy of the in-process user, or nil.
func (c *Credentials) CachedUser() *users.User {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.user == nil {
		return nil
	}
	return c.user.Clone()
}

// LoadUser returns the cached user or reads it from the store once and caches it.
// It returns nil with no error when nothing is persisted.
func (c *Credentials) LoadUser(ctx context.Context) (*users.User, error) {
	if u := c.CachedUser(); u != nil {
		return u, nil
	}
	u, err := c.readUser(ctx)
	if err != nil || u == nil {
		return nil, err
	}
	c.mu.Lock()
	if c.user == nil {
		c.user = u.Clone()
	}
	c.mu.Unlock()
	return u, nil
}

// Load reads the persisted token and user. When both exist it hydrates the cache
// and reports true.
func (c *Credentials) Load(ctx context.Context) (bool, error) {
	tok, err := c.store.Get(ctx, AuthTokenKey)
	if errors.Is(err, ErrKeyNotFound) || (err == nil && tok == "") {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "read access token")
	}
	u, err := c.readUser(ctx)
	if err != nil || u == nil {
		return false, err
	}

	c.mu.Lock()
	c.token = bearer(tok)
	c.user = u.Clone()
	c.mu.Unlock()
	return true, nil
}

func (c *Credentials) readUser(ctx context.Context) (*users.User, error) {
	raw, err := c.store.Get(ctx, UserDataKey)
	if errors.Is(err, ErrKeyNotFound) || (err == nil && raw == "") {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "read user")
	}
	var u users.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return nil, errors.Wrap(err, "decode user")
	}
	return &u, nil
}

func bearer(access string) *oauth2.Token {
	if access == "" {
		return nil
	}
	return &oauth2.Token{AccessToken: access, TokenType: "Bearer"}
}
