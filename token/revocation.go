package token

import (
	"sync"
	"time"
)

// RevokedTokenCache remembers logged-out access tokens by jti until they would have
// expired anyway.
type RevokedTokenCache interface {
	Add(jti string, exp time.Time) error
	IsRevoked(jti string) bool
	// Prune drops entries whose token has expired and returns how many remain.
	Prune() int
}

type memoryRevocations struct {
	mu      sync.RWMutex
	expires map[string]time.Time
}

var _ RevokedTokenCache = (*memoryRevocations)(nil)

func NewInMemoryRevokedTokenCache() RevokedTokenCache {
	return &memoryRevocations{expires: make(map[string]time.Time)}
}

func (m *memoryRevocations) Add(jti string, exp time.Time) error {
	m.mu.Lock()
	m.expires[jti] = exp
	m.mu.Unlock()
	return nil
}

// IsRevoked reports false for an expired entry; signature verification already
// rejects that token.
func (m *memoryRevocations) IsRevoked(jti string) bool {
	m.mu.RLock()
	exp, ok := m.expires[jti]
	m.mu.RUnlock()
	return ok && !NowTimeFunc().After(exp)
}

func (m *memoryRevocations) Prune() int {
	now := NowTimeFunc()
	m.mu.Lock()
	defer m.mu.Unlock()
	for jti, exp := range m.expires {
		if now.After(exp) {
			delete(m.expires, jti)
		}
	}
	return len(m.expires)
}
