// Package sessions maps opaque session tokens to authenticated identities.
//
// Tokens are signed (HS256) and carry the identity plus an absolute expiry,
// but the in-process live set is authoritative: Resolve only honors tokens
// that are both valid and still live, so Revoke takes effect immediately and
// all sessions die with the process.
package sessions

import (
	"sync"
	"time"

	"inkwell/internal/server/models"
)

// DefaultTTL is the fixed absolute session lifetime from issuance.
const DefaultTTL = 24 * time.Hour

// Identity is the resolved caller. The zero value is the anonymous caller.
type Identity struct {
	UserID   string
	Username string
	Role     models.Role
}

// IsAnonymous reports whether the identity is unauthenticated.
func (i Identity) IsAnonymous() bool {
	return i.UserID == ""
}

// IsEditor reports whether the identity holds the editor role.
func (i Identity) IsEditor() bool {
	return !i.IsAnonymous() && i.Role == models.RoleEditor
}

type Manager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time

	mu   sync.RWMutex
	live map[string]struct{}
}

func NewManager(secret []byte, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{
		secret: secret,
		ttl:    ttl,
		now:    time.Now,
		live:   make(map[string]struct{}),
	}
}

// SetClock replaces the time source; tests use it to drive expiry.
func (m *Manager) SetClock(now func() time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = now
}

// Issue creates a session for the identity and returns its token.
func (m *Manager) Issue(ident Identity) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	token, err := generateToken(ident, m.secret, m.ttl, m.now())
	if err != nil {
		return "", err
	}
	m.live[token] = struct{}{}
	return token, nil
}

// Resolve maps a token to its identity. It never fails: unknown, malformed,
// revoked and expired tokens all resolve to the anonymous identity. Expiry is
// checked lazily here; expired sessions are dropped from the live set on
// first sight.
func (m *Manager) Resolve(token string) Identity {
	if token == "" {
		return Identity{}
	}

	m.mu.RLock()
	_, ok := m.live[token]
	now := m.now()
	m.mu.RUnlock()
	if !ok {
		return Identity{}
	}

	ident, err := parseToken(token, m.secret, now)
	if err != nil {
		m.mu.Lock()
		delete(m.live, token)
		m.mu.Unlock()
		return Identity{}
	}
	return ident
}

// Revoke ends the session. Revoking an unknown token is not an error.
func (m *Manager) Revoke(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.live, token)
}

// Count returns the number of live sessions, expired or not. Diagnostics only.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.live)
}
