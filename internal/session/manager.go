// Copyright (c) 2024 John Dewey

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER
// DEALINGS IN THE SOFTWARE.

package session

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/retr0h/botconsole/internal/auth"
	"github.com/retr0h/botconsole/internal/authtoken"
)

// New factory to create a new instance.
func New(
	logger *slog.Logger,
	authenticator auth.Authenticator,
	tokens TokenManager,
	signingKey string,
	ttl time.Duration,
) *Manager {
	return &Manager{
		logger:        logger,
		authenticator: authenticator,
		tokens:        tokens,
		signingKey:    signingKey,
		ttl:           ttl,
		sessions:      make(map[string]Session),
		nowFn:         time.Now,
	}
}

// Login verifies credentials and opens a session. The returned token is
// the only way to present the session on later requests.
func (m *Manager) Login(
	ctx context.Context,
	identity string,
	secret string,
) (Session, string, error) {
	principal, err := m.authenticator.Authenticate(ctx, identity, secret)
	if err != nil {
		return Session{}, "", err
	}

	now := m.nowFn()
	sess := Session{
		ID:        uuid.NewString(),
		Identity:  principal.Identity,
		Role:      principal.Role,
		IssuedAt:  now,
		ExpiresAt: now.Add(m.ttl),
	}

	token, err := m.tokens.Generate(
		m.signingKey,
		sess.Role,
		sess.Identity,
		sess.ID,
		now,
		m.ttl,
	)
	if err != nil {
		return Session{}, "", fmt.Errorf("issuing session token: %w", err)
	}

	m.mu.Lock()
	m.pruneLocked(now)
	m.sessions[sess.ID] = sess
	m.mu.Unlock()

	m.logger.Info(
		"session opened",
		slog.String("identity", sess.Identity),
		slog.String("role", sess.Role.String()),
	)

	return sess, token, nil
}

// Require resolves token to a live session.
func (m *Manager) Require(
	token string,
) (Session, error) {
	if token == "" {
		return Session{}, fmt.Errorf("%w: no session", ErrUnauthenticated)
	}

	claims, err := m.tokens.Validate(token, m.signingKey)
	if err != nil {
		return Session{}, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}

	return m.Lookup(claims.ID)
}

// RequireRole resolves token and checks the session holds exactly role.
func (m *Manager) RequireRole(
	token string,
	role authtoken.Role,
) (Session, error) {
	sess, err := m.Require(token)
	if err != nil {
		return Session{}, err
	}

	if err := Authorize(sess, role); err != nil {
		return Session{}, err
	}

	return sess, nil
}

// Lookup returns the live session with the given id. Sessions that were
// destroyed or have passed their expiry are unauthenticated.
func (m *Manager) Lookup(
	id string,
) (Session, error) {
	m.mu.RLock()
	sess, ok := m.sessions[id]
	m.mu.RUnlock()

	if !ok {
		return Session{}, fmt.Errorf("%w: session not found", ErrUnauthenticated)
	}

	if !m.nowFn().Before(sess.ExpiresAt) {
		m.mu.Lock()
		delete(m.sessions, id)
		m.mu.Unlock()

		return Session{}, fmt.Errorf("%w: session expired", ErrUnauthenticated)
	}

	return sess, nil
}

// Authorize checks sess holds exactly role. There is no role hierarchy.
func Authorize(
	sess Session,
	role authtoken.Role,
) error {
	if sess.Role != role {
		return fmt.Errorf("%w: requires role %s", ErrForbidden, role)
	}

	return nil
}

// Logout destroys the session behind token. Invalid tokens are ignored.
func (m *Manager) Logout(
	token string,
) {
	claims, err := m.tokens.Validate(token, m.signingKey)
	if err != nil {
		return
	}

	m.mu.Lock()
	sess, ok := m.sessions[claims.ID]
	delete(m.sessions, claims.ID)
	m.mu.Unlock()

	if ok {
		m.logger.Info("session closed", slog.String("identity", sess.Identity))
	}
}

// RevokeIdentity destroys every session held by identity and returns how
// many were removed.
func (m *Manager) RevokeIdentity(
	identity string,
) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for id, sess := range m.sessions {
		if sess.Identity == identity {
			delete(m.sessions, id)
			n++
		}
	}

	return n
}

// RevokeAll destroys every session and returns how many were removed.
func (m *Manager) RevokeAll() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := len(m.sessions)
	m.sessions = make(map[string]Session)

	return n
}

// Count returns the number of sessions in the table.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.sessions)
}

func (m *Manager) pruneLocked(
	now time.Time,
) {
	for id, sess := range m.sessions {
		if !now.Before(sess.ExpiresAt) {
			delete(m.sessions, id)
		}
	}
}
