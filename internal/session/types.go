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

// Package session issues console sessions and gates operations by role.
package session

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/retr0h/botconsole/internal/auth"
	"github.com/retr0h/botconsole/internal/authtoken"
)

var (
	// ErrUnauthenticated is returned when no valid session is present.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrForbidden is returned when the session lacks the required role.
	ErrForbidden = errors.New("forbidden")
)

// Session is an authenticated principal with a fixed expiry.
type Session struct {
	ID        string         `json:"-"`
	Identity  string         `json:"username"`
	Role      authtoken.Role `json:"role"`
	IssuedAt  time.Time      `json:"-"`
	ExpiresAt time.Time      `json:"-"`
}

// TokenManager signs and verifies session tokens.
type TokenManager interface {
	Generate(
		signingKey string,
		role authtoken.Role,
		subject string,
		id string,
		issuedAt time.Time,
		ttl time.Duration,
	) (string, error)
	Validate(
		tokenString string,
		signingKey string,
	) (*authtoken.CustomClaims, error)
}

// Manager owns the live session table.
type Manager struct {
	logger        *slog.Logger
	authenticator auth.Authenticator
	tokens        TokenManager
	signingKey    string
	ttl           time.Duration

	mu       sync.RWMutex
	sessions map[string]Session
	nowFn    func() time.Time
}
