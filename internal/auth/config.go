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

package auth

import (
	"context"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/retr0h/botconsole/internal/authtoken"
	"github.com/retr0h/botconsole/internal/config"
)

// passwordCost is the bcrypt cost used by HashPassword.
const passwordCost = bcrypt.DefaultCost

// dummyHash is compared against for unknown users. It shares the cost of
// generated hashes so both failure paths take the same time.
var dummyHash, _ = bcrypt.GenerateFromPassword(
	[]byte("botconsole-unknown-user"),
	passwordCost,
)

// NewConfigAuthenticator builds an Authenticator from configured users.
// Users with a role other than Owner or Admin are skipped.
func NewConfigAuthenticator(
	logger *slog.Logger,
	users []config.User,
) *ConfigAuthenticator {
	accounts := make(map[string]account, len(users))
	for _, u := range users {
		role, ok := authtoken.ParseRole(u.Role)
		if !ok {
			logger.Warn(
				"skipping user with unknown role",
				slog.String("username", u.Username),
				slog.String("role", u.Role),
			)
			continue
		}

		accounts[u.Username] = account{
			hash: []byte(u.PasswordHash),
			role: role,
		}
	}

	return &ConfigAuthenticator{
		logger:   logger,
		accounts: accounts,
	}
}

// Authenticate verifies the password against the stored bcrypt hash.
func (a *ConfigAuthenticator) Authenticate(
	_ context.Context,
	username string,
	password string,
) (Principal, error) {
	acct, ok := a.accounts[username]
	if !ok {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		a.logger.Debug("login for unknown user", slog.String("username", username))

		return Principal{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(acct.hash, []byte(password)); err != nil {
		a.logger.Debug("password mismatch", slog.String("username", username))

		return Principal{}, ErrInvalidCredentials
	}

	return Principal{
		Identity: username,
		Role:     acct.role,
	}, nil
}

// HashPassword returns a bcrypt hash suitable for the users config block.
func HashPassword(
	password string,
) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordCost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}
