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

package auth_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/retr0h/botconsole/internal/auth"
	"github.com/retr0h/botconsole/internal/authtoken"
	"github.com/retr0h/botconsole/internal/config"
)

type ConfigAuthenticatorPublicTestSuite struct {
	suite.Suite

	ctx           context.Context
	authenticator *auth.ConfigAuthenticator
}

func mustHash(
	password string,
) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}

	return string(hash)
}

func (s *ConfigAuthenticatorPublicTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.authenticator = auth.NewConfigAuthenticator(
		slog.Default(),
		[]config.User{
			{Username: "alice", PasswordHash: mustHash("owner-pass"), Role: "Owner"},
			{Username: "bob", PasswordHash: mustHash("admin-pass"), Role: "Admin"},
			{Username: "mallory", PasswordHash: mustHash("x"), Role: "Root"},
		},
	)
}

func (s *ConfigAuthenticatorPublicTestSuite) TestAuthenticate() {
	tests := []struct {
		name      string
		username  string
		password  string
		wantErr   error
		wantRole  authtoken.Role
		wantIdent string
	}{
		{
			name:      "when owner credentials are valid",
			username:  "alice",
			password:  "owner-pass",
			wantRole:  authtoken.RoleOwner,
			wantIdent: "alice",
		},
		{
			name:      "when admin credentials are valid",
			username:  "bob",
			password:  "admin-pass",
			wantRole:  authtoken.RoleAdmin,
			wantIdent: "bob",
		},
		{
			name:     "when password is wrong",
			username: "alice",
			password: "nope",
			wantErr:  auth.ErrInvalidCredentials,
		},
		{
			name:     "when user is unknown",
			username: "carol",
			password: "owner-pass",
			wantErr:  auth.ErrInvalidCredentials,
		},
		{
			name:     "when user has an unknown role",
			username: "mallory",
			password: "x",
			wantErr:  auth.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			p, err := s.authenticator.Authenticate(s.ctx, tt.username, tt.password)

			if tt.wantErr != nil {
				s.ErrorIs(err, tt.wantErr)
				s.Empty(p.Identity)
				return
			}

			s.NoError(err)
			s.Equal(tt.wantIdent, p.Identity)
			s.Equal(tt.wantRole, p.Role)
		})
	}
}

func (s *ConfigAuthenticatorPublicTestSuite) TestHashPassword() {
	hash, err := auth.HashPassword("s3cret")

	s.NoError(err)
	s.NoError(bcrypt.CompareHashAndPassword([]byte(hash), []byte("s3cret")))
}

func TestConfigAuthenticatorPublicTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigAuthenticatorPublicTestSuite))
}
