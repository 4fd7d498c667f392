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

// Package auth checks console credentials.
package auth

import (
	"context"
	"errors"
	"log/slog"

	"github.com/retr0h/botconsole/internal/authtoken"
)

// ErrInvalidCredentials is returned for an unknown user and for a wrong
// password alike.
var ErrInvalidCredentials = errors.New("invalid username or password")

// Principal is an authenticated console user.
type Principal struct {
	Identity string
	Role     authtoken.Role
}

// Authenticator verifies a username and password.
type Authenticator interface {
	Authenticate(
		ctx context.Context,
		username string,
		password string,
	) (Principal, error)
}

// account is a configured user with a parsed role.
type account struct {
	hash []byte
	role authtoken.Role
}

// ConfigAuthenticator authenticates against users listed in the config file.
type ConfigAuthenticator struct {
	logger   *slog.Logger
	accounts map[string]account
}
