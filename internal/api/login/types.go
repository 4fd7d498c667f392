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

package login

import (
	"context"
	"log/slog"

	"github.com/retr0h/botconsole/internal/logstore"
	"github.com/retr0h/botconsole/internal/session"
)

// SessionManager opens and closes sessions.
type SessionManager interface {
	Login(
		ctx context.Context,
		identity string,
		secret string,
	) (session.Session, string, error)
	Logout(token string)
}

// Recorder appends entries to the console log.
type Recorder interface {
	Append(message string, category string) logstore.Entry
}

// Login implementation of the sign-in and sign-out operations.
type Login struct {
	logger       *slog.Logger
	sessions     SessionManager
	recorder     Recorder
	cookieSecure bool
}

// Request is the sign-in body, accepted as JSON or form data.
type Request struct {
	Username string `json:"username" form:"username" validate:"required,identity"`
	Password string `json:"password" form:"password" validate:"required"`
}

// Response is returned on a successful sign-in.
type Response struct {
	Success bool            `json:"success"`
	User    session.Session `json:"user"`
	Token   string          `json:"token"`
}
