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

// Package common holds types and helpers shared by the API handler
// packages.
package common

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/retr0h/botconsole/internal/control"
	"github.com/retr0h/botconsole/internal/session"
)

// SessionCookie is the name of the cookie carrying the session token.
const SessionCookie = "botconsole_session"

// ContextKeySession is the echo context key holding the caller's
// session.Session.
const ContextKeySession = "auth.session"

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse acknowledges a mutation.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// TokenFromRequest returns the session token from the session cookie or,
// failing that, from a Bearer Authorization header.
func TokenFromRequest(
	r *http.Request,
) string {
	if cookie, err := r.Cookie(SessionCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	return ""
}

// SessionFrom returns the session stored by the session middleware.
func SessionFrom(
	c echo.Context,
) (session.Session, bool) {
	sess, ok := c.Get(ContextKeySession).(session.Session)

	return sess, ok
}

// StatusForError maps domain errors to HTTP status codes.
func StatusForError(
	err error,
) int {
	switch {
	case errors.Is(err, session.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, session.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, control.ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// JSONError writes err as an ErrorResponse with the mapped status code.
func JSONError(
	c echo.Context,
	err error,
) error {
	return c.JSON(StatusForError(err), ErrorResponse{Error: err.Error()})
}
