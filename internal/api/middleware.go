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

package api

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/retr0h/botconsole/internal/api/common"
	"github.com/retr0h/botconsole/internal/authtoken"
	"github.com/retr0h/botconsole/internal/session"
)

// loginPath is where unauthenticated browsers are sent.
const loginPath = "/login"

// requireSession resolves the caller's session and stores it under
// common.ContextKeySession. Browsers without a session are redirected to
// the login page; API callers get a 401.
func requireSession(
	gate SessionGate,
) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, err := gate.Require(common.TokenFromRequest(c.Request()))
			if err != nil {
				if wantsHTML(c.Request()) {
					return c.Redirect(http.StatusFound, loginPath)
				}

				return common.JSONError(c, err)
			}

			c.Set(common.ContextKeySession, sess)

			return next(c)
		}
	}
}

// requireRole rejects callers whose session role is not exactly role. It
// must run after requireSession.
func requireRole(
	role authtoken.Role,
) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, ok := common.SessionFrom(c)
			if !ok {
				return common.JSONError(c, session.ErrUnauthenticated)
			}

			if err := session.Authorize(sess, role); err != nil {
				return common.JSONError(c, err)
			}

			return next(c)
		}
	}
}

// ownerOnly is the middleware chain for Owner routes.
func (s *Server) ownerOnly() []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{
		requireSession(s.sessions),
		requireRole(authtoken.RoleOwner),
	}
}

// authenticated is the middleware chain for any signed-in role.
func (s *Server) authenticated() []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{
		requireSession(s.sessions),
	}
}

func wantsHTML(
	r *http.Request,
) bool {
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}
