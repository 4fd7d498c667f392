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
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/retr0h/botconsole/internal/api/common"
	"github.com/retr0h/botconsole/internal/auth"
	"github.com/retr0h/botconsole/internal/logstore"
	"github.com/retr0h/botconsole/internal/validation"
)

// PostLogin authenticates the caller and sets the session cookie.
func (l *Login) PostLogin(
	c echo.Context,
) error {
	var req Request
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, common.ErrorResponse{Error: err.Error()})
	}

	if msg, ok := validation.Struct(req); !ok {
		return c.JSON(http.StatusBadRequest, common.ErrorResponse{Error: msg})
	}

	sess, token, err := l.sessions.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			l.logger.Warn(
				"failed login",
				slog.String("username", req.Username),
				slog.String("remote_ip", c.RealIP()),
			)

			return c.JSON(http.StatusUnauthorized, common.ErrorResponse{
				Error: auth.ErrInvalidCredentials.Error(),
			})
		}

		l.logger.Error("login failed", slog.String("error", err.Error()))

		return c.JSON(http.StatusInternalServerError, common.ErrorResponse{
			Error: "login failed",
		})
	}

	l.recorder.Append(
		fmt.Sprintf("%s logged in as %s", sess.Identity, sess.Role),
		logstore.CategoryAuth,
	)

	c.SetCookie(&http.Cookie{
		Name:     common.SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  sess.ExpiresAt,
		HttpOnly: true,
		Secure:   l.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	return c.JSON(http.StatusOK, Response{
		Success: true,
		User:    sess,
		Token:   token,
	})
}
