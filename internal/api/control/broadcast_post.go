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

package control

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/retr0h/botconsole/internal/api/common"
	"github.com/retr0h/botconsole/internal/session"
)

// PostBroadcast sends an owner broadcast to every live connection.
func (ctl *Control) PostBroadcast(
	c echo.Context,
) error {
	sess, ok := common.SessionFrom(c)
	if !ok {
		return common.JSONError(c, session.ErrUnauthenticated)
	}

	var req BroadcastRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, common.ErrorResponse{Error: err.Error()})
	}

	if err := ctl.controller.Broadcast(c.Request().Context(), sess, req.Message); err != nil {
		return common.JSONError(c, err)
	}

	return c.JSON(http.StatusOK, common.SuccessResponse{Success: true})
}
