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
	"github.com/labstack/echo/v4"

	"github.com/retr0h/botconsole/internal/api/live"
)

// GetLiveHandler returns the websocket live channel handler for
// registration.
func (s *Server) GetLiveHandler(
	registry live.Registry,
	sessions live.SessionLookup,
	controller live.Controller,
) []func(e *echo.Echo) {
	liveHandler := live.New(
		s.logger,
		registry,
		sessions,
		controller,
		s.appConfig.Server.Security.CORS.AllowOrigins,
	)

	return []func(e *echo.Echo){
		func(e *echo.Echo) {
			e.GET("/ws", liveHandler.GetWS, s.authenticated()...)
		},
	}
}
