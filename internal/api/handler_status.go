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

	"github.com/retr0h/botconsole/internal/api/status"
	"github.com/retr0h/botconsole/internal/api/system"
	"github.com/retr0h/botconsole/internal/sysinfo"
)

// GetStatusHandler returns status handlers for registration.
// /status-data is public; /api/status requires a session.
func (s *Server) GetStatusHandler(
	clock status.Clock,
	provider sysinfo.Provider,
	version string,
) []func(e *echo.Echo) {
	statusHandler := status.New(s.logger, clock, provider, version)

	return []func(e *echo.Echo){
		func(e *echo.Echo) {
			e.GET("/status-data", statusHandler.GetStatusData)
			e.GET("/api/status", statusHandler.GetStatus, s.authenticated()...)
		},
	}
}

// GetSystemHandler returns host metrics handler for registration.
func (s *Server) GetSystemHandler(
	provider sysinfo.Provider,
) []func(e *echo.Echo) {
	systemHandler := system.New(s.logger, provider)

	return []func(e *echo.Echo){
		func(e *echo.Echo) {
			e.GET("/api/system", systemHandler.GetSystem, s.authenticated()...)
		},
	}
}
