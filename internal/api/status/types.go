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

package status

import (
	"log/slog"
	"time"

	"github.com/retr0h/botconsole/internal/session"
	"github.com/retr0h/botconsole/internal/sysinfo"
)

// Clock reports process start time and uptime.
type Clock interface {
	StartedAt() time.Time
	Uptime() time.Duration
}

// Status implementation of the status API operations.
type Status struct {
	logger   *slog.Logger
	clock    Clock
	provider sysinfo.Provider
	version  string
}

// Response is the body of GET /api/status.
type Response struct {
	CurrentUser session.Session `json:"currentUser"`
	Uptime      string          `json:"uptime"`
	GoVersion   string          `json:"goVersion"`
	Platform    string          `json:"platform"`
	Version     string          `json:"version"`
}

// Uptime is process uptime in seconds and in human form.
type Uptime struct {
	Seconds float64 `json:"seconds"`
	Human   string  `json:"human"`
}

// DataResponse is the body of the public GET /status-data.
type DataResponse struct {
	StartedAt  string `json:"startedAt"`
	ServerTime string `json:"serverTime"`
	Uptime     Uptime `json:"uptime"`
	GoVersion  string `json:"goVersion"`
	Platform   string `json:"platform"`
	Hostname   string `json:"hostname"`
	Memory     string `json:"memory"`
	Version    string `json:"version"`
}
