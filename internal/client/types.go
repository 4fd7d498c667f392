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

// Package client provides the HTTP and live-channel client for the console.
package client

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/retr0h/botconsole/internal/announcement"
	"github.com/retr0h/botconsole/internal/event"
)

// Client talks to a running console.
type Client struct {
	logger     *slog.Logger
	baseURL    string
	username   string
	password   string
	httpClient *http.Client
	transport  *authTransport
}

// authTransport adds the session token and trace context to every request.
type authTransport struct {
	base   http.RoundTripper
	logger *slog.Logger

	mu    sync.RWMutex
	token string
}

// Error is a non-2xx reply from the console.
type Error struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%d %s: %s", e.StatusCode, http.StatusText(e.StatusCode), e.Message)
}

// Frame is a decoded live-channel frame.
type Frame = event.Frame

// Announcement is the console banner.
type Announcement = announcement.Announcement

// CombinedHandler is the full set of console operations.
type CombinedHandler interface {
	SessionHandler
	HealthHandler
	StatusHandler
	LogHandler
	ControlHandler
	AnalyticsHandler
	LiveHandler
}

// SessionHandler signs in and out of the console.
type SessionHandler interface {
	// Login exchanges the configured credentials for a session token.
	Login(ctx context.Context) (*LoginResponse, error)
	// Logout ends the current session.
	Logout(ctx context.Context) error
}

// HealthHandler reads the unauthenticated probes.
type HealthHandler interface {
	GetHealth(ctx context.Context) (*HealthResponse, error)
	GetHealthReady(ctx context.Context) (*ReadyResponse, error)
}

// StatusHandler reads process and host status.
type StatusHandler interface {
	GetStatusData(ctx context.Context) (*StatusDataResponse, error)
	GetStatus(ctx context.Context) (*StatusResponse, error)
	GetSystem(ctx context.Context) (*SystemResponse, error)
}

// LogHandler reads and clears the console log.
type LogHandler interface {
	GetLogs(ctx context.Context, filter string) ([]LogEntry, error)
	ClearLogs(ctx context.Context) error
}

// ControlHandler drives the owner control plane.
type ControlHandler interface {
	GetAnnouncement(ctx context.Context) (*Announcement, error)
	SetAnnouncement(ctx context.Context, a Announcement) error
	Broadcast(ctx context.Context, message string) error
	ForceLogout(ctx context.Context, target string) (int, error)
	Restart(ctx context.Context) error
}

// AnalyticsHandler reads and feeds the analytics counters.
type AnalyticsHandler interface {
	GetAnalytics(ctx context.Context) (*AnalyticsResponse, error)
	RecordMessages(ctx context.Context, count uint64) (uint64, error)
}

// LiveHandler streams live-channel frames.
type LiveHandler interface {
	Watch(ctx context.Context, fn func(Frame)) error
}

// LoginResponse is the reply to a successful sign-in.
type LoginResponse struct {
	Success bool   `json:"success"`
	User    User   `json:"user"`
	Token   string `json:"token"`
}

// User is the public view of a session.
type User struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// HealthResponse is the liveness probe reply.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Uptime  string `json:"uptime"`
}

// ReadyResponse is the readiness probe reply.
type ReadyResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// StatusDataResponse is the public process summary.
type StatusDataResponse struct {
	StartedAt  string `json:"startedAt"`
	ServerTime string `json:"serverTime"`
	Uptime     struct {
		Seconds float64 `json:"seconds"`
		Human   string  `json:"human"`
	} `json:"uptime"`
	GoVersion string `json:"goVersion"`
	Platform  string `json:"platform"`
	Hostname  string `json:"hostname"`
	Memory    string `json:"memory"`
	Version   string `json:"version"`
}

// StatusResponse is the authenticated status summary.
type StatusResponse struct {
	CurrentUser User   `json:"currentUser"`
	Uptime      string `json:"uptime"`
	GoVersion   string `json:"goVersion"`
	Platform    string `json:"platform"`
	Version     string `json:"version"`
}

// SystemResponse is the host resource snapshot.
type SystemResponse struct {
	CPUPercent float64 `json:"cpuPercent"`
	MemoryUsed uint64  `json:"memoryUsed"`
	TotalMem   uint64  `json:"totalMem"`
	FreeMem    uint64  `json:"freeMem"`
	GoVersion  string  `json:"goVersion"`
	Platform   string  `json:"platform"`
}

// LogEntry is one console log line.
type LogEntry struct {
	Time    string `json:"time"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

// AnalyticsResponse is the analytics snapshot.
type AnalyticsResponse struct {
	ActiveUsers       []string `json:"activeUsers"`
	ActiveConnections int      `json:"activeConnections"`
	TotalMessages     uint64   `json:"totalMessages"`
	Uptime            string   `json:"uptime"`
	UptimeSeconds     int64    `json:"uptimeSeconds"`
}
