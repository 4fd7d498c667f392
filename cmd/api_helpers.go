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

package cmd

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/afero"

	"github.com/retr0h/botconsole/internal/analytics"
	"github.com/retr0h/botconsole/internal/announcement"
	"github.com/retr0h/botconsole/internal/api"
	apiAnalytics "github.com/retr0h/botconsole/internal/api/analytics"
	apiAnnouncement "github.com/retr0h/botconsole/internal/api/announcement"
	apiControl "github.com/retr0h/botconsole/internal/api/control"
	"github.com/retr0h/botconsole/internal/api/health"
	"github.com/retr0h/botconsole/internal/api/live"
	"github.com/retr0h/botconsole/internal/api/login"
	"github.com/retr0h/botconsole/internal/api/logs"
	"github.com/retr0h/botconsole/internal/api/status"
	"github.com/retr0h/botconsole/internal/auth"
	"github.com/retr0h/botconsole/internal/authtoken"
	"github.com/retr0h/botconsole/internal/cli"
	"github.com/retr0h/botconsole/internal/control"
	"github.com/retr0h/botconsole/internal/hub"
	"github.com/retr0h/botconsole/internal/logstore"
	"github.com/retr0h/botconsole/internal/session"
	"github.com/retr0h/botconsole/internal/sysinfo"
)

// ServerManager responsible for Server operations.
type ServerManager interface {
	cli.Lifecycle
	// GetHealthHandler returns health handler for registration.
	GetHealthHandler(
		checker health.Checker,
		startTime time.Time,
		version string,
	) []func(e *echo.Echo)
	// GetMetricsHandler returns Prometheus metrics handler for registration.
	GetMetricsHandler(metricsHandler http.Handler, path string) []func(e *echo.Echo)
	// GetLoginHandler returns login handler for registration.
	GetLoginHandler(sessions login.SessionManager, recorder login.Recorder) []func(e *echo.Echo)
	// GetStatusHandler returns status handler for registration.
	GetStatusHandler(
		clock status.Clock,
		provider sysinfo.Provider,
		version string,
	) []func(e *echo.Echo)
	// GetSystemHandler returns system handler for registration.
	GetSystemHandler(provider sysinfo.Provider) []func(e *echo.Echo)
	// GetLogsHandler returns logs handler for registration.
	GetLogsHandler(lister logs.Lister, clearer logs.Clearer) []func(e *echo.Echo)
	// GetAnnouncementHandler returns announcement handler for registration.
	GetAnnouncementHandler(
		store announcement.Store,
		updater apiAnnouncement.Updater,
	) []func(e *echo.Echo)
	// GetControlHandler returns control handler for registration.
	GetControlHandler(controller apiControl.Controller) []func(e *echo.Echo)
	// GetAnalyticsHandler returns analytics handler for registration.
	GetAnalyticsHandler(aggregator apiAnalytics.Aggregator) []func(e *echo.Echo)
	// GetLiveHandler returns live channel handler for registration.
	GetLiveHandler(
		registry live.Registry,
		sessions live.SessionLookup,
		controller live.Controller,
	) []func(e *echo.Echo)
	// RegisterHandlers registers a list of handlers with the Echo instance.
	RegisterHandlers(handlers []func(e *echo.Echo))
}

// consoleBundle holds the components created by setupConsole.
type consoleBundle struct {
	logs          *logstore.Store
	announcements *announcement.FileStore
	sessions      *session.Manager
	hub           *hub.Hub
	aggregator    *analytics.Aggregator
	controller    *control.Handler
	provider      sysinfo.Provider
}

// setupConsole builds the console components from appConfig and loads the
// persisted log snapshot.
func setupConsole(
	log *slog.Logger,
	fs afero.Fs,
) *consoleBundle {
	h := hub.New(log.With("component", "hub"))

	store := logstore.New(
		log.With("component", "logstore"),
		fs,
		appConfig.Storage.LogPath(),
		appConfig.Storage.Capacity(),
		h,
	)
	if err := store.Load(); err != nil {
		cli.LogFatal(log, "failed to load log snapshot", err, "path", appConfig.Storage.LogPath())
	}

	announcements := announcement.NewFileStore(
		log.With("component", "announcement"),
		fs,
		appConfig.Storage.AnnouncementPath(),
	)

	sessions := session.New(
		log.With("component", "session"),
		auth.NewConfigAuthenticator(log, appConfig.Server.Security.Users),
		authtoken.New(log),
		appConfig.Server.Security.SigningKey,
		appConfig.Server.Security.TTL(),
	)

	aggregator := analytics.New(
		log.With("component", "analytics"),
		h,
		h,
		appConfig.Analytics.Every(),
	)

	controller := control.New(
		log.With("component", "control"),
		sessions,
		store,
		h,
		announcements,
		control.WithRestartDelay(appConfig.Control.Delay()),
		control.WithRestartExitCode(appConfig.Control.RestartExitCode),
	)

	return &consoleBundle{
		logs:          store,
		announcements: announcements,
		sessions:      sessions,
		hub:           h,
		aggregator:    aggregator,
		controller:    controller,
		provider:      sysinfo.NewGopsutil(),
	}
}

// setupAPIServer creates the HTTP server and registers every handler.
func setupAPIServer(
	log *slog.Logger,
	b *consoleBundle,
	version string,
	metricsHandler http.Handler,
	metricsPath string,
) ServerManager {
	sm := api.New(appConfig, log, b.sessions)

	checker := &health.StorageChecker{
		LogCheck:          b.logs.CheckHealth,
		AnnouncementCheck: b.announcements.CheckHealth,
	}

	registerAPIHandlers(sm, b, checker, version, metricsHandler, metricsPath)

	return sm
}

func registerAPIHandlers(
	sm ServerManager,
	b *consoleBundle,
	checker health.Checker,
	version string,
	metricsHandler http.Handler,
	metricsPath string,
) {
	startTime := time.Now()

	handlers := make([]func(e *echo.Echo), 0, 12)
	handlers = append(handlers, sm.GetHealthHandler(checker, startTime, version)...)
	handlers = append(handlers, sm.GetMetricsHandler(metricsHandler, metricsPath)...)
	handlers = append(handlers, sm.GetLoginHandler(b.sessions, b.logs)...)
	handlers = append(handlers, sm.GetStatusHandler(b.aggregator, b.provider, version)...)
	handlers = append(handlers, sm.GetSystemHandler(b.provider)...)
	handlers = append(handlers, sm.GetLogsHandler(b.logs, b.controller)...)
	handlers = append(handlers, sm.GetAnnouncementHandler(b.announcements, b.controller)...)
	handlers = append(handlers, sm.GetControlHandler(b.controller)...)
	handlers = append(handlers, sm.GetAnalyticsHandler(b.aggregator)...)
	handlers = append(handlers, sm.GetLiveHandler(b.hub, b.sessions, b.controller)...)

	sm.RegisterHandlers(handlers)
}
