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

package metrics_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	"github.com/retr0h/botconsole/internal/api"
	"github.com/retr0h/botconsole/internal/api/metrics"
	"github.com/retr0h/botconsole/internal/config"
	"github.com/retr0h/botconsole/internal/telemetry"
)

type MetricsGetPublicTestSuite struct {
	suite.Suite

	scrape   http.Handler
	shutdown func(context.Context) error
}

func (s *MetricsGetPublicTestSuite) SetupTest() {
	handler, _, shutdown, err := telemetry.InitMeter(config.MetricsConfig{})
	s.Require().NoError(err)

	s.scrape = handler
	s.shutdown = shutdown
}

func (s *MetricsGetPublicTestSuite) TearDownTest() {
	_ = s.shutdown(context.Background())
}

func (s *MetricsGetPublicTestSuite) TestRegisterHandler() {
	tests := []struct {
		name     string
		path     string
		wantPath string
	}{
		{
			name:     "when path empty mounts at the default",
			path:     "",
			wantPath: metrics.DefaultPath,
		},
		{
			name:     "when path given mounts there",
			path:     "/ops/metrics",
			wantPath: "/ops/metrics",
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			e := echo.New()
			metrics.New(s.scrape, tc.path).RegisterHandler()(e)

			s.Require().Len(e.Routes(), 1)
			s.Equal(http.MethodGet, e.Routes()[0].Method)
			s.Equal(tc.wantPath, e.Routes()[0].Path)
		})
	}
}

func (s *MetricsGetPublicTestSuite) TestScrapeWithoutSession() {
	a := api.New(config.Config{}, slog.Default(), nil)
	a.RegisterHandlers(a.GetMetricsHandler(s.scrape, ""))

	rec := httptest.NewRecorder()
	a.Echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, metrics.DefaultPath, nil))

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Header().Get(echo.HeaderContentType), "text/plain")
	s.Contains(rec.Body.String(), "process_cpu_seconds_total")
}

func TestMetricsGetPublicTestSuite(t *testing.T) {
	suite.Run(t, new(MetricsGetPublicTestSuite))
}
