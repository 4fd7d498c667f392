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
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/retr0h/botconsole/internal/analytics"
	"github.com/retr0h/botconsole/internal/sysinfo"
)

// unknown is reported when a host reading is unavailable.
const unknown = "unknown"

// GetStatusData returns public process and host information.
func (s *Status) GetStatusData(
	c echo.Context,
) error {
	ctx := c.Request().Context()
	uptime := s.clock.Uptime()

	hostname, err := s.provider.Hostname(ctx)
	if err != nil {
		s.logger.Warn("reading hostname", slog.String("error", err.Error()))
		hostname = unknown
	}

	memory := unknown
	if rss, err := s.provider.ProcessMemory(ctx); err != nil {
		s.logger.Warn("reading process memory", slog.String("error", err.Error()))
	} else {
		memory = fmt.Sprintf("%.2f MB", float64(rss)/1024/1024)
	}

	return c.JSON(http.StatusOK, DataResponse{
		StartedAt:  s.clock.StartedAt().Format(time.RFC3339),
		ServerTime: time.Now().Format(time.RFC3339),
		Uptime: Uptime{
			Seconds: math.Round(uptime.Seconds()*100) / 100,
			Human:   analytics.FormatUptime(uptime),
		},
		GoVersion: runtime.Version(),
		Platform:  sysinfo.Platform(),
		Hostname:  hostname,
		Memory:    memory,
		Version:   s.version,
	})
}
