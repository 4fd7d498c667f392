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

// Package analytics aggregates console counters and publishes them on a
// fixed schedule.
package analytics

import (
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
	"go.opentelemetry.io/otel/metric"

	"github.com/retr0h/botconsole/internal/event"
)

// Registry lists the identities of live connections.
type Registry interface {
	Snapshot() []string
}

// Snapshot is the analytics payload. It is derived on demand and never
// persisted.
type Snapshot struct {
	ActiveUsers       []string `json:"activeUsers"`
	ActiveConnections int      `json:"activeConnections"`
	TotalMessages     uint64   `json:"totalMessages"`
	Uptime            string   `json:"uptime"`
	UptimeSeconds     int64    `json:"uptimeSeconds"`
}

// Aggregator owns the message counter and the analytics schedule.
type Aggregator struct {
	logger    *slog.Logger
	registry  Registry
	publisher event.Publisher
	interval  time.Duration
	startedAt time.Time

	messages atomic.Uint64
	cron     *cron.Cron

	recorded metric.Int64Counter
}
