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

package analytics

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"

	"github.com/retr0h/botconsole/internal/event"
)

// New factory to create a new instance. Uptime is measured from the call.
func New(
	logger *slog.Logger,
	registry Registry,
	publisher event.Publisher,
	interval time.Duration,
) *Aggregator {
	a := &Aggregator{
		logger:    logger,
		registry:  registry,
		publisher: publisher,
		interval:  interval,
		startedAt: time.Now(),
		cron:      cron.New(),
	}

	meter := otel.Meter("github.com/retr0h/botconsole/internal/analytics")
	a.recorded, _ = meter.Int64Counter(
		"botconsole.messages.recorded",
		metric.WithDescription("Chat messages reported by the bot."),
	)

	return a
}

// RecordMessages adds n to the total message counter.
func (a *Aggregator) RecordMessages(
	n uint64,
) uint64 {
	a.recorded.Add(context.Background(), int64(n))

	return a.messages.Add(n)
}

// StartedAt returns when the aggregator was created.
func (a *Aggregator) StartedAt() time.Time {
	return a.startedAt
}

// Uptime returns the time elapsed since start.
func (a *Aggregator) Uptime() time.Duration {
	return time.Since(a.startedAt)
}

// Snapshot computes the current analytics.
func (a *Aggregator) Snapshot() Snapshot {
	users := a.registry.Snapshot()
	uptime := a.Uptime()

	return Snapshot{
		ActiveUsers:       users,
		ActiveConnections: len(users),
		TotalMessages:     a.messages.Load(),
		Uptime:            FormatUptime(uptime),
		UptimeSeconds:     int64(uptime.Seconds()),
	}
}

// Tick publishes one analytics event.
func (a *Aggregator) Tick() {
	a.publisher.Publish(event.Event{
		Kind: event.KindAnalyticsTick,
		Data: a.Snapshot(),
	})
}

// Start schedules Tick every interval without blocking.
func (a *Aggregator) Start() {
	spec := fmt.Sprintf("@every %s", a.interval)
	if _, err := a.cron.AddFunc(spec, a.Tick); err != nil {
		a.logger.Error(
			"failed to schedule analytics",
			slog.String("spec", spec),
			slog.String("error", err.Error()),
		)

		return
	}

	a.logger.Info("starting analytics", slog.Duration("interval", a.interval))
	a.cron.Start()
}

// Stop halts the schedule and waits for a running tick to finish.
func (a *Aggregator) Stop(
	ctx context.Context,
) {
	a.logger.Info("stopping analytics")

	done := a.cron.Stop()
	select {
	case <-done.Done():
		a.logger.Info("analytics stopped")
	case <-ctx.Done():
		a.logger.Warn("analytics stop timed out")
	}
}

// FormatUptime renders d as "<days>d <hours>h <minutes>m <seconds>s".
func FormatUptime(
	d time.Duration,
) string {
	if d < 0 {
		d = 0
	}

	total := int64(d.Seconds())
	days := total / 86400
	hours := (total % 86400) / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	return fmt.Sprintf("%dd %dh %dm %ds", days, hours, minutes, seconds)
}
