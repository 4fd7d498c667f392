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

// Package hub tracks live connections and fans events out to them.
package hub

import (
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel/metric"

	"github.com/retr0h/botconsole/internal/authtoken"
	"github.com/retr0h/botconsole/internal/event"
)

// DefaultQueueSize is the per-connection send buffer.
const DefaultQueueSize = 256

// Anonymous is reported for connections with no bound identity.
const Anonymous = "anonymous"

// Client is one registered live connection.
type Client struct {
	// ID uniquely identifies the connection.
	ID string
	// Identity is the session identity bound at handshake.
	Identity string
	// Role is the session role bound at handshake.
	Role authtoken.Role
	// SessionID is the session the connection was opened with.
	SessionID string

	send chan event.Event
}

// Hub is the connection registry and event bus. Writers and publishes
// take the write lock, so every client observes events in publish order;
// Count and Snapshot only read.
type Hub struct {
	logger    *slog.Logger
	queueSize int

	mu      sync.RWMutex
	clients map[string]*Client

	published   metric.Int64Counter
	dropped     metric.Int64Counter
	connections metric.Int64UpDownCounter
}

// Option configures a Hub.
type Option func(*Hub)

// WithQueueSize sets the per-connection send buffer.
func WithQueueSize(
	n int,
) Option {
	return func(h *Hub) {
		if n > 0 {
			h.queueSize = n
		}
	}
}
