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

package hub

import (
	"context"
	"log/slog"
	"sort"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/retr0h/botconsole/internal/authtoken"
	"github.com/retr0h/botconsole/internal/event"
)

// New factory to create a new instance.
func New(
	logger *slog.Logger,
	opts ...Option,
) *Hub {
	h := &Hub{
		logger:    logger,
		queueSize: DefaultQueueSize,
		clients:   make(map[string]*Client),
	}

	for _, opt := range opts {
		opt(h)
	}

	meter := otel.Meter("github.com/retr0h/botconsole/internal/hub")
	h.published, _ = meter.Int64Counter(
		"botconsole.hub.events.published",
		metric.WithDescription("Events delivered to live connections."),
	)
	h.dropped, _ = meter.Int64Counter(
		"botconsole.hub.events.dropped",
		metric.WithDescription("Events dropped because a connection queue was full."),
	)
	h.connections, _ = meter.Int64UpDownCounter(
		"botconsole.hub.connections",
		metric.WithDescription("Registered live connections."),
	)

	return h
}

// Events returns the connection's delivery queue. It is closed on
// Unregister.
func (c *Client) Events() <-chan event.Event {
	return c.send
}

// Register adds a connection and announces the new connection set.
func (h *Hub) Register(
	identity string,
	role authtoken.Role,
	sessionID string,
) *Client {
	c := &Client{
		ID:        uuid.NewString(),
		Identity:  identity,
		Role:      role,
		SessionID: sessionID,
		send:      make(chan event.Event, h.queueSize),
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[c.ID] = c
	h.connections.Add(context.Background(), 1)

	h.logger.Debug(
		"connection registered",
		slog.String("id", c.ID),
		slog.String("identity", c.Identity),
		slog.Int("connections", len(h.clients)),
	)

	h.deliverLocked(h.activeUsersLocked())

	return c
}

// Unregister removes a connection, closes its queue, and announces the new
// connection set. Unregistering twice is a no-op.
func (h *Hub) Unregister(
	c *Client,
) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[c.ID]; !ok {
		return
	}

	delete(h.clients, c.ID)
	close(c.send)
	h.connections.Add(context.Background(), -1)

	h.logger.Debug(
		"connection unregistered",
		slog.String("id", c.ID),
		slog.String("identity", c.Identity),
		slog.Int("connections", len(h.clients)),
	)

	h.deliverLocked(h.activeUsersLocked())
}

// Count returns the number of registered connections.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.clients)
}

// Snapshot returns the identity of every registered connection, one entry
// per connection, sorted.
func (h *Hub) Snapshot() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.snapshotLocked()
}

// Publish delivers e to every connection registered now. Delivery never
// blocks: a connection whose queue is full misses the event.
func (h *Hub) Publish(
	e event.Event,
) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.deliverLocked(e)
}

// Send queues e for a single connection, bypassing identity targeting. It
// reports false when the connection is gone or its queue is full.
func (h *Hub) Send(
	c *Client,
	e event.Event,
) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[c.ID]; !ok {
		return false
	}

	select {
	case c.send <- e:
		return true
	default:
		h.dropped.Add(
			context.Background(),
			1,
			metric.WithAttributes(attribute.String("kind", string(e.Kind))),
		)

		return false
	}
}

func (h *Hub) deliverLocked(
	e event.Event,
) {
	kind := attribute.String("kind", string(e.Kind))

	for _, c := range h.clients {
		if !e.Delivers(c.Identity) {
			continue
		}

		select {
		case c.send <- e:
			h.published.Add(context.Background(), 1, metric.WithAttributes(kind))
		default:
			h.dropped.Add(context.Background(), 1, metric.WithAttributes(kind))
			h.logger.Warn(
				"dropping event for slow connection",
				slog.String("kind", string(e.Kind)),
				slog.String("id", c.ID),
				slog.String("identity", c.Identity),
			)
		}
	}
}

func (h *Hub) snapshotLocked() []string {
	users := make([]string, 0, len(h.clients))
	for _, c := range h.clients {
		identity := c.Identity
		if identity == "" {
			identity = Anonymous
		}
		users = append(users, identity)
	}
	sort.Strings(users)

	return users
}

func (h *Hub) activeUsersLocked() event.Event {
	return event.Event{
		Kind: event.KindActiveConnections,
		Data: h.snapshotLocked(),
	}
}
