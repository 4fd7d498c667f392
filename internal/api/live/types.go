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

package live

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/gorilla/websocket"

	"github.com/retr0h/botconsole/internal/authtoken"
	"github.com/retr0h/botconsole/internal/event"
	"github.com/retr0h/botconsole/internal/hub"
	"github.com/retr0h/botconsole/internal/session"
)

const (
	// writeWait bounds a single frame write.
	writeWait = 10 * time.Second
	// pongWait is how long the peer may stay silent.
	pongWait = 60 * time.Second
	// pingPeriod must be shorter than pongWait.
	pingPeriod = (pongWait * 9) / 10
	// maxFrameSize limits inbound command frames.
	maxFrameSize = 8 * 1024
)

// Registry tracks live connections.
type Registry interface {
	Register(identity string, role authtoken.Role, sessionID string) *hub.Client
	Unregister(c *hub.Client)
	Send(c *hub.Client, e event.Event) bool
}

// SessionLookup resolves a session by id.
type SessionLookup interface {
	Lookup(id string) (session.Session, error)
}

// Controller executes owner commands received on the live channel.
type Controller interface {
	Broadcast(ctx context.Context, sess session.Session, text string) error
	ForceLogout(ctx context.Context, sess session.Session, target string) (int, error)
}

// Live implementation of the live channel endpoint.
type Live struct {
	logger     *slog.Logger
	registry   Registry
	sessions   SessionLookup
	controller Controller
	upgrader   websocket.Upgrader
}

// inbound is a client-to-server command frame.
type inbound struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}
