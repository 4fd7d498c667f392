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
	"fmt"
	"log/slog"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/retr0h/botconsole/internal/api/common"
	"github.com/retr0h/botconsole/internal/control"
	"github.com/retr0h/botconsole/internal/event"
	"github.com/retr0h/botconsole/internal/hub"
	"github.com/retr0h/botconsole/internal/session"
)

// GetWS upgrades the request and serves the live channel until either side
// closes it. The connection is bound to the handshake session.
func (l *Live) GetWS(
	c echo.Context,
) error {
	sess, ok := common.SessionFrom(c)
	if !ok {
		return common.JSONError(c, session.ErrUnauthenticated)
	}

	conn, err := l.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// The upgrader has already written the HTTP error.
		l.logger.Warn("websocket upgrade failed", slog.String("error", err.Error()))

		return nil
	}

	client := l.registry.Register(sess.Identity, sess.Role, sess.ID)
	logger := l.logger.With(
		slog.String("connection", client.ID),
		slog.String("identity", sess.Identity),
	)
	logger.Info("live connection opened")

	done := make(chan struct{})
	go func() {
		defer close(done)
		l.writePump(conn, client, logger)
	}()

	l.readPump(c.Request().Context(), conn, client, sess.ID, logger)

	l.registry.Unregister(client)
	<-done
	logger.Info("live connection closed")

	return nil
}

// writePump drains the client's queue onto the socket. It owns every write
// to conn. A forced-logout frame ends the connection once delivered.
func (l *Live) writePump(
	conn *websocket.Conn,
	client *hub.Client,
	logger *slog.Logger,
) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = conn.Close()
	}()

	for {
		select {
		case e, ok := <-client.Events():
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := conn.WriteJSON(e.Frame()); err != nil {
				logger.Debug("live write failed", slog.String("error", err.Error()))
				return
			}

			if e.Kind == event.KindForcedLogoutAll || e.Kind == event.KindForcedLogoutUser {
				_ = conn.WriteMessage(
					websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "logged out"),
				)
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump handles inbound command frames until the socket fails.
func (l *Live) readPump(
	ctx context.Context,
	conn *websocket.Conn,
	client *hub.Client,
	sessionID string,
	logger *slog.Logger,
) {
	conn.SetReadLimit(maxFrameSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(
				err,
				websocket.CloseGoingAway,
				websocket.CloseNormalClosure,
			) {
				logger.Debug("live read failed", slog.String("error", err.Error()))
			}

			return
		}

		var frame inbound
		if err := json.Unmarshal(data, &frame); err != nil {
			l.reject(client, fmt.Errorf("%w: malformed frame", control.ErrValidation))
			continue
		}

		// Commands run against the live session, not the handshake.
		sess, err := l.sessions.Lookup(sessionID)
		if err != nil {
			l.reject(client, err)
			return
		}

		if err := l.dispatch(ctx, sess, frame); err != nil {
			logger.Info(
				"live command rejected",
				slog.String("command", frame.Event),
				slog.String("error", err.Error()),
			)
			l.reject(client, err)
		}
	}
}

func (l *Live) dispatch(
	ctx context.Context,
	sess session.Session,
	frame inbound,
) error {
	var arg string
	if len(frame.Data) > 0 {
		if err := json.Unmarshal(frame.Data, &arg); err != nil {
			return fmt.Errorf("%w: data must be a string", control.ErrValidation)
		}
	}

	switch frame.Event {
	case event.CommandOwnerBroadcast:
		return l.controller.Broadcast(ctx, sess, arg)
	case event.CommandOwnerForceLogout:
		_, err := l.controller.ForceLogout(ctx, sess, arg)
		return err
	default:
		return fmt.Errorf("%w: unknown command %q", control.ErrValidation, frame.Event)
	}
}

// reject queues an error frame for the sender only.
func (l *Live) reject(
	client *hub.Client,
	err error,
) {
	l.registry.Send(client, event.Event{
		Kind: event.KindError,
		Data: err.Error(),
	})
}
