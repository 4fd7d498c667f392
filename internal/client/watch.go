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

package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/retr0h/botconsole/internal/telemetry"
)

var dialer = websocket.DefaultDialer

// Watch opens the live channel and calls fn for every frame until ctx is
// cancelled or the server closes the connection. A forced logout frame
// ends the watch without error.
func (c *Client) Watch(
	ctx context.Context,
	fn func(Frame),
) error {
	header := http.Header{}
	if token := c.Token(); token != "" {
		header.Set("Authorization", "Bearer "+token)
	}
	telemetry.InjectTraceContextToHeader(ctx, header)

	conn, resp, err := dialer.DialContext(ctx, liveURL(c.baseURL), header)
	if err != nil {
		if resp != nil {
			return &Error{StatusCode: resp.StatusCode, Message: "live channel refused"}
		}

		return fmt.Errorf("dialing live channel: %w", err)
	}
	defer func() { _ = conn.Close() }()

	stop := context.AfterFunc(ctx, func() {
		_ = conn.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			deadline(),
		)
		_ = conn.Close()
	})
	defer stop()

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil || websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				return nil
			}

			return fmt.Errorf("reading live channel: %w", err)
		}

		var frame Frame
		if err := json.Unmarshal(raw, &frame); err != nil {
			c.logger.Warn("skipping malformed frame", slog.String("error", err.Error()))
			continue
		}

		fn(frame)

		if frame.Event == "forceLogout" || frame.Event == "forceLogoutUser" {
			return nil
		}
	}
}

// Command sends a single command frame over a fresh live connection.
func (c *Client) Command(
	ctx context.Context,
	name string,
	data string,
) error {
	header := http.Header{}
	if token := c.Token(); token != "" {
		header.Set("Authorization", "Bearer "+token)
	}

	conn, resp, err := dialer.DialContext(ctx, liveURL(c.baseURL), header)
	if err != nil {
		if resp != nil {
			return &Error{StatusCode: resp.StatusCode, Message: "live channel refused"}
		}

		return fmt.Errorf("dialing live channel: %w", err)
	}
	defer func() { _ = conn.Close() }()

	if err := conn.WriteJSON(Frame{Event: name, Data: data}); err != nil {
		return fmt.Errorf("sending command: %w", err)
	}

	return conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		deadline(),
	)
}

// IsForbidden reports whether err is a 403 from the console.
func IsForbidden(
	err error,
) bool {
	var apiErr *Error

	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusForbidden
}

// IsUnauthorized reports whether err is a 401 from the console.
func IsUnauthorized(
	err error,
) bool {
	var apiErr *Error

	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

func deadline() time.Time {
	return time.Now().Add(5 * time.Second)
}

func liveURL(
	base string,
) string {
	switch {
	case strings.HasPrefix(base, "https://"):
		return "wss://" + strings.TrimPrefix(base, "https://") + "/ws"
	case strings.HasPrefix(base, "http://"):
		return "ws://" + strings.TrimPrefix(base, "http://") + "/ws"
	default:
		return base + "/ws"
	}
}
