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

package control

import (
	"context"
	"log/slog"

	"github.com/retr0h/botconsole/internal/session"
)

// Controller executes owner control-plane commands.
type Controller interface {
	Broadcast(ctx context.Context, sess session.Session, text string) error
	ForceLogout(ctx context.Context, sess session.Session, target string) (int, error)
	Restart(ctx context.Context, sess session.Session) error
}

// Control implementation of the control-plane API operations.
type Control struct {
	logger     *slog.Logger
	controller Controller
}

// BroadcastRequest is the body of POST /api/broadcast.
type BroadcastRequest struct {
	Message string `json:"message"`
}

// ForceLogoutRequest is the body of POST /api/force-logout.
type ForceLogoutRequest struct {
	Target string `json:"target"`
}

// ForceLogoutResponse reports how many sessions were revoked.
type ForceLogoutResponse struct {
	Success bool `json:"success"`
	Revoked int  `json:"revoked"`
}

// RestartResponse acknowledges a scheduled restart.
type RestartResponse struct {
	Restarting bool `json:"restarting"`
}
