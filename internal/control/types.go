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

// Package control executes owner-only console commands.
package control

import (
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/retr0h/botconsole/internal/announcement"
	"github.com/retr0h/botconsole/internal/event"
	"github.com/retr0h/botconsole/internal/logstore"
)

// ErrValidation is returned when a command argument is rejected. No state
// changes and no audit entry is written.
var ErrValidation = errors.New("validation error")

// SessionRevoker destroys sessions.
type SessionRevoker interface {
	RevokeIdentity(identity string) int
	RevokeAll() int
}

// LogStore records audit entries.
type LogStore interface {
	Append(message string, category string) logstore.Entry
	Clear(actor string) logstore.Entry
}

// Handler runs control-plane commands. Every command re-checks the
// caller's role before it has any effect.
type Handler struct {
	logger        *slog.Logger
	sessions      SessionRevoker
	logs          LogStore
	publisher     event.Publisher
	announcements announcement.Store

	restartDelay    time.Duration
	restartExitCode int
	restarting      atomic.Bool
}

// Option configures a Handler.
type Option func(*Handler)

// WithRestartDelay sets the pause between acknowledging a restart and
// exiting.
func WithRestartDelay(
	d time.Duration,
) Option {
	return func(h *Handler) {
		h.restartDelay = d
	}
}

// WithRestartExitCode sets the exit status used for a restart.
func WithRestartExitCode(
	code int,
) Option {
	return func(h *Handler) {
		h.restartExitCode = code
	}
}
