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
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/retr0h/botconsole/internal/announcement"
	"github.com/retr0h/botconsole/internal/authtoken"
	"github.com/retr0h/botconsole/internal/event"
	"github.com/retr0h/botconsole/internal/logstore"
	"github.com/retr0h/botconsole/internal/session"
	"github.com/retr0h/botconsole/internal/validation"
)

// DefaultRestartDelay is used when no delay option is given.
const DefaultRestartDelay = time.Second

var (
	osExit    = os.Exit
	afterFunc = time.AfterFunc
)

// New factory to create a new instance.
func New(
	logger *slog.Logger,
	sessions SessionRevoker,
	logs LogStore,
	publisher event.Publisher,
	announcements announcement.Store,
	opts ...Option,
) *Handler {
	h := &Handler{
		logger:        logger,
		sessions:      sessions,
		logs:          logs,
		publisher:     publisher,
		announcements: announcements,
		restartDelay:  DefaultRestartDelay,
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Broadcast sends text to every live connection.
func (h *Handler) Broadcast(
	_ context.Context,
	sess session.Session,
	text string,
) error {
	if err := session.Authorize(sess, authtoken.RoleOwner); err != nil {
		return err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return fmt.Errorf("%w: broadcast message is empty", ErrValidation)
	}

	h.publisher.Publish(event.Event{
		Kind: event.KindOwnerBroadcast,
		Data: text,
	})
	h.logs.Append(
		fmt.Sprintf("%s broadcast: %s", sess.Identity, text),
		logstore.CategorySystem,
	)

	return nil
}

// ForceLogout destroys the sessions selected by target, which is either
// "all" or a single identity, and tells the affected connections. It
// returns the number of sessions destroyed.
func (h *Handler) ForceLogout(
	_ context.Context,
	sess session.Session,
	target string,
) (int, error) {
	if err := session.Authorize(sess, authtoken.RoleOwner); err != nil {
		return 0, err
	}

	target = strings.TrimSpace(target)
	if msg, ok := validation.Var(target, "required,logout_target"); !ok {
		return 0, fmt.Errorf("%w: %s", ErrValidation, msg)
	}

	var (
		revoked int
		audit   string
	)

	if target == validation.AllTargets {
		revoked = h.sessions.RevokeAll()
		h.publisher.Publish(event.ForAll())
		audit = fmt.Sprintf("%s forced logout of all users", sess.Identity)
	} else {
		revoked = h.sessions.RevokeIdentity(target)
		h.publisher.Publish(event.ForUser(target))
		audit = fmt.Sprintf("%s forced logout of %s", sess.Identity, target)
	}

	h.logs.Append(audit, logstore.CategorySystem)

	h.logger.Info(
		"forced logout",
		slog.String("actor", sess.Identity),
		slog.String("target", target),
		slog.Int("revoked", revoked),
	)

	return revoked, nil
}

// ClearLogs empties the log store.
func (h *Handler) ClearLogs(
	_ context.Context,
	sess session.Session,
) error {
	if err := session.Authorize(sess, authtoken.RoleOwner); err != nil {
		return err
	}

	h.logs.Clear(sess.Identity)

	return nil
}

// UpdateAnnouncement replaces the announcement.
func (h *Handler) UpdateAnnouncement(
	ctx context.Context,
	sess session.Session,
	a announcement.Announcement,
) error {
	if err := session.Authorize(sess, authtoken.RoleOwner); err != nil {
		return err
	}

	if err := h.announcements.Set(ctx, a); err != nil {
		if errors.Is(err, announcement.ErrInvalid) {
			return fmt.Errorf("%w: %w", ErrValidation, err)
		}

		return err
	}

	h.logs.Append(
		fmt.Sprintf("%s updated the announcement", sess.Identity),
		logstore.CategoryInfo,
	)

	return nil
}

// Restart schedules process exit after the restart delay so the caller's
// reply can be written first. Shutdown is not graceful. Repeated requests
// while a restart is pending are accepted and ignored.
func (h *Handler) Restart(
	_ context.Context,
	sess session.Session,
) error {
	if err := session.Authorize(sess, authtoken.RoleOwner); err != nil {
		return err
	}

	if !h.restarting.CompareAndSwap(false, true) {
		return nil
	}

	h.logs.Append(
		fmt.Sprintf("%s requested a restart", sess.Identity),
		logstore.CategorySystem,
	)

	h.logger.Warn(
		"restart requested",
		slog.String("actor", sess.Identity),
		slog.Duration("delay", h.restartDelay),
	)

	afterFunc(h.restartDelay, func() {
		h.logger.Warn("exiting for restart", slog.Int("code", h.restartExitCode))
		osExit(h.restartExitCode)
	})

	return nil
}
