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
	"os"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/suite"

	"github.com/retr0h/botconsole/internal/announcement"
	"github.com/retr0h/botconsole/internal/authtoken"
	"github.com/retr0h/botconsole/internal/event"
	"github.com/retr0h/botconsole/internal/logstore"
	"github.com/retr0h/botconsole/internal/session"
)

type nopRevoker struct{}

func (nopRevoker) RevokeIdentity(string) int { return 0 }

func (nopRevoker) RevokeAll() int { return 0 }

type HandlerTestSuite struct {
	suite.Suite

	logs *logstore.Store
}

func (s *HandlerTestSuite) SetupTest() {
	s.logs = logstore.New(slog.Default(), afero.NewMemMapFs(), "/logs.json", 0, nil)
}

func (s *HandlerTestSuite) TearDownTest() {
	osExit = os.Exit
	afterFunc = time.AfterFunc
}

func (s *HandlerTestSuite) TestRestart() {
	tests := []struct {
		name      string
		opts      []Option
		wantDelay time.Duration
		wantCode  int
	}{
		{
			name:      "when defaults exits zero after one second",
			wantDelay: time.Second,
			wantCode:  0,
		},
		{
			name: "when configured uses the options",
			opts: []Option{
				WithRestartDelay(3 * time.Second),
				WithRestartExitCode(75),
			},
			wantDelay: 3 * time.Second,
			wantCode:  75,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			var (
				gotDelay  time.Duration
				scheduled func()
				exitCode  = -1
			)
			afterFunc = func(d time.Duration, f func()) *time.Timer {
				gotDelay = d
				scheduled = f
				return nil
			}
			osExit = func(code int) { exitCode = code }

			h := New(
				slog.Default(),
				nopRevoker{},
				s.logs,
				event.PublisherFunc(func(event.Event) {}),
				announcement.NewFileStore(slog.Default(), afero.NewMemMapFs(), "/a.json"),
				tt.opts...,
			)
			owner := session.Session{Identity: "alice", Role: authtoken.RoleOwner}

			s.NoError(h.Restart(context.Background(), owner))

			// Nothing exits until the timer fires.
			s.Equal(-1, exitCode)
			s.Equal(tt.wantDelay, gotDelay)
			s.Require().NotNil(scheduled)

			// A second request while pending is ignored.
			scheduled = nil
			s.NoError(h.Restart(context.Background(), owner))
			s.Nil(scheduled)

			entries := s.logs.List(logstore.FilterAll)
			s.Require().Len(entries, 1)
			s.Equal("alice requested a restart", entries[0].Message)

			afterFunc = time.AfterFunc
		})
	}
}

func (s *HandlerTestSuite) TestRestartExits() {
	exited := make(chan int, 1)
	osExit = func(code int) { exited <- code }
	afterFunc = func(_ time.Duration, f func()) *time.Timer {
		f()
		return nil
	}

	h := New(
		slog.Default(),
		nopRevoker{},
		s.logs,
		event.PublisherFunc(func(event.Event) {}),
		nil,
		WithRestartExitCode(3),
	)

	s.NoError(h.Restart(
		context.Background(),
		session.Session{Identity: "alice", Role: authtoken.RoleOwner},
	))
	s.Equal(3, <-exited)
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
