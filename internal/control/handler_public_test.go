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

package control_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/suite"

	"github.com/retr0h/botconsole/internal/announcement"
	"github.com/retr0h/botconsole/internal/authtoken"
	"github.com/retr0h/botconsole/internal/control"
	"github.com/retr0h/botconsole/internal/event"
	"github.com/retr0h/botconsole/internal/logstore"
	"github.com/retr0h/botconsole/internal/session"
)

type fakeRevoker struct {
	all        int
	identities []string
}

func (f *fakeRevoker) RevokeIdentity(
	identity string,
) int {
	f.identities = append(f.identities, identity)

	return 1
}

func (f *fakeRevoker) RevokeAll() int {
	f.all++

	return 3
}

var (
	owner     = session.Session{ID: "s1", Identity: "alice", Role: authtoken.RoleOwner}
	admin     = session.Session{ID: "s2", Identity: "bob", Role: authtoken.RoleAdmin}
	anonymous = session.Session{}
)

type HandlerPublicTestSuite struct {
	suite.Suite

	ctx           context.Context
	revoker       *fakeRevoker
	logs          *logstore.Store
	announcements *announcement.FileStore
	published     []event.Event
	handler       *control.Handler
}

func (s *HandlerPublicTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.revoker = &fakeRevoker{}
	s.published = nil
	appFs := afero.NewMemMapFs()
	s.logs = logstore.New(slog.Default(), appFs, "/logs.json", 0, nil)
	s.announcements = announcement.NewFileStore(slog.Default(), appFs, "/announcement.json")
	s.handler = control.New(
		slog.Default(),
		s.revoker,
		s.logs,
		event.PublisherFunc(func(e event.Event) {
			s.published = append(s.published, e)
		}),
		s.announcements,
	)
}

func (s *HandlerPublicTestSuite) audit() []string {
	entries := s.logs.List(logstore.FilterAll)
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Message)
	}

	return out
}

func (s *HandlerPublicTestSuite) TestBroadcast() {
	tests := []struct {
		name       string
		sess       session.Session
		text       string
		wantErr    error
		wantEvents []event.Event
		wantAudit  []string
	}{
		{
			name: "when owner broadcasts",
			sess: owner,
			text: "  server maintenance at noon ",
			wantEvents: []event.Event{
				{Kind: event.KindOwnerBroadcast, Data: "server maintenance at noon"},
			},
			wantAudit: []string{"alice broadcast: server maintenance at noon"},
		},
		{
			name:      "when text is empty",
			sess:      owner,
			text:      "",
			wantErr:   control.ErrValidation,
			wantAudit: []string{},
		},
		{
			name:      "when text is whitespace",
			sess:      owner,
			text:      " \t\n ",
			wantErr:   control.ErrValidation,
			wantAudit: []string{},
		},
		{
			name:      "when admin broadcasts",
			sess:      admin,
			text:      "hello",
			wantErr:   session.ErrForbidden,
			wantAudit: []string{},
		},
		{
			name:      "when anonymous broadcasts",
			sess:      anonymous,
			text:      "hello",
			wantErr:   session.ErrForbidden,
			wantAudit: []string{},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			err := s.handler.Broadcast(s.ctx, tt.sess, tt.text)

			if tt.wantErr != nil {
				s.ErrorIs(err, tt.wantErr)
			} else {
				s.NoError(err)
			}
			s.Equal(tt.wantEvents, s.published)
			s.Equal(tt.wantAudit, s.audit())
		})
	}
}

func (s *HandlerPublicTestSuite) TestForceLogout() {
	tests := []struct {
		name           string
		sess           session.Session
		target         string
		wantErr        error
		wantRevoked    int
		wantAll        int
		wantIdentities []string
		wantEvents     []event.Event
		wantAudit      []string
	}{
		{
			name:        "when owner logs out all",
			sess:        owner,
			target:      "all",
			wantRevoked: 3,
			wantAll:     1,
			wantEvents:  []event.Event{event.ForAll()},
			wantAudit:   []string{"alice forced logout of all users"},
		},
		{
			name:           "when owner logs out one identity",
			sess:           owner,
			target:         "bob",
			wantRevoked:    1,
			wantIdentities: []string{"bob"},
			wantEvents:     []event.Event{event.ForUser("bob")},
			wantAudit:      []string{"alice forced logout of bob"},
		},
		{
			name:      "when target is empty",
			sess:      owner,
			target:    "  ",
			wantErr:   control.ErrValidation,
			wantAudit: []string{},
		},
		{
			name:      "when target is malformed",
			sess:      owner,
			target:    "bob smith",
			wantErr:   control.ErrValidation,
			wantAudit: []string{},
		},
		{
			name:      "when admin forces logout",
			sess:      admin,
			target:    "all",
			wantErr:   session.ErrForbidden,
			wantAudit: []string{},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			revoked, err := s.handler.ForceLogout(s.ctx, tt.sess, tt.target)

			if tt.wantErr != nil {
				s.ErrorIs(err, tt.wantErr)
			} else {
				s.NoError(err)
			}
			s.Equal(tt.wantRevoked, revoked)
			s.Equal(tt.wantAll, s.revoker.all)
			s.Equal(tt.wantIdentities, s.revoker.identities)
			s.Equal(tt.wantEvents, s.published)
			s.Equal(tt.wantAudit, s.audit())
		})
	}
}

func (s *HandlerPublicTestSuite) TestClearLogs() {
	tests := []struct {
		name      string
		sess      session.Session
		wantErr   error
		wantAudit []string
	}{
		{
			name:      "when owner clears",
			sess:      owner,
			wantAudit: []string{"alice cleared the logs"},
		},
		{
			name:      "when admin clears",
			sess:      admin,
			wantErr:   session.ErrForbidden,
			wantAudit: []string{"one", "two"},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			s.logs.Append("one", logstore.CategoryInfo)
			s.logs.Append("two", logstore.CategoryAuth)

			err := s.handler.ClearLogs(s.ctx, tt.sess)

			if tt.wantErr != nil {
				s.ErrorIs(err, tt.wantErr)
			} else {
				s.NoError(err)
			}
			s.Equal(tt.wantAudit, s.audit())
		})
	}
}

func (s *HandlerPublicTestSuite) TestUpdateAnnouncement() {
	tests := []struct {
		name      string
		sess      session.Session
		input     announcement.Announcement
		wantErr   error
		wantStore announcement.Announcement
		wantAudit []string
	}{
		{
			name:      "when owner updates",
			sess:      owner,
			input:     announcement.Announcement{Title: "New", Message: "Body"},
			wantStore: announcement.Announcement{Title: "New", Message: "Body"},
			wantAudit: []string{"alice updated the announcement"},
		},
		{
			name:      "when title is missing",
			sess:      owner,
			input:     announcement.Announcement{Message: "Body"},
			wantErr:   control.ErrValidation,
			wantAudit: []string{},
		},
		{
			name:      "when admin updates",
			sess:      admin,
			input:     announcement.Announcement{Title: "New"},
			wantErr:   session.ErrForbidden,
			wantAudit: []string{},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			err := s.handler.UpdateAnnouncement(s.ctx, tt.sess, tt.input)

			if tt.wantErr != nil {
				s.ErrorIs(err, tt.wantErr)
			} else {
				s.NoError(err)
			}

			got, err := s.announcements.Get(s.ctx)
			s.NoError(err)
			s.Equal(tt.wantStore, got)
			s.Equal(tt.wantAudit, s.audit())
		})
	}
}

func (s *HandlerPublicTestSuite) TestRestartForbidden() {
	err := s.handler.Restart(s.ctx, admin)

	s.ErrorIs(err, session.ErrForbidden)
	s.Empty(s.audit())
}

func (s *HandlerPublicTestSuite) TestUpdateAnnouncementWhenWriteFails() {
	announcements := announcement.NewFileStore(
		slog.Default(),
		afero.NewReadOnlyFs(afero.NewMemMapFs()),
		"/announcement.json",
	)
	h := control.New(
		slog.Default(),
		s.revoker,
		s.logs,
		event.PublisherFunc(func(event.Event) {}),
		announcements,
	)
	want := announcement.Announcement{Title: "Maintenance", Message: "Tonight"}

	err := h.UpdateAnnouncement(s.ctx, owner, want)

	s.NoError(err)
	got, err := announcements.Get(s.ctx)
	s.NoError(err)
	s.Equal(want, got)
	s.Equal([]string{"alice updated the announcement"}, s.audit())
}

func TestHandlerPublicTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerPublicTestSuite))
}
