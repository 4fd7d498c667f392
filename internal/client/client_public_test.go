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

package client_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"

	"github.com/retr0h/botconsole/internal/client"
	"github.com/retr0h/botconsole/internal/config"
)

type ClientPublicTestSuite struct {
	suite.Suite

	ctx      context.Context
	server   *httptest.Server
	sut      *client.Client
	lastAuth string
	lastBody map[string]any
}

func (s *ClientPublicTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.lastAuth = ""
	s.lastBody = nil

	upgrader := websocket.Upgrader{}
	mux := http.NewServeMux()

	writeJSON := func(w http.ResponseWriter, status int, body any) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}
	record := func(r *http.Request) {
		s.lastAuth = r.Header.Get("Authorization")
		if r.Body != nil {
			_ = json.NewDecoder(r.Body).Decode(&s.lastBody)
		}
	}

	mux.HandleFunc("POST /login", func(w http.ResponseWriter, r *http.Request) {
		record(r)
		if s.lastBody["password"] != "s3cret" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"user":    map[string]string{"username": "alice", "role": "Owner"},
			"token":   "tok-123",
		})
	})
	mux.HandleFunc("GET /logout", func(w http.ResponseWriter, r *http.Request) {
		record(r)
		http.Redirect(w, r, "/login", http.StatusFound)
	})
	mux.HandleFunc("GET /health/ready", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "not_ready",
			"error":  "log directory missing",
		})
	})
	mux.HandleFunc("GET /api/logs", func(w http.ResponseWriter, r *http.Request) {
		record(r)
		writeJSON(w, http.StatusOK, []map[string]string{
			{"time": "2026-01-01T00:00:00Z", "message": r.URL.Query().Get("type"), "type": "auth"},
		})
	})
	mux.HandleFunc("DELETE /api/logs", func(w http.ResponseWriter, r *http.Request) {
		record(r)
		writeJSON(w, http.StatusForbidden, map[string]string{"error": "forbidden: requires role Owner"})
	})
	mux.HandleFunc("POST /api/force-logout", func(w http.ResponseWriter, r *http.Request) {
		record(r)
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "revoked": 2})
	})
	mux.HandleFunc("POST /api/analytics/messages", func(w http.ResponseWriter, r *http.Request) {
		record(r)
		writeJSON(w, http.StatusOK, map[string]any{"totalMessages": 42})
	})
	mux.HandleFunc("GET /ws", func(w http.ResponseWriter, r *http.Request) {
		s.lastAuth = r.Header.Get("Authorization")
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer func() { _ = conn.Close() }()

		_ = conn.WriteJSON(map[string]any{"event": "broadcastMsg", "data": "hello"})
		_ = conn.WriteJSON(map[string]any{"event": "forceLogout", "data": "bye"})
		_, _, _ = conn.ReadMessage()
	})

	s.server = httptest.NewServer(mux)
	s.sut = client.New(slog.Default(), config.Client{
		URL:      s.server.URL + "/",
		Username: "alice",
		Password: "s3cret",
	})
}

func (s *ClientPublicTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *ClientPublicTestSuite) TestLogin() {
	got, err := s.sut.Login(s.ctx)

	s.Require().NoError(err)
	s.Equal("alice", got.User.Username)
	s.Equal("Owner", got.User.Role)
	s.Equal("tok-123", s.sut.Token())
	s.Empty(s.lastAuth)

	_, err = s.sut.GetLogs(s.ctx, "")
	s.Require().NoError(err)
	s.Equal("Bearer tok-123", s.lastAuth)
}

func (s *ClientPublicTestSuite) TestLoginInvalidCredentials() {
	sut := client.New(slog.Default(), config.Client{
		URL:      s.server.URL,
		Username: "alice",
		Password: "wrong",
	})

	_, err := sut.Login(s.ctx)

	s.Error(err)
	s.True(client.IsUnauthorized(err))
	s.Contains(err.Error(), "invalid credentials")
	s.Empty(sut.Token())
}

func (s *ClientPublicTestSuite) TestLogout() {
	s.sut.SetToken("tok-123")

	err := s.sut.Logout(s.ctx)

	s.NoError(err)
	s.Equal("Bearer tok-123", s.lastAuth)
	s.Empty(s.sut.Token())
}

func (s *ClientPublicTestSuite) TestGetHealthReadyNotReady() {
	got, err := s.sut.GetHealthReady(s.ctx)

	s.Require().NoError(err)
	s.Equal("not_ready", got.Status)
	s.Equal("log directory missing", got.Error)
}

func (s *ClientPublicTestSuite) TestGetLogs() {
	tests := []struct {
		name    string
		filter  string
		wantMsg string
	}{
		{
			name:    "when filter is set passes it as the type query",
			filter:  "auth",
			wantMsg: "auth",
		},
		{
			name:    "when filter is empty omits the query",
			filter:  "",
			wantMsg: "",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			got, err := s.sut.GetLogs(s.ctx, tt.filter)

			s.Require().NoError(err)
			s.Require().Len(got, 1)
			s.Equal(tt.wantMsg, got[0].Message)
		})
	}
}

func (s *ClientPublicTestSuite) TestClearLogsForbidden() {
	err := s.sut.ClearLogs(s.ctx)

	s.Error(err)
	s.True(client.IsForbidden(err))
	s.False(client.IsUnauthorized(err))
}

func (s *ClientPublicTestSuite) TestForceLogout() {
	revoked, err := s.sut.ForceLogout(s.ctx, "bob")

	s.Require().NoError(err)
	s.Equal(2, revoked)
	s.Equal("bob", s.lastBody["target"])
}

func (s *ClientPublicTestSuite) TestRecordMessages() {
	total, err := s.sut.RecordMessages(s.ctx, 5)

	s.Require().NoError(err)
	s.Equal(uint64(42), total)
	s.InDelta(5, s.lastBody["count"], 0)
}

func (s *ClientPublicTestSuite) TestWatch() {
	s.sut.SetToken("tok-123")
	ctx, cancel := context.WithTimeout(s.ctx, 5*time.Second)
	defer cancel()

	var frames []client.Frame
	err := s.sut.Watch(ctx, func(f client.Frame) {
		frames = append(frames, f)
	})

	s.NoError(err)
	s.Equal("Bearer tok-123", s.lastAuth)
	s.Require().Len(frames, 2)
	s.Equal("broadcastMsg", frames[0].Event)
	s.Equal("hello", frames[0].Data)
	s.Equal("forceLogout", frames[1].Event)
}

func TestClientPublicTestSuite(t *testing.T) {
	suite.Run(t, new(ClientPublicTestSuite))
}
