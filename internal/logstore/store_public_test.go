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

package logstore_test

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/suite"

	"github.com/retr0h/botconsole/internal/event"
	"github.com/retr0h/botconsole/internal/logstore"
)

const snapshotPath = "/var/lib/botconsole/logs.json"

type StorePublicTestSuite struct {
	suite.Suite

	appFs     afero.Fs
	published []event.Event
	store     *logstore.Store
}

func (s *StorePublicTestSuite) SetupTest() {
	s.appFs = afero.NewMemMapFs()
	s.Require().NoError(s.appFs.MkdirAll("/var/lib/botconsole", 0o755))
	s.published = nil
	s.store = s.newStore(s.appFs, logstore.DefaultCapacity)
}

func (s *StorePublicTestSuite) newStore(
	appFs afero.Fs,
	capacity int,
) *logstore.Store {
	return logstore.New(
		slog.Default(),
		appFs,
		snapshotPath,
		capacity,
		event.PublisherFunc(func(e event.Event) {
			s.published = append(s.published, e)
		}),
	)
}

func (s *StorePublicTestSuite) snapshot() []logstore.Entry {
	data, err := afero.ReadFile(s.appFs, snapshotPath)
	s.Require().NoError(err)

	var entries []logstore.Entry
	s.Require().NoError(json.Unmarshal(data, &entries))

	return entries
}

func (s *StorePublicTestSuite) TestAppend() {
	entry := s.store.Append("bot started", logstore.CategoryInfo)

	s.Equal("bot started", entry.Message)
	s.Equal(logstore.CategoryInfo, entry.Type)
	s.False(entry.Time.IsZero())

	s.Require().Len(s.published, 1)
	s.Equal(event.KindLogAppended, s.published[0].Kind)
	s.Equal(entry, s.published[0].Data)

	persisted := s.snapshot()
	s.Require().Len(persisted, 1)
	s.Equal("bot started", persisted[0].Message)
}

func (s *StorePublicTestSuite) TestAppendEvictsOldest() {
	tests := []struct {
		name      string
		appends   int
		wantLen   int
		wantFirst string
		wantLast  string
	}{
		{
			name:      "when below capacity keeps everything",
			appends:   3,
			wantLen:   3,
			wantFirst: "entry-1",
			wantLast:  "entry-3",
		},
		{
			name:      "when exactly at capacity keeps everything",
			appends:   200,
			wantLen:   200,
			wantFirst: "entry-1",
			wantLast:  "entry-200",
		},
		{
			name:      "when five over capacity drops the first five",
			appends:   205,
			wantLen:   200,
			wantFirst: "entry-6",
			wantLast:  "entry-205",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			for i := 1; i <= tt.appends; i++ {
				s.store.Append(fmt.Sprintf("entry-%d", i), logstore.CategoryInfo)
			}

			got := s.store.List(logstore.FilterAll)
			s.Len(got, tt.wantLen)
			s.Equal(tt.wantFirst, got[0].Message)
			s.Equal(tt.wantLast, got[len(got)-1].Message)
			s.Equal(tt.wantLen, s.store.Len())
			s.Len(s.snapshot(), tt.wantLen)
		})
	}
}

func (s *StorePublicTestSuite) TestList() {
	s.store.Append("a", "auth")
	s.store.Append("b", "info")
	s.store.Append("c", "auth")
	s.store.Append("d", "system")

	tests := []struct {
		name   string
		filter string
		want   []string
	}{
		{
			name:   "when all returns everything in order",
			filter: logstore.FilterAll,
			want:   []string{"a", "b", "c", "d"},
		},
		{
			name:   "when category returns the ordered subsequence",
			filter: "auth",
			want:   []string{"a", "c"},
		},
		{
			name:   "when category is unknown returns nothing",
			filter: "billing",
			want:   []string{},
		},
		{
			name:   "when empty filter matches only empty category",
			filter: "",
			want:   []string{},
		},
		{
			name:   "when category differs by case returns nothing",
			filter: "AUTH",
			want:   []string{},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			got := s.store.List(tt.filter)

			messages := make([]string, 0, len(got))
			for _, e := range got {
				messages = append(messages, e.Message)
			}
			s.Equal(tt.want, messages)
		})
	}
}

func (s *StorePublicTestSuite) TestListReturnsCopy() {
	s.store.Append("original", logstore.CategoryInfo)

	got := s.store.List(logstore.FilterAll)
	got[0].Message = "mutated"

	s.Equal("original", s.store.List(logstore.FilterAll)[0].Message)
}

func (s *StorePublicTestSuite) TestClear() {
	for i := 0; i < 10; i++ {
		s.store.Append(fmt.Sprintf("entry-%d", i), logstore.CategoryInfo)
	}

	s.store.Clear("alice")

	got := s.store.List(logstore.FilterAll)
	s.Require().Len(got, 1)
	s.Equal("alice cleared the logs", got[0].Message)
	s.Equal(logstore.CategorySystem, got[0].Type)

	persisted := s.snapshot()
	s.Require().Len(persisted, 1)
	s.Equal("alice cleared the logs", persisted[0].Message)

	last := s.published[len(s.published)-1]
	s.Equal(event.KindLogAppended, last.Kind)
}

func (s *StorePublicTestSuite) TestLoad() {
	tests := []struct {
		name      string
		setup     func()
		capacity  int
		wantErr   bool
		wantCount int
		wantFirst string
	}{
		{
			name:      "when snapshot is missing starts empty",
			setup:     func() {},
			wantCount: 0,
		},
		{
			name: "when snapshot is corrupt starts empty",
			setup: func() {
				_ = afero.WriteFile(s.appFs, snapshotPath, []byte("{not json"), 0o600)
			},
			wantCount: 0,
		},
		{
			name: "when snapshot is valid restores entries",
			setup: func() {
				_ = afero.WriteFile(
					s.appFs,
					snapshotPath,
					[]byte(`[{"time":"2026-01-01T00:00:00Z","message":"m1","type":"info"},
					        {"time":"2026-01-01T00:00:01Z","message":"m2","type":"auth"}]`),
					0o600,
				)
			},
			wantCount: 2,
			wantFirst: "m1",
		},
		{
			name: "when snapshot exceeds capacity keeps the newest",
			setup: func() {
				_ = afero.WriteFile(
					s.appFs,
					snapshotPath,
					[]byte(`[{"message":"m1","type":"info"},
					        {"message":"m2","type":"info"},
					        {"message":"m3","type":"info"}]`),
					0o600,
				)
			},
			capacity:  2,
			wantCount: 2,
			wantFirst: "m2",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			tt.setup()

			store := s.newStore(s.appFs, tt.capacity)
			err := store.Load()

			if tt.wantErr {
				s.Error(err)
				return
			}

			s.NoError(err)
			s.Equal(tt.wantCount, store.Len())
			if tt.wantFirst != "" {
				s.Equal(tt.wantFirst, store.List(logstore.FilterAll)[0].Message)
			}
		})
	}
}

func (s *StorePublicTestSuite) TestPersistenceDegraded() {
	store := s.newStore(afero.NewReadOnlyFs(s.appFs), logstore.DefaultCapacity)

	entry := store.Append("still recorded", logstore.CategoryInfo)

	s.Equal("still recorded", entry.Message)
	s.Equal(1, store.Len())
	s.Len(s.published, 1)

	exists, err := afero.Exists(s.appFs, snapshotPath)
	s.NoError(err)
	s.False(exists)
}

func (s *StorePublicTestSuite) TestCheckHealth() {
	tests := []struct {
		name    string
		appFs   func() afero.Fs
		wantErr bool
	}{
		{
			name: "when directory exists",
			appFs: func() afero.Fs {
				return s.appFs
			},
		},
		{
			name:    "when directory is missing",
			appFs:   afero.NewMemMapFs,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			store := s.newStore(tt.appFs(), 0)

			err := store.CheckHealth(context.Background())

			if tt.wantErr {
				s.Error(err)
			} else {
				s.NoError(err)
			}
		})
	}
}

func (s *StorePublicTestSuite) TestConcurrentAppendsStayBounded() {
	var mu sync.Mutex
	var kinds []event.Kind
	store := logstore.New(
		slog.Default(),
		s.appFs,
		snapshotPath,
		50,
		event.PublisherFunc(func(e event.Event) {
			mu.Lock()
			kinds = append(kinds, e.Kind)
			mu.Unlock()
		}),
	)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			store.Append(fmt.Sprintf("entry-%d", n), logstore.CategoryInfo)
		}(i)
	}
	wg.Wait()

	s.Equal(50, store.Len())
	s.Len(kinds, 100)
	s.Len(s.snapshot(), 50)
}

func TestStorePublicTestSuite(t *testing.T) {
	suite.Run(t, new(StorePublicTestSuite))
}
