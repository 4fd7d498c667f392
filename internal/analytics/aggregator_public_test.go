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

package analytics_test

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/retr0h/botconsole/internal/analytics"
	"github.com/retr0h/botconsole/internal/event"
)

type staticRegistry []string

func (r staticRegistry) Snapshot() []string {
	return r
}

type AggregatorPublicTestSuite struct {
	suite.Suite

	mu        sync.Mutex
	published []event.Event
}

func (s *AggregatorPublicTestSuite) SetupTest() {
	s.published = nil
}

func (s *AggregatorPublicTestSuite) publisher() event.Publisher {
	return event.PublisherFunc(func(e event.Event) {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.published = append(s.published, e)
	})
}

func (s *AggregatorPublicTestSuite) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.published)
}

func (s *AggregatorPublicTestSuite) TestFormatUptime() {
	tests := []struct {
		name string
		in   time.Duration
		want string
	}{
		{
			name: "when zero",
			in:   0,
			want: "0d 0h 0m 0s",
		},
		{
			name: "when under a minute",
			in:   42 * time.Second,
			want: "0d 0h 0m 42s",
		},
		{
			name: "when over a day",
			in:   26*time.Hour + 3*time.Minute + 4*time.Second,
			want: "1d 2h 3m 4s",
		},
		{
			name: "when fractional seconds truncates",
			in:   1500 * time.Millisecond,
			want: "0d 0h 0m 1s",
		},
		{
			name: "when negative clamps to zero",
			in:   -time.Second,
			want: "0d 0h 0m 0s",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.Equal(tt.want, analytics.FormatUptime(tt.in))
		})
	}
}

func (s *AggregatorPublicTestSuite) TestSnapshot() {
	a := analytics.New(
		slog.Default(),
		staticRegistry{"alice", "alice", "bob"},
		s.publisher(),
		time.Second,
	)

	s.Equal(uint64(3), a.RecordMessages(3))
	s.Equal(uint64(5), a.RecordMessages(2))

	snap := a.Snapshot()
	s.Equal([]string{"alice", "alice", "bob"}, snap.ActiveUsers)
	s.Equal(3, snap.ActiveConnections)
	s.Equal(uint64(5), snap.TotalMessages)
	s.Regexp(`^\d+d \d+h \d+m \d+s$`, snap.Uptime)
}

func (s *AggregatorPublicTestSuite) TestTick() {
	a := analytics.New(slog.Default(), staticRegistry{}, s.publisher(), time.Second)

	a.Tick()

	s.Require().Len(s.published, 1)
	s.Equal(event.KindAnalyticsTick, s.published[0].Kind)
	snap, ok := s.published[0].Data.(analytics.Snapshot)
	s.True(ok)
	s.Equal(0, snap.ActiveConnections)
}

func (s *AggregatorPublicTestSuite) TestStartAndStop() {
	a := analytics.New(slog.Default(), staticRegistry{"alice"}, s.publisher(), time.Second)

	a.Start()
	s.Eventually(func() bool {
		return s.count() >= 1
	}, 3*time.Second, 50*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	a.Stop(ctx)

	stopped := s.count()
	time.Sleep(1200 * time.Millisecond)
	s.Equal(stopped, s.count())
}

func TestAggregatorPublicTestSuite(t *testing.T) {
	suite.Run(t, new(AggregatorPublicTestSuite))
}
