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

package event_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/retr0h/botconsole/internal/event"
)

type EventPublicTestSuite struct {
	suite.Suite
}

func (s *EventPublicTestSuite) TestDelivers() {
	tests := []struct {
		name     string
		event    event.Event
		identity string
		want     bool
	}{
		{
			name:     "when untargeted reaches everyone",
			event:    event.ForAll(),
			identity: "alice",
			want:     true,
		},
		{
			name:     "when targeted reaches the target",
			event:    event.ForUser("alice"),
			identity: "alice",
			want:     true,
		},
		{
			name:     "when targeted skips other identities",
			event:    event.ForUser("alice"),
			identity: "bob",
			want:     false,
		},
		{
			name:     "when targeted skips anonymous connections",
			event:    event.ForUser("alice"),
			identity: "",
			want:     false,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.Equal(tt.want, tt.event.Delivers(tt.identity))
		})
	}
}

func (s *EventPublicTestSuite) TestFrame() {
	e := event.Event{
		Kind: event.KindOwnerBroadcast,
		Data: "hello",
	}

	got, err := json.Marshal(e.Frame())

	s.NoError(err)
	s.JSONEq(
		`{"event":"broadcastMsg","data":"hello"}`,
		string(got),
	)
}

func (s *EventPublicTestSuite) TestPublisherFunc() {
	var got []event.Event
	var p event.Publisher = event.PublisherFunc(func(e event.Event) {
		got = append(got, e)
	})

	p.Publish(event.ForUser("bob"))

	s.Len(got, 1)
	s.Equal(event.KindForcedLogoutUser, got[0].Kind)
	s.Equal("bob", got[0].Target)
}

func TestEventPublicTestSuite(t *testing.T) {
	suite.Run(t, new(EventPublicTestSuite))
}
