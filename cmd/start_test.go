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

package cmd

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"
)

type StartTestSuite struct {
	suite.Suite
}

// recorder is shared by every recordingLifecycle in a test.
type recorder struct {
	mu     sync.Mutex
	events []string
}

func (r *recorder) add(
	event string,
) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, event)
}

type recordingLifecycle struct {
	name string
	rec  *recorder
}

func (l *recordingLifecycle) Start() {
	l.rec.add("start " + l.name)
}

func (l *recordingLifecycle) Stop(
	_ context.Context,
) {
	l.rec.add("stop " + l.name)
}

func (s *StartTestSuite) TestCompositeLifecycle() {
	rec := &recorder{}
	composite := &compositeLifecycle{}
	composite.components = append(
		composite.components,
		&recordingLifecycle{name: "analytics", rec: rec},
		&recordingLifecycle{name: "api", rec: rec},
	)

	composite.Start()
	s.Equal([]string{"start analytics", "start api"}, rec.events)

	composite.Stop(context.Background())
	s.Len(rec.events, 4)
	s.ElementsMatch([]string{"stop analytics", "stop api"}, rec.events[2:])
}

func TestStartTestSuite(t *testing.T) {
	suite.Run(t, new(StartTestSuite))
}
