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

// Package logstore keeps the bounded, persisted console log.
package logstore

import (
	"log/slog"
	"sync"
	"time"

	"github.com/spf13/afero"
	"go.opentelemetry.io/otel/metric"

	"github.com/retr0h/botconsole/internal/event"
)

// Built-in categories. The set is open; callers may use any string.
const (
	CategoryInfo   = "info"
	CategorySystem = "system"
	CategoryAuth   = "auth"
)

// FilterAll is the List filter that matches every entry.
const FilterAll = "all"

// DefaultCapacity is the number of entries retained.
const DefaultCapacity = 200

// Entry is a single immutable log record.
type Entry struct {
	Time    time.Time `json:"time"`
	Message string    `json:"message"`
	Type    string    `json:"type"`
}

// Store is an append-only log bounded to a fixed capacity. The oldest
// entry is evicted when the capacity is exceeded. Every mutation rewrites
// the snapshot file and publishes a logUpdate event.
type Store struct {
	logger    *slog.Logger
	appFs     afero.Fs
	path      string
	capacity  int
	publisher event.Publisher

	mu      sync.Mutex
	entries []Entry
	nowFn   func() time.Time

	persistFailures metric.Int64Counter
}
