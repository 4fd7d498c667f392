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

// Package announcement stores the single console announcement.
package announcement

import (
	"context"
	"log/slog"
	"sync"

	"github.com/spf13/afero"
	"go.opentelemetry.io/otel/metric"
)

// Announcement is the banner shown to every console user.
type Announcement struct {
	Title   string `json:"title"   validate:"required,max=200"`
	Message string `json:"message" validate:"max=4000"`
}

// Store reads and replaces the announcement.
type Store interface {
	Get(ctx context.Context) (Announcement, error)
	Set(ctx context.Context, a Announcement) error
}

// FileStore keeps the announcement in memory and mirrors it to a JSON
// document. The in-memory value wins when the document cannot be written.
type FileStore struct {
	logger *slog.Logger
	appFs  afero.Fs
	path   string

	mu      sync.Mutex
	current Announcement
	loaded  bool

	persistFailures metric.Int64Counter
}
