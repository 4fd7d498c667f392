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

package analytics

import (
	"log/slog"

	"github.com/retr0h/botconsole/internal/analytics"
)

// Aggregator exposes the analytics counters.
type Aggregator interface {
	Snapshot() analytics.Snapshot
	RecordMessages(n uint64) uint64
}

// Analytics implementation of the analytics API operations.
type Analytics struct {
	logger     *slog.Logger
	aggregator Aggregator
}

// MessagesRequest is the body of POST /api/analytics/messages.
type MessagesRequest struct {
	Count uint64 `json:"count" validate:"required,gte=1"`
}

// MessagesResponse reports the updated counter.
type MessagesResponse struct {
	TotalMessages uint64 `json:"totalMessages"`
}
