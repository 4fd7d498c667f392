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

// Package export writes console log entries to an external sink.
package export

import (
	"bufio"
	"context"

	"github.com/spf13/afero"

	"github.com/retr0h/botconsole/internal/client"
)

// Exporter receives entries between Open and Close.
type Exporter interface {
	Open(ctx context.Context) error
	Write(ctx context.Context, entry client.LogEntry) error
	Close(ctx context.Context) error
}

// Fetcher returns the entries to export.
type Fetcher func(ctx context.Context) ([]client.LogEntry, error)

// ProgressFunc is called every batch with the running and total counts.
type ProgressFunc func(exported int, total int)

// Result summarizes an export run.
type Result struct {
	TotalEntries    int
	ExportedEntries int
}

// FileExporter writes entries as JSON lines.
type FileExporter struct {
	Path string

	appFs  afero.Fs
	file   afero.File
	writer *bufio.Writer
}
