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

package export

import (
	"context"
	"fmt"
	"log/slog"
)

// DefaultBatchSize is how many entries are written between progress calls.
const DefaultBatchSize = 50

// Run fetches entries and writes each to exporter, reporting progress every
// batchSize entries and once at the end. The exporter is always closed
// after a successful Open.
func Run(
	ctx context.Context,
	logger *slog.Logger,
	fetcher Fetcher,
	exporter Exporter,
	batchSize int,
	onProgress ProgressFunc,
) (*Result, error) {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	entries, err := fetcher(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching entries: %w", err)
	}

	if err := exporter.Open(ctx); err != nil {
		return nil, fmt.Errorf("opening exporter: %w", err)
	}

	defer func() {
		if closeErr := exporter.Close(ctx); closeErr != nil {
			logger.Error("closing exporter", slog.String("error", closeErr.Error()))
		}
	}()

	result := &Result{TotalEntries: len(entries)}

	for i, entry := range entries {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		if err := exporter.Write(ctx, entry); err != nil {
			return result, fmt.Errorf("writing entry %d: %w", i, err)
		}
		result.ExportedEntries++

		if onProgress != nil && result.ExportedEntries%batchSize == 0 {
			onProgress(result.ExportedEntries, result.TotalEntries)
		}
	}

	if onProgress != nil && result.ExportedEntries%batchSize != 0 {
		onProgress(result.ExportedEntries, result.TotalEntries)
	}

	return result, nil
}
