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

package export_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/retr0h/botconsole/internal/client"
	"github.com/retr0h/botconsole/internal/export"
)

type mockExporter struct {
	openErr  error
	writeErr error
	closeErr error

	opened  bool
	closed  bool
	entries []client.LogEntry
}

func (m *mockExporter) Open(_ context.Context) error {
	m.opened = true

	return m.openErr
}

func (m *mockExporter) Write(
	_ context.Context,
	entry client.LogEntry,
) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.entries = append(m.entries, entry)

	return nil
}

func (m *mockExporter) Close(_ context.Context) error {
	m.closed = true

	return m.closeErr
}

type ExportPublicTestSuite struct {
	suite.Suite

	ctx    context.Context
	logger *slog.Logger
}

func (suite *ExportPublicTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.logger = slog.Default()
}

func entries(
	messages ...string,
) export.Fetcher {
	return func(_ context.Context) ([]client.LogEntry, error) {
		out := make([]client.LogEntry, 0, len(messages))
		for _, m := range messages {
			out = append(out, client.LogEntry{
				Time:    "2026-02-21T10:30:00Z",
				Message: m,
				Type:    "auth",
			})
		}

		return out, nil
	}
}

func (suite *ExportPublicTestSuite) TestRun() {
	tests := []struct {
		name         string
		fetcher      export.Fetcher
		exporter     *mockExporter
		validateFunc func(exp *mockExporter, result *export.Result, err error)
	}{
		{
			name:     "when no entries returns zero counts",
			fetcher:  entries(),
			exporter: &mockExporter{},
			validateFunc: func(exp *mockExporter, result *export.Result, err error) {
				suite.NoError(err)
				suite.Equal(0, result.TotalEntries)
				suite.Equal(0, result.ExportedEntries)
				suite.True(exp.opened)
				suite.True(exp.closed)
			},
		},
		{
			name:     "when entries exist exports all in order",
			fetcher:  entries("alice logged in as Owner", "bob logged in as Admin"),
			exporter: &mockExporter{},
			validateFunc: func(exp *mockExporter, result *export.Result, err error) {
				suite.NoError(err)
				suite.Equal(2, result.ExportedEntries)
				suite.Require().Len(exp.entries, 2)
				suite.Equal("alice logged in as Owner", exp.entries[0].Message)
				suite.Equal("bob logged in as Admin", exp.entries[1].Message)
			},
		},
		{
			name: "when fetcher errors does not open exporter",
			fetcher: func(_ context.Context) ([]client.LogEntry, error) {
				return nil, errors.New("connection lost")
			},
			exporter: &mockExporter{},
			validateFunc: func(exp *mockExporter, result *export.Result, err error) {
				suite.Error(err)
				suite.Contains(err.Error(), "fetching entries")
				suite.Nil(result)
				suite.False(exp.opened)
			},
		},
		{
			name:     "when write errors returns partial result and closes",
			fetcher:  entries("one"),
			exporter: &mockExporter{writeErr: errors.New("disk full")},
			validateFunc: func(exp *mockExporter, result *export.Result, err error) {
				suite.Error(err)
				suite.Contains(err.Error(), "writing entry 0")
				suite.Equal(0, result.ExportedEntries)
				suite.True(exp.closed)
			},
		},
		{
			name:     "when open errors returns nil result",
			fetcher:  entries("one"),
			exporter: &mockExporter{openErr: errors.New("permission denied")},
			validateFunc: func(exp *mockExporter, result *export.Result, err error) {
				suite.Error(err)
				suite.Contains(err.Error(), "opening exporter")
				suite.Nil(result)
				suite.False(exp.closed)
			},
		},
		{
			name:     "when close errors still returns result",
			fetcher:  entries("one"),
			exporter: &mockExporter{closeErr: errors.New("close failed")},
			validateFunc: func(_ *mockExporter, result *export.Result, err error) {
				suite.NoError(err)
				suite.Equal(1, result.ExportedEntries)
			},
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			result, err := export.Run(
				suite.ctx,
				suite.logger,
				tc.fetcher,
				tc.exporter,
				0,
				nil,
			)
			tc.validateFunc(tc.exporter, result, err)
		})
	}
}

func (suite *ExportPublicTestSuite) TestRunProgress() {
	tests := []struct {
		name      string
		fetcher   export.Fetcher
		batchSize int
		want      [][2]int
	}{
		{
			name:      "when entries divide evenly reports each batch",
			fetcher:   entries("a", "b", "c", "d"),
			batchSize: 2,
			want:      [][2]int{{2, 4}, {4, 4}},
		},
		{
			name:      "when last batch is partial reports the remainder",
			fetcher:   entries("a", "b", "c"),
			batchSize: 2,
			want:      [][2]int{{2, 3}, {3, 3}},
		},
		{
			name:      "when no entries reports nothing",
			fetcher:   entries(),
			batchSize: 2,
			want:      nil,
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			var got [][2]int

			_, err := export.Run(
				suite.ctx,
				suite.logger,
				tc.fetcher,
				&mockExporter{},
				tc.batchSize,
				func(exported int, total int) {
					got = append(got, [2]int{exported, total})
				},
			)

			suite.NoError(err)
			suite.Equal(tc.want, got)
		})
	}
}

func TestExportPublicTestSuite(t *testing.T) {
	suite.Run(t, new(ExportPublicTestSuite))
}
