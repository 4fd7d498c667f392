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

package logstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"

	"github.com/retr0h/botconsole/internal/event"
)

// marshalJSON is swapped in tests to simulate encoding failures.
var marshalJSON = json.Marshal

// New factory to create a new instance.
func New(
	logger *slog.Logger,
	appFs afero.Fs,
	path string,
	capacity int,
	publisher event.Publisher,
) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	s := &Store{
		logger:    logger,
		appFs:     appFs,
		path:      path,
		capacity:  capacity,
		publisher: publisher,
		entries:   make([]Entry, 0, capacity),
		nowFn:     time.Now,
	}

	meter := otel.Meter("github.com/retr0h/botconsole/internal/logstore")
	s.persistFailures, _ = meter.Int64Counter(
		"botconsole.logstore.persist.failures",
		metric.WithDescription("Log snapshot writes that failed."),
	)

	return s
}

// Load replaces the in-memory log with the snapshot on disk. A missing
// snapshot leaves the store empty. A corrupt snapshot is logged and
// ignored.
func (s *Store) Load() error {
	data, err := afero.ReadFile(s.appFs, s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		return fmt.Errorf("reading log snapshot: %w", err)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		s.logger.Warn(
			"ignoring corrupt log snapshot",
			slog.String("path", s.path),
			slog.String("error", err.Error()),
		)

		return nil
	}

	if len(entries) > s.capacity {
		entries = entries[len(entries)-s.capacity:]
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(make([]Entry, 0, s.capacity), entries...)

	s.logger.Debug(
		"loaded log snapshot",
		slog.String("path", s.path),
		slog.Int("entries", len(s.entries)),
	)

	return nil
}

// Append records message under category, evicting the oldest entry when
// full. Persistence failures are logged; the append still succeeds.
func (s *Store) Append(
	message string,
	category string,
) Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.appendLocked(message, category)
}

// List returns entries matching filter in insertion order. FilterAll
// returns every entry; any other value is an exact category match.
func (s *Store) List(
	filter string,
) []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	if filter == FilterAll {
		out := make([]Entry, len(s.entries))
		copy(out, s.entries)

		return out
	}

	out := make([]Entry, 0)
	for _, e := range s.entries {
		if e.Type == filter {
			out = append(out, e)
		}
	}

	return out
}

// Clear empties the log and then records who cleared it.
func (s *Store) Clear(
	actor string,
) Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = s.entries[:0]
	s.persistLocked()

	return s.appendLocked(fmt.Sprintf("%s cleared the logs", actor), CategorySystem)
}

// Len returns the number of retained entries.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.entries)
}

// CheckHealth reports whether the snapshot directory is usable.
func (s *Store) CheckHealth(
	_ context.Context,
) error {
	dir := filepath.Dir(s.path)

	info, err := s.appFs.Stat(dir)
	if err != nil {
		return fmt.Errorf("log snapshot directory: %w", err)
	}

	if !info.IsDir() {
		return fmt.Errorf("log snapshot directory %q is not a directory", dir)
	}

	return nil
}

func (s *Store) appendLocked(
	message string,
	category string,
) Entry {
	entry := Entry{
		Time:    s.nowFn().UTC(),
		Message: message,
		Type:    category,
	}

	if len(s.entries) >= s.capacity {
		copy(s.entries, s.entries[1:])
		s.entries[len(s.entries)-1] = entry
	} else {
		s.entries = append(s.entries, entry)
	}

	s.persistLocked()

	if s.publisher != nil {
		s.publisher.Publish(event.Event{
			Kind: event.KindLogAppended,
			Data: entry,
		})
	}

	return entry
}

// persistLocked writes the snapshot through a temp file and rename so a
// crash never leaves a half-written file behind.
func (s *Store) persistLocked() {
	if err := s.writeSnapshotLocked(); err != nil {
		s.persistFailures.Add(context.Background(), 1)
		s.logger.Warn(
			"failed to persist log snapshot",
			slog.String("path", s.path),
			slog.String("error", err.Error()),
		)
	}
}

func (s *Store) writeSnapshotLocked() error {
	data, err := marshalJSON(s.entries)
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := afero.WriteFile(s.appFs, tmp, data, 0o600); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}

	if err := s.appFs.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replacing snapshot: %w", err)
	}

	return nil
}
