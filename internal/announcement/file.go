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

package announcement

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/spf13/afero"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"

	"github.com/retr0h/botconsole/internal/validation"
)

// ErrInvalid is returned when an announcement fails validation.
var ErrInvalid = errors.New("invalid announcement")

// NewFileStore factory to create a new instance.
func NewFileStore(
	logger *slog.Logger,
	appFs afero.Fs,
	path string,
) *FileStore {
	s := &FileStore{
		logger: logger,
		appFs:  appFs,
		path:   path,
	}

	meter := otel.Meter("github.com/retr0h/botconsole/internal/announcement")
	s.persistFailures, _ = meter.Int64Counter(
		"botconsole.announcement.persist.failures",
		metric.WithDescription("Announcement writes that failed."),
	)

	return s
}

// Get returns the current announcement. The document is read once on
// first use; a missing document yields the zero value.
func (s *FileStore) Get(
	_ context.Context,
) (Announcement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return s.current, nil
	}

	data, err := afero.ReadFile(s.appFs, s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.loaded = true

			return s.current, nil
		}

		return Announcement{}, fmt.Errorf("reading announcement: %w", err)
	}

	var a Announcement
	if err := json.Unmarshal(data, &a); err != nil {
		return Announcement{}, fmt.Errorf("decoding announcement: %w", err)
	}

	s.current = a
	s.loaded = true

	return s.current, nil
}

// Set validates and replaces the announcement wholesale. A failed write is
// logged and counted; the new announcement is served regardless.
func (s *FileStore) Set(
	ctx context.Context,
	a Announcement,
) error {
	if msg, ok := validation.Struct(a); !ok {
		return fmt.Errorf("%w: %s", ErrInvalid, msg)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = a
	s.loaded = true

	if err := s.writeLocked(); err != nil {
		s.persistFailures.Add(ctx, 1)
		s.logger.Warn(
			"failed to persist announcement",
			slog.String("path", s.path),
			slog.String("error", err.Error()),
		)

		return nil
	}

	s.logger.Debug("announcement updated", slog.String("title", a.Title))

	return nil
}

func (s *FileStore) writeLocked() error {
	data, err := json.MarshalIndent(s.current, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding announcement: %w", err)
	}

	if err := afero.WriteFile(s.appFs, s.path, data, 0o600); err != nil {
		return fmt.Errorf("writing announcement: %w", err)
	}

	return nil
}

// CheckHealth reports whether the announcement directory is usable.
func (s *FileStore) CheckHealth(
	_ context.Context,
) error {
	dir := filepath.Dir(s.path)

	info, err := s.appFs.Stat(dir)
	if err != nil {
		return fmt.Errorf("announcement directory: %w", err)
	}

	if !info.IsDir() {
		return fmt.Errorf("announcement directory %q is not a directory", dir)
	}

	return nil
}
