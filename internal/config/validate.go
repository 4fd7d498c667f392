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

package config

import (
	"fmt"
	"time"

	"github.com/retr0h/botconsole/internal/validation"
)

// Defaults applied when the corresponding setting is empty.
const (
	DefaultSessionTTL        = time.Hour
	DefaultMaxLogEntries     = 200
	DefaultAnalyticsInterval = 5 * time.Second
	DefaultRestartDelay      = time.Second
	DefaultLogFile           = "logs.json"
	DefaultAnnouncementFile  = "announcement.json"
)

// Validate checks the configuration against its struct tags.
func Validate(
	c *Config,
) error {
	if msg, ok := validation.Struct(c); !ok {
		return fmt.Errorf("invalid config: %s", msg)
	}

	return nil
}

// TTL returns the session lifetime.
func (s ServerSecurity) TTL() time.Duration {
	return parseDuration(s.SessionTTL, DefaultSessionTTL)
}

// Capacity returns the maximum number of retained log entries.
func (s Storage) Capacity() int {
	if s.MaxLogEntries <= 0 {
		return DefaultMaxLogEntries
	}

	return s.MaxLogEntries
}

// LogPath returns the log snapshot path.
func (s Storage) LogPath() string {
	if s.LogFile == "" {
		return DefaultLogFile
	}

	return s.LogFile
}

// AnnouncementPath returns the announcement document path.
func (s Storage) AnnouncementPath() string {
	if s.AnnouncementFile == "" {
		return DefaultAnnouncementFile
	}

	return s.AnnouncementFile
}

// Every returns the analytics tick interval.
func (a Analytics) Every() time.Duration {
	return parseDuration(a.Interval, DefaultAnalyticsInterval)
}

// Delay returns the pause between a restart reply and process exit.
func (c Control) Delay() time.Duration {
	return parseDuration(c.RestartDelay, DefaultRestartDelay)
}

func parseDuration(
	value string,
	fallback time.Duration,
) time.Duration {
	if value == "" {
		return fallback
	}

	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return fallback
	}

	return d
}
