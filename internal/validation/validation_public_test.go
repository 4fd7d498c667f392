// Copyright (c) 2026 John Dewey

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

package validation_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/retr0h/botconsole/internal/validation"
)

type ValidationPublicTestSuite struct {
	suite.Suite
}

func (s *ValidationPublicTestSuite) TestStruct() {
	type announcementRequest struct {
		Title   string `validate:"required,max=16"`
		Message string `validate:"max=32"`
	}
	type forceLogoutRequest struct {
		Target string `validate:"logout_target"`
	}

	tests := []struct {
		name     string
		input    any
		wantOK   bool
		contains []string
	}{
		{
			name:   "when announcement is valid",
			input:  announcementRequest{Title: "Maintenance", Message: "down at 02:00"},
			wantOK: true,
		},
		{
			name:     "when title missing",
			input:    announcementRequest{Message: "down at 02:00"},
			contains: []string{"Title", "required"},
		},
		{
			name: "when both fields fail joins the messages",
			input: announcementRequest{
				Message: "this message is longer than thirty-two bytes",
			},
			contains: []string{"Title", "Message", "; "},
		},
		{
			name:     "when force logout target malformed adds hint",
			input:    forceLogoutRequest{Target: "bob smith"},
			contains: []string{"Target", `must be "all" or an identity`},
		},
		{
			name:     "when input is not a struct returns raw error",
			input:    "alice",
			contains: []string{"validator"},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			errMsg, ok := validation.Struct(tt.input)
			s.Equal(tt.wantOK, ok)

			for _, c := range tt.contains {
				s.Contains(errMsg, c)
			}
		})
	}
}

func (s *ValidationPublicTestSuite) TestIsIdentity() {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "when plain username", input: "alice", want: true},
		{name: "when email style", input: "ops@example.com", want: true},
		{name: "when empty", input: "", want: false},
		{name: "when too long", input: strings.Repeat("a", 65), want: false},
		{name: "when contains slash", input: "alice/admin", want: false},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.Equal(tt.want, validation.IsIdentity(tt.input))
		})
	}
}

func (s *ValidationPublicTestSuite) TestInstanceIsShared() {
	s.Same(validation.Instance(), validation.Instance())
}

func (s *ValidationPublicTestSuite) TestCustomTags() {
	tests := []struct {
		name     string
		field    any
		tag      string
		wantOK   bool
		contains []string
	}{
		{
			name:   "when identity is valid",
			field:  "alice",
			tag:    "identity",
			wantOK: true,
		},
		{
			name:     "when identity contains whitespace",
			field:    "alice smith",
			tag:      "identity",
			wantOK:   false,
			contains: []string{"not a valid identity"},
		},
		{
			name:   "when logout target is all",
			field:  "all",
			tag:    "logout_target",
			wantOK: true,
		},
		{
			name:   "when logout target is an identity",
			field:  "bob",
			tag:    "logout_target",
			wantOK: true,
		},
		{
			name:     "when logout target is empty",
			field:    "",
			tag:      "logout_target",
			wantOK:   false,
			contains: []string{"must be \"all\" or an identity"},
		},
		{
			name:   "when duration is valid",
			field:  "1h",
			tag:    "duration",
			wantOK: true,
		},
		{
			name:     "when duration is negative",
			field:    "-5s",
			tag:      "duration",
			wantOK:   false,
			contains: []string{"not a valid duration"},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			errMsg, ok := validation.Var(tt.field, tt.tag)
			s.Equal(tt.wantOK, ok)

			for _, c := range tt.contains {
				s.Contains(errMsg, c)
			}
		})
	}
}

func TestValidationPublicTestSuite(t *testing.T) {
	suite.Run(t, new(ValidationPublicTestSuite))
}
