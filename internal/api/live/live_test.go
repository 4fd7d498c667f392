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

package live

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"
)

type LiveTestSuite struct {
	suite.Suite
}

func (s *LiveTestSuite) TestCheckOrigin() {
	tests := []struct {
		name         string
		allowOrigins []string
		origin       string
		host         string
		want         bool
	}{
		{
			name: "when origin is absent",
			host: "console.local",
			want: true,
		},
		{
			name:   "when origin matches host",
			origin: "https://console.local",
			host:   "console.local",
			want:   true,
		},
		{
			name:   "when origin is foreign",
			origin: "https://evil.example",
			host:   "console.local",
			want:   false,
		},
		{
			name:         "when origin is allowed",
			allowOrigins: []string{"https://dash.example"},
			origin:       "https://dash.example",
			host:         "console.local",
			want:         true,
		},
		{
			name:         "when every origin is allowed",
			allowOrigins: []string{"*"},
			origin:       "https://evil.example",
			host:         "console.local",
			want:         true,
		},
		{
			name:   "when origin is not a url",
			origin: "://bad",
			host:   "console.local",
			want:   false,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			req := httptest.NewRequest(http.MethodGet, "/ws", nil)
			req.Host = tt.host
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}

			s.Equal(tt.want, checkOrigin(tt.allowOrigins)(req))
		})
	}
}

func TestLiveTestSuite(t *testing.T) {
	suite.Run(t, new(LiveTestSuite))
}
