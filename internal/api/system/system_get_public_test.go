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

package system_test

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	"github.com/retr0h/botconsole/internal/api/system"
	"github.com/retr0h/botconsole/internal/sysinfo"
	"github.com/retr0h/botconsole/internal/sysinfo/mocks"
)

type SystemGetPublicTestSuite struct {
	suite.Suite

	mockCtrl *gomock.Controller
}

func (s *SystemGetPublicTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
}

func (s *SystemGetPublicTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *SystemGetPublicTestSuite) TestGetSystem() {
	tests := []struct {
		name      string
		setupMock func() sysinfo.Provider
		wantCode  int
		validate  func(body []byte)
	}{
		{
			name: "when readings succeed",
			setupMock: func() sysinfo.Provider {
				return mocks.NewDefaultMockProvider(s.mockCtrl)
			},
			wantCode: http.StatusOK,
			validate: func(body []byte) {
				var got sysinfo.System
				s.NoError(json.Unmarshal(body, &got))
				s.Equal(float64(10), got.CPUPercent)
				s.Equal(uint64(16*1024*1024*1024), got.TotalMem)
				s.Equal("linux/amd64", got.Platform)
			},
		},
		{
			name: "when readings fail",
			setupMock: func() sysinfo.Provider {
				mock := mocks.NewPlainMockProvider(s.mockCtrl)
				mock.EXPECT().
					System(gomock.Any()).
					Return(nil, errors.New("reading cpu usage: denied"))

				return mock
			},
			wantCode: http.StatusInternalServerError,
			validate: func(body []byte) {
				s.Contains(string(body), "reading cpu usage")
			},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			handler := system.New(slog.Default(), tt.setupMock())

			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/system", nil), rec)

			s.NoError(handler.GetSystem(c))
			s.Equal(tt.wantCode, rec.Code)
			tt.validate(rec.Body.Bytes())
		})
	}
}

func TestSystemGetPublicTestSuite(t *testing.T) {
	suite.Run(t, new(SystemGetPublicTestSuite))
}
