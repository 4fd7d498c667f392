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

package sysinfo_test

import (
	"context"
	"errors"
	"runtime"
	"testing"

	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/stretchr/testify/suite"

	"github.com/retr0h/botconsole/internal/sysinfo"
)

type GopsutilPublicTestSuite struct {
	suite.Suite

	ctx context.Context
}

func (s *GopsutilPublicTestSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *GopsutilPublicTestSuite) TestSystem() {
	tests := []struct {
		name        string
		setupMock   func(*sysinfo.Gopsutil)
		want        *sysinfo.System
		errContains string
	}{
		{
			name: "when readings succeed",
			setupMock: func(g *sysinfo.Gopsutil) {
				g.CPUPercentFn = func(_ context.Context) ([]float64, error) {
					return []float64{12.5}, nil
				}
				g.VirtualMemoryFn = func(_ context.Context) (*mem.VirtualMemoryStat, error) {
					return &mem.VirtualMemoryStat{
						Total:     8000,
						Used:      3000,
						Available: 5000,
					}, nil
				}
			},
			want: &sysinfo.System{
				CPUPercent: 12.5,
				MemoryUsed: 3000,
				TotalMem:   8000,
				FreeMem:    5000,
				GoVersion:  runtime.Version(),
				Platform:   runtime.GOOS + "/" + runtime.GOARCH,
			},
		},
		{
			name: "when cpu reading is empty reports zero",
			setupMock: func(g *sysinfo.Gopsutil) {
				g.CPUPercentFn = func(_ context.Context) ([]float64, error) {
					return nil, nil
				}
				g.VirtualMemoryFn = func(_ context.Context) (*mem.VirtualMemoryStat, error) {
					return &mem.VirtualMemoryStat{Total: 1}, nil
				}
			},
			want: &sysinfo.System{
				TotalMem:  1,
				GoVersion: runtime.Version(),
				Platform:  runtime.GOOS + "/" + runtime.GOARCH,
			},
		},
		{
			name: "when cpu reading fails",
			setupMock: func(g *sysinfo.Gopsutil) {
				g.CPUPercentFn = func(_ context.Context) ([]float64, error) {
					return nil, errors.New("no cpu")
				}
			},
			errContains: "reading cpu usage",
		},
		{
			name: "when memory reading fails",
			setupMock: func(g *sysinfo.Gopsutil) {
				g.CPUPercentFn = func(_ context.Context) ([]float64, error) {
					return []float64{1}, nil
				}
				g.VirtualMemoryFn = func(_ context.Context) (*mem.VirtualMemoryStat, error) {
					return nil, errors.New("no mem")
				}
			},
			errContains: "reading memory usage",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			g := sysinfo.NewGopsutil()
			tt.setupMock(g)

			got, err := g.System(s.ctx)

			if tt.errContains != "" {
				s.Error(err)
				s.Contains(err.Error(), tt.errContains)
				s.Nil(got)
				return
			}

			s.NoError(err)
			s.Equal(tt.want, got)
		})
	}
}

func (s *GopsutilPublicTestSuite) TestHostname() {
	tests := []struct {
		name    string
		fn      func(context.Context) (*host.InfoStat, error)
		want    string
		wantErr bool
	}{
		{
			name: "when host info succeeds",
			fn: func(_ context.Context) (*host.InfoStat, error) {
				return &host.InfoStat{Hostname: "bot-01"}, nil
			},
			want: "bot-01",
		},
		{
			name: "when host info fails",
			fn: func(_ context.Context) (*host.InfoStat, error) {
				return nil, errors.New("boom")
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			g := sysinfo.NewGopsutil()
			g.HostInfoFn = tt.fn

			got, err := g.Hostname(s.ctx)

			if tt.wantErr {
				s.Error(err)
				return
			}

			s.NoError(err)
			s.Equal(tt.want, got)
		})
	}
}

func (s *GopsutilPublicTestSuite) TestProcessMemory() {
	g := sysinfo.NewGopsutil()
	g.ProcessRSSFn = func(_ context.Context) (uint64, error) {
		return 42 * 1024 * 1024, nil
	}

	got, err := g.ProcessMemory(s.ctx)

	s.NoError(err)
	s.Equal(uint64(42*1024*1024), got)

	g.ProcessRSSFn = func(_ context.Context) (uint64, error) {
		return 0, errors.New("denied")
	}

	_, err = g.ProcessMemory(s.ctx)
	s.ErrorContains(err, "reading process memory")
}

func TestGopsutilPublicTestSuite(t *testing.T) {
	suite.Run(t, new(GopsutilPublicTestSuite))
}
