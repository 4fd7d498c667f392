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

package sysinfo

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/process"
)

// cpuSampleInterval is the window used to measure CPU utilisation.
const cpuSampleInterval = 200 * time.Millisecond

// NewGopsutil factory to create a new instance.
func NewGopsutil() *Gopsutil {
	return &Gopsutil{
		CPUPercentFn: func(ctx context.Context) ([]float64, error) {
			return cpu.PercentWithContext(ctx, cpuSampleInterval, false)
		},
		VirtualMemoryFn: mem.VirtualMemoryWithContext,
		HostInfoFn:      host.InfoWithContext,
		ProcessRSSFn: func(ctx context.Context) (uint64, error) {
			p, err := process.NewProcessWithContext(ctx, int32(os.Getpid()))
			if err != nil {
				return 0, err
			}

			info, err := p.MemoryInfoWithContext(ctx)
			if err != nil {
				return 0, err
			}

			return info.RSS, nil
		},
	}
}

// System returns host CPU and memory usage.
func (g *Gopsutil) System(
	ctx context.Context,
) (*System, error) {
	percents, err := g.CPUPercentFn(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading cpu usage: %w", err)
	}

	vm, err := g.VirtualMemoryFn(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading memory usage: %w", err)
	}

	var cpuPercent float64
	if len(percents) > 0 {
		cpuPercent = percents[0]
	}

	return &System{
		CPUPercent: cpuPercent,
		MemoryUsed: vm.Used,
		TotalMem:   vm.Total,
		FreeMem:    vm.Available,
		GoVersion:  runtime.Version(),
		Platform:   Platform(),
	}, nil
}

// Hostname returns the host name.
func (g *Gopsutil) Hostname(
	ctx context.Context,
) (string, error) {
	info, err := g.HostInfoFn(ctx)
	if err != nil {
		return "", fmt.Errorf("reading host info: %w", err)
	}

	return info.Hostname, nil
}

// ProcessMemory returns the resident set size of this process in bytes.
func (g *Gopsutil) ProcessMemory(
	ctx context.Context,
) (uint64, error) {
	rss, err := g.ProcessRSSFn(ctx)
	if err != nil {
		return 0, fmt.Errorf("reading process memory: %w", err)
	}

	return rss, nil
}

// Platform returns the OS and architecture the binary runs on.
func Platform() string {
	return runtime.GOOS + "/" + runtime.GOARCH
}
