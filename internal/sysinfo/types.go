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

// Package sysinfo reports host and process resource metrics.
package sysinfo

import (
	"context"

	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

// System is a point-in-time resource reading of the host.
type System struct {
	CPUPercent float64 `json:"cpuPercent"`
	MemoryUsed uint64  `json:"memoryUsed"`
	TotalMem   uint64  `json:"totalMem"`
	FreeMem    uint64  `json:"freeMem"`
	GoVersion  string  `json:"goVersion"`
	Platform   string  `json:"platform"`
}

// Provider reads resource metrics.
type Provider interface {
	// System returns host CPU and memory usage.
	System(ctx context.Context) (*System, error)
	// Hostname returns the host name.
	Hostname(ctx context.Context) (string, error)
	// ProcessMemory returns the resident set size of this process in bytes.
	ProcessMemory(ctx context.Context) (uint64, error)
}

// Gopsutil implements Provider with gopsutil. The function fields exist
// so tests can replace the underlying calls.
type Gopsutil struct {
	CPUPercentFn    func(ctx context.Context) ([]float64, error)
	VirtualMemoryFn func(ctx context.Context) (*mem.VirtualMemoryStat, error)
	HostInfoFn      func(ctx context.Context) (*host.InfoStat, error)
	ProcessRSSFn    func(ctx context.Context) (uint64, error)
}
