// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package health

import (
	"runtime"

	"github.com/c9s/goprocinfo/linux"
)

// MemInfoPath is where the kernel publishes memory figures on linux hosts
const MemInfoPath = "/proc/meminfo"

const (
	// General memory stats
	CurrentMemoryUtilizationAlloc   Stat = "CurrentMemoryUtilizationAlloc"
	CurrentMemoryUtilizationHeapSys Stat = "CurrentMemoryUtilizationHeapSys"
	CurrentMemoryUtilizationActive  Stat = "CurrentMemoryUtilizationActive"
	MaxMemoryUtilizationAlloc       Stat = "MaxMemoryUtilizationAlloc"
	MaxMemoryUtilizationHeapSys     Stat = "MaxMemoryUtilizationHeapSys"
	MaxMemoryUtilizationActive      Stat = "MaxMemoryUtilizationActive"

	// Request stats
	TotalRequestsReceived             Stat = "TotalRequestsReceived"
	TotalRequestsSuccessfullyServiced Stat = "TotalRequestsSuccessfullyServiced"
	TotalRequestsDenied               Stat = "TotalRequestsDenied"
)

var (
	memoryStats = []Option{
		CurrentMemoryUtilizationAlloc,
		CurrentMemoryUtilizationHeapSys,
		CurrentMemoryUtilizationActive,
		MaxMemoryUtilizationAlloc,
		MaxMemoryUtilizationHeapSys,
		MaxMemoryUtilizationActive,
	}

	requestStats = []Option{
		TotalRequestsReceived,
		TotalRequestsSuccessfullyServiced,
		TotalRequestsDenied,
	}
)

// Option describes an option that can be set on a Stats map.
// Various types implement this interface.
type Option interface {
	Set(Stats)
}

// Stat is a named piece of data to be tracked
type Stat string

// Set creates the stat initially, leaving any existing value alone
func (s Stat) Set(stats Stats) {
	if _, ok := stats[s]; !ok {
		stats[s] = 0
	}
}

// HealthFunc functions are allowed to modify the passed-in stats.
type HealthFunc func(Stats)

func (f HealthFunc) Set(stats Stats) {
	f(stats)
}

// Inc increments the given stat by a certain amount
func Inc(stat Stat, value int) HealthFunc {
	return func(stats Stats) {
		stats[stat] += value
	}
}

// Set changes (or, initializes) the stat to the given value
func Set(stat Stat, value int) HealthFunc {
	return func(stats Stats) {
		stats[stat] = value
	}
}

// Stats is mapping of Stat to value
type Stats map[Stat]int

// NewStats creates a Stats map seeded with the memory and request stats, then applies the options
func NewStats(options []Option) Stats {
	s := make(Stats, len(memoryStats)+len(requestStats)+len(options))
	s.Apply(memoryStats...)
	s.Apply(requestStats...)
	s.Apply(options...)
	return s
}

func (s Stats) Set(stats Stats) {
	for key, value := range s {
		stats[key] = value
	}
}

// Clone returns a distinct copy of this Stats object
func (s Stats) Clone() Stats {
	clone := make(Stats, len(s))
	for key, value := range s {
		clone[key] = value
	}

	return clone
}

// Apply invokes each Option.Set() on this stats map.
func (s Stats) Apply(options ...Option) {
	for _, option := range options {
		option.Set(s)
	}
}

// UpdateMemInfo takes memory information from a linux environment and
// sets the appropriate stats.
func (s Stats) UpdateMemInfo(memInfo *linux.MemInfo) {
	active := int(memInfo.Active * 1024)
	s[CurrentMemoryUtilizationActive] = active
	if active > s[MaxMemoryUtilizationActive] {
		s[MaxMemoryUtilizationActive] = active
	}
}

// UpdateMemStats takes a MemStats from the golang runtime and sets the
// appropriate stats.
func (s Stats) UpdateMemStats(memStats *runtime.MemStats) {
	alloc := int(memStats.Alloc)
	heapsys := int(memStats.HeapSys)

	s[CurrentMemoryUtilizationAlloc] = alloc
	s[CurrentMemoryUtilizationHeapSys] = heapsys

	if alloc > s[MaxMemoryUtilizationAlloc] {
		s[MaxMemoryUtilizationAlloc] = alloc
	}

	if heapsys > s[MaxMemoryUtilizationHeapSys] {
		s[MaxMemoryUtilizationHeapSys] = heapsys
	}
}

// UpdateMemory refreshes every memory stat.  The active figures come from the meminfo
// file at path, or MemInfoPath when path is empty, and are left alone if it cannot be read.
func (s Stats) UpdateMemory(path string) {
	if len(path) == 0 {
		path = MemInfoPath
	}

	if memInfo, err := linux.ReadMemInfo(path); err == nil {
		s.UpdateMemInfo(memInfo)
	}

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)
	s.UpdateMemStats(&memStats)
}
