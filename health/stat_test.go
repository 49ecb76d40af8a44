// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package health

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/c9s/goprocinfo/linux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStats(t *testing.T) {
	var (
		assert = assert.New(t)
		custom = Stat("StudiesCreated")
		stats  = NewStats([]Option{custom, Set(TotalRequestsDenied, 3)})
	)

	for _, option := range append(memoryStats, requestStats...) {
		_, ok := stats[option.(Stat)]
		assert.True(ok, "missing %s", option)
	}

	assert.Equal(0, stats[custom])
	assert.Equal(3, stats[TotalRequestsDenied])
}

func TestStatSetKeepsValue(t *testing.T) {
	stats := Stats{TotalRequestsReceived: 12}
	TotalRequestsReceived.Set(stats)
	assert.Equal(t, 12, stats[TotalRequestsReceived])
}

func TestStatsClone(t *testing.T) {
	var (
		assert   = assert.New(t)
		original = Stats{TotalRequestsReceived: 1}
		clone    = original.Clone()
	)

	assert.Equal(original, clone)
	Inc(TotalRequestsReceived, 1)(clone)
	assert.Equal(1, original[TotalRequestsReceived])
	assert.Equal(2, clone[TotalRequestsReceived])
}

func TestStatsSetOther(t *testing.T) {
	target := Stats{TotalRequestsDenied: 5}
	Stats{TotalRequestsReceived: 2}.Set(target)
	assert.Equal(t, Stats{TotalRequestsDenied: 5, TotalRequestsReceived: 2}, target)
}

func TestUpdateMemInfo(t *testing.T) {
	var (
		assert = assert.New(t)
		stats  = NewStats(nil)
	)

	stats.UpdateMemInfo(&linux.MemInfo{Active: 4})
	assert.Equal(4096, stats[CurrentMemoryUtilizationActive])
	assert.Equal(4096, stats[MaxMemoryUtilizationActive])

	stats.UpdateMemInfo(&linux.MemInfo{Active: 2})
	assert.Equal(2048, stats[CurrentMemoryUtilizationActive])
	assert.Equal(4096, stats[MaxMemoryUtilizationActive])
}

func TestUpdateMemStats(t *testing.T) {
	var (
		assert = assert.New(t)
		stats  = NewStats(nil)
	)

	stats.UpdateMemStats(&runtime.MemStats{Alloc: 100, HeapSys: 200})
	stats.UpdateMemStats(&runtime.MemStats{Alloc: 50, HeapSys: 300})

	assert.Equal(50, stats[CurrentMemoryUtilizationAlloc])
	assert.Equal(100, stats[MaxMemoryUtilizationAlloc])
	assert.Equal(300, stats[CurrentMemoryUtilizationHeapSys])
	assert.Equal(300, stats[MaxMemoryUtilizationHeapSys])
}

func testUpdateMemoryMemInfo(t *testing.T) {
	var (
		assert = assert.New(t)
		path   = filepath.Join(t.TempDir(), "meminfo")
		stats  = NewStats(nil)
	)

	require.NoError(t, os.WriteFile(path, []byte("MemTotal:        2048 kB\nMemFree:         1024 kB\nActive:           512 kB\n"), 0o600))

	stats.UpdateMemory(path)
	assert.Equal(512*1024, stats[CurrentMemoryUtilizationActive])
	assert.Equal(512*1024, stats[MaxMemoryUtilizationActive])
	assert.Positive(stats[CurrentMemoryUtilizationAlloc])
	assert.Positive(stats[CurrentMemoryUtilizationHeapSys])
}

func testUpdateMemoryMissing(t *testing.T) {
	var (
		assert = assert.New(t)
		stats  = NewStats([]Option{Set(CurrentMemoryUtilizationActive, 7)})
	)

	stats.UpdateMemory(filepath.Join(t.TempDir(), "nosuch"))
	assert.Equal(7, stats[CurrentMemoryUtilizationActive])
	assert.Zero(stats[MaxMemoryUtilizationActive])
	assert.Positive(stats[CurrentMemoryUtilizationAlloc])
}

func TestUpdateMemory(t *testing.T) {
	t.Run("MemInfo", testUpdateMemoryMemInfo)
	t.Run("Missing", testUpdateMemoryMissing)
}
