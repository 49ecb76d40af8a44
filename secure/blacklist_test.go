// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package secure

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testBlacklistAddIfAbsent(t *testing.T) {
	var (
		assert = assert.New(t)
		b      = NewBlacklist()
		now    = testStart
	)

	assert.True(b.AddIfAbsent("one", now.Add(time.Minute), now))
	assert.True(b.AddIfAbsent("two", now.Add(time.Hour), now))
	assert.False(b.AddIfAbsent("one", now.Add(time.Hour), now))
	assert.True(b.Contains("one", now))
	assert.True(b.Contains("two", now))
	assert.False(b.Contains("three", now))
	assert.Equal(2, b.Len())

	// already expired entries are never stored
	assert.True(b.AddIfAbsent("stale", now.Add(-time.Minute), now))
	assert.False(b.Contains("stale", now))
	assert.Equal(2, b.Len())

	later := now.Add(2 * time.Minute)
	assert.False(b.Contains("one", later))

	assert.True(b.AddIfAbsent("three", later.Add(time.Hour), later))
	assert.Equal(2, b.Len(), "expired entries should be pruned on insert")
	assert.True(b.Contains("two", later))
	assert.True(b.Contains("three", later))

	// once pruned, an id can be claimed again
	assert.True(b.AddIfAbsent("one", later.Add(time.Minute), later))
}

func testBlacklistAddIfAbsentConcurrent(t *testing.T) {
	const goroutines = 16

	var (
		b       = NewBlacklist()
		now     = testStart
		wins    int32
		start   = make(chan struct{})
		waitGrp sync.WaitGroup
	)

	waitGrp.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer waitGrp.Done()
			<-start
			if b.AddIfAbsent("contested", now.Add(time.Hour), now) {
				atomic.AddInt32(&wins, 1)
			}
		}()
	}

	close(start)
	waitGrp.Wait()
	assert.Equal(t, int32(1), wins)
}

func TestBlacklist(t *testing.T) {
	t.Run("AddIfAbsent", testBlacklistAddIfAbsent)
	t.Run("AddIfAbsentConcurrent", testBlacklistAddIfAbsentConcurrent)
}
