// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package clock

import (
	"sync"
	"time"
)

// Interface represents the source of the current time.  Token expiry and record
// timestamps are computed against an Interface so that tests can control time.
type Interface interface {
	Now() time.Time
}

type systemClock struct{}

func (sc systemClock) Now() time.Time {
	return time.Now()
}

// System returns a clock backed by the time package
func System() Interface {
	return systemClock{}
}

// Manual is a clock whose time only changes when told to.  It is safe for concurrent use.
type Manual struct {
	lock sync.RWMutex
	now  time.Time
}

// NewManual creates a Manual clock starting at the given time
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

func (m *Manual) Now() time.Time {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.now
}

// Add moves this clock forward by d
func (m *Manual) Add(d time.Duration) {
	m.lock.Lock()
	m.now = m.now.Add(d)
	m.lock.Unlock()
}

// Set moves this clock to an arbitrary time
func (m *Manual) Set(t time.Time) {
	m.lock.Lock()
	m.now = t
	m.lock.Unlock()
}
