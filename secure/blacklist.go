// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package secure

import (
	"sync"
	"time"
)

// Blacklist holds the ids of refresh tokens that may no longer be used.  Entries
// are kept only until the token they name would have expired anyway.
type Blacklist struct {
	lock    sync.Mutex
	entries map[string]time.Time
}

func NewBlacklist() *Blacklist {
	return &Blacklist{
		entries: make(map[string]time.Time),
	}
}

// prune drops entries already expired as of now.  The lock must be held.
func (b *Blacklist) prune(now time.Time) {
	for k, v := range b.entries {
		if !v.After(now) {
			delete(b.entries, k)
		}
	}
}

// AddIfAbsent blacklists jti until expiry unless it is already blacklisted, returning
// true only for the caller that inserted it.  Exactly one of any number of concurrent
// callers wins.  Entries already expired as of now are pruned, and an expiry that is not
// after now is never stored.
func (b *Blacklist) AddIfAbsent(jti string, expiry, now time.Time) bool {
	b.lock.Lock()
	defer b.lock.Unlock()

	b.prune(now)
	if _, ok := b.entries[jti]; ok {
		return false
	}

	if expiry.After(now) {
		b.entries[jti] = expiry
	}

	return true
}

// Contains tests if jti is blacklisted as of now
func (b *Blacklist) Contains(jti string, now time.Time) bool {
	b.lock.Lock()
	expiry, ok := b.entries[jti]
	b.lock.Unlock()

	return ok && expiry.After(now)
}

// Len returns the number of entries, including any not yet pruned
func (b *Blacklist) Len() int {
	b.lock.Lock()
	defer b.lock.Unlock()
	return len(b.entries)
}
