// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package study

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore is a Store that keeps studies in process memory
type MemoryStore struct {
	lock    sync.RWMutex
	nextID  int64
	studies map[int64]Study
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nextID:  1,
		studies: make(map[int64]Study),
	}
}

func (ms *MemoryStore) List(_ context.Context, f Filter) ([]Study, error) {
	ms.lock.RLock()
	result := make([]Study, 0, len(ms.studies))
	for _, s := range ms.studies {
		if f.Match(&s) {
			result = append(result, s.Clone())
		}
	}

	ms.lock.RUnlock()

	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (ms *MemoryStore) Get(_ context.Context, id int64) (Study, error) {
	ms.lock.RLock()
	defer ms.lock.RUnlock()

	s, ok := ms.studies[id]
	if !ok {
		return Study{}, ErrNotFound
	}

	return s.Clone(), nil
}

func (ms *MemoryStore) Create(_ context.Context, s Study) (Study, error) {
	if err := s.Validate(); err != nil {
		return Study{}, err
	}

	s = s.Clone()
	if s.Experiments == nil {
		s.Experiments = []Experiment{}
	}

	ms.lock.Lock()
	s.ID = ms.nextID
	ms.nextID++
	ms.studies[s.ID] = s
	ms.lock.Unlock()

	return s.Clone(), nil
}

func (ms *MemoryStore) Approve(_ context.Context, id int64) (Study, error) {
	ms.lock.Lock()
	defer ms.lock.Unlock()

	s, ok := ms.studies[id]
	if !ok {
		return Study{}, ErrNotFound
	}

	s.Approved = true
	ms.studies[id] = s
	return s.Clone(), nil
}

func (ms *MemoryStore) Delete(_ context.Context, id int64) error {
	ms.lock.Lock()
	defer ms.lock.Unlock()

	if _, ok := ms.studies[id]; !ok {
		return ErrNotFound
	}

	delete(ms.studies, id)
	return nil
}
