// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package lockmap serializes work on named resources. Units that share a
// key run one at a time; units with disjoint keys do not block each other.
package lockmap

import (
	"slices"
	"sync"
)

type holderLock struct {
	holders int
	mu      sync.Mutex
}

type Lockmap struct {
	l sync.Mutex
	m map[string]*holderLock
}

func New(initSize int) *Lockmap {
	return &Lockmap{
		m: make(map[string]*holderLock, initSize),
	}
}

func (l *Lockmap) Lock(key string) {
	l.l.Lock()
	hl, ok := l.m[key]
	if !ok {
		hl = &holderLock{}
		l.m[key] = hl
	}
	hl.holders++
	l.l.Unlock()

	hl.mu.Lock()
}

func (l *Lockmap) Unlock(key string) {
	l.l.Lock()
	hl := l.m[key]
	hl.holders--
	if hl.holders == 0 {
		delete(l.m, key)
	}
	l.l.Unlock()

	hl.mu.Unlock()
}

// LockAll acquires every key in sorted order and returns the keys it holds
// (deduplicated). Two callers locking overlapping sets therefore cannot
// deadlock.
func (l *Lockmap) LockAll(keys []string) []string {
	sorted := slices.Clone(keys)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)
	for _, k := range sorted {
		l.Lock(k)
	}
	return sorted
}

// UnlockAll releases keys returned by [LockAll].
func (l *Lockmap) UnlockAll(keys []string) {
	for i := len(keys) - 1; i >= 0; i-- {
		l.Unlock(keys[i])
	}
}

// Locks returns the number of keys currently held or waited on.
func (l *Lockmap) Locks() int {
	l.l.Lock()
	defer l.l.Unlock()

	return len(l.m)
}
