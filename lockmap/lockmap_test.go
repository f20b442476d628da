// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package lockmap

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestLockAll(t *testing.T) {
	require := require.New(t)
	l := New(4)

	held := l.LockAll([]string{"pair/1/2", "account/a", "pair/1/2", "asset/1"})
	require.Equal([]string{"account/a", "asset/1", "pair/1/2"}, held)
	require.Equal(3, l.Locks())

	l.UnlockAll(held)
	require.Zero(l.Locks())
}

func TestLockAllSerializesOverlap(t *testing.T) {
	require := require.New(t)
	l := New(0)

	var (
		mu      sync.Mutex
		active  int
		maxSeen int
	)
	var eg errgroup.Group
	for i := 0; i < 32; i++ {
		keys := []string{"asset/1", "account/a"}
		if i%2 == 0 {
			keys = []string{"account/a", "asset/1"}
		}
		eg.Go(func() error {
			held := l.LockAll(keys)
			defer l.UnlockAll(held)

			mu.Lock()
			active++
			maxSeen = max(maxSeen, active)
			mu.Unlock()

			mu.Lock()
			active--
			mu.Unlock()
			return nil
		})
	}
	require.NoError(eg.Wait())
	require.Equal(1, maxSeen)
	require.Zero(l.Locks())
}
