// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/utils/maybe"
	"github.com/stretchr/testify/require"
)

var (
	testKey  = []byte("key")
	testVal  = []byte("value")
	testVal2 = []byte("value2")
)

func TestGetValue(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	db := NewMemoryDatabase()
	require.NoError(db.Commit(ctx, map[string]maybe.Maybe[[]byte]{
		string(testKey): maybe.Some(testVal),
	}))

	v := NewView(db)
	val, err := v.GetValue(ctx, testKey)
	require.NoError(err)
	require.Equal(testVal, val)

	_, err = v.GetValue(ctx, []byte("missing"))
	require.ErrorIs(err, database.ErrNotFound)
	require.True(v.Touched().Contains("missing"))
	require.Zero(v.PendingChanges())
}

func TestInsertRemove(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	v := NewView(NewMemoryDatabase())
	require.NoError(v.Insert(ctx, testKey, testVal))
	val, err := v.GetValue(ctx, testKey)
	require.NoError(err)
	require.Equal(testVal, val)
	require.Equal(1, v.OpIndex())

	require.NoError(v.Remove(ctx, testKey))
	_, err = v.GetValue(ctx, testKey)
	require.ErrorIs(err, database.ErrNotFound)
	require.Equal(2, v.OpIndex())

	// removing a missing key records nothing
	require.NoError(v.Remove(ctx, []byte("missing")))
	require.Equal(2, v.OpIndex())
}

func TestRollback(t *testing.T) {
	tests := []struct {
		name     string
		stored   bool
		ops      func(context.Context, *View) error
		restore  int
		expected []byte
	}{
		{
			name: "insert over nothing",
			ops: func(ctx context.Context, v *View) error {
				return v.Insert(ctx, testKey, testVal)
			},
			restore: 0,
		},
		{
			name:   "insert over stored value",
			stored: true,
			ops: func(ctx context.Context, v *View) error {
				return v.Insert(ctx, testKey, testVal2)
			},
			restore:  0,
			expected: testVal,
		},
		{
			name:   "remove stored value",
			stored: true,
			ops: func(ctx context.Context, v *View) error {
				return v.Remove(ctx, testKey)
			},
			restore:  0,
			expected: testVal,
		},
		{
			name: "partial rollback keeps earlier write",
			ops: func(ctx context.Context, v *View) error {
				if err := v.Insert(ctx, testKey, testVal); err != nil {
					return err
				}
				return v.Insert(ctx, testKey, testVal2)
			},
			restore:  1,
			expected: testVal,
		},
		{
			name: "insert then remove then rollback remove",
			ops: func(ctx context.Context, v *View) error {
				if err := v.Insert(ctx, testKey, testVal2); err != nil {
					return err
				}
				return v.Remove(ctx, testKey)
			},
			restore:  1,
			expected: testVal2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			ctx := context.Background()

			db := NewMemoryDatabase()
			if tt.stored {
				require.NoError(db.Commit(ctx, map[string]maybe.Maybe[[]byte]{
					string(testKey): maybe.Some(testVal),
				}))
			}
			v := NewView(db)
			require.NoError(tt.ops(ctx, v))
			require.NoError(v.Rollback(ctx, tt.restore))
			require.Equal(tt.restore, v.OpIndex())

			val, err := v.GetValue(ctx, testKey)
			if tt.expected == nil {
				require.ErrorIs(err, database.ErrNotFound)
				return
			}
			require.NoError(err)
			require.Equal(tt.expected, val)
		})
	}
}

func TestRollbackInvalidRestorePoint(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	v := NewView(NewMemoryDatabase())
	require.NoError(v.Insert(ctx, testKey, testVal))
	require.ErrorIs(v.Rollback(ctx, 2), ErrInvalidRestorePoint)
	require.ErrorIs(v.Rollback(ctx, -1), ErrInvalidRestorePoint)
}

func TestCommit(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	db := NewMemoryDatabase()
	require.NoError(db.Commit(ctx, map[string]maybe.Maybe[[]byte]{
		"stale": maybe.Some(testVal),
	}))

	v := NewView(db)
	require.NoError(v.Insert(ctx, testKey, testVal))
	require.NoError(v.Remove(ctx, []byte("stale")))
	require.Equal(2, v.PendingChanges())

	// nothing is visible before commit
	_, err := db.GetValue(ctx, testKey)
	require.ErrorIs(err, database.ErrNotFound)

	require.NoError(v.Commit(ctx))
	val, err := db.GetValue(ctx, testKey)
	require.NoError(err)
	require.Equal(testVal, val)
	_, err = db.GetValue(ctx, []byte("stale"))
	require.ErrorIs(err, database.ErrNotFound)

	require.ErrorIs(v.Commit(ctx), ErrViewCommitted)
	require.ErrorIs(v.Insert(ctx, testKey, testVal2), ErrViewCommitted)
}

func TestSortedKeys(t *testing.T) {
	require := require.New(t)

	keys := SortedKeys(map[string]int{"b": 1, "c": 2, "a": 3})
	require.Equal([]string{"a", "b", "c"}, keys)
}
