// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"context"
	"errors"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/utils/maybe"
	"github.com/ava-labs/avalanchego/utils/set"
)

const defaultOps = 8

var _ Mutable = (*View)(nil)

type op struct {
	k string

	pastExists  bool
	pastV       []byte
	pastChanged bool
}

// View buffers every write made by an atomic unit on top of a [Database].
// Nothing reaches the database until [Commit] and any suffix of the writes
// can be undone with [Rollback].
//
// View is not safe for concurrent use.
type View struct {
	db                 Database
	pendingChangedKeys map[string]maybe.Maybe[[]byte]

	// ops is a record of all operations performed on the view. Tracking
	// operations allows for reverting state to a certain point-in-time.
	ops []*op

	// touched records every key read or written through the view.
	touched set.Set[string]

	committed bool
}

func NewView(db Database) *View {
	return &View{
		db:                 db,
		pendingChangedKeys: make(map[string]maybe.Maybe[[]byte]),
		ops:                make([]*op, 0, defaultOps),
		touched:            set.NewSet[string](defaultOps),
	}
}

// GetValue returns the pending value of [key] if it was modified by the view
// and otherwise reads through to the database.
func (v *View) GetValue(ctx context.Context, key []byte) ([]byte, error) {
	k := string(key)
	v.touched.Add(k)
	val, _, exists, err := v.getValue(ctx, k)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, database.ErrNotFound
	}
	return val, nil
}

func (v *View) getValue(ctx context.Context, k string) ([]byte, bool, bool, error) {
	if pending, ok := v.pendingChangedKeys[k]; ok {
		if pending.IsNothing() {
			return nil, true, false, nil
		}
		return pending.Value(), true, true, nil
	}
	val, err := v.db.GetValue(ctx, []byte(k))
	switch {
	case errors.Is(err, database.ErrNotFound):
		return nil, false, false, nil
	case err != nil:
		return nil, false, false, err
	default:
		return val, false, true, nil
	}
}

// Insert sets [key] to [value].
//
// Any bytes passed into [Insert] are owned by the view and should not be
// modified after this call.
func (v *View) Insert(ctx context.Context, key []byte, value []byte) error {
	if v.committed {
		return ErrViewCommitted
	}
	k := string(key)
	past, changed, exists, err := v.getValue(ctx, k)
	if err != nil {
		return err
	}
	v.touched.Add(k)
	v.pendingChangedKeys[k] = maybe.Some(value)
	v.ops = append(v.ops, &op{
		k:           k,
		pastExists:  exists,
		pastV:       past,
		pastChanged: changed,
	})
	return nil
}

// Remove deletes [key]. Removing a key that does not exist is a no-op.
func (v *View) Remove(ctx context.Context, key []byte) error {
	if v.committed {
		return ErrViewCommitted
	}
	k := string(key)
	past, changed, exists, err := v.getValue(ctx, k)
	if err != nil {
		return err
	}
	v.touched.Add(k)
	if !exists {
		return nil
	}
	v.pendingChangedKeys[k] = maybe.Nothing[[]byte]()
	v.ops = append(v.ops, &op{
		k:           k,
		pastExists:  true,
		pastV:       past,
		pastChanged: changed,
	})
	return nil
}

// OpIndex returns the number of operations done on the view. It can be
// passed to [Rollback] later.
func (v *View) OpIndex() int {
	return len(v.ops)
}

// Rollback undoes every operation performed after [restorePoint].
func (v *View) Rollback(_ context.Context, restorePoint int) error {
	if restorePoint < 0 || restorePoint > len(v.ops) {
		return ErrInvalidRestorePoint
	}
	for i := len(v.ops) - 1; i >= restorePoint; i-- {
		op := v.ops[i]
		switch {
		case !op.pastChanged:
			// untouched before this op: fall back to the database
			delete(v.pendingChangedKeys, op.k)
		case !op.pastExists:
			v.pendingChangedKeys[op.k] = maybe.Nothing[[]byte]()
		default:
			v.pendingChangedKeys[op.k] = maybe.Some(op.pastV)
		}
	}
	v.ops = v.ops[:restorePoint]
	return nil
}

// PendingChanges returns the number of keys the view would write.
func (v *View) PendingChanges() int {
	return len(v.pendingChangedKeys)
}

// Changes returns the keys the view would write. The returned map must not
// be modified.
func (v *View) Changes() map[string]maybe.Maybe[[]byte] {
	return v.pendingChangedKeys
}

// Touched returns every key read or written through the view.
func (v *View) Touched() set.Set[string] {
	return v.touched
}

// Commit writes all pending changes to the database in one batch. A view
// can only be committed once.
func (v *View) Commit(ctx context.Context) error {
	if v.committed {
		return ErrViewCommitted
	}
	if err := v.db.Commit(ctx, v.pendingChangedKeys); err != nil {
		return err
	}
	v.committed = true
	return nil
}
