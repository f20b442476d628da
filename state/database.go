// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"context"
	"slices"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ava-labs/avalanchego/utils/maybe"
	"golang.org/x/exp/maps"
)

var _ Database = (*BaseDatabase)(nil)

// BaseDatabase adapts an avalanchego [database.Database] to [Database].
type BaseDatabase struct {
	db database.Database
}

func NewDatabase(db database.Database) *BaseDatabase {
	return &BaseDatabase{db: db}
}

// NewMemoryDatabase returns a [Database] that lives only in memory.
func NewMemoryDatabase() *BaseDatabase {
	return NewDatabase(memdb.New())
}

func (b *BaseDatabase) GetValue(_ context.Context, key []byte) ([]byte, error) {
	return b.db.Get(key)
}

func (b *BaseDatabase) Commit(_ context.Context, changes map[string]maybe.Maybe[[]byte]) error {
	batch := b.db.NewBatch()
	for _, k := range SortedKeys(changes) {
		v := changes[k]
		if v.IsNothing() {
			if err := batch.Delete([]byte(k)); err != nil {
				return err
			}
			continue
		}
		if err := batch.Put([]byte(k), v.Value()); err != nil {
			return err
		}
	}
	return batch.Write()
}

func (b *BaseDatabase) Close() error {
	return b.db.Close()
}

// SortedKeys orders a change set so batches are written deterministically.
func SortedKeys[V any](m map[string]V) []string {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}
