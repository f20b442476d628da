// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package ledger defines the asset ledger the pool engine moves balances
// through.
package ledger

import (
	"context"
	"errors"

	"github.com/ava-labs/humidefi/codec"
	"github.com/ava-labs/humidefi/state"
)

//go:generate go run go.uber.org/mock/mockgen -package=ledgermock -destination=ledgermock/ledger.go . AssetLedger

var (
	ErrAssetNotFound     = errors.New("asset not found")
	ErrAssetExists       = errors.New("asset already exists")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrBelowMinBalance   = errors.New("balance below asset minimum")
)

// AssetLedger holds fungible asset balances. Every effect is applied to the
// [state.Mutable] it is given so that it commits or rolls back together with
// the rest of an operation.
type AssetLedger interface {
	// BalanceOf returns the balance of [account] in [asset]. Unknown
	// accounts hold zero.
	BalanceOf(ctx context.Context, im state.Immutable, account codec.Address, asset uint32) (uint64, error)

	// Transfer moves [amount] of [asset] between accounts and fails
	// without side effects if [from] cannot cover it.
	Transfer(ctx context.Context, mu state.Mutable, asset uint32, from codec.Address, to codec.Address, amount uint64) error

	AssetExists(ctx context.Context, im state.Immutable, asset uint32) (bool, error)

	// Create registers [asset] as mintable by [owner].
	Create(ctx context.Context, mu state.Mutable, asset uint32, owner codec.Address, isSufficient bool, minBalance uint64) error

	// MintInto credits [amount] of [asset] to [account] and grows the
	// asset's supply.
	MintInto(ctx context.Context, mu state.Mutable, asset uint32, account codec.Address, amount uint64) error
}
