// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package actions implements the pool operations. Each action runs inside
// one atomic unit: when Execute returns an error, the caller discards every
// write the action made.
package actions

import (
	"context"
	"fmt"
	"strconv"

	"github.com/ava-labs/humidefi/codec"
	"github.com/ava-labs/humidefi/ledger"
	"github.com/ava-labs/humidefi/pricing"
	"github.com/ava-labs/humidefi/state"
	"github.com/ava-labs/humidefi/storage"

	smath "github.com/ava-labs/avalanchego/utils/math"
)

type Action interface {
	GetTypeID() uint8

	// LockKeys returns the resources the action may touch. Actions with
	// disjoint lock keys can run in parallel.
	LockKeys(actor codec.Address, custody codec.Address) []string

	Execute(ctx context.Context, env *Env, mu state.Mutable, actor codec.Address) (Result, error)
}

type Result interface {
	GetTypeID() uint8
}

// Env carries what every action needs besides state.
type Env struct {
	Custody codec.Address
	Ledger  ledger.AssetLedger
	Pricing *pricing.Engine
}

func NewEnv(l ledger.AssetLedger, custody codec.Address, shareAssetStart uint32) *Env {
	return &Env{
		Custody: custody,
		Ledger:  l,
		Pricing: pricing.NewEngine(l, custody, shareAssetStart),
	}
}

// CheckAssetBalance fails with [insufficient] unless [account] holds at least
// [amount] of [asset]. It never writes.
func CheckAssetBalance(
	ctx context.Context,
	env *Env,
	im state.Immutable,
	account codec.Address,
	asset uint32,
	amount uint64,
	insufficient error,
) error {
	bal, err := env.Ledger.BalanceOf(ctx, im, account, asset)
	if err != nil {
		return err
	}
	if _, err := smath.Sub(bal, amount); err != nil {
		return fmt.Errorf("%w (account=%s, asset=%d, bal=%d, amount=%d)", insufficient, account, asset, bal, amount)
	}
	return nil
}

func transfer(
	ctx context.Context,
	env *Env,
	mu state.Mutable,
	asset uint32,
	from codec.Address,
	to codec.Address,
	amount uint64,
) error {
	if err := env.Ledger.Transfer(ctx, mu, asset, from, to, amount); err != nil {
		return fmt.Errorf("%w (asset=%d, from=%s, to=%s, amount=%d): %w", ErrTransferFailed, asset, from, to, amount, err)
	}
	return nil
}

// orient reorders values given in [from]'s order into [to]'s order.
func orient[T any](from storage.AssetPair, to storage.AssetPair, a T, b T) (T, T) {
	if from == to {
		return a, b
	}
	return b, a
}

// Lock keys
const shareAssetsLock = "share-assets"

func pairLock(pair storage.AssetPair) string {
	lo, hi := pair.AssetX, pair.AssetY
	if lo > hi {
		lo, hi = hi, lo
	}
	return "pair/" + strconv.FormatUint(uint64(lo), 10) + "/" + strconv.FormatUint(uint64(hi), 10)
}

// assetLock guards the custodial balance and supply of [asset].
func assetLock(asset uint32) string {
	return "asset/" + strconv.FormatUint(uint64(asset), 10)
}

func accountLock(account codec.Address) string {
	return "account/" + account.String()
}
