// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pricing

import (
	"context"
	"fmt"

	"github.com/ava-labs/humidefi/codec"
	"github.com/ava-labs/humidefi/consts"
	"github.com/ava-labs/humidefi/ledger"
	"github.com/ava-labs/humidefi/state"
	"github.com/ava-labs/humidefi/storage"
)

// Engine mints and values pool shares. Every pool's reserves and freshly
// minted shares are held by the custodial account.
type Engine struct {
	ledger          ledger.AssetLedger
	custody         codec.Address
	shareAssetStart uint32
}

func NewEngine(l ledger.AssetLedger, custody codec.Address, shareAssetStart uint32) *Engine {
	return &Engine{
		ledger:          l,
		custody:         custody,
		shareAssetStart: shareAssetStart,
	}
}

// Withdrawal is the payout for one lot, ordered as [Pool.AssetPair].
type Withdrawal struct {
	Pool *storage.LiquidityPool
	Lot  *storage.AccountLiquidityPool

	AssetXAmount  uint64
	AssetYAmount  uint64
	LPTokenAmount uint64
}

// ComputeAndMintShare mints floor(sqrt(x * y)) shares of the pair's share
// asset into the custodial account, creating the share asset if the pair
// has no pool yet.
func (e *Engine) ComputeAndMintShare(
	ctx context.Context,
	mu state.Mutable,
	pair storage.AssetPair,
	amountX uint64,
	amountY uint64,
) (uint32, uint64, error) {
	shares, err := ComputeShares(amountX, amountY)
	if err != nil {
		return 0, 0, err
	}
	pool, found, err := storage.GetLiquidityPool(ctx, mu, pair)
	if err != nil {
		return 0, 0, err
	}
	var lpToken uint32
	if found {
		lpToken = pool.LPToken
	} else {
		lpToken, err = e.allocateShareAsset(ctx, mu)
		if err != nil {
			return 0, 0, err
		}
	}
	if err := e.ledger.MintInto(ctx, mu, lpToken, e.custody, shares); err != nil {
		return 0, 0, fmt.Errorf("%w: asset=%d amount=%d: %w", ErrMintFailed, lpToken, shares, err)
	}
	return lpToken, shares, nil
}

// allocateShareAsset registers the first unused asset id at or above the
// configured start.
func (e *Engine) allocateShareAsset(ctx context.Context, mu state.Mutable) (uint32, error) {
	for id := e.shareAssetStart; ; id++ {
		exists, err := e.ledger.AssetExists(ctx, mu, id)
		if err != nil {
			return 0, err
		}
		if !exists {
			if err := e.ledger.Create(ctx, mu, id, e.custody, true, consts.ShareAssetMinBalance); err != nil {
				return 0, fmt.Errorf("%w: could not create share asset %d: %w", ErrMintFailed, id, err)
			}
			return id, nil
		}
		if id == consts.MaxUint32 {
			return 0, ErrShareAssetsExhausted
		}
	}
}

// ComputeWithdrawal values lot [lotID] of [account] at the pool's current
// price: x = shares / sqrt(price) and y = shares * sqrt(price).
func (*Engine) ComputeWithdrawal(
	ctx context.Context,
	im state.Immutable,
	account codec.Address,
	pair storage.AssetPair,
	lpToken uint32,
	lotID uint64,
) (*Withdrawal, error) {
	lots, found, err := storage.GetAccountLiquidityPools(ctx, im, account, pair)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: account=%s pair=%s", storage.ErrPositionNotFound, account, pair)
	}
	lot, ok := storage.FindAccountLiquidityPool(lots, lpToken, lotID)
	if !ok {
		return nil, fmt.Errorf("%w: account=%s pair=%s lpToken=%d id=%d", storage.ErrPositionNotFound, account, pair, lpToken, lotID)
	}
	pool, found, err := storage.GetLiquidityPool(ctx, im, pair)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: %s", storage.ErrPoolNotFound, pair)
	}
	if pool.Price.IsZero() {
		return nil, fmt.Errorf("%w: pool %s has no price", ErrCannotBeZero, pool.AssetPair)
	}

	root := pool.Price.Sqrt()
	x, err := lot.LPTokenBalance.Div(root)
	if err != nil {
		return nil, err
	}
	y, err := lot.LPTokenBalance.Mul(root)
	if err != nil {
		return nil, err
	}

	w := &Withdrawal{
		Pool: pool,
		Lot:  lot,
	}
	if w.AssetXAmount, err = x.Uint64(); err != nil {
		return nil, err
	}
	if w.AssetYAmount, err = y.Uint64(); err != nil {
		return nil, err
	}
	if w.LPTokenAmount, err = lot.LPTokenBalance.Uint64(); err != nil {
		return nil, err
	}
	return w, nil
}
