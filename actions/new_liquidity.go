// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"

	"github.com/ava-labs/humidefi/codec"
	"github.com/ava-labs/humidefi/consts"
	"github.com/ava-labs/humidefi/fixed"
	"github.com/ava-labs/humidefi/pricing"
	"github.com/ava-labs/humidefi/state"
	"github.com/ava-labs/humidefi/storage"
)

var (
	_ Action = (*NewLiquidity)(nil)
	_ Result = (*NewLiquidityResult)(nil)
)

type NewLiquidityResult struct {
	LPToken uint32     `json:"lpToken"`
	Shares  uint64     `json:"shares"`
	LotID   uint64     `json:"lotID"`
	Price   fixed.U128 `json:"price"`
}

func (*NewLiquidityResult) GetTypeID() uint8 {
	return consts.NewLiquidityID
}

// NewLiquidity deposits both assets of a pair and mints shares for them.
// The first deposit into a pair creates its pool.
type NewLiquidity struct {
	AssetX  uint32 `json:"assetX"`
	AssetY  uint32 `json:"assetY"`
	AmountX uint64 `json:"amountX"`
	AmountY uint64 `json:"amountY"`
}

func (*NewLiquidity) GetTypeID() uint8 {
	return consts.NewLiquidityID
}

func (n *NewLiquidity) LockKeys(actor codec.Address, _ codec.Address) []string {
	pair := storage.AssetPair{AssetX: n.AssetX, AssetY: n.AssetY}
	return []string{
		pairLock(pair),
		assetLock(n.AssetX),
		assetLock(n.AssetY),
		accountLock(actor),
		shareAssetsLock,
	}
}

func (n *NewLiquidity) Execute(ctx context.Context, env *Env, mu state.Mutable, actor codec.Address) (Result, error) {
	pair, err := storage.NewAssetPair(n.AssetX, n.AssetY)
	if err != nil {
		return nil, err
	}
	if err := CheckAssetBalance(ctx, env, mu, actor, n.AssetX, n.AmountX, ErrInsufficientAssetXBalance); err != nil {
		return nil, err
	}
	if err := CheckAssetBalance(ctx, env, mu, actor, n.AssetY, n.AmountY, ErrInsufficientAssetYBalance); err != nil {
		return nil, err
	}
	if err := transfer(ctx, env, mu, n.AssetX, actor, env.Custody, n.AmountX); err != nil {
		return nil, err
	}
	if err := transfer(ctx, env, mu, n.AssetY, actor, env.Custody, n.AmountY); err != nil {
		return nil, err
	}

	lpToken, shares, err := env.Pricing.ComputeAndMintShare(ctx, mu, pair, n.AmountX, n.AmountY)
	if err != nil {
		return nil, err
	}
	if err := CheckAssetBalance(ctx, env, mu, env.Custody, lpToken, shares, ErrInsufficientShareBalance); err != nil {
		return nil, err
	}
	if err := transfer(ctx, env, mu, lpToken, env.Custody, actor, shares); err != nil {
		return nil, err
	}

	pool, found, err := storage.GetLiquidityPool(ctx, mu, pair)
	if err != nil {
		return nil, err
	}
	if !found {
		pool = &storage.LiquidityPool{
			AssetPair: pair,
			LPToken:   lpToken,
		}
	}
	reserveX, reserveY := pool.Reserves(pair)
	if reserveX, err = reserveX.Add(fixed.FromUint64(n.AmountX)); err != nil {
		return nil, err
	}
	if reserveY, err = reserveY.Add(fixed.FromUint64(n.AmountY)); err != nil {
		return nil, err
	}
	pool.SetReserves(pair, reserveX, reserveY)
	if pool.Price, err = pricing.ComputePrice(pool.AssetXBalance, pool.AssetYBalance); err != nil {
		return nil, err
	}
	if pool.LPTokenBalance, err = pool.LPTokenBalance.Add(fixed.FromUint64(shares)); err != nil {
		return nil, err
	}
	if err := storage.UpsertLiquidityPool(ctx, mu, pool); err != nil {
		return nil, err
	}

	// lots follow the pool's orientation
	lot := &storage.AccountLiquidityPool{
		LPToken:        lpToken,
		LPTokenBalance: fixed.FromUint64(shares),
	}
	lot.AssetXBalance, lot.AssetYBalance = orient(pair, pool.AssetPair, fixed.FromUint64(n.AmountX), fixed.FromUint64(n.AmountY))
	id, err := storage.AppendAccountLiquidityPool(ctx, mu, actor, pool.AssetPair, lot)
	if err != nil {
		return nil, err
	}
	return &NewLiquidityResult{
		LPToken: lpToken,
		Shares:  shares,
		LotID:   id,
		Price:   pool.Price,
	}, nil
}
