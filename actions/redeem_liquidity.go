// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"
	"fmt"

	"github.com/ava-labs/humidefi/codec"
	"github.com/ava-labs/humidefi/consts"
	"github.com/ava-labs/humidefi/fixed"
	"github.com/ava-labs/humidefi/pricing"
	"github.com/ava-labs/humidefi/state"
	"github.com/ava-labs/humidefi/storage"
)

var (
	_ Action = (*RedeemLiquidity)(nil)
	_ Result = (*RedeemLiquidityResult)(nil)
)

type RedeemLiquidityResult struct {
	AmountX       uint64     `json:"amountX"`
	AmountY       uint64     `json:"amountY"`
	LPTokenAmount uint64     `json:"lpTokenAmount"`
	Price         fixed.U128 `json:"price"`
	PriceUpdated  bool       `json:"priceUpdated"`
	ClearedLots   int        `json:"clearedLots"`
}

func (*RedeemLiquidityResult) GetTypeID() uint8 {
	return consts.RedeemLiquidityID
}

// RedeemLiquidity pays out lot [ID] at the pool's current price.
//
// Redemption removes every lot the actor holds for the pair, not only the
// redeemed one. The redeemed shares stay with the actor.
type RedeemLiquidity struct {
	AssetX  uint32 `json:"assetX"`
	AssetY  uint32 `json:"assetY"`
	LPToken uint32 `json:"lpToken"`
	ID      uint64 `json:"id"`
}

func (*RedeemLiquidity) GetTypeID() uint8 {
	return consts.RedeemLiquidityID
}

func (r *RedeemLiquidity) LockKeys(actor codec.Address, _ codec.Address) []string {
	pair := storage.AssetPair{AssetX: r.AssetX, AssetY: r.AssetY}
	return []string{
		pairLock(pair),
		assetLock(r.AssetX),
		assetLock(r.AssetY),
		accountLock(actor),
	}
}

func (r *RedeemLiquidity) Execute(ctx context.Context, env *Env, mu state.Mutable, actor codec.Address) (Result, error) {
	pair, err := storage.NewAssetPair(r.AssetX, r.AssetY)
	if err != nil {
		return nil, err
	}
	_, found, err := storage.GetLiquidityPool(ctx, mu, pair)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: %s", storage.ErrPoolNotFound, pair)
	}
	w, err := env.Pricing.ComputeWithdrawal(ctx, mu, actor, pair, r.LPToken, r.ID)
	if err != nil {
		return nil, err
	}
	pool := w.Pool
	amountX, amountY := orient(pool.AssetPair, pair, w.AssetXAmount, w.AssetYAmount)

	if err := CheckAssetBalance(ctx, env, mu, env.Custody, r.AssetX, amountX, ErrInsufficientAssetXBalance); err != nil {
		return nil, err
	}
	if err := CheckAssetBalance(ctx, env, mu, env.Custody, r.AssetY, amountY, ErrInsufficientAssetYBalance); err != nil {
		return nil, err
	}
	if err := transfer(ctx, env, mu, r.AssetX, env.Custody, actor, amountX); err != nil {
		return nil, err
	}
	if err := transfer(ctx, env, mu, r.AssetY, env.Custody, actor, amountY); err != nil {
		return nil, err
	}

	reserveX, reserveY := pool.Reserves(pair)
	if reserveX, err = reserveX.Sub(fixed.FromUint64(amountX)); err != nil {
		return nil, err
	}
	if reserveY, err = reserveY.Sub(fixed.FromUint64(amountY)); err != nil {
		return nil, err
	}
	pool.SetReserves(pair, reserveX, reserveY)
	if pool.LPTokenBalance, err = pool.LPTokenBalance.Sub(fixed.FromUint64(w.LPTokenAmount)); err != nil {
		return nil, err
	}
	// A drained reserve has no price. The pool keeps its last one.
	price, err := pricing.ComputePrice(pool.AssetXBalance, pool.AssetYBalance)
	priceUpdated := err == nil
	if priceUpdated {
		pool.Price = price
	}
	if err := storage.UpsertLiquidityPool(ctx, mu, pool); err != nil {
		return nil, err
	}

	lots, _, err := storage.GetAccountLiquidityPools(ctx, mu, actor, pair)
	if err != nil {
		return nil, err
	}
	if err := storage.ClearAccountLiquidityPools(ctx, mu, actor, pair); err != nil {
		return nil, err
	}
	return &RedeemLiquidityResult{
		AmountX:       amountX,
		AmountY:       amountY,
		LPTokenAmount: w.LPTokenAmount,
		Price:         pool.Price,
		PriceUpdated:  priceUpdated,
		ClearedLots:   len(lots),
	}, nil
}
