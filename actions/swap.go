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
	_ Action = (*SwapExactInForOut)(nil)
	_ Action = (*SwapInForExactOut)(nil)

	_ Result = (*SwapExactInForOutResult)(nil)
	_ Result = (*SwapInForExactOutResult)(nil)
)

// SwapResult reports both legs of a swap and the pool price after it.
type SwapResult struct {
	AmountIn  uint64     `json:"amountIn"`
	AmountOut uint64     `json:"amountOut"`
	Price     fixed.U128 `json:"price"`
}

type SwapExactInForOutResult struct {
	SwapResult
}

func (*SwapExactInForOutResult) GetTypeID() uint8 {
	return consts.SwapExactInForOutID
}

type SwapInForExactOutResult struct {
	SwapResult
}

func (*SwapInForExactOutResult) GetTypeID() uint8 {
	return consts.SwapInForExactOutID
}

// SwapExactInForOut sells exactly [AmountIn] of [AssetIn] at the pool's spot
// price.
type SwapExactInForOut struct {
	AssetIn  uint32 `json:"assetIn"`
	AssetOut uint32 `json:"assetOut"`
	AmountIn uint64 `json:"amountIn"`
}

func (*SwapExactInForOut) GetTypeID() uint8 {
	return consts.SwapExactInForOutID
}

func (s *SwapExactInForOut) LockKeys(actor codec.Address, _ codec.Address) []string {
	return swapLockKeys(s.AssetIn, s.AssetOut, actor)
}

func (s *SwapExactInForOut) Execute(ctx context.Context, env *Env, mu state.Mutable, actor codec.Address) (Result, error) {
	pair, err := storage.NewAssetPair(s.AssetIn, s.AssetOut)
	if err != nil {
		return nil, err
	}
	if err := CheckAssetBalance(ctx, env, mu, actor, s.AssetIn, s.AmountIn, ErrInsufficientAssetInBalance); err != nil {
		return nil, err
	}
	if err := transfer(ctx, env, mu, s.AssetIn, actor, env.Custody, s.AmountIn); err != nil {
		return nil, err
	}
	pool, err := getPool(ctx, mu, pair)
	if err != nil {
		return nil, err
	}

	reserveIn, reserveOut := pool.Reserves(pair)
	outPerIn, err := pricing.ComputePrice(reserveIn, reserveOut)
	if err != nil {
		return nil, err
	}
	amountOut, err := pricing.ComputeOutput(outPerIn, s.AmountIn)
	if err != nil {
		return nil, err
	}
	if err := CheckAssetBalance(ctx, env, mu, env.Custody, s.AssetOut, amountOut, ErrInsufficientAssetOutBalance); err != nil {
		return nil, err
	}
	if err := transfer(ctx, env, mu, s.AssetOut, env.Custody, actor, amountOut); err != nil {
		return nil, err
	}
	if err := applySwap(ctx, mu, pool, pair, s.AmountIn, amountOut); err != nil {
		return nil, err
	}
	return &SwapExactInForOutResult{SwapResult{
		AmountIn:  s.AmountIn,
		AmountOut: amountOut,
		Price:     pool.Price,
	}}, nil
}

// SwapInForExactOut buys exactly [AmountOut] of [AssetOut]. The custodial
// account pays out first and the input is then charged at the pool's spot
// price.
type SwapInForExactOut struct {
	AssetIn   uint32 `json:"assetIn"`
	AssetOut  uint32 `json:"assetOut"`
	AmountOut uint64 `json:"amountOut"`
}

func (*SwapInForExactOut) GetTypeID() uint8 {
	return consts.SwapInForExactOutID
}

func (s *SwapInForExactOut) LockKeys(actor codec.Address, _ codec.Address) []string {
	return swapLockKeys(s.AssetIn, s.AssetOut, actor)
}

func (s *SwapInForExactOut) Execute(ctx context.Context, env *Env, mu state.Mutable, actor codec.Address) (Result, error) {
	pair, err := storage.NewAssetPair(s.AssetIn, s.AssetOut)
	if err != nil {
		return nil, err
	}
	if err := CheckAssetBalance(ctx, env, mu, env.Custody, s.AssetOut, s.AmountOut, ErrInsufficientAssetOutBalance); err != nil {
		return nil, err
	}
	if err := transfer(ctx, env, mu, s.AssetOut, env.Custody, actor, s.AmountOut); err != nil {
		return nil, err
	}
	pool, err := getPool(ctx, mu, pair)
	if err != nil {
		return nil, err
	}

	reserveIn, reserveOut := pool.Reserves(pair)
	inPerOut, err := pricing.ComputePrice(reserveOut, reserveIn)
	if err != nil {
		return nil, err
	}
	amountIn, err := pricing.ComputeOutput(inPerOut, s.AmountOut)
	if err != nil {
		return nil, err
	}
	if err := CheckAssetBalance(ctx, env, mu, actor, s.AssetIn, amountIn, ErrInsufficientAssetInBalance); err != nil {
		return nil, err
	}
	if err := transfer(ctx, env, mu, s.AssetIn, actor, env.Custody, amountIn); err != nil {
		return nil, err
	}
	if err := applySwap(ctx, mu, pool, pair, amountIn, s.AmountOut); err != nil {
		return nil, err
	}
	return &SwapInForExactOutResult{SwapResult{
		AmountIn:  amountIn,
		AmountOut: s.AmountOut,
		Price:     pool.Price,
	}}, nil
}

func swapLockKeys(assetIn uint32, assetOut uint32, actor codec.Address) []string {
	return []string{
		pairLock(storage.AssetPair{AssetX: assetIn, AssetY: assetOut}),
		assetLock(assetIn),
		assetLock(assetOut),
		accountLock(actor),
	}
}

func getPool(ctx context.Context, im state.Immutable, pair storage.AssetPair) (*storage.LiquidityPool, error) {
	pool, found, err := storage.GetLiquidityPool(ctx, im, pair)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: %s", storage.ErrPoolNotFound, pair)
	}
	return pool, nil
}

// applySwap moves the reserves of [pool] by a trade ordered as [pair] (in,
// out) and reprices it.
func applySwap(
	ctx context.Context,
	mu state.Mutable,
	pool *storage.LiquidityPool,
	pair storage.AssetPair,
	amountIn uint64,
	amountOut uint64,
) error {
	reserveIn, reserveOut := pool.Reserves(pair)
	reserveIn, err := reserveIn.Add(fixed.FromUint64(amountIn))
	if err != nil {
		return err
	}
	reserveOut, err = reserveOut.Sub(fixed.FromUint64(amountOut))
	if err != nil {
		return err
	}
	pool.SetReserves(pair, reserveIn, reserveOut)
	if pool.Price, err = pricing.ComputePrice(pool.AssetXBalance, pool.AssetYBalance); err != nil {
		return err
	}
	return storage.UpsertLiquidityPool(ctx, mu, pool)
}
