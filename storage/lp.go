// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/ava-labs/avalanchego/database"
	"github.com/near/borsh-go"

	"github.com/ava-labs/humidefi/fixed"
	"github.com/ava-labs/humidefi/state"
)

// AssetPair names two assets. (x, y) and (y, x) refer to the same pool.
type AssetPair struct {
	AssetX uint32 `json:"assetX"`
	AssetY uint32 `json:"assetY"`
}

func NewAssetPair(assetX uint32, assetY uint32) (AssetPair, error) {
	if assetX == assetY {
		return AssetPair{}, fmt.Errorf("%w: %d", ErrIdenticalAssets, assetX)
	}
	return AssetPair{AssetX: assetX, AssetY: assetY}, nil
}

// Swap returns the pair in the opposite orientation.
func (p AssetPair) Swap() AssetPair {
	return AssetPair{AssetX: p.AssetY, AssetY: p.AssetX}
}

// Same reports whether p and q denote the same unordered pair.
func (p AssetPair) Same(q AssetPair) bool {
	return p == q || p == q.Swap()
}

func (p AssetPair) String() string {
	return fmt.Sprintf("(%d, %d)", p.AssetX, p.AssetY)
}

// LiquidityPool is the reserve state of one pair. Price is always
// AssetYBalance / AssetXBalance for the stored orientation.
type LiquidityPool struct {
	AssetPair      AssetPair  `json:"assetPair"`
	AssetXBalance  fixed.U128 `json:"assetXBalance"`
	AssetYBalance  fixed.U128 `json:"assetYBalance"`
	Price          fixed.U128 `json:"price"`
	AssetXFee      fixed.U128 `json:"assetXFee"`
	AssetYFee      fixed.U128 `json:"assetYFee"`
	LPToken        uint32     `json:"lpToken"`
	LPTokenBalance fixed.U128 `json:"lpTokenBalance"`
}

// Reserves returns the pool's balances ordered as [pair].
func (p *LiquidityPool) Reserves(pair AssetPair) (fixed.U128, fixed.U128) {
	if pair == p.AssetPair {
		return p.AssetXBalance, p.AssetYBalance
	}
	return p.AssetYBalance, p.AssetXBalance
}

// SetReserves stores balances given in [pair]'s order.
func (p *LiquidityPool) SetReserves(pair AssetPair, a fixed.U128, b fixed.U128) {
	if pair == p.AssetPair {
		p.AssetXBalance, p.AssetYBalance = a, b
		return
	}
	p.AssetXBalance, p.AssetYBalance = b, a
}

type liquidityPoolRecord struct {
	AssetX         uint32
	AssetY         uint32
	AssetXBalance  [fixed.Len]byte
	AssetYBalance  [fixed.Len]byte
	Price          [fixed.Len]byte
	AssetXFee      [fixed.Len]byte
	AssetYFee      [fixed.Len]byte
	LPToken        uint32
	LPTokenBalance [fixed.Len]byte
}

// GetLiquidityPool returns the pool for [pair] in whichever orientation it
// was created.
func GetLiquidityPool(
	ctx context.Context,
	im state.Immutable,
	pair AssetPair,
) (*LiquidityPool, bool, error) {
	for _, candidate := range []AssetPair{pair, pair.Swap()} {
		v, err := im.GetValue(ctx, LiquidityPoolKey(candidate))
		if errors.Is(err, database.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, false, err
		}
		pool, err := parseLiquidityPool(v)
		if err != nil {
			return nil, false, err
		}
		return pool, true, nil
	}
	return nil, false, nil
}

// UpsertLiquidityPool writes [pool] under its own orientation so the key a
// pool was created with never changes.
func UpsertLiquidityPool(
	ctx context.Context,
	mu state.Mutable,
	pool *LiquidityPool,
) error {
	v, err := borsh.Serialize(liquidityPoolRecord{
		AssetX:         pool.AssetPair.AssetX,
		AssetY:         pool.AssetPair.AssetY,
		AssetXBalance:  pool.AssetXBalance.Bytes(),
		AssetYBalance:  pool.AssetYBalance.Bytes(),
		Price:          pool.Price.Bytes(),
		AssetXFee:      pool.AssetXFee.Bytes(),
		AssetYFee:      pool.AssetYFee.Bytes(),
		LPToken:        pool.LPToken,
		LPTokenBalance: pool.LPTokenBalance.Bytes(),
	})
	if err != nil {
		return err
	}
	return mu.Insert(ctx, LiquidityPoolKey(pool.AssetPair), v)
}

func parseLiquidityPool(v []byte) (*LiquidityPool, error) {
	var r liquidityPoolRecord
	if err := borsh.Deserialize(&r, v); err != nil {
		return nil, fmt.Errorf("%w: liquidity pool: %w", ErrCorruptedRecord, err)
	}
	return &LiquidityPool{
		AssetPair:      AssetPair{AssetX: r.AssetX, AssetY: r.AssetY},
		AssetXBalance:  fixed.FromBytes(r.AssetXBalance),
		AssetYBalance:  fixed.FromBytes(r.AssetYBalance),
		Price:          fixed.FromBytes(r.Price),
		AssetXFee:      fixed.FromBytes(r.AssetXFee),
		AssetYFee:      fixed.FromBytes(r.AssetYFee),
		LPToken:        r.LPToken,
		LPTokenBalance: fixed.FromBytes(r.LPTokenBalance),
	}, nil
}
