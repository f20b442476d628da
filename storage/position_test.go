// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/database"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/humidefi/codec"
	"github.com/ava-labs/humidefi/consts"
	"github.com/ava-labs/humidefi/fixed"
)

var (
	alice = codec.DeriveAddress(consts.AccountID, []byte("alice"))
	bob   = codec.DeriveAddress(consts.AccountID, []byte("bob"))
)

func newLot(x, y, shares uint64) *AccountLiquidityPool {
	return &AccountLiquidityPool{
		AssetXBalance:  fixed.FromUint64(x),
		AssetYBalance:  fixed.FromUint64(y),
		LPToken:        9,
		LPTokenBalance: fixed.FromUint64(shares),
	}
}

func TestAppendAccountLiquidityPool(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	mu := newTestState()
	pair := AssetPair{AssetX: 1, AssetY: 2}

	_, found, err := GetAccountLiquidityPools(ctx, mu, alice, pair)
	require.NoError(err)
	require.False(found)

	for i := uint64(1); i <= 3; i++ {
		id, err := AppendAccountLiquidityPool(ctx, mu, alice, pair, newLot(100, 400, 200))
		require.NoError(err)
		require.Equal(i, id)
	}

	lots, found, err := GetAccountLiquidityPools(ctx, mu, alice, pair.Swap())
	require.NoError(err)
	require.True(found)
	require.Len(lots, 3)
	for i, lot := range lots {
		require.Equal(uint64(i+1), lot.ID)
		require.Equal(alice, lot.AccountID)
		require.Equal(pair, lot.AssetPair)
		require.Equal(fixed.FromUint64(100), lot.AssetXBalance)
		require.Equal(fixed.FromUint64(400), lot.AssetYBalance)
	}

	// other accounts are independent
	id, err := AppendAccountLiquidityPool(ctx, mu, bob, pair, newLot(1, 1, 1))
	require.NoError(err)
	require.Equal(uint64(1), id)

	lot, ok := FindAccountLiquidityPool(lots, 9, 2)
	require.True(ok)
	require.Equal(uint64(2), lot.ID)
	_, ok = FindAccountLiquidityPool(lots, 8, 2)
	require.False(ok)
}

func TestAppendAccountLiquidityPoolSwappedPair(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	mu := newTestState()
	pair := AssetPair{AssetX: 1, AssetY: 2}

	_, err := AppendAccountLiquidityPool(ctx, mu, alice, pair, newLot(100, 400, 200))
	require.NoError(err)

	// balances given in the swapped order are stored in the list's order
	id, err := AppendAccountLiquidityPool(ctx, mu, alice, pair.Swap(), newLot(40, 10, 20))
	require.NoError(err)
	require.Equal(uint64(2), id)

	lots, _, err := GetAccountLiquidityPools(ctx, mu, alice, pair)
	require.NoError(err)
	require.Len(lots, 2)
	require.Equal(pair, lots[1].AssetPair)
	require.Equal(fixed.FromUint64(10), lots[1].AssetXBalance)
	require.Equal(fixed.FromUint64(40), lots[1].AssetYBalance)
}

func TestAccountLiquidityPoolCapacity(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	mu := newTestState()
	pair := AssetPair{AssetX: 1, AssetY: 2}

	for i := 1; i <= consts.MaxAccountLiquidityPools; i++ {
		id, err := AppendAccountLiquidityPool(ctx, mu, alice, pair, newLot(1, 1, 1))
		require.NoError(err)
		require.Equal(uint64(i), id)
	}
	_, err := AppendAccountLiquidityPool(ctx, mu, alice, pair, newLot(1, 1, 1))
	require.ErrorIs(err, ErrCapacityExceeded)
}

func TestClearAccountLiquidityPools(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	mu := newTestState()
	pair := AssetPair{AssetX: 1, AssetY: 2}

	for i := 0; i < 2; i++ {
		_, err := AppendAccountLiquidityPool(ctx, mu, alice, pair, newLot(1, 1, 1))
		require.NoError(err)
	}
	require.NoError(ClearAccountLiquidityPools(ctx, mu, alice, pair.Swap()))

	_, found, err := GetAccountLiquidityPools(ctx, mu, alice, pair)
	require.NoError(err)
	require.False(found)

	// ids continue after a clear and keep the original orientation
	id, err := AppendAccountLiquidityPool(ctx, mu, alice, pair.Swap(), newLot(4, 1, 2))
	require.NoError(err)
	require.Equal(uint64(3), id)
	lots, _, err := GetAccountLiquidityPools(ctx, mu, alice, pair)
	require.NoError(err)
	require.Len(lots, 1)
	require.Equal(pair, lots[0].AssetPair)
	require.Equal(fixed.FromUint64(1), lots[0].AssetXBalance)
}

func TestAccountLiquidityPoolSequenceOverflow(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	mu := newTestState()
	pair := AssetPair{AssetX: 1, AssetY: 2}

	require.NoError(mu.Insert(ctx, AccountLiquidityPoolSeqKey(alice, pair), database.PackUInt64(consts.MaxUint64)))
	_, err := AppendAccountLiquidityPool(ctx, mu, alice, pair, newLot(1, 1, 1))
	require.ErrorIs(err, ErrSequenceOverflow)
}
