// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/humidefi/actions"
	"github.com/ava-labs/humidefi/codec"
	"github.com/ava-labs/humidefi/consts"
	"github.com/ava-labs/humidefi/fixed"
	"github.com/ava-labs/humidefi/state"
	"github.com/ava-labs/humidefi/storage"
)

const (
	assetX uint32 = 100
	assetY uint32 = 200

	// first share asset handed out by a fresh store
	shareAsset = consts.DefaultShareAssetStart

	initialBalance uint64 = 1_000
)

var (
	custody = codec.DeriveAddress(consts.CustodyID, []byte(consts.SystemID))
	alice   = codec.DeriveAddress(consts.AccountID, []byte("alice"))
	bob     = codec.DeriveAddress(consts.AccountID, []byte("bob"))

	pair = storage.AssetPair{AssetX: assetX, AssetY: assetY}
)

// newTestEnv returns a store holding assets x and y, with alice and bob
// funded with [initialBalance] of each.
func newTestEnv(t require.TestingT) (*actions.Env, *state.View) {
	require := require.New(t)
	ctx := context.Background()
	l := &storage.StateLedger{}
	mu := state.NewView(state.NewMemoryDatabase())
	for _, asset := range []uint32{assetX, assetY} {
		require.NoError(l.Create(ctx, mu, asset, custody, true, 0))
		for _, account := range []codec.Address{alice, bob} {
			require.NoError(l.MintInto(ctx, mu, asset, account, initialBalance))
		}
	}
	return actions.NewEnv(l, custody, consts.DefaultShareAssetStart), mu
}

func execute(t require.TestingT, env *actions.Env, mu *state.View, actor codec.Address, action actions.Action) actions.Result {
	result, err := action.Execute(context.Background(), env, mu, actor)
	require.NoError(t, err)
	return result
}

func requireBalance(t *testing.T, env *actions.Env, im state.Immutable, account codec.Address, asset uint32, expected uint64) {
	bal, err := env.Ledger.BalanceOf(context.Background(), im, account, asset)
	require.NoError(t, err)
	require.Equal(t, expected, bal, "account=%s asset=%d", account, asset)
}

func requirePool(t *testing.T, im state.Immutable, p storage.AssetPair) *storage.LiquidityPool {
	pool, found, err := storage.GetLiquidityPool(context.Background(), im, p)
	require.NoError(t, err)
	require.True(t, found)
	return pool
}

func mustRational(n, d uint64) fixed.U128 {
	f, err := fixed.FromRational(n, d)
	if err != nil {
		panic(err)
	}
	return f
}
