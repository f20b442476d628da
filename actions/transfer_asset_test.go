// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ava-labs/humidefi/actions"
	"github.com/ava-labs/humidefi/actions/actiontest"
	"github.com/ava-labs/humidefi/consts"
	"github.com/ava-labs/humidefi/ledger"
	"github.com/ava-labs/humidefi/ledger/ledgermock"
	"github.com/ava-labs/humidefi/state"
)

var errLedgerUnavailable = errors.New("ledger unavailable")

func TestTransferAssetAction(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	tests := []func() actiontest.ActionTest{
		func() actiontest.ActionTest {
			env, mu := newTestEnv(t)
			return actiontest.ActionTest{
				Name: "SimpleTransfer",
				Action: &actions.TransferAsset{
					Asset:  assetX,
					To:     bob,
					Amount: 10,
				},
				Env:   env,
				State: mu,
				Actor: alice,
				Assertion: func(_ context.Context, t *testing.T, mu *state.View) {
					requireBalance(t, env, mu, alice, assetX, initialBalance-10)
					requireBalance(t, env, mu, bob, assetX, initialBalance+10)
				},
			}
		},
		func() actiontest.ActionTest {
			env, mu := newTestEnv(t)
			return actiontest.ActionTest{
				Name: "NotEnoughBalance",
				Action: &actions.TransferAsset{
					Asset:  assetX,
					To:     bob,
					Amount: initialBalance + 1,
				},
				Env:         env,
				State:       mu,
				Actor:       alice,
				ExpectedErr: actions.ErrInsufficientBalance,
			}
		},
		func() actiontest.ActionTest {
			env, mu := newTestEnv(t)
			return actiontest.ActionTest{
				Name: "UnknownAsset",
				Action: &actions.TransferAsset{
					Asset:  42,
					To:     bob,
					Amount: 0,
				},
				Env:         env,
				State:       mu,
				Actor:       alice,
				ExpectedErr: ledger.ErrAssetNotFound,
			}
		},
		func() actiontest.ActionTest {
			l := ledgermock.NewMockAssetLedger(ctrl)
			l.EXPECT().BalanceOf(gomock.Any(), gomock.Any(), alice, assetX).Return(uint64(10), nil)
			l.EXPECT().Transfer(gomock.Any(), gomock.Any(), assetX, alice, bob, uint64(10)).Return(errLedgerUnavailable)
			return actiontest.ActionTest{
				Name: "LedgerRejects",
				Action: &actions.TransferAsset{
					Asset:  assetX,
					To:     bob,
					Amount: 10,
				},
				Env:         actions.NewEnv(l, custody, consts.DefaultShareAssetStart),
				State:       state.NewView(state.NewMemoryDatabase()),
				Actor:       alice,
				ExpectedErr: actions.ErrTransferFailed,
			}
		},
	}

	for _, tt := range tests {
		test := tt()
		test.Run(ctx, t)
	}
}

func TestTransferFailureWrapsLedgerError(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)

	l := ledgermock.NewMockAssetLedger(ctrl)
	l.EXPECT().BalanceOf(gomock.Any(), gomock.Any(), alice, assetX).Return(uint64(100), nil).Times(2)
	l.EXPECT().Transfer(gomock.Any(), gomock.Any(), assetX, alice, custody, uint64(100)).Return(nil)
	l.EXPECT().Transfer(gomock.Any(), gomock.Any(), assetY, alice, custody, uint64(100)).Return(errLedgerUnavailable)
	l.EXPECT().BalanceOf(gomock.Any(), gomock.Any(), alice, assetY).Return(uint64(100), nil)

	env := actions.NewEnv(l, custody, consts.DefaultShareAssetStart)
	mu := state.NewView(state.NewMemoryDatabase())

	// the balance probe runs before any transfer
	require.NoError(actions.CheckAssetBalance(context.Background(), env, mu, alice, assetX, 100, actions.ErrInsufficientAssetXBalance))

	_, err := (&actions.NewLiquidity{AssetX: assetX, AssetY: assetY, AmountX: 100, AmountY: 100}).Execute(context.Background(), env, mu, alice)
	require.ErrorIs(err, actions.ErrTransferFailed)
	require.ErrorIs(err, errLedgerUnavailable)
}

func TestCheckAssetBalanceIsReadOnly(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	env, mu := newTestEnv(t)
	restore := mu.OpIndex()

	for i := 0; i < 2; i++ {
		require.NoError(actions.CheckAssetBalance(ctx, env, mu, alice, assetX, initialBalance, actions.ErrInsufficientAssetXBalance))
		err := actions.CheckAssetBalance(ctx, env, mu, alice, assetX, initialBalance+1, actions.ErrInsufficientAssetXBalance)
		require.ErrorIs(err, actions.ErrInsufficientAssetXBalance)
		require.ErrorIs(err, actions.ErrInsufficientBalance)
	}
	require.Equal(restore, mu.OpIndex())
}

func TestLockKeys(t *testing.T) {
	require := require.New(t)

	deposit := (&actions.NewLiquidity{AssetX: assetX, AssetY: assetY}).LockKeys(alice, custody)
	swap := (&actions.SwapExactInForOut{AssetIn: assetY, AssetOut: assetX}).LockKeys(bob, custody)
	// both orientations lock the same pair
	require.Equal(deposit[0], swap[0])

	plain := (&actions.TransferAsset{Asset: assetX, To: bob}).LockKeys(alice, custody)
	toCustody := (&actions.TransferAsset{Asset: assetX, To: custody}).LockKeys(alice, custody)
	require.Len(toCustody, len(plain)+1)
	require.Contains(deposit, toCustody[len(toCustody)-1])
}
