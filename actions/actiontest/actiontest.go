// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actiontest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/humidefi/actions"
	"github.com/ava-labs/humidefi/codec"
	"github.com/ava-labs/humidefi/state"
)

// ActionTest is a single parameterized test. It calls Execute on the action
// with the passed parameters and checks that all assertions pass.
//
// A failed action is rolled back to the view's op index before Execute, the
// way the controller discards a failed action, so Assertion always observes
// committed-or-absent effects.
type ActionTest struct {
	Name string

	Action actions.Action

	Env   *actions.Env
	State *state.View
	Actor codec.Address

	ExpectedResult actions.Result
	ExpectedErr    error

	Assertion func(context.Context, *testing.T, *state.View)
}

// Run executes the [ActionTest] and make sure all assertions pass.
func (test *ActionTest) Run(ctx context.Context, t *testing.T) {
	t.Run(test.Name, func(t *testing.T) {
		require := require.New(t)

		restore := test.State.OpIndex()
		result, err := test.Action.Execute(ctx, test.Env, test.State, test.Actor)
		if err != nil {
			require.NoError(test.State.Rollback(ctx, restore))
		}

		require.ErrorIs(err, test.ExpectedErr)
		require.Equal(test.ExpectedResult, result)

		if test.Assertion != nil {
			test.Assertion(ctx, t, test.State)
		}
	})
}

// ActionBenchmark is a parameterized benchmark. A new state is created for
// each iteration using the provided CreateState function.
type ActionBenchmark struct {
	Name   string
	Action actions.Action

	Env         *actions.Env
	CreateState func() *state.View
	Actor       codec.Address

	ExpectedErr error
}

// Run executes the [ActionBenchmark].
func (test *ActionBenchmark) Run(ctx context.Context, b *testing.B) {
	require := require.New(b)

	states := make([]*state.View, b.N)
	for i := 0; i < b.N; i++ {
		states[i] = test.CreateState()
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := test.Action.Execute(ctx, test.Env, states[i], test.Actor)
		require.ErrorIs(err, test.ExpectedErr)
	}
}
