// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"os"

	"github.com/neilotoole/errgroup"
	"github.com/spf13/cobra"

	"github.com/ava-labs/humidefi/codec"
	"github.com/ava-labs/humidefi/consts"
	"github.com/ava-labs/humidefi/genesis"
	"github.com/ava-labs/humidefi/storage"
)

const maxBalanceQueries = 4

var genesisCmd = &cobra.Command{
	Use:   "genesis [file]",
	Short: "Create assets and allocations from a genesis file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read genesis: %w", err)
		}
		g, err := genesis.New(b)
		if err != nil {
			return err
		}
		return withApp(func(a *app) error {
			return a.c.LoadGenesis(cmd.Context(), g)
		})
	},
}

var poolCmd = &cobra.Command{
	Use:   "pool",
	Short: "Show the pool of a pair",
	RunE: func(cmd *cobra.Command, _ []string) error {
		pair, err := pairFlags(cmd)
		if err != nil {
			return err
		}
		return withApp(func(a *app) error {
			pool, found, err := a.c.LiquidityPool(cmd.Context(), pair)
			if err != nil {
				return err
			}
			if !found {
				return fmt.Errorf("%w: %s", storage.ErrPoolNotFound, pair)
			}
			return printValue(pool)
		})
	},
}

var positionsCmd = &cobra.Command{
	Use:   "positions [address]",
	Short: "List the share lots an account holds for a pair",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		account, err := codec.StringToAddress(args[0])
		if err != nil {
			return err
		}
		pair, err := pairFlags(cmd)
		if err != nil {
			return err
		}
		return withApp(func(a *app) error {
			lots, err := a.c.Positions(cmd.Context(), account, pair)
			if err != nil {
				return err
			}
			return printValue(lots)
		})
	},
}

var balanceCmd = &cobra.Command{
	Use:   "balance [address] [asset...]",
	Short: "Show the balances of an account",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		account, err := codec.StringToAddress(args[0])
		if err != nil {
			return err
		}
		assets := make([]uint32, len(args)-1)
		for i, arg := range args[1:] {
			if _, err := fmt.Sscan(arg, &assets[i]); err != nil {
				return fmt.Errorf("invalid asset %q: %w", arg, err)
			}
		}
		return withApp(func(a *app) error {
			balances := make([]uint64, len(assets))
			g, ctx := errgroup.WithContextN(cmd.Context(), maxBalanceQueries, len(assets))
			for i, asset := range assets {
				i, asset := i, asset
				g.Go(func() error {
					bal, err := a.c.Balance(ctx, account, asset)
					balances[i] = bal
					return err
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}
			out := make(map[uint32]uint64, len(assets))
			for i, asset := range assets {
				out[asset] = balances[i]
			}
			return printValue(out)
		})
	},
}

var addressCmd = &cobra.Command{
	Use:   "address [seed]",
	Short: "Derive the account address for a seed, or print the custodial account",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		if len(args) == 0 {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return printValue(cfg.CustodyAccount())
		}
		return printValue(codec.DeriveAddress(consts.AccountID, []byte(args[0])))
	},
}

func pairFlags(cmd *cobra.Command) (storage.AssetPair, error) {
	x, err := cmd.Flags().GetUint32("asset-x")
	if err != nil {
		return storage.AssetPair{}, err
	}
	y, err := cmd.Flags().GetUint32("asset-y")
	if err != nil {
		return storage.AssetPair{}, err
	}
	return storage.NewAssetPair(x, y)
}

func init() {
	for _, cmd := range []*cobra.Command{poolCmd, positionsCmd} {
		cmd.Flags().Uint32("asset-x", 0, "First asset of the pair")
		cmd.Flags().Uint32("asset-y", 0, "Second asset of the pair")
	}
	rootCmd.AddCommand(genesisCmd, poolCmd, positionsCmd, balanceCmd, addressCmd)
}
