// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ava-labs/humidefi/actions"
	"github.com/ava-labs/humidefi/codec"
)

var depositCmd = &cobra.Command{
	Use:   "deposit",
	Short: "Deposit both assets of a pair and receive pool shares",
	RunE: func(cmd *cobra.Command, _ []string) error {
		flags := cmd.Flags()
		action := &actions.NewLiquidity{}
		var err error
		if action.AssetX, err = flags.GetUint32("asset-x"); err != nil {
			return err
		}
		if action.AssetY, err = flags.GetUint32("asset-y"); err != nil {
			return err
		}
		if action.AmountX, err = flags.GetUint64("amount-x"); err != nil {
			return err
		}
		if action.AmountY, err = flags.GetUint64("amount-y"); err != nil {
			return err
		}
		return submit(cmd.Context(), action)
	},
}

var redeemCmd = &cobra.Command{
	Use:   "redeem",
	Short: "Redeem a share lot. Every lot held for the pair is removed",
	RunE: func(cmd *cobra.Command, _ []string) error {
		flags := cmd.Flags()
		action := &actions.RedeemLiquidity{}
		var err error
		if action.AssetX, err = flags.GetUint32("asset-x"); err != nil {
			return err
		}
		if action.AssetY, err = flags.GetUint32("asset-y"); err != nil {
			return err
		}
		if action.LPToken, err = flags.GetUint32("lp-token"); err != nil {
			return err
		}
		if action.ID, err = flags.GetUint64("id"); err != nil {
			return err
		}
		return submit(cmd.Context(), action)
	},
}

var swapInCmd = &cobra.Command{
	Use:   "swap-in",
	Short: "Sell an exact amount of one asset for another",
	RunE: func(cmd *cobra.Command, _ []string) error {
		flags := cmd.Flags()
		action := &actions.SwapExactInForOut{}
		var err error
		if action.AssetIn, err = flags.GetUint32("asset-in"); err != nil {
			return err
		}
		if action.AssetOut, err = flags.GetUint32("asset-out"); err != nil {
			return err
		}
		if action.AmountIn, err = flags.GetUint64("amount"); err != nil {
			return err
		}
		return submit(cmd.Context(), action)
	},
}

var swapOutCmd = &cobra.Command{
	Use:   "swap-out",
	Short: "Buy an exact amount of one asset with another",
	RunE: func(cmd *cobra.Command, _ []string) error {
		flags := cmd.Flags()
		action := &actions.SwapInForExactOut{}
		var err error
		if action.AssetIn, err = flags.GetUint32("asset-in"); err != nil {
			return err
		}
		if action.AssetOut, err = flags.GetUint32("asset-out"); err != nil {
			return err
		}
		if action.AmountOut, err = flags.GetUint64("amount"); err != nil {
			return err
		}
		return submit(cmd.Context(), action)
	},
}

var transferCmd = &cobra.Command{
	Use:   "transfer [to]",
	Short: "Transfer an asset to another account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		to, err := codec.StringToAddress(args[0])
		if err != nil {
			return fmt.Errorf("failed to parse recipient: %w", err)
		}
		action := &actions.TransferAsset{To: to}
		if action.Asset, err = cmd.Flags().GetUint32("asset"); err != nil {
			return err
		}
		if action.Amount, err = cmd.Flags().GetUint64("amount"); err != nil {
			return err
		}
		return submit(cmd.Context(), action)
	},
}

func submit(ctx context.Context, action actions.Action) error {
	actor, err := actorAddress()
	if err != nil {
		return err
	}
	return withApp(func(a *app) error {
		result, err := a.c.Execute(ctx, actor, action)
		if err != nil {
			return err
		}
		if result == nil {
			return printValue(map[string]bool{"success": true})
		}
		return printValue(result)
	})
}

func init() {
	for _, cmd := range []*cobra.Command{depositCmd, redeemCmd} {
		cmd.Flags().Uint32("asset-x", 0, "First asset of the pair")
		cmd.Flags().Uint32("asset-y", 0, "Second asset of the pair")
	}
	depositCmd.Flags().Uint64("amount-x", 0, "Amount of the first asset")
	depositCmd.Flags().Uint64("amount-y", 0, "Amount of the second asset")
	redeemCmd.Flags().Uint32("lp-token", 0, "Share asset of the pool")
	redeemCmd.Flags().Uint64("id", 0, "Lot id")

	for _, cmd := range []*cobra.Command{swapInCmd, swapOutCmd} {
		cmd.Flags().Uint32("asset-in", 0, "Asset paid into the pool")
		cmd.Flags().Uint32("asset-out", 0, "Asset received from the pool")
	}
	swapInCmd.Flags().Uint64("amount", 0, "Exact input amount")
	swapOutCmd.Flags().Uint64("amount", 0, "Exact output amount")

	transferCmd.Flags().Uint32("asset", 0, "Asset to transfer")
	transferCmd.Flags().Uint64("amount", 0, "Amount to transfer")

	rootCmd.AddCommand(depositCmd, redeemCmd, swapInCmd, swapOutCmd, transferCmd)
}
