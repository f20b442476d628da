// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "humidefi-cli",
	Short: "Operate humidefi liquidity pools on a local store",
	Long:  `A CLI application for depositing into, redeeming from and swapping against humidefi pools kept in a pebble database.`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return bindFlags(cmd)
	},
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	os.Exit(0)
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("db", "humidefi.db", "Path of the pebble database")
	flags.String("config", "", "Path of a JSON config file")
	flags.String("log-level", "", "Override the configured log level")
	flags.String("log-dir", "", "Also write logs to rotated files in this directory")
	flags.String("actor", "", "Hex address submitting the action")
	flags.StringP("output", "o", "json", "Output format (text or json)")
}

func main() {
	Execute()
}
