// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ava-labs/humidefi/api"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the JSON-RPC API until interrupted",
	RunE: func(*cobra.Command, []string) error {
		return withApp(func(a *app) error {
			handler, err := api.NewJSONRPCHandler(api.Name, api.NewJSONRPCServer(a.log, a.c))
			if err != nil {
				return err
			}
			listener, err := net.Listen("tcp", viper.GetString("listen"))
			if err != nil {
				return err
			}
			server := api.NewServer(a.log, listener, api.NewDefaultHTTPConfig(), viper.GetStringSlice("allowed-origins"))
			server.AddRoute(handler, api.Endpoint)

			signals := make(chan os.Signal, 1)
			signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
			go func() {
				sig := <-signals
				a.log.Info("shutting down", zap.Stringer("signal", sig))
				if err := server.Shutdown(); err != nil {
					a.log.Error("shutdown failed", zap.Error(err))
				}
			}()
			return server.Dispatch()
		})
	},
}

func init() {
	serveCmd.Flags().String("listen", "127.0.0.1:9650", "Address the API listens on")
	serveCmd.Flags().StringSlice("allowed-origins", []string{"*"}, "Origins allowed by CORS")
	rootCmd.AddCommand(serveCmd)
}
