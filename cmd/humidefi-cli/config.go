// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ava-labs/humidefi/codec"
	"github.com/ava-labs/humidefi/config"
)

const envPrefix = "HUMIDEFI"

// bindFlags lets every flag be set through HUMIDEFI_<FLAG> as well.
func bindFlags(cmd *cobra.Command) error {
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	return viper.BindPFlags(cmd.InheritedFlags())
}

func loadConfig() (*config.Config, error) {
	var b []byte
	if path := viper.GetString("config"); path != "" {
		var err error
		b, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}
	cfg, err := config.New(b)
	if err != nil {
		return nil, err
	}
	if level := viper.GetString("log-level"); level != "" {
		cfg.LogLevel, err = logging.ToLevel(level)
		if err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func actorAddress() (codec.Address, error) {
	s := viper.GetString("actor")
	if s == "" {
		return codec.EmptyAddress, fmt.Errorf("required value for %s not found", "actor")
	}
	return codec.StringToAddress(s)
}

func printValue(v any) error {
	if strings.ToLower(viper.GetString("output")) != "json" {
		fmt.Printf("%+v\n", v)
		return nil
	}
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(jsonBytes))
	return nil
}
