// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ava-labs/avalanchego/utils/logging"

	"github.com/ava-labs/humidefi/codec"
	"github.com/ava-labs/humidefi/consts"
	"github.com/ava-labs/humidefi/pebble"
	"github.com/ava-labs/humidefi/trace"
)

var ErrMissingSystemID = errors.New("missing system id")

type Config struct {
	LogLevel logging.Level `json:"logLevel"`

	// SystemID seeds the custodial account. Every store must be opened
	// with the same value.
	SystemID        string `json:"systemID"`
	ShareAssetStart uint32 `json:"shareAssetStart"`

	MetricsEnabled bool          `json:"metricsEnabled"`
	Trace          trace.Config  `json:"trace"`
	Pebble         pebble.Config `json:"pebble"`
}

func Default() *Config {
	return &Config{
		LogLevel:        logging.Info,
		SystemID:        consts.SystemID,
		ShareAssetStart: consts.DefaultShareAssetStart,
		MetricsEnabled:  true,
		Trace:           trace.NewDefaultConfig(),
		Pebble:          pebble.NewDefaultConfig(),
	}
}

func New(b []byte) (*Config, error) {
	c := Default()
	if len(b) > 0 {
		if err := json.Unmarshal(b, c); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config %s: %w", string(b), err)
		}
	}
	if c.SystemID == "" {
		return nil, ErrMissingSystemID
	}
	return c, nil
}

// CustodyAccount is the account holding every pool's reserves.
func (c *Config) CustodyAccount() codec.Address {
	return codec.DeriveAddress(consts.CustodyID, []byte(c.SystemID))
}
