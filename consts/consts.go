// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package consts

import (
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/version"
)

const (
	Name = "humidefi"

	// SystemID seeds the custodial account that holds every pool's reserves
	// and minted shares.
	SystemID = "HUMIDEFI"
)

const (
	ByteLen   = 1
	Uint32Len = 4
	Uint64Len = 8

	MaxUint32 = ^uint32(0)
	MaxUint64 = ^uint64(0)
)

// TypeIDs for addresses
const (
	AccountID uint8 = iota
	CustodyID
)

// TypeIDs for actions
const (
	NewLiquidityID uint8 = iota
	RedeemLiquidityID
	SwapExactInForOutID
	SwapInForExactOutID
	TransferAssetID
)

const (
	// MaxAccountLiquidityPools bounds the number of share lots one account
	// can hold for a single pair.
	MaxAccountLiquidityPools = 100

	// DefaultShareAssetStart is the first asset id probed when allocating
	// a share asset for a new pool.
	DefaultShareAssetStart uint32 = 1

	// ShareAssetMinBalance is the minimum balance registered for share assets.
	ShareAssetMinBalance uint64 = 1
)

var ID ids.ID

func init() {
	b := make([]byte, ids.IDLen)
	copy(b, []byte(Name))
	vmID, err := ids.ToID(b)
	if err != nil {
		panic(err)
	}
	ID = vmID
}

var Version = &version.Semantic{
	Major: 0,
	Minor: 1,
	Patch: 0,
}
