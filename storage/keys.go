// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"encoding/binary"

	"github.com/ava-labs/humidefi/codec"
	"github.com/ava-labs/humidefi/consts"
)

// Key prefixes
const (
	liquidityPoolPrefix byte = iota
	accountLiquidityPoolPrefix
	accountLiquidityPoolSeqPrefix
	assetPrefix
	assetBalancePrefix
)

const pairLen = consts.Uint32Len + consts.Uint32Len

// LiquidityPoolKey addresses the pool stored under exactly [pair]'s
// orientation.
func LiquidityPoolKey(pair AssetPair) []byte {
	k := make([]byte, 1+pairLen)
	k[0] = liquidityPoolPrefix
	putPair(k[1:], pair)
	return k
}

func AccountLiquidityPoolKey(account codec.Address, pair AssetPair) []byte {
	return accountPairKey(accountLiquidityPoolPrefix, account, pair)
}

// AccountLiquidityPoolSeqKey holds the last lot id handed out for
// (account, pair). It outlives the lot list so ids are never reused.
func AccountLiquidityPoolSeqKey(account codec.Address, pair AssetPair) []byte {
	return accountPairKey(accountLiquidityPoolSeqPrefix, account, pair)
}

func AssetKey(asset uint32) []byte {
	k := make([]byte, 1+consts.Uint32Len)
	k[0] = assetPrefix
	binary.BigEndian.PutUint32(k[1:], asset)
	return k
}

func AssetBalanceKey(asset uint32, account codec.Address) []byte {
	k := make([]byte, 1+consts.Uint32Len+codec.AddressLen)
	k[0] = assetBalancePrefix
	binary.BigEndian.PutUint32(k[1:], asset)
	copy(k[1+consts.Uint32Len:], account[:])
	return k
}

func accountPairKey(prefix byte, account codec.Address, pair AssetPair) []byte {
	k := make([]byte, 1+codec.AddressLen+pairLen)
	k[0] = prefix
	copy(k[1:], account[:])
	putPair(k[1+codec.AddressLen:], pair)
	return k
}

func putPair(b []byte, pair AssetPair) {
	binary.BigEndian.PutUint32(b, pair.AssetX)
	binary.BigEndian.PutUint32(b[consts.Uint32Len:], pair.AssetY)
}
