// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import "errors"

var (
	ErrIdenticalAssets  = errors.New("asset x and asset y are identical")
	ErrPoolNotFound     = errors.New("liquidity pool not found")
	ErrPositionNotFound = errors.New("liquidity position not found")
	ErrCapacityExceeded = errors.New("position list is full")
	ErrSequenceOverflow = errors.New("position id counter exhausted")
	ErrCorruptedRecord  = errors.New("corrupted record")
)
