// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"errors"
	"fmt"
)

var (
	ErrInsufficientBalance = errors.New("insufficient balance")

	ErrInsufficientAssetXBalance   = fmt.Errorf("%w of asset x", ErrInsufficientBalance)
	ErrInsufficientAssetYBalance   = fmt.Errorf("%w of asset y", ErrInsufficientBalance)
	ErrInsufficientAssetInBalance  = fmt.Errorf("%w of input asset", ErrInsufficientBalance)
	ErrInsufficientAssetOutBalance = fmt.Errorf("%w of output asset", ErrInsufficientBalance)
	ErrInsufficientShareBalance    = fmt.Errorf("%w of minted shares", ErrInsufficientBalance)

	ErrTransferFailed = errors.New("transfer failed")
)
