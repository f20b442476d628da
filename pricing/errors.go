// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pricing

import "errors"

var (
	ErrCannotBeZero         = errors.New("cannot be zero")
	ErrMintFailed           = errors.New("share mint failed")
	ErrShareAssetsExhausted = errors.New("no share asset id available")
)
