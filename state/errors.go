// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import "errors"

var (
	ErrInvalidRestorePoint = errors.New("invalid restore point")
	ErrViewCommitted       = errors.New("view already committed")
)
