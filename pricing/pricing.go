// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package pricing derives pool prices from reserves and converts between
// deposits and pool shares.
package pricing

import (
	"github.com/ava-labs/humidefi/fixed"
)

// ComputePrice returns the spot price [reserveY] / [reserveX].
func ComputePrice(reserveX fixed.U128, reserveY fixed.U128) (fixed.U128, error) {
	if reserveX.IsZero() || reserveY.IsZero() {
		return fixed.Zero, ErrCannotBeZero
	}
	return reserveY.Div(reserveX)
}

// ComputeShares returns floor(sqrt(x * y)), the geometric mean of a deposit.
func ComputeShares(amountX uint64, amountY uint64) (uint64, error) {
	if amountX == 0 || amountY == 0 {
		return 0, ErrCannotBeZero
	}
	product, err := fixed.FromUint64(amountX).Mul(fixed.FromUint64(amountY))
	if err != nil {
		return 0, err
	}
	return product.Sqrt().Uint64()
}

// ComputeOutput values [amountIn] at [price], rounding down.
func ComputeOutput(price fixed.U128, amountIn uint64) (uint64, error) {
	out, err := price.Mul(fixed.FromUint64(amountIn))
	if err != nil {
		return 0, err
	}
	return out.Uint64()
}
