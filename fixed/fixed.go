// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package fixed implements an unsigned 128-bit fixed-point number with 18
// decimals. Every operation that could wrap returns an error instead.
package fixed

import (
	"fmt"
	"strings"

	"github.com/holiman/uint256"
)

const (
	Decimals = 18

	// Len is the size in bytes of the encoded inner value.
	Len = 16

	maxBits = 128
)

var (
	accuracy = uint256.NewInt(1_000_000_000_000_000_000)

	Zero = U128{}
	One  = U128{v: *accuracy}
)

// U128 is a fixed-point value. The raw integer held in [v] is the value
// multiplied by 10^18 and never exceeds 2^128-1.
type U128 struct {
	v uint256.Int
}

// FromInner returns the fixed-point number whose raw scaled integer is
// [inner].
func FromInner(inner *uint256.Int) (U128, error) {
	if inner.BitLen() > maxBits {
		return Zero, fmt.Errorf("%w: inner value %s exceeds 128 bits", ErrOverflow, inner.Dec())
	}
	return U128{v: *inner}, nil
}

// FromInnerUint64 returns the fixed-point number whose raw scaled integer
// is [inner].
func FromInnerUint64(inner uint64) U128 {
	var f U128
	f.v.SetUint64(inner)
	return f
}

// FromUint64 converts a plain ledger amount into fixed-point. Any uint64
// multiplied by 10^18 fits in 128 bits.
func FromUint64(n uint64) U128 {
	var f U128
	f.v.Mul(new(uint256.Int).SetUint64(n), accuracy)
	return f
}

// FromRational returns floor(n / d).
func FromRational(n, d uint64) (U128, error) {
	if d == 0 {
		return Zero, ErrDivisionByZero
	}
	var f U128
	f.v.Mul(new(uint256.Int).SetUint64(n), accuracy)
	f.v.Div(&f.v, new(uint256.Int).SetUint64(d))
	return f, nil
}

// FromBytes decodes a big-endian inner value.
func FromBytes(b [Len]byte) U128 {
	var f U128
	f.v.SetBytes(b[:])
	return f
}

// Inner returns a copy of the raw scaled integer.
func (f U128) Inner() *uint256.Int {
	return new(uint256.Int).Set(&f.v)
}

// Bytes encodes the inner value as 16 big-endian bytes.
func (f U128) Bytes() [Len]byte {
	var b [Len]byte
	full := f.v.Bytes32()
	copy(b[:], full[32-Len:])
	return b
}

// Uint64 truncates the fractional part and returns the integer part.
func (f U128) Uint64() (uint64, error) {
	n := new(uint256.Int).Div(&f.v, accuracy)
	if !n.IsUint64() {
		return 0, fmt.Errorf("%w: %s does not fit in uint64", ErrOverflow, f)
	}
	return n.Uint64(), nil
}

func (f U128) IsZero() bool {
	return f.v.IsZero()
}

// Cmp returns -1, 0 or +1 depending on whether f is less than, equal to or
// greater than g.
func (f U128) Cmp(g U128) int {
	return f.v.Cmp(&g.v)
}

func (f U128) Add(g U128) (U128, error) {
	var r U128
	if _, overflow := r.v.AddOverflow(&f.v, &g.v); overflow || r.v.BitLen() > maxBits {
		return Zero, fmt.Errorf("%w: %s + %s", ErrOverflow, f, g)
	}
	return r, nil
}

func (f U128) Sub(g U128) (U128, error) {
	var r U128
	if _, underflow := r.v.SubOverflow(&f.v, &g.v); underflow {
		return Zero, fmt.Errorf("%w: %s - %s", ErrUnderflow, f, g)
	}
	return r, nil
}

// Mul returns f * g, rounded down to the representation's minimum unit.
func (f U128) Mul(g U128) (U128, error) {
	// Both inner values are below 2^128 so the product cannot wrap 256 bits.
	var r U128
	r.v.Mul(&f.v, &g.v)
	r.v.Div(&r.v, accuracy)
	if r.v.BitLen() > maxBits {
		return Zero, fmt.Errorf("%w: %s * %s", ErrOverflow, f, g)
	}
	return r, nil
}

// Div returns f / g, rounded down to the representation's minimum unit.
func (f U128) Div(g U128) (U128, error) {
	if g.v.IsZero() {
		return Zero, ErrDivisionByZero
	}
	var r U128
	r.v.Mul(&f.v, accuracy)
	r.v.Div(&r.v, &g.v)
	if r.v.BitLen() > maxBits {
		return Zero, fmt.Errorf("%w: %s / %s", ErrOverflow, f, g)
	}
	return r, nil
}

// Sqrt returns the floor of the square root of f.
func (f U128) Sqrt() U128 {
	// sqrt(v / 10^18) * 10^18 == sqrt(v * 10^18)
	var r U128
	r.v.Mul(&f.v, accuracy)
	r.v.Sqrt(&r.v)
	return r
}

// String prints the decimal value with trailing zeros removed.
func (f U128) String() string {
	integer := new(uint256.Int).Div(&f.v, accuracy)
	frac := new(uint256.Int).Mod(&f.v, accuracy)
	if frac.IsZero() {
		return integer.Dec()
	}
	fs := frac.Dec()
	fs = strings.Repeat("0", Decimals-len(fs)) + fs
	return integer.Dec() + "." + strings.TrimRight(fs, "0")
}

// Parse reads a decimal string such as "4" or "3.25".
func Parse(s string) (U128, error) {
	integer, frac, _ := strings.Cut(s, ".")
	if len(integer) == 0 || len(frac) > Decimals || !isDigits(integer) || !isDigits(frac) {
		return Zero, fmt.Errorf("%w: %q", ErrInvalidDecimal, s)
	}
	digits := strings.TrimLeft(integer+frac+strings.Repeat("0", Decimals-len(frac)), "0")
	if len(digits) == 0 {
		return Zero, nil
	}
	inner, err := uint256.FromDecimal(digits)
	if err != nil {
		return Zero, fmt.Errorf("%w: %q", ErrOverflow, s)
	}
	return FromInner(inner)
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func (f U128) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func (f *U128) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
