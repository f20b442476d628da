// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package fixed

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

var maxInner = new(uint256.Int).Sub(new(uint256.Int).Lsh(uint256.NewInt(1), 128), uint256.NewInt(1))

func TestFromUint64(t *testing.T) {
	require := require.New(t)

	f := FromUint64(42)
	require.Equal("42", f.String())
	n, err := f.Uint64()
	require.NoError(err)
	require.Equal(uint64(42), n)

	// the largest ledger amount is representable
	f = FromUint64(math.MaxUint64)
	n, err = f.Uint64()
	require.NoError(err)
	require.Equal(uint64(math.MaxUint64), n)
}

func TestFromInner(t *testing.T) {
	require := require.New(t)

	f, err := FromInner(maxInner)
	require.NoError(err)
	require.Zero(f.Inner().Cmp(maxInner))

	_, err = FromInner(new(uint256.Int).Add(maxInner, uint256.NewInt(1)))
	require.ErrorIs(err, ErrOverflow)

	require.Equal("0.000000000000000001", FromInnerUint64(1).String())
}

func TestAddSub(t *testing.T) {
	require := require.New(t)

	a := FromUint64(100)
	b := FromUint64(40)

	sum, err := a.Add(b)
	require.NoError(err)
	require.Equal(FromUint64(140), sum)

	diff, err := a.Sub(b)
	require.NoError(err)
	require.Equal(FromUint64(60), diff)

	_, err = b.Sub(a)
	require.ErrorIs(err, ErrUnderflow)

	top, err := FromInner(maxInner)
	require.NoError(err)
	_, err = top.Add(FromInnerUint64(1))
	require.ErrorIs(err, ErrOverflow)
}

func TestMulDiv(t *testing.T) {
	require := require.New(t)

	product, err := FromUint64(100).Mul(FromUint64(400))
	require.NoError(err)
	require.Equal(FromUint64(40_000), product)

	quotient, err := FromUint64(400).Div(FromUint64(100))
	require.NoError(err)
	require.Equal(FromUint64(4), quotient)

	_, err = FromUint64(1).Div(Zero)
	require.ErrorIs(err, ErrDivisionByZero)

	// (2^64)^2 * 10^18 does not fit in 128 bits
	big := FromUint64(math.MaxUint64)
	_, err = big.Mul(big)
	require.ErrorIs(err, ErrOverflow)

	// dividing by a value below one grows the result
	_, err = big.Div(FromInnerUint64(1))
	require.ErrorIs(err, ErrOverflow)
}

func TestSqrt(t *testing.T) {
	require := require.New(t)

	require.Equal(FromUint64(200), FromUint64(40_000).Sqrt())
	require.Equal(FromUint64(2), FromUint64(4).Sqrt())
	require.Equal(Zero, Zero.Sqrt())
	require.Equal("1.414213562373095048", FromUint64(2).Sqrt().String())

	top, err := FromInner(maxInner)
	require.NoError(err)
	require.NotPanics(func() { top.Sqrt() })
}

func TestFromRational(t *testing.T) {
	require := require.New(t)

	price, err := FromRational(400, 100)
	require.NoError(err)
	require.Equal(FromUint64(4), price)

	price, err = FromRational(360, 110)
	require.NoError(err)
	require.Equal("3.272727272727272727", price.String())

	_, err = FromRational(1, 0)
	require.ErrorIs(err, ErrDivisionByZero)
}

func TestBytes(t *testing.T) {
	require := require.New(t)

	f, err := FromInner(maxInner)
	require.NoError(err)
	require.Equal(f, FromBytes(f.Bytes()))

	g := FromUint64(12345)
	require.Equal(g, FromBytes(g.Bytes()))
}

func TestParse(t *testing.T) {
	tests := []struct {
		in       string
		expected string
		err      error
	}{
		{in: "4", expected: "4"},
		{in: "0", expected: "0"},
		{in: "000.000", expected: "0"},
		{in: "3.25", expected: "3.25"},
		{in: "0.000000000000000001", expected: "0.000000000000000001"},
		{in: "", err: ErrInvalidDecimal},
		{in: ".5", err: ErrInvalidDecimal},
		{in: "1.0000000000000000001", err: ErrInvalidDecimal},
		{in: "-1", err: ErrInvalidDecimal},
		{in: "340282366920938463464", err: ErrOverflow},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require := require.New(t)
			f, err := Parse(tt.in)
			require.ErrorIs(err, tt.err)
			if tt.err == nil {
				require.Equal(tt.expected, f.String())
			}
		})
	}
}

func TestJSON(t *testing.T) {
	require := require.New(t)

	price, err := FromRational(7, 2)
	require.NoError(err)

	b, err := json.Marshal(price)
	require.NoError(err)
	require.Equal(`"3.5"`, string(b))

	var parsed U128
	require.NoError(json.Unmarshal(b, &parsed))
	require.Equal(price, parsed)
}

func TestRationalProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		x := rapid.Uint64Range(1, math.MaxUint32).Draw(t, "x")
		y := rapid.Uint64Range(0, math.MaxUint32).Draw(t, "y")

		price, err := FromRational(y, x)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		viaDiv, err := FromUint64(y).Div(FromUint64(x))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if price != viaDiv {
			t.Fatalf("rational %s != division %s", price, viaDiv)
		}

		// price * x never exceeds y and is at most x minimum units below it
		back, err := price.Mul(FromUint64(x))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		target := FromUint64(y)
		if back.Cmp(target) > 0 {
			t.Fatalf("%s * %d = %s exceeds %d", price, x, back, y)
		}
		gap, err := target.Sub(back)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gap.Cmp(FromInnerUint64(x)) > 0 {
			t.Fatalf("rounding gap %s too large", gap)
		}
	})
}

func TestSqrtProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.Uint64Range(0, math.MaxUint32).Draw(t, "n")

		square, err := FromUint64(n).Mul(FromUint64(n))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if root := square.Sqrt(); root != FromUint64(n) {
			t.Fatalf("sqrt(%d^2) = %s", n, root)
		}
	})
}

func TestAddSubProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := FromUint64(rapid.Uint64().Draw(t, "a"))
		b := FromUint64(rapid.Uint64().Draw(t, "b"))

		sum, err := a.Add(b)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		back, err := sum.Sub(b)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if back != a {
			t.Fatalf("(%s + %s) - %s = %s", a, b, b, back)
		}
	})
}
