// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"encoding/json"
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/stretchr/testify/require"
)

func TestAddress(t *testing.T) {
	require := require.New(t)
	typeID := byte(0)
	addrID := ids.GenerateTestID()

	addr := CreateAddress(typeID, addrID)
	addrStr, err := addr.MarshalText()
	require.NoError(err)

	var parsedAddr Address
	require.NoError(parsedAddr.UnmarshalText(addrStr))
	require.Equal(addr, parsedAddr)
}

func TestAddressJSON(t *testing.T) {
	require := require.New(t)
	addr := CreateAddress(1, ids.GenerateTestID())

	addrJSONBytes, err := json.Marshal(addr)
	require.NoError(err)

	var parsedAddr Address
	require.NoError(json.Unmarshal(addrJSONBytes, &parsedAddr))
	require.Equal(addr, parsedAddr)
}

func TestAddressString(t *testing.T) {
	require := require.New(t)
	addr := CreateAddress(2, ids.GenerateTestID())

	parsed, err := StringToAddress(addr.String())
	require.NoError(err)
	require.Equal(addr, parsed)

	// prefix is optional
	parsed, err = StringToAddress(addr.String()[2:])
	require.NoError(err)
	require.Equal(addr, parsed)
}

func TestAddressInvalidSize(t *testing.T) {
	require := require.New(t)

	_, err := StringToAddress("0x0102")
	require.ErrorIs(err, ErrInvalidSize)

	_, err = ToAddress(make([]byte, AddressLen+1))
	require.ErrorIs(err, ErrInvalidSize)
}

func TestDeriveAddress(t *testing.T) {
	require := require.New(t)

	a := DeriveAddress(3, []byte("HUMIDEFI"))
	b := DeriveAddress(3, []byte("HUMIDEFI"))
	c := DeriveAddress(3, []byte("OTHER"))
	d := DeriveAddress(4, []byte("HUMIDEFI"))

	require.Equal(a, b)
	require.NotEqual(a, c)
	require.NotEqual(a, d)
	require.Equal(uint8(3), a[0])
}
