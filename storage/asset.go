// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/ava-labs/avalanchego/database"
	"github.com/near/borsh-go"

	"github.com/ava-labs/humidefi/codec"
	"github.com/ava-labs/humidefi/ledger"
	"github.com/ava-labs/humidefi/state"

	smath "github.com/ava-labs/avalanchego/utils/math"
)

var _ ledger.AssetLedger = (*StateLedger)(nil)

type AssetInfo struct {
	Owner        codec.Address `json:"owner"`
	IsSufficient bool          `json:"isSufficient"`
	MinBalance   uint64        `json:"minBalance"`
	Supply       uint64        `json:"supply"`
}

// StateLedger keeps asset metadata and balances in the same state as the
// pools so that ledger effects commit and roll back with them.
type StateLedger struct{}

func GetAssetInfo(ctx context.Context, im state.Immutable, asset uint32) (*AssetInfo, bool, error) {
	v, err := im.GetValue(ctx, AssetKey(asset))
	if errors.Is(err, database.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var info AssetInfo
	if err := borsh.Deserialize(&info, v); err != nil {
		return nil, false, fmt.Errorf("%w: asset %d: %w", ErrCorruptedRecord, asset, err)
	}
	return &info, true, nil
}

func setAssetInfo(ctx context.Context, mu state.Mutable, asset uint32, info *AssetInfo) error {
	v, err := borsh.Serialize(*info)
	if err != nil {
		return err
	}
	return mu.Insert(ctx, AssetKey(asset), v)
}

func mustGetAssetInfo(ctx context.Context, im state.Immutable, asset uint32) (*AssetInfo, error) {
	info, exists, err := GetAssetInfo(ctx, im, asset)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: %d", ledger.ErrAssetNotFound, asset)
	}
	return info, nil
}

func getBalance(ctx context.Context, im state.Immutable, asset uint32, account codec.Address) (uint64, error) {
	v, err := im.GetValue(ctx, AssetBalanceKey(asset, account))
	if errors.Is(err, database.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return database.ParseUInt64(v)
}

func setBalance(ctx context.Context, mu state.Mutable, asset uint32, account codec.Address, balance uint64) error {
	k := AssetBalanceKey(asset, account)
	if balance == 0 {
		// If there is no balance left, we should delete the record instead of
		// setting it to 0.
		return mu.Remove(ctx, k)
	}
	return mu.Insert(ctx, k, database.PackUInt64(balance))
}

func (*StateLedger) BalanceOf(ctx context.Context, im state.Immutable, account codec.Address, asset uint32) (uint64, error) {
	return getBalance(ctx, im, asset, account)
}

func (*StateLedger) AssetExists(ctx context.Context, im state.Immutable, asset uint32) (bool, error) {
	_, exists, err := GetAssetInfo(ctx, im, asset)
	return exists, err
}

func (*StateLedger) Create(
	ctx context.Context,
	mu state.Mutable,
	asset uint32,
	owner codec.Address,
	isSufficient bool,
	minBalance uint64,
) error {
	_, exists, err := GetAssetInfo(ctx, mu, asset)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: %d", ledger.ErrAssetExists, asset)
	}
	return setAssetInfo(ctx, mu, asset, &AssetInfo{
		Owner:        owner,
		IsSufficient: isSufficient,
		MinBalance:   minBalance,
	})
}

func (*StateLedger) MintInto(
	ctx context.Context,
	mu state.Mutable,
	asset uint32,
	account codec.Address,
	amount uint64,
) error {
	info, err := mustGetAssetInfo(ctx, mu, asset)
	if err != nil {
		return err
	}
	supply, err := smath.Add(info.Supply, amount)
	if err != nil {
		return fmt.Errorf("%w: could not grow supply (asset=%d, supply=%d, amount=%d)", err, asset, info.Supply, amount)
	}
	bal, err := getBalance(ctx, mu, asset, account)
	if err != nil {
		return err
	}
	nbal, err := smath.Add(bal, amount)
	if err != nil {
		return fmt.Errorf("%w: could not add balance (asset=%d, account=%s, bal=%d, amount=%d)", err, asset, account, bal, amount)
	}
	if amount > 0 && nbal < info.MinBalance {
		return fmt.Errorf("%w: (asset=%d, account=%s, bal=%d, min=%d)", ledger.ErrBelowMinBalance, asset, account, nbal, info.MinBalance)
	}
	info.Supply = supply
	if err := setAssetInfo(ctx, mu, asset, info); err != nil {
		return err
	}
	return setBalance(ctx, mu, asset, account, nbal)
}

func (*StateLedger) Transfer(
	ctx context.Context,
	mu state.Mutable,
	asset uint32,
	from codec.Address,
	to codec.Address,
	amount uint64,
) error {
	info, err := mustGetAssetInfo(ctx, mu, asset)
	if err != nil {
		return err
	}
	fromBal, err := getBalance(ctx, mu, asset, from)
	if err != nil {
		return err
	}
	nfrom, err := smath.Sub(fromBal, amount)
	if err != nil {
		return fmt.Errorf("%w: could not subtract balance (asset=%d, account=%s, bal=%d, amount=%d)", ledger.ErrInsufficientFunds, asset, from, fromBal, amount)
	}
	if from == to || amount == 0 {
		return nil
	}
	toBal, err := getBalance(ctx, mu, asset, to)
	if err != nil {
		return err
	}
	nto, err := smath.Add(toBal, amount)
	if err != nil {
		return fmt.Errorf("%w: could not add balance (asset=%d, account=%s, bal=%d, amount=%d)", err, asset, to, toBal, amount)
	}
	if nto < info.MinBalance {
		return fmt.Errorf("%w: (asset=%d, account=%s, bal=%d, min=%d)", ledger.ErrBelowMinBalance, asset, to, nto, info.MinBalance)
	}
	if err := setBalance(ctx, mu, asset, from, nfrom); err != nil {
		return err
	}
	return setBalance(ctx, mu, asset, to, nto)
}
