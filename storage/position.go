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
	"github.com/ava-labs/humidefi/consts"
	"github.com/ava-labs/humidefi/fixed"
	"github.com/ava-labs/humidefi/state"
)

// AccountLiquidityPool is one deposit lot. The deposit balances are kept
// for reference only; the pool reserves are authoritative.
type AccountLiquidityPool struct {
	ID             uint64        `json:"id"`
	AccountID      codec.Address `json:"accountID"`
	AssetPair      AssetPair     `json:"assetPair"`
	AssetXBalance  fixed.U128    `json:"assetXBalance"`
	AssetYBalance  fixed.U128    `json:"assetYBalance"`
	LPToken        uint32        `json:"lpToken"`
	LPTokenBalance fixed.U128    `json:"lpTokenBalance"`
}

type lotRecord struct {
	ID             uint64
	AssetXBalance  [fixed.Len]byte
	AssetYBalance  [fixed.Len]byte
	LPToken        uint32
	LPTokenBalance [fixed.Len]byte
}

type lotListRecord struct {
	Lots []lotRecord
}

// GetAccountLiquidityPools returns the lots [account] holds for [pair] in
// whichever orientation they were recorded.
func GetAccountLiquidityPools(
	ctx context.Context,
	im state.Immutable,
	account codec.Address,
	pair AssetPair,
) ([]*AccountLiquidityPool, bool, error) {
	lots, _, found, err := getAccountLiquidityPools(ctx, im, account, pair)
	return lots, found, err
}

// FindAccountLiquidityPool returns the lot with [id] for share asset
// [lpToken].
func FindAccountLiquidityPool(lots []*AccountLiquidityPool, lpToken uint32, id uint64) (*AccountLiquidityPool, bool) {
	for _, lot := range lots {
		if lot.LPToken == lpToken && lot.ID == id {
			return lot, true
		}
	}
	return nil, false
}

// AppendAccountLiquidityPool records [lot], whose balances are ordered as
// [pair], and returns the id assigned to it.
func AppendAccountLiquidityPool(
	ctx context.Context,
	mu state.Mutable,
	account codec.Address,
	pair AssetPair,
	lot *AccountLiquidityPool,
) (uint64, error) {
	lots, orientation, found, err := getAccountLiquidityPools(ctx, mu, account, pair)
	if err != nil {
		return 0, err
	}
	if len(lots) >= consts.MaxAccountLiquidityPools {
		return 0, fmt.Errorf("%w: account=%s pair=%s lots=%d", ErrCapacityExceeded, account, orientation, len(lots))
	}
	last, seqFound, err := getSequence(ctx, mu, account, pair)
	if err != nil {
		return 0, err
	}
	if !found && seqFound != nil {
		orientation = *seqFound
	}
	for _, l := range lots {
		if l.ID > last {
			last = l.ID
		}
	}
	if last == consts.MaxUint64 {
		return 0, fmt.Errorf("%w: account=%s pair=%s", ErrSequenceOverflow, account, orientation)
	}

	lot.ID = last + 1
	lot.AccountID = account
	if orientation != pair {
		lot.AssetXBalance, lot.AssetYBalance = lot.AssetYBalance, lot.AssetXBalance
	}
	lot.AssetPair = orientation
	lots = append(lots, lot)

	if err := putAccountLiquidityPools(ctx, mu, account, orientation, lots); err != nil {
		return 0, err
	}
	if err := mu.Insert(ctx, AccountLiquidityPoolSeqKey(account, orientation), database.PackUInt64(lot.ID)); err != nil {
		return 0, err
	}
	return lot.ID, nil
}

// ClearAccountLiquidityPools removes every lot [account] holds for [pair].
// The id sequence is kept.
func ClearAccountLiquidityPools(
	ctx context.Context,
	mu state.Mutable,
	account codec.Address,
	pair AssetPair,
) error {
	if err := mu.Remove(ctx, AccountLiquidityPoolKey(account, pair)); err != nil {
		return err
	}
	return mu.Remove(ctx, AccountLiquidityPoolKey(account, pair.Swap()))
}

func getAccountLiquidityPools(
	ctx context.Context,
	im state.Immutable,
	account codec.Address,
	pair AssetPair,
) ([]*AccountLiquidityPool, AssetPair, bool, error) {
	for _, candidate := range []AssetPair{pair, pair.Swap()} {
		v, err := im.GetValue(ctx, AccountLiquidityPoolKey(account, candidate))
		if errors.Is(err, database.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, pair, false, err
		}
		lots, err := parseAccountLiquidityPools(v, account, candidate)
		if err != nil {
			return nil, pair, false, err
		}
		return lots, candidate, true, nil
	}
	return nil, pair, false, nil
}

// getSequence returns the last id handed out for (account, pair) and the
// orientation it was recorded under, if any.
func getSequence(
	ctx context.Context,
	im state.Immutable,
	account codec.Address,
	pair AssetPair,
) (uint64, *AssetPair, error) {
	for _, candidate := range []AssetPair{pair, pair.Swap()} {
		v, err := im.GetValue(ctx, AccountLiquidityPoolSeqKey(account, candidate))
		if errors.Is(err, database.ErrNotFound) {
			continue
		}
		if err != nil {
			return 0, nil, err
		}
		seq, err := database.ParseUInt64(v)
		if err != nil {
			return 0, nil, fmt.Errorf("%w: position sequence: %w", ErrCorruptedRecord, err)
		}
		return seq, &candidate, nil
	}
	return 0, nil, nil
}

func putAccountLiquidityPools(
	ctx context.Context,
	mu state.Mutable,
	account codec.Address,
	pair AssetPair,
	lots []*AccountLiquidityPool,
) error {
	r := lotListRecord{Lots: make([]lotRecord, len(lots))}
	for i, lot := range lots {
		r.Lots[i] = lotRecord{
			ID:             lot.ID,
			AssetXBalance:  lot.AssetXBalance.Bytes(),
			AssetYBalance:  lot.AssetYBalance.Bytes(),
			LPToken:        lot.LPToken,
			LPTokenBalance: lot.LPTokenBalance.Bytes(),
		}
	}
	v, err := borsh.Serialize(r)
	if err != nil {
		return err
	}
	return mu.Insert(ctx, AccountLiquidityPoolKey(account, pair), v)
}

func parseAccountLiquidityPools(v []byte, account codec.Address, pair AssetPair) ([]*AccountLiquidityPool, error) {
	var r lotListRecord
	if err := borsh.Deserialize(&r, v); err != nil {
		return nil, fmt.Errorf("%w: position list: %w", ErrCorruptedRecord, err)
	}
	lots := make([]*AccountLiquidityPool, len(r.Lots))
	for i, l := range r.Lots {
		lots[i] = &AccountLiquidityPool{
			ID:             l.ID,
			AccountID:      account,
			AssetPair:      pair,
			AssetXBalance:  fixed.FromBytes(l.AssetXBalance),
			AssetYBalance:  fixed.FromBytes(l.AssetYBalance),
			LPToken:        l.LPToken,
			LPTokenBalance: fixed.FromBytes(l.LPTokenBalance),
		}
	}
	return lots, nil
}
