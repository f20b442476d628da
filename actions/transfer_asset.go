// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"

	"github.com/ava-labs/humidefi/codec"
	"github.com/ava-labs/humidefi/consts"
	"github.com/ava-labs/humidefi/state"
)

var _ Action = (*TransferAsset)(nil)

type TransferAsset struct {
	Asset  uint32        `json:"asset"`
	To     codec.Address `json:"to"`
	Amount uint64        `json:"amount"`
}

func (*TransferAsset) GetTypeID() uint8 {
	return consts.TransferAssetID
}

func (t *TransferAsset) LockKeys(actor codec.Address, custody codec.Address) []string {
	keys := []string{
		assetLock(t.Asset),
		accountLock(actor),
		accountLock(t.To),
	}
	// share asset balances of the custodial account are only known once
	// a deposit has picked its share asset
	if t.To == custody || actor == custody {
		keys = append(keys, shareAssetsLock)
	}
	return keys
}

func (t *TransferAsset) Execute(ctx context.Context, env *Env, mu state.Mutable, actor codec.Address) (Result, error) {
	if err := CheckAssetBalance(ctx, env, mu, actor, t.Asset, t.Amount, ErrInsufficientBalance); err != nil {
		return nil, err
	}
	return nil, transfer(ctx, env, mu, t.Asset, actor, t.To, t.Amount)
}
