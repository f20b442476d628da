// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package genesis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ava-labs/avalanchego/trace"
	"go.opentelemetry.io/otel/attribute"

	"github.com/ava-labs/humidefi/codec"
	"github.com/ava-labs/humidefi/ledger"
	"github.com/ava-labs/humidefi/state"
)

var ErrDuplicateAsset = errors.New("duplicate asset")

type Asset struct {
	ID           uint32        `json:"id"`
	Owner        codec.Address `json:"owner"`
	IsSufficient bool          `json:"isSufficient"`
	MinBalance   uint64        `json:"minBalance"`
}

type Allocation struct {
	Asset   uint32        `json:"asset"`
	Address codec.Address `json:"address"`
	Balance uint64        `json:"balance"`
}

// Genesis bootstraps a store with assets and initial balances.
type Genesis struct {
	Assets      []*Asset      `json:"assets"`
	Allocations []*Allocation `json:"allocations"`
}

func New(b []byte) (*Genesis, error) {
	g := &Genesis{}
	if len(b) > 0 {
		if err := json.Unmarshal(b, g); err != nil {
			return nil, fmt.Errorf("failed to unmarshal genesis %s: %w", string(b), err)
		}
	}
	seen := make(map[uint32]struct{}, len(g.Assets))
	for _, asset := range g.Assets {
		if _, ok := seen[asset.ID]; ok {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateAsset, asset.ID)
		}
		seen[asset.ID] = struct{}{}
	}
	return g, nil
}

// Load creates every asset and then mints every allocation through [l].
func (g *Genesis) Load(ctx context.Context, tracer trace.Tracer, l ledger.AssetLedger, mu state.Mutable) error {
	ctx, span := tracer.Start(ctx, "Genesis.Load")
	defer span.End()
	span.SetAttributes(
		attribute.Int("assets", len(g.Assets)),
		attribute.Int("allocations", len(g.Allocations)),
	)

	for _, asset := range g.Assets {
		if err := l.Create(ctx, mu, asset.ID, asset.Owner, asset.IsSufficient, asset.MinBalance); err != nil {
			return fmt.Errorf("%w: asset=%d", err, asset.ID)
		}
	}
	for _, alloc := range g.Allocations {
		if err := l.MintInto(ctx, mu, alloc.Asset, alloc.Address, alloc.Balance); err != nil {
			return fmt.Errorf("%w: asset=%d, addr=%s, bal=%d", err, alloc.Asset, alloc.Address, alloc.Balance)
		}
	}
	return nil
}
