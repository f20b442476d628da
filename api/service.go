// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ava-labs/avalanchego/utils/logging"
	"go.uber.org/zap"

	"github.com/ava-labs/humidefi/actions"
	"github.com/ava-labs/humidefi/codec"
	"github.com/ava-labs/humidefi/storage"
)

// Backend executes actions and answers reads against committed state.
type Backend interface {
	Execute(ctx context.Context, actor codec.Address, action actions.Action) (actions.Result, error)
	LiquidityPool(ctx context.Context, pair storage.AssetPair) (*storage.LiquidityPool, bool, error)
	Positions(ctx context.Context, account codec.Address, pair storage.AssetPair) ([]*storage.AccountLiquidityPool, error)
	Balance(ctx context.Context, account codec.Address, asset uint32) (uint64, error)
	CustodyAccount() codec.Address
}

// JSONRPCServer exposes a [Backend] over JSON-RPC. Action methods execute as
// the account named in the request's actor field and nothing authenticates
// that claim, so any client that can reach the endpoint can move any
// account's funds. Serve it only on a trusted interface.
type JSONRPCServer struct {
	log     logging.Logger
	backend Backend
}

func NewJSONRPCServer(log logging.Logger, backend Backend) *JSONRPCServer {
	return &JSONRPCServer{log: log, backend: backend}
}

type PingReply struct {
	Success bool `json:"success"`
}

func (j *JSONRPCServer) Ping(_ *http.Request, _ *struct{}, reply *PingReply) error {
	j.log.Debug("ping")
	reply.Success = true
	return nil
}

type CustodyAccountReply struct {
	Address codec.Address `json:"address"`
}

func (j *JSONRPCServer) CustodyAccount(_ *http.Request, _ *struct{}, reply *CustodyAccountReply) error {
	reply.Address = j.backend.CustodyAccount()
	return nil
}

type LiquidityPoolArgs struct {
	AssetX uint32 `json:"assetX"`
	AssetY uint32 `json:"assetY"`
}

type LiquidityPoolReply struct {
	Pool *storage.LiquidityPool `json:"pool"`
}

func (j *JSONRPCServer) LiquidityPool(req *http.Request, args *LiquidityPoolArgs, reply *LiquidityPoolReply) error {
	pair, err := storage.NewAssetPair(args.AssetX, args.AssetY)
	if err != nil {
		return err
	}
	pool, found, err := j.backend.LiquidityPool(req.Context(), pair)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w: %s", storage.ErrPoolNotFound, pair)
	}
	reply.Pool = pool
	return nil
}

type PositionsArgs struct {
	Account codec.Address `json:"account"`
	AssetX  uint32        `json:"assetX"`
	AssetY  uint32        `json:"assetY"`
}

type PositionsReply struct {
	Lots []*storage.AccountLiquidityPool `json:"lots"`
}

func (j *JSONRPCServer) Positions(req *http.Request, args *PositionsArgs, reply *PositionsReply) error {
	pair, err := storage.NewAssetPair(args.AssetX, args.AssetY)
	if err != nil {
		return err
	}
	reply.Lots, err = j.backend.Positions(req.Context(), args.Account, pair)
	return err
}

type BalanceArgs struct {
	Account codec.Address `json:"account"`
	Asset   uint32        `json:"asset"`
}

type BalanceReply struct {
	Amount uint64 `json:"amount"`
}

func (j *JSONRPCServer) Balance(req *http.Request, args *BalanceArgs, reply *BalanceReply) error {
	bal, err := j.backend.Balance(req.Context(), args.Account, args.Asset)
	if err != nil {
		return err
	}
	reply.Amount = bal
	return nil
}

type NewLiquidityArgs struct {
	Actor codec.Address `json:"actor"`
	actions.NewLiquidity
}

func (j *JSONRPCServer) NewLiquidity(req *http.Request, args *NewLiquidityArgs, reply *actions.NewLiquidityResult) error {
	return execute(req.Context(), j, args.Actor, &args.NewLiquidity, reply)
}

type RedeemLiquidityArgs struct {
	Actor codec.Address `json:"actor"`
	actions.RedeemLiquidity
}

func (j *JSONRPCServer) RedeemLiquidity(req *http.Request, args *RedeemLiquidityArgs, reply *actions.RedeemLiquidityResult) error {
	return execute(req.Context(), j, args.Actor, &args.RedeemLiquidity, reply)
}

type SwapExactInForOutArgs struct {
	Actor codec.Address `json:"actor"`
	actions.SwapExactInForOut
}

func (j *JSONRPCServer) SwapExactInForOut(req *http.Request, args *SwapExactInForOutArgs, reply *actions.SwapExactInForOutResult) error {
	return execute(req.Context(), j, args.Actor, &args.SwapExactInForOut, reply)
}

type SwapInForExactOutArgs struct {
	Actor codec.Address `json:"actor"`
	actions.SwapInForExactOut
}

func (j *JSONRPCServer) SwapInForExactOut(req *http.Request, args *SwapInForExactOutArgs, reply *actions.SwapInForExactOutResult) error {
	return execute(req.Context(), j, args.Actor, &args.SwapInForExactOut, reply)
}

type TransferAssetArgs struct {
	Actor codec.Address `json:"actor"`
	actions.TransferAsset
}

func (j *JSONRPCServer) TransferAsset(req *http.Request, args *TransferAssetArgs, reply *PingReply) error {
	if _, err := j.backend.Execute(req.Context(), args.Actor, &args.TransferAsset); err != nil {
		return err
	}
	reply.Success = true
	return nil
}

// execute runs [action] and copies its result into [reply].
func execute[R any](ctx context.Context, j *JSONRPCServer, actor codec.Address, action actions.Action, reply *R) error {
	result, err := j.backend.Execute(ctx, actor, action)
	if err != nil {
		j.log.Debug("rejected action",
			zap.Uint8("type", action.GetTypeID()),
			zap.Error(err),
		)
		return err
	}
	r, ok := result.(*R)
	if !ok {
		return fmt.Errorf("unexpected result %T", result)
	}
	*reply = *r
	return nil
}
