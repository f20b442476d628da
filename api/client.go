// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package api

import (
	"context"
	"strings"

	"github.com/ava-labs/avalanchego/utils/rpc"

	"github.com/ava-labs/humidefi/actions"
	"github.com/ava-labs/humidefi/codec"
	"github.com/ava-labs/humidefi/storage"
)

type JSONRPCClient struct {
	requester rpc.EndpointRequester
}

func NewJSONRPCClient(uri string) *JSONRPCClient {
	uri = strings.TrimSuffix(uri, "/")
	uri += Endpoint
	return &JSONRPCClient{requester: rpc.NewEndpointRequester(uri)}
}

func (cli *JSONRPCClient) Ping(ctx context.Context) (bool, error) {
	resp := new(PingReply)
	err := cli.requester.SendRequest(ctx,
		Name+".ping",
		struct{}{},
		resp,
	)
	return resp.Success, err
}

func (cli *JSONRPCClient) CustodyAccount(ctx context.Context) (codec.Address, error) {
	resp := new(CustodyAccountReply)
	err := cli.requester.SendRequest(ctx,
		Name+".custodyAccount",
		struct{}{},
		resp,
	)
	return resp.Address, err
}

func (cli *JSONRPCClient) LiquidityPool(ctx context.Context, pair storage.AssetPair) (*storage.LiquidityPool, error) {
	resp := new(LiquidityPoolReply)
	err := cli.requester.SendRequest(ctx,
		Name+".liquidityPool",
		&LiquidityPoolArgs{AssetX: pair.AssetX, AssetY: pair.AssetY},
		resp,
	)
	return resp.Pool, err
}

func (cli *JSONRPCClient) Positions(ctx context.Context, account codec.Address, pair storage.AssetPair) ([]*storage.AccountLiquidityPool, error) {
	resp := new(PositionsReply)
	err := cli.requester.SendRequest(ctx,
		Name+".positions",
		&PositionsArgs{Account: account, AssetX: pair.AssetX, AssetY: pair.AssetY},
		resp,
	)
	return resp.Lots, err
}

func (cli *JSONRPCClient) Balance(ctx context.Context, account codec.Address, asset uint32) (uint64, error) {
	resp := new(BalanceReply)
	err := cli.requester.SendRequest(ctx,
		Name+".balance",
		&BalanceArgs{Account: account, Asset: asset},
		resp,
	)
	return resp.Amount, err
}

func (cli *JSONRPCClient) NewLiquidity(ctx context.Context, actor codec.Address, action actions.NewLiquidity) (*actions.NewLiquidityResult, error) {
	resp := new(actions.NewLiquidityResult)
	err := cli.requester.SendRequest(ctx,
		Name+".newLiquidity",
		&NewLiquidityArgs{Actor: actor, NewLiquidity: action},
		resp,
	)
	return resp, err
}

func (cli *JSONRPCClient) RedeemLiquidity(ctx context.Context, actor codec.Address, action actions.RedeemLiquidity) (*actions.RedeemLiquidityResult, error) {
	resp := new(actions.RedeemLiquidityResult)
	err := cli.requester.SendRequest(ctx,
		Name+".redeemLiquidity",
		&RedeemLiquidityArgs{Actor: actor, RedeemLiquidity: action},
		resp,
	)
	return resp, err
}

func (cli *JSONRPCClient) SwapExactInForOut(ctx context.Context, actor codec.Address, action actions.SwapExactInForOut) (*actions.SwapExactInForOutResult, error) {
	resp := new(actions.SwapExactInForOutResult)
	err := cli.requester.SendRequest(ctx,
		Name+".swapExactInForOut",
		&SwapExactInForOutArgs{Actor: actor, SwapExactInForOut: action},
		resp,
	)
	return resp, err
}

func (cli *JSONRPCClient) SwapInForExactOut(ctx context.Context, actor codec.Address, action actions.SwapInForExactOut) (*actions.SwapInForExactOutResult, error) {
	resp := new(actions.SwapInForExactOutResult)
	err := cli.requester.SendRequest(ctx,
		Name+".swapInForExactOut",
		&SwapInForExactOutArgs{Actor: actor, SwapInForExactOut: action},
		resp,
	)
	return resp, err
}

func (cli *JSONRPCClient) TransferAsset(ctx context.Context, actor codec.Address, action actions.TransferAsset) error {
	resp := new(PingReply)
	return cli.requester.SendRequest(ctx,
		Name+".transferAsset",
		&TransferAssetArgs{Actor: actor, TransferAsset: action},
		resp,
	)
}
