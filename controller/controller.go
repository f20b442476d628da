// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package controller applies actions to a database. Every action runs in its
// own view: a failed action leaves no trace and a successful one is committed
// in a single batch.
package controller

import (
	"context"
	"time"

	"github.com/ava-labs/avalanchego/trace"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/atomic"
	"go.uber.org/zap"

	oteltrace "go.opentelemetry.io/otel/trace"

	"github.com/ava-labs/humidefi/actions"
	"github.com/ava-labs/humidefi/codec"
	"github.com/ava-labs/humidefi/config"
	"github.com/ava-labs/humidefi/genesis"
	"github.com/ava-labs/humidefi/ledger"
	"github.com/ava-labs/humidefi/lockmap"
	"github.com/ava-labs/humidefi/state"
	"github.com/ava-labs/humidefi/storage"
)

// Tx is an action submitted by [Actor].
type Tx struct {
	Actor  codec.Address
	Action actions.Action
}

// Outcome is the result of one action of a batch. Exactly one of Result and
// Err is set, except for actions that return no result.
type Outcome struct {
	Result actions.Result
	Err    error
}

type Controller struct {
	config  *config.Config
	log     logging.Logger
	tracer  trace.Tracer
	metrics *metrics

	db      state.Database
	env     *actions.Env
	locks   *lockmap.Lockmap
	commits atomic.Uint64
}

func New(
	cfg *config.Config,
	db state.Database,
	l ledger.AssetLedger,
	log logging.Logger,
	tracer trace.Tracer,
	reg prometheus.Registerer,
) (*Controller, error) {
	if !cfg.MetricsEnabled {
		reg = prometheus.NewRegistry()
	}
	m, err := newMetrics(reg)
	if err != nil {
		return nil, err
	}
	c := &Controller{
		config:  cfg,
		log:     log,
		tracer:  tracer,
		metrics: m,
		db:      db,
		env:     actions.NewEnv(l, cfg.CustodyAccount(), cfg.ShareAssetStart),
		locks:   lockmap.New(64),
	}
	log.Info("initialized controller",
		zap.Stringer("custody", c.env.Custody),
		zap.Uint32("shareAssetStart", cfg.ShareAssetStart),
	)
	return c, nil
}

// CustodyAccount returns the account holding pool reserves.
func (c *Controller) CustodyAccount() codec.Address {
	return c.env.Custody
}

// Execute runs [action] for [actor] and commits its effects. On error
// nothing is written.
func (c *Controller) Execute(ctx context.Context, actor codec.Address, action actions.Action) (actions.Result, error) {
	name := actionName(action.GetTypeID())
	ctx, span := c.tracer.Start(ctx, "Controller.Execute", oteltrace.WithAttributes(
		attribute.String("action", name),
		attribute.Stringer("actor", actor),
	))
	defer span.End()

	held := c.lock(action.LockKeys(actor, c.env.Custody))
	defer c.unlock(held)

	view := state.NewView(c.db)
	result, err := c.execute(ctx, view, actor, action)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if err := c.commit(ctx, view); err != nil {
		return nil, err
	}
	return result, nil
}

// ExecuteBatch runs [txs] in order against one view and commits once. A
// failed action is rolled back on its own and reported in its [Outcome];
// the returned error is reserved for failures of the view itself.
func (c *Controller) ExecuteBatch(ctx context.Context, txs []*Tx) ([]*Outcome, error) {
	ctx, span := c.tracer.Start(ctx, "Controller.ExecuteBatch", oteltrace.WithAttributes(
		attribute.Int("txs", len(txs)),
	))
	defer span.End()

	var keys []string
	for _, tx := range txs {
		keys = append(keys, tx.Action.LockKeys(tx.Actor, c.env.Custody)...)
	}
	held := c.lock(keys)
	defer c.unlock(held)

	view := state.NewView(c.db)
	outcomes := make([]*Outcome, len(txs))
	for i, tx := range txs {
		restore := view.OpIndex()
		result, err := c.execute(ctx, view, tx.Actor, tx.Action)
		if err != nil {
			if rerr := view.Rollback(ctx, restore); rerr != nil {
				return nil, rerr
			}
		}
		outcomes[i] = &Outcome{Result: result, Err: err}
	}
	if err := c.commit(ctx, view); err != nil {
		return nil, err
	}
	return outcomes, nil
}

func (c *Controller) execute(ctx context.Context, view *state.View, actor codec.Address, action actions.Action) (actions.Result, error) {
	name := actionName(action.GetTypeID())
	start := time.Now()
	result, err := action.Execute(ctx, c.env, view, actor)
	c.metrics.duration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.failed.WithLabelValues(name).Inc()
		c.log.Warn("action failed",
			zap.String("action", name),
			zap.Stringer("actor", actor),
			zap.Error(err),
		)
		return nil, err
	}
	c.metrics.executed.WithLabelValues(name).Inc()
	c.log.Debug("action executed",
		zap.String("action", name),
		zap.Stringer("actor", actor),
		zap.Any("result", result),
	)
	return result, nil
}

func (c *Controller) commit(ctx context.Context, view *state.View) error {
	start := time.Now()
	changes := view.PendingChanges()
	if err := view.Commit(ctx); err != nil {
		c.log.Error("commit failed", zap.Error(err))
		return err
	}
	c.metrics.commit.Observe(float64(time.Since(start)))
	commit := c.commits.Inc()
	c.log.Debug("committed view",
		zap.Uint64("commit", commit),
		zap.Int("changes", changes),
	)
	return nil
}

func (c *Controller) lock(keys []string) []string {
	held := c.locks.LockAll(keys)
	c.metrics.lockedKeys.Set(float64(c.locks.Locks()))
	return held
}

func (c *Controller) unlock(held []string) {
	c.locks.UnlockAll(held)
	c.metrics.lockedKeys.Set(float64(c.locks.Locks()))
}

// Commits returns the number of views written since the controller was
// created.
func (c *Controller) Commits() uint64 {
	return c.commits.Load()
}

// LoadGenesis applies [g] to the database in one commit.
func (c *Controller) LoadGenesis(ctx context.Context, g *genesis.Genesis) error {
	view := state.NewView(c.db)
	if err := g.Load(ctx, c.tracer, c.env.Ledger, view); err != nil {
		return err
	}
	if err := c.commit(ctx, view); err != nil {
		return err
	}
	c.log.Info("loaded genesis",
		zap.Int("assets", len(g.Assets)),
		zap.Int("allocations", len(g.Allocations)),
	)
	return nil
}

// LiquidityPool returns the committed pool for [pair] in either orientation.
func (c *Controller) LiquidityPool(ctx context.Context, pair storage.AssetPair) (*storage.LiquidityPool, bool, error) {
	return storage.GetLiquidityPool(ctx, c.db, pair)
}

// Positions returns the committed lots [account] holds for [pair].
func (c *Controller) Positions(ctx context.Context, account codec.Address, pair storage.AssetPair) ([]*storage.AccountLiquidityPool, error) {
	lots, _, err := storage.GetAccountLiquidityPools(ctx, c.db, account, pair)
	return lots, err
}

// Balance returns the committed balance of [asset] held by [account].
func (c *Controller) Balance(ctx context.Context, account codec.Address, asset uint32) (uint64, error) {
	return c.env.Ledger.BalanceOf(ctx, c.db, account, asset)
}
