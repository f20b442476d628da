// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package controller

import (
	"github.com/ava-labs/avalanchego/utils/metric"
	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ava-labs/humidefi/consts"
)

const actionLabel = "action"

var actionNames = map[uint8]string{
	consts.NewLiquidityID:      "new_liquidity",
	consts.RedeemLiquidityID:   "redeem_liquidity",
	consts.SwapExactInForOutID: "swap_exact_in_for_out",
	consts.SwapInForExactOutID: "swap_in_for_exact_out",
	consts.TransferAssetID:     "transfer_asset",
}

func actionName(typeID uint8) string {
	if name, ok := actionNames[typeID]; ok {
		return name
	}
	return "unknown"
}

type metrics struct {
	executed *prometheus.CounterVec
	failed   *prometheus.CounterVec
	duration *prometheus.HistogramVec

	lockedKeys prometheus.Gauge
	commit     metric.Averager
}

func newMetrics(r prometheus.Registerer) (*metrics, error) {
	commit, err := metric.NewAverager(
		"controller_commit",
		"time spent committing an executed view",
		r,
	)
	if err != nil {
		return nil, err
	}
	m := &metrics{
		executed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "controller",
			Name:      "actions_executed",
			Help:      "number of actions applied to state",
		}, []string{actionLabel}),
		failed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "controller",
			Name:      "actions_failed",
			Help:      "number of actions rolled back",
		}, []string{actionLabel}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "controller",
			Name:      "action_duration_seconds",
			Help:      "time spent executing an action",
			Buckets:   prometheus.DefBuckets,
		}, []string{actionLabel}),
		lockedKeys: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "controller",
			Name:      "locked_keys",
			Help:      "number of resource keys held or awaited",
		}),
		commit: commit,
	}
	errs := wrappers.Errs{}
	errs.Add(
		r.Register(m.executed),
		r.Register(m.failed),
		r.Register(m.duration),
		r.Register(m.lockedKeys),
	)
	return m, errs.Err
}
