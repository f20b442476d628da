// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"errors"

	"github.com/ava-labs/avalanchego/trace"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/spf13/viper"

	"github.com/ava-labs/humidefi/controller"
	"github.com/ava-labs/humidefi/pebble"
	"github.com/ava-labs/humidefi/storage"

	htrace "github.com/ava-labs/humidefi/trace"
)

type app struct {
	log    logging.Logger
	tracer trace.Tracer
	db     *pebble.Database
	c      *controller.Controller
}

func openApp() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	log := newLogger(cfg.LogLevel, viper.GetString("log-dir"))
	tracer, err := htrace.New(cfg.Trace)
	if err != nil {
		return nil, err
	}
	db, reg, err := pebble.New(viper.GetString("db"), cfg.Pebble)
	if err != nil {
		return nil, errors.Join(err, tracer.Close())
	}
	c, err := controller.New(cfg, db, &storage.StateLedger{}, log, tracer, reg)
	if err != nil {
		return nil, errors.Join(err, db.Close(), tracer.Close())
	}
	return &app{
		log:    log,
		tracer: tracer,
		db:     db,
		c:      c,
	}, nil
}

func (a *app) Close() error {
	err := errors.Join(a.db.Close(), a.tracer.Close())
	a.log.Stop()
	return err
}

// withApp runs [f] against an opened store and always closes it.
func withApp(f func(a *app) error) (err error) {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, a.Close())
	}()
	return f(a)
}
