// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package engine

import (
	"sync"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/enumerable"
	"github.com/bitmark-inc/kittyd/identifier"
	"github.com/bitmark-inc/kittyd/kitty"
	"github.com/bitmark-inc/kittyd/ownership"
	"github.com/bitmark-inc/kittyd/storage"
	"github.com/bitmark-inc/logger"
)

// Payer - moves funds from buyer to seller inside the buy transaction
//
// a failure must leave the transaction unchanged
type Payer interface {
	Pay(trx storage.Transaction, from *account.Account, to *account.Account, amount uint64) error
}

// Engine - the kitty registry
//
// each operation runs in one storage transaction that is committed
// only if every check passed, and operations never interleave
type Engine struct {
	sync.Mutex

	log        *logger.L
	db         *storage.Database
	kitties    *kitty.Store
	owners     *ownership.Owners
	all        *enumerable.Index
	randomness identifier.Randomness
	payer      Payer
	emitter    Emitter
}

// key of the nonce in the values pool
var nonceKey = []byte("nonce")

// New - registry over an open database
func New(db *storage.Database, randomness identifier.Randomness, payer Payer) *Engine {
	return &Engine{
		log:        logger.New("engine"),
		db:         db,
		kitties:    kitty.NewStore(db.Pool.Kitties),
		owners:     ownership.New(&db.Pool),
		all:        enumerable.New(db.Pool.AllPositions, db.Pool.AllIndex, db.Pool.Counts),
		randomness: randomness,
		payer:      payer,
	}
}

// SetEmitter - deliver events to an additional consumer
func (e *Engine) SetEmitter(emitter Emitter) {
	e.Lock()
	e.emitter = emitter
	e.Unlock()
}

// Update - run a write that is not a registry operation, such as a
// ledger credit, under the same lock as the registry operations
func (e *Engine) Update(name string, f func(trx storage.Transaction) error) error {
	e.Lock()
	defer e.Unlock()

	return e.transact(name, f)
}

// run one operation as a transaction and emit its event
func (e *Engine) apply(name string, f func(trx storage.Transaction) (Event, error)) (Event, error) {
	e.Lock()
	defer e.Unlock()

	ev := Event{}
	err := e.transact(name, func(trx storage.Transaction) error {
		var err error
		ev, err = f(trx)
		return err
	})
	if nil != err {
		return Event{}, err
	}

	e.emit(ev)
	return ev, nil
}

// log and deliver a committed event, lock must be held
func (e *Engine) emit(ev Event) {
	e.log.Infof("%s", ev)
	if nil != e.emitter {
		e.emitter.Emit(ev)
	}
}

// commit only if f succeeds, lock must be held
func (e *Engine) transact(name string, f func(trx storage.Transaction) error) error {
	trx, err := e.db.Begin()
	if nil != err {
		e.log.Errorf("%s: begin error: %s", name, err)
		return err
	}

	err = f(trx)
	if nil != err {
		trx.Abort()
		e.log.Debugf("%s: rejected: %s", name, err)
		return err
	}

	err = trx.Commit()
	if nil != err {
		e.log.Criticalf("%s: commit error: %s", name, err)
		return err
	}
	return nil
}
