// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package engine

import (
	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/counter"
	"github.com/bitmark-inc/kittyd/digest"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/storage"
)

// Sequence - the sequence number the next signed request from an
// account must carry
func (e *Engine) Sequence(a *account.Account) uint64 {
	n, _ := e.db.Pool.Sequences.GetN(a.Bytes())
	return n
}

// SignedMint - Mint for a request signed with the caller's next sequence
func (e *Engine) SignedMint(caller *account.Account, sequence uint64) (Event, error) {
	return e.applySigned("mint", caller, sequence, func(trx storage.Transaction) (Event, error) {
		return e.mint(trx, caller)
	})
}

// SignedSetPrice - SetPrice for a request signed with the caller's next sequence
func (e *Engine) SignedSetPrice(caller *account.Account, sequence uint64, id digest.Digest, price uint64) (Event, error) {
	return e.applySigned("set price", caller, sequence, func(trx storage.Transaction) (Event, error) {
		return e.setPrice(trx, caller, id, price)
	})
}

// SignedTransfer - Transfer for a request signed with the caller's next sequence
func (e *Engine) SignedTransfer(caller *account.Account, sequence uint64, to *account.Account, id digest.Digest) (Event, error) {
	return e.applySigned("transfer", caller, sequence, func(trx storage.Transaction) (Event, error) {
		return e.transfer(trx, caller, to, id)
	})
}

// SignedBuy - Buy for a request signed with the caller's next sequence
func (e *Engine) SignedBuy(caller *account.Account, sequence uint64, id digest.Digest, maxPrice uint64) (Event, error) {
	return e.applySigned("buy", caller, sequence, func(trx storage.Transaction) (Event, error) {
		return e.buy(trx, caller, id, maxPrice)
	})
}

// run one signed operation
//
// the sequence is consumed whether or not the operation succeeds so a
// request can be applied at most once
func (e *Engine) applySigned(name string, caller *account.Account, sequence uint64, f func(trx storage.Transaction) (Event, error)) (Event, error) {
	e.Lock()
	defer e.Unlock()

	ev := Event{}
	sequenceError := error(nil)
	err := e.transact(name, func(trx storage.Transaction) error {
		sequenceError = e.useSequence(trx, caller, sequence)
		if nil != sequenceError {
			return sequenceError
		}
		var err error
		ev, err = f(trx)
		return err
	})
	if nil != sequenceError {
		return Event{}, sequenceError
	}
	if nil != err {
		serr := e.transact(name+" sequence", func(trx storage.Transaction) error {
			return e.useSequence(trx, caller, sequence)
		})
		if nil != serr {
			return Event{}, serr
		}
		return Event{}, err
	}

	e.emit(ev)
	return ev, nil
}

// check the sequence is the expected one and advance it
func (e *Engine) useSequence(trx storage.Transaction, caller *account.Account, sequence uint64) error {
	expected, _ := trx.GetN(e.db.Pool.Sequences, caller.Bytes())
	if sequence != expected {
		return fault.InvalidSequence
	}
	next, ok := counter.Next(expected)
	if !ok {
		return fault.CountOverflow
	}
	trx.PutN(e.db.Pool.Sequences, caller.Bytes(), next)
	return nil
}
