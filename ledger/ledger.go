// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - spendable balances used to pay for kitties
//
// balances are kept in the same database as the registry so a
// payment commits or aborts together with the ownership change
package ledger

import (
	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/counter"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/storage"
)

// Ledger - balances by account
type Ledger struct {
	balances *storage.PoolHandle
}

// New - ledger over the balances pool
func New(balances *storage.PoolHandle) *Ledger {
	return &Ledger{
		balances: balances,
	}
}

// Balance - current balance of an account
func (l *Ledger) Balance(r storage.Reader, owner *account.Account) uint64 {
	n, _ := r.GetN(l.balances, owner.Bytes())
	return n
}

// Pay - move funds between accounts inside an open transaction
//
// nothing is written if either side fails
func (l *Ledger) Pay(trx storage.Transaction, from *account.Account, to *account.Account, amount uint64) error {
	if 0 == amount || from.Equal(to) {
		return nil
	}

	fromBalance, ok := counter.Sub(l.Balance(trx, from), amount)
	if !ok {
		return fault.InsufficientFunds
	}
	toBalance, ok := counter.Add(l.Balance(trx, to), amount)
	if !ok {
		return fault.BalanceOverflow
	}

	l.put(trx, from, fromBalance)
	l.put(trx, to, toBalance)
	return nil
}

// Credit - add newly issued funds to an account
func (l *Ledger) Credit(trx storage.Transaction, to *account.Account, amount uint64) (uint64, error) {
	balance, ok := counter.Add(l.Balance(trx, to), amount)
	if !ok {
		return 0, fault.BalanceOverflow
	}
	l.put(trx, to, balance)
	return balance, nil
}

func (l *Ledger) put(trx storage.Transaction, owner *account.Account, balance uint64) {
	if 0 == balance {
		trx.Delete(l.balances, owner.Bytes())
		return
	}
	trx.PutN(l.balances, owner.Bytes(), balance)
}
