// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/storage"
	"github.com/bitmark-inc/logger"
)

// Updater - runs a write transaction exclusively
type Updater interface {
	Update(name string, f func(trx storage.Transaction) error) error
}

// Faucet - balance queries and test funds
//
// a limit of zero disables funding
type Faucet struct {
	log     *logger.L
	ledger  *Ledger
	reader  storage.Reader
	updater Updater
	limit   uint64
}

// NewFaucet - faucet granting at most limit per request
func NewFaucet(l *Ledger, reader storage.Reader, updater Updater, limit uint64) *Faucet {
	return &Faucet{
		log:     logger.New("faucet"),
		ledger:  l,
		reader:  reader,
		updater: updater,
		limit:   limit,
	}
}

// Balance - committed balance of an account
func (f *Faucet) Balance(owner *account.Account) uint64 {
	return f.ledger.Balance(f.reader, owner)
}

// Fund - credit an account, returns the new balance
func (f *Faucet) Fund(to *account.Account, amount uint64) (uint64, error) {
	if 0 == f.limit {
		return 0, fault.FaucetDisabled
	}
	if 0 == amount {
		return 0, fault.InvalidCount
	}
	if amount > f.limit {
		return 0, fault.FaucetLimitExceeded
	}

	balance := uint64(0)
	err := f.updater.Update("fund", func(trx storage.Transaction) error {
		var err error
		balance, err = f.ledger.Credit(trx, to, amount)
		return err
	})
	if nil != err {
		return 0, err
	}

	f.log.Infof("funded: %s  amount: %d  balance: %d", to, amount, balance)
	return balance, nil
}
