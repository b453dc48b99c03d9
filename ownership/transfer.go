// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/counter"
	"github.com/bitmark-inc/kittyd/digest"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/storage"
)

// Create - record the first owner of a new kitty
func (o *Owners) Create(trx storage.Transaction, id digest.Digest, owner *account.Account) error {
	if _, ok := counter.Next(o.Count(trx, owner)); !ok {
		return fault.OverflowAddingToAccountBalance
	}

	if _, err := o.owned.Append(trx, owner.Bytes(), id); nil != err {
		return err
	}
	o.SetOwner(trx, id, owner)
	return nil
}

// Transfer - move a kitty between owners
//
// both counts are checked before anything is written
// the kitty leaves the previous owner's list by swap removal
func (o *Owners) Transfer(trx storage.Transaction, id digest.Digest, from *account.Account, to *account.Account) error {
	if _, ok := counter.Next(o.Count(trx, to)); !ok {
		return fault.OverflowAddingToAccountBalance
	}
	if _, ok := counter.Previous(o.Count(trx, from)); !ok {
		return fault.UnderflowRemovingFromAccountBalance
	}

	if err := o.owned.Remove(trx, from.Bytes(), id); nil != err {
		return err
	}
	if _, err := o.owned.Append(trx, to.Bytes(), id); nil != err {
		return err
	}
	o.SetOwner(trx, id, to)
	return nil
}
