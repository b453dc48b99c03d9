// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package engine

import (
	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/counter"
	"github.com/bitmark-inc/kittyd/digest"
	"github.com/bitmark-inc/kittyd/enumerable"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/identifier"
	"github.com/bitmark-inc/kittyd/kitty"
	"github.com/bitmark-inc/kittyd/storage"
)

// Mint - create a new kitty owned by the caller
func (e *Engine) Mint(caller *account.Account) (Event, error) {
	return e.apply("mint", func(trx storage.Transaction) (Event, error) {
		return e.mint(trx, caller)
	})
}

func (e *Engine) mint(trx storage.Transaction, caller *account.Account) (Event, error) {
	nonce, _ := trx.GetN(e.db.Pool.Values, nonceKey)
	id := identifier.NextId(e.randomness, nonce, caller.Bytes())

	if e.kitties.Has(trx, id) {
		return Event{}, fault.KittyAlreadyExists
	}

	if _, ok := counter.Next(e.owners.Count(trx, caller)); !ok {
		return Event{}, fault.OverflowAddingToAccountBalance
	}
	if _, ok := counter.Next(e.all.Count(trx, enumerable.GlobalScope)); !ok {
		return Event{}, fault.OverflowAddingToTotalSupply
	}
	nextNonce, ok := counter.Next(nonce)
	if !ok {
		return Event{}, fault.OverflowAddingToTotalSupply
	}

	e.kitties.Put(trx, kitty.New(id))

	if err := e.owners.Create(trx, id, caller); nil != err {
		return Event{}, err
	}
	if _, err := e.all.Append(trx, enumerable.GlobalScope, id); nil != err {
		return Event{}, err
	}

	trx.PutN(e.db.Pool.Values, nonceKey, nextNonce)

	return Event{
		Kind:    Created,
		Caller:  caller,
		KittyId: id,
	}, nil
}

// SetPrice - list a kitty for sale, a price of zero withdraws it
func (e *Engine) SetPrice(caller *account.Account, id digest.Digest, price uint64) (Event, error) {
	return e.apply("set price", func(trx storage.Transaction) (Event, error) {
		return e.setPrice(trx, caller, id, price)
	})
}

func (e *Engine) setPrice(trx storage.Transaction, caller *account.Account, id digest.Digest, price uint64) (Event, error) {
	k := e.kitties.Get(trx, id)
	if nil == k {
		return Event{}, fault.KittyDoesNotExist
	}

	owner, found := e.owners.OwnerOf(trx, id)
	if !found {
		return Event{}, fault.NoOwner
	}
	if !owner.Equal(caller) {
		return Event{}, fault.NotOwner
	}

	k.Price = price
	e.kitties.Put(trx, k)

	return Event{
		Kind:    PriceSet,
		Caller:  caller,
		KittyId: id,
		Price:   price,
	}, nil
}

// Transfer - give a kitty to another account
//
// the price is unchanged, a listed kitty stays listed for its new owner
func (e *Engine) Transfer(caller *account.Account, to *account.Account, id digest.Digest) (Event, error) {
	return e.apply("transfer", func(trx storage.Transaction) (Event, error) {
		return e.transfer(trx, caller, to, id)
	})
}

func (e *Engine) transfer(trx storage.Transaction, caller *account.Account, to *account.Account, id digest.Digest) (Event, error) {
	owner, found := e.owners.OwnerOf(trx, id)
	if !found {
		return Event{}, fault.NoOwner
	}
	if !owner.Equal(caller) {
		return Event{}, fault.NotOwner
	}

	if err := e.owners.Transfer(trx, id, caller, to); nil != err {
		return Event{}, err
	}

	return Event{
		Kind:    Transferred,
		Caller:  caller,
		Other:   to,
		KittyId: id,
	}, nil
}

// Buy - pay the listed price to the owner and take the kitty
//
// the kitty is no longer for sale afterwards
func (e *Engine) Buy(caller *account.Account, id digest.Digest, maxPrice uint64) (Event, error) {
	return e.apply("buy", func(trx storage.Transaction) (Event, error) {
		return e.buy(trx, caller, id, maxPrice)
	})
}

func (e *Engine) buy(trx storage.Transaction, caller *account.Account, id digest.Digest, maxPrice uint64) (Event, error) {
	k := e.kitties.Get(trx, id)
	if nil == k {
		return Event{}, fault.KittyDoesNotExist
	}

	owner, found := e.owners.OwnerOf(trx, id)
	if !found {
		return Event{}, fault.NoOwner
	}
	if owner.Equal(caller) {
		return Event{}, fault.CannotBuyOwnKitty
	}

	price := k.Price
	if !k.IsForSale() {
		return Event{}, fault.KittyIsNotForSale
	}
	if price > maxPrice {
		return Event{}, fault.PriceExceedsMaximum
	}

	if err := e.payer.Pay(trx, caller, owner, price); nil != err {
		return Event{}, fault.PaymentFailed(err)
	}

	if err := e.owners.Transfer(trx, id, owner, caller); nil != err {
		return Event{}, err
	}

	k.Price = kitty.NotForSale
	e.kitties.Put(trx, k)

	return Event{
		Kind:    Bought,
		Caller:  caller,
		Other:   owner,
		KittyId: id,
		Price:   price,
	}, nil
}
