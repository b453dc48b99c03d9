// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package engine

import (
	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/digest"
	"github.com/bitmark-inc/kittyd/enumerable"
	"github.com/bitmark-inc/kittyd/kitty"
	"github.com/bitmark-inc/kittyd/ownership"
)

// lookups read committed state only

// Kitty - a kitty by id, nil if it does not exist
func (e *Engine) Kitty(id digest.Digest) *kitty.Kitty {
	return e.kitties.Get(e.db, id)
}

// OwnerOf - current owner of a kitty
func (e *Engine) OwnerOf(id digest.Digest) (*account.Account, bool) {
	return e.owners.OwnerOf(e.db, id)
}

// AllKittiesCount - number of kitties ever minted
func (e *Engine) AllKittiesCount() uint64 {
	return e.all.Count(e.db, enumerable.GlobalScope)
}

// KittyByIndex - kitty id at a global position
func (e *Engine) KittyByIndex(position uint64) (digest.Digest, bool) {
	return e.all.ByPosition(e.db, enumerable.GlobalScope, position)
}

// OwnedKittyCount - number of kitties held by an account
func (e *Engine) OwnedKittyCount(owner *account.Account) uint64 {
	return e.owners.Count(e.db, owner)
}

// KittyOfOwnerByIndex - kitty id at a position in an owner's list
func (e *Engine) KittyOfOwnerByIndex(owner *account.Account, position uint64) (digest.Digest, bool) {
	return e.owners.ByPosition(e.db, owner, position)
}

// OwnedKitties - a run of an owner's list starting at a position
func (e *Engine) OwnedKitties(owner *account.Account, start uint64, count int) ([]ownership.Record, error) {
	return e.owners.ListKittiesFor(owner, start, count)
}

// Nonce - the value the next mint will use
func (e *Engine) Nonce() uint64 {
	n, _ := e.db.GetN(e.db.Pool.Values, nonceKey)
	return n
}
