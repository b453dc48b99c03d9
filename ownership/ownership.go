// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/digest"
	"github.com/bitmark-inc/kittyd/enumerable"
	"github.com/bitmark-inc/kittyd/storage"
	"github.com/bitmark-inc/logger"
)

// from storage/doc.go:
//
//   O ++ kittyId            - current owner
//   L ++ owner ++ position  - kitties of one owner
//   D ++ owner ++ kittyId   - position in owner's kitties
//   N ++ owner              - number of kitties owned

// Owners - who owns each kitty and what each owner holds
type Owners struct {
	owners *storage.PoolHandle
	owned  *enumerable.Index
}

// New - ownership records over the database pools
func New(pools *storage.Pools) *Owners {
	return &Owners{
		owners: pools.KittyOwner,
		owned:  enumerable.New(pools.OwnedPositions, pools.OwnedIndex, pools.Counts),
	}
}

// OwnerOf - current owner of a kitty
func (o *Owners) OwnerOf(r storage.Reader, id digest.Digest) (*account.Account, bool) {
	buffer := r.Get(o.owners, id[:])
	if nil == buffer {
		return nil, false
	}
	owner, err := account.FromBytes(buffer)
	if nil != err {
		logger.Criticalf("ownership.OwnerOf: id: %s  owner: %x  error: %s", id, buffer, err)
		logger.Panic("ownership.OwnerOf: owner database corrupt")
	}
	return owner, true
}

// SetOwner - overwrite the owner record of a kitty
//
// this does not touch the owned lists, see Create and Transfer
func (o *Owners) SetOwner(trx storage.Transaction, id digest.Digest, owner *account.Account) {
	trx.Put(o.owners, id[:], owner.Bytes())
}

// Count - number of kitties held by an owner
func (o *Owners) Count(r storage.Reader, owner *account.Account) uint64 {
	return o.owned.Count(r, owner.Bytes())
}

// ByPosition - the kitty at a position in an owner's list
func (o *Owners) ByPosition(r storage.Reader, owner *account.Account, position uint64) (digest.Digest, bool) {
	return o.owned.ByPosition(r, owner.Bytes(), position)
}

// PositionOf - where a kitty sits in its owner's list
func (o *Owners) PositionOf(r storage.Reader, owner *account.Account, id digest.Digest) (uint64, bool) {
	return o.owned.PositionOf(r, owner.Bytes(), id)
}
