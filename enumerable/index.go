// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package enumerable

import (
	"encoding/binary"

	"github.com/bitmark-inc/kittyd/counter"
	"github.com/bitmark-inc/kittyd/digest"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/storage"
)

// GlobalScope - the scope holding every kitty
var GlobalScope = []byte{}

// Index - dense zero based positional lists of kitty ids, one list per scope
//
//   positions  scope ++ position  -> id
//   inverse    scope ++ id        -> position
//   counts     scope              -> count
//
// positions are always [0, count) with no gaps, so removal
// moves the last entry into the hole and enumeration order
// is not insertion order once anything has been removed
type Index struct {
	positions *storage.PoolHandle
	inverse   *storage.PoolHandle
	counts    *storage.PoolHandle
}

// New - index over three pools
func New(positions *storage.PoolHandle, inverse *storage.PoolHandle, counts *storage.PoolHandle) *Index {
	return &Index{
		positions: positions,
		inverse:   inverse,
		counts:    counts,
	}
}

// Positions - the pool of position entries, for cursors
func (x *Index) Positions() *storage.PoolHandle {
	return x.positions
}

// Count - number of entries in a scope
func (x *Index) Count(r storage.Reader, scope []byte) uint64 {
	n, _ := r.GetN(x.counts, scope)
	return n
}

// ByPosition - id at a position of a scope
func (x *Index) ByPosition(r storage.Reader, scope []byte, position uint64) (digest.Digest, bool) {
	var id digest.Digest
	buffer := r.Get(x.positions, positionKey(scope, position))
	if nil == buffer {
		return id, false
	}
	if err := digest.FromBytes(&id, buffer); nil != err {
		return id, false
	}
	return id, true
}

// PositionOf - position of an id in a scope
func (x *Index) PositionOf(r storage.Reader, scope []byte, id digest.Digest) (uint64, bool) {
	return r.GetN(x.inverse, inverseKey(scope, id))
}

// Append - add an id at the end of a scope, returns its position
func (x *Index) Append(trx storage.Transaction, scope []byte, id digest.Digest) (uint64, error) {
	count := x.Count(trx, scope)
	newCount, ok := counter.Next(count)
	if !ok {
		return 0, fault.CountOverflow
	}

	trx.Put(x.positions, positionKey(scope, count), id[:])
	trx.PutN(x.inverse, inverseKey(scope, id), count)
	trx.PutN(x.counts, scope, newCount)

	return count, nil
}

// Remove - delete an id from a scope in constant time
//
// the last entry of the scope takes over the position of the removed one
func (x *Index) Remove(trx storage.Transaction, scope []byte, id digest.Digest) error {
	count := x.Count(trx, scope)
	last, ok := counter.Previous(count)
	if !ok {
		return fault.CountUnderflow
	}

	position, found := x.PositionOf(trx, scope, id)
	if !found || position > last {
		return fault.IndexPositionMissing
	}

	if position != last {
		lastId, found := x.ByPosition(trx, scope, last)
		if !found {
			return fault.IndexPositionMissing
		}
		trx.Put(x.positions, positionKey(scope, position), lastId[:])
		trx.PutN(x.inverse, inverseKey(scope, lastId), position)
	}

	trx.Delete(x.positions, positionKey(scope, last))
	trx.Delete(x.inverse, inverseKey(scope, id))

	if 0 == last {
		trx.Delete(x.counts, scope)
	} else {
		trx.PutN(x.counts, scope, last)
	}
	return nil
}

func positionKey(scope []byte, position uint64) []byte {
	key := make([]byte, len(scope)+8)
	copy(key, scope)
	binary.BigEndian.PutUint64(key[len(scope):], position)
	return key
}

func inverseKey(scope []byte, id digest.Digest) []byte {
	key := make([]byte, 0, len(scope)+digest.Length)
	key = append(key, scope...)
	return append(key, id[:]...)
}
