// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/kittyd/fault"
)

// Transaction - batched writes that are applied all together or not at all
//
// reads through a transaction see its own pending writes
type Transaction interface {
	Reader
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
	Delete(*PoolHandle, []byte)
	Commit() error
	Abort()
}

type transaction struct {
	sync.Mutex
	inUse    bool
	database *Database
	batch    *leveldb.Batch
	cache    Cache
}

func (t *transaction) begin() error {
	t.Lock()
	defer t.Unlock()

	if t.inUse {
		return fault.TransactionAlreadyInUse
	}
	if nil == t.database.db {
		return fault.DatabaseIsNotSet
	}

	t.inUse = true
	return nil
}

func (t *transaction) Put(p *PoolHandle, key []byte, value []byte) {
	prefixedKey := p.prefixKey(key)
	t.cache.Set(dbPut, string(prefixedKey), value)
	t.batch.Put(prefixedKey, value)
}

func (t *transaction) PutN(p *PoolHandle, key []byte, n uint64) {
	t.Put(p, key, encodeN(n))
}

func (t *transaction) Delete(p *PoolHandle, key []byte) {
	prefixedKey := p.prefixKey(key)
	t.cache.Set(dbDelete, string(prefixedKey), nil)
	t.batch.Delete(prefixedKey)
}

func (t *transaction) Get(p *PoolHandle, key []byte) []byte {
	prefixedKey := p.prefixKey(key)
	op, value, found := t.cache.Get(string(prefixedKey))
	if found {
		if dbDelete == op {
			return nil
		}
		return value
	}
	return p.get(prefixedKey)
}

func (t *transaction) GetN(p *PoolHandle, key []byte) (uint64, bool) {
	return decodeN(key, t.Get(p, key))
}

func (t *transaction) Has(p *PoolHandle, key []byte) bool {
	op, _, found := t.cache.Get(string(p.prefixKey(key)))
	if found {
		return dbPut == op
	}
	return p.Has(key)
}

// Commit - write all pending changes in one atomic batch
func (t *transaction) Commit() error {
	t.Lock()
	defer t.Unlock()

	if !t.inUse {
		return fault.TransactionNotInUse
	}

	t.database.RLock()
	err := t.database.db.Write(t.batch, nil)
	t.database.RUnlock()

	t.reset()
	return err
}

// Abort - discard all pending changes
func (t *transaction) Abort() {
	t.Lock()
	defer t.Unlock()

	t.reset()
}

func (t *transaction) reset() {
	t.batch.Reset()
	t.cache.Clear()
	t.inUse = false
}
