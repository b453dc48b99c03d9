// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kitty

import (
	"github.com/bitmark-inc/kittyd/digest"
	"github.com/bitmark-inc/kittyd/storage"
	"github.com/bitmark-inc/logger"
)

// Store - kitty records by id
//
// a plain dictionary, callers enforce uniqueness
type Store struct {
	pool *storage.PoolHandle
}

// NewStore - store over the kitties pool
func NewStore(pool *storage.PoolHandle) *Store {
	return &Store{
		pool: pool,
	}
}

// Put - write a kitty record
func (s *Store) Put(trx storage.Transaction, k *Kitty) {
	trx.Put(s.pool, k.Id[:], k.Pack())
}

// Has - check if a kitty exists
func (s *Store) Has(r storage.Reader, id digest.Digest) bool {
	return r.Has(s.pool, id[:])
}

// Get - fetch a kitty, nil if it does not exist
func (s *Store) Get(r storage.Reader, id digest.Digest) *Kitty {
	buffer := r.Get(s.pool, id[:])
	if nil == buffer {
		return nil
	}
	k, err := Unpack(buffer)
	if nil != err {
		logger.Criticalf("kitty.Get: id: %s  record: %x  error: %s", id, buffer, err)
		logger.Panic("kitty.Get: kitty database corrupt")
	}
	return k
}

// Map - visit every stored kitty
func (s *Store) Map(f func(k *Kitty) error) error {
	return s.pool.NewFetchCursor().Map(func(key []byte, value []byte) error {
		k, err := Unpack(value)
		if nil != err {
			return err
		}
		return f(k)
	})
}
