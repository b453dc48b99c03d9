// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"encoding/binary"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/digest"
	"github.com/bitmark-inc/logger"
)

const uint64ByteSize = 8

// Record - one entry of an owner's list
type Record struct {
	N       uint64        `json:"n,string"`
	KittyId digest.Digest `json:"kittyId"`
}

// ListKittiesFor - fetch a run of committed records for an owner starting at a position
func (o *Owners) ListKittiesFor(owner *account.Account, start uint64, count int) ([]Record, error) {

	startBytes := make([]byte, uint64ByteSize)
	binary.BigEndian.PutUint64(startBytes, start)

	ownerBytes := owner.Bytes()

	cursor := o.owned.Positions().NewScopedCursor(ownerBytes).Seek(append(ownerBytes, startBytes...))

	// owner ++ position -> kittyId
	items, err := cursor.Fetch(count)
	if nil != err {
		return nil, err
	}

	records := make([]Record, 0, len(items))
	for _, item := range items {
		split := len(item.Key) - uint64ByteSize
		if split != len(ownerBytes) {
			logger.Panicf("ownership.ListKittiesFor: bad key: %x", item.Key)
		}

		record := Record{
			N: binary.BigEndian.Uint64(item.Key[split:]),
		}
		if err := digest.FromBytes(&record.KittyId, item.Value); nil != err {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

// Map - visit every owner record
func (o *Owners) Map(f func(id digest.Digest, owner *account.Account) error) error {
	return o.owners.NewFetchCursor().Map(func(key []byte, value []byte) error {
		var id digest.Digest
		if err := digest.FromBytes(&id, key); nil != err {
			return err
		}
		owner, err := account.FromBytes(value)
		if nil != err {
			return err
		}
		return f(id, owner)
	})
}
