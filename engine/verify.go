// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package engine

import (
	"encoding/binary"
	"fmt"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/digest"
	"github.com/bitmark-inc/kittyd/enumerable"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/kitty"
)

// Report - result of an integrity scan
type Report struct {
	Kitties  uint64   `json:"kitties,string"`
	Owners   uint64   `json:"owners,string"`
	Nonce    uint64   `json:"nonce,string"`
	Problems []string `json:"problems,omitempty"`
}

func (r *Report) problem(format string, arguments ...interface{}) {
	r.Problems = append(r.Problems, fmt.Sprintf(format, arguments...))
}

// Verify - scan every pool and check that the indexes agree
//
//   every kitty has one owner and one position in that owner's list
//   every kitty has one global position
//   all positions are dense and agree with their inverse entries
//   counts equal the number of entries, and no count exists without entries
func (e *Engine) Verify() (*Report, error) {
	e.Lock()
	defer e.Unlock()

	report := &Report{
		Nonce: e.Nonce(),
	}

	globalCount := e.all.Count(e.db, enumerable.GlobalScope)

	err := e.kitties.Map(func(k *kitty.Kitty) error {
		report.Kitties += 1

		owner, found := e.owners.OwnerOf(e.db, k.Id)
		if !found {
			report.problem("kitty: %s has no owner", k.Id)
		} else if _, found := e.owners.PositionOf(e.db, owner, k.Id); !found {
			report.problem("kitty: %s not listed for owner: %s", k.Id, owner)
		}
		if _, found := e.all.PositionOf(e.db, enumerable.GlobalScope, k.Id); !found {
			report.problem("kitty: %s has no global position", k.Id)
		}
		if k.Dna != k.Id {
			report.problem("kitty: %s has dna: %s", k.Id, k.Dna)
		}
		return nil
	})
	if nil != err {
		return nil, err
	}

	if globalCount != report.Kitties {
		report.problem("global count: %d  kitties: %d", globalCount, report.Kitties)
	}
	if report.Nonce < globalCount {
		report.problem("nonce: %d  below global count: %d", report.Nonce, globalCount)
	}

	// global positions
	n := uint64(0)
	err = e.db.Pool.AllPositions.NewFetchCursor().Map(func(key []byte, value []byte) error {
		n += 1
		e.checkPosition(report, enumerable.GlobalScope, globalCount, key, value, func(id digest.Digest) (uint64, bool) {
			return e.all.PositionOf(e.db, enumerable.GlobalScope, id)
		})
		return nil
	})
	if nil != err {
		return nil, err
	}
	if n != globalCount {
		report.problem("global positions: %d  count: %d", n, globalCount)
	}

	// owned positions, counted per owner
	owned := make(map[string]uint64)
	err = e.db.Pool.OwnedPositions.NewFetchCursor().Map(func(key []byte, value []byte) error {
		if len(key) <= 8 {
			report.problem("owned position key: %x too short", key)
			return nil
		}
		scope := key[:len(key)-8]
		owned[string(scope)] += 1

		owner, err := account.FromBytes(scope)
		if nil != err {
			report.problem("owned position key: %x  error: %s", key, err)
			return nil
		}
		e.checkPosition(report, scope, e.owners.Count(e.db, owner), key[len(scope):], value, func(id digest.Digest) (uint64, bool) {
			return e.owners.PositionOf(e.db, owner, id)
		})

		var id digest.Digest
		if nil == digest.FromBytes(&id, value) {
			recorded, found := e.owners.OwnerOf(e.db, id)
			if !found || !recorded.Equal(owner) {
				report.problem("kitty: %s listed for: %s but owned by: %v", id, owner, recorded)
			}
		}
		return nil
	})
	if nil != err {
		return nil, err
	}

	report.Owners = uint64(len(owned))

	// every owner count, including counts left with no entries
	counted := make(map[string]bool)
	err = e.db.Pool.Counts.NewFetchCursor().Map(func(key []byte, value []byte) error {
		if 0 == len(key) {
			return nil
		}
		counted[string(key)] = true
		if 8 != len(value) {
			report.problem("owner: %x  count: %x wrong length", key, value)
			return nil
		}
		count := binary.BigEndian.Uint64(value)
		if entries := owned[string(key)]; entries != count {
			report.problem("owner: %x  count: %d  entries: %d", key, count, entries)
		}
		return nil
	})
	if nil != err {
		return nil, err
	}
	for scope, entries := range owned {
		if !counted[scope] {
			report.problem("owner: %x  no count  entries: %d", scope, entries)
		}
	}

	if 0 != len(report.Problems) {
		for _, p := range report.Problems {
			e.log.Errorf("verify: %s", p)
		}
		return report, fault.IntegrityCheckFailed
	}

	e.log.Infof("verify: kitties: %d  owners: %d  nonce: %d", report.Kitties, report.Owners, report.Nonce)
	return report, nil
}

// check one position entry against its count and inverse
func (e *Engine) checkPosition(report *Report, scope []byte, count uint64, positionBytes []byte, value []byte, positionOf func(digest.Digest) (uint64, bool)) {
	if 8 != len(positionBytes) {
		report.problem("scope: %x  position key: %x wrong length", scope, positionBytes)
		return
	}
	position := binary.BigEndian.Uint64(positionBytes)
	if position >= count {
		report.problem("scope: %x  position: %d beyond count: %d", scope, position, count)
	}

	var id digest.Digest
	if err := digest.FromBytes(&id, value); nil != err {
		report.problem("scope: %x  position: %d  bad id: %x", scope, position, value)
		return
	}

	inverse, found := positionOf(id)
	if !found || inverse != position {
		report.problem("scope: %x  position: %d  id: %s  inverse: %d found: %t", scope, position, id, inverse, found)
	}
}
