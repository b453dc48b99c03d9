// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package engine_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/digest"
	"github.com/bitmark-inc/kittyd/fault"
)

// random operations must keep every index consistent
func TestRandomOperationsStayConsistent(t *testing.T) {
	f := setup(t)
	defer f.db.Close()

	accounts := []*account.Account{alice, bob, carol}
	for _, a := range accounts {
		f.credit(t, a, 1000000)
	}

	ids := []digest.Digest{}
	r := rand.New(rand.NewSource(7))

	for step := 0; step < 200; step += 1 {
		caller := accounts[r.Intn(len(accounts))]
		switch op := r.Intn(4); {
		case 0 == op || 0 == len(ids):
			ev, err := f.engine.Mint(caller)
			assert.Nil(t, err, "step %d: mint", step)
			ids = append(ids, ev.KittyId)
		case 1 == op:
			id := ids[r.Intn(len(ids))]
			owner, _ := f.engine.OwnerOf(id)
			_, err := f.engine.SetPrice(owner, id, uint64(r.Intn(100)))
			assert.Nil(t, err, "step %d: set price", step)
		case 2 == op:
			id := ids[r.Intn(len(ids))]
			owner, _ := f.engine.OwnerOf(id)
			_, err := f.engine.Transfer(owner, caller, id)
			assert.Nil(t, err, "step %d: transfer", step)
		default:
			id := ids[r.Intn(len(ids))]
			_, _ = f.engine.Buy(caller, id, 100)
		}
	}

	total := uint64(0)
	for _, a := range accounts {
		total += f.engine.OwnedKittyCount(a)
	}
	assert.Equal(t, uint64(len(ids)), total, "owned counts do not add up")
	assert.Equal(t, uint64(len(ids)), f.engine.AllKittiesCount(), "global count")

	for _, id := range ids {
		owner, found := f.engine.OwnerOf(id)
		assert.True(t, found, "kitty %s has no owner", id)
		n := 0
		for i := uint64(0); i < f.engine.OwnedKittyCount(owner); i += 1 {
			if listed, _ := f.engine.KittyOfOwnerByIndex(owner, i); listed == id {
				n += 1
			}
		}
		assert.Equal(t, 1, n, "kitty %s listed %d times", id, n)
	}

	f.verify(t)
}

func TestVerifyDetectsCorruption(t *testing.T) {
	f := setup(t)
	defer f.db.Close()

	id := f.mint(t, alice).KittyId
	f.mint(t, alice)

	trx, _ := f.db.Begin()
	trx.Delete(f.db.Pool.OwnedIndex, append(alice.Bytes(), id[:]...))
	_ = trx.Commit()

	report, err := f.engine.Verify()
	assert.Equal(t, fault.IntegrityCheckFailed, err, "corruption not detected")
	assert.NotEqual(t, 0, len(report.Problems), "no problems reported")
}

func TestVerifyCounts(t *testing.T) {
	f := setup(t)
	defer f.db.Close()

	f.mint(t, alice)
	f.mint(t, bob)
	f.mint(t, bob)

	report, err := f.engine.Verify()
	assert.Nil(t, err, "verify")
	assert.Equal(t, uint64(3), report.Kitties, "kitties")
	assert.Equal(t, uint64(2), report.Owners, "owners")
	assert.Equal(t, uint64(3), report.Nonce, "nonce")
}

func TestVerifyDetectsStaleOwnerCount(t *testing.T) {
	f := setup(t)
	defer f.db.Close()

	f.mint(t, alice)
	f.putN(t, f.db.Pool.Counts, carol.Bytes(), 2)

	report, err := f.engine.Verify()
	assert.Equal(t, fault.IntegrityCheckFailed, err, "stale count not detected")
	if assert.Equal(t, 1, len(report.Problems), "problems") {
		assert.Contains(t, report.Problems[0], "entries: 0", "wrong problem")
	}
}

func TestVerifyDetectsMissingOwnerCount(t *testing.T) {
	f := setup(t)
	defer f.db.Close()

	f.mint(t, alice)

	trx, _ := f.db.Begin()
	trx.Delete(f.db.Pool.Counts, alice.Bytes())
	_ = trx.Commit()

	report, err := f.engine.Verify()
	assert.Equal(t, fault.IntegrityCheckFailed, err, "missing count not detected")
	assert.NotEqual(t, 0, len(report.Problems), "no problems reported")
}
