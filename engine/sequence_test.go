// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package engine_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kittyd/fault"
)

func TestSignedOperationsAdvanceSequence(t *testing.T) {
	f := setup(t)
	defer f.db.Close()

	assert.Equal(t, uint64(0), f.engine.Sequence(alice), "initial sequence")

	ev, err := f.engine.SignedMint(alice, 0)
	assert.Nil(t, err, "signed mint")
	id := ev.KittyId

	_, err = f.engine.SignedMint(alice, 0)
	assert.Equal(t, fault.InvalidSequence, err, "repeated sequence")
	_, err = f.engine.SignedMint(alice, 5)
	assert.Equal(t, fault.InvalidSequence, err, "skipped sequence")
	assert.Equal(t, uint64(1), f.engine.AllKittiesCount(), "mint with bad sequence")

	_, err = f.engine.SignedSetPrice(alice, 1, id, 9)
	assert.Nil(t, err, "signed set price")
	assert.Equal(t, uint64(2), f.engine.Sequence(alice), "sequence after set price")

	// each account has its own sequence
	assert.Equal(t, uint64(0), f.engine.Sequence(bob), "bob sequence")

	_, err = f.engine.SignedBuy(bob, 0, id, 9)
	assert.Equal(t, fault.PaymentFailed(fault.InsufficientFunds).Error(), err.Error(), "buy without funds")
	assert.Equal(t, uint64(1), f.engine.Sequence(bob), "rejected request keeps its sequence")

	f.credit(t, bob, 9)
	_, err = f.engine.SignedBuy(bob, 0, id, 9)
	assert.Equal(t, fault.InvalidSequence, err, "rejected buy replayed")
	_, err = f.engine.SignedBuy(bob, 1, id, 9)
	assert.Nil(t, err, "signed buy")

	_, err = f.engine.SignedTransfer(bob, 2, carol, id)
	assert.Nil(t, err, "signed transfer")
	_, err = f.engine.SignedTransfer(carol, 0, bob, id)
	assert.Nil(t, err, "transfer back")
	_, err = f.engine.SignedTransfer(bob, 2, carol, id)
	assert.Equal(t, fault.InvalidSequence, err, "replayed transfer after return")

	owner, _ := f.engine.OwnerOf(id)
	assert.True(t, bob.Equal(owner), "owner")

	f.verify(t)
}

func TestSequenceOverflow(t *testing.T) {
	f := setup(t)
	defer f.db.Close()

	f.putN(t, f.db.Pool.Sequences, alice.Bytes(), math.MaxUint64)

	_, err := f.engine.SignedMint(alice, math.MaxUint64)
	assert.Equal(t, fault.CountOverflow, err, "sequence overflow")
	assert.Equal(t, uint64(0), f.engine.AllKittiesCount(), "minted")
}
