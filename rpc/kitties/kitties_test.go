// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kitties_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/digest"
	"github.com/bitmark-inc/kittyd/engine"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/keypair"
	"github.com/bitmark-inc/kittyd/kitty"
	"github.com/bitmark-inc/kittyd/ownership"
	"github.com/bitmark-inc/kittyd/rpc/fixtures"
	"github.com/bitmark-inc/kittyd/rpc/kitties"
	"github.com/bitmark-inc/kittyd/rpc/mocks"
	"github.com/bitmark-inc/logger"
)

type fixture struct {
	ctl      *gomock.Controller
	registry *mocks.MockRegistry
	funds    *mocks.MockFunds
	k        *kitties.Kitties
}

func setup(t *testing.T) *fixture {
	fixtures.SetupTestLogger()

	ctl := gomock.NewController(t)
	r := mocks.NewMockRegistry(ctl)
	f := mocks.NewMockFunds(ctl)

	return &fixture{
		ctl:      ctl,
		registry: r,
		funds:    f,
		k:        kitties.New(logger.New(fixtures.LogCategory), r, f, true),
	}
}

func (f *fixture) teardown() {
	f.ctl.Finish()
	fixtures.TeardownTestLogger()
}

func newKeyPair(t *testing.T, test bool) *keypair.KeyPair {
	kp, err := keypair.New(test)
	if nil != err {
		t.Fatalf("keypair error: %s", err)
	}
	return kp
}

func TestCreate(t *testing.T) {
	f := setup(t)
	defer f.teardown()

	kp := newKeyPair(t, true)
	id := digest.New([]byte("kitty"))

	f.registry.EXPECT().SignedMint(kp.Account, uint64(3)).Return(engine.Event{Kind: engine.Created, Caller: kp.Account, KittyId: id}, nil).Times(1)

	var reply engine.Event
	err := f.k.Create(&kitties.CreateArguments{
		Owner:     kp.Account,
		Sequence:  3,
		Signature: kp.Sign(kitties.PackCreate(kp.Account, 3)),
	}, &reply)

	assert.Nil(t, err, "create")
	assert.Equal(t, engine.Created, reply.Kind, "kind")
	assert.Equal(t, id, reply.KittyId, "kitty id")
}

func TestCreateAuthentication(t *testing.T) {
	f := setup(t)
	defer f.teardown()

	kp := newKeyPair(t, true)
	other := newKeyPair(t, true)
	live := newKeyPair(t, false)

	var reply engine.Event

	err := f.k.Create(&kitties.CreateArguments{
		Owner:     kp.Account,
		Signature: other.Sign(kitties.PackCreate(kp.Account, 0)),
	}, &reply)
	assert.Equal(t, fault.InvalidSignature, err, "signed by another key")

	err = f.k.Create(&kitties.CreateArguments{
		Owner:     live.Account,
		Signature: live.Sign(kitties.PackCreate(live.Account, 0)),
	}, &reply)
	assert.Equal(t, fault.WrongNetworkForPublicKey, err, "live account on test chain")

	err = f.k.Create(&kitties.CreateArguments{
		Owner: kp.Account,
	}, &reply)
	assert.Equal(t, fault.MissingParameters, err, "no signature")

	err = f.k.Create(&kitties.CreateArguments{}, &reply)
	assert.Equal(t, fault.MissingParameters, err, "no owner")
}

func TestSetPrice(t *testing.T) {
	f := setup(t)
	defer f.teardown()

	kp := newKeyPair(t, true)
	id := digest.New([]byte("kitty"))

	f.registry.EXPECT().SignedSetPrice(kp.Account, uint64(0), id, uint64(100)).Return(engine.Event{Kind: engine.PriceSet, Price: 100}, nil).Times(1)

	var reply engine.Event
	err := f.k.SetPrice(&kitties.SetPriceArguments{
		Owner:     kp.Account,
		KittyId:   id,
		Price:     100,
		Signature: kp.Sign(kitties.PackSetPrice(kp.Account, 0, id, 100)),
	}, &reply)
	assert.Nil(t, err, "set price")
	assert.Equal(t, uint64(100), reply.Price, "price")

	// signature for a different price
	err = f.k.SetPrice(&kitties.SetPriceArguments{
		Owner:     kp.Account,
		KittyId:   id,
		Price:     1,
		Signature: kp.Sign(kitties.PackSetPrice(kp.Account, 0, id, 100)),
	}, &reply)
	assert.Equal(t, fault.InvalidSignature, err, "altered price")

	// signature for a different sequence
	err = f.k.SetPrice(&kitties.SetPriceArguments{
		Owner:     kp.Account,
		Sequence:  1,
		KittyId:   id,
		Price:     100,
		Signature: kp.Sign(kitties.PackSetPrice(kp.Account, 0, id, 100)),
	}, &reply)
	assert.Equal(t, fault.InvalidSignature, err, "altered sequence")
}

func TestSequence(t *testing.T) {
	f := setup(t)
	defer f.teardown()

	owner := newKeyPair(t, true)
	live := newKeyPair(t, false)

	f.registry.EXPECT().Sequence(owner.Account).Return(uint64(12)).Times(1)

	var reply kitties.SequenceReply
	err := f.k.Sequence(&kitties.SequenceArguments{Owner: owner.Account}, &reply)
	assert.Nil(t, err, "sequence")
	assert.Equal(t, uint64(12), reply.Sequence, "sequence")

	err = f.k.Sequence(&kitties.SequenceArguments{Owner: live.Account}, &reply)
	assert.Equal(t, fault.WrongNetworkForPublicKey, err, "live account")

	err = f.k.Sequence(&kitties.SequenceArguments{}, &reply)
	assert.Equal(t, fault.MissingParameters, err, "no owner")
}

func TestTransfer(t *testing.T) {
	f := setup(t)
	defer f.teardown()

	kp := newKeyPair(t, true)
	to := newKeyPair(t, true)
	live := newKeyPair(t, false)
	id := digest.New([]byte("kitty"))

	f.registry.EXPECT().SignedTransfer(kp.Account, uint64(0), to.Account, id).Return(engine.Event{}, fault.NotOwner).Times(1)

	var reply engine.Event
	err := f.k.Transfer(&kitties.TransferArguments{
		Owner:     kp.Account,
		To:        to.Account,
		KittyId:   id,
		Signature: kp.Sign(kitties.PackTransfer(kp.Account, 0, to.Account, id)),
	}, &reply)
	assert.Equal(t, fault.NotOwner, err, "registry error")

	err = f.k.Transfer(&kitties.TransferArguments{
		Owner:     kp.Account,
		To:        live.Account,
		KittyId:   id,
		Signature: kp.Sign(kitties.PackTransfer(kp.Account, 0, live.Account, id)),
	}, &reply)
	assert.Equal(t, fault.WrongNetworkForPublicKey, err, "recipient on live chain")

	err = f.k.Transfer(&kitties.TransferArguments{
		Owner:     kp.Account,
		KittyId:   id,
		Signature: kp.Sign(kitties.PackCreate(kp.Account, 0)),
	}, &reply)
	assert.Equal(t, fault.MissingParameters, err, "no recipient")
}

func TestBuy(t *testing.T) {
	f := setup(t)
	defer f.teardown()

	buyer := newKeyPair(t, true)
	seller := newKeyPair(t, true)
	id := digest.New([]byte("kitty"))

	f.registry.EXPECT().SignedBuy(buyer.Account, uint64(1), id, uint64(500)).Return(engine.Event{
		Kind:    engine.Bought,
		Caller:  buyer.Account,
		Other:   seller.Account,
		KittyId: id,
		Price:   300,
	}, nil).Times(1)

	var reply engine.Event
	err := f.k.Buy(&kitties.BuyArguments{
		Buyer:     buyer.Account,
		KittyId:   id,
		Sequence:  1,
		MaxPrice:  500,
		Signature: buyer.Sign(kitties.PackBuy(buyer.Account, 1, id, 500)),
	}, &reply)
	assert.Nil(t, err, "buy")
	assert.Equal(t, uint64(300), reply.Price, "price paid")
	assert.True(t, seller.Account.Equal(reply.Other), "seller")

	// a set price signature cannot be replayed as a buy
	err = f.k.Buy(&kitties.BuyArguments{
		Buyer:     buyer.Account,
		KittyId:   id,
		Sequence:  2,
		MaxPrice:  500,
		Signature: buyer.Sign(kitties.PackSetPrice(buyer.Account, 2, id, 500)),
	}, &reply)
	assert.Equal(t, fault.InvalidSignature, err, "set price signature")
}

func TestGet(t *testing.T) {
	f := setup(t)
	defer f.teardown()

	owner := newKeyPair(t, true)
	id := digest.New([]byte("kitty"))
	missing := digest.New([]byte("missing"))

	f.registry.EXPECT().Kitty(id).Return(kitty.New(id)).Times(1)
	f.registry.EXPECT().OwnerOf(id).Return(owner.Account, true).Times(2)
	f.registry.EXPECT().Kitty(missing).Return(nil).Times(1)
	f.registry.EXPECT().OwnerOf(missing).Return(nil, false).Times(1)

	var reply kitties.GetReply
	err := f.k.Get(&kitties.GetArguments{KittyId: id}, &reply)
	assert.Nil(t, err, "get")
	assert.Equal(t, id, reply.Kitty.Dna, "dna")
	assert.True(t, owner.Account.Equal(reply.Owner), "owner")

	err = f.k.Get(&kitties.GetArguments{KittyId: missing}, &reply)
	assert.Equal(t, fault.KittyDoesNotExist, err, "missing kitty")

	var ownerReply kitties.OwnerReply
	err = f.k.Owner(&kitties.OwnerArguments{KittyId: id}, &ownerReply)
	assert.Nil(t, err, "owner")
	assert.True(t, owner.Account.Equal(ownerReply.Owner), "owner reply")

	err = f.k.Owner(&kitties.OwnerArguments{KittyId: missing}, &ownerReply)
	assert.Equal(t, fault.NoOwner, err, "missing owner")
}

func TestAll(t *testing.T) {
	f := setup(t)
	defer f.teardown()

	ids := []digest.Digest{
		digest.New([]byte("0")),
		digest.New([]byte("1")),
		digest.New([]byte("2")),
	}

	f.registry.EXPECT().AllKittiesCount().Return(uint64(len(ids))).Times(2)
	for i, id := range ids[1:] {
		f.registry.EXPECT().KittyByIndex(uint64(i+1)).Return(id, true).Times(1)
	}

	var reply kitties.AllReply
	err := f.k.All(&kitties.AllArguments{Start: 1, Count: 10}, &reply)
	assert.Nil(t, err, "all")
	assert.Equal(t, uint64(3), reply.Total, "total")
	assert.Equal(t, uint64(3), reply.Next, "next")
	assert.Equal(t, ids[1:], reply.Kitties, "kitties")

	err = f.k.All(&kitties.AllArguments{Start: 3, Count: 10}, &reply)
	assert.Nil(t, err, "all at end")
	assert.Equal(t, 0, len(reply.Kitties), "kitties past end")
	assert.Equal(t, uint64(3), reply.Next, "next at end")

	err = f.k.All(&kitties.AllArguments{Start: 0, Count: kitties.MaximumCount + 1}, &reply)
	assert.Equal(t, fault.InvalidCount, err, "count too large")
}

func TestOwned(t *testing.T) {
	f := setup(t)
	defer f.teardown()

	owner := newKeyPair(t, true)
	records := []ownership.Record{
		{N: 4, KittyId: digest.New([]byte("4"))},
		{N: 5, KittyId: digest.New([]byte("5"))},
	}

	f.registry.EXPECT().OwnedKitties(owner.Account, uint64(4), 2).Return(records, nil).Times(1)
	f.registry.EXPECT().OwnedKittyCount(owner.Account).Return(uint64(9)).Times(1)

	var reply kitties.OwnedReply
	err := f.k.Owned(&kitties.OwnedArguments{Owner: owner.Account, Start: 4, Count: 2}, &reply)
	assert.Nil(t, err, "owned")
	assert.Equal(t, uint64(9), reply.Total, "total")
	assert.Equal(t, uint64(6), reply.Next, "next")
	assert.Equal(t, records, reply.Data, "records")

	err = f.k.Owned(&kitties.OwnedArguments{Owner: owner.Account, Start: 0, Count: 0}, &reply)
	assert.Equal(t, fault.InvalidCount, err, "zero count")
}

func TestBalanceAndFund(t *testing.T) {
	f := setup(t)
	defer f.teardown()

	owner := newKeyPair(t, true)
	live := &account.Account{Test: false, PublicKey: owner.Account.PublicKey}

	f.funds.EXPECT().Balance(owner.Account).Return(uint64(42)).Times(1)
	f.funds.EXPECT().Fund(owner.Account, uint64(8)).Return(uint64(50), nil).Times(1)
	f.funds.EXPECT().Fund(owner.Account, uint64(0)).Return(uint64(0), fault.InvalidCount).Times(1)

	var reply kitties.BalanceReply
	err := f.k.Balance(&kitties.BalanceArguments{Owner: owner.Account}, &reply)
	assert.Nil(t, err, "balance")
	assert.Equal(t, uint64(42), reply.Balance, "balance")

	err = f.k.Fund(&kitties.FundArguments{Owner: owner.Account, Amount: 8}, &reply)
	assert.Nil(t, err, "fund")
	assert.Equal(t, uint64(50), reply.Balance, "funded balance")

	err = f.k.Fund(&kitties.FundArguments{Owner: owner.Account, Amount: 0}, &reply)
	assert.Equal(t, fault.InvalidCount, err, "fund error")

	err = f.k.Balance(&kitties.BalanceArguments{Owner: live}, &reply)
	assert.Equal(t, fault.WrongNetworkForPublicKey, err, "live account")
}
