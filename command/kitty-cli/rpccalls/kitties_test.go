// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"bytes"
	"net"
	"net/rpc/jsonrpc"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kittyd/chain"
	"github.com/bitmark-inc/kittyd/counter"
	"github.com/bitmark-inc/kittyd/engine"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/identifier"
	"github.com/bitmark-inc/kittyd/keypair"
	"github.com/bitmark-inc/kittyd/ledger"
	"github.com/bitmark-inc/kittyd/rpc/fixtures"
	"github.com/bitmark-inc/kittyd/rpc/server"
	"github.com/bitmark-inc/kittyd/storage"
	"github.com/bitmark-inc/logger"
)

// client connected through a pipe to a registry in memory
func setup(t *testing.T, verbose *bytes.Buffer) (*Client, func()) {
	fixtures.SetupTestLogger()

	db, err := storage.OpenMemory()
	if nil != err {
		t.Fatalf("open database error: %s", err)
	}

	l := ledger.New(db.Pool.Balances)
	e := engine.New(db, identifier.NewSeeded([]byte("cli")), l)
	faucet := ledger.NewFaucet(l, db, e, 1000)

	count := counter.Counter(0)
	s := server.Create(logger.New(fixtures.LogCategory), "test", chain.Testing, e, faucet, &count)

	serverConn, clientConn := net.Pipe()
	go s.ServeCodec(jsonrpc.NewServerCodec(serverConn))

	c := newClient(clientConn, nil != verbose, verbose)
	return c, func() {
		c.Close()
		db.Close()
		fixtures.TeardownTestLogger()
	}
}

func TestSaleThroughClient(t *testing.T) {
	c, teardown := setup(t, nil)
	defer teardown()

	seller, _ := keypair.New(true)
	buyer, _ := keypair.New(true)

	created, err := c.Create(seller)
	if !assert.Nil(t, err, "create") {
		return
	}
	assert.Equal(t, engine.Created, created.Kind, "wrong create event")
	id := created.KittyId

	_, err = c.SetPrice(seller, id, 300)
	assert.Nil(t, err, "set price")

	_, err = c.Buy(buyer, id, 300)
	assert.Equal(t, fault.PaymentFailed(fault.InsufficientFunds).Error(), err.Error(), "buy without funds")

	balance, err := c.Fund(buyer.Account, 500)
	assert.Nil(t, err, "fund")
	assert.Equal(t, uint64(500), balance.Balance, "wrong funded balance")

	_, err = c.Buy(buyer, id, 299)
	assert.Equal(t, fault.PriceExceedsMaximum.Error(), err.Error(), "buy below price")

	bought, err := c.Buy(buyer, id, 300)
	if !assert.Nil(t, err, "buy") {
		return
	}
	assert.Equal(t, engine.Bought, bought.Kind, "wrong buy event")
	assert.Equal(t, uint64(300), bought.Price, "wrong price paid")

	k, err := c.Kitty(id)
	assert.Nil(t, err, "kitty")
	assert.Equal(t, buyer.Account.String(), k.Owner.String(), "wrong owner")
	assert.Equal(t, uint64(0), k.Kitty.Price, "still for sale")

	sellerBalance, err := c.Balance(seller.Account)
	assert.Nil(t, err, "seller balance")
	assert.Equal(t, uint64(300), sellerBalance.Balance, "wrong seller balance")

	owned, err := c.Owned(buyer.Account, 0, 10)
	assert.Nil(t, err, "owned")
	assert.Equal(t, uint64(1), owned.Total, "wrong owned total")

	// three signed buys, two rejected
	sequence, err := c.Sequence(buyer.Account)
	assert.Nil(t, err, "sequence")
	assert.Equal(t, uint64(3), sequence, "wrong buyer sequence")

	all, err := c.All(0, 10)
	assert.Nil(t, err, "all")
	assert.Equal(t, uint64(1), all.Total, "wrong total")
	assert.Equal(t, id, all.Kitties[0], "wrong kitty")
}

func TestTransferThroughClient(t *testing.T) {
	c, teardown := setup(t, nil)
	defer teardown()

	alice, _ := keypair.New(true)
	bob, _ := keypair.New(true)

	created, err := c.Create(alice)
	if !assert.Nil(t, err, "create") {
		return
	}

	_, err = c.Transfer(bob, alice.Account, created.KittyId)
	assert.Equal(t, fault.NotOwner.Error(), err.Error(), "transfer by non owner")

	transferred, err := c.Transfer(alice, bob.Account, created.KittyId)
	assert.Nil(t, err, "transfer")
	assert.Equal(t, engine.Transferred, transferred.Kind, "wrong event")
}

func TestVerboseOutput(t *testing.T) {
	verbose := &bytes.Buffer{}
	c, teardown := setup(t, verbose)
	defer teardown()

	info, err := c.Info()
	assert.Nil(t, err, "info")
	assert.Equal(t, chain.Testing, info.Chain, "wrong chain")
	assert.Contains(t, verbose.String(), "Info Request:", "missing request")
	assert.Contains(t, verbose.String(), "Info Reply:", "missing reply")
}
