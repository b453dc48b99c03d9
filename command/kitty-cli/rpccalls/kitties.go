// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/digest"
	"github.com/bitmark-inc/kittyd/engine"
	"github.com/bitmark-inc/kittyd/keypair"
	"github.com/bitmark-inc/kittyd/rpc/kitties"
)

// Create - mint a kitty for the key pair owner
func (c *Client) Create(owner *keypair.KeyPair) (*engine.Event, error) {
	sequence, err := c.Sequence(owner.Account)
	if nil != err {
		return nil, err
	}
	arguments := kitties.CreateArguments{
		Owner:     owner.Account,
		Sequence:  sequence,
		Signature: owner.Sign(kitties.PackCreate(owner.Account, sequence)),
	}
	reply := &engine.Event{}
	if err = c.call("Create", "Kitties.Create", arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// SetPrice - list a kitty for sale, zero withdraws it
func (c *Client) SetPrice(owner *keypair.KeyPair, id digest.Digest, price uint64) (*engine.Event, error) {
	sequence, err := c.Sequence(owner.Account)
	if nil != err {
		return nil, err
	}
	arguments := kitties.SetPriceArguments{
		Owner:     owner.Account,
		Sequence:  sequence,
		KittyId:   id,
		Price:     price,
		Signature: owner.Sign(kitties.PackSetPrice(owner.Account, sequence, id, price)),
	}
	reply := &engine.Event{}
	if err = c.call("SetPrice", "Kitties.SetPrice", arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// Transfer - give a kitty to another account
func (c *Client) Transfer(owner *keypair.KeyPair, to *account.Account, id digest.Digest) (*engine.Event, error) {
	sequence, err := c.Sequence(owner.Account)
	if nil != err {
		return nil, err
	}
	arguments := kitties.TransferArguments{
		Owner:     owner.Account,
		Sequence:  sequence,
		To:        to,
		KittyId:   id,
		Signature: owner.Sign(kitties.PackTransfer(owner.Account, sequence, to, id)),
	}
	reply := &engine.Event{}
	if err = c.call("Transfer", "Kitties.Transfer", arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// Buy - purchase a listed kitty paying at most maxPrice
func (c *Client) Buy(buyer *keypair.KeyPair, id digest.Digest, maxPrice uint64) (*engine.Event, error) {
	sequence, err := c.Sequence(buyer.Account)
	if nil != err {
		return nil, err
	}
	arguments := kitties.BuyArguments{
		Buyer:     buyer.Account,
		Sequence:  sequence,
		KittyId:   id,
		MaxPrice:  maxPrice,
		Signature: buyer.Sign(kitties.PackBuy(buyer.Account, sequence, id, maxPrice)),
	}
	reply := &engine.Event{}
	if err = c.call("Buy", "Kitties.Buy", arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// Sequence - the number the account's next signed request must carry
func (c *Client) Sequence(owner *account.Account) (uint64, error) {
	arguments := kitties.SequenceArguments{
		Owner: owner,
	}
	reply := &kitties.SequenceReply{}
	if err := c.call("Sequence", "Kitties.Sequence", arguments, reply); nil != err {
		return 0, err
	}
	return reply.Sequence, nil
}

// Kitty - a kitty record and its owner
func (c *Client) Kitty(id digest.Digest) (*kitties.GetReply, error) {
	arguments := kitties.GetArguments{
		KittyId: id,
	}
	reply := &kitties.GetReply{}
	if err := c.call("Kitty", "Kitties.Get", arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// Owned - a page of an owner's kitties
func (c *Client) Owned(owner *account.Account, start uint64, count int) (*kitties.OwnedReply, error) {
	arguments := kitties.OwnedArguments{
		Owner: owner,
		Start: start,
		Count: count,
	}
	reply := &kitties.OwnedReply{}
	if err := c.call("Owned", "Kitties.Owned", arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// All - a page of every kitty
func (c *Client) All(start uint64, count int) (*kitties.AllReply, error) {
	arguments := kitties.AllArguments{
		Start: start,
		Count: count,
	}
	reply := &kitties.AllReply{}
	if err := c.call("All", "Kitties.All", arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// Balance - funds held by an account
func (c *Client) Balance(owner *account.Account) (*kitties.BalanceReply, error) {
	arguments := kitties.BalanceArguments{
		Owner: owner,
	}
	reply := &kitties.BalanceReply{}
	if err := c.call("Balance", "Kitties.Balance", arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// Fund - request test funds
func (c *Client) Fund(owner *account.Account, amount uint64) (*kitties.BalanceReply, error) {
	arguments := kitties.FundArguments{
		Owner:  owner,
		Amount: amount,
	}
	reply := &kitties.BalanceReply{}
	if err := c.call("Fund", "Kitties.Fund", arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}
