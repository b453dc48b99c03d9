// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package kitties - the client RPC service for the kitty registry
package kitties

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/digest"
	"github.com/bitmark-inc/kittyd/engine"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/kitty"
	"github.com/bitmark-inc/kittyd/ownership"
	"github.com/bitmark-inc/kittyd/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

const (
	// MaximumCount - largest page for All and Owned
	MaximumCount = 100

	rateLimitKitties = 200
	rateBurstKitties = 100
)

// Registry - the registry operations offered over RPC
type Registry interface {
	SignedMint(caller *account.Account, sequence uint64) (engine.Event, error)
	SignedSetPrice(caller *account.Account, sequence uint64, id digest.Digest, price uint64) (engine.Event, error)
	SignedTransfer(caller *account.Account, sequence uint64, to *account.Account, id digest.Digest) (engine.Event, error)
	SignedBuy(caller *account.Account, sequence uint64, id digest.Digest, maxPrice uint64) (engine.Event, error)
	Sequence(a *account.Account) uint64

	Kitty(id digest.Digest) *kitty.Kitty
	OwnerOf(id digest.Digest) (*account.Account, bool)
	AllKittiesCount() uint64
	KittyByIndex(position uint64) (digest.Digest, bool)
	OwnedKittyCount(owner *account.Account) uint64
	OwnedKitties(owner *account.Account, start uint64, count int) ([]ownership.Record, error)
}

// Funds - balances and test funding
type Funds interface {
	Balance(owner *account.Account) uint64
	Fund(to *account.Account, amount uint64) (uint64, error)
}

// Kitties - type for the RPC
type Kitties struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Registry Registry
	Funds    Funds
	Testing  bool
}

// New - service for one chain, testing selects which accounts are accepted
func New(log *logger.L, registry Registry, funds Funds, testing bool) *Kitties {
	return &Kitties{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitKitties, rateBurstKitties),
		Registry: registry,
		Funds:    funds,
		Testing:  testing,
	}
}

// check the caller signed this request for this chain
func (k *Kitties) authenticate(caller *account.Account, message []byte, signature account.Signature) error {
	if nil == caller || 0 == len(signature) {
		return fault.MissingParameters
	}
	if caller.IsTesting() != k.Testing {
		return fault.WrongNetworkForPublicKey
	}
	if err := caller.CheckSignature(message, signature); nil != err {
		return fault.InvalidSignature
	}
	return nil
}

func (k *Kitties) checkNetwork(a *account.Account) error {
	if nil == a {
		return fault.MissingParameters
	}
	if a.IsTesting() != k.Testing {
		return fault.WrongNetworkForPublicKey
	}
	return nil
}

// Create
// ------

// CreateArguments - arguments for RPC
type CreateArguments struct {
	Owner     *account.Account  `json:"owner"`
	Sequence  uint64            `json:"sequence,string"`
	Signature account.Signature `json:"signature"`
}

// Create - mint a kitty for the signer
func (k *Kitties) Create(arguments *CreateArguments, reply *engine.Event) error {
	if err := ratelimit.Limit(k.Limiter); nil != err {
		return err
	}
	if nil == arguments || nil == arguments.Owner {
		return fault.MissingParameters
	}
	if err := k.authenticate(arguments.Owner, PackCreate(arguments.Owner, arguments.Sequence), arguments.Signature); nil != err {
		return err
	}

	k.Log.Infof("Kitties.Create: owner: %s", arguments.Owner)

	ev, err := k.Registry.SignedMint(arguments.Owner, arguments.Sequence)
	if nil != err {
		return err
	}
	*reply = ev
	return nil
}

// SetPrice
// --------

// SetPriceArguments - arguments for RPC
type SetPriceArguments struct {
	Owner     *account.Account  `json:"owner"`
	Sequence  uint64            `json:"sequence,string"`
	KittyId   digest.Digest     `json:"kittyId"`
	Price     uint64            `json:"price,string"`
	Signature account.Signature `json:"signature"`
}

// SetPrice - list or withdraw a kitty
func (k *Kitties) SetPrice(arguments *SetPriceArguments, reply *engine.Event) error {
	if err := ratelimit.Limit(k.Limiter); nil != err {
		return err
	}
	if nil == arguments || nil == arguments.Owner {
		return fault.MissingParameters
	}
	message := PackSetPrice(arguments.Owner, arguments.Sequence, arguments.KittyId, arguments.Price)
	if err := k.authenticate(arguments.Owner, message, arguments.Signature); nil != err {
		return err
	}

	k.Log.Infof("Kitties.SetPrice: %+v", arguments)

	ev, err := k.Registry.SignedSetPrice(arguments.Owner, arguments.Sequence, arguments.KittyId, arguments.Price)
	if nil != err {
		return err
	}
	*reply = ev
	return nil
}

// Transfer
// --------

// TransferArguments - arguments for RPC
type TransferArguments struct {
	Owner     *account.Account  `json:"owner"`
	Sequence  uint64            `json:"sequence,string"`
	To        *account.Account  `json:"to"`
	KittyId   digest.Digest     `json:"kittyId"`
	Signature account.Signature `json:"signature"`
}

// Transfer - give a kitty away
func (k *Kitties) Transfer(arguments *TransferArguments, reply *engine.Event) error {
	if err := ratelimit.Limit(k.Limiter); nil != err {
		return err
	}
	if nil == arguments || nil == arguments.Owner {
		return fault.MissingParameters
	}
	if err := k.checkNetwork(arguments.To); nil != err {
		return err
	}
	message := PackTransfer(arguments.Owner, arguments.Sequence, arguments.To, arguments.KittyId)
	if err := k.authenticate(arguments.Owner, message, arguments.Signature); nil != err {
		return err
	}

	k.Log.Infof("Kitties.Transfer: %+v", arguments)

	ev, err := k.Registry.SignedTransfer(arguments.Owner, arguments.Sequence, arguments.To, arguments.KittyId)
	if nil != err {
		return err
	}
	*reply = ev
	return nil
}

// Buy
// ---

// BuyArguments - arguments for RPC
type BuyArguments struct {
	Buyer     *account.Account  `json:"buyer"`
	Sequence  uint64            `json:"sequence,string"`
	KittyId   digest.Digest     `json:"kittyId"`
	MaxPrice  uint64            `json:"maxPrice,string"`
	Signature account.Signature `json:"signature"`
}

// Buy - purchase a listed kitty
func (k *Kitties) Buy(arguments *BuyArguments, reply *engine.Event) error {
	if err := ratelimit.Limit(k.Limiter); nil != err {
		return err
	}
	if nil == arguments || nil == arguments.Buyer {
		return fault.MissingParameters
	}
	message := PackBuy(arguments.Buyer, arguments.Sequence, arguments.KittyId, arguments.MaxPrice)
	if err := k.authenticate(arguments.Buyer, message, arguments.Signature); nil != err {
		return err
	}

	k.Log.Infof("Kitties.Buy: %+v", arguments)

	ev, err := k.Registry.SignedBuy(arguments.Buyer, arguments.Sequence, arguments.KittyId, arguments.MaxPrice)
	if nil != err {
		return err
	}
	*reply = ev
	return nil
}

// Sequence
// --------

// SequenceArguments - arguments for RPC
type SequenceArguments struct {
	Owner *account.Account `json:"owner"`
}

// SequenceReply - result of sequence RPC
type SequenceReply struct {
	Sequence uint64 `json:"sequence,string"`
}

// Sequence - the number the account's next signed request must carry
func (k *Kitties) Sequence(arguments *SequenceArguments, reply *SequenceReply) error {
	if err := ratelimit.Limit(k.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.MissingParameters
	}
	if err := k.checkNetwork(arguments.Owner); nil != err {
		return err
	}

	reply.Sequence = k.Registry.Sequence(arguments.Owner)
	return nil
}

// Get
// ---

// GetArguments - arguments for RPC
type GetArguments struct {
	KittyId digest.Digest `json:"kittyId"`
}

// GetReply - result of get RPC
type GetReply struct {
	Kitty *kitty.Kitty     `json:"kitty"`
	Owner *account.Account `json:"owner"`
}

// Get - a kitty and its owner
func (k *Kitties) Get(arguments *GetArguments, reply *GetReply) error {
	if err := ratelimit.Limit(k.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.MissingParameters
	}

	kt := k.Registry.Kitty(arguments.KittyId)
	if nil == kt {
		return fault.KittyDoesNotExist
	}
	owner, found := k.Registry.OwnerOf(arguments.KittyId)
	if !found {
		return fault.NoOwner
	}

	reply.Kitty = kt
	reply.Owner = owner
	return nil
}

// Owner
// -----

// OwnerArguments - arguments for RPC
type OwnerArguments struct {
	KittyId digest.Digest `json:"kittyId"`
}

// OwnerReply - result of owner RPC
type OwnerReply struct {
	Owner *account.Account `json:"owner"`
}

// Owner - the current owner of a kitty
func (k *Kitties) Owner(arguments *OwnerArguments, reply *OwnerReply) error {
	if err := ratelimit.Limit(k.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.MissingParameters
	}

	owner, found := k.Registry.OwnerOf(arguments.KittyId)
	if !found {
		return fault.NoOwner
	}
	reply.Owner = owner
	return nil
}

// All
// ---

// AllArguments - arguments for RPC
type AllArguments struct {
	Start uint64 `json:"start,string"`
	Count int    `json:"count"`
}

// AllReply - result of all RPC
type AllReply struct {
	Total   uint64          `json:"total,string"`
	Next    uint64          `json:"next,string"`
	Kitties []digest.Digest `json:"kitties"`
}

// All - a page of the global enumeration
func (k *Kitties) All(arguments *AllArguments, reply *AllReply) error {
	if nil == arguments {
		return fault.MissingParameters
	}
	if err := ratelimit.LimitN(k.Limiter, arguments.Count, MaximumCount); nil != err {
		return err
	}

	total := k.Registry.AllKittiesCount()
	ids := make([]digest.Digest, 0, arguments.Count)

	position := arguments.Start
	for ; position < total && len(ids) < arguments.Count; position += 1 {
		id, found := k.Registry.KittyByIndex(position)
		if !found {
			k.Log.Errorf("Kitties.All: position: %d of: %d missing", position, total)
			return fault.IndexPositionMissing
		}
		ids = append(ids, id)
	}

	reply.Total = total
	reply.Next = position
	reply.Kitties = ids
	return nil
}

// Owned
// -----

// OwnedArguments - arguments for RPC
type OwnedArguments struct {
	Owner *account.Account `json:"owner"`
	Start uint64           `json:"start,string"`
	Count int              `json:"count"`
}

// OwnedReply - result of owned RPC
type OwnedReply struct {
	Total uint64             `json:"total,string"`
	Next  uint64             `json:"next,string"`
	Data  []ownership.Record `json:"data"`
}

// Owned - a page of an owner's kitties
func (k *Kitties) Owned(arguments *OwnedArguments, reply *OwnedReply) error {
	if nil == arguments {
		return fault.MissingParameters
	}
	if err := ratelimit.LimitN(k.Limiter, arguments.Count, MaximumCount); nil != err {
		return err
	}
	if err := k.checkNetwork(arguments.Owner); nil != err {
		return err
	}

	data, err := k.Registry.OwnedKitties(arguments.Owner, arguments.Start, arguments.Count)
	if nil != err {
		return err
	}

	reply.Total = k.Registry.OwnedKittyCount(arguments.Owner)
	reply.Next = arguments.Start
	if 0 != len(data) {
		reply.Next = data[len(data)-1].N + 1
	}
	reply.Data = data
	return nil
}

// Balance
// -------

// BalanceArguments - arguments for RPC
type BalanceArguments struct {
	Owner *account.Account `json:"owner"`
}

// BalanceReply - result of balance and fund RPCs
type BalanceReply struct {
	Balance uint64 `json:"balance,string"`
}

// Balance - spendable funds of an account
func (k *Kitties) Balance(arguments *BalanceArguments, reply *BalanceReply) error {
	if err := ratelimit.Limit(k.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.MissingParameters
	}
	if err := k.checkNetwork(arguments.Owner); nil != err {
		return err
	}

	reply.Balance = k.Funds.Balance(arguments.Owner)
	return nil
}

// Fund
// ----

// FundArguments - arguments for RPC
type FundArguments struct {
	Owner  *account.Account `json:"owner"`
	Amount uint64           `json:"amount,string"`
}

// Fund - credit test funds from the faucet
func (k *Kitties) Fund(arguments *FundArguments, reply *BalanceReply) error {
	if err := ratelimit.Limit(k.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.MissingParameters
	}
	if err := k.checkNetwork(arguments.Owner); nil != err {
		return err
	}

	k.Log.Infof("Kitties.Fund: %+v", arguments)

	balance, err := k.Funds.Fund(arguments.Owner, arguments.Amount)
	if nil != err {
		return err
	}
	reply.Balance = balance
	return nil
}
