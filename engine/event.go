// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package engine

import (
	"fmt"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/digest"
)

// Kind - what happened to a kitty
type Kind string

// event kinds
const (
	Created     Kind = "created"
	PriceSet    Kind = "priceSet"
	Transferred Kind = "transferred"
	Bought      Kind = "bought"
)

// Event - the outcome of one successful operation
//
//   Created      Caller minted KittyId
//   PriceSet     Caller listed KittyId at Price
//   Transferred  Caller gave KittyId to Other
//   Bought       Caller bought KittyId from Other for Price
type Event struct {
	Kind    Kind             `json:"kind"`
	Caller  *account.Account `json:"caller"`
	Other   *account.Account `json:"other,omitempty"`
	KittyId digest.Digest    `json:"kittyId"`
	Price   uint64           `json:"price"`
}

func (ev Event) String() string {
	switch ev.Kind {
	case Created:
		return fmt.Sprintf("created: %s  by: %s", ev.KittyId, ev.Caller)
	case PriceSet:
		return fmt.Sprintf("price set: %s  to: %d  by: %s", ev.KittyId, ev.Price, ev.Caller)
	case Transferred:
		return fmt.Sprintf("transferred: %s  from: %s  to: %s", ev.KittyId, ev.Caller, ev.Other)
	case Bought:
		return fmt.Sprintf("bought: %s  by: %s  from: %s  for: %d", ev.KittyId, ev.Caller, ev.Other, ev.Price)
	default:
		return fmt.Sprintf("%s: %s", ev.Kind, ev.KittyId)
	}
}

// Emitter - receives each event after its operation has committed
type Emitter interface {
	Emit(Event)
}

// EmitterFunc - adapt a function to an Emitter
type EmitterFunc func(Event)

// Emit - call the function
func (f EmitterFunc) Emit(ev Event) {
	f(ev)
}
