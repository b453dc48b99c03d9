// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kitty

import (
	"encoding/binary"

	"github.com/bitmark-inc/kittyd/digest"
	"github.com/bitmark-inc/kittyd/fault"
)

// NotForSale - a price of zero means the kitty cannot be bought
const NotForSale = 0

// packed record size: id ++ dna ++ price ++ generation
const packedLength = digest.Length + digest.Length + 8 + 8

// Kitty - a unique collectable
type Kitty struct {
	Id    digest.Digest `json:"id"`
	Dna   digest.Digest `json:"dna"`
	Price uint64        `json:"price"`
	Gen   uint64        `json:"gen"`
}

// New - a freshly minted kitty, its dna is its id
func New(id digest.Digest) *Kitty {
	return &Kitty{
		Id:    id,
		Dna:   id,
		Price: NotForSale,
		Gen:   0,
	}
}

// IsForSale - true when a buyer may purchase it
func (k *Kitty) IsForSale() bool {
	return NotForSale != k.Price
}

// Pack - fixed length binary form
func (k *Kitty) Pack() []byte {
	buffer := make([]byte, packedLength)
	n := copy(buffer, k.Id[:])
	n += copy(buffer[n:], k.Dna[:])
	binary.BigEndian.PutUint64(buffer[n:], k.Price)
	binary.BigEndian.PutUint64(buffer[n+8:], k.Gen)
	return buffer
}

// Unpack - decode a packed record
func Unpack(buffer []byte) (*Kitty, error) {
	if packedLength != len(buffer) {
		return nil, fault.NotKittyPack
	}

	k := &Kitty{}
	n := copy(k.Id[:], buffer)
	n += copy(k.Dna[:], buffer[n:])
	k.Price = binary.BigEndian.Uint64(buffer[n:])
	k.Gen = binary.BigEndian.Uint64(buffer[n+8:])
	return k, nil
}
