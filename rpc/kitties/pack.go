// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kitties

import (
	"encoding/binary"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/digest"
)

// request tags, a signature for one request can never verify another
//
// every request also carries the signer's sequence number so it can
// only be applied once
const (
	createTag   = "kitties.create"
	setPriceTag = "kitties.setPrice"
	transferTag = "kitties.transfer"
	buyTag      = "kitties.buy"
)

// PackCreate - bytes signed by the caller of Create
func PackCreate(owner *account.Account, sequence uint64) []byte {
	return pack(createTag, owner.Bytes(), uint64Bytes(sequence))
}

// PackSetPrice - bytes signed by the caller of SetPrice
func PackSetPrice(owner *account.Account, sequence uint64, id digest.Digest, price uint64) []byte {
	return pack(setPriceTag, owner.Bytes(), uint64Bytes(sequence), id[:], uint64Bytes(price))
}

// PackTransfer - bytes signed by the caller of Transfer
func PackTransfer(owner *account.Account, sequence uint64, to *account.Account, id digest.Digest) []byte {
	return pack(transferTag, owner.Bytes(), uint64Bytes(sequence), to.Bytes(), id[:])
}

// PackBuy - bytes signed by the caller of Buy
func PackBuy(buyer *account.Account, sequence uint64, id digest.Digest, maxPrice uint64) []byte {
	return pack(buyTag, buyer.Bytes(), uint64Bytes(sequence), id[:], uint64Bytes(maxPrice))
}

// tag followed by each length prefixed field
func pack(tag string, fields ...[]byte) []byte {
	buffer := append([]byte(tag), 0)
	for _, f := range fields {
		buffer = append(buffer, byte(len(f)))
		buffer = append(buffer, f...)
	}
	return buffer
}

func uint64Bytes(n uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, n)
	return b
}
