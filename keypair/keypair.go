// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keypair

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/fault"
)

// seed layout: header ++ network ++ entropy ++ checksum
var seedHeader = []byte{0x5a, 0xfe, 0x01}

const (
	seedEntropyLength  = 32
	seedChecksumLength = 4
	seedLength         = 3 + 1 + seedEntropyLength + seedChecksumLength
)

// KeyPair - structure to hold the account and private key and the seed
// that was used to generate them
type KeyPair struct {
	Seed       string
	Account    *account.Account
	PrivateKey ed25519.PrivateKey
}

// RawKeyPair - text version of seed and keys
type RawKeyPair struct {
	Seed       string `json:"seed"`
	Account    string `json:"account"`
	PublicKey  string `json:"public_key"`
	PrivateKey string `json:"private_key"`
}

// NewSeed - create a new seed from secure random data
func NewSeed(test bool) (string, error) {
	entropy := make([]byte, seedEntropyLength)
	_, err := rand.Read(entropy)
	if nil != err {
		return "", err
	}
	return makeSeed(entropy, test), nil
}

func makeSeed(entropy []byte, test bool) string {
	net := byte(0x00)
	if test {
		net = 0x01
	}
	packedSeed := append([]byte{}, seedHeader...)
	packedSeed = append(packedSeed, net)
	packedSeed = append(packedSeed, entropy...)
	checksum := sha3.Sum256(packedSeed)
	packedSeed = append(packedSeed, checksum[:seedChecksumLength]...)

	return base58.Encode(packedSeed)
}

// New - create a fresh seed and derive its key pair
func New(test bool) (*KeyPair, error) {
	seed, err := NewSeed(test)
	if nil != err {
		return nil, err
	}
	return FromSeed(seed)
}

// FromSeed - derive the key pair of an existing seed
func FromSeed(seed string) (*KeyPair, error) {
	packed, err := base58.Decode(seed)
	if nil != err || seedLength != len(packed) {
		return nil, fault.InvalidSeedLength
	}

	checksumStart := seedLength - seedChecksumLength
	checksum := sha3.Sum256(packed[:checksumStart])
	if !bytes.Equal(checksum[:seedChecksumLength], packed[checksumStart:]) {
		return nil, fault.ChecksumMismatch
	}

	if !bytes.Equal(seedHeader, packed[:len(seedHeader)]) {
		return nil, fault.InvalidSeedHeader
	}

	net := packed[len(seedHeader)]
	if net > 0x01 {
		return nil, fault.InvalidSeedHeader
	}

	entropy := packed[len(seedHeader)+1 : checksumStart]
	privateKey := ed25519.NewKeyFromSeed(entropy)

	publicKey := make([]byte, ed25519.PublicKeySize)
	copy(publicKey, privateKey[ed25519.SeedSize:])

	return &KeyPair{
		Seed: seed,
		Account: &account.Account{
			Test:      0x01 == net,
			PublicKey: publicKey,
		},
		PrivateKey: privateKey,
	}, nil
}

// Sign - sign a message with the private key
func (k *KeyPair) Sign(message []byte) account.Signature {
	return ed25519.Sign(k.PrivateKey, message)
}

// Raw - text form for display
func (k *KeyPair) Raw() *RawKeyPair {
	return &RawKeyPair{
		Seed:       k.Seed,
		Account:    k.Account.String(),
		PublicKey:  hex.EncodeToString(k.Account.PublicKey),
		PrivateKey: hex.EncodeToString(k.PrivateKey),
	}
}
