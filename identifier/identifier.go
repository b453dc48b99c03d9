// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package identifier - derive fresh kitty ids
//
// id = SHA3-256(random(SHA3-256(LE64(nonce) ++ context)))
//
// the nonce is owned by the caller and must only be advanced after
// the id has actually been used, so a failed mint retries the same id
package identifier

import (
	"crypto/rand"
	"encoding/binary"

	"github.com/bitmark-inc/kittyd/digest"
)

// Randomness - source of unpredictable data bound to a subject
type Randomness interface {
	Random(subject []byte) digest.Digest
}

// NextId - derive the id for a nonce and context bytes
//
// identical inputs from a deterministic source give identical ids
func NextId(r Randomness, nonce uint64, context []byte) digest.Digest {
	buffer := make([]byte, 8, 8+len(context))
	binary.LittleEndian.PutUint64(buffer, nonce)
	buffer = append(buffer, context...)

	subject := digest.New(buffer)
	random := r.Random(subject[:])
	return digest.New(random[:])
}

// seeded - deterministic randomness from a fixed secret
type seeded struct {
	seed []byte
}

// NewSeeded - randomness derived as SHA3-256(seed ++ subject)
func NewSeeded(seed []byte) Randomness {
	s := make([]byte, len(seed))
	copy(s, seed)
	return &seeded{
		seed: s,
	}
}

// NewRandomSeed - a seeded source with a fresh secret
func NewRandomSeed() (Randomness, error) {
	seed := make([]byte, digest.Length)
	_, err := rand.Read(seed)
	if nil != err {
		return nil, err
	}
	return NewSeeded(seed), nil
}

func (s *seeded) Random(subject []byte) digest.Digest {
	buffer := make([]byte, 0, len(s.seed)+len(subject))
	buffer = append(buffer, s.seed...)
	buffer = append(buffer, subject...)
	return digest.New(buffer)
}
