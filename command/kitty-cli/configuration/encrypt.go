// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"crypto/rand"
	"encoding/hex"
	"io"

	"github.com/bitmark-inc/go-argon2"
	"golang.org/x/crypto/nacl/secretbox"
)

const (
	saltSize  = 16
	nonceSize = 24
)

// a new random salt as hex text
func makeSalt() (string, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); nil != err {
		return "", err
	}
	return hex.EncodeToString(salt), nil
}

// derive the secretbox key from a password
func generateKey(password string, salt string) (*[32]byte, error) {

	saltBytes, err := hex.DecodeString(salt)
	if nil != err || saltSize != len(saltBytes) {
		return nil, ErrInvalidSalt
	}

	ctx := &argon2.Context{
		Iterations:  5,
		Memory:      1 << 16,
		Parallelism: 4,
		HashLen:     32,
		Mode:        argon2.ModeArgon2i,
		Version:     argon2.Version13,
	}

	hash, err := argon2.Hash(ctx, []byte(password), saltBytes)
	if nil != err {
		return nil, err
	}

	var secretKey [32]byte
	copy(secretKey[:], hash)

	return &secretKey, nil
}

// encrypt a seed with a password, returns salt and hex ciphertext
func encryptSeed(seed string, password string) (string, string, error) {
	if "" == password {
		return "", "", ErrMissingPassword
	}

	salt, err := makeSalt()
	if nil != err {
		return "", "", err
	}
	key, err := generateKey(password, salt)
	if nil != err {
		return "", "", err
	}

	// a fresh random nonce per message, stored in front of the ciphertext
	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); nil != err {
		return "", "", ErrCryptoFailed
	}

	ciphertext := secretbox.Seal(nonce[:], []byte(seed), &nonce, key)
	return salt, hex.EncodeToString(ciphertext), nil
}

// recover a seed, any failure to open the box is a wrong password
func decryptSeed(salt string, data string, password string) (string, error) {
	if "" == password {
		return "", ErrMissingPassword
	}

	key, err := generateKey(password, salt)
	if nil != err {
		return "", err
	}

	encrypted, err := hex.DecodeString(data)
	if nil != err || len(encrypted) <= nonceSize {
		return "", ErrCryptoFailed
	}

	var nonce [nonceSize]byte
	copy(nonce[:], encrypted[:nonceSize])

	decrypted, ok := secretbox.Open(nil, encrypted[nonceSize:], &nonce, key)
	if !ok {
		return "", ErrWrongPassword
	}
	return string(decrypted), nil
}
