// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kittyd/command/kitty-cli/configuration"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/keypair"
)

const password = "kitty-cli password"

func TestIdentities(t *testing.T) {
	c := configuration.New("127.0.0.1:2130", true)

	kp, err := keypair.New(true)
	if nil != err {
		t.Fatalf("keypair error: %s", err)
	}

	err = c.AddIdentity("alice", "first", kp.Seed, password)
	assert.Nil(t, err, "add alice")
	assert.Equal(t, "alice", c.DefaultIdentity, "default identity")

	err = c.AddIdentity("alice", "again", kp.Seed, password)
	assert.Equal(t, configuration.ErrIdentityNameAlreadyExists, err, "duplicate name")

	receiver, err := keypair.New(true)
	if nil != err {
		t.Fatalf("keypair error: %s", err)
	}
	err = c.AddReceiveOnlyIdentity("bob", "receive only", receiver.Account.String())
	assert.Nil(t, err, "add bob")
	assert.Equal(t, "alice", c.DefaultIdentity, "default identity changed")

	signer, err := c.KeyPair("alice", password)
	assert.Nil(t, err, "alice key pair")
	assert.Equal(t, kp.Account, signer.Account, "wrong alice account")

	_, err = c.KeyPair("bob", password)
	assert.Equal(t, configuration.ErrReceiveOnlyIdentity, err, "bob cannot sign")

	a, err := c.Account("bob")
	assert.Nil(t, err, "bob account")
	assert.Equal(t, receiver.Account, a, "wrong bob account")

	_, err = c.Account("carol")
	assert.Equal(t, configuration.ErrIdentityNameNotFound, err, "missing identity")
}

func TestWrongNetwork(t *testing.T) {
	c := configuration.New("127.0.0.1:2130", false)

	kp, err := keypair.New(true)
	if nil != err {
		t.Fatalf("keypair error: %s", err)
	}

	assert.Equal(t, fault.WrongNetworkForPublicKey, c.AddIdentity("alice", "", kp.Seed, password), "test seed on live network")
	assert.Equal(t, fault.WrongNetworkForPublicKey, c.AddReceiveOnlyIdentity("bob", "", kp.Account.String()), "test account on live network")
}

func TestSaveAndLoad(t *testing.T) {
	dir, err := ioutil.TempDir("", "kitty-cli")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	c := configuration.New("127.0.0.1:2130", true)
	kp, err := keypair.New(true)
	if nil != err {
		t.Fatalf("keypair error: %s", err)
	}
	_ = c.AddIdentity("alice", "first", kp.Seed, password)

	name := filepath.Join(dir, "sub", "testing-kitty-cli.json")
	err = configuration.Save(name, c)
	if !assert.Nil(t, err, "save") {
		return
	}

	info, err := os.Stat(name)
	if assert.Nil(t, err, "stat") {
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm(), "wrong permissions")
	}

	loaded, err := configuration.Load(name)
	assert.Nil(t, err, "load")
	assert.Equal(t, c, loaded, "configuration changed")
}

func TestSeedEncryption(t *testing.T) {
	c := configuration.New("127.0.0.1:2130", true)

	kp, err := keypair.New(true)
	if nil != err {
		t.Fatalf("keypair error: %s", err)
	}

	err = c.AddIdentity("alice", "", kp.Seed, "")
	assert.Equal(t, configuration.ErrMissingPassword, err, "no password")

	err = c.AddIdentity("alice", "", kp.Seed, password)
	assert.Nil(t, err, "add alice")

	id, err := c.Identity("alice")
	if !assert.Nil(t, err, "identity") {
		return
	}
	assert.NotContains(t, id.Data, kp.Seed, "seed stored in clear")
	assert.NotEqual(t, "", id.Salt, "no salt")

	_, err = c.KeyPair("alice", "not the password")
	assert.Equal(t, configuration.ErrWrongPassword, err, "wrong password")

	_, err = c.KeyPair("alice", "")
	assert.Equal(t, configuration.ErrMissingPassword, err, "missing password")

	signer, err := c.KeyPair("alice", password)
	assert.Nil(t, err, "unlock")
	assert.Equal(t, kp.Seed, signer.Seed, "wrong seed")

	// same seed and password encrypt differently each time
	err = c.AddIdentity("again", "", kp.Seed, password)
	assert.Nil(t, err, "add again")
	again, _ := c.Identity("again")
	assert.NotEqual(t, id.Data, again.Data, "ciphertext repeated")
	assert.NotEqual(t, id.Salt, again.Salt, "salt repeated")
}
