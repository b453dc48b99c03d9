// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/keypair"
)

// DefaultNetwork - select the default network
const DefaultNetwork = "testing"

// common errors - keep in alphabetic order
const (
	ErrCryptoFailed              = fault.InvalidError("encrypted seed is corrupt")
	ErrIdentityNameAlreadyExists = fault.ExistsError("identity name already exists")
	ErrIdentityNameNotFound      = fault.NotFoundError("identity name not found")
	ErrInvalidSalt               = fault.InvalidError("invalid salt")
	ErrMissingPassword           = fault.InvalidError("missing password")
	ErrReceiveOnlyIdentity       = fault.InvalidError("identity has no seed")
	ErrWrongPassword             = fault.InvalidError("wrong password")
)

// Configuration - configuration file data format
type Configuration struct {
	DefaultIdentity string              `json:"default_identity"`
	TestNet         bool                `json:"testnet"`
	Connect         string              `json:"connect"`
	Identities      map[string]Identity `json:"identities"`
}

// Identity - an account with an optional password protected seed
//
// identities without a seed can only receive kitties
type Identity struct {
	Description string `json:"description"`
	Account     string `json:"account"`
	Salt        string `json:"salt,omitempty"`
	Data        string `json:"data,omitempty"`
}

// New - empty configuration
func New(connect string, testnet bool) *Configuration {
	return &Configuration{
		TestNet:    testnet,
		Connect:    connect,
		Identities: make(map[string]Identity),
	}
}

// Load - read the configuration
func Load(filename string) (*Configuration, error) {

	filename, err := filepath.Abs(filepath.Clean(filename))
	if nil != err {
		return nil, err
	}

	f, err := os.Open(filename)
	if nil != err {
		return nil, err
	}
	defer f.Close()

	options := &Configuration{}
	err = json.NewDecoder(f).Decode(options)
	if nil != err {
		return nil, err
	}
	if nil == options.Identities {
		options.Identities = make(map[string]Identity)
	}
	return options, nil
}

// Save - replace the configuration file, readable only by its owner
func Save(filename string, configuration *Configuration) error {

	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0700); nil != err {
		return err
	}

	b, err := json.MarshalIndent(configuration, "", "  ")
	if nil != err {
		return err
	}

	temp, err := ioutil.TempFile(dir, ".kitty-cli-")
	if nil != err {
		return err
	}
	_, err = temp.Write(append(b, '\n'))
	if closeErr := temp.Close(); nil == err {
		err = closeErr
	}
	if nil == err {
		err = os.Chmod(temp.Name(), 0600)
	}
	if nil == err {
		err = os.Rename(temp.Name(), filename)
	}
	if nil != err {
		_ = os.Remove(temp.Name())
	}
	return err
}

// Identity - find identity for a given name
func (config *Configuration) Identity(name string) (*Identity, error) {
	id, ok := config.Identities[name]
	if !ok {
		return nil, ErrIdentityNameNotFound
	}

	return &id, nil
}

// Account - find identity for a given name and convert to an account
func (config *Configuration) Account(name string) (*account.Account, error) {
	id, err := config.Identity(name)
	if nil != err {
		return nil, err
	}

	return account.FromBase58(id.Account)
}

// KeyPair - unlock the signing keys of a named identity
func (config *Configuration) KeyPair(name string, password string) (*keypair.KeyPair, error) {
	id, err := config.Identity(name)
	if nil != err {
		return nil, err
	}
	if "" == id.Data {
		return nil, ErrReceiveOnlyIdentity
	}

	seed, err := decryptSeed(id.Salt, id.Data, password)
	if nil != err {
		return nil, err
	}
	kp, err := keypair.FromSeed(seed)
	if nil != err {
		return nil, ErrCryptoFailed
	}
	if kp.Account.String() != id.Account {
		return nil, ErrCryptoFailed
	}
	return kp, nil
}

// AddIdentity - store an identity that can sign, its seed encrypted with password
func (config *Configuration) AddIdentity(name string, description string, seed string, password string) error {

	if _, ok := config.Identities[name]; ok {
		return ErrIdentityNameAlreadyExists
	}

	kp, err := keypair.FromSeed(seed)
	if nil != err {
		return err
	}
	if kp.Account.IsTesting() != config.TestNet {
		return fault.WrongNetworkForPublicKey
	}

	salt, data, err := encryptSeed(seed, password)
	if nil != err {
		return err
	}

	config.Identities[name] = Identity{
		Description: description,
		Account:     kp.Account.String(),
		Salt:        salt,
		Data:        data,
	}
	if "" == config.DefaultIdentity {
		config.DefaultIdentity = name
	}

	return nil
}

// AddReceiveOnlyIdentity - store public-only identity
func (config *Configuration) AddReceiveOnlyIdentity(name string, description string, acc string) error {

	if _, ok := config.Identities[name]; ok {
		return ErrIdentityNameAlreadyExists
	}

	a, err := account.FromBase58(acc)
	if nil != err {
		return err
	}
	if a.IsTesting() != config.TestNet {
		return fault.WrongNetworkForPublicKey
	}

	config.Identities[name] = Identity{
		Description: description,
		Account:     acc,
	}

	return nil
}
