// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/command/kitty-cli/rpccalls"
	"github.com/bitmark-inc/kittyd/digest"
	"github.com/bitmark-inc/kittyd/keypair"
)

// the selected identity name
func identityName(c *cli.Context, m *metadata) (string, error) {
	name := c.GlobalString("identity")
	if "" == name {
		name = m.config.DefaultIdentity
	}
	if "" == name {
		return "", ErrMissingIdentity
	}
	return name, nil
}

// key pair of the selected identity
func signer(c *cli.Context, m *metadata) (*keypair.KeyPair, error) {
	name, err := identityName(c, m)
	if nil != err {
		return nil, err
	}
	if m.verbose {
		fmt.Fprintf(m.e, "identity: %s\n", name)
	}
	if _, err := m.config.Identity(name); nil != err {
		return nil, err
	}
	p, err := password(c, m, false)
	if nil != err {
		return nil, err
	}
	return m.config.KeyPair(name, p)
}

// an identity name or a Base58 account
//
// blank selects the current identity
func resolveAccount(c *cli.Context, m *metadata, nameOrAccount string) (*account.Account, error) {
	if "" == nameOrAccount {
		name, err := identityName(c, m)
		if nil != err {
			return nil, err
		}
		return m.config.Account(name)
	}
	if a, err := m.config.Account(nameOrAccount); nil == err {
		return a, nil
	}
	return account.FromBase58(nameOrAccount)
}

func kittyId(c *cli.Context) (digest.Digest, error) {
	var id digest.Digest
	text := c.String("kitty")
	if "" == text {
		return id, ErrMissingKittyId
	}
	err := id.UnmarshalText([]byte(text))
	return id, err
}

func connect(m *metadata) (*rpccalls.Client, error) {
	if "" == m.config.Connect {
		return nil, ErrMissingConnect
	}
	return rpccalls.NewClient(m.config.Connect, m.verbose, m.e)
}
