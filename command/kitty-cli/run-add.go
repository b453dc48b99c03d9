// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/kittyd/keypair"
)

func runAdd(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name := c.GlobalString("identity")
	if "" == name {
		return ErrMissingIdentity
	}

	description := c.String("description")
	seed := c.String("seed")
	acc := c.String("account")
	generate := c.Bool("new")

	if m.verbose {
		fmt.Fprintf(m.e, "identity: %s\n", name)
		fmt.Fprintf(m.e, "description: %s\n", description)
		fmt.Fprintf(m.e, "account: %s\n", acc)
		fmt.Fprintf(m.e, "new: %t\n", generate)
	}

	var err error
	switch {
	case generate && "" == seed && "" == acc:
		seed, err = keypair.NewSeed(m.testnet)
		if nil != err {
			return err
		}
		err = addIdentity(c, m, name, description, seed)

	case !generate && "" != seed && "" == acc:
		err = addIdentity(c, m, name, description, seed)

	case !generate && "" == seed && "" != acc:
		err = m.config.AddReceiveOnlyIdentity(name, description, acc)

	default:
		return ErrIncompatibleOptions
	}
	if nil != err {
		return err
	}

	id, _ := m.config.Identity(name)
	printJson(m.w, struct {
		Name    string `json:"name"`
		Account string `json:"account"`
	}{
		Name:    name,
		Account: id.Account,
	})

	// require configuration update
	m.save = true
	return nil
}

// store a signing identity under a password
func addIdentity(c *cli.Context, m *metadata, name string, description string, seed string) error {
	p, err := password(c, m, true)
	if nil != err {
		return err
	}
	return m.config.AddIdentity(name, description, seed, p)
}
