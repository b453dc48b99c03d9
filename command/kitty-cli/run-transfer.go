// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runTransfer(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := kittyId(c)
	if nil != err {
		return err
	}

	receiver := c.String("receiver")
	if "" == receiver {
		return ErrMissingReceiver
	}
	to, err := resolveAccount(c, m, receiver)
	if nil != err {
		return err
	}

	owner, err := signer(c, m)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "kitty: %s\n", id)
		fmt.Fprintf(m.e, "receiver: %s\n", to)
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Transfer(owner, to, id)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
