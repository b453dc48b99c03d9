// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runSetPrice(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := kittyId(c)
	if nil != err {
		return err
	}
	price := c.Uint64("price")

	owner, err := signer(c, m)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "kitty: %s\n", id)
		fmt.Fprintf(m.e, "price: %d\n", price)
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.SetPrice(owner, id, price)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
