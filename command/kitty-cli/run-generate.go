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

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	kp, err := keypair.New(m.testnet)
	if nil != err {
		return err
	}

	raw := kp.Raw()
	if m.verbose {
		fmt.Fprintf(m.e, "account: %s\n", raw.Account)
	}

	return printJson(m.w, raw)
}
