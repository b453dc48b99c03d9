// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"
	"golang.org/x/crypto/ssh/terminal"
)

const (
	minimumPasswordLength = 8
)

// the identity password from --password, or read from the terminal
//
// confirm asks twice, for setting a new password
func password(c *cli.Context, m *metadata, confirm bool) (string, error) {
	if p := c.GlobalString("password"); "" != p {
		return p, nil
	}

	fd := int(os.Stdin.Fd())
	if !terminal.IsTerminal(fd) {
		return "", ErrMissingPassword
	}

	p, err := readPassword(m, fd, "identity password: ")
	if nil != err {
		return "", err
	}
	if !confirm {
		return p, nil
	}

	if len(p) < minimumPasswordLength {
		return "", ErrPasswordLength
	}
	again, err := readPassword(m, fd, "verify password: ")
	if nil != err {
		return "", err
	}
	if p != again {
		return "", ErrPasswordMismatch
	}
	return p, nil
}

func readPassword(m *metadata, fd int, prompt string) (string, error) {
	fmt.Fprint(m.e, prompt)
	b, err := terminal.ReadPassword(fd)
	fmt.Fprintln(m.e)
	if nil != err {
		return "", err
	}
	return string(b), nil
}
