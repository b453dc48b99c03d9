// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/kittyd/chain"
	"github.com/bitmark-inc/kittyd/command/kitty-cli/configuration"
)

type metadata struct {
	file    string
	config  *configuration.Configuration
	save    bool
	testnet bool
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp()
	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

// the command line application
func newApp() *cli.App {

	app := cli.NewApp()
	app.Name = "kitty-cli"
	app.Usage = "mint, trade and list kitties on a kittyd"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "network, n",
			Value: configuration.DefaultNetwork,
			Usage: " connect to kittyd `NETWORK` [kitties|testing|local]",
		},
		cli.StringFlag{
			Name:  "identity, i",
			Value: "",
			Usage: " identity `NAME` [default identity]",
		},
		cli.StringFlag{
			Name:  "password, p",
			Value: "",
			Usage: " identity `PASSWORD` [prompt on the terminal]",
		},
		cli.StringFlag{
			Name:  "connect, x",
			Value: "",
			Usage: " kittyd host/IP and port, `HOST:PORT` [configured connection]",
		},
		cli.StringFlag{
			Name:  "file, f",
			Value: "",
			Usage: " identities `FILE` [$XDG_CONFIG_HOME/kitty-cli/NETWORK-kitty-cli.json]",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate key pair, will not store in config file",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runGenerate,
		},
		{
			Name:      "add",
			Usage:     "add a new identity to config file, the first one added is the default",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: " identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "seed, s",
					Value: "",
					Usage: "+using existing `SEED`",
				},
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: "+receive only `ACCOUNT`",
				},
				cli.BoolFlag{
					Name:  "new, N",
					Usage: "+generate a new seed",
				},
			},
			Action: runAdd,
		},
		{
			Name:      "create",
			Usage:     "mint a new kitty owned by the identity",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runCreate,
		},
		{
			Name:      "set-price",
			Usage:     "list a kitty for sale, price zero withdraws it",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "kitty, k",
					Value: "",
					Usage: "*kitty id `HEX`",
				},
				cli.Uint64Flag{
					Name:  "price, p",
					Value: 0,
					Usage: " asking price `AMOUNT`",
				},
			},
			Action: runSetPrice,
		},
		{
			Name:      "transfer",
			Usage:     "give a kitty to another account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "kitty, k",
					Value: "",
					Usage: "*kitty id `HEX`",
				},
				cli.StringFlag{
					Name:  "receiver, r",
					Value: "",
					Usage: "*identity name or account to receive the kitty `ACCOUNT`",
				},
			},
			Action: runTransfer,
		},
		{
			Name:      "buy",
			Usage:     "buy a kitty that is for sale",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "kitty, k",
					Value: "",
					Usage: "*kitty id `HEX`",
				},
				cli.Uint64Flag{
					Name:  "max-price, m",
					Value: 0,
					Usage: "*highest acceptable price `AMOUNT`",
				},
			},
			Action: runBuy,
		},
		{
			Name:      "kitty",
			Usage:     "display a kitty and its owner",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "kitty, k",
					Value: "",
					Usage: "*kitty id `HEX`",
				},
			},
			Action: runKitty,
		},
		{
			Name:      "owned",
			Usage:     "list kitties of an owner",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " identity name or account `ACCOUNT` [current identity]",
				},
				cli.Uint64Flag{
					Name:  "start, s",
					Value: 0,
					Usage: " start position `NUMBER`",
				},
				cli.IntFlag{
					Name:  "count, c",
					Value: 20,
					Usage: " number of kitties to list `COUNT`",
				},
			},
			Action: runOwned,
		},
		{
			Name:      "all",
			Usage:     "list every kitty in minting order",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "start, s",
					Value: 0,
					Usage: " start position `NUMBER`",
				},
				cli.IntFlag{
					Name:  "count, c",
					Value: 20,
					Usage: " number of kitties to list `COUNT`",
				},
			},
			Action: runAll,
		},
		{
			Name:      "balance",
			Usage:     "display the funds of an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " identity name or account `ACCOUNT` [current identity]",
				},
			},
			Action: runBalance,
		},
		{
			Name:      "fund",
			Usage:     "request test funds from the faucet",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " identity name or account `ACCOUNT` [current identity]",
				},
				cli.Uint64Flag{
					Name:  "amount, a",
					Value: 0,
					Usage: "*amount to credit `AMOUNT`",
				},
			},
			Action: runFund,
		},
		{
			Name:      "info",
			Usage:     "display kittyd status",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runInfo,
		},
		{
			Name:      "version",
			Usage:     "display kitty-cli version",
			ArgsUsage: "",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		if "version" == command || "help" == command || "" == command {
			return nil
		}

		network := c.GlobalString("network")
		switch network {
		case chain.Kitties, "live":
			network = chain.Kitties
		case chain.Testing, "test":
			network = chain.Testing
		case chain.Local:
		default:
			return fmt.Errorf("network: %q can only be kitties/testing/local", network)
		}
		testnet := chain.IsTesting(network)

		file := c.GlobalString("file")
		if "" == file {
			p := os.Getenv("XDG_CONFIG_HOME")
			if "" == p {
				return fmt.Errorf("XDG_CONFIG_HOME environment is not set")
			}
			file = path.Join(p, app.Name, network+"-"+app.Name+".json")
		}

		if verbose {
			fmt.Fprintf(e, "file: %q\n", file)
		}

		m := &metadata{
			file:    file,
			testnet: testnet,
			verbose: verbose,
			e:       e,
			w:       w,
		}
		c.App.Metadata["config"] = m

		config, err := configuration.Load(file)
		switch {
		case nil == err:
			if config.TestNet != testnet {
				return fmt.Errorf("file: %q is not for network: %s", file, network)
			}
			m.config = config
		case os.IsNotExist(err) && ("add" == command || "generate" == command):
			m.config = configuration.New(c.GlobalString("connect"), testnet)
		default:
			return err
		}

		if connect := c.GlobalString("connect"); "" != connect {
			m.config.Connect = connect
		}

		return nil
	}

	// update the configuration if required
	app.After = func(c *cli.Context) error {
		e := c.App.ErrWriter
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		if m.save {
			if m.verbose {
				fmt.Fprintf(e, "updating config file: %s\n", m.file)
			}
			err := configuration.Save(m.file, m.config)
			if nil != err {
				return err
			}
		}
		return nil
	}

	return app
}
