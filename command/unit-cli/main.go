// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	connect string
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "unit-cli"
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
			Name:  "connect, c",
			Value: "127.0.0.1:2130",
			Usage: " unitd host/IP and port, `HOST:PORT`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "info",
			Usage:  "display node state",
			Action: runInfo,
		},
		{
			Name:   "ledger",
			Usage:  "display ledger-wide totals",
			Action: runLedger,
		},
		{
			Name:      "balance",
			Usage:     "display the balance and token count of an owner",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*owner `IDENTIFIER`",
				},
			},
			Action: runBalance,
		},
		{
			Name:      "owned",
			Usage:     "list the token ids held by an owner",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*owner `IDENTIFIER`",
				},
				cli.Uint64Flag{
					Name:  "start, s",
					Value: 0,
					Usage: " index to start, `NUMBER`",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 20,
					Usage: " number of ids, `COUNT`",
				},
			},
			Action: runOwned,
		},
		{
			Name:      "owner",
			Usage:     "display the holder of a token id",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "id, i",
					Value: 0,
					Usage: "*token `ID`",
				},
			},
			Action: runOwner,
		},
		{
			Name:      "transfer",
			Usage:     "move a fractional amount between owners",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "from, f",
					Value: "",
					Usage: "*sender `IDENTIFIER`",
				},
				cli.StringFlag{
					Name:  "to, t",
					Value: "",
					Usage: "*recipient `IDENTIFIER`",
				},
				cli.Uint64Flag{
					Name:  "amount, a",
					Value: 0,
					Usage: "*fractional `AMOUNT`",
				},
				cli.BoolFlag{
					Name:  "mint-burn, m",
					Usage: " burn sender ids and mint fresh ones instead of moving",
				},
			},
			Action: runTransfer,
		},
		{
			Name:      "transfer-token",
			Usage:     "move one specific token id",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "caller, c",
					Value: "",
					Usage: "*acting `IDENTIFIER`",
				},
				cli.StringFlag{
					Name:  "from, f",
					Value: "",
					Usage: "*sender `IDENTIFIER`",
				},
				cli.StringFlag{
					Name:  "to, t",
					Value: "",
					Usage: "*recipient `IDENTIFIER`",
				},
				cli.Uint64Flag{
					Name:  "id, i",
					Value: 0,
					Usage: "*token `ID`",
				},
				cli.StringFlag{
					Name:  "data, d",
					Value: "",
					Usage: " payload handed to a checked recipient `HEX`",
				},
				cli.BoolFlag{
					Name:  "checked, k",
					Usage: " require the recipient to acknowledge",
				},
			},
			Action: runTransferToken,
		},
		{
			Name:      "transfer-from",
			Usage:     "delegated transfer of a token id or an allowance amount",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "caller, c",
					Value: "",
					Usage: "*acting `IDENTIFIER`",
				},
				cli.StringFlag{
					Name:  "from, f",
					Value: "",
					Usage: "*sender `IDENTIFIER`",
				},
				cli.StringFlag{
					Name:  "to, t",
					Value: "",
					Usage: "*recipient `IDENTIFIER`",
				},
				cli.Uint64Flag{
					Name:  "value, x",
					Value: 0,
					Usage: "*token id or fractional amount, `VALUE`",
				},
			},
			Action: runTransferFrom,
		},
		{
			Name:      "grant",
			Usage:     "approve a spender for a token id or set its allowance",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "caller, c",
					Value: "",
					Usage: "*granting `IDENTIFIER`",
				},
				cli.StringFlag{
					Name:  "spender, s",
					Value: "",
					Usage: "*spender `IDENTIFIER`",
				},
				cli.Uint64Flag{
					Name:  "value, x",
					Value: 0,
					Usage: "*token id or fractional amount, `VALUE`",
				},
			},
			Action: runGrant,
		},
		{
			Name:      "operator",
			Usage:     "grant or revoke blanket authority over the caller's tokens",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "caller, c",
					Value: "",
					Usage: "*granting `IDENTIFIER`",
				},
				cli.StringFlag{
					Name:  "operator, o",
					Value: "",
					Usage: "*operator `IDENTIFIER`",
				},
				cli.BoolFlag{
					Name:  "revoke, r",
					Usage: " revoke instead of grant",
				},
			},
			Action: runOperator,
		},
		{
			Name:      "allowance",
			Usage:     "display the allowance granted to a spender",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*owner `IDENTIFIER`",
				},
				cli.StringFlag{
					Name:  "spender, s",
					Value: "",
					Usage: "*spender `IDENTIFIER`",
				},
			},
			Action: runAllowance,
		},
		{
			Name:      "approved",
			Usage:     "display the approved spender for a token id",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "id, i",
					Value: 0,
					Usage: "*token `ID`",
				},
			},
			Action: runApproved,
		},
		{
			Name:      "issue",
			Usage:     "create new supply credited to an owner",
			ArgsUsage: "\n   (* = required)",
			Flags:     supplyFlags,
			Action:    runIssue,
		},
		{
			Name:      "retire",
			Usage:     "destroy supply debited from an owner",
			ArgsUsage: "\n   (* = required)",
			Flags:     supplyFlags,
			Action:    runRetire,
		},
		{
			Name:      "exempt",
			Usage:     "change an owner's exemption flag",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "caller, c",
					Value: "",
					Usage: "*administrator `IDENTIFIER`",
				},
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*owner `IDENTIFIER`",
				},
				cli.BoolFlag{
					Name:  "clear, x",
					Usage: " clear the flag instead of setting it",
				},
			},
			Action: runExempt,
		},
	}

	app.Before = func(c *cli.Context) error {
		m := &metadata{
			connect: c.GlobalString("connect"),
			verbose: c.GlobalBool("verbose"),
			e:       app.ErrWriter,
			w:       app.Writer,
		}
		app.Metadata = map[string]interface{}{
			"config": m,
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(os.Stderr, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

var supplyFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "caller, c",
		Value: "",
		Usage: "*administrator `IDENTIFIER`",
	},
	cli.StringFlag{
		Name:  "owner, o",
		Value: "",
		Usage: "*owner `IDENTIFIER`",
	},
	cli.Uint64Flag{
		Name:  "amount, a",
		Value: 0,
		Usage: "*fractional `AMOUNT`",
	},
}
