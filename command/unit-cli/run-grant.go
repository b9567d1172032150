// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/unitd/command/unit-cli/rpccalls"
)

func runGrant(c *cli.Context) error {

	caller, err := checkIdentifier("caller", c.String("caller"))
	if nil != err {
		return err
	}
	spender, err := checkIdentifier("spender", c.String("spender"))
	if nil != err {
		return err
	}

	client, m, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	if m.verbose {
		fmt.Fprintf(m.e, "caller: %s\n", caller)
		fmt.Fprintf(m.e, "spender: %s\n", spender)
		fmt.Fprintf(m.e, "value: %d\n", c.Uint64("value"))
	}

	response, err := client.Grant(&rpccalls.GrantData{
		Caller:     caller,
		Spender:    spender,
		AmountOrID: c.Uint64("value"),
	})
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runOperator(c *cli.Context) error {

	caller, err := checkIdentifier("caller", c.String("caller"))
	if nil != err {
		return err
	}
	operator, err := checkIdentifier("operator", c.String("operator"))
	if nil != err {
		return err
	}

	client, m, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.SetOperator(&rpccalls.OperatorData{
		Caller:   caller,
		Operator: operator,
		Approved: !c.Bool("revoke"),
	})
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
