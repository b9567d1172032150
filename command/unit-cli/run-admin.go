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

func runIssue(c *cli.Context) error {
	return runSupply(c, false)
}

func runRetire(c *cli.Context) error {
	return runSupply(c, true)
}

func runSupply(c *cli.Context, retire bool) error {

	caller, err := checkIdentifier("caller", c.String("caller"))
	if nil != err {
		return err
	}
	owner, err := checkIdentifier("owner", c.String("owner"))
	if nil != err {
		return err
	}

	amount := c.Uint64("amount")
	if 0 == amount {
		return fmt.Errorf("missing amount")
	}

	client, m, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	supplyData := &rpccalls.SupplyData{
		Caller: caller,
		Owner:  owner,
		Amount: amount,
	}

	if retire {
		reply, err := client.Retire(supplyData)
		if nil != err {
			return err
		}
		return printJson(m.w, reply)
	}

	reply, err := client.Issue(supplyData)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runExempt(c *cli.Context) error {

	caller, err := checkIdentifier("caller", c.String("caller"))
	if nil != err {
		return err
	}
	owner, err := checkIdentifier("owner", c.String("owner"))
	if nil != err {
		return err
	}

	client, m, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.SetExempt(&rpccalls.ExemptData{
		Caller: caller,
		Owner:  owner,
		Exempt: !c.Bool("clear"),
	})
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
