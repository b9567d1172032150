// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runInfo(c *cli.Context) error {

	client, m, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetNodeInfo()
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runLedger(c *cli.Context) error {

	client, m, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetLedgerInfo()
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runBalance(c *cli.Context) error {

	owner, err := checkIdentifier("owner", c.String("owner"))
	if nil != err {
		return err
	}

	client, m, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	if m.verbose {
		fmt.Fprintf(m.e, "owner: %s\n", owner)
	}

	response, err := client.GetBalance(owner)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runOwned(c *cli.Context) error {

	owner, err := checkIdentifier("owner", c.String("owner"))
	if nil != err {
		return err
	}

	count := c.Int("count")
	if count <= 0 {
		return fmt.Errorf("invalid count: %d", count)
	}

	client, m, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetTokens(owner, c.Uint64("start"), count)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runOwner(c *cli.Context) error {

	id, err := checkTokenID(c.Uint64("id"))
	if nil != err {
		return err
	}

	client, m, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetOwner(id)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runAllowance(c *cli.Context) error {

	owner, err := checkIdentifier("owner", c.String("owner"))
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

	response, err := client.GetAllowance(owner, spender)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runApproved(c *cli.Context) error {

	id, err := checkTokenID(c.Uint64("id"))
	if nil != err {
		return err
	}

	client, m, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetApproved(id)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
