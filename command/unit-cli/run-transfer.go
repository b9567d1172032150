// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/unitd/command/unit-cli/rpccalls"
)

func runTransfer(c *cli.Context) error {

	from, err := checkIdentifier("from", c.String("from"))
	if nil != err {
		return err
	}
	to, err := checkIdentifier("to", c.String("to"))
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

	if m.verbose {
		fmt.Fprintf(m.e, "from: %s\n", from)
		fmt.Fprintf(m.e, "to: %s\n", to)
		fmt.Fprintf(m.e, "amount: %d\n", amount)
	}

	response, err := client.TransferQuantity(&rpccalls.QuantityData{
		From:     from,
		To:       to,
		Amount:   amount,
		MintBurn: c.Bool("mint-burn"),
	})
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runTransferToken(c *cli.Context) error {

	caller, err := checkIdentifier("caller", c.String("caller"))
	if nil != err {
		return err
	}
	from, err := checkIdentifier("from", c.String("from"))
	if nil != err {
		return err
	}
	to, err := checkIdentifier("to", c.String("to"))
	if nil != err {
		return err
	}
	id, err := checkTokenID(c.Uint64("id"))
	if nil != err {
		return err
	}

	var data []byte
	if "" != c.String("data") {
		data, err = hex.DecodeString(c.String("data"))
		if nil != err {
			return fmt.Errorf("data: %q error: %s", c.String("data"), err)
		}
	}

	client, m, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.TransferDiscrete(&rpccalls.DiscreteData{
		Caller:  caller,
		From:    from,
		To:      to,
		ID:      id,
		Data:    data,
		Checked: c.Bool("checked"),
	})
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runTransferFrom(c *cli.Context) error {

	caller, err := checkIdentifier("caller", c.String("caller"))
	if nil != err {
		return err
	}
	from, err := checkIdentifier("from", c.String("from"))
	if nil != err {
		return err
	}
	to, err := checkIdentifier("to", c.String("to"))
	if nil != err {
		return err
	}

	value := c.Uint64("value")
	if 0 == value {
		return fmt.Errorf("missing value")
	}

	client, m, err := getClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.TransferFrom(&rpccalls.FromData{
		Caller:     caller,
		From:       from,
		To:         to,
		AmountOrID: value,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
