// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/unitd/account"
	"github.com/bitmark-inc/unitd/command/unit-cli/rpccalls"
	"github.com/bitmark-inc/unitd/registry"
)

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}

// decode a required base58 identifier flag
func checkIdentifier(name, value string) (account.Identifier, error) {
	if "" == value {
		return account.Nil, fmt.Errorf("missing %s identifier", name)
	}
	identifier, err := account.IdentifierFromBase58(value)
	if nil != err {
		return account.Nil, fmt.Errorf("%s identifier: %q error: %s", name, value, err)
	}
	return identifier, nil
}

// a token id flag must be non-zero
func checkTokenID(value uint64) (registry.TokenID, error) {
	if 0 == value {
		return 0, fmt.Errorf("missing token id")
	}
	return registry.TokenID(value), nil
}

// open the RPC connection described by the global flags
func getClient(c *cli.Context) (*rpccalls.Client, *metadata, error) {
	m := c.App.Metadata["config"].(*metadata)
	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return nil, nil, err
	}
	return client, m, nil
}
