// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/unitd/account"
	"github.com/bitmark-inc/unitd/rpc/admin"
)

// SupplyData - the parameters for an issue or retire
type SupplyData struct {
	Caller account.Identifier
	Owner  account.Identifier
	Amount uint64
}

// Issue - create new supply
func (client *Client) Issue(supplyConfig *SupplyData) (*admin.SupplyReply, error) {
	return client.supplyCall("Admin.Issue", supplyConfig)
}

// Retire - destroy supply
func (client *Client) Retire(supplyConfig *SupplyData) (*admin.SupplyReply, error) {
	return client.supplyCall("Admin.Retire", supplyConfig)
}

func (client *Client) supplyCall(method string, supplyConfig *SupplyData) (*admin.SupplyReply, error) {

	arguments := admin.SupplyArguments{
		Caller: supplyConfig.Caller,
		Owner:  supplyConfig.Owner,
		Amount: supplyConfig.Amount,
	}

	client.printJson("Supply Request", arguments)

	reply := &admin.SupplyReply{}
	err := client.client.Call(method, &arguments, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Supply Reply", reply)

	return reply, nil
}

// ExemptData - the parameters for an exemption change
type ExemptData struct {
	Caller account.Identifier
	Owner  account.Identifier
	Exempt bool
}

// SetExempt - change an owner's exemption flag
func (client *Client) SetExempt(exemptConfig *ExemptData) (*admin.ExemptReply, error) {

	arguments := admin.ExemptArguments{
		Caller: exemptConfig.Caller,
		Owner:  exemptConfig.Owner,
		Exempt: exemptConfig.Exempt,
	}

	client.printJson("Exempt Request", arguments)

	reply := &admin.ExemptReply{}
	err := client.client.Call("Admin.Exempt", &arguments, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Exempt Reply", reply)

	return reply, nil
}
