// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/unitd/account"
	"github.com/bitmark-inc/unitd/rpc/approval"
)

// GrantData - the parameters for an approval
type GrantData struct {
	Caller     account.Identifier
	Spender    account.Identifier
	AmountOrID uint64
}

// Grant - approve a spender for a token id or set its allowance
func (client *Client) Grant(grantConfig *GrantData) (*approval.GrantReply, error) {

	arguments := approval.GrantArguments{
		Caller:     grantConfig.Caller,
		Spender:    grantConfig.Spender,
		AmountOrID: grantConfig.AmountOrID,
	}

	client.printJson("Grant Request", arguments)

	reply := &approval.GrantReply{}
	err := client.client.Call("Approval.Grant", &arguments, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Grant Reply", reply)

	return reply, nil
}

// OperatorData - the parameters for an operator change
type OperatorData struct {
	Caller   account.Identifier
	Operator account.Identifier
	Approved bool
}

// SetOperator - grant or revoke blanket authority
func (client *Client) SetOperator(operatorConfig *OperatorData) (*approval.OperatorReply, error) {

	arguments := approval.OperatorArguments{
		Caller:   operatorConfig.Caller,
		Operator: operatorConfig.Operator,
		Approved: operatorConfig.Approved,
	}

	client.printJson("Operator Request", arguments)

	reply := &approval.OperatorReply{}
	err := client.client.Call("Approval.Operator", &arguments, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Operator Reply", reply)

	return reply, nil
}
