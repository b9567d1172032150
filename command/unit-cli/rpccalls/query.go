// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/unitd/account"
	"github.com/bitmark-inc/unitd/registry"
	"github.com/bitmark-inc/unitd/rpc/approval"
	"github.com/bitmark-inc/unitd/rpc/ledger"
	"github.com/bitmark-inc/unitd/rpc/node"
)

// GetNodeInfo - basic node state
func (client *Client) GetNodeInfo() (*node.InfoReply, error) {

	reply := &node.InfoReply{}
	err := client.client.Call("Node.Info", &node.InfoArguments{}, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Node Info Reply", reply)

	return reply, nil
}

// GetLedgerInfo - ledger-wide totals
func (client *Client) GetLedgerInfo() (*ledger.InfoReply, error) {

	reply := &ledger.InfoReply{}
	err := client.client.Call("Ledger.Info", &ledger.InfoArguments{}, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Ledger Info Reply", reply)

	return reply, nil
}

// GetBalance - holdings of one owner
func (client *Client) GetBalance(owner account.Identifier) (*ledger.BalanceReply, error) {

	arguments := ledger.BalanceArguments{
		Owner: owner,
	}

	client.printJson("Balance Request", arguments)

	reply := &ledger.BalanceReply{}
	err := client.client.Call("Ledger.Balance", &arguments, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Balance Reply", reply)

	return reply, nil
}

// GetTokens - a page of an owner's token ids
func (client *Client) GetTokens(owner account.Identifier, start uint64, count int) (*ledger.TokensReply, error) {

	arguments := ledger.TokensArguments{
		Owner: owner,
		Start: start,
		Count: count,
	}

	client.printJson("Tokens Request", arguments)

	reply := &ledger.TokensReply{}
	err := client.client.Call("Ledger.Tokens", &arguments, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Tokens Reply", reply)

	return reply, nil
}

// GetOwner - holder of a token id
func (client *Client) GetOwner(id registry.TokenID) (*ledger.OwnerReply, error) {

	arguments := ledger.OwnerArguments{
		ID: id,
	}

	client.printJson("Owner Request", arguments)

	reply := &ledger.OwnerReply{}
	err := client.client.Call("Ledger.Owner", &arguments, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Owner Reply", reply)

	return reply, nil
}

// GetAllowance - allowance granted by an owner to a spender
func (client *Client) GetAllowance(owner, spender account.Identifier) (*approval.GrantReply, error) {

	arguments := approval.AllowanceArguments{
		Owner:   owner,
		Spender: spender,
	}

	client.printJson("Allowance Request", arguments)

	reply := &approval.GrantReply{}
	err := client.client.Call("Approval.Allowance", &arguments, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Allowance Reply", reply)

	return reply, nil
}

// GetApproved - approved spender for a token id
func (client *Client) GetApproved(id registry.TokenID) (*approval.ApprovedReply, error) {

	arguments := approval.ApprovedArguments{
		ID: id,
	}

	client.printJson("Approved Request", arguments)

	reply := &approval.ApprovedReply{}
	err := client.client.Call("Approval.Approved", &arguments, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Approved Reply", reply)

	return reply, nil
}
