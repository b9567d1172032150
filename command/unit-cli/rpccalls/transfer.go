// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/unitd/account"
	"github.com/bitmark-inc/unitd/registry"
	"github.com/bitmark-inc/unitd/rpc/transfer"
)

// QuantityData - the parameters for a fractional transfer
type QuantityData struct {
	From     account.Identifier
	To       account.Identifier
	Amount   uint64
	MintBurn bool
}

// TransferQuantity - move a fractional amount
func (client *Client) TransferQuantity(quantityConfig *QuantityData) (*transfer.BalancesReply, error) {

	arguments := transfer.QuantityArguments{
		From:   quantityConfig.From,
		To:     quantityConfig.To,
		Amount: quantityConfig.Amount,
	}

	client.printJson("Quantity Request", arguments)

	method := "Transfer.Quantity"
	if quantityConfig.MintBurn {
		method = "Transfer.QuantityMintBurn"
	}

	reply := &transfer.BalancesReply{}
	err := client.client.Call(method, &arguments, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Quantity Reply", reply)

	return reply, nil
}

// DiscreteData - the parameters for a single token transfer
type DiscreteData struct {
	Caller  account.Identifier
	From    account.Identifier
	To      account.Identifier
	ID      registry.TokenID
	Data    []byte
	Checked bool
}

// TransferDiscrete - move one token id
func (client *Client) TransferDiscrete(discreteConfig *DiscreteData) (*transfer.DiscreteReply, error) {

	arguments := transfer.DiscreteArguments{
		Caller: discreteConfig.Caller,
		From:   discreteConfig.From,
		To:     discreteConfig.To,
		ID:     discreteConfig.ID,
		Data:   discreteConfig.Data,
	}

	client.printJson("Discrete Request", arguments)

	method := "Transfer.Discrete"
	if discreteConfig.Checked {
		method = "Transfer.DiscreteChecked"
	}

	reply := &transfer.DiscreteReply{}
	err := client.client.Call(method, &arguments, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Discrete Reply", reply)

	return reply, nil
}

// FromData - the parameters for a delegated transfer
type FromData struct {
	Caller     account.Identifier
	From       account.Identifier
	To         account.Identifier
	AmountOrID uint64
}

// TransferFrom - delegated transfer of a token id or an allowance amount
func (client *Client) TransferFrom(fromConfig *FromData) (*transfer.BalancesReply, error) {

	arguments := transfer.FromArguments{
		Caller:     fromConfig.Caller,
		From:       fromConfig.From,
		To:         fromConfig.To,
		AmountOrID: fromConfig.AmountOrID,
	}

	client.printJson("From Request", arguments)

	reply := &transfer.BalancesReply{}
	err := client.client.Call("Transfer.From", &arguments, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("From Reply", reply)

	return reply, nil
}
