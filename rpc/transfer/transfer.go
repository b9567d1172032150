// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transfer

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/unitd/account"
	"github.com/bitmark-inc/unitd/engine"
	"github.com/bitmark-inc/unitd/registry"
	"github.com/bitmark-inc/unitd/rpc/ratelimit"
)

const (
	rateLimitTransfer = 200
	rateBurstTransfer = 100
)

// Transfer - type for RPC calls
type Transfer struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Engine  *engine.Engine
}

func New(log *logger.L, e *engine.Engine) *Transfer {
	return &Transfer{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitTransfer, rateBurstTransfer),
		Engine:  e,
	}
}

// ---

// QuantityArguments - a fractional transfer
type QuantityArguments struct {
	From   account.Identifier `json:"from"`
	To     account.Identifier `json:"to"`
	Amount uint64             `json:"amount,string"`
}

// BalancesReply - sender and recipient balances after a transfer
type BalancesReply struct {
	SenderBalance    uint64 `json:"senderBalance,string"`
	RecipientBalance uint64 `json:"recipientBalance,string"`
}

// Quantity - move a fractional amount, keeping token counts in step
func (transfer *Transfer) Quantity(arguments *QuantityArguments, reply *BalancesReply) error {

	if err := ratelimit.Limit(transfer.Limiter); nil != err {
		return err
	}

	transfer.Log.Infof("transfer quantity: %s → %s: %d", arguments.From, arguments.To, arguments.Amount)

	err := transfer.Engine.TransferQuantity(arguments.From, arguments.To, arguments.Amount)
	if nil != err {
		return err
	}
	reply.SenderBalance = transfer.Engine.Balance(arguments.From)
	reply.RecipientBalance = transfer.Engine.Balance(arguments.To)

	return nil
}

// QuantityMintBurn - fractional transfer that burns on the sender side
// and mints on the recipient side instead of moving ids directly
func (transfer *Transfer) QuantityMintBurn(arguments *QuantityArguments, reply *BalancesReply) error {

	if err := ratelimit.Limit(transfer.Limiter); nil != err {
		return err
	}

	transfer.Log.Infof("transfer quantity mint/burn: %s → %s: %d", arguments.From, arguments.To, arguments.Amount)

	err := transfer.Engine.TransferQuantityMintBurn(arguments.From, arguments.To, arguments.Amount)
	if nil != err {
		return err
	}
	reply.SenderBalance = transfer.Engine.Balance(arguments.From)
	reply.RecipientBalance = transfer.Engine.Balance(arguments.To)

	return nil
}

// ---

// DiscreteArguments - a single token transfer
type DiscreteArguments struct {
	Caller account.Identifier `json:"caller"`
	From   account.Identifier `json:"from"`
	To     account.Identifier `json:"to"`
	ID     registry.TokenID   `json:"id,string"`
	Data   []byte             `json:"data,omitempty"`
}

// DiscreteReply - recipient state after a token transfer
type DiscreteReply struct {
	Owner            account.Identifier `json:"owner"`
	RecipientBalance uint64             `json:"recipientBalance,string"`
	RecipientCount   uint64             `json:"recipientCount,string"`
}

// Discrete - move one specific token id
func (transfer *Transfer) Discrete(arguments *DiscreteArguments, reply *DiscreteReply) error {

	if err := ratelimit.Limit(transfer.Limiter); nil != err {
		return err
	}

	transfer.Log.Infof("transfer discrete: %s → %s: id %d", arguments.From, arguments.To, arguments.ID)

	err := transfer.Engine.TransferDiscrete(arguments.Caller, arguments.From, arguments.To, arguments.ID)
	if nil != err {
		return err
	}
	fillDiscreteReply(transfer.Engine, arguments, reply)

	return nil
}

// DiscreteChecked - move one specific token id and require the
// recipient to acknowledge it
func (transfer *Transfer) DiscreteChecked(arguments *DiscreteArguments, reply *DiscreteReply) error {

	if err := ratelimit.Limit(transfer.Limiter); nil != err {
		return err
	}

	transfer.Log.Infof("transfer discrete checked: %s → %s: id %d", arguments.From, arguments.To, arguments.ID)

	err := transfer.Engine.TransferDiscreteChecked(arguments.Caller, arguments.From, arguments.To, arguments.ID, arguments.Data)
	if nil != err {
		return err
	}
	fillDiscreteReply(transfer.Engine, arguments, reply)

	return nil
}

func fillDiscreteReply(e *engine.Engine, arguments *DiscreteArguments, reply *DiscreteReply) {
	reply.Owner = arguments.To
	reply.RecipientBalance = e.Balance(arguments.To)
	reply.RecipientCount = e.Count(arguments.To)
}

// ---

// FromArguments - an allowance or token transfer on behalf of an owner
type FromArguments struct {
	Caller     account.Identifier `json:"caller"`
	From       account.Identifier `json:"from"`
	To         account.Identifier `json:"to"`
	AmountOrID uint64             `json:"amountOrId,string"`
}

// From - move a token if the value names a minted id, otherwise a
// fractional amount debited from the caller's allowance
func (transfer *Transfer) From(arguments *FromArguments, reply *BalancesReply) error {

	if err := ratelimit.Limit(transfer.Limiter); nil != err {
		return err
	}

	transfer.Log.Infof("transfer from: %s by %s → %s: %d", arguments.From, arguments.Caller, arguments.To, arguments.AmountOrID)

	err := transfer.Engine.TransferFrom(arguments.Caller, arguments.From, arguments.To, arguments.AmountOrID)
	if nil != err {
		return err
	}
	reply.SenderBalance = transfer.Engine.Balance(arguments.From)
	reply.RecipientBalance = transfer.Engine.Balance(arguments.To)

	return nil
}
