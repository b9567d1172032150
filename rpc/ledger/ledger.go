// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/unitd/account"
	"github.com/bitmark-inc/unitd/engine"
	"github.com/bitmark-inc/unitd/registry"
	"github.com/bitmark-inc/unitd/rpc/ratelimit"
)

const (
	rateLimitLedger = 200
	rateBurstLedger = 100
)

// limit for a token list request
const maximumTokenList = 100

// Ledger - type for RPC calls
type Ledger struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Engine  *engine.Engine
}

func New(log *logger.L, e *engine.Engine) *Ledger {
	return &Ledger{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitLedger, rateBurstLedger),
		Engine:  e,
	}
}

// ---

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - ledger-wide totals
type InfoReply struct {
	Decimals    uint8  `json:"decimals"`
	Unit        uint64 `json:"unit,string"`
	TotalSupply uint64 `json:"totalSupply,string"`
	Minted      uint64 `json:"minted,string"`
	VaultSize   uint64 `json:"vaultSize,string"`
}

// Info - return ledger-wide totals
func (ledger *Ledger) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(ledger.Limiter); nil != err {
		return err
	}

	reply.Decimals = ledger.Engine.Decimals()
	reply.Unit = ledger.Engine.Unit()
	reply.TotalSupply = ledger.Engine.TotalSupply()
	reply.Minted = uint64(ledger.Engine.Minted())
	reply.VaultSize = ledger.Engine.VaultSize()

	return nil
}

// ---

// BalanceArguments - owner to query
type BalanceArguments struct {
	Owner account.Identifier `json:"owner"`
}

// BalanceReply - holdings of a single owner
type BalanceReply struct {
	Balance uint64 `json:"balance,string"`
	Count   uint64 `json:"count,string"`
	Exempt  bool   `json:"exempt"`
}

// Balance - return the fractional balance and token count of an owner
func (ledger *Ledger) Balance(arguments *BalanceArguments, reply *BalanceReply) error {

	if err := ratelimit.Limit(ledger.Limiter); nil != err {
		return err
	}

	reply.Balance = ledger.Engine.Balance(arguments.Owner)
	reply.Count = ledger.Engine.Count(arguments.Owner)
	reply.Exempt = ledger.Engine.IsExempt(arguments.Owner)

	return nil
}

// ---

// TokensArguments - a page of an owner's token list
type TokensArguments struct {
	Owner account.Identifier `json:"owner"`
	Start uint64             `json:"start,string"`
	Count int                `json:"count"`
}

// TokensReply - the requested page of token ids
type TokensReply struct {
	Tokens    []registry.TokenID `json:"tokens"`
	NextStart uint64             `json:"nextStart,string"`
}

// Tokens - list the token ids held by an owner, in holding order
func (ledger *Ledger) Tokens(arguments *TokensArguments, reply *TokensReply) error {

	if err := ratelimit.LimitN(ledger.Limiter, arguments.Count, maximumTokenList); nil != err {
		return err
	}

	count := ledger.Engine.Count(arguments.Owner)
	tokens := make([]registry.TokenID, 0, arguments.Count)
	index := arguments.Start
	for index < count && len(tokens) < arguments.Count {
		id, err := ledger.Engine.IDAt(arguments.Owner, index)
		if nil != err {
			return err
		}
		tokens = append(tokens, id)
		index += 1
	}
	reply.Tokens = tokens
	reply.NextStart = index

	return nil
}

// ---

// OwnerArguments - token id to query
type OwnerArguments struct {
	ID registry.TokenID `json:"id,string"`
}

// OwnerReply - current holder of a token and its metadata
type OwnerReply struct {
	Owner account.Identifier `json:"owner"`
	URI   string             `json:"uri"`
}

// Owner - return the holder and metadata of a live token id
func (ledger *Ledger) Owner(arguments *OwnerArguments, reply *OwnerReply) error {

	if err := ratelimit.Limit(ledger.Limiter); nil != err {
		return err
	}

	owner, err := ledger.Engine.OwnerOf(arguments.ID)
	if nil != err {
		return err
	}
	uri, err := ledger.Engine.TokenURI(arguments.ID)
	if nil != err {
		return err
	}
	reply.Owner = owner
	reply.URI = uri

	return nil
}
