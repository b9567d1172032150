// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package approval

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/unitd/account"
	"github.com/bitmark-inc/unitd/engine"
	"github.com/bitmark-inc/unitd/registry"
	"github.com/bitmark-inc/unitd/rpc/ratelimit"
)

const (
	rateLimitApproval = 200
	rateBurstApproval = 100
)

// Approval - type for RPC calls
type Approval struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Engine  *engine.Engine
}

func New(log *logger.L, e *engine.Engine) *Approval {
	return &Approval{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitApproval, rateBurstApproval),
		Engine:  e,
	}
}

// ---

// GrantArguments - set an allowance or a single-token approval
type GrantArguments struct {
	Caller     account.Identifier `json:"caller"`
	Spender    account.Identifier `json:"spender"`
	AmountOrID uint64             `json:"amountOrId,string"`
}

// GrantReply - resulting allowance for the spender
type GrantReply struct {
	Allowance uint64 `json:"allowance,string"`
	Unlimited bool   `json:"unlimited"`
}

// Grant - approve a spender for a minted token id, or set its
// fractional allowance when the value is not a live id
func (approval *Approval) Grant(arguments *GrantArguments, reply *GrantReply) error {

	if err := ratelimit.Limit(approval.Limiter); nil != err {
		return err
	}

	approval.Log.Infof("approve: %s grants %s: %d", arguments.Caller, arguments.Spender, arguments.AmountOrID)

	err := approval.Engine.Approve(arguments.Caller, arguments.Spender, arguments.AmountOrID)
	if nil != err {
		return err
	}
	fillAllowance(approval.Engine, arguments.Caller, arguments.Spender, reply)

	return nil
}

// ---

// OperatorArguments - grant or revoke an operator
type OperatorArguments struct {
	Caller   account.Identifier `json:"caller"`
	Operator account.Identifier `json:"operator"`
	Approved bool               `json:"approved"`
}

// OperatorReply - operator status after the change
type OperatorReply struct {
	Approved bool `json:"approved"`
}

// Operator - grant or revoke blanket authority over the caller's tokens
func (approval *Approval) Operator(arguments *OperatorArguments, reply *OperatorReply) error {

	if err := ratelimit.Limit(approval.Limiter); nil != err {
		return err
	}

	approval.Log.Infof("operator: %s sets %s: %t", arguments.Caller, arguments.Operator, arguments.Approved)

	err := approval.Engine.SetApprovalForAll(arguments.Caller, arguments.Operator, arguments.Approved)
	if nil != err {
		return err
	}
	reply.Approved = approval.Engine.IsOperator(arguments.Caller, arguments.Operator)

	return nil
}

// ---

// AllowanceArguments - owner and spender pair to query
type AllowanceArguments struct {
	Owner   account.Identifier `json:"owner"`
	Spender account.Identifier `json:"spender"`
}

// Allowance - return the fractional allowance of a spender
func (approval *Approval) Allowance(arguments *AllowanceArguments, reply *GrantReply) error {

	if err := ratelimit.Limit(approval.Limiter); nil != err {
		return err
	}

	fillAllowance(approval.Engine, arguments.Owner, arguments.Spender, reply)

	return nil
}

func fillAllowance(e *engine.Engine, owner, spender account.Identifier, reply *GrantReply) {
	allowance := e.Allowance(owner, spender)
	reply.Allowance = allowance
	reply.Unlimited = engine.UnlimitedAllowance == allowance
}

// ---

// ApprovedArguments - token id to query
type ApprovedArguments struct {
	ID registry.TokenID `json:"id,string"`
}

// ApprovedReply - the single approved spender, null if none
type ApprovedReply struct {
	Spender account.Identifier `json:"spender"`
}

// Approved - return the approved spender for a live token id
func (approval *Approval) Approved(arguments *ApprovedArguments, reply *ApprovedReply) error {

	if err := ratelimit.Limit(approval.Limiter); nil != err {
		return err
	}

	spender, err := approval.Engine.Approved(arguments.ID)
	if nil != err {
		return err
	}
	reply.Spender = spender

	return nil
}

// ---

// IsOperatorArguments - owner and operator pair to query
type IsOperatorArguments struct {
	Owner    account.Identifier `json:"owner"`
	Operator account.Identifier `json:"operator"`
}

// IsOperator - return whether the operator may act for the owner
func (approval *Approval) IsOperator(arguments *IsOperatorArguments, reply *OperatorReply) error {

	if err := ratelimit.Limit(approval.Limiter); nil != err {
		return err
	}

	reply.Approved = approval.Engine.IsOperator(arguments.Owner, arguments.Operator)

	return nil
}
