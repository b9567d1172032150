// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package admin

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/unitd/account"
	"github.com/bitmark-inc/unitd/engine"
	"github.com/bitmark-inc/unitd/rpc/ratelimit"
)

const (
	rateLimitAdmin = 100
	rateBurstAdmin = 50
)

// Admin - type for RPC calls
type Admin struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Engine  *engine.Engine
}

func New(log *logger.L, e *engine.Engine) *Admin {
	return &Admin{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitAdmin, rateBurstAdmin),
		Engine:  e,
	}
}

// ---

// SupplyArguments - issue or retire an amount for an owner
type SupplyArguments struct {
	Caller account.Identifier `json:"caller"`
	Owner  account.Identifier `json:"owner"`
	Amount uint64             `json:"amount,string"`
}

// SupplyReply - supply totals after the change
type SupplyReply struct {
	TotalSupply uint64 `json:"totalSupply,string"`
	Balance     uint64 `json:"balance,string"`
	Count       uint64 `json:"count,string"`
}

// Issue - create new supply credited to an owner
func (admin *Admin) Issue(arguments *SupplyArguments, reply *SupplyReply) error {

	if err := ratelimit.Limit(admin.Limiter); nil != err {
		return err
	}

	admin.Log.Infof("issue: %s → %s: %d", arguments.Caller, arguments.Owner, arguments.Amount)

	err := admin.Engine.Issue(arguments.Caller, arguments.Owner, arguments.Amount)
	if nil != err {
		return err
	}
	fillSupplyReply(admin.Engine, arguments.Owner, reply)

	return nil
}

// Retire - destroy supply debited from an owner
func (admin *Admin) Retire(arguments *SupplyArguments, reply *SupplyReply) error {

	if err := ratelimit.Limit(admin.Limiter); nil != err {
		return err
	}

	admin.Log.Infof("retire: %s ← %s: %d", arguments.Caller, arguments.Owner, arguments.Amount)

	err := admin.Engine.Retire(arguments.Caller, arguments.Owner, arguments.Amount)
	if nil != err {
		return err
	}
	fillSupplyReply(admin.Engine, arguments.Owner, reply)

	return nil
}

func fillSupplyReply(e *engine.Engine, owner account.Identifier, reply *SupplyReply) {
	reply.TotalSupply = e.TotalSupply()
	reply.Balance = e.Balance(owner)
	reply.Count = e.Count(owner)
}

// ---

// ExemptArguments - change an owner's exemption flag
type ExemptArguments struct {
	Caller account.Identifier `json:"caller"`
	Owner  account.Identifier `json:"owner"`
	Exempt bool               `json:"exempt"`
}

// ExemptReply - owner state after the change
type ExemptReply struct {
	Exempt bool   `json:"exempt"`
	Count  uint64 `json:"count,string"`
}

// Exempt - mark an owner as excluded from discrete count
// synchronisation from the next transfer on
func (admin *Admin) Exempt(arguments *ExemptArguments, reply *ExemptReply) error {

	if err := ratelimit.Limit(admin.Limiter); nil != err {
		return err
	}

	admin.Log.Infof("exempt: %s sets %s: %t", arguments.Caller, arguments.Owner, arguments.Exempt)

	err := admin.Engine.SetExempt(arguments.Caller, arguments.Owner, arguments.Exempt)
	if nil != err {
		return err
	}
	reply.Exempt = admin.Engine.IsExempt(arguments.Owner)
	reply.Count = admin.Engine.Count(arguments.Owner)

	return nil
}
