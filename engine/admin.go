// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package engine

import (
	"github.com/bitmark-inc/unitd/account"
	"github.com/bitmark-inc/unitd/eventbus"
	"github.com/bitmark-inc/unitd/fault"
)

// administrative operations, all gated

// Issue - create new supply credited to an owner
//
// a non-exempt recipient is minted one discrete token per whole
// unit boundary the new balance crosses
func (e *Engine) Issue(caller, to account.Identifier, amount uint64) error {
	if !e.isAdministrator(caller) {
		return fault.Unauthorized
	}
	return e.guarded(func(j *journal) error {
		if to.IsZero() {
			return fault.InvalidRecipient
		}

		before := e.ledger.Balance(to)
		e.ledger.Issue(to, amount)
		j.record(func() { _ = e.ledger.Retire(to, amount) })
		j.emit(eventbus.FractionalTransfer{From: account.Nil, To: to, Amount: amount})

		if !e.IsExempt(to) {
			unit := e.ledger.Unit()
			mints := (before+amount)/unit - before/unit
			for i := uint64(0); i < mints; i += 1 {
				if _, err := e.mint(j, to); nil != err {
					return err
				}
			}
		}
		return nil
	})
}

// Retire - destroy supply debited from an owner
//
// a non-exempt owner has one discrete token burned per whole unit
// boundary the balance drops through
func (e *Engine) Retire(caller, from account.Identifier, amount uint64) error {
	if !e.isAdministrator(caller) {
		return fault.Unauthorized
	}
	return e.guarded(func(j *journal) error {
		if from.IsZero() {
			return fault.InvalidSender
		}

		before := e.ledger.Balance(from)
		if err := e.ledger.Retire(from, amount); nil != err {
			return err
		}
		j.record(func() { e.ledger.Issue(from, amount) })
		j.emit(eventbus.FractionalTransfer{From: from, To: account.Nil, Amount: amount})

		if !e.IsExempt(from) {
			unit := e.ledger.Unit()
			burns := before/unit - (before-amount)/unit
			for i := uint64(0); i < burns; i += 1 {
				if _, err := e.burn(j, from); nil != err {
					return err
				}
			}
		}
		return nil
	})
}

// SetExempt - mark or unmark an owner as excluded from discrete
// count synchronisation
//
// flipping an owner that already holds balance does not adjust its
// discrete count; the owner simply stops (or starts) participating
// in synchronisation from the next transfer on
func (e *Engine) SetExempt(caller, owner account.Identifier, exempt bool) error {
	if !e.isAdministrator(caller) {
		return fault.Unauthorized
	}
	return e.guarded(func(j *journal) error {
		if owner.IsZero() {
			return fault.InvalidOwner
		}

		_, had := e.exempt[owner]
		if exempt {
			e.exempt[owner] = struct{}{}
		} else {
			delete(e.exempt, owner)
		}
		j.record(func() {
			if had {
				e.exempt[owner] = struct{}{}
			} else {
				delete(e.exempt, owner)
			}
		})
		return nil
	})
}
