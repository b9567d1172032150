// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package engine

import (
	"github.com/bitmark-inc/unitd/account"
	"github.com/bitmark-inc/unitd/eventbus"
	"github.com/bitmark-inc/unitd/fault"
	"github.com/bitmark-inc/unitd/registry"
)

// mint/burn controller
//
// only the orchestrator calls these, and only for non-exempt
// accounts whose balance crosses a unit boundary through a pure
// fractional adjustment

// create the next id and assign it
func (e *Engine) mint(j *journal, to account.Identifier) (registry.TokenID, error) {
	if to.IsZero() {
		return 0, fault.InvalidRecipient
	}

	id := e.minted + 1

	// unreachable given monotonic assignment, but the invariant is
	// cheap to verify before registering
	if _, err := e.registry.OwnerOf(id); fault.NotFound != err {
		return 0, fault.AlreadyExists
	}

	e.minted = id
	if err := e.registry.Add(to, id); nil != err {
		return 0, err
	}
	j.record(func() {
		_ = e.registry.Remove(to, id)
		e.minted = id - 1
	})
	j.emit(eventbus.DiscreteTransfer{From: account.Nil, To: to, ID: id})
	return id, nil
}

// destroy the most recently acquired id in an owner's sequence
//
// the id is gone for good: the counter never decreases, so a
// burned id is never reassigned
func (e *Engine) burn(j *journal, owner account.Identifier) (registry.TokenID, error) {
	if owner.IsZero() {
		return 0, fault.InvalidSender
	}

	id, err := e.registry.Last(owner)
	if nil != err {
		return 0, err
	}

	spender := e.registry.Approval(id)
	if err := e.registry.Remove(owner, id); nil != err {
		return 0, err
	}
	j.record(func() {
		_ = e.registry.Add(owner, id)
		if !spender.IsZero() {
			_ = e.registry.SetApproval(id, spender)
		}
	})
	j.emit(eventbus.DiscreteTransfer{From: owner, To: account.Nil, ID: id})
	return id, nil
}

// vault interactions
// ------------------

// park an owner's id in the vault: ownership of record passes to
// the ledger and the id's approval is marked as held by the ledger
func (e *Engine) vaultDeposit(j *journal, from account.Identifier, id registry.TokenID) error {
	if err := e.move(j, from, account.Ledger, id); nil != err {
		return err
	}
	_ = e.registry.SetApproval(id, account.Ledger)
	e.vault.Deposit(id)
	j.record(func() { _, _ = e.vault.DropNewest() })
	j.emit(eventbus.DiscreteTransfer{From: from, To: account.Ledger, ID: id})
	return nil
}

// release the oldest vaulted id to a recipient
func (e *Engine) vaultWithdraw(j *journal, to account.Identifier) (registry.TokenID, error) {
	id, err := e.vault.WithdrawOldest()
	if nil != err {
		return 0, err
	}
	j.record(func() { e.vault.PutBack(id) })

	if err := e.move(j, account.Ledger, to, id); nil != err {
		return 0, err
	}
	j.emit(eventbus.DiscreteTransfer{From: account.Ledger, To: to, ID: id})
	return id, nil
}
