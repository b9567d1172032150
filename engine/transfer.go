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

// TransferQuantity - move a fractional amount, recycling discrete
// tokens through the vault
//
// whole units of the amount move as direct id reassignments from
// the sender's sequence, most recently acquired first; a sub-unit
// remainder that makes the sender dip below a whole-unit threshold
// parks one of the sender's ids in the vault, and a remainder that
// lifts the receiver over a threshold is covered from the vault,
// oldest id first, minting only when the vault is empty
func (e *Engine) TransferQuantity(from, to account.Identifier, amount uint64) error {
	return e.guarded(func(j *journal) error {
		return e.transferQuantity(j, from, to, amount)
	})
}

func (e *Engine) transferQuantity(j *journal, from, to account.Identifier, amount uint64) error {
	if from.IsZero() {
		return fault.InvalidSender
	}
	if to.IsZero() {
		return fault.InvalidRecipient
	}

	beforeSender := e.ledger.Balance(from)
	beforeReceiver := e.ledger.Balance(to)

	if err := e.debit(j, from, amount); nil != err {
		return err
	}
	e.credit(j, to, amount)
	j.emit(eventbus.FractionalTransfer{From: from, To: to, Amount: amount})

	// a self-transfer leaves the balance unchanged: no id may move
	if from == to {
		return nil
	}

	// transfers touching an exempt account change balances only
	if e.IsExempt(from) || e.IsExempt(to) {
		return nil
	}

	unit := e.ledger.Unit()
	wholeUnits := amount / unit
	leftover := amount % unit

	for i := uint64(0); i < wholeUnits; i += 1 {
		id, err := e.registry.Last(from)
		if nil != err {
			return err
		}
		if err := e.move(j, from, to, id); nil != err {
			return err
		}
		j.emit(eventbus.DiscreteTransfer{From: from, To: to, ID: id})
	}

	if 0 == leftover {
		return nil
	}

	// the fractional dip costs the sender a whole-unit backing:
	// park one id instead of destroying it
	if e.registry.Count(from) > 0 &&
		beforeSender/unit > (beforeSender-leftover)/unit {
		id, err := e.registry.Last(from)
		if nil != err {
			return err
		}
		if err := e.vaultDeposit(j, from, id); nil != err {
			return err
		}
	}

	// the fractional gain lifts the receiver over a whole-unit
	// threshold: cover it from recycled inventory
	if (beforeReceiver+leftover)/unit > beforeReceiver/unit {
		_, err := e.vaultWithdraw(j, to)
		if fault.EmptyVault == err {
			// mint so the receiver's count stays synchronised
			_, err = e.mint(j, to)
		}
		if nil != err {
			return err
		}
	}

	return nil
}

// TransferQuantityMintBurn - move a fractional amount without the
// vault, destroying and recreating discrete tokens instead
//
// burns one id from the sender per whole-unit boundary its balance
// drops through and mints one to the receiver per boundary gained;
// materially more expensive than TransferQuantity and kept as a
// separate operation for callers that must not touch the vault
func (e *Engine) TransferQuantityMintBurn(from, to account.Identifier, amount uint64) error {
	return e.guarded(func(j *journal) error {
		if from.IsZero() {
			return fault.InvalidSender
		}
		if to.IsZero() {
			return fault.InvalidRecipient
		}

		beforeSender := e.ledger.Balance(from)
		beforeReceiver := e.ledger.Balance(to)

		if err := e.debit(j, from, amount); nil != err {
			return err
		}
		e.credit(j, to, amount)
		j.emit(eventbus.FractionalTransfer{From: from, To: to, Amount: amount})

		// a self-transfer leaves the balance unchanged: no burn or mint
		if from == to {
			return nil
		}

		unit := e.ledger.Unit()

		if !e.IsExempt(from) {
			burns := beforeSender/unit - (beforeSender-amount)/unit
			for i := uint64(0); i < burns; i += 1 {
				if _, err := e.burn(j, from); nil != err {
					return err
				}
			}
		}

		if !e.IsExempt(to) {
			mints := (beforeReceiver+amount)/unit - beforeReceiver/unit
			for i := uint64(0); i < mints; i += 1 {
				if _, err := e.mint(j, to); nil != err {
					return err
				}
			}
		}

		return nil
	})
}

// TransferDiscrete - move a single named id together with exactly
// one unit of fractional balance
//
// the caller must be the id's owner, an approved operator for the
// owner, or the id's single approved spender
func (e *Engine) TransferDiscrete(caller, from, to account.Identifier, id registry.TokenID) error {
	return e.guarded(func(j *journal) error {
		return e.transferDiscrete(j, caller, from, to, id)
	})
}

func (e *Engine) transferDiscrete(j *journal, caller, from, to account.Identifier, id registry.TokenID) error {
	if to.IsZero() {
		return fault.InvalidRecipient
	}

	owner, err := e.registry.OwnerOf(id)
	if nil != err {
		return err
	}
	if owner != from {
		return fault.InvalidSender
	}

	if caller != from && !e.IsOperator(from, caller) && e.registry.Approval(id) != caller {
		return fault.Unauthorized
	}

	unit := e.ledger.Unit()
	if err := e.debit(j, from, unit); nil != err {
		return err
	}
	e.credit(j, to, unit)

	if err := e.move(j, from, to, id); nil != err {
		return err
	}

	j.emit(eventbus.DiscreteTransfer{From: from, To: to, ID: id})
	j.emit(eventbus.FractionalTransfer{From: from, To: to, Amount: unit})
	return nil
}

// TransferDiscreteChecked - TransferDiscrete followed by the
// receiver acknowledgment handshake
//
// the acknowledger is invoked only after the transfer has fully
// committed and the guard is released, so a reentrant call from
// within the callback observes the updated state; a missing or
// wrong acknowledgment reverses the transfer and the whole
// operation fails with UnsafeRecipient
func (e *Engine) TransferDiscreteChecked(caller, from, to account.Identifier, id registry.TokenID, data []byte) error {
	err := e.TransferDiscrete(caller, from, to, id)
	if nil != err {
		return err
	}
	if nil == e.ack {
		return nil
	}

	ackValue, err := e.ack.TransferReceived(caller, from, to, id, data)
	if nil == err && AckValue == ackValue {
		return nil
	}

	// recipient did not acknowledge: compensate with the reverse
	// transfer; if the recipient already moved the id on, the
	// reversal cannot be applied and the id stays where it is
	reverseError := e.guarded(func(j *journal) error {
		unit := e.ledger.Unit()
		if err := e.debit(j, to, unit); nil != err {
			return err
		}
		e.credit(j, from, unit)
		if err := e.move(j, to, from, id); nil != err {
			return err
		}
		j.emit(eventbus.DiscreteTransfer{From: to, To: from, ID: id})
		j.emit(eventbus.FractionalTransfer{From: to, To: from, Amount: unit})
		return nil
	})
	if nil != reverseError {
		e.log.Criticalf("unacknowledged transfer of %s to %s cannot be reversed: %s", id, to, reverseError)
	}
	return fault.UnsafeRecipient
}

// TransferFrom - combined entry point dispatching on whether the
// amount argument falls inside the id space assigned so far
//
// note the documented precondition: callers must keep typical
// allowance magnitudes clear of the live id range, as a numeric
// collision dispatches to the discrete path
func (e *Engine) TransferFrom(caller, from, to account.Identifier, amountOrID uint64) error {
	if amountOrID > 0 && registry.TokenID(amountOrID) <= e.minted {
		return e.guarded(func(j *journal) error {
			return e.transferDiscrete(j, caller, from, to, registry.TokenID(amountOrID))
		})
	}

	return e.guarded(func(j *journal) error {
		if caller != from {
			if err := e.spendAllowance(j, from, caller, amountOrID); nil != err {
				return err
			}
		}
		return e.transferQuantity(j, from, to, amountOrID)
	})
}
