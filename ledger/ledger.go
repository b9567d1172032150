// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/unitd/account"
	"github.com/bitmark-inc/unitd/fault"
)

// MaximumDecimals - upper limit so that unit fits in uint64
const MaximumDecimals = 18

// Ledger - fractional balances for all owners
//
// balances are unsigned integers scaled so that "unit" fractional
// quantities make up exactly one discrete token
type Ledger struct {
	unit     uint64
	decimals uint8
	balances map[account.Identifier]uint64
	total    uint64
}

// New - create an empty ledger with a fixed unit scale
func New(decimals uint8) (*Ledger, error) {
	if decimals > MaximumDecimals {
		return nil, fault.InvalidDecimals
	}
	unit := uint64(1)
	for i := uint8(0); i < decimals; i += 1 {
		unit *= 10
	}
	return &Ledger{
		unit:     unit,
		decimals: decimals,
		balances: make(map[account.Identifier]uint64),
	}, nil
}

// Unit - the fractional quantity equivalent to one discrete token
func (l *Ledger) Unit() uint64 {
	return l.unit
}

// Decimals - the scale parameter fixed at construction
func (l *Ledger) Decimals() uint8 {
	return l.decimals
}

// Balance - current balance of an owner, zero if never seen
func (l *Ledger) Balance(owner account.Identifier) uint64 {
	return l.balances[owner]
}

// TotalSupply - sum of all balances
func (l *Ledger) TotalSupply() uint64 {
	return l.total
}

// WholeUnits - floor(balance/unit) for an owner
func (l *Ledger) WholeUnits(owner account.Identifier) uint64 {
	return l.balances[owner] / l.unit
}

// Credit - add to an owner's balance
func (l *Ledger) Credit(owner account.Identifier, amount uint64) {
	l.balances[owner] += amount
}

// Debit - checked subtraction from an owner's balance
//
// never clamps: a debit exceeding the balance fails and
// leaves the ledger untouched
func (l *Ledger) Debit(owner account.Identifier, amount uint64) error {
	balance := l.balances[owner]
	if amount > balance {
		return fault.InsufficientBalance
	}
	remaining := balance - amount
	if 0 == remaining {
		delete(l.balances, owner)
	} else {
		l.balances[owner] = remaining
	}
	return nil
}

// Issue - create new supply credited to an owner
func (l *Ledger) Issue(owner account.Identifier, amount uint64) {
	l.balances[owner] += amount
	l.total += amount
}

// Retire - destroy supply debited from an owner
func (l *Ledger) Retire(owner account.Identifier, amount uint64) error {
	if err := l.Debit(owner, amount); nil != err {
		return err
	}
	l.total -= amount
	return nil
}

// Owners - snapshot of all owners with a non-zero balance
//
// iteration order is unspecified
func (l *Ledger) Owners() []account.Identifier {
	owners := make([]account.Identifier, 0, len(l.balances))
	for owner := range l.balances {
		owners = append(owners, owner)
	}
	return owners
}
