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

// the dual-purpose approve argument resolved once at the boundary
type approvalKind int

const (
	fractionalApproval approvalKind = iota
	discreteApproval
)

type approvalRequest struct {
	kind   approvalKind
	id     registry.TokenID
	amount uint64
}

// a value that is a currently-valid discrete id resolves to the
// discrete kind; anything else is a fractional allowance
//
// when an allowance value numerically coincides with a live id the
// discrete interpretation wins; callers must keep id space and
// typical allowance magnitudes from colliding
func (e *Engine) resolveApproval(amountOrID uint64) approvalRequest {
	id := registry.TokenID(amountOrID)
	if amountOrID > 0 && id <= e.minted {
		if _, err := e.registry.OwnerOf(id); nil == err {
			return approvalRequest{kind: discreteApproval, id: id}
		}
	}
	return approvalRequest{kind: fractionalApproval, amount: amountOrID}
}

// Approve - dual-purpose approval
//
// sets a single-id approval when amountOrID is a live id, a
// fractional allowance otherwise
func (e *Engine) Approve(caller, spender account.Identifier, amountOrID uint64) error {
	request := e.resolveApproval(amountOrID)

	switch request.kind {

	case discreteApproval:
		return e.guarded(func(j *journal) error {
			owner, err := e.registry.OwnerOf(request.id)
			if nil != err {
				return err
			}
			if caller != owner && !e.IsOperator(owner, caller) {
				return fault.Unauthorized
			}

			previous := e.registry.Approval(request.id)
			if err := e.registry.SetApproval(request.id, spender); nil != err {
				return err
			}
			j.record(func() { _ = e.registry.SetApproval(request.id, previous) })
			j.emit(eventbus.DiscreteApproval{
				Owner:   owner,
				Spender: spender,
				ID:      request.id,
			})
			return nil
		})

	default:
		return e.guarded(func(j *journal) error {
			e.setAllowance(j, caller, spender, request.amount)
			j.emit(eventbus.FractionalApproval{
				Owner:   caller,
				Spender: spender,
				Amount:  request.amount,
			})
			return nil
		})
	}
}

// SetApprovalForAll - grant or revoke blanket rights over all of
// the caller's ids
func (e *Engine) SetApprovalForAll(caller, operator account.Identifier, approved bool) error {
	return e.guarded(func(j *journal) error {
		if operator.IsZero() {
			return fault.InvalidRecipient
		}

		_, had := e.operators[caller][operator]
		if approved {
			if nil == e.operators[caller] {
				e.operators[caller] = make(map[account.Identifier]struct{})
			}
			e.operators[caller][operator] = struct{}{}
		} else {
			delete(e.operators[caller], operator)
		}
		j.record(func() {
			if had {
				if nil == e.operators[caller] {
					e.operators[caller] = make(map[account.Identifier]struct{})
				}
				e.operators[caller][operator] = struct{}{}
			} else {
				delete(e.operators[caller], operator)
			}
		})

		j.emit(eventbus.OperatorApproval{
			Owner:    caller,
			Operator: operator,
			Approved: approved,
		})
		return nil
	})
}

// allowance bookkeeping
// ---------------------

func (e *Engine) setAllowance(j *journal, owner, spender account.Identifier, amount uint64) {
	previous, had := e.allowances[owner][spender]

	if nil == e.allowances[owner] {
		e.allowances[owner] = make(map[account.Identifier]uint64)
	}
	e.allowances[owner][spender] = amount

	j.record(func() {
		if had {
			e.allowances[owner][spender] = previous
		} else {
			delete(e.allowances[owner], spender)
		}
	})
}

// debit a spender's allowance; UnlimitedAllowance is never
// decremented
func (e *Engine) spendAllowance(j *journal, owner, spender account.Identifier, amount uint64) error {
	current := e.allowances[owner][spender]
	if UnlimitedAllowance == current {
		return nil
	}
	if amount > current {
		return fault.InsufficientBalance
	}
	e.setAllowance(j, owner, spender, current-amount)
	return nil
}
