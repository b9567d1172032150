// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package engine

import (
	"github.com/bitmark-inc/unitd/account"
	"github.com/bitmark-inc/unitd/fault"
	"github.com/bitmark-inc/unitd/registry"
)

// Snapshot - complete engine state for checkpointing
//
// owner sequences preserve their in-memory order so the LIFO spend
// order and the vault FIFO survive a restore
type Snapshot struct {
	Decimals   uint8
	Minted     registry.TokenID
	Balances   map[account.Identifier]uint64
	Owned      map[account.Identifier][]registry.TokenID
	Vault      []registry.TokenID
	Approvals  map[registry.TokenID]account.Identifier
	Allowances map[account.Identifier]map[account.Identifier]uint64
	Operators  map[account.Identifier][]account.Identifier
	Exempt     []account.Identifier
}

// Snapshot - capture the complete current state
//
// runs under the guard so a snapshot never observes a half-applied
// operation
func (e *Engine) Snapshot() (*Snapshot, error) {
	var s *Snapshot
	err := e.guarded(func(j *journal) error {
		s = &Snapshot{
			Decimals:   e.ledger.Decimals(),
			Minted:     e.minted,
			Balances:   make(map[account.Identifier]uint64),
			Owned:      make(map[account.Identifier][]registry.TokenID),
			Vault:      e.vault.Contents(),
			Approvals:  make(map[registry.TokenID]account.Identifier),
			Allowances: make(map[account.Identifier]map[account.Identifier]uint64),
			Operators:  make(map[account.Identifier][]account.Identifier),
			Exempt:     make([]account.Identifier, 0, len(e.exempt)),
		}
		for _, owner := range e.ledger.Owners() {
			s.Balances[owner] = e.ledger.Balance(owner)
		}
		for _, owner := range e.registry.Holders() {
			ids := e.registry.IDs(owner)
			s.Owned[owner] = ids
			for _, id := range ids {
				if spender := e.registry.Approval(id); !spender.IsZero() {
					s.Approvals[id] = spender
				}
			}
		}
		for owner, spenders := range e.allowances {
			m := make(map[account.Identifier]uint64, len(spenders))
			for spender, amount := range spenders {
				m[spender] = amount
			}
			s.Allowances[owner] = m
		}
		for owner, operators := range e.operators {
			for operator := range operators {
				s.Operators[owner] = append(s.Operators[owner], operator)
			}
		}
		for owner := range e.exempt {
			s.Exempt = append(s.Exempt, owner)
		}
		return nil
	})
	if nil != err {
		return nil, err
	}
	return s, nil
}

// Restore - rebuild an engine from a snapshot, verifying internal
// consistency before accepting it
func Restore(s *Snapshot, cfg Config) (*Engine, error) {
	cfg.Decimals = s.Decimals
	e, err := New(cfg)
	if nil != err {
		return nil, err
	}

	for owner, balance := range s.Balances {
		if owner.IsZero() {
			return nil, fault.DataInconsistency
		}
		e.ledger.Issue(owner, balance)
	}

	for owner, ids := range s.Owned {
		for _, id := range ids {
			if id > s.Minted {
				return nil, fault.DataInconsistency
			}
			if err := e.registry.Add(owner, id); nil != err {
				return nil, fault.DataInconsistency
			}
		}
	}
	e.minted = s.Minted

	for _, id := range s.Vault {
		owner, err := e.registry.OwnerOf(id)
		if nil != err || account.Ledger != owner {
			return nil, fault.DataInconsistency
		}
		e.vault.Deposit(id)
	}
	// every ledger-owned id must be accounted for by the vault
	if e.vault.Size() != e.registry.Count(account.Ledger) {
		return nil, fault.DataInconsistency
	}

	for id, spender := range s.Approvals {
		if err := e.registry.SetApproval(id, spender); nil != err {
			return nil, fault.DataInconsistency
		}
	}

	for owner, spenders := range s.Allowances {
		m := make(map[account.Identifier]uint64, len(spenders))
		for spender, amount := range spenders {
			m[spender] = amount
		}
		e.allowances[owner] = m
	}
	for owner, operators := range s.Operators {
		m := make(map[account.Identifier]struct{}, len(operators))
		for _, operator := range operators {
			m[operator] = struct{}{}
		}
		e.operators[owner] = m
	}
	for _, owner := range s.Exempt {
		e.exempt[owner] = struct{}{}
	}

	if err := e.registry.CheckConsistency(); nil != err {
		return nil, err
	}
	return e, nil
}
