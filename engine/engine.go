// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package engine

import (
	"math"
	"sync/atomic"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/unitd/account"
	"github.com/bitmark-inc/unitd/eventbus"
	"github.com/bitmark-inc/unitd/fault"
	"github.com/bitmark-inc/unitd/ledger"
	"github.com/bitmark-inc/unitd/registry"
	"github.com/bitmark-inc/unitd/vault"
)

// UnlimitedAllowance - allowance value treated as infinite and
// never decremented on spend
const UnlimitedAllowance = math.MaxUint64

// AckValue - the fixed value a contract-like recipient must return
// to acknowledge a checked discrete transfer
var AckValue = [4]byte{'u', 'n', 'i', 't'}

// Gate - access control for administrative operations
//
// consumed, not implemented here
type Gate interface {
	IsAdministrator(caller account.Identifier) bool
}

// Acknowledger - receiver acknowledgment protocol
//
// invoked after a checked discrete transfer has committed; the
// recipient must return AckValue or the transfer is reversed
type Acknowledger interface {
	TransferReceived(operator, from, to account.Identifier, id registry.TokenID, data []byte) ([4]byte, error)
}

// Describer - metadata provider keyed by token id
//
// only consulted for live ids; the returned string is opaque to the
// engine (typically a URI)
type Describer interface {
	TokenURI(id registry.TokenID) string
}

// Config - engine construction parameters
type Config struct {
	Decimals     uint8
	Gate         Gate          // nil denies all administrative operations
	Acknowledger Acknowledger  // nil disables the acknowledgment handshake
	Describer    Describer     // nil yields empty metadata
	Bus          *eventbus.Bus // nil discards events
	Log          *logger.L     // nil creates an "engine" channel
}

// Engine - a dual-representation asset ledger instance
type Engine struct {
	log      *logger.L
	ledger   *ledger.Ledger
	registry *registry.Registry
	vault    *vault.Vault
	bus      *eventbus.Bus
	gate     Gate
	ack      Acknowledger
	describe Describer

	minted     registry.TokenID // highest id ever assigned; only grows
	exempt     map[account.Identifier]struct{}
	allowances map[account.Identifier]map[account.Identifier]uint64
	operators  map[account.Identifier]map[account.Identifier]struct{}

	// re-entrancy flag; scope is exactly one top-level operation
	entered int32
}

// New - create an empty engine
func New(cfg Config) (*Engine, error) {
	l, err := ledger.New(cfg.Decimals)
	if nil != err {
		return nil, err
	}
	log := cfg.Log
	if nil == log {
		log = logger.New("engine")
	}
	return &Engine{
		log:        log,
		ledger:     l,
		registry:   registry.New(),
		vault:      vault.New(),
		bus:        cfg.Bus,
		gate:       cfg.Gate,
		ack:        cfg.Acknowledger,
		describe:   cfg.Describer,
		exempt:     make(map[account.Identifier]struct{}),
		allowances: make(map[account.Identifier]map[account.Identifier]uint64),
		operators:  make(map[account.Identifier]map[account.Identifier]struct{}),
	}, nil
}

// queries
// -------

// Unit - fractional quantity equivalent to one discrete token
func (e *Engine) Unit() uint64 { return e.ledger.Unit() }

// Decimals - scale parameter fixed at construction
func (e *Engine) Decimals() uint8 { return e.ledger.Decimals() }

// Balance - fractional balance of an owner
func (e *Engine) Balance(owner account.Identifier) uint64 {
	return e.ledger.Balance(owner)
}

// TotalSupply - sum of all balances
func (e *Engine) TotalSupply() uint64 { return e.ledger.TotalSupply() }

// Count - number of discrete tokens an owner holds
func (e *Engine) Count(owner account.Identifier) uint64 {
	return e.registry.Count(owner)
}

// IDAt - token id at an index in an owner's sequence
func (e *Engine) IDAt(owner account.Identifier, index uint64) (registry.TokenID, error) {
	return e.registry.IDAt(owner, index)
}

// OwnerOf - current owner of a live token id
func (e *Engine) OwnerOf(id registry.TokenID) (account.Identifier, error) {
	return e.registry.OwnerOf(id)
}

// Approved - single spender approved for a live id, null if none
func (e *Engine) Approved(id registry.TokenID) (account.Identifier, error) {
	if _, err := e.registry.OwnerOf(id); nil != err {
		return account.Nil, err
	}
	return e.registry.Approval(id), nil
}

// TokenURI - metadata for a live token id
//
// the id must be currently owned; NotFound otherwise
func (e *Engine) TokenURI(id registry.TokenID) (string, error) {
	if _, err := e.registry.OwnerOf(id); nil != err {
		return "", err
	}
	if nil == e.describe {
		return "", nil
	}
	return e.describe.TokenURI(id), nil
}

// Allowance - fractional allowance granted by an owner to a spender
func (e *Engine) Allowance(owner, spender account.Identifier) uint64 {
	return e.allowances[owner][spender]
}

// IsOperator - blanket operator approval query
func (e *Engine) IsOperator(owner, operator account.Identifier) bool {
	_, ok := e.operators[owner][operator]
	return ok
}

// IsExempt - whether an owner is excluded from count synchronisation
func (e *Engine) IsExempt(owner account.Identifier) bool {
	_, ok := e.exempt[owner]
	return ok
}

// Minted - highest token id assigned so far
func (e *Engine) Minted() registry.TokenID { return e.minted }

// VaultSize - number of ids parked in the vault
func (e *Engine) VaultSize() uint64 { return e.vault.Size() }

// guard and journal
// -----------------

// journal - undo log plus pending events for one operation
type journal struct {
	undo   []func()
	events []eventbus.Event
}

func (j *journal) record(undo func()) {
	j.undo = append(j.undo, undo)
}

func (j *journal) emit(event eventbus.Event) {
	j.events = append(j.events, event)
}

// unwind all recorded mutations, most recent first
func (j *journal) rollback() {
	for i := len(j.undo) - 1; i >= 0; i -= 1 {
		j.undo[i]()
	}
}

// guarded - run one state-mutating operation
//
// a second guarded operation started from within the dynamic
// extent of the first fails immediately rather than deadlocking;
// on error every mutation is unwound before returning; events are
// delivered only after the guard is released
func (e *Engine) guarded(op func(*journal) error) error {
	if !atomic.CompareAndSwapInt32(&e.entered, 0, 1) {
		return fault.ReentrantCall
	}
	j := &journal{}
	if err := op(j); nil != err {
		j.rollback()
		atomic.StoreInt32(&e.entered, 0)
		return err
	}
	atomic.StoreInt32(&e.entered, 0)
	if nil != e.bus {
		for _, event := range j.events {
			e.bus.Send(event)
		}
	}
	return nil
}

// journaled primitives
// --------------------

func (e *Engine) debit(j *journal, owner account.Identifier, amount uint64) error {
	if err := e.ledger.Debit(owner, amount); nil != err {
		return err
	}
	j.record(func() { e.ledger.Credit(owner, amount) })
	return nil
}

func (e *Engine) credit(j *journal, owner account.Identifier, amount uint64) {
	e.ledger.Credit(owner, amount)
	j.record(func() { _ = e.ledger.Debit(owner, amount) })
}

// move an id between owners, preserving the replaced approval for
// rollback
func (e *Engine) move(j *journal, from, to account.Identifier, id registry.TokenID) error {
	spender := e.registry.Approval(id)
	if err := e.registry.Move(from, to, id); nil != err {
		return err
	}
	j.record(func() {
		_ = e.registry.Move(to, from, id)
		if !spender.IsZero() {
			_ = e.registry.SetApproval(id, spender)
		}
	})
	return nil
}

func (e *Engine) isAdministrator(caller account.Identifier) bool {
	return nil != e.gate && e.gate.IsAdministrator(caller)
}
