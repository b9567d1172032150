// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package eventbus

import (
	"github.com/bitmark-inc/unitd/account"
	"github.com/bitmark-inc/unitd/registry"
)

// internal constants
const (
	queueSize = 1000
)

// Event - one committed ledger state change
type Event interface {
	EventName() string
}

// FractionalTransfer - a balance change between two owners
type FractionalTransfer struct {
	From   account.Identifier `json:"from"`
	To     account.Identifier `json:"to"`
	Amount uint64             `json:"amount"`
}

// DiscreteTransfer - an ownership change of one token id
type DiscreteTransfer struct {
	From account.Identifier `json:"from"`
	To   account.Identifier `json:"to"`
	ID   registry.TokenID   `json:"id"`
}

// FractionalApproval - an allowance change
type FractionalApproval struct {
	Owner   account.Identifier `json:"owner"`
	Spender account.Identifier `json:"spender"`
	Amount  uint64             `json:"amount"`
}

// DiscreteApproval - a single-id approval change
type DiscreteApproval struct {
	Owner   account.Identifier `json:"owner"`
	Spender account.Identifier `json:"spender"`
	ID      registry.TokenID   `json:"id"`
}

// OperatorApproval - a blanket operator grant or revocation
type OperatorApproval struct {
	Owner    account.Identifier `json:"owner"`
	Operator account.Identifier `json:"operator"`
	Approved bool               `json:"approved"`
}

func (FractionalTransfer) EventName() string { return "fractional-transfer" }
func (DiscreteTransfer) EventName() string   { return "discrete-transfer" }
func (FractionalApproval) EventName() string { return "fractional-approval" }
func (DiscreteApproval) EventName() string   { return "discrete-approval" }
func (OperatorApproval) EventName() string   { return "operator-approval" }

// Bus - a buffered queue of committed events
type Bus struct {
	queue chan Event
}

// New - create a bus with the default queue size
func New() *Bus {
	return &Bus{
		queue: make(chan Event, queueSize),
	}
}

// Send - queue one event
//
// never blocks: when the queue is full the event is dropped, as
// a slow subscriber must not stall the ledger
func (bus *Bus) Send(event Event) {
	select {
	case bus.queue <- event:
	default:
	}
}

// Chan - channel to read from
func (bus *Bus) Chan() <-chan Event {
	return bus.queue
}
