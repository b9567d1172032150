// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault

import (
	"github.com/bitmark-inc/unitd/fault"
	"github.com/bitmark-inc/unitd/registry"
)

// compact the backing array once this many slots are dead
const compactionThreshold = 1024

// Vault - FIFO reserve of token ids owned by the ledger itself
//
// ids withdraw in exactly the order deposited; a head index gives
// O(1) withdrawal with the same observable ordering as shifting
// the whole queue
type Vault struct {
	ids  []registry.TokenID
	head int
}

// New - create an empty vault
func New() *Vault {
	return &Vault{}
}

// Size - number of ids currently held
func (v *Vault) Size() uint64 {
	return uint64(len(v.ids) - v.head)
}

// Deposit - append an id to the tail of the queue
func (v *Vault) Deposit(id registry.TokenID) {
	v.ids = append(v.ids, id)
}

// WithdrawOldest - remove and return the head of the queue
func (v *Vault) WithdrawOldest() (registry.TokenID, error) {
	if v.head >= len(v.ids) {
		return 0, fault.EmptyVault
	}
	id := v.ids[v.head]
	v.ids[v.head] = 0
	v.head += 1

	if v.head >= compactionThreshold {
		v.ids = append([]registry.TokenID{}, v.ids[v.head:]...)
		v.head = 0
	}
	return id, nil
}

// PutBack - reinsert an id at the head of the queue
//
// only used to unwind a withdrawal during rollback, so the
// observable FIFO order is unchanged
func (v *Vault) PutBack(id registry.TokenID) {
	if v.head > 0 {
		v.head -= 1
		v.ids[v.head] = id
		return
	}
	v.ids = append([]registry.TokenID{id}, v.ids...)
}

// DropNewest - remove the most recently deposited id
//
// only used to unwind a deposit during rollback
func (v *Vault) DropNewest() (registry.TokenID, error) {
	if v.head >= len(v.ids) {
		return 0, fault.EmptyVault
	}
	id := v.ids[len(v.ids)-1]
	v.ids = v.ids[:len(v.ids)-1]
	return id, nil
}

// Contents - copy of the queue in withdrawal order
func (v *Vault) Contents() []registry.TokenID {
	contents := make([]registry.TokenID, len(v.ids)-v.head)
	copy(contents, v.ids[v.head:])
	return contents
}
