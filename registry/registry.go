// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"strconv"

	"github.com/bitmark-inc/unitd/account"
	"github.com/bitmark-inc/unitd/fault"
)

// TokenID - identifier of one discrete token
//
// ids are assigned once from a strictly increasing counter and are
// never reused, even after the token is destroyed
type TokenID uint64

// String - decimal form for logs and JSON
func (id TokenID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// MarshalText - convert id to text for JSON
func (id TokenID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText - convert text back to an id
func (id *TokenID) UnmarshalText(s []byte) error {
	n, err := strconv.ParseUint(string(s), 10, 64)
	if nil != err {
		return err
	}
	*id = TokenID(n)
	return nil
}

// location of a live id: its current owner and its position in
// that owner's sequence
//
// this reverse index is the single source of truth for ownership;
// the owner-of-record query is derived from it
type location struct {
	owner account.Identifier
	index int
}

// Registry - per-owner ordered sequences of token ids
type Registry struct {
	owned    map[account.Identifier][]TokenID
	reverse  map[TokenID]location
	approval map[TokenID]account.Identifier
}

// New - create an empty registry
func New() *Registry {
	return &Registry{
		owned:    make(map[account.Identifier][]TokenID),
		reverse:  make(map[TokenID]location),
		approval: make(map[TokenID]account.Identifier),
	}
}

// Count - number of ids an owner currently holds
func (r *Registry) Count(owner account.Identifier) uint64 {
	return uint64(len(r.owned[owner]))
}

// IDAt - id at a position in an owner's sequence
func (r *Registry) IDAt(owner account.Identifier, index uint64) (TokenID, error) {
	sequence := r.owned[owner]
	if index >= uint64(len(sequence)) {
		return 0, fault.IndexOutOfBounds
	}
	return sequence[index], nil
}

// Last - the most recently acquired id in an owner's sequence
//
// this is the id spent first by burn and by direct transfer moves
func (r *Registry) Last(owner account.Identifier) (TokenID, error) {
	sequence := r.owned[owner]
	if 0 == len(sequence) {
		return 0, fault.InsufficientTokens
	}
	return sequence[len(sequence)-1], nil
}

// OwnerOf - current owner of record for a live id
func (r *Registry) OwnerOf(id TokenID) (account.Identifier, error) {
	loc, ok := r.reverse[id]
	if !ok {
		return account.Nil, fault.NotFound
	}
	return loc.owner, nil
}

// IDs - copy of an owner's current sequence
func (r *Registry) IDs(owner account.Identifier) []TokenID {
	sequence := r.owned[owner]
	ids := make([]TokenID, len(sequence))
	copy(ids, sequence)
	return ids
}

// Add - append an id to an owner's sequence
func (r *Registry) Add(owner account.Identifier, id TokenID) error {
	if _, ok := r.reverse[id]; ok {
		return fault.AlreadyExists
	}
	sequence := r.owned[owner]
	r.reverse[id] = location{
		owner: owner,
		index: len(sequence),
	}
	r.owned[owner] = append(sequence, id)
	return nil
}

// Remove - delete an id from an owner's sequence
//
// swaps the target with the last element and truncates, so removal
// is O(1) but the sequence only preserves acquisition order up to
// the swap; clears any single-id approval
func (r *Registry) Remove(owner account.Identifier, id TokenID) error {
	loc, ok := r.reverse[id]
	if !ok {
		return fault.NotFound
	}
	if loc.owner != owner {
		return fault.InvalidOwner
	}

	sequence := r.owned[owner]
	lastIndex := len(sequence) - 1
	lastID := sequence[lastIndex]

	if lastID != id {
		sequence[loc.index] = lastID
		r.reverse[lastID] = location{
			owner: owner,
			index: loc.index,
		}
	}

	sequence = sequence[:lastIndex]
	if 0 == len(sequence) {
		delete(r.owned, owner)
	} else {
		r.owned[owner] = sequence
	}
	delete(r.reverse, id)
	delete(r.approval, id)
	return nil
}

// Move - reassign an id from one owner to another
//
// composition of Remove and Add; the single-id approval is cleared
// by the Remove half
func (r *Registry) Move(from, to account.Identifier, id TokenID) error {
	loc, ok := r.reverse[id]
	if !ok {
		return fault.NotFound
	}
	if loc.owner != from {
		return fault.InvalidSender
	}
	if err := r.Remove(from, id); nil != err {
		return err
	}
	return r.Add(to, id)
}

// SetApproval - set or clear the single spender approved for an id
func (r *Registry) SetApproval(id TokenID, spender account.Identifier) error {
	if _, ok := r.reverse[id]; !ok {
		return fault.NotFound
	}
	if spender.IsZero() {
		delete(r.approval, id)
	} else {
		r.approval[id] = spender
	}
	return nil
}

// Approval - the single spender approved for an id, null if none
func (r *Registry) Approval(id TokenID) account.Identifier {
	return r.approval[id]
}

// Holders - snapshot of all owners currently holding at least one id
//
// iteration order is unspecified
func (r *Registry) Holders() []account.Identifier {
	holders := make([]account.Identifier, 0, len(r.owned))
	for owner := range r.owned {
		holders = append(holders, owner)
	}
	return holders
}

// CheckConsistency - verify the reverse index against the sequences
//
// every id in every sequence must have a reverse entry recording
// its true position, and every reverse entry must point at a real
// sequence element
func (r *Registry) CheckConsistency() error {
	n := 0
	for owner, sequence := range r.owned {
		for i, id := range sequence {
			loc, ok := r.reverse[id]
			if !ok || loc.owner != owner || loc.index != i {
				return fault.DataInconsistency
			}
			n += 1
		}
	}
	if n != len(r.reverse) {
		return fault.DataInconsistency
	}
	return nil
}
