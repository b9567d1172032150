// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/bitmark-inc/unitd/account"
	"github.com/bitmark-inc/unitd/engine"
	"github.com/bitmark-inc/unitd/fault"
	"github.com/bitmark-inc/unitd/registry"
)

// counter pool keys
var (
	mintedKey   = []byte("minted")
	decimalsKey = []byte("decimals")
)

// flag value for operator and exempt records
var setFlag = []byte{0x01}

// SaveCheckpoint - atomically replace the stored state with a
// snapshot
//
// all pools are cleared and rewritten inside one batch, so a crash
// mid-save leaves the previous checkpoint intact
func SaveCheckpoint(s *engine.Snapshot) error {
	if err := Begin(); nil != err {
		return err
	}

	pools := []*PoolHandle{
		Pool.Balances,
		Pool.Tokens,
		Pool.Vault,
		Pool.Approvals,
		Pool.Allowances,
		Pool.Operators,
		Pool.Exempt,
		Pool.Counters,
	}
	for _, p := range pools {
		err := p.NewFetchCursor().Map(func(key []byte, value []byte) error {
			p.Delete(key)
			return nil
		})
		if nil != err {
			Abort()
			return err
		}
	}

	Pool.Counters.PutN(mintedKey, uint64(s.Minted))
	Pool.Counters.PutN(decimalsKey, uint64(s.Decimals))

	for owner, balance := range s.Balances {
		Pool.Balances.PutN(owner.Bytes(), balance)
	}

	for owner, ids := range s.Owned {
		buffer := make([]byte, 8*len(ids))
		for i, id := range ids {
			binary.BigEndian.PutUint64(buffer[8*i:], uint64(id))
		}
		Pool.Tokens.Put(owner.Bytes(), buffer)
	}

	for i, id := range s.Vault {
		sequence := make([]byte, 8)
		binary.BigEndian.PutUint64(sequence, uint64(i))
		Pool.Vault.PutN(sequence, uint64(id))
	}

	for id, spender := range s.Approvals {
		key := make([]byte, 8)
		binary.BigEndian.PutUint64(key, uint64(id))
		Pool.Approvals.Put(key, spender.Bytes())
	}

	for owner, spenders := range s.Allowances {
		for spender, amount := range spenders {
			Pool.Allowances.PutN(append(owner.Bytes(), spender.Bytes()...), amount)
		}
	}

	for owner, operators := range s.Operators {
		for _, operator := range operators {
			Pool.Operators.Put(append(owner.Bytes(), operator.Bytes()...), setFlag)
		}
	}

	for _, owner := range s.Exempt {
		Pool.Exempt.Put(owner.Bytes(), setFlag)
	}

	return Commit()
}

// LoadCheckpoint - read the stored state back into a snapshot
//
// structural validation is left to the engine restore
func LoadCheckpoint() (*engine.Snapshot, error) {
	minted, ok := Pool.Counters.GetN(mintedKey)
	if !ok {
		return nil, fault.NotFound
	}
	decimals, ok := Pool.Counters.GetN(decimalsKey)
	if !ok || decimals > 255 {
		return nil, fault.DataInconsistency
	}

	s := &engine.Snapshot{
		Decimals:   uint8(decimals),
		Minted:     registry.TokenID(minted),
		Balances:   make(map[account.Identifier]uint64),
		Owned:      make(map[account.Identifier][]registry.TokenID),
		Approvals:  make(map[registry.TokenID]account.Identifier),
		Allowances: make(map[account.Identifier]map[account.Identifier]uint64),
		Operators:  make(map[account.Identifier][]account.Identifier),
	}

	err := Pool.Balances.NewFetchCursor().Map(func(key []byte, value []byte) error {
		owner, err := account.IdentifierFromBytes(key)
		if nil != err {
			return err
		}
		if 8 != len(value) {
			return fault.DataInconsistency
		}
		s.Balances[owner] = binary.BigEndian.Uint64(value)
		return nil
	})
	if nil != err {
		return nil, err
	}

	err = Pool.Tokens.NewFetchCursor().Map(func(key []byte, value []byte) error {
		owner, err := account.IdentifierFromBytes(key)
		if nil != err {
			return err
		}
		if 0 != len(value)%8 {
			return fault.DataInconsistency
		}
		ids := make([]registry.TokenID, len(value)/8)
		for i := range ids {
			ids[i] = registry.TokenID(binary.BigEndian.Uint64(value[8*i:]))
		}
		s.Owned[owner] = ids
		return nil
	})
	if nil != err {
		return nil, err
	}

	// the cursor iterates sequence keys in ascending order, which
	// is the vault's first-in first-out order
	err = Pool.Vault.NewFetchCursor().Map(func(key []byte, value []byte) error {
		if 8 != len(value) {
			return fault.DataInconsistency
		}
		s.Vault = append(s.Vault, registry.TokenID(binary.BigEndian.Uint64(value)))
		return nil
	})
	if nil != err {
		return nil, err
	}

	err = Pool.Approvals.NewFetchCursor().Map(func(key []byte, value []byte) error {
		if 8 != len(key) {
			return fault.DataInconsistency
		}
		spender, err := account.IdentifierFromBytes(value)
		if nil != err {
			return err
		}
		s.Approvals[registry.TokenID(binary.BigEndian.Uint64(key))] = spender
		return nil
	})
	if nil != err {
		return nil, err
	}

	err = Pool.Allowances.NewFetchCursor().Map(func(key []byte, value []byte) error {
		owner, spender, err := splitPair(key)
		if nil != err {
			return err
		}
		if 8 != len(value) {
			return fault.DataInconsistency
		}
		if nil == s.Allowances[owner] {
			s.Allowances[owner] = make(map[account.Identifier]uint64)
		}
		s.Allowances[owner][spender] = binary.BigEndian.Uint64(value)
		return nil
	})
	if nil != err {
		return nil, err
	}

	err = Pool.Operators.NewFetchCursor().Map(func(key []byte, value []byte) error {
		owner, operator, err := splitPair(key)
		if nil != err {
			return err
		}
		s.Operators[owner] = append(s.Operators[owner], operator)
		return nil
	})
	if nil != err {
		return nil, err
	}

	err = Pool.Exempt.NewFetchCursor().Map(func(key []byte, value []byte) error {
		owner, err := account.IdentifierFromBytes(key)
		if nil != err {
			return err
		}
		s.Exempt = append(s.Exempt, owner)
		return nil
	})
	if nil != err {
		return nil, err
	}

	return s, nil
}

// split a concatenated pair of identifiers
func splitPair(key []byte) (account.Identifier, account.Identifier, error) {
	if 64 != len(key) {
		return account.Nil, account.Nil, fault.DataInconsistency
	}
	first, err := account.IdentifierFromBytes(key[:32])
	if nil != err {
		return account.Nil, account.Nil, err
	}
	second, err := account.IdentifierFromBytes(key[32:])
	if nil != err {
		return account.Nil, account.Nil, err
	}
	return first, second, nil
}
