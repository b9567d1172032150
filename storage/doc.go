// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk checkpoint store
//
// This maintains a LevelDB database split into a series of pools.
// Each pool is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available pools.
//
// Notes:
//  1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
//  2. ++       = concatenation of byte data
//  3. id       = token id as big endian uint64 (8 bytes)
//  4. owner    = account identifier (32 bytes)
//  5. sequence = successive index value as big endian uint64 (8 bytes)
//
// Balances:
//
//	B ++ owner             - fractional balance
//	                         data: balance (big endian uint64, 8 bytes)
//
// Tokens:
//
//	T ++ owner             - owned token ids in acquisition order
//	                         data: (concat ids)
//
// Vault:
//
//	V ++ sequence          - parked ids in first-in first-out order
//	                         data: id
//
// Approvals:
//
//	A ++ id                - single approved spender for an id
//	                         data: owner
//
// Allowances:
//
//	W ++ owner ++ spender  - fractional allowance
//	                         data: amount (big endian uint64, 8 bytes)
//
// Operators:
//
//	O ++ owner ++ operator - blanket operator approval flag
//	                         data: 0x01
//
// Exempt:
//
//	E ++ owner             - synchronisation exemption flag
//	                         data: 0x01
//
// Counters:
//
//	N ++ name              - scalar engine state
//	                         data: value (big endian uint64, 8 bytes)
//
// Testing:
//
//	Z ++ key               - testing data
package storage
