// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/unitd/fault"
)

// IdentifierLength - byte size of an account identifier
const IdentifierLength = 32

// length of the checksum appended to the Base58 form
const checksumLength = 4

// Identifier - raw account identity
//
// the zero value is the null identity and never owns anything
type Identifier [IdentifierLength]byte

// Nil - the null identity
var Nil Identifier

// Ledger - well-known identity representing the ledger itself,
// the owner of record for all vaulted token ids
var Ledger = Identifier{
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
}

// IsZero - check for the null identity
func (identifier Identifier) IsZero() bool {
	return identifier == Nil
}

// Bytes - raw byte form
func (identifier Identifier) Bytes() []byte {
	return identifier[:]
}

// String - Base58 encoding of identifier ⧺ checksum
func (identifier Identifier) String() string {
	buffer := make([]byte, 0, IdentifierLength+checksumLength)
	buffer = append(buffer, identifier[:]...)
	checksum := sha3.Sum256(identifier[:])
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// MarshalText - convert an identifier to its Base58 JSON form
func (identifier Identifier) MarshalText() ([]byte, error) {
	return []byte(identifier.String()), nil
}

// UnmarshalText - convert a Base58 JSON form back to an identifier
func (identifier *Identifier) UnmarshalText(s []byte) error {
	decoded, err := base58.Decode(string(s))
	if nil != err {
		return fault.InvalidIdentifier
	}
	if IdentifierLength+checksumLength != len(decoded) {
		return fault.InvalidIdentifier
	}
	checksum := sha3.Sum256(decoded[:IdentifierLength])
	if !bytes.Equal(checksum[:checksumLength], decoded[IdentifierLength:]) {
		return fault.InvalidIdentifier
	}
	copy(identifier[:], decoded[:IdentifierLength])
	return nil
}

// IdentifierFromBase58 - decode a Base58 string form, verifying its checksum
func IdentifierFromBase58(s string) (Identifier, error) {
	var identifier Identifier
	err := identifier.UnmarshalText([]byte(s))
	return identifier, err
}

// IdentifierFromBytes - copy an identifier from a raw byte slice
func IdentifierFromBytes(buffer []byte) (Identifier, error) {
	var identifier Identifier
	if IdentifierLength != len(buffer) {
		return identifier, fault.InvalidIdentifier
	}
	copy(identifier[:], buffer)
	return identifier, nil
}
