// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"testing"

	"github.com/bitmark-inc/unitd/account"
	"github.com/bitmark-inc/unitd/fault"
)

// test round trips through the Base58 textual form
func TestBase58RoundTrip(t *testing.T) {
	testList := []account.Identifier{
		{},
		{0x01},
		{0xde, 0xad, 0xbe, 0xef, 0x00, 0x11, 0x22, 0x33},
		account.Ledger,
	}
	// make the last byte significant
	testList[1][account.IdentifierLength-1] = 0x7f

	for i, original := range testList {
		s := original.String()
		decoded, err := account.IdentifierFromBase58(s)
		if nil != err {
			t.Fatalf("%d: decode error: %s", i, err)
		}
		if decoded != original {
			t.Errorf("%d: decoded: %v  expected: %v", i, decoded, original)
		}
	}
}

// corrupted strings must be detected by the checksum
func TestChecksumDetection(t *testing.T) {
	identifier := account.Identifier{0x12, 0x34, 0x56, 0x78}
	s := identifier.String()

	// flip one character to another valid Base58 character
	c := byte('2')
	if s[5] == c {
		c = '3'
	}
	corrupt := s[:5] + string(c) + s[6:]

	_, err := account.IdentifierFromBase58(corrupt)
	if fault.InvalidIdentifier != err {
		t.Errorf("corrupt string accepted: %q", corrupt)
	}
}

// truncated and garbage input
func TestInvalidInput(t *testing.T) {
	testList := []string{
		"",
		"abc",
		"0OIl", // not Base58
	}
	for i, s := range testList {
		_, err := account.IdentifierFromBase58(s)
		if nil == err {
			t.Errorf("%d: invalid string accepted: %q", i, s)
		}
	}
}

// the zero value is the null identity
func TestNullIdentity(t *testing.T) {
	var identifier account.Identifier
	if !identifier.IsZero() {
		t.Errorf("zero value is not null")
	}
	if account.Ledger.IsZero() {
		t.Errorf("ledger identity is null")
	}
}
