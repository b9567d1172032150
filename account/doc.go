// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account - owner identities for the ledger
//
// An identity is an opaque 32 byte value; its textual form is
// Base58 of the raw bytes followed by a 4 byte SHA3-256 checksum.
package account
