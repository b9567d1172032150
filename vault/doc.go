// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package vault - the ledger's holding queue of spare token ids
//
// Tokens parked here back no account's balance; they are recycled
// in first-deposited-first-withdrawn order to avoid the cost of
// destroying and recreating discrete tokens across transfers.
package vault
