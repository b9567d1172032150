// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package engine - the transfer orchestrator
//
// Ties the fractional ledger, the discrete-token registry and the
// vault together so that, for every non-exempt owner at rest:
//
//	count(owner) == floor(balance(owner) / unit)
//
// Every mutating operation is wrapped in a re-entrancy guard and an
// undo journal: a failure at any step unwinds all earlier mutations
// of the same operation, so callers observe either full success or
// a completely unchanged ledger.  Events are queued during the
// operation and delivered only after commit.
package engine
