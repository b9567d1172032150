// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package eventbus - a queuing system for committed ledger events
//
// Events are queued by the engine only after the operation that
// produced them has fully committed, so subscribers never observe
// a state change that was later rolled back.
package eventbus
