// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - the fractional side of the asset
//
// Maps each owner to a non-negative scaled quantity and maintains
// the total supply.  The unit scale is 10^decimals fractional
// quantities per discrete token and is fixed at construction.
package ledger
