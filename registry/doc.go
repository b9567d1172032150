// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registry - the discrete side of the asset
//
// Each owner holds an ordered, duplicate-free sequence of token ids.
// A reverse index id → (owner, position) gives O(1) membership and
// O(1) removal by swapping with the last element; positions are
// contiguous with no gaps.
package registry
