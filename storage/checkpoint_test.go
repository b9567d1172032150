// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/unitd/account"
	"github.com/bitmark-inc/unitd/engine"
	"github.com/bitmark-inc/unitd/fault"
	"github.com/bitmark-inc/unitd/storage"
)

var (
	checkpointAdmin = account.Identifier{0x01}
	checkpointAlpha = account.Identifier{0x0a}
	checkpointBeta  = account.Identifier{0x0b}
)

type checkpointGate struct{}

func (checkpointGate) IsAdministrator(caller account.Identifier) bool {
	return checkpointAdmin == caller
}

// build an engine with non-trivial state in every pool
func buildCheckpointEngine(t *testing.T) *engine.Engine {
	e, err := engine.New(engine.Config{
		Decimals: 2,
		Gate:     checkpointGate{},
	})
	assert.Nil(t, err, "engine new error")

	assert.Nil(t, e.Issue(checkpointAdmin, checkpointAlpha, 300), "issue error")
	assert.Nil(t, e.TransferQuantity(checkpointAlpha, checkpointBeta, 250), "transfer error")
	assert.Nil(t, e.Approve(checkpointAlpha, checkpointBeta, 500), "approve error")
	assert.Nil(t, e.Approve(checkpointBeta, checkpointAlpha, 2), "approve error")
	assert.Nil(t, e.SetApprovalForAll(checkpointAlpha, checkpointBeta, true), "set approval for all error")
	assert.Nil(t, e.SetExempt(checkpointAdmin, checkpointAdmin, true), "set exempt error")
	return e
}

func TestCheckpointRoundTrip(t *testing.T) {
	setup(t)
	defer teardown(t)

	e := buildCheckpointEngine(t)

	s, err := e.Snapshot()
	assert.Nil(t, err, "snapshot error")
	assert.Nil(t, storage.SaveCheckpoint(s), "save error")

	loaded, err := storage.LoadCheckpoint()
	assert.Nil(t, err, "load error")

	r, err := engine.Restore(loaded, engine.Config{Gate: checkpointGate{}})
	assert.Nil(t, err, "restore error")

	assert.Equal(t, e.Minted(), r.Minted(), "minted differs")
	assert.Equal(t, e.TotalSupply(), r.TotalSupply(), "total supply differs")
	assert.Equal(t, e.VaultSize(), r.VaultSize(), "vault size differs")
	for _, owner := range []account.Identifier{checkpointAlpha, checkpointBeta} {
		assert.Equal(t, e.Balance(owner), r.Balance(owner), "balance differs")
		assert.Equal(t, e.Count(owner), r.Count(owner), "count differs")
	}
	assert.Equal(t, uint64(500), r.Allowance(checkpointAlpha, checkpointBeta), "allowance differs")
	spender, err := r.Approved(2)
	assert.Nil(t, err, "approved error")
	assert.Equal(t, checkpointAlpha, spender, "approval differs")
	assert.True(t, r.IsOperator(checkpointAlpha, checkpointBeta), "operator lost")
	assert.True(t, r.IsExempt(checkpointAdmin), "exemption lost")
}

// a later save fully replaces the previous checkpoint
func TestCheckpointReplacement(t *testing.T) {
	setup(t)
	defer teardown(t)

	e := buildCheckpointEngine(t)

	s, err := e.Snapshot()
	assert.Nil(t, err, "snapshot error")
	assert.Nil(t, storage.SaveCheckpoint(s), "save error")

	// shrink the state: beta returns everything to alpha
	assert.Nil(t, e.TransferQuantity(checkpointBeta, checkpointAlpha, 250), "transfer error")

	s, err = e.Snapshot()
	assert.Nil(t, err, "snapshot error")
	assert.Nil(t, storage.SaveCheckpoint(s), "save error")

	loaded, err := storage.LoadCheckpoint()
	assert.Nil(t, err, "load error")

	r, err := engine.Restore(loaded, engine.Config{Gate: checkpointGate{}})
	assert.Nil(t, err, "restore error")

	assert.Equal(t, uint64(0), r.Balance(checkpointBeta), "stale balance survived")
	assert.Equal(t, uint64(0), r.Count(checkpointBeta), "stale tokens survived")
	assert.Equal(t, e.VaultSize(), r.VaultSize(), "vault differs")
}

func TestLoadCheckpointEmpty(t *testing.T) {
	setup(t)
	defer teardown(t)

	_, err := storage.LoadCheckpoint()
	assert.Equal(t, fault.NotFound, err, "empty database loaded")
}
