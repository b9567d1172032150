// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/unitd/account"
	"github.com/bitmark-inc/unitd/engine"
	"github.com/bitmark-inc/unitd/fault"
	"github.com/bitmark-inc/unitd/registry"
	"github.com/bitmark-inc/unitd/rpc/fixtures"
	"github.com/bitmark-inc/unitd/rpc/ledger"
)

var (
	administrator = account.Identifier{0x01}
	alpha         = account.Identifier{0x0a}
)

type testGate struct{}

func (testGate) IsAdministrator(caller account.Identifier) bool {
	return caller == administrator
}

type testDescriber struct{}

func (testDescriber) TokenURI(id registry.TokenID) string {
	return fmt.Sprintf("unit://token/%d", uint64(id))
}

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	result := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(result)
}

func newTestLedger(t *testing.T) *ledger.Ledger {
	e, err := engine.New(engine.Config{
		Decimals:  2,
		Gate:      testGate{},
		Describer: testDescriber{},
	})
	assert.Nil(t, err, "wrong engine.New")

	err = e.Issue(administrator, alpha, 350)
	assert.Nil(t, err, "wrong Issue")

	return ledger.New(logger.New(fixtures.LogCategory), e)
}

func TestInfo(t *testing.T) {
	l := newTestLedger(t)

	var info ledger.InfoReply
	err := l.Info(&ledger.InfoArguments{}, &info)
	assert.Nil(t, err, "wrong Info")
	assert.Equal(t, uint8(2), info.Decimals, "wrong decimals")
	assert.Equal(t, uint64(100), info.Unit, "wrong unit")
	assert.Equal(t, uint64(350), info.TotalSupply, "wrong total supply")
	assert.Equal(t, uint64(3), info.Minted, "wrong minted")
	assert.Equal(t, uint64(0), info.VaultSize, "wrong vault size")
}

func TestBalance(t *testing.T) {
	l := newTestLedger(t)

	var balance ledger.BalanceReply
	err := l.Balance(&ledger.BalanceArguments{Owner: alpha}, &balance)
	assert.Nil(t, err, "wrong Balance")
	assert.Equal(t, uint64(350), balance.Balance, "wrong balance")
	assert.Equal(t, uint64(3), balance.Count, "wrong count")
	assert.False(t, balance.Exempt, "wrong exempt")
}

func TestTokens(t *testing.T) {
	l := newTestLedger(t)

	var page ledger.TokensReply
	err := l.Tokens(&ledger.TokensArguments{Owner: alpha, Start: 0, Count: 2}, &page)
	assert.Nil(t, err, "wrong Tokens")
	assert.Equal(t, []registry.TokenID{1, 2}, page.Tokens, "wrong first page")
	assert.Equal(t, uint64(2), page.NextStart, "wrong next start")

	err = l.Tokens(&ledger.TokensArguments{Owner: alpha, Start: page.NextStart, Count: 2}, &page)
	assert.Nil(t, err, "wrong Tokens")
	assert.Equal(t, []registry.TokenID{3}, page.Tokens, "wrong last page")
	assert.Equal(t, uint64(3), page.NextStart, "wrong next start")
}

func TestOwner(t *testing.T) {
	l := newTestLedger(t)

	var owner ledger.OwnerReply
	err := l.Owner(&ledger.OwnerArguments{ID: 2}, &owner)
	assert.Nil(t, err, "wrong Owner")
	assert.Equal(t, alpha, owner.Owner, "wrong owner")
	assert.Equal(t, "unit://token/2", owner.URI, "wrong uri")

	err = l.Owner(&ledger.OwnerArguments{ID: 99}, &owner)
	assert.Equal(t, fault.NotFound, err, "wrong dead id error")
}
