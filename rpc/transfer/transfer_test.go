// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transfer_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/unitd/account"
	"github.com/bitmark-inc/unitd/engine"
	"github.com/bitmark-inc/unitd/fault"
	"github.com/bitmark-inc/unitd/rpc/fixtures"
	"github.com/bitmark-inc/unitd/rpc/transfer"
)

var (
	administrator = account.Identifier{0x01}
	alpha         = account.Identifier{0x0a}
	beta          = account.Identifier{0x0b}
)

type testGate struct{}

func (testGate) IsAdministrator(caller account.Identifier) bool {
	return caller == administrator
}

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	result := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(result)
}

func newTestTransfer(t *testing.T) (*transfer.Transfer, *engine.Engine) {
	e, err := engine.New(engine.Config{
		Decimals: 2,
		Gate:     testGate{},
	})
	assert.Nil(t, err, "wrong engine.New")

	err = e.Issue(administrator, alpha, 300)
	assert.Nil(t, err, "wrong Issue")

	return transfer.New(logger.New(fixtures.LogCategory), e), e
}

func TestQuantity(t *testing.T) {
	service, e := newTestTransfer(t)

	var balances transfer.BalancesReply
	err := service.Quantity(
		&transfer.QuantityArguments{From: alpha, To: beta, Amount: 150},
		&balances,
	)
	assert.Nil(t, err, "wrong Quantity")
	assert.Equal(t, uint64(150), balances.SenderBalance, "wrong sender balance")
	assert.Equal(t, uint64(150), balances.RecipientBalance, "wrong recipient balance")
	assert.Equal(t, uint64(1), e.Count(beta), "wrong recipient count")
}

func TestQuantityInsufficient(t *testing.T) {
	service, _ := newTestTransfer(t)

	var balances transfer.BalancesReply
	err := service.Quantity(
		&transfer.QuantityArguments{From: beta, To: alpha, Amount: 1},
		&balances,
	)
	assert.Equal(t, fault.InsufficientBalance, err, "wrong overdraft error")
}

func TestQuantityMintBurn(t *testing.T) {
	service, e := newTestTransfer(t)

	var balances transfer.BalancesReply
	err := service.QuantityMintBurn(
		&transfer.QuantityArguments{From: alpha, To: beta, Amount: 100},
		&balances,
	)
	assert.Nil(t, err, "wrong QuantityMintBurn")
	assert.Equal(t, uint64(200), balances.SenderBalance, "wrong sender balance")
	assert.Equal(t, uint64(100), balances.RecipientBalance, "wrong recipient balance")
	assert.Equal(t, uint64(1), e.Count(beta), "wrong recipient count")
}

func TestDiscrete(t *testing.T) {
	service, e := newTestTransfer(t)

	var reply transfer.DiscreteReply
	err := service.Discrete(
		&transfer.DiscreteArguments{Caller: alpha, From: alpha, To: beta, ID: 2},
		&reply,
	)
	assert.Nil(t, err, "wrong Discrete")
	assert.Equal(t, beta, reply.Owner, "wrong owner")
	assert.Equal(t, uint64(100), reply.RecipientBalance, "wrong recipient balance")
	assert.Equal(t, uint64(1), reply.RecipientCount, "wrong recipient count")

	owner, err := e.OwnerOf(2)
	assert.Nil(t, err, "wrong OwnerOf")
	assert.Equal(t, beta, owner, "token did not move")
}

func TestDiscreteUnauthorized(t *testing.T) {
	service, _ := newTestTransfer(t)

	var reply transfer.DiscreteReply
	err := service.Discrete(
		&transfer.DiscreteArguments{Caller: beta, From: alpha, To: beta, ID: 1},
		&reply,
	)
	assert.Equal(t, fault.Unauthorized, err, "wrong authorization error")
}

func TestFrom(t *testing.T) {
	service, e := newTestTransfer(t)

	err := e.Approve(alpha, beta, 200)
	assert.Nil(t, err, "wrong Approve")

	var balances transfer.BalancesReply
	err = service.From(
		&transfer.FromArguments{Caller: beta, From: alpha, To: beta, AmountOrID: 150},
		&balances,
	)
	assert.Nil(t, err, "wrong From")
	assert.Equal(t, uint64(150), balances.SenderBalance, "wrong sender balance")
	assert.Equal(t, uint64(50), e.Allowance(alpha, beta), "wrong remaining allowance")
}
