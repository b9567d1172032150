// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package admin_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/unitd/account"
	"github.com/bitmark-inc/unitd/engine"
	"github.com/bitmark-inc/unitd/fault"
	"github.com/bitmark-inc/unitd/rpc/admin"
	"github.com/bitmark-inc/unitd/rpc/fixtures"
)

var (
	administrator = account.Identifier{0x01}
	alpha         = account.Identifier{0x0a}
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

func newTestAdmin(t *testing.T) (*admin.Admin, *engine.Engine) {
	e, err := engine.New(engine.Config{
		Decimals: 2,
		Gate:     testGate{},
	})
	assert.Nil(t, err, "wrong engine.New")

	return admin.New(logger.New(fixtures.LogCategory), e), e
}

func TestIssueRetire(t *testing.T) {
	service, e := newTestAdmin(t)

	var supply admin.SupplyReply
	err := service.Issue(
		&admin.SupplyArguments{Caller: administrator, Owner: alpha, Amount: 250},
		&supply,
	)
	assert.Nil(t, err, "wrong Issue")
	assert.Equal(t, uint64(250), supply.TotalSupply, "wrong total supply")
	assert.Equal(t, uint64(250), supply.Balance, "wrong balance")
	assert.Equal(t, uint64(2), supply.Count, "wrong count")

	err = service.Retire(
		&admin.SupplyArguments{Caller: administrator, Owner: alpha, Amount: 100},
		&supply,
	)
	assert.Nil(t, err, "wrong Retire")
	assert.Equal(t, uint64(150), supply.TotalSupply, "wrong total supply")
	assert.Equal(t, uint64(150), supply.Balance, "wrong balance")
	assert.Equal(t, uint64(1), supply.Count, "wrong count")
	assert.Equal(t, uint64(150), e.TotalSupply(), "wrong engine supply")
}

func TestIssueUnauthorized(t *testing.T) {
	service, _ := newTestAdmin(t)

	var supply admin.SupplyReply
	err := service.Issue(
		&admin.SupplyArguments{Caller: alpha, Owner: alpha, Amount: 250},
		&supply,
	)
	assert.Equal(t, fault.Unauthorized, err, "wrong authorization error")
}

func TestExempt(t *testing.T) {
	service, e := newTestAdmin(t)

	var supply admin.SupplyReply
	err := service.Issue(
		&admin.SupplyArguments{Caller: administrator, Owner: alpha, Amount: 300},
		&supply,
	)
	assert.Nil(t, err, "wrong Issue")

	// flipping the flag never adjusts the discrete count by itself
	var exempt admin.ExemptReply
	err = service.Exempt(
		&admin.ExemptArguments{Caller: administrator, Owner: alpha, Exempt: true},
		&exempt,
	)
	assert.Nil(t, err, "wrong Exempt")
	assert.True(t, exempt.Exempt, "exemption not set")
	assert.Equal(t, uint64(3), exempt.Count, "wrong count")
	assert.True(t, e.IsExempt(alpha), "flag not stored")

	err = service.Exempt(
		&admin.ExemptArguments{Caller: administrator, Owner: alpha, Exempt: false},
		&exempt,
	)
	assert.Nil(t, err, "wrong Exempt")
	assert.False(t, exempt.Exempt, "exemption not cleared")
	assert.Equal(t, uint64(3), exempt.Count, "wrong count")
}
