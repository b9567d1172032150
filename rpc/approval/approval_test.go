// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package approval_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/unitd/account"
	"github.com/bitmark-inc/unitd/engine"
	"github.com/bitmark-inc/unitd/fault"
	"github.com/bitmark-inc/unitd/rpc/approval"
	"github.com/bitmark-inc/unitd/rpc/fixtures"
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

func newTestApproval(t *testing.T) (*approval.Approval, *engine.Engine) {
	e, err := engine.New(engine.Config{
		Decimals: 2,
		Gate:     testGate{},
	})
	assert.Nil(t, err, "wrong engine.New")

	err = e.Issue(administrator, alpha, 300)
	assert.Nil(t, err, "wrong Issue")

	return approval.New(logger.New(fixtures.LogCategory), e), e
}

func TestGrantAllowance(t *testing.T) {
	service, e := newTestApproval(t)

	var grant approval.GrantReply
	err := service.Grant(
		&approval.GrantArguments{Caller: alpha, Spender: beta, AmountOrID: 500},
		&grant,
	)
	assert.Nil(t, err, "wrong Grant")
	assert.Equal(t, uint64(500), grant.Allowance, "wrong allowance")
	assert.False(t, grant.Unlimited, "wrong unlimited flag")
	assert.Equal(t, uint64(500), e.Allowance(alpha, beta), "allowance not stored")
}

func TestGrantUnlimited(t *testing.T) {
	service, _ := newTestApproval(t)

	var grant approval.GrantReply
	err := service.Grant(
		&approval.GrantArguments{Caller: alpha, Spender: beta, AmountOrID: engine.UnlimitedAllowance},
		&grant,
	)
	assert.Nil(t, err, "wrong Grant")
	assert.True(t, grant.Unlimited, "wrong unlimited flag")
}

func TestGrantDiscrete(t *testing.T) {
	service, _ := newTestApproval(t)

	var grant approval.GrantReply
	err := service.Grant(
		&approval.GrantArguments{Caller: alpha, Spender: beta, AmountOrID: 2},
		&grant,
	)
	assert.Nil(t, err, "wrong Grant")

	var approved approval.ApprovedReply
	err = service.Approved(&approval.ApprovedArguments{ID: 2}, &approved)
	assert.Nil(t, err, "wrong Approved")
	assert.Equal(t, beta, approved.Spender, "wrong spender")

	err = service.Approved(&approval.ApprovedArguments{ID: 99}, &approved)
	assert.Equal(t, fault.NotFound, err, "wrong dead id error")
}

func TestGrantUnauthorized(t *testing.T) {
	service, _ := newTestApproval(t)

	var grant approval.GrantReply
	err := service.Grant(
		&approval.GrantArguments{Caller: beta, Spender: beta, AmountOrID: 2},
		&grant,
	)
	assert.Equal(t, fault.Unauthorized, err, "wrong authorization error")
}

func TestOperator(t *testing.T) {
	service, e := newTestApproval(t)

	var reply approval.OperatorReply
	err := service.Operator(
		&approval.OperatorArguments{Caller: alpha, Operator: beta, Approved: true},
		&reply,
	)
	assert.Nil(t, err, "wrong Operator")
	assert.True(t, reply.Approved, "operator not granted")
	assert.True(t, e.IsOperator(alpha, beta), "operator not stored")

	err = service.Operator(
		&approval.OperatorArguments{Caller: alpha, Operator: beta, Approved: false},
		&reply,
	)
	assert.Nil(t, err, "wrong Operator")
	assert.False(t, reply.Approved, "operator not revoked")

	var status approval.OperatorReply
	err = service.IsOperator(&approval.IsOperatorArguments{Owner: alpha, Operator: beta}, &status)
	assert.Nil(t, err, "wrong IsOperator")
	assert.False(t, status.Approved, "wrong operator status")
}

func TestAllowanceQuery(t *testing.T) {
	service, e := newTestApproval(t)

	err := e.Approve(alpha, beta, 750)
	assert.Nil(t, err, "wrong Approve")

	var grant approval.GrantReply
	err = service.Allowance(&approval.AllowanceArguments{Owner: alpha, Spender: beta}, &grant)
	assert.Nil(t, err, "wrong Allowance")
	assert.Equal(t, uint64(750), grant.Allowance, "wrong allowance")
}
