// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package engine_test

import (
	"testing"

	"github.com/bitmark-inc/unitd/account"
	"github.com/bitmark-inc/unitd/fault"
)

// the single approval entry point dispatches on whether the value
// names a live id
func TestApproveDispatch(t *testing.T) {
	e := newTestEngine(t, nil)
	issue(t, e, alpha, 300) // ids 1..3

	// a live id: single-spender approval
	if err := e.Approve(alpha, gamma, 2); nil != err {
		t.Fatalf("approve error: %s", err)
	}
	if spender, _ := e.Approved(2); gamma != spender {
		t.Errorf("approved spender: %v  expected: %v", spender, gamma)
	}
	if 0 != e.Allowance(alpha, gamma) {
		t.Errorf("allowance set by discrete approval: %d", e.Allowance(alpha, gamma))
	}

	// outside the id range: fractional allowance
	if err := e.Approve(alpha, gamma, 500); nil != err {
		t.Fatalf("approve error: %s", err)
	}
	if 500 != e.Allowance(alpha, gamma) {
		t.Errorf("allowance: %d  expected: 500", e.Allowance(alpha, gamma))
	}
	if spender, _ := e.Approved(2); gamma != spender {
		t.Errorf("fractional approval disturbed the discrete one")
	}
}

func TestApproveDiscreteAuthorization(t *testing.T) {
	e := newTestEngine(t, nil)
	issue(t, e, alpha, 300)

	// only the owner or an operator may approve an id
	err := e.Approve(beta, gamma, 1)
	if fault.Unauthorized != err {
		t.Fatalf("foreign approval allowed: %v", err)
	}

	if err := e.SetApprovalForAll(alpha, beta, true); nil != err {
		t.Fatalf("set approval for all error: %s", err)
	}
	if err := e.Approve(beta, gamma, 1); nil != err {
		t.Fatalf("operator approval error: %s", err)
	}
	if spender, _ := e.Approved(1); gamma != spender {
		t.Errorf("approved spender: %v  expected: %v", spender, gamma)
	}

	// approving the null spender clears the record
	if err := e.Approve(alpha, account.Nil, 1); nil != err {
		t.Fatalf("clearing approval error: %s", err)
	}
	if spender, _ := e.Approved(1); account.Nil != spender {
		t.Errorf("approval not cleared: %v", spender)
	}
}

// an id destroyed by retirement is no longer approvable and its
// former numeric value falls through to the allowance path
func TestApproveBurnedID(t *testing.T) {
	e := newTestEngine(t, nil)
	issue(t, e, alpha, 300)
	if err := e.Retire(admin, alpha, 300); nil != err {
		t.Fatalf("retire error: %s", err)
	}

	if err := e.Approve(alpha, gamma, 2); nil != err {
		t.Fatalf("approve error: %s", err)
	}
	if 2 != e.Allowance(alpha, gamma) {
		t.Errorf("allowance: %d  expected: 2", e.Allowance(alpha, gamma))
	}
	if spender, err := e.Approved(2); fault.NotFound != err {
		t.Errorf("burned id still approvable: %v %v", spender, err)
	}
}

func TestSetApprovalForAllErrors(t *testing.T) {
	e := newTestEngine(t, nil)

	err := e.SetApprovalForAll(alpha, account.Nil, true)
	if fault.InvalidRecipient != err {
		t.Errorf("null operator allowed: %v", err)
	}

	if e.IsOperator(alpha, beta) {
		t.Errorf("unset operator reported")
	}
}
