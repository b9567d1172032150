// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/bitmark-inc/unitd/fault"
)

var (
	errAccessOne   = fault.AccessError("access one")
	errAccessTwo   = fault.AccessError("access two")
	errExistsOne   = fault.ExistsError("exists one")
	errExistsTwo   = fault.ExistsError("exists two")
	errInvalidOne  = fault.InvalidError("invalid one")
	errInvalidTwo  = fault.InvalidError("invalid two")
	errLengthOne   = fault.LengthError("length one")
	errLengthTwo   = fault.LengthError("length two")
	errNotFoundOne = fault.NotFoundError("not found one")
	errNotFoundTwo = fault.NotFoundError("not found two")
	errProcessOne  = fault.ProcessError("process one")
	errProcessTwo  = fault.ProcessError("process two")
)

// test that the various error classes can be distinguished
func TestErrorClasses(t *testing.T) {
	errorList := []struct {
		err      error
		access   bool
		exists   bool
		invalid  bool
		length   bool
		notFound bool
		process  bool
	}{
		{errAccessOne, true, false, false, false, false, false},
		{errAccessTwo, true, false, false, false, false, false},
		{errExistsOne, false, true, false, false, false, false},
		{errExistsTwo, false, true, false, false, false, false},
		{errInvalidOne, false, false, true, false, false, false},
		{errInvalidTwo, false, false, true, false, false, false},
		{errLengthOne, false, false, false, true, false, false},
		{errLengthTwo, false, false, false, true, false, false},
		{errNotFoundOne, false, false, false, false, true, false},
		{errNotFoundTwo, false, false, false, false, true, false},
		{errProcessOne, false, false, false, false, false, true},
		{errProcessTwo, false, false, false, false, false, true},
		{fault.InsufficientBalance, false, false, true, false, false, false},
		{fault.EmptyVault, false, false, false, false, true, false},
		{fault.ReentrantCall, false, false, false, false, false, true},
		{fault.Unauthorized, true, false, false, false, false, false},
		{fault.AlreadyExists, false, true, false, false, false, false},
		{fault.IndexOutOfBounds, false, false, false, true, false, false},
	}

	for i, item := range errorList {
		if fault.IsErrAccess(item.err) != item.access {
			t.Errorf("%d: access classification wrong for: %v", i, item.err)
		}
		if fault.IsErrExists(item.err) != item.exists {
			t.Errorf("%d: exists classification wrong for: %v", i, item.err)
		}
		if fault.IsErrInvalid(item.err) != item.invalid {
			t.Errorf("%d: invalid classification wrong for: %v", i, item.err)
		}
		if fault.IsErrLength(item.err) != item.length {
			t.Errorf("%d: length classification wrong for: %v", i, item.err)
		}
		if fault.IsErrNotFound(item.err) != item.notFound {
			t.Errorf("%d: not found classification wrong for: %v", i, item.err)
		}
		if fault.IsErrProcess(item.err) != item.process {
			t.Errorf("%d: process classification wrong for: %v", i, item.err)
		}
	}
}

// ensure that errors compare as equal only to themselves
func TestErrorIdentity(t *testing.T) {
	if errAccessOne == errAccessTwo {
		t.Errorf("errors with different text compare as equal")
	}
	if fault.AccessError("access one") != errAccessOne {
		t.Errorf("errors with identical text and class do not compare as equal")
	}
	var e error = errInvalidOne
	if e == error(errLengthOne) {
		t.Errorf("errors of different classes compare as equal")
	}
}
