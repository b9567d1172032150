// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault_test

import (
	"container/list"
	"math/rand"
	"testing"

	"github.com/bitmark-inc/unitd/fault"
	"github.com/bitmark-inc/unitd/registry"
	"github.com/bitmark-inc/unitd/vault"
)

func TestEmptyWithdraw(t *testing.T) {
	v := vault.New()
	_, err := v.WithdrawOldest()
	if fault.EmptyVault != err {
		t.Errorf("withdraw from empty vault allowed: %v", err)
	}
}

func TestFIFO(t *testing.T) {
	v := vault.New()
	for id := registry.TokenID(1); id <= 10; id += 1 {
		v.Deposit(id)
	}
	if 10 != v.Size() {
		t.Fatalf("size: %d  expected: 10", v.Size())
	}
	for expected := registry.TokenID(1); expected <= 10; expected += 1 {
		id, err := v.WithdrawOldest()
		if nil != err {
			t.Fatalf("withdraw error: %s", err)
		}
		if expected != id {
			t.Errorf("withdraw: %d  expected: %d", id, expected)
		}
	}
	if 0 != v.Size() {
		t.Errorf("size: %d  expected: 0", v.Size())
	}
}

// interleaved deposits and withdrawals must match a reference
// queue exactly, across enough operations to force compaction
func TestInterleavedAgainstReference(t *testing.T) {
	v := vault.New()
	reference := list.New()
	prng := rand.New(rand.NewSource(0x600dcafe))

	next := registry.TokenID(0)
	for step := 0; step < 20000; step += 1 {
		if 0 == reference.Len() || prng.Intn(2) == 0 {
			next += 1
			v.Deposit(next)
			reference.PushBack(next)
		} else {
			id, err := v.WithdrawOldest()
			if nil != err {
				t.Fatalf("step %d: withdraw error: %s", step, err)
			}
			expected := reference.Remove(reference.Front()).(registry.TokenID)
			if expected != id {
				t.Fatalf("step %d: withdraw: %d  expected: %d", step, id, expected)
			}
		}
		if uint64(reference.Len()) != v.Size() {
			t.Fatalf("step %d: size: %d  expected: %d", step, v.Size(), reference.Len())
		}
	}
}

func TestPutBack(t *testing.T) {
	v := vault.New()
	v.Deposit(1)
	v.Deposit(2)
	v.Deposit(3)

	id, _ := v.WithdrawOldest()
	if registry.TokenID(1) != id {
		t.Fatalf("withdraw: %d  expected: 1", id)
	}
	v.PutBack(id)

	// order must be exactly as before the withdrawal
	expected := []registry.TokenID{1, 2, 3}
	contents := v.Contents()
	if len(expected) != len(contents) {
		t.Fatalf("contents: %v  expected: %v", contents, expected)
	}
	for i, id := range expected {
		if contents[i] != id {
			t.Fatalf("contents: %v  expected: %v", contents, expected)
		}
	}

	// put back onto a never-withdrawn vault
	w := vault.New()
	w.Deposit(9)
	w.PutBack(8)
	id, _ = w.WithdrawOldest()
	if registry.TokenID(8) != id {
		t.Errorf("withdraw: %d  expected: 8", id)
	}
}

func TestDropNewest(t *testing.T) {
	v := vault.New()
	v.Deposit(1)
	v.Deposit(2)

	id, err := v.DropNewest()
	if nil != err {
		t.Fatalf("drop error: %s", err)
	}
	if registry.TokenID(2) != id {
		t.Errorf("drop: %d  expected: 2", id)
	}

	id, _ = v.WithdrawOldest()
	if registry.TokenID(1) != id {
		t.Errorf("withdraw: %d  expected: 1", id)
	}

	_, err = v.DropNewest()
	if fault.EmptyVault != err {
		t.Errorf("drop from empty vault allowed: %v", err)
	}
}
