// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/unitd/fault"
	"github.com/bitmark-inc/unitd/storage"
)

func TestPutGet(t *testing.T) {
	setup(t)
	defer teardown(t)

	commitElements(t, map[string]string{
		"key-one": "data-one",
		"key-two": "data-two",
	})

	assert.Equal(t, []byte("data-one"), storage.Pool.TestData.Get([]byte("key-one")), "wrong value")
	assert.True(t, storage.Pool.TestData.Has([]byte("key-two")), "missing key")
	assert.Nil(t, storage.Pool.TestData.Get([]byte("/nonexistent")), "phantom value")
}

func TestStagedWritesVisibleBeforeCommit(t *testing.T) {
	setup(t)
	defer teardown(t)

	err := storage.Begin()
	assert.Nil(t, err, "begin error")

	storage.Pool.TestData.Put([]byte("staged"), []byte("value"))

	// visible through the overlay before commit
	assert.Equal(t, []byte("value"), storage.Pool.TestData.Get([]byte("staged")), "staged write invisible")

	// a second begin while staging must fail
	err = storage.Begin()
	assert.Equal(t, fault.TransactionInUse, err, "nested begin allowed")

	storage.Abort()

	// discarded by abort
	assert.Nil(t, storage.Pool.TestData.Get([]byte("staged")), "aborted write survived")

	// staging is available again
	err = storage.Begin()
	assert.Nil(t, err, "begin after abort error")
	assert.Nil(t, storage.Commit(), "commit error")
}

func TestDelete(t *testing.T) {
	setup(t)
	defer teardown(t)

	commitElements(t, map[string]string{
		"key-one": "data-one",
		"key-two": "data-two",
	})

	err := storage.Begin()
	assert.Nil(t, err, "begin error")
	storage.Pool.TestData.Delete([]byte("key-one"))
	assert.Nil(t, storage.Commit(), "commit error")

	assert.Nil(t, storage.Pool.TestData.Get([]byte("key-one")), "deleted key survived")
	assert.Equal(t, []byte("data-two"), storage.Pool.TestData.Get([]byte("key-two")), "wrong key deleted")
}

func TestGetN(t *testing.T) {
	setup(t)
	defer teardown(t)

	err := storage.Begin()
	assert.Nil(t, err, "begin error")
	storage.Pool.TestData.PutN([]byte("counter"), 987654321)
	assert.Nil(t, storage.Commit(), "commit error")

	n, ok := storage.Pool.TestData.GetN([]byte("counter"))
	assert.True(t, ok, "counter not found")
	assert.Equal(t, uint64(987654321), n, "wrong counter value")

	_, ok = storage.Pool.TestData.GetN([]byte("/nonexistent"))
	assert.False(t, ok, "phantom counter")
}

func TestCursor(t *testing.T) {
	setup(t)
	defer teardown(t)

	commitElements(t, map[string]string{
		"key-one":   "data-one",
		"key-two":   "data-two",
		"key-three": "data-three",
	})

	// keys arrive in lexicographic order
	expected := []string{"key-one", "key-three", "key-two"}

	cursor := storage.Pool.TestData.NewFetchCursor()
	elements, err := cursor.Fetch(2)
	assert.Nil(t, err, "fetch error")
	assert.Equal(t, 2, len(elements), "wrong element count")

	rest, err := cursor.Fetch(10)
	assert.Nil(t, err, "fetch error")
	assert.Equal(t, 1, len(rest), "cursor did not advance")

	keys := []string{}
	for _, e := range append(elements, rest...) {
		keys = append(keys, string(e.Key))
	}
	assert.Equal(t, expected, keys, "wrong key order")

	// Map sees the full range again from a fresh cursor
	count := 0
	err = storage.Pool.TestData.NewFetchCursor().Map(func(key []byte, value []byte) error {
		count += 1
		return nil
	})
	assert.Nil(t, err, "map error")
	assert.Equal(t, 3, count, "wrong map count")
}

func TestLastElement(t *testing.T) {
	setup(t)
	defer teardown(t)

	_, found := storage.Pool.TestData.LastElement()
	assert.False(t, found, "element in empty pool")

	commitElements(t, map[string]string{
		"key-one": "data-one",
		"key-two": "data-two",
	})

	element, found := storage.Pool.TestData.LastElement()
	assert.True(t, found, "no last element")
	assert.Equal(t, []byte("key-two"), element.Key, "wrong last element")

	// pools do not leak into each other
	_, found = storage.Pool.Balances.LastElement()
	assert.False(t, found, "pool prefix leak")
}

func TestReopen(t *testing.T) {
	setup(t)

	commitElements(t, map[string]string{
		"persistent": "value",
	})

	storage.Finalise()

	err := storage.Initialise(databaseFileName, false)
	assert.Nil(t, err, "reinitialise error")
	defer teardown(t)

	assert.Equal(t, []byte("value"), storage.Pool.TestData.Get([]byte("persistent")), "value lost on reopen")
}

func TestDoubleInitialise(t *testing.T) {
	setup(t)
	defer teardown(t)

	err := storage.Initialise(databaseFileName, false)
	assert.Equal(t, fault.AlreadyInitialised, err, "double initialise allowed")
}
