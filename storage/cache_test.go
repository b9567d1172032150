// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"bytes"
	"testing"
)

func TestCacheWriteThenRead(t *testing.T) {
	c := newCache()

	key := "test"
	expected := []byte{'a', 'b', 'c', 'd'}

	if actual, found := c.Get(key); found {
		t.Errorf("key %q already exists with value %v", key, actual)
	}

	c.Set(dbPut, key, expected)

	actual, found := c.Get(key)
	if !found || !bytes.Equal(expected, actual) {
		t.Errorf("key %q: %v  expected: %v", key, actual, expected)
	}
}

func TestCacheDeleteReadsAsMissing(t *testing.T) {
	c := newCache()

	key := "test"
	c.Set(dbPut, key, []byte{'a'})
	c.Set(dbDelete, key, nil)

	if actual, found := c.Get(key); found {
		t.Errorf("deleted key %q still present with value %v", key, actual)
	}
}

func TestCacheClear(t *testing.T) {
	c := newCache()

	c.Set(dbPut, "one", []byte{'1'})
	c.Set(dbPut, "two", []byte{'2'})
	c.Clear()

	if _, found := c.Get("one"); found {
		t.Errorf("cache not cleared")
	}
}
