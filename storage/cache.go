// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"time"

	cache "github.com/patrickmn/go-cache"
)

// Cache - overlay of staged writes not yet committed to the
// database
type Cache interface {
	Get(string) ([]byte, bool)
	Set(dbOperation, string, []byte)
	Clear()
}

type dbOperation int

const (
	dbPut dbOperation = iota
	dbDelete
)

const (
	defaultTimeout    = 1 * time.Minute
	defaultExpiration = 2 * time.Minute
)

type stagedEntry struct {
	op    dbOperation
	value []byte
}

type dbCache struct {
	entries *cache.Cache
}

func newCache() *dbCache {
	return &dbCache{
		entries: cache.New(defaultTimeout, defaultExpiration),
	}
}

// a staged delete reads as not found
func (c *dbCache) Get(key string) ([]byte, bool) {
	obj, found := c.entries.Get(key)
	if !found {
		return nil, false
	}

	entry := obj.(stagedEntry)
	if dbDelete == entry.op {
		return nil, false
	}
	return entry.value, true
}

func (c *dbCache) Set(op dbOperation, key string, value []byte) {
	c.entries.Set(key, stagedEntry{op: op, value: value}, defaultExpiration)
}

func (c *dbCache) Clear() {
	c.entries.Flush()
}
