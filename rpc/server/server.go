// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/unitd/counter"
	"github.com/bitmark-inc/unitd/engine"
	"github.com/bitmark-inc/unitd/rpc/admin"
	"github.com/bitmark-inc/unitd/rpc/approval"
	"github.com/bitmark-inc/unitd/rpc/ledger"
	"github.com/bitmark-inc/unitd/rpc/node"
	"github.com/bitmark-inc/unitd/rpc/transfer"
)

// Create - register all services on a fresh rpc server
func Create(log *logger.L, version string, rpcCount *counter.Counter, e *engine.Engine) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(ledger.New(log, e))
	_ = server.Register(transfer.New(log, e))
	_ = server.Register(approval.New(log, e))
	_ = server.Register(admin.New(log, e))
	_ = server.Register(node.New(log, start, version, rpcCount, e))

	return server
}
