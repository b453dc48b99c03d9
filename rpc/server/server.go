// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/kittyd/chain"
	"github.com/bitmark-inc/kittyd/counter"
	"github.com/bitmark-inc/kittyd/rpc/kitties"
	"github.com/bitmark-inc/kittyd/rpc/node"
	"github.com/bitmark-inc/logger"
)

// Registry - everything the registered services read or change
type Registry interface {
	kitties.Registry
	node.Totals
}

// Create - an RPC server with every service registered
func Create(log *logger.L, version string, chainName string, registry Registry, funds kitties.Funds, rpcCount *counter.Counter) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(kitties.New(log, registry, funds, chain.IsTesting(chainName)))
	_ = server.Register(node.New(log, registry, start, version, chainName, rpcCount))

	return server
}
