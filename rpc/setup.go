// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"sync"

	"github.com/bitmark-inc/kittyd/counter"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/rpc/certificate"
	"github.com/bitmark-inc/kittyd/rpc/kitties"
	"github.com/bitmark-inc/kittyd/rpc/listeners"
	"github.com/bitmark-inc/kittyd/rpc/server"
	"github.com/bitmark-inc/logger"
)

const (
	tlsName = "client_rpc"
)

// Server - the running client RPC listeners
type Server struct {
	sync.Mutex

	log      *logger.L
	count    counter.Counter
	listener listeners.Listener
	running  bool
}

// New - load the certificate and start listening
func New(configuration *listeners.RPCConfiguration, version string, chainName string, registry server.Registry, funds kitties.Funds) (*Server, error) {

	log := logger.New("rpc")
	log.Info("starting…")

	tlsConfig, certificateFingerprint, err := certificate.GetFiles(log, tlsName, configuration.Certificate, configuration.PrivateKey)
	if nil != err {
		return nil, err
	}

	s := &Server{
		log: log,
	}

	rpcListener, err := listeners.NewRPC(
		configuration,
		log,
		&s.count,
		server.Create(log, version, chainName, registry, funds, &s.count),
		tlsConfig,
		certificateFingerprint,
	)
	if nil != err {
		return nil, err
	}
	err = rpcListener.Serve()
	if nil != err {
		return nil, err
	}

	s.listener = rpcListener
	s.running = true

	return s, nil
}

// Connections - number of open client connections
func (s *Server) Connections() uint64 {
	return s.count.Uint64()
}

// Close - stop all listeners
func (s *Server) Close() error {
	s.Lock()
	defer s.Unlock()

	if !s.running {
		return fault.NotInitialised
	}

	s.log.Info("shutting down…")
	err := s.listener.Close()
	s.running = false

	s.log.Info("finished")
	s.log.Flush()

	return err
}
