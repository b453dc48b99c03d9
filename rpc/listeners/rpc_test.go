// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners_test

import (
	"crypto/tls"
	"fmt"
	"math/rand"
	"net/rpc"
	"net/rpc/jsonrpc"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kittyd/counter"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/rpc/certificate"
	"github.com/bitmark-inc/kittyd/rpc/fixtures"
	"github.com/bitmark-inc/kittyd/rpc/listeners"
	"github.com/bitmark-inc/logger"
)

type Add struct{}
type AddArg struct {
	A, B int
}

func (a Add) Add(arg *AddArg, reply *int) error {
	*reply = arg.A + arg.B
	return nil
}

func TestRpcListenerServe(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	port := rand.Intn(30000) + 30000
	listen := fmt.Sprintf("127.0.0.1:%d", port)
	con := listeners.RPCConfiguration{
		MaximumConnections: 5,
		Bandwidth:          10000000,
		Listen:             []string{listen},
	}

	count := counter.Counter(0)

	s := rpc.NewServer()
	err := s.Register(Add{})
	if err != nil {
		t.Fatalf("register with error: %s", err)
	}

	cer, key := fixtures.CertificatePair()
	tlsCertificate, fin, err := certificate.Get(logger.New(fixtures.LogCategory), "test", cer, key)
	if err != nil {
		t.Fatalf("get certificate with error: %s", err)
	}

	l, err := listeners.NewRPC(&con, logger.New(fixtures.LogCategory), &count, s, tlsCertificate, fin)
	if !assert.Nil(t, err, "wrong NewRPC") {
		return
	}

	err = l.Serve()
	if !assert.Nil(t, err, "wrong Serve") {
		return
	}
	defer l.Close()

	tlsConfig := tls.Config{
		InsecureSkipVerify: true,
	}

	c, err := tls.Dial("tcp", listen, &tlsConfig)
	if err != nil {
		t.Fatalf("dial with error: %s", err)
	}

	arg := AddArg{
		A: 2,
		B: 5,
	}
	var reply int

	client := jsonrpc.NewClient(c)
	defer client.Close()

	err = client.Call("Add.Add", &arg, &reply)
	assert.Nil(t, err, "wrong client Call")
	assert.Equal(t, arg.A+arg.B, reply, "wrong result")
}

func TestRpcListenerConfiguration(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	valid := listeners.RPCConfiguration{
		MaximumConnections: 1,
		Bandwidth:          10000000,
		Listen:             []string{"127.0.0.1:2130"},
	}

	tooFewConnections := valid
	tooFewConnections.MaximumConnections = 0

	tooLittleBandwidth := valid
	tooLittleBandwidth.Bandwidth = 100

	noListen := valid
	noListen.Listen = []string{}

	badListen := valid
	badListen.Listen = []string{"localhost:2130"}

	testData := []struct {
		configuration listeners.RPCConfiguration
		err           error
	}{
		{valid, nil},
		{tooFewConnections, fault.MissingParameters},
		{tooLittleBandwidth, fault.MissingParameters},
		{noListen, fault.MissingParameters},
		{badListen, fault.InvalidIPAddress},
	}

	for i, item := range testData {
		count := counter.Counter(0)
		_, err := listeners.NewRPC(
			&item.configuration,
			logger.New(fixtures.LogCategory),
			&count,
			rpc.NewServer(),
			&tls.Config{},
			[32]byte{},
		)
		assert.Equal(t, item.err, err, "%d: wrong error", i)
	}
}
