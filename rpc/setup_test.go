// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc_test

import (
	"crypto/tls"
	"fmt"
	"io/ioutil"
	"math/rand"
	"net/rpc/jsonrpc"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kittyd/chain"
	"github.com/bitmark-inc/kittyd/engine"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/identifier"
	"github.com/bitmark-inc/kittyd/ledger"
	"github.com/bitmark-inc/kittyd/rpc"
	"github.com/bitmark-inc/kittyd/rpc/fixtures"
	"github.com/bitmark-inc/kittyd/rpc/listeners"
	"github.com/bitmark-inc/kittyd/rpc/node"
	"github.com/bitmark-inc/kittyd/storage"
)

func TestServerStartAndClose(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	dir, err := ioutil.TempDir("", "kittyd-rpc")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	cer, key := fixtures.CertificatePair()
	certificateFile := filepath.Join(dir, "rpc.crt")
	keyFile := filepath.Join(dir, "rpc.key")
	_ = ioutil.WriteFile(certificateFile, []byte(cer), 0600)
	_ = ioutil.WriteFile(keyFile, []byte(key), 0600)

	db, err := storage.OpenMemory()
	if nil != err {
		t.Fatalf("open database error: %s", err)
	}
	defer db.Close()

	l := ledger.New(db.Pool.Balances)
	e := engine.New(db, identifier.NewSeeded([]byte("setup")), l)
	faucet := ledger.NewFaucet(l, db, e, 0)

	listen := fmt.Sprintf("127.0.0.1:%d", rand.Intn(30000)+30000)
	configuration := listeners.RPCConfiguration{
		MaximumConnections: 10,
		Bandwidth:          25000000,
		Listen:             []string{listen},
		Certificate:        certificateFile,
		PrivateKey:         keyFile,
	}

	s, err := rpc.New(&configuration, "0.1", chain.Testing, e, faucet)
	if !assert.Nil(t, err, "wrong New") {
		return
	}

	conn, err := tls.Dial("tcp", listen, &tls.Config{InsecureSkipVerify: true})
	if !assert.Nil(t, err, "wrong dial") {
		_ = s.Close()
		return
	}
	client := jsonrpc.NewClient(conn)

	var reply node.InfoReply
	err = client.Call("Node.Info", &node.InfoArguments{}, &reply)
	assert.Nil(t, err, "wrong Node.Info")
	assert.Equal(t, chain.Testing, reply.Chain, "wrong chain")
	assert.Equal(t, uint64(1), reply.RPCs, "wrong connection count")

	_ = client.Close()

	assert.Nil(t, s.Close(), "wrong Close")
	assert.Equal(t, fault.NotInitialised, s.Close(), "wrong second Close")
}

func TestServerMissingCertificate(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	configuration := listeners.RPCConfiguration{
		MaximumConnections: 10,
		Bandwidth:          25000000,
		Listen:             []string{"127.0.0.1:2130"},
		Certificate:        "/nonexistent/rpc.crt",
		PrivateKey:         "/nonexistent/rpc.key",
	}

	_, err := rpc.New(&configuration, "0.1", chain.Testing, nil, nil)
	assert.NotNil(t, err, "missing certificate accepted")
}
