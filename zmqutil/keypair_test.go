// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/zmqutil"
)

const (
	publicHex  = "2b1a3f0a0bcbd3c4d1ed5e4d3c5a8f9c7e6b5a4d3c2b1a0f9e8d7c6b5a4f3e2d"
	privateHex = "0f1e2d3c4b5a69788796a5b4c3d2e1f00f1e2d3c4b5a69788796a5b4c3d2e1f0"
)

func TestParseKey(t *testing.T) {
	key, private, err := zmqutil.ParseKey("PUBLIC:" + publicHex + "\n")
	assert.Nil(t, err, "public")
	assert.False(t, private, "public reported as private")
	assert.Equal(t, 32, len(key), "public length")

	key, private, err = zmqutil.ParseKey("  PRIVATE:" + privateHex)
	assert.Nil(t, err, "private")
	assert.True(t, private, "private reported as public")
	assert.Equal(t, 32, len(key), "private length")

	_, _, err = zmqutil.ParseKey("PUBLIC:" + publicHex[2:])
	assert.Equal(t, fault.InvalidPublicKeyFile, err, "short public")

	_, _, err = zmqutil.ParseKey("PRIVATE:zz" + privateHex[2:])
	assert.Equal(t, fault.InvalidPrivateKeyFile, err, "bad hex")

	_, _, err = zmqutil.ParseKey(publicHex)
	assert.Equal(t, fault.InvalidPublicKeyFile, err, "untagged")
}

func TestReadKeyKinds(t *testing.T) {
	_, err := zmqutil.ReadPublicKey("PRIVATE:" + privateHex)
	assert.Equal(t, fault.InvalidPublicKeyFile, err, "private as public")

	_, err = zmqutil.ReadPrivateKey("PUBLIC:" + publicHex)
	assert.Equal(t, fault.InvalidPrivateKeyFile, err, "public as private")
}

func TestMakeKeyPair(t *testing.T) {
	dir, err := ioutil.TempDir("", "zmqutil")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	publicName := filepath.Join(dir, "publish.public")
	privateName := filepath.Join(dir, "publish.private")

	err = zmqutil.MakeKeyPair(publicName, privateName)
	if !assert.Nil(t, err, "make") {
		return
	}

	public, err := zmqutil.ReadPublicKeyFile(publicName)
	assert.Nil(t, err, "read public")
	assert.Equal(t, 32, len(public), "public length")

	private, err := zmqutil.ReadPrivateKeyFile(privateName)
	assert.Nil(t, err, "read private")
	assert.Equal(t, 32, len(private), "private length")

	err = zmqutil.MakeKeyPair(publicName, privateName)
	assert.Equal(t, fault.KeyFileAlreadyExists, err, "overwrite")
}
