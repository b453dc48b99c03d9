// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate_test

import (
	"crypto/tls"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/kittyd/rpc/certificate"
	"github.com/bitmark-inc/kittyd/rpc/fixtures"
	"github.com/bitmark-inc/logger"
)

func TestGet(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	cer, key := fixtures.CertificatePair()

	tlsConfig, fingerprint, err := certificate.Get(
		logger.New(fixtures.LogCategory),
		"test",
		cer,
		key,
	)
	assert.Nil(t, err, "wrong Get")

	pair, _ := tls.X509KeyPair([]byte(cer), []byte(key))

	assert.Equal(t, sha3.Sum256(pair.Certificate[0]), fingerprint, "wrong fingerprint")
	assert.Equal(t, pair.Certificate, tlsConfig.Certificates[0].Certificate, "wrong config")
}

func TestGetBadPair(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	cer, _ := fixtures.CertificatePair()
	_, otherKey := fixtures.CertificatePair()

	_, _, err := certificate.Get(logger.New(fixtures.LogCategory), "test", cer, otherKey)
	assert.NotNil(t, err, "mismatched key accepted")
}

func TestGetFiles(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	dir, err := ioutil.TempDir("", "certificate")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	cer, key := fixtures.CertificatePair()
	cerFile := filepath.Join(dir, "rpc.crt")
	keyFile := filepath.Join(dir, "rpc.key")
	_ = ioutil.WriteFile(cerFile, []byte(cer), 0600)
	_ = ioutil.WriteFile(keyFile, []byte(key), 0600)

	_, fromFiles, err := certificate.GetFiles(logger.New(fixtures.LogCategory), "test", cerFile, keyFile)
	assert.Nil(t, err, "files")

	_, fromData, _ := certificate.Get(logger.New(fixtures.LogCategory), "test", cer, key)
	assert.Equal(t, fromData, fromFiles, "fingerprints differ")

	_, _, err = certificate.GetFiles(logger.New(fixtures.LogCategory), "test", filepath.Join(dir, "none"), keyFile)
	assert.True(t, os.IsNotExist(err), "missing file: %v", err)
}
