// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kittyd/fault"
)

const (
	testingDirName = "testing"
)

func TestMain(m *testing.M) {
	_ = os.RemoveAll(testingDirName)
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)

	rc := m.Run()

	logger.Finalise()
	_ = os.RemoveAll(testingDirName)
	os.Exit(rc)
}

func setupTestDatabase(t *testing.T) *Database {
	d, err := OpenMemory()
	if nil != err {
		t.Fatalf("open memory database error: %s", err)
	}
	return d
}

func TestPoolsAreInitialised(t *testing.T) {
	d := setupTestDatabase(t)
	defer d.Close()

	assert.Equal(t, byte('K'), d.Pool.Kitties.prefix, "kitties prefix")
	assert.Equal(t, []byte{'B'}, d.Pool.AllPositions.limit, "all positions limit")
	assert.Equal(t, d, d.Pool.Counts.database, "database link")
}

func TestOpenFileAndReopen(t *testing.T) {
	name := filepath.Join(testingDirName, "reopen.leveldb")

	d, err := Open(name, ReadWrite)
	assert.Nil(t, err, "open read write")

	trx, err := d.Begin()
	assert.Nil(t, err, "begin")
	trx.PutN(d.Pool.TestData, []byte("n"), 42)
	assert.Nil(t, trx.Commit(), "commit")
	d.Close()

	d, err = Open(name, ReadOnly)
	assert.Nil(t, err, "open read only")
	defer d.Close()

	n, found := d.Pool.TestData.GetN([]byte("n"))
	assert.True(t, found, "value lost")
	assert.Equal(t, uint64(42), n, "wrong value")
}

func TestOpenNewerDatabaseFails(t *testing.T) {
	name := filepath.Join(testingDirName, "newer.leveldb")

	db, _, err := getDB(name, ReadWrite)
	assert.Nil(t, err, "create database")
	assert.Nil(t, putVersion(db, currentVersion+1), "put version")
	db.Close()

	_, err = Open(name, ReadWrite)
	assert.Equal(t, fault.DatabaseIsNewer, err, "newer database accepted")
}

func TestReadOnlyMissingDatabaseFails(t *testing.T) {
	_, err := Open(filepath.Join(testingDirName, "missing.leveldb"), ReadOnly)
	assert.NotNil(t, err, "missing database opened")
}
