// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kittyd/util"
)

func TestEnsureAbsolute(t *testing.T) {
	assert.Equal(t, "/var/kittyd/data", util.EnsureAbsolute("/var/kittyd", "data"), "relative")
	assert.Equal(t, "/tmp/data", util.EnsureAbsolute("/var/kittyd", "/tmp/data"), "absolute")
	assert.Equal(t, "/var/data", util.EnsureAbsolute("/var/kittyd", "../data"), "parent")
}

func TestWriteNewFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "util")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	name := filepath.Join(dir, "file")
	assert.False(t, util.EnsureFileExists(name), "exists before write")

	err = util.WriteNewFile(name, []byte("data"), 0600)
	assert.Nil(t, err, "write")
	assert.True(t, util.EnsureFileExists(name), "missing after write")

	err = util.WriteNewFile(name, []byte("other"), 0600)
	assert.True(t, os.IsExist(err), "overwrite allowed: %v", err)

	data, _ := ioutil.ReadFile(name)
	assert.Equal(t, "data", string(data), "content")
}
