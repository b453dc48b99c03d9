// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish_test

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/digest"
	"github.com/bitmark-inc/kittyd/engine"
	"github.com/bitmark-inc/kittyd/messagebus"
	"github.com/bitmark-inc/kittyd/publish"
)

const (
	testingDirName = "testing"
)

func TestMain(m *testing.M) {
	_ = os.RemoveAll(testingDirName)
	_ = os.Mkdir(testingDirName, 0700)

	_ = logger.Initialise(logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	})

	rc := m.Run()

	logger.Finalise()
	_ = os.RemoveAll(testingDirName)
	os.Exit(rc)
}

func makeAccount(b byte) *account.Account {
	publicKey := make([]byte, 32)
	for i := range publicKey {
		publicKey[i] = b
	}
	return &account.Account{Test: true, PublicKey: publicKey}
}

func TestEmit(t *testing.T) {
	queue := messagebus.New(5)
	e := publish.NewEmitter(queue)

	buyer := makeAccount(0x11)
	seller := makeAccount(0x22)
	id := digest.New([]byte("kitty"))

	e.Emit(engine.Event{
		Kind:    engine.Bought,
		Caller:  buyer,
		Other:   seller,
		KittyId: id,
		Price:   100,
	})

	if !assert.Equal(t, 1, queue.Len(), "queue length") {
		return
	}
	item := <-queue.Chan()
	assert.Equal(t, "bought", item.Command, "command")
	if !assert.Equal(t, 1, len(item.Parameters), "parameters") {
		return
	}

	var ev engine.Event
	err := json.Unmarshal(item.Parameters[0], &ev)
	assert.Nil(t, err, "decode")
	assert.Equal(t, engine.Bought, ev.Kind, "kind")
	assert.True(t, buyer.Equal(ev.Caller), "caller")
	assert.True(t, seller.Equal(ev.Other), "other")
	assert.Equal(t, id, ev.KittyId, "kitty id")
	assert.Equal(t, uint64(100), ev.Price, "price")
}

func TestEmitOmitsMissingOther(t *testing.T) {
	queue := messagebus.New(5)
	publish.NewEmitter(queue).Emit(engine.Event{
		Kind:    engine.Created,
		Caller:  makeAccount(0x11),
		KittyId: digest.New([]byte("kitty")),
	})

	item := <-queue.Chan()
	var fields map[string]interface{}
	err := json.Unmarshal(item.Parameters[0], &fields)
	assert.Nil(t, err, "decode")
	_, found := fields["other"]
	assert.False(t, found, "other present")
	assert.Equal(t, "created", fields["kind"], "kind")
}

func TestEmitDropsWhenFull(t *testing.T) {
	queue := messagebus.New(1)
	e := publish.NewEmitter(queue)

	for i := 0; i < 3; i += 1 {
		e.Emit(engine.Event{Kind: engine.Created, Caller: makeAccount(byte(i))})
	}

	assert.Equal(t, 1, queue.Len(), "queue length")
	item := <-queue.Chan()

	var ev engine.Event
	_ = json.Unmarshal(item.Parameters[0], &ev)
	assert.True(t, makeAccount(0).Equal(ev.Caller), "first event kept")
}
