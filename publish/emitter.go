// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"encoding/json"

	"github.com/bitmark-inc/kittyd/engine"
	"github.com/bitmark-inc/kittyd/messagebus"
	"github.com/bitmark-inc/logger"
)

// Emitter - queue each event as its kind and JSON body
type Emitter struct {
	log   *logger.L
	queue *messagebus.Queue
}

// NewEmitter - emitter writing to a queue
func NewEmitter(queue *messagebus.Queue) *Emitter {
	return &Emitter{
		log:   logger.New("emitter"),
		queue: queue,
	}
}

// Emit - never blocks, an event is dropped if the queue is full
func (e *Emitter) Emit(ev engine.Event) {
	data, err := json.Marshal(ev)
	if nil != err {
		e.log.Errorf("encode: %s  error: %s", ev, err)
		return
	}

	if err := e.queue.Send(string(ev.Kind), data); nil != err {
		e.log.Warnf("dropped: %s  error: %s", ev, err)
	}
}
