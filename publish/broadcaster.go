// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/kittyd/messagebus"
	"github.com/bitmark-inc/kittyd/util"
	"github.com/bitmark-inc/kittyd/zmqutil"
	"github.com/bitmark-inc/logger"
)

const (
	broadcasterZapDomain = "broadcaster"
)

type broadcaster struct {
	log     *logger.L
	queue   *messagebus.Queue
	socket4 *zmq.Socket
	socket6 *zmq.Socket
}

// initialise the broadcaster
func (brdc *broadcaster) initialise(queue *messagebus.Queue, privateKey []byte, publicKey []byte, broadcast []string) error {

	log := logger.New("broadcaster")
	brdc.log = log
	brdc.queue = queue

	log.Info("initialising…")

	c := make([]*util.Connection, len(broadcast))
	for i, address := range broadcast {
		conn, err := util.NewConnection(address)
		if nil != err {
			log.Errorf("broadcast[%d]: %q  error: %s", i, address, err)
			return err
		}
		c[i] = conn
	}

	err := zmqutil.StartAuthentication()
	if nil != err {
		log.Errorf("zmq authentication error: %s", err)
		return err
	}

	brdc.socket4, brdc.socket6, err = zmqutil.NewBind(log, zmq.PUB, broadcasterZapDomain, privateKey, publicKey, c)
	if nil != err {
		log.Errorf("bind error: %s", err)
		return err
	}

	return nil
}

// Run - send queued events until shutdown
func (brdc *broadcaster) Run(args interface{}, shutdown <-chan struct{}) {

	log := brdc.log

	log.Info("starting…")

	queue := brdc.queue.Chan()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case item := <-queue:
			log.Debugf("sending: %s  data: %s", item.Command, item.Parameters)
			brdc.process(brdc.socket4, &item)
			brdc.process(brdc.socket6, &item)
		}
	}
	if nil != brdc.socket4 {
		_ = brdc.socket4.Close()
	}
	if nil != brdc.socket6 {
		_ = brdc.socket6.Close()
	}
	log.Info("stopped")
}

// send one message as a multipart frame
//
// a PUB socket drops rather than blocks so an error here is only logged
func (brdc *broadcaster) process(socket *zmq.Socket, item *messagebus.Message) {
	if nil == socket {
		return
	}

	flags := zmq.SNDMORE | zmq.DONTWAIT
	if 0 == len(item.Parameters) {
		flags = zmq.DONTWAIT
	}
	if _, err := socket.Send(item.Command, flags); nil != err {
		brdc.log.Warnf("send: %s  error: %s", item.Command, err)
		return
	}

	last := len(item.Parameters) - 1
	for i, p := range item.Parameters {
		flags := zmq.SNDMORE | zmq.DONTWAIT
		if i == last {
			flags = zmq.DONTWAIT
		}
		if _, err := socket.SendBytes(p, flags); nil != err {
			brdc.log.Warnf("send: %s  part: %d  error: %s", item.Command, i, err)
			return
		}
	}
}
