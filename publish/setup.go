// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"sync"

	"github.com/bitmark-inc/kittyd/background"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/messagebus"
	"github.com/bitmark-inc/kittyd/zmqutil"
	"github.com/bitmark-inc/logger"
)

// Configuration - a block of configuration data
// this is read from a Lua configuration file
type Configuration struct {
	Broadcast  []string `gluamapper:"broadcast" json:"broadcast"`
	PrivateKey string   `gluamapper:"private_key" json:"private_key"`
	PublicKey  string   `gluamapper:"public_key" json:"public_key"`
	QueueSize  int      `gluamapper:"queue_size" json:"queue_size"`
}

// Publisher - the running broadcast processes
type Publisher struct {
	sync.Mutex

	log        *logger.L
	queue      *messagebus.Queue
	emitter    *Emitter
	brdc       broadcaster
	background *background.T
}

// New - start broadcasting on the configured addresses
func New(configuration *Configuration) (*Publisher, error) {
	log := logger.New("publish")
	log.Info("starting…")

	privateKey, err := zmqutil.ReadPrivateKeyFile(configuration.PrivateKey)
	if nil != err {
		log.Errorf("read private key file: %q  error: %s", configuration.PrivateKey, err)
		return nil, err
	}
	publicKey, err := zmqutil.ReadPublicKeyFile(configuration.PublicKey)
	if nil != err {
		log.Errorf("read public key file: %q  error: %s", configuration.PublicKey, err)
		return nil, err
	}

	queue := messagebus.New(configuration.QueueSize)

	p := &Publisher{
		log:     log,
		queue:   queue,
		emitter: NewEmitter(queue),
	}

	if err := p.brdc.initialise(queue, privateKey, publicKey, configuration.Broadcast); nil != err {
		return nil, err
	}

	log.Info("start background…")
	p.background = background.Start(background.Processes{&p.brdc}, nil)

	return p, nil
}

// Emitter - the event sink feeding this publisher
func (p *Publisher) Emitter() *Emitter {
	return p.emitter
}

// Close - stop all background tasks
func (p *Publisher) Close() error {
	p.Lock()
	defer p.Unlock()

	if nil == p.background {
		return fault.NotInitialised
	}

	p.log.Info("shutting down…")
	p.background.Stop()
	p.background = nil

	p.log.Info("finished")
	p.log.Flush()
	return nil
}
