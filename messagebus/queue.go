// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"github.com/bitmark-inc/kittyd/fault"
)

// DefaultQueueSize - capacity used when none is given
const DefaultQueueSize = 1000

// Message - a command and its parameters
type Message struct {
	Command    string
	Parameters [][]byte
}

// Queue - a bounded single consumer queue
type Queue struct {
	c chan Message
}

// New - create a queue, a size below one uses the default
func New(size int) *Queue {
	if size < 1 {
		size = DefaultQueueSize
	}
	return &Queue{
		c: make(chan Message, size),
	}
}

// Send - enqueue without blocking
//
// a full queue rejects the new message
func (queue *Queue) Send(command string, parameters ...[]byte) error {
	select {
	case queue.c <- Message{Command: command, Parameters: parameters}:
		return nil
	default:
		return fault.QueueFull
	}
}

// Chan - channel to read from
func (queue *Queue) Chan() <-chan Message {
	return queue.c
}

// Len - number of messages waiting
func (queue *Queue) Len() int {
	return len(queue.c)
}
