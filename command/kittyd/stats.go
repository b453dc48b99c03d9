// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"
)

const (
	statsDelay = 60 * time.Second
	mega       = 1048576
)

// periodic memory report, enabled by --memory-stats
type memoryStats struct {
	log *logger.L
}

func (m *memoryStats) Run(args interface{}, shutdown <-chan struct{}) {
	m.log = logger.New("memory")

	for {
		m.report()

		select {
		case <-shutdown:
			return
		case <-time.After(statsDelay):
		}
	}
}

func (m *memoryStats) report() {
	var s runtime.MemStats
	runtime.ReadMemStats(&s)

	text, err := json.Marshal(s)
	if nil != err {
		m.log.Errorf("marshal error: %s", err)
	} else {
		m.log.Debugf("stats: %s", text)
	}
	m.log.Infof("allocated: %d M  cumulative: %d M  OS virtual: %d M", s.Alloc/mega, s.TotalAlloc/mega, s.Sys/mega)
}
