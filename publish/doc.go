// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package publish - broadcast committed registry events to ZeroMQ
// subscribers
//
// each event is sent as a two part message:
//
//   [0] event kind   e.g. "bought"
//   [1] event JSON
package publish
