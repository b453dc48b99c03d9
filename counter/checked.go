// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter

import (
	"math"
)

// Add - sum of two values, ok is false if the result would wrap
func Add(a uint64, b uint64) (uint64, bool) {
	if a > math.MaxUint64-b {
		return a, false
	}
	return a + b, true
}

// Sub - difference of two values, ok is false if b > a
func Sub(a uint64, b uint64) (uint64, bool) {
	if b > a {
		return a, false
	}
	return a - b, true
}

// Next - value plus one
func Next(a uint64) (uint64, bool) {
	return Add(a, 1)
}

// Previous - value minus one
func Previous(a uint64) (uint64, bool) {
	return Sub(a, 1)
}
