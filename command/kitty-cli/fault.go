// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/kittyd/fault"
)

// common errors - keep in alphabetic order
const (
	ErrIncompatibleOptions = fault.InvalidError("incompatible options")
	ErrMissingConnect      = fault.InvalidError("missing connect address")
	ErrMissingIdentity     = fault.NotFoundError("no identity selected")
	ErrMissingKittyId      = fault.InvalidError("missing kitty id")
	ErrMissingPassword     = fault.InvalidError("missing password, use --password or a terminal")
	ErrMissingReceiver     = fault.InvalidError("missing receiver")
	ErrPasswordLength      = fault.InvalidError("password is shorter than 8 characters")
	ErrPasswordMismatch    = fault.InvalidError("passwords do not match")
)
