// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. kittyId      = 32 byte SHA3-256 digest
// 4. owner        = account bytes (key variant ++ 32 byte public key)
// 5. position     = big endian uint64 (8 bytes)
// 6. count        = big endian uint64 (8 bytes)
//
// Kitties:
//
//   K ++ kittyId               - kitty record
//                                data: id ++ dna ++ price ++ generation
//   O ++ kittyId               - current owner
//                                data: owner
//
// Enumeration:
//
//   A ++ position              - all kitties
//                                data: kittyId
//   I ++ kittyId               - position in all kitties, for swap removal
//                                data: position
//   L ++ owner ++ position     - kitties of one owner
//                                data: kittyId
//   D ++ owner ++ kittyId      - position in owner's kitties, for swap removal
//                                data: position
//   N ++ scope                 - number of entries in a list
//                                scope: empty for all kitties, owner for owned kitties
//                                data: count
//
// Ledger:
//
//   C ++ owner                 - spendable balance
//                                data: amount (big endian uint64)
//
// Values:
//
//   V ++ name                  - process wide scalars, e.g. "nonce"
//   Q ++ account               - next request sequence expected from the account
//                                data: big endian uint64
//
// Testing:
//   Z ++ key                   - testing data
package storage
