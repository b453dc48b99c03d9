// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type LimitError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyInitialised                  = ExistsError("already initialised")
	BalanceOverflow                     = LimitError("balance overflow")
	CannotBuyOwnKitty                   = InvalidError("cannot buy own kitty")
	CannotDecodeAccount                 = InvalidError("cannot decode account")
	CertificateFileAlreadyExists        = ExistsError("certificate file already exists")
	ChecksumMismatch                    = InvalidError("checksum mismatch")
	ConfigurationFileNotFound           = NotFoundError("configuration file not found")
	CountOverflow                       = LimitError("count overflow")
	CountUnderflow                      = RecordError("count underflow")
	DatabaseIsNewer                     = RecordError("database version is newer than supported")
	DatabaseIsNotSet                    = ProcessError("database is not set")
	FaucetDisabled                      = InvalidError("faucet is disabled")
	FaucetLimitExceeded                 = LimitError("faucet limit exceeded")
	IndexPositionMissing                = RecordError("index position missing")
	InsufficientFunds                   = InvalidError("insufficient funds")
	IntegrityCheckFailed                = RecordError("integrity check failed")
	InvalidChain                        = InvalidError("invalid chain")
	InvalidCount                        = InvalidError("invalid count")
	InvalidCursor                       = InvalidError("invalid cursor")
	InvalidIPAddress                    = InvalidError("invalid IP address")
	InvalidKeyLength                    = LengthError("invalid key length")
	InvalidKeyType                      = InvalidError("invalid key type")
	InvalidPortNumber                   = InvalidError("invalid port number")
	InvalidPrivateKeyFile               = InvalidError("invalid private key file")
	InvalidPublicKeyFile                = InvalidError("invalid public key file")
	InvalidSeedHeader                   = InvalidError("invalid seed header")
	InvalidSeedLength                   = LengthError("invalid seed length")
	InvalidSequence                     = InvalidError("invalid sequence")
	InvalidSignature                    = InvalidError("invalid signature")
	InvalidStructPointer                = InvalidError("invalid struct pointer")
	KeyFileAlreadyExists                = ExistsError("key file already exists")
	KittyAlreadyExists                  = ExistsError("kitty already exists")
	KittyDoesNotExist                   = NotFoundError("kitty does not exist")
	KittyIsNotForSale                   = InvalidError("kitty is not for sale")
	MissingParameters                   = InvalidError("missing parameters")
	MissingRandomnessSeed               = InvalidError("missing randomness seed")
	NoOwner                             = NotFoundError("kitty has no owner")
	NotDigestLength                     = LengthError("not digest length")
	NotInitialised                      = ProcessError("not initialised")
	NotKittyPack                        = RecordError("not kitty pack")
	NotOwner                            = InvalidError("not owner")
	NotPublicKey                        = InvalidError("not public key")
	NotTestnet                          = InvalidError("not testnet")
	OverflowAddingToAccountBalance      = LimitError("overflow adding to account balance")
	OverflowAddingToTotalSupply         = LimitError("overflow adding to total supply")
	PriceExceedsMaximum                 = InvalidError("price exceeds maximum")
	QueueFull                           = LimitError("queue full")
	RateLimiting                        = LimitError("rate limiting")
	TransactionAlreadyInUse             = ProcessError("transaction already in use")
	TransactionNotInUse                 = ProcessError("transaction not in use")
	UnderflowRemovingFromAccountBalance = RecordError("underflow removing from account balance")
	WrongNetworkForPublicKey            = InvalidError("wrong network for public key")
)

// PaymentError - a failed funds transfer, carrying the ledger's reason
type PaymentError struct {
	Err error
}

// PaymentFailed - wrap a ledger error
func PaymentFailed(err error) error {
	return &PaymentError{Err: err}
}

func (e *PaymentError) Error() string {
	return fmt.Sprintf("payment failed: %v", e.Err)
}

// Unwrap - expose the ledger error
func (e *PaymentError) Unwrap() error {
	return e.Err
}

// the error interface methods
func (e GenericError) Error() string  { return string(e) }
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e LimitError) Error() string    { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrLimit(e error) bool    { _, ok := e.(LimitError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }

// IsErrProcess - process errors include a failed payment
func IsErrProcess(e error) bool {
	switch e.(type) {
	case ProcessError, *PaymentError:
		return true
	}
	return false
}

// IsErrPayment - true for a wrapped ledger failure
func IsErrPayment(e error) bool { _, ok := e.(*PaymentError); return ok }
