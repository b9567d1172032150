// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type AccessError GenericError
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyExists                = ExistsError("token id already exists")
	AlreadyInitialised           = ProcessError("already initialised")
	CertificateFileAlreadyExists = ExistsError("certificate file already exists")
	DataInconsistency            = ProcessError("data inconsistency detected")
	EmptyVault                   = NotFoundError("vault is empty")
	IndexOutOfBounds             = LengthError("index out of bounds")
	InsufficientBalance          = InvalidError("insufficient balance")
	InsufficientTokens           = InvalidError("insufficient tokens")
	InvalidCount                 = LengthError("invalid count")
	InvalidCursor                = InvalidError("invalid cursor")
	InvalidDecimals              = InvalidError("invalid decimals")
	InvalidIdentifier            = InvalidError("invalid identifier")
	InvalidIpAddress             = InvalidError("invalid ip address")
	InvalidOwner                 = InvalidError("invalid owner")
	InvalidPrivateKeyFile        = InvalidError("invalid private key file")
	InvalidPublicKeyFile         = InvalidError("invalid public key file")
	InvalidRecipient             = InvalidError("invalid recipient")
	InvalidSender                = InvalidError("invalid sender")
	InvalidStructPointer         = InvalidError("invalid struct pointer")
	KeyFileAlreadyExists         = ExistsError("key file already exists")
	MissingParameters            = LengthError("missing parameters")
	NotFound                     = NotFoundError("token id not found")
	NotInitialised               = ProcessError("not initialised")
	RateLimiting                 = ProcessError("rate limiting")
	ReentrantCall                = ProcessError("reentrant call")
	TransactionInUse             = ProcessError("transaction already in use")
	Unauthorized                 = AccessError("not authorized")
	UnsafeRecipient              = AccessError("unsafe recipient")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e AccessError) Error() string   { return string(e) }
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrAccess(e error) bool   { _, ok := e.(AccessError); return ok }
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
