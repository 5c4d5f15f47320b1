// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised      = ExistsError("already initialised")
	ErrEmptyTree               = NotFoundError("tree is empty")
	ErrIndexOutOfRange         = InvalidError("index is out of range")
	ErrInvalidItem             = InvalidError("item cannot be parsed")
	ErrInvalidItemType         = InvalidError("item type is invalid")
	ErrInvalidLoggerChannel    = InvalidError("invalid logger channel")
	ErrInvalidStructPointer    = InvalidError("invalid struct pointer")
	ErrInvalidTieBreak         = InvalidError("tie-break is invalid")
	ErrItemExists              = ExistsError("item already exists")
	ErrItemNotFound            = NotFoundError("item not found")
	ErrNotFoundConfigFile      = NotFoundError("config file is not found")
	ErrOutOfOrder              = ProcessError("items are out of order")
	ErrRequiredConfigFile      = InvalidError("config file is required")
	ErrUnbalanced              = ProcessError("node is out of balance")
	ErrUnexpectedConfiguration = InvalidError("configuration did not return a table")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
