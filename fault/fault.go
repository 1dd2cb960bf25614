// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyStarted       = ExistsError("already started")
	ErrInputFileNotFound    = NotFoundError("input file not found")
	ErrInvalidCount         = InvalidError("count must not be negative")
	ErrInvalidFileCount     = InvalidError("file count must be positive")
	ErrInvalidInteger       = InvalidError("invalid integer")
	ErrInvalidPattern       = InvalidError("file pattern must contain exactly one %d")
	ErrInvalidRange         = InvalidError("minimum is greater than maximum")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrInvalidWorkerCount   = InvalidError("worker count must be positive")
	ErrMissingTable         = InvalidError("configuration did not return a table")
	ErrNotADirectory        = InvalidError("path is not a directory")
	ErrNotStarted           = ProcessError("not started")
	ErrOutputFileFailed     = ProcessError("output file could not be created")
	ErrStopped              = ProcessError("already stopped")
	ErrTreeInconsistent     = ProcessError("tree is inconsistent")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error, wrapped errors are unwrapped
func IsErrExists(e error) bool   { var x ExistsError; return errors.As(e, &x) }
func IsErrInvalid(e error) bool  { var x InvalidError; return errors.As(e, &x) }
func IsErrNotFound(e error) bool { var x NotFoundError; return errors.As(e, &x) }
func IsErrProcess(e error) bool  { var x ProcessError; return errors.As(e, &x) }
