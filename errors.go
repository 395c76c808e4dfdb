// SPDX-FileCopyrightText: 2025 The go-ndjson Authors
//
// SPDX-License-Identifier: MIT

package ndjson

import (
	"errors"
	"fmt"
)

// ErrClosed is returned for any operation on a closed stream.
var ErrClosed = errors.New("ndjson: stream already closed")

// ErrInvalidMode is returned when a mode outside read, write and
// append is given.
var ErrInvalidMode = errors.New("ndjson: invalid mode")

// ErrUnsupportedSource is returned when Open or NewStream are handed a
// value they cannot turn into a stream resource.
var ErrUnsupportedSource = errors.New("ndjson: unsupported source")

// ModeError is returned when an operation is attempted on a stream
// whose mode does not allow it.
type ModeError struct {
	Op   string
	Mode Mode
}

func (e ModeError) Error() string {
	return fmt.Sprintf("ndjson: cannot %s in %s mode", e.Op, e.Mode)
}

// DecodeError wraps a codec failure for a single input line.
type DecodeError struct {
	Line int64 // 1-based number of the line that failed to decode
	Err  error
}

func (e DecodeError) Error() string {
	return fmt.Sprintf("ndjson: error decoding line %d: %v", e.Line, e.Err)
}

func (e DecodeError) Unwrap() error { return e.Err }

// EncodeError wraps a codec failure for a single value to be written.
type EncodeError struct {
	Err error
}

func (e EncodeError) Error() string {
	return fmt.Sprintf("ndjson: error encoding record: %v", e.Err)
}

func (e EncodeError) Unwrap() error { return e.Err }

// IsDecodeError reports whether err stems from a line that failed to
// decode. Such failures count toward Stream.Failures and are the only
// read errors governed by the skip-failures policy.
func IsDecodeError(err error) bool {
	var de DecodeError
	return errors.As(err, &de)
}

// IsEncodeError reports whether err stems from a record that failed to
// encode.
func IsEncodeError(err error) bool {
	var ee EncodeError
	return errors.As(err, &ee)
}

// IsInvalidState reports whether err was caused by using a stream
// against its mode or after it was closed.
func IsInvalidState(err error) bool {
	var me ModeError
	return errors.As(err, &me) || errors.Is(err, ErrClosed)
}
