// SPDX-FileCopyrightText: 2025 The go-ndjson Authors
//
// SPDX-License-Identifier: MIT

package ndjson

import (
	"github.com/pkg/errors"

	"github.com/ssbc/go-ndjson/codec"
)

// StreamOpt configures a stream while it is constructed. An error
// aborts construction.
type StreamOpt func(*Stream) error

// MergeStreamOpts combines multiple options into one.
func MergeStreamOpts(opts ...StreamOpt) StreamOpt {
	return func(s *Stream) error {
		for _, o := range opts {
			err := o(s)
			if err != nil {
				return err
			}
		}

		return nil
	}
}

// ErrorStreamOpt makes construction fail with err.
func ErrorStreamOpt(err error) StreamOpt {
	return func(*Stream) error {
		return err
	}
}

// WithCodec injects the codec used to encode and decode records.
// The default is codec/json.New(nil).
func WithCodec(c codec.Codec) StreamOpt {
	return func(s *Stream) error {
		if c == nil {
			return errors.New("ndjson: nil codec")
		}
		s.cdc = c
		return nil
	}
}

// WithDelimiter sets the delimiter emitted after each written record.
// The default is the platform line separator. It has no effect when
// the stream is handed a prebuilt LineSink, which frames lines itself.
func WithDelimiter(delim string) StreamOpt {
	return func(s *Stream) error {
		if delim == "" {
			return errors.New("ndjson: empty delimiter")
		}
		s.delim = delim
		return nil
	}
}

// WithSkipFailures makes the stream count records that fail to encode
// or decode instead of failing the operation. See Stream.Failures.
func WithSkipFailures(skip bool) StreamOpt {
	return func(s *Stream) error {
		s.skipFailures = skip
		return nil
	}
}

// WithSkipLines discards n leading records at construction time. Each
// discard is a full read-and-decode attempt, subject to the failure
// policy. Only valid in read mode.
func WithSkipLines(n int) StreamOpt {
	return func(s *Stream) error {
		if n < 0 {
			return errors.Errorf("ndjson: negative skip lines: %d", n)
		}
		s.skipLines = n
		return nil
	}
}
