// SPDX-FileCopyrightText: 2025 The go-ndjson Authors
//
// SPDX-License-Identifier: MIT

// Package ndjson reads and writes streams of newline-delimited JSON,
// one record per line.
//
// A Stream wraps a line-based resource with a codec and a direction.
// Reading happens through the luigi pull protocol: Next returns one
// decoded record per call until the input is exhausted, which is
// signalled with luigi.EOS rather than an error. Writing frames each
// encoded record as a single delimited line. Records that fail to
// decode or encode either fail the operation or, with skip-failures
// set, are counted and passed over.
package ndjson

import (
	"context"
	"io"
	"sync"

	"github.com/pkg/errors"
	"github.com/ssbc/go-luigi"

	"github.com/ssbc/go-ndjson/codec"
	jsoncdc "github.com/ssbc/go-ndjson/codec/json"
)

// Stream is a read- or write-facing view of a line-based resource.
// The zero value is not usable; construct streams with NewStream or
// Open.
//
// Stream implements luigi.Source in read mode and luigi.Sink in write
// and append modes, so streams compose with luigi.Pump.
type Stream struct {
	l sync.Mutex

	mode Mode

	src LineSource
	snk LineSink

	cdc          codec.Codec
	delim        string
	skipFailures bool
	skipLines    int

	line     int64 // lines consumed from src, 1-based after first read
	failures int64
	closed   bool
}

var (
	_ luigi.Source = (*Stream)(nil)
	_ luigi.Sink   = (*Stream)(nil)
)

// NewStream wraps an already-open resource. In read mode rw must be a
// LineSource or an io.Reader; in write and append modes a LineSink or
// an io.Writer. Anything else fails with ErrUnsupportedSource.
//
// The resource's own open-mode is not validated against mode;
// a mismatch surfaces as an I/O error on first use.
func NewStream(rw interface{}, mode Mode, opts ...StreamOpt) (*Stream, error) {
	if !mode.valid() {
		return nil, errors.Wrapf(ErrInvalidMode, "mode %s", mode)
	}

	s := &Stream{
		mode:  mode,
		cdc:   jsoncdc.New(nil),
		delim: DefaultDelimiter,
	}

	for _, opt := range opts {
		err := opt(s)
		if err != nil {
			return nil, err
		}
	}

	if s.skipLines > 0 && mode != ModeRead {
		return nil, errors.Errorf("ndjson: skip lines requires read mode, have %s", mode)
	}

	switch mode {
	case ModeRead:
		switch tv := rw.(type) {
		case LineSource:
			s.src = tv
		case io.Reader:
			s.src = NewLineReader(tv)
		default:
			return nil, errors.Wrapf(ErrUnsupportedSource, "cannot read lines from %T", rw)
		}
	case ModeWrite, ModeAppend:
		switch tv := rw.(type) {
		case LineSink:
			s.snk = tv
		case io.Writer:
			s.snk = NewLineWriter(tv, s.delim)
		default:
			return nil, errors.Wrapf(ErrUnsupportedSource, "cannot write lines to %T", rw)
		}
	}

	for i := 0; i < s.skipLines; i++ {
		_, err := s.next(context.Background())
		if err != nil {
			if luigi.IsEOS(err) {
				break
			}
			return nil, errors.Wrapf(err, "error skipping %d leading records", s.skipLines)
		}
	}

	return s, nil
}

// Next implements luigi.Source. It returns the next decoded record, or
// luigi.EOS once the input is exhausted.
//
// A line that fails to decode counts toward Failures. Without
// skip-failures the call returns a DecodeError and the position has
// still advanced past the bad line; with it, the stream keeps pulling
// lines until one decodes, the input ends, or ctx is done.
func (s *Stream) Next(ctx context.Context) (interface{}, error) {
	s.l.Lock()
	defer s.l.Unlock()

	return s.next(ctx)
}

func (s *Stream) next(ctx context.Context) (interface{}, error) {
	if s.closed {
		return nil, ErrClosed
	}
	if s.mode != ModeRead {
		return nil, ModeError{Op: "read", Mode: s.mode}
	}

	for {
		err := ctx.Err()
		if err != nil {
			return nil, err
		}

		line, err := s.src.ReadLine()
		if err != nil {
			// luigi.EOS or a transport failure, neither is skippable
			return nil, err
		}
		s.line++

		v, err := s.cdc.Unmarshal(line)
		if err == nil {
			return v, nil
		}

		s.failures++
		if !s.skipFailures {
			return nil, DecodeError{Line: s.line, Err: err}
		}
	}
}

// Append encodes v and emits it as a single delimited line.
//
// A value that fails to encode counts toward Failures; without
// skip-failures the call returns an EncodeError, with it the record is
// dropped and Append reports success. Either way the stream stays
// usable. Transport errors are returned as they are.
func (s *Stream) Append(v interface{}) error {
	s.l.Lock()
	defer s.l.Unlock()

	if s.closed {
		return ErrClosed
	}
	if s.mode == ModeRead {
		return ModeError{Op: "append", Mode: s.mode}
	}

	data, err := s.cdc.Marshal(v)
	if err != nil {
		s.failures++
		if s.skipFailures {
			return nil
		}
		return EncodeError{Err: err}
	}

	return s.snk.WriteLine(data)
}

// Pour implements luigi.Sink by appending v.
func (s *Stream) Pour(ctx context.Context, v interface{}) error {
	err := ctx.Err()
	if err != nil {
		return err
	}

	return s.Append(v)
}

// Flush forces buffered output down to the resource. It is a no-op on
// read streams and on sinks that do not buffer. Flush may be called
// any number of times.
func (s *Stream) Flush() error {
	s.l.Lock()
	defer s.l.Unlock()

	if s.closed {
		return ErrClosed
	}

	if f, ok := s.snk.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

// Close flushes pending output, marks the stream closed and closes the
// resource when it is closable. The transition is one-way; second and
// later calls return nil without touching the resource again.
func (s *Stream) Close() error {
	s.l.Lock()
	defer s.l.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	var t interface{} = s.src
	if s.mode != ModeRead {
		t = s.snk
	}

	if f, ok := t.(interface{ Flush() error }); ok {
		err := f.Flush()
		if err != nil {
			return errors.Wrap(err, "error flushing on close")
		}
	}

	if c, ok := t.(io.Closer); ok {
		return errors.Wrap(c.Close(), "error closing resource")
	}
	return nil
}

// Mode returns the direction the stream was constructed with.
func (s *Stream) Mode() Mode {
	return s.mode
}

// Closed reports whether Close has been called.
func (s *Stream) Closed() bool {
	s.l.Lock()
	defer s.l.Unlock()

	return s.closed
}

// Failures returns the number of records so far that failed to decode
// or encode. The counter only ever grows, independent of the
// skip-failures setting.
func (s *Stream) Failures() int64 {
	s.l.Lock()
	defer s.l.Unlock()

	return s.failures
}

// Name returns the name of the underlying resource, usually a file
// path, or "" when it has none.
func (s *Stream) Name() string {
	var t interface{} = s.src
	if s.mode != ModeRead {
		t = s.snk
	}

	if n, ok := t.(interface{ Name() string }); ok {
		return n.Name()
	}
	return ""
}
