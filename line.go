// SPDX-FileCopyrightText: 2025 The go-ndjson Authors
//
// SPDX-License-Identifier: MIT

package ndjson

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
	"github.com/ssbc/go-luigi"
)

const (
	// sized for large single-line records
	readBufSize = 64 * 1024
	maxLineSize = 1024 * 1024
)

// LineSource is the read half of a line-based resource. It yields one
// line per call, without the trailing delimiter, and signals the end of
// input with luigi.EOS.
type LineSource interface {
	ReadLine() ([]byte, error)
}

// LineSink is the write half of a line-based resource. Implementations
// must frame p as exactly one line and emit it in a single write, so
// that concurrent appenders to the same descriptor cannot interleave
// partial lines.
type LineSink interface {
	WriteLine(p []byte) error
}

// NewLineReader wraps r as a LineSource. It accepts both bare newlines
// and CRLF line endings.
func NewLineReader(r io.Reader) *LineReader {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, readBufSize), maxLineSize)

	return &LineReader{
		r: r,
		s: s,
	}
}

type LineReader struct {
	r io.Reader
	s *bufio.Scanner
}

// ReadLine returns the next line without its delimiter. The returned
// slice is only valid until the next call. The end of input is
// reported as luigi.EOS.
func (lr *LineReader) ReadLine() ([]byte, error) {
	if !lr.s.Scan() {
		err := lr.s.Err()
		if err != nil {
			return nil, errors.Wrap(err, "error scanning line")
		}
		return nil, luigi.EOS{}
	}

	return lr.s.Bytes(), nil
}

// Close closes the wrapped reader when it is an io.Closer.
func (lr *LineReader) Close() error {
	if c, ok := lr.r.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Name returns the name of the wrapped reader, or "" when it has none.
func (lr *LineReader) Name() string {
	if n, ok := lr.r.(interface{ Name() string }); ok {
		return n.Name()
	}
	return ""
}

// NewLineWriter wraps w as a LineSink that frames each payload with
// delim.
func NewLineWriter(w io.Writer, delim string) *LineWriter {
	return &LineWriter{
		w:     w,
		delim: []byte(delim),
	}
}

type LineWriter struct {
	w     io.Writer
	delim []byte
	buf   []byte
}

// WriteLine emits p followed by the delimiter as a single write to the
// wrapped writer.
func (lw *LineWriter) WriteLine(p []byte) error {
	lw.buf = lw.buf[:0]
	lw.buf = append(lw.buf, p...)
	lw.buf = append(lw.buf, lw.delim...)

	_, err := lw.w.Write(lw.buf)
	return errors.Wrap(err, "error writing line")
}

// Flush forwards to the wrapped writer when it is flushable.
func (lw *LineWriter) Flush() error {
	if f, ok := lw.w.(interface{ Flush() error }); ok {
		return errors.Wrap(f.Flush(), "error flushing")
	}
	return nil
}

// Close flushes and then closes the wrapped writer when it is an
// io.Closer.
func (lw *LineWriter) Close() error {
	err := lw.Flush()
	if err != nil {
		return err
	}

	if c, ok := lw.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Name returns the name of the wrapped writer, or "" when it has none.
func (lw *LineWriter) Name() string {
	if n, ok := lw.w.(interface{ Name() string }); ok {
		return n.Name()
	}
	return ""
}
