// SPDX-FileCopyrightText: 2025 The go-ndjson Authors
//
// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

const (
	compAuto = "auto"
	compNone = "none"
	compGzip = "gzip"
	compZstd = "zstd"
)

// sniffCompression maps a file extension onto a compression scheme.
// Anything unknown, including the stdio sentinel, means none.
func sniffCompression(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz", ".gzip":
		return compGzip
	case ".zst", ".zstd":
		return compZstd
	}
	return compNone
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// namedReader decorates a decompressing reader with the path it came
// from and closes the whole chain exactly once.
type namedReader struct {
	io.Reader
	name    string
	closers []io.Closer
	closed  bool
}

func (nr *namedReader) Name() string { return nr.name }

func (nr *namedReader) Close() error {
	if nr.closed {
		return nil
	}
	nr.closed = true

	var first error
	for _, c := range nr.closers {
		err := c.Close()
		if err != nil && first == nil {
			first = err
		}
	}
	return first
}

// namedWriter is the write-side pendant; Flush reaches the compressor
// so stream flushes push frames out.
type namedWriter struct {
	io.Writer
	name    string
	closers []io.Closer
	closed  bool
}

func (nw *namedWriter) Name() string { return nw.name }

func (nw *namedWriter) Flush() error {
	if f, ok := nw.Writer.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

func (nw *namedWriter) Close() error {
	if nw.closed {
		return nil
	}
	nw.closed = true

	var first error
	for _, c := range nw.closers {
		err := c.Close()
		if err != nil && first == nil {
			first = err
		}
	}
	return first
}

// wrapInputFile layers the decompressor for comp over f.
func wrapInputFile(f *os.File, comp string) (*namedReader, error) {
	switch comp {
	case compGzip:
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, errors.Wrapf(err, "error opening gzip stream %q", f.Name())
		}
		return &namedReader{
			Reader:  zr,
			name:    f.Name(),
			closers: []io.Closer{zr, f},
		}, nil

	case compZstd:
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, errors.Wrapf(err, "error opening zstd stream %q", f.Name())
		}
		closeDec := closerFunc(func() error {
			zr.Close()
			return nil
		})
		return &namedReader{
			Reader:  zr,
			name:    f.Name(),
			closers: []io.Closer{closeDec, f},
		}, nil
	}

	return &namedReader{
		Reader:  f,
		name:    f.Name(),
		closers: []io.Closer{f},
	}, nil
}

// wrapOutputFile layers the compressor for comp over f. Closing
// finalizes the compressed stream before the file goes.
func wrapOutputFile(f *os.File, comp string) (*namedWriter, error) {
	switch comp {
	case compGzip:
		zw := gzip.NewWriter(f)
		return &namedWriter{
			Writer:  zw,
			name:    f.Name(),
			closers: []io.Closer{zw, f},
		}, nil

	case compZstd:
		zw, err := zstd.NewWriter(f)
		if err != nil {
			return nil, errors.Wrapf(err, "error opening zstd stream %q", f.Name())
		}
		return &namedWriter{
			Writer:  zw,
			name:    f.Name(),
			closers: []io.Closer{zw, f},
		}, nil
	}

	return &namedWriter{
		Writer:  f,
		name:    f.Name(),
		closers: []io.Closer{f},
	}, nil
}
