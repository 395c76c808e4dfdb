// SPDX-FileCopyrightText: 2025 The go-ndjson Authors
//
// SPDX-License-Identifier: MIT

package ndjson

import (
	"os"

	"github.com/pkg/errors"
)

// Stdio is the path sentinel that makes Open use the process's stdin
// in read mode and stdout otherwise.
const Stdio = "-"

// Open resolves src into a stream. It accepts
//
//   - a path string, opened with flags derived from mode: read opens
//     existing, write creates or truncates, append creates or extends.
//     Closing the stream closes the file.
//   - the sentinel "-", meaning stdin in read mode and stdout in write
//     and append mode.
//   - any already-open resource NewStream accepts.
//
// Everything else fails with ErrUnsupportedSource; the capability
// check happens once, here.
func Open(src interface{}, mode Mode, opts ...StreamOpt) (*Stream, error) {
	if !mode.valid() {
		return nil, errors.Wrapf(ErrInvalidMode, "mode %s", mode)
	}

	path, isPath := src.(string)
	if !isPath {
		return NewStream(src, mode, opts...)
	}

	if path == Stdio {
		if mode == ModeRead {
			return NewStream(os.Stdin, mode, opts...)
		}
		return NewStream(os.Stdout, mode, opts...)
	}

	var flag int
	switch mode {
	case ModeRead:
		flag = os.O_RDONLY
	case ModeWrite:
		flag = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	case ModeAppend:
		flag = os.O_WRONLY | os.O_CREATE | os.O_APPEND
	}

	f, err := os.OpenFile(path, flag, 0666)
	if err != nil {
		return nil, errors.Wrapf(err, "error opening %q", path)
	}

	s, err := NewStream(f, mode, opts...)
	if err != nil {
		f.Close()
		return nil, err
	}

	return s, nil
}
