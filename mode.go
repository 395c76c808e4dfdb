// SPDX-FileCopyrightText: 2025 The go-ndjson Authors
//
// SPDX-License-Identifier: MIT

package ndjson

import (
	"fmt"

	"github.com/pkg/errors"
)

// Mode fixes the direction of a stream at construction time.
type Mode uint8

const (
	// ModeRead pulls records from the resource. ModeWrite and
	// ModeAppend push records; at the stream layer they behave the
	// same, they only differ in how Open prepares a file.
	ModeRead Mode = iota + 1
	ModeWrite
	ModeAppend
)

func (m Mode) valid() bool {
	return m == ModeRead || m == ModeWrite || m == ModeAppend
}

func (m Mode) String() string {
	switch m {
	case ModeRead:
		return "read"
	case ModeWrite:
		return "write"
	case ModeAppend:
		return "append"
	}
	return fmt.Sprintf("mode(%d)", uint8(m))
}

// ParseMode maps the conventional mode letters "r", "w" and "a" onto
// their Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "r":
		return ModeRead, nil
	case "w":
		return ModeWrite, nil
	case "a":
		return ModeAppend, nil
	}
	return 0, errors.Wrapf(ErrInvalidMode, "mode %q", s)
}
