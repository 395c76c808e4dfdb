// SPDX-FileCopyrightText: 2025 The go-ndjson Authors
//
// SPDX-License-Identifier: MIT

//go:build !windows

package ndjson

// DefaultDelimiter is the platform line separator, used for written
// records unless WithDelimiter overrides it.
const DefaultDelimiter = "\n"
