// SPDX-FileCopyrightText: 2025 The go-ndjson Authors
//
// SPDX-License-Identifier: MIT

package test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ssbc/go-ndjson/codec"
)

// CodecTestMalformed checks that undecodable payloads, including the
// empty line, fail with an error instead of yielding a value.
func CodecTestMalformed(f codec.NewCodecFunc) func(*testing.T) {
	return func(t *testing.T) {
		a := assert.New(t)

		c := f(nil)
		for _, data := range []string{
			"{",
			"[",
			"",
			"{\"a\":}",
			"nope",
		} {
			_, err := c.Unmarshal([]byte(data))
			a.Error(err, "expected decoding %q to fail", data)
		}
	}
}
