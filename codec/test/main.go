// SPDX-License-Identifier: MIT

package test

import (
	"testing"

	"github.com/ssbc/go-ndjson/codec"
)

// CodecTest runs the contract suite against codecs built by f. Every
// codec package registers itself in its test subpackage so the suite
// in codec/test/all covers all of them.
func CodecTest(f codec.NewCodecFunc) func(*testing.T) {
	return func(t *testing.T) {
		t.Run("Generic", CodecTestGeneric(f))
		t.Run("Typed", CodecTestTyped(f))
		t.Run("SingleLine", CodecTestSingleLine(f))
		t.Run("Malformed", CodecTestMalformed(f))
	}
}
