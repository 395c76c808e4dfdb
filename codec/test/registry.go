// SPDX-FileCopyrightText: 2025 The go-ndjson Authors
//
// SPDX-License-Identifier: MIT

package test

import (
	"testing"

	"github.com/ssbc/go-ndjson/codec"
)

var NewCodecFuncs map[string]codec.NewCodecFunc

func init() {
	NewCodecFuncs = map[string]codec.NewCodecFunc{}
}

func Register(name string, f codec.NewCodecFunc) {
	NewCodecFuncs[name] = f
}

func RunCodecTests(t *testing.T) {
	for name, newCodec := range NewCodecFuncs {
		t.Run(name, CodecTest(newCodec))
	}
}
