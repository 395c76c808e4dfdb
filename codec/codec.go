// SPDX-FileCopyrightText: 2025 The go-ndjson Authors
//
// SPDX-License-Identifier: MIT

// Package codec defines how single records map to the payload bytes of
// one line. Implementations live in the subpackages; a codec instance
// carries its own configuration and is injected per stream.
package codec

// NewCodecFunc is a function that returns a codec which decodes into
// values of type tipe. A nil tipe means generic decoding.
type NewCodecFunc func(tipe interface{}) Codec

type Codec interface {
	// Marshal encodes a single value and returns the serialized byte slice.
	// The returned bytes must not contain the line delimiter.
	Marshal(value interface{}) ([]byte, error)

	// Unmarshal decodes and returns the value stored in data.
	Unmarshal(data []byte) (interface{}, error)
}
