// SPDX-FileCopyrightText: 2025 The go-ndjson Authors
//
// SPDX-License-Identifier: MIT

package test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssbc/go-ndjson/codec"
)

type testRecord struct {
	Name  string
	Count int
	Tags  []string
}

// CodecTestGeneric round-trips values through a codec built without a
// type. Number typing differs between codecs and is covered by their
// own tests.
func CodecTestGeneric(f codec.NewCodecFunc) func(*testing.T) {
	type testcase struct {
		name string
		v    interface{}
	}

	mkTest := func(tc testcase) func(*testing.T) {
		return func(t *testing.T) {
			r := require.New(t)

			c := f(nil)
			data, err := c.Marshal(tc.v)
			r.NoError(err, "error marshaling value")

			v, err := c.Unmarshal(data)
			r.NoError(err, "error unmarshaling value")
			r.Equal(tc.v, v)
		}
	}

	tcs := []testcase{
		{"object", map[string]interface{}{"name": "hello", "tags": []interface{}{"a", "b"}}},
		{"nested", map[string]interface{}{"outer": map[string]interface{}{"inner": "v"}}},
		{"array", []interface{}{"x", true, nil}},
		{"string", "plain"},
		{"bool", true},
		{"null", nil},
	}

	return func(t *testing.T) {
		for _, tc := range tcs {
			t.Run(tc.name, mkTest(tc))
		}
	}
}

// CodecTestTyped checks decoding into caller-supplied types, both as
// pointers and as values.
func CodecTestTyped(f codec.NewCodecFunc) func(*testing.T) {
	return func(t *testing.T) {
		r := require.New(t)

		rec := testRecord{Name: "n1", Count: 3, Tags: []string{"a", "b"}}

		c := f(&testRecord{})
		data, err := c.Marshal(rec)
		r.NoError(err, "error marshaling record")

		v, err := c.Unmarshal(data)
		r.NoError(err, "error unmarshaling record")
		got, ok := v.(*testRecord)
		r.True(ok, "expected *testRecord, got %T", v)
		r.Equal(rec, *got)

		c = f(testRecord{})
		v, err = c.Unmarshal(data)
		r.NoError(err, "error unmarshaling record")
		r.Equal(rec, v)
	}
}

// CodecTestSingleLine checks that encoded records never span lines,
// which the line framing depends on.
func CodecTestSingleLine(f codec.NewCodecFunc) func(*testing.T) {
	return func(t *testing.T) {
		a := assert.New(t)

		c := f(nil)
		data, err := c.Marshal(map[string]interface{}{"text": "line one\nline two\r\n"})
		a.NoError(err, "error marshaling value")
		a.False(strings.ContainsAny(string(data), "\r\n"), "encoded record spans lines: %q", data)
	}
}
