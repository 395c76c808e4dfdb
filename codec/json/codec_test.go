// SPDX-FileCopyrightText: 2025 The go-ndjson Authors
//
// SPDX-License-Identifier: MIT

package json

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenericNumbers(t *testing.T) {
	r := require.New(t)

	c := New(nil)
	v, err := c.Unmarshal([]byte(`{"n":1,"f":1.5}`))
	r.NoError(err)

	m, ok := v.(map[string]interface{})
	r.True(ok, "expected a map, got %T", v)
	r.Equal(1.0, m["n"], "generic decoding yields float64")
	r.Equal(1.5, m["f"])
}

func TestNumberMode(t *testing.T) {
	r := require.New(t)

	c := NewNumber()
	v, err := c.Unmarshal([]byte(`{"n":9007199254740993}`))
	r.NoError(err)

	m := v.(map[string]interface{})
	num, ok := m["n"].(json.Number)
	r.True(ok, "expected json.Number, got %T", m["n"])
	r.Equal("9007199254740993", num.String(), "precision must survive")
}

func TestTypedMismatch(t *testing.T) {
	r := require.New(t)

	type point struct{ X, Y int }

	c := New(point{})
	_, err := c.Unmarshal([]byte(`[1,2]`))
	r.Error(err, "an array does not decode into a struct")

	v, err := c.Unmarshal([]byte(`{"X":1,"Y":2}`))
	r.NoError(err)
	r.Equal(point{1, 2}, v)
}
