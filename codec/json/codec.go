// SPDX-FileCopyrightText: 2025 The go-ndjson Authors
//
// SPDX-License-Identifier: MIT

// Package json provides the default codec, backed by encoding/json.
package json

import (
	"bytes"
	"encoding/json"
	"reflect"

	cdc "github.com/ssbc/go-ndjson/codec"
)

// New creates a json codec that decodes into values of type tipe.
// Passing a pointer makes Unmarshal return pointers to fresh values,
// passing a non-pointer returns plain values. A nil tipe decodes
// generically: objects become map[string]interface{} and numbers
// float64.
func New(tipe interface{}) cdc.Codec {
	if tipe == nil {
		return &codec{any: true}
	}

	t := reflect.TypeOf(tipe)
	isPtr := t.Kind() == reflect.Ptr
	if isPtr {
		t = t.Elem()
	}

	return &codec{
		tipe:  t,
		asPtr: isPtr,
	}
}

// NewNumber creates a generic json codec that decodes numbers into
// json.Number instead of float64.
func NewNumber() cdc.Codec {
	return &codec{any: true, useNumber: true}
}

type codec struct {
	tipe      reflect.Type
	asPtr     bool
	any       bool
	useNumber bool
}

func (*codec) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (c *codec) Unmarshal(data []byte) (interface{}, error) {
	if c.any {
		var v interface{}
		if c.useNumber {
			dec := json.NewDecoder(bytes.NewReader(data))
			dec.UseNumber()
			err := dec.Decode(&v)
			return v, err
		}
		err := json.Unmarshal(data, &v)
		return v, err
	}

	v := reflect.New(c.tipe).Interface()
	err := json.Unmarshal(data, v)

	if !c.asPtr {
		v = reflect.ValueOf(v).Elem().Interface()
	}

	return v, err
}
