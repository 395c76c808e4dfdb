// SPDX-FileCopyrightText: 2025 The go-ndjson Authors
//
// SPDX-License-Identifier: MIT

// Package ujson provides an alternative json codec backed by
// github.com/ugorji/go/codec. It trades the stdlib's decoding
// conventions for speed: generic decoding yields map[string]interface{}
// for objects and int64/uint64 for integral numbers.
package ujson

import (
	"reflect"

	"github.com/ugorji/go/codec"

	cdc "github.com/ssbc/go-ndjson/codec"
)

var mapType = reflect.TypeOf(map[string]interface{}(nil))

// New creates a ujson codec that decodes into values of type tipe.
// Pointer and nil tipe handling matches codec/json.New.
func New(tipe interface{}) cdc.Codec {
	h := new(codec.JsonHandle)
	h.MapType = mapType

	if tipe == nil {
		return &ujsonCodec{h: h, any: true}
	}

	t := reflect.TypeOf(tipe)
	isPtr := t.Kind() == reflect.Ptr
	if isPtr {
		t = t.Elem()
	}

	return &ujsonCodec{
		h:     h,
		tipe:  t,
		asPtr: isPtr,
	}
}

type ujsonCodec struct {
	h *codec.JsonHandle

	tipe  reflect.Type
	asPtr bool
	any   bool
}

func (c *ujsonCodec) Marshal(v interface{}) ([]byte, error) {
	var data []byte
	err := codec.NewEncoderBytes(&data, c.h).Encode(v)
	return data, err
}

func (c *ujsonCodec) Unmarshal(data []byte) (interface{}, error) {
	if c.any {
		var v interface{}
		err := codec.NewDecoderBytes(data, c.h).Decode(&v)
		return v, err
	}

	v := reflect.New(c.tipe).Interface()
	err := codec.NewDecoderBytes(data, c.h).Decode(v)

	if !c.asPtr {
		v = reflect.ValueOf(v).Elem().Interface()
	}

	return v, err
}
