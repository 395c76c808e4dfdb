// SPDX-FileCopyrightText: 2025 The go-ndjson Authors
//
// SPDX-License-Identifier: MIT

package test

import (
	ctest "github.com/ssbc/go-ndjson/codec/test"
	"github.com/ssbc/go-ndjson/codec/ujson"
)

func init() {
	ctest.Register("ujson", ujson.New)
}
