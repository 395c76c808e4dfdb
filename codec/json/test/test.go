// SPDX-FileCopyrightText: 2025 The go-ndjson Authors
//
// SPDX-License-Identifier: MIT

package test

import (
	"github.com/ssbc/go-ndjson/codec/json"
	ctest "github.com/ssbc/go-ndjson/codec/test"
)

func init() {
	ctest.Register("json", json.New)
}
