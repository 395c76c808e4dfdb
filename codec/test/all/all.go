// SPDX-License-Identifier: MIT

package all

import (
	// import to register codecs
	_ "github.com/ssbc/go-ndjson/codec/json/test"
	_ "github.com/ssbc/go-ndjson/codec/ujson/test"
)
