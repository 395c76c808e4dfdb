// SPDX-FileCopyrightText: 2025 The go-ndjson Authors
//
// SPDX-License-Identifier: MIT

package ndjson

import (
	"context"
	"strings"
	"testing"

	"github.com/ssbc/go-luigi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineReader(t *testing.T) {
	r := require.New(t)
	a := assert.New(t)

	lr := NewLineReader(strings.NewReader("foo\nbar\r\nbaz"))

	line, err := lr.ReadLine()
	r.NoError(err)
	a.Equal("foo", string(line))

	// crlf endings are accepted transparently
	line, err = lr.ReadLine()
	r.NoError(err)
	a.Equal("bar", string(line))

	// a final line without delimiter still counts
	line, err = lr.ReadLine()
	r.NoError(err)
	a.Equal("baz", string(line))

	_, err = lr.ReadLine()
	a.True(luigi.IsEOS(err), "expected end of stream, got %v", err)
}

func TestLineReaderLongLine(t *testing.T) {
	r := require.New(t)

	// over the initial buffer size, under the maximum
	long := "\"" + strings.Repeat("x", 100*1024) + "\""
	in, err := NewStream(strings.NewReader(long+"\n"), ModeRead)
	r.NoError(err)

	v, err := in.Next(context.Background())
	r.NoError(err, "long single-line records must decode")
	r.Len(v.(string), 100*1024)
}

type writeRecorder struct {
	writes []string
}

func (wr *writeRecorder) Write(p []byte) (int, error) {
	wr.writes = append(wr.writes, string(p))
	return len(p), nil
}

func TestLineWriterSingleWrite(t *testing.T) {
	r := require.New(t)
	a := assert.New(t)

	var wr writeRecorder
	lw := NewLineWriter(&wr, "\n")

	r.NoError(lw.WriteLine([]byte(`{"a":1}`)))
	r.NoError(lw.WriteLine([]byte(`{"b":2}`)))

	// payload and delimiter must leave in one write each
	r.Len(wr.writes, 2)
	a.Equal("{\"a\":1}\n", wr.writes[0])
	a.Equal("{\"b\":2}\n", wr.writes[1])
}

func TestLineWriterFlushClose(t *testing.T) {
	r := require.New(t)
	a := assert.New(t)

	// plain writers flush as a no-op
	var sb strings.Builder
	lw := NewLineWriter(&sb, "\n")
	r.NoError(lw.WriteLine([]byte("x")))
	r.NoError(lw.Flush())
	r.NoError(lw.Close())
	a.Equal("x\n", sb.String())

	var cr closeRecorder
	lw = NewLineWriter(&cr, "\n")
	r.NoError(lw.Close())
	a.Equal(1, cr.closes)
}
