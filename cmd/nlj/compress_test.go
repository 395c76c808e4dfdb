// SPDX-FileCopyrightText: 2025 The go-ndjson Authors
//
// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSniffCompression(t *testing.T) {
	a := assert.New(t)

	a.Equal(compGzip, sniffCompression("dump.ndjson.gz"))
	a.Equal(compGzip, sniffCompression("DUMP.GZIP"))
	a.Equal(compZstd, sniffCompression("dump.ndjson.zst"))
	a.Equal(compZstd, sniffCompression("dump.zstd"))
	a.Equal(compNone, sniffCompression("dump.ndjson"))
	a.Equal(compNone, sniffCompression("-"))
}

func writeGzipFile(t *testing.T, path, content string) {
	r := require.New(t)

	f, err := os.Create(path)
	r.NoError(err, "failed to create gzip fixture")

	zw := gzip.NewWriter(f)
	_, err = zw.Write([]byte(content))
	r.NoError(err, "failed to write gzip fixture")
	r.NoError(zw.Close(), "failed to close gzip writer")
	r.NoError(f.Close(), "failed to close gzip fixture")
}

func readGzipFile(t *testing.T, path string) string {
	r := require.New(t)

	f, err := os.Open(path)
	r.NoError(err, "failed to open gzip output")
	defer f.Close()

	zr, err := gzip.NewReader(f)
	r.NoError(err, "output is not gzip")

	data, err := io.ReadAll(zr)
	r.NoError(err, "failed to decompress output")
	r.NoError(zr.Close(), "failed to close gzip reader")

	return string(data)
}

func TestCatGzip(t *testing.T) {
	r := require.New(t)
	a := assert.New(t)

	dir := t.TempDir()
	in := filepath.Join(dir, "in.ndjson.gz")
	out := filepath.Join(dir, "out.ndjson.gz")

	writeGzipFile(t, in, "{\"field\": \"value\"}\n{\"n\": 2}\n")

	cmd := catCmd{Infile: in, Outfile: out}
	err := cmd.Run(testGlobals())
	r.NoError(err, "cat failed")

	a.Equal("{\"field\":\"value\"}\n{\"n\":2}\n", readGzipFile(t, out))
}

func TestCatZstd(t *testing.T) {
	r := require.New(t)
	a := assert.New(t)

	dir := t.TempDir()
	in := filepath.Join(dir, "in.ndjson.zst")
	out := filepath.Join(dir, "out.ndjson.zst")

	f, err := os.Create(in)
	r.NoError(err, "failed to create zstd fixture")
	zw, err := zstd.NewWriter(f)
	r.NoError(err, "failed to open zstd writer")
	_, err = zw.Write([]byte("{\"z\": true}\n"))
	r.NoError(err, "failed to write zstd fixture")
	r.NoError(zw.Close(), "failed to close zstd writer")
	r.NoError(f.Close(), "failed to close zstd fixture")

	cmd := catCmd{Infile: in, Outfile: out}
	err = cmd.Run(testGlobals())
	r.NoError(err, "cat failed")

	g, err := os.Open(out)
	r.NoError(err, "failed to open zstd output")
	defer g.Close()

	zr, err := zstd.NewReader(g)
	r.NoError(err, "output is not zstd")
	defer zr.Close()

	data, err := io.ReadAll(zr)
	r.NoError(err, "failed to decompress output")
	a.Equal("{\"z\":true}\n", string(data))
}

func TestForcedCompression(t *testing.T) {
	r := require.New(t)
	a := assert.New(t)

	dir := t.TempDir()
	in := filepath.Join(dir, "in.ndjson")
	out := filepath.Join(dir, "out.ndjson")

	// both files are gzip despite their extensions
	writeGzipFile(t, in, "{\"plain\":1}\n")

	g := testGlobals()
	g.compression = compGzip

	cmd := catCmd{Infile: in, Outfile: out}
	err := cmd.Run(g)
	r.NoError(err, "cat failed")

	a.Equal("{\"plain\":1}\n", readGzipFile(t, out))
}
