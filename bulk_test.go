// SPDX-FileCopyrightText: 2025 The go-ndjson Authors
//
// SPDX-License-Identifier: MIT

package ndjson

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteAllReadAllString(t *testing.T) {
	r := require.New(t)
	a := assert.New(t)
	ctx := context.Background()

	vs := []interface{}{
		map[string]interface{}{"name": "one", "n": 1.0},
		map[string]interface{}{"name": "two", "n": 2.0},
		[]interface{}{"three", 3.0},
		nil,
	}

	text, err := WriteAllString(ctx, vs)
	r.NoError(err, "error writing records")
	a.Equal(len(vs), strings.Count(text, DefaultDelimiter))

	got, err := ReadAllString(ctx, text)
	r.NoError(err, "error reading records back")
	a.Equal(vs, got)
}

func TestReadAllStringOptions(t *testing.T) {
	r := require.New(t)
	a := assert.New(t)
	ctx := context.Background()

	text := "{\"n\":1}\nnope\n{\"n\":2}\n{\"n\":3}\n"

	_, err := ReadAllString(ctx, text)
	r.Error(err, "undecodable line should fail without skip-failures")
	a.True(IsDecodeError(err))

	vs, err := ReadAllString(ctx, text, WithSkipFailures(true))
	r.NoError(err)
	a.Len(vs, 3)

	vs, err = ReadAllString(ctx, text, WithSkipFailures(true), WithSkipLines(1))
	r.NoError(err)
	a.Equal([]interface{}{
		map[string]interface{}{"n": 2.0},
		map[string]interface{}{"n": 3.0},
	}, vs)
}

func TestBulkFile(t *testing.T) {
	r := require.New(t)
	a := assert.New(t)
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "bulk.ndjson")

	vs := []interface{}{
		map[string]interface{}{"a": 1.0},
		map[string]interface{}{"b": 2.0},
	}

	r.NoError(WriteAll(ctx, path, vs))

	got, err := ReadAll(ctx, path)
	r.NoError(err)
	a.Equal(vs, got)
}

type closeRecorder struct {
	strings.Builder
	closes int
}

func (cr *closeRecorder) Close() error {
	cr.closes++
	return nil
}

func TestWriteAllAlwaysCloses(t *testing.T) {
	r := require.New(t)
	a := assert.New(t)
	ctx := context.Background()

	var cr closeRecorder
	err := WriteAll(ctx, &cr, []interface{}{map[string]interface{}{"ok": true}})
	r.NoError(err)
	a.Equal(1, cr.closes, "stream must close its resource exactly once")

	// also on the failure path
	cr = closeRecorder{}
	err = WriteAll(ctx, &cr, []interface{}{
		map[string]interface{}{"ok": true},
		make(chan int),
		map[string]interface{}{"never": "written"},
	})
	r.Error(err)
	a.True(IsEncodeError(err))
	a.Equal(1, cr.closes, "stream must close its resource on error, too")
	a.Equal("{\"ok\":true}"+DefaultDelimiter, cr.String(), "records before the failure stay written")
}

func TestMergeStreamOpts(t *testing.T) {
	r := require.New(t)
	a := assert.New(t)
	ctx := context.Background()

	merged := MergeStreamOpts(WithSkipFailures(true), WithSkipLines(1))

	vs, err := ReadAllString(ctx, "junk\n{\"n\":1}\n{\"n\":2}\n", merged)
	r.NoError(err)
	a.Equal([]interface{}{map[string]interface{}{"n": 2.0}}, vs)

	boom := ErrorStreamOpt(ErrInvalidMode)
	_, err = ReadAllString(ctx, "", boom)
	r.ErrorIs(err, ErrInvalidMode)
}
