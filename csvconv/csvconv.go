// SPDX-FileCopyrightText: 2025 The go-ndjson Authors
//
// SPDX-License-Identifier: MIT

// Package csvconv bridges CSV tables and streams of object records.
//
// A Decoder turns CSV rows into map[string]interface{} records: the
// header row names the keys, an empty cell becomes nil, and every
// other cell is first tried as a JSON value, falling back to the
// literal string. An Encoder does the reverse: the first record fixes
// the column set, strings pass through, nil becomes an empty cell and
// all other values are encoded back to JSON text.
//
// Both halves speak luigi, so they compose with streams through
// luigi.Pump.
package csvconv

import (
	"context"
	"encoding/csv"
	"io"
	"sort"

	"github.com/pkg/errors"
	"github.com/ssbc/go-luigi"

	"github.com/ssbc/go-ndjson/codec"
	jsoncdc "github.com/ssbc/go-ndjson/codec/json"
)

var (
	_ luigi.Source = (*Decoder)(nil)
	_ luigi.Sink   = (*Encoder)(nil)
)

// DecoderOpt configures a Decoder.
type DecoderOpt func(*Decoder) error

// DecoderCodec sets the codec used to interpret cell contents. The
// default is codec/json.New(nil).
func DecoderCodec(c codec.Codec) DecoderOpt {
	return func(d *Decoder) error {
		if c == nil {
			return errors.New("csvconv: nil codec")
		}
		d.cdc = c
		return nil
	}
}

// NewDecoder reads CSV from r. The first row is taken as the header;
// every following row yields one record.
func NewDecoder(r io.Reader, opts ...DecoderOpt) (*Decoder, error) {
	d := &Decoder{
		cr:  csv.NewReader(r),
		cdc: jsoncdc.New(nil),
	}

	for _, opt := range opts {
		err := opt(d)
		if err != nil {
			return nil, err
		}
	}

	return d, nil
}

// Decoder yields one record per CSV row, implementing luigi.Source.
type Decoder struct {
	cr   *csv.Reader
	cdc  codec.Codec
	cols []string
}

// Next returns the record for the next row, or luigi.EOS after the
// last one. Rows with a deviating number of cells are an error.
func (d *Decoder) Next(ctx context.Context) (interface{}, error) {
	err := ctx.Err()
	if err != nil {
		return nil, err
	}

	if d.cols == nil {
		header, err := d.cr.Read()
		if err == io.EOF {
			return nil, luigi.EOS{}
		}
		if err != nil {
			return nil, errors.Wrap(err, "error reading csv header")
		}
		d.cols = header
	}

	row, err := d.cr.Read()
	if err == io.EOF {
		return nil, luigi.EOS{}
	}
	if err != nil {
		return nil, errors.Wrap(err, "error reading csv row")
	}

	rec := make(map[string]interface{}, len(d.cols))
	for i, col := range d.cols {
		rec[col] = d.cell(row[i])
	}

	return rec, nil
}

// cell maps CSV cell text onto a record value: empty cells turn into
// nil, json cells into their value and everything else stays a string.
func (d *Decoder) cell(text string) interface{} {
	if text == "" {
		return nil
	}

	v, err := d.cdc.Unmarshal([]byte(text))
	if err != nil {
		return text
	}
	return v
}

// EncoderOpt configures an Encoder.
type EncoderOpt func(*Encoder) error

// EncoderCodec sets the codec used to render non-string cell values.
// The default is codec/json.New(nil).
func EncoderCodec(c codec.Codec) EncoderOpt {
	return func(e *Encoder) error {
		if c == nil {
			return errors.New("csvconv: nil codec")
		}
		e.cdc = c
		return nil
	}
}

// WithHeader controls whether the column names are written as the
// first row. On by default.
func WithHeader(on bool) EncoderOpt {
	return func(e *Encoder) error {
		e.header = on
		return nil
	}
}

// WithProjection makes the Encoder project every record onto the first
// record's columns: missing keys become empty cells and extra keys are
// dropped. Without it an extra key fails the record.
func WithProjection(on bool) EncoderOpt {
	return func(e *Encoder) error {
		e.project = on
		return nil
	}
}

// NewEncoder writes CSV to w. The first poured record fixes the
// column set, in sorted order.
func NewEncoder(w io.Writer, opts ...EncoderOpt) (*Encoder, error) {
	e := &Encoder{
		cw:     csv.NewWriter(w),
		cdc:    jsoncdc.New(nil),
		header: true,
	}

	for _, opt := range opts {
		err := opt(e)
		if err != nil {
			return nil, err
		}
	}

	return e, nil
}

// Encoder writes one CSV row per record, implementing luigi.Sink.
type Encoder struct {
	cw      *csv.Writer
	cdc     codec.Codec
	header  bool
	project bool
	cols    []string
	closed  bool
}

// Pour writes the row for one record. Records must be objects.
func (e *Encoder) Pour(ctx context.Context, v interface{}) error {
	err := ctx.Err()
	if err != nil {
		return err
	}
	if e.closed {
		return errors.New("csvconv: encoder already closed")
	}

	rec, ok := v.(map[string]interface{})
	if !ok {
		return errors.Errorf("csvconv: need object records, got %T", v)
	}

	if e.cols == nil {
		e.cols = make([]string, 0, len(rec))
		for k := range rec {
			e.cols = append(e.cols, k)
		}
		sort.Strings(e.cols)

		if e.header {
			err := e.cw.Write(e.cols)
			if err != nil {
				return errors.Wrap(err, "error writing csv header")
			}
		}
	}

	if !e.project {
		for k := range rec {
			if !e.hasCol(k) {
				return errors.Errorf("csvconv: record key %q not in csv columns", k)
			}
		}
	}

	row := make([]string, len(e.cols))
	for i, col := range e.cols {
		row[i], err = e.cell(rec[col])
		if err != nil {
			return err
		}
	}

	err = e.cw.Write(row)
	return errors.Wrap(err, "error writing csv row")
}

func (e *Encoder) hasCol(name string) bool {
	for _, c := range e.cols {
		if c == name {
			return true
		}
	}
	return false
}

// cell renders a record value as CSV cell text. Strings stay as they
// are so they do not get quoted twice, nil empties the cell and other
// values go back through the codec.
func (e *Encoder) cell(v interface{}) (string, error) {
	switch tv := v.(type) {
	case nil:
		return "", nil
	case string:
		return tv, nil
	}

	data, err := e.cdc.Marshal(v)
	if err != nil {
		return "", errors.Wrap(err, "error encoding cell value")
	}
	return string(data), nil
}

// Flush forces buffered rows down to the writer.
func (e *Encoder) Flush() error {
	e.cw.Flush()
	return errors.Wrap(e.cw.Error(), "error flushing csv")
}

// Close flushes. It satisfies luigi.Sink; the wrapped writer is left
// open for the caller.
func (e *Encoder) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true

	return e.Flush()
}
