// SPDX-FileCopyrightText: 2025 The go-ndjson Authors
//
// SPDX-License-Identifier: MIT

package ndjson

import (
	"context"
	"strings"

	"github.com/ssbc/go-luigi"
)

// ReadAll opens src for reading and collects every record in order.
// The stream it creates is closed before returning, also on error.
func ReadAll(ctx context.Context, src interface{}, opts ...StreamOpt) ([]interface{}, error) {
	s, err := Open(src, ModeRead, opts...)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	var vs []interface{}
	for {
		v, err := s.Next(ctx)
		if luigi.IsEOS(err) {
			return vs, nil
		}
		if err != nil {
			return nil, err
		}

		vs = append(vs, v)
	}
}

// ReadAllString collects every record from an in-memory chunk of
// newline-delimited text.
func ReadAllString(ctx context.Context, text string, opts ...StreamOpt) ([]interface{}, error) {
	return ReadAll(ctx, strings.NewReader(text), opts...)
}

// WriteAll opens dst for writing, appends vs in order and closes the
// stream it created on every path, success and failure alike.
func WriteAll(ctx context.Context, dst interface{}, vs []interface{}, opts ...StreamOpt) error {
	s, err := Open(dst, ModeWrite, opts...)
	if err != nil {
		return err
	}
	defer s.Close()

	for _, v := range vs {
		err := s.Pour(ctx, v)
		if err != nil {
			return err
		}
	}

	return s.Close()
}

// WriteAllString writes vs as newline-delimited text into an in-memory
// buffer and returns the accumulated text.
func WriteAllString(ctx context.Context, vs []interface{}, opts ...StreamOpt) (string, error) {
	var sb strings.Builder

	err := WriteAll(ctx, &sb, vs, opts...)
	if err != nil {
		return "", err
	}

	return sb.String(), nil
}
