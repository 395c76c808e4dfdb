// SPDX-FileCopyrightText: 2025 The go-ndjson Authors
//
// SPDX-License-Identifier: MIT

package main

import (
	"context"

	"github.com/pkg/errors"
	"github.com/ssbc/go-luigi"

	"github.com/ssbc/go-ndjson"
	"github.com/ssbc/go-ndjson/csvconv"
)

type catCmd struct {
	Infile    string `kong:"arg,default='-',help='Input path, or - for stdin.'"`
	Outfile   string `kong:"arg,default='-',help='Output path, or - for stdout.'"`
	SkipLines int    `kong:"placeholder='N',help='Discard N leading records before copying.'"`
}

func (c *catCmd) Run(g *globals) error {
	ctx := context.Background()

	in, err := g.openIn(c.Infile, ndjson.WithSkipLines(c.SkipLines))
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := g.openOut(c.Outfile)
	if err != nil {
		return err
	}
	defer out.Close()

	err = luigi.Pump(ctx, out, in)
	if err != nil {
		return errors.Wrap(err, "error copying records")
	}

	err = out.Close()
	if err != nil {
		return err
	}

	g.reportFailures(in, out)
	return nil
}

type loadCmd struct {
	Infile  string `kong:"arg,default='-',help='Input path, or - for stdin.'"`
	Outfile string `kong:"arg,default='-',help='Output path, or - for stdout.'"`
}

func (c *loadCmd) Run(g *globals) error {
	ctx := context.Background()

	in, err := g.openIn(c.Infile)
	if err != nil {
		return err
	}
	defer in.Close()

	var recs []interface{}
	for {
		v, err := in.Next(ctx)
		if luigi.IsEOS(err) {
			break
		} else if err != nil {
			return errors.Wrap(err, "error loading records")
		}
		recs = append(recs, v)
	}

	err = in.Close()
	if err != nil {
		return err
	}

	out, err := g.openOut(c.Outfile)
	if err != nil {
		return err
	}
	defer out.Close()

	for _, v := range recs {
		err = out.Pour(ctx, v)
		if err != nil {
			return errors.Wrap(err, "error writing records")
		}
	}

	err = out.Close()
	if err != nil {
		return err
	}

	g.reportFailures(in, out)
	return nil
}

type csv2nljCmd struct {
	Infile  string `kong:"arg,default='-',help='Input CSV path, or - for stdin.'"`
	Outfile string `kong:"arg,default='-',help='Output path, or - for stdout.'"`
}

func (c *csv2nljCmd) Run(g *globals) error {
	ctx := context.Background()

	r, err := g.openRaw(c.Infile)
	if err != nil {
		return err
	}
	defer r.Close()

	dec, err := csvconv.NewDecoder(r, csvconv.DecoderCodec(g.codec()))
	if err != nil {
		return err
	}

	out, err := g.openOut(c.Outfile)
	if err != nil {
		return err
	}
	defer out.Close()

	err = luigi.Pump(ctx, out, dec)
	if err != nil {
		return errors.Wrap(err, "error converting table")
	}

	err = out.Close()
	if err != nil {
		return err
	}

	err = r.Close()
	if err != nil {
		return err
	}

	g.reportFailures(out)
	return nil
}

type nlj2csvCmd struct {
	Infile  string `kong:"arg,default='-',help='Input path, or - for stdin.'"`
	Outfile string `kong:"arg,default='-',help='Output CSV path, or - for stdout.'"`
	Header  bool   `kong:"default='true',negatable,help='Write the column header row.'"`
}

func (c *nlj2csvCmd) Run(g *globals) error {
	ctx := context.Background()

	in, err := g.openIn(c.Infile)
	if err != nil {
		return err
	}
	defer in.Close()

	w, err := g.createRaw(c.Outfile)
	if err != nil {
		return err
	}
	defer w.Close()

	enc, err := csvconv.NewEncoder(w,
		csvconv.EncoderCodec(g.codec()),
		csvconv.WithHeader(c.Header),
		csvconv.WithProjection(g.skipFailures),
	)
	if err != nil {
		return err
	}

	err = luigi.Pump(ctx, enc, in)
	if err != nil {
		return errors.Wrap(err, "error converting records")
	}

	err = enc.Close()
	if err != nil {
		return err
	}

	err = w.Close()
	if err != nil {
		return err
	}

	g.reportFailures(in)
	return nil
}
