// SPDX-FileCopyrightText: 2025 The go-ndjson Authors
//
// SPDX-License-Identifier: MIT

// nlj streams, loads and converts newline-delimited JSON files.
package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	"go.mindeco.de/logging"

	"github.com/ssbc/go-ndjson"
	"github.com/ssbc/go-ndjson/codec"
	jsoncdc "github.com/ssbc/go-ndjson/codec/json"
	"github.com/ssbc/go-ndjson/codec/ujson"
)

var check = logging.CheckFatal

var cli struct {
	JSON         string `kong:"short='j',default='json',enum='json,ujson',help='JSON codec used for records.',env='NLJ_JSON'"`
	SkipFailures bool   `kong:"help='Count records that fail to decode or encode instead of aborting.',env='NLJ_SKIP_FAILURES'"`
	Delimiter    string `kong:"short='d',help='Line delimiter for written records. Defaults to the platform newline.',env='NLJ_DELIMITER'"`
	Compression  string `kong:"short='z',default='auto',enum='auto,none,gzip,zstd',help='File compression. auto sniffs .gz/.zst extensions.',env='NLJ_COMPRESSION'"`

	Cat     catCmd     `kong:"cmd,help='Copy records from INFILE to OUTFILE, re-encoding each one.'"`
	Load    loadCmd    `kong:"cmd,help='Read all records into memory, then write them to OUTFILE.'"`
	Csv2nlj csv2nljCmd `kong:"cmd,name='csv2nlj',help='Convert a CSV table to newline-delimited JSON.'"`
	Nlj2csv nlj2csvCmd `kong:"cmd,name='nlj2csv',help='Convert newline-delimited JSON to a CSV table.'"`
}

func main() {
	logging.SetupLogging(nil)

	kctx := kong.Parse(&cli,
		kong.Name("nlj"),
		kong.Description("Stream and convert newline-delimited JSON."),
		kong.UsageOnError(),
	)

	g := &globals{
		json:         cli.JSON,
		skipFailures: cli.SkipFailures,
		delimiter:    cli.Delimiter,
		compression:  cli.Compression,
		log:          logging.Logger("nlj"),
	}

	check(kctx.Run(g))
}

// globals carries the flag state shared by every command.
type globals struct {
	json         string
	skipFailures bool
	delimiter    string
	compression  string

	log logging.Interface
}

func (g *globals) codec() codec.Codec {
	if g.json == "ujson" {
		return ujson.New(nil)
	}
	return jsoncdc.New(nil)
}

// streamOpt bundles the shared flags into a single option.
func (g *globals) streamOpt() ndjson.StreamOpt {
	opts := []ndjson.StreamOpt{
		ndjson.WithCodec(g.codec()),
		ndjson.WithSkipFailures(g.skipFailures),
	}
	if g.delimiter != "" {
		opts = append(opts, ndjson.WithDelimiter(g.delimiter))
	}
	return ndjson.MergeStreamOpts(opts...)
}

func (g *globals) resolveCompression(path string) string {
	if path == ndjson.Stdio {
		return compNone
	}
	if g.compression == compAuto {
		return sniffCompression(path)
	}
	return g.compression
}

// openIn opens path as a record stream for reading, decompressing if
// the scheme asks for it.
func (g *globals) openIn(path string, extra ...ndjson.StreamOpt) (*ndjson.Stream, error) {
	opts := append([]ndjson.StreamOpt{g.streamOpt()}, extra...)

	comp := g.resolveCompression(path)
	if comp == compNone {
		return ndjson.Open(path, ndjson.ModeRead, opts...)
	}

	r, err := g.openRaw(path)
	if err != nil {
		return nil, err
	}

	s, err := ndjson.NewStream(r, ndjson.ModeRead, opts...)
	if err != nil {
		r.Close()
		return nil, err
	}
	return s, nil
}

// openOut opens path as a record stream for writing, truncating and
// compressing as configured.
func (g *globals) openOut(path string) (*ndjson.Stream, error) {
	comp := g.resolveCompression(path)
	if comp == compNone {
		return ndjson.Open(path, ndjson.ModeWrite, g.streamOpt())
	}

	w, err := g.createRaw(path)
	if err != nil {
		return nil, err
	}

	s, err := ndjson.NewStream(w, ndjson.ModeWrite, g.streamOpt())
	if err != nil {
		w.Close()
		return nil, err
	}
	return s, nil
}

// openRaw opens path as a plain byte reader, decompressing as
// configured. The sentinel "-" means stdin.
func (g *globals) openRaw(path string) (io.ReadCloser, error) {
	if path == ndjson.Stdio {
		return io.NopCloser(os.Stdin), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	r, err := wrapInputFile(f, g.resolveCompression(path))
	if err != nil {
		f.Close()
		return nil, err
	}
	return r, nil
}

// createRaw opens path as a plain byte writer, compressing as
// configured. The sentinel "-" means stdout, which stays open.
func (g *globals) createRaw(path string) (io.WriteCloser, error) {
	if path == ndjson.Stdio {
		return &namedWriter{Writer: os.Stdout, name: os.Stdout.Name()}, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	w, err := wrapOutputFile(f, g.resolveCompression(path))
	if err != nil {
		f.Close()
		return nil, err
	}
	return w, nil
}

// reportFailures logs the combined skip count of the given streams.
func (g *globals) reportFailures(streams ...*ndjson.Stream) {
	var n int64
	for _, s := range streams {
		n += s.Failures()
	}
	if n > 0 {
		g.log.Log("event", "records skipped", "failures", n)
	}
}
