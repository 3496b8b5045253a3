package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/sync/errgroup"

	attr "outageschedule/pkg/api/attribute"
	apiParser "outageschedule/pkg/api/parsers"
	apiStreams "outageschedule/pkg/api/streams"
	"outageschedule/pkg/schedule"
	"outageschedule/pkg/streams"
)

const outageQueueSize = 1000

func open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open schedule file %q: %w", path, err)
	}
	return file, nil
}

// newOutageParser builds the record stream and parser the configuration asks for
func (a *app) newOutageParser(source io.Reader) (apiParser.OutageParser, error) {
	in := a.cfg.Input
	opts := []streams.StreamOption{streams.WithEncoding(in.Encoding)}
	if in.Header {
		opts = append(opts, streams.WithHeader())
	}
	if in.Format == "tsv" {
		opts = append(opts, streams.WithComma('\t'))
	}

	var stream apiStreams.RecordStream
	var err error
	if in.Format == "json" {
		stream, err = streams.NewJsonStream(source, opts...)
	} else {
		stream, err = streams.NewCsvStream(source, opts...)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create %s stream: %w", in.Format, err)
	}

	parserOpts := []schedule.OutageParserOption{schedule.WithWorkers(a.cfg.Parser.Workers)}
	if len(in.Columns) == 3 {
		parserOpts = append(parserOpts, schedule.WithColNames(in.Columns[0], in.Columns[1], in.Columns[2]))
	}
	if a.cfg.Parser.Strict {
		parserOpts = append(parserOpts, schedule.WithStrict())
	}
	if a.cfg.Parser.Raw {
		parserOpts = append(parserOpts, schedule.WithoutTransliteration())
	}
	parser, err := schedule.NewOutageParser(stream, parserOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create outage parser: %w", err)
	}
	return parser, nil
}

// withOutages parses the schedule file at path and hands the outages to consume
// while parsing is still running.
func (a *app) withOutages(ctx context.Context, path string, consume func(context.Context, <-chan attr.Outage) error) error {
	source, err := open(path)
	if err != nil {
		return err
	}
	defer source.Close()

	parser, err := a.newOutageParser(source)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	outages := make(chan attr.Outage, outageQueueSize)
	g.Go(func() error {
		return parser.ParseOutages(ctx, outages)
	})
	g.Go(func() error {
		return consume(ctx, outages)
	})
	return g.Wait()
}
