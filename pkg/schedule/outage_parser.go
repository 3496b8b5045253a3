package schedule

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"outageschedule/pkg/addresses"
	attr "outageschedule/pkg/api/attribute"
	apiParser "outageschedule/pkg/api/parsers"
	apiStreams "outageschedule/pkg/api/streams"
	"outageschedule/pkg/timewindow"
	"outageschedule/pkg/translit"
)

var (
	_ attr.Outage            = (*outage)(nil)
	_ apiParser.OutageParser = (*outageParser)(nil)
)

// outage is one schedule record that parsed cleanly
type outage struct {
	index  int
	date   string
	window timewindow.Window
	row    *addresses.Row
}

func (o *outage) Index() int                { return o.index }
func (o *outage) Date() string              { return o.date }
func (o *outage) Window() timewindow.Window { return o.window }
func (o *outage) Addresses() *addresses.Row { return o.row }

// MarshalJSON implements json.Marshaler.
func (o *outage) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Index   int               `json:"index"`
		Date    string            `json:"date"`
		Window  timewindow.Window `json:"window"`
		Streets *addresses.Row    `json:"streets"`
	}{o.index, o.date, o.window, o.row})
}

// outageParser turns three column schedule records into outages.
// It implements the OutageParser interface
type outageParser struct {
	stream     apiStreams.RecordStream
	dateIdx    int
	windowIdx  int
	addressIdx int
	workers    int
	strict     bool
	raw        bool
}

// NewOutageParser creates a new outage parser over the given record stream.
// By default columns 0, 1 and 2 hold the date, the time window and the addresses.
func NewOutageParser(stream apiStreams.RecordStream, opts ...OutageParserOption) (apiParser.OutageParser, error) {
	if stream == nil {
		return nil, errNilRecordStream
	}
	p := &outageParser{
		stream:     stream,
		dateIdx:    0,
		windowIdx:  1,
		addressIdx: 2,
		workers:    runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

type job struct {
	index  int
	record []string
}

// result carries a nil outage for a skipped record so that ordering can
// advance past it.
type result struct {
	index  int
	outage attr.Outage
}

// ParseOutages reads the record stream and sends parsed outages to the provided
// channel in record order. Records are parsed by a pool of workers.
// The channel is closed when parsing is complete or an error occurs
func (p *outageParser) ParseOutages(ctx context.Context, out chan<- attr.Outage) error {
	if p == nil || p.stream == nil {
		close(out)
		return errNilParserOrStream
	}
	defer close(out)

	g, gctx := errgroup.WithContext(ctx)
	jobs := make(chan job, p.workers)
	results := make(chan result, p.workers)

	g.Go(func() error {
		defer close(jobs)
		return p.readRecords(gctx, jobs)
	})

	var wg sync.WaitGroup
	for range p.workers {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			for j := range jobs {
				r := result{index: j.index}
				if o, err := p.parseRecord(gctx, j); err != nil {
					slog.WarnContext(gctx, "Skipping record",
						slog.Int("record", j.index),
						slog.String("reason", Classify(err)),
						slog.String("cause", Cause(err)),
						slog.Any("error", err))
				} else {
					r.outage = o
				}
				select {
				case <-gctx.Done():
					return gctx.Err()
				case results <- r:
				}
			}
			return nil
		})
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	g.Go(func() error {
		return emitInOrder(gctx, results, out)
	})

	return g.Wait()
}

func (p *outageParser) readRecords(ctx context.Context, jobs chan<- job) error {
	for index := 0; ; index++ {
		record, err := p.stream.ReadRecord(ctx)
		if errors.Is(err, io.EOF) {
			slog.DebugContext(ctx, "End of record stream", slog.Int("records", index))
			return nil
		}
		if err != nil {
			return fmt.Errorf("read record %d: %w", index, err)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case jobs <- job{index: index, record: record}:
		}
	}
}

// emitInOrder holds back results that arrive ahead of their turn.
func emitInOrder(ctx context.Context, results <-chan result, out chan<- attr.Outage) error {
	pending := make(map[int]attr.Outage)
	next := 0
	for r := range results {
		pending[r.index] = r.outage
		for {
			o, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			next++
			if o == nil {
				continue
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case out <- o:
			}
		}
	}
	return nil
}

func (p *outageParser) parseRecord(ctx context.Context, j job) (attr.Outage, error) {
	record := j.record
	if len(record) <= max(p.dateIdx, p.windowIdx, p.addressIdx) {
		return nil, fmt.Errorf("%w: got %d", errMissingColumns, len(record))
	}

	date := strings.TrimSpace(record[p.dateIdx])
	line := record[p.addressIdx]
	if !p.raw {
		date = translit.Transliterate(date)
		line = translit.Transliterate(line)
	}

	window, err := timewindow.Parse(record[p.windowIdx])
	if err != nil {
		return nil, err
	}

	var opts []addresses.Option
	if p.strict {
		opts = append(opts, addresses.WithStrict())
	}
	row, err := addresses.Parse(line, opts...)
	if err != nil {
		return nil, err
	}
	if rest := row.Rest(); rest != "" {
		slog.DebugContext(ctx, "Dropped unparsed address text", slog.Int("record", j.index), slog.String("rest", rest))
	}

	return &outage{index: j.index, date: date, window: window, row: row}, nil
}
