package streams

import (
	"context"
	"encoding/csv"
	"io"

	iface "outageschedule/pkg/api/streams"
)

type csvReader struct {
	reader *csv.Reader
	header []string
}

var _ iface.RecordStream = (*csvReader)(nil)

// NewCsvStream creates a new delimited text stream from an io.Reader.
// With WithHeader it reads the header row immediately.
func NewCsvStream(reader io.Reader, opts ...StreamOption) (iface.RecordStream, error) {
	cfg, err := newStreamConfig(opts)
	if err != nil {
		return nil, err
	}
	if cfg.encoding != nil {
		reader = cfg.encoding.NewDecoder().Reader(reader)
	}

	csvR := csv.NewReader(reader)
	csvR.Comma = cfg.comma
	// address cells are free text with stray quotes and uneven rows
	csvR.LazyQuotes = true
	csvR.FieldsPerRecord = -1

	c := &csvReader{reader: csvR}
	if cfg.header {
		header, err := csvR.Read()
		if err != nil {
			return nil, err
		}
		c.header = header
	}
	return c, nil
}

// ReadRecord implements RecordStream.
func (c *csvReader) ReadRecord(ctx context.Context) ([]string, error) {
	if c == nil || c.reader == nil {
		return nil, io.EOF
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
		return c.reader.Read()
	}
}

// GetHeader implements RecordStream.
func (c *csvReader) GetHeader() []string {
	if c == nil {
		return nil
	}
	return c.header
}
