package streams

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	iface "outageschedule/pkg/api/streams"
)

type jsonReader struct {
	decoder *json.Decoder
	header  []string
	started bool
	done    bool
}

var _ iface.RecordStream = (*jsonReader)(nil)

// NewJsonStream creates a stream over a JSON array of string arrays:
//
//	[["date","window","addresses"],["12.03.","08:30-14:00","MAIN ST: 1-5"]]
//
// The array is decoded one record at a time.
func NewJsonStream(reader io.Reader, opts ...StreamOption) (iface.RecordStream, error) {
	cfg, err := newStreamConfig(opts)
	if err != nil {
		return nil, err
	}
	if cfg.encoding != nil {
		reader = cfg.encoding.NewDecoder().Reader(reader)
	}

	j := &jsonReader{decoder: json.NewDecoder(reader)}
	if cfg.header {
		header, err := j.next()
		if err != nil {
			return nil, err
		}
		j.header = header
	}
	return j, nil
}

func (j *jsonReader) next() ([]string, error) {
	if j.done {
		return nil, io.EOF
	}
	if !j.started {
		tok, err := j.decoder.Token()
		if err != nil {
			return nil, err
		}
		if delim, ok := tok.(json.Delim); !ok || delim != '[' {
			return nil, errNotAnArray
		}
		j.started = true
	}
	if !j.decoder.More() {
		// consume the closing bracket
		if _, err := j.decoder.Token(); err != nil {
			return nil, err
		}
		j.done = true
		return nil, io.EOF
	}
	var record []string
	if err := j.decoder.Decode(&record); err != nil {
		return nil, fmt.Errorf("%w: %v", errBadRecord, err)
	}
	return record, nil
}

// ReadRecord implements RecordStream.
func (j *jsonReader) ReadRecord(ctx context.Context) ([]string, error) {
	if j == nil || j.decoder == nil {
		return nil, io.EOF
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
		return j.next()
	}
}

// GetHeader implements RecordStream.
func (j *jsonReader) GetHeader() []string {
	if j == nil {
		return nil
	}
	return j.header
}
