package streams

import "context"

// RecordStream represents a stream of outage schedule records.
type RecordStream interface {
	// ReadRecord reads the next record from the stream, one string per column.
	// Returns io.EOF when the stream is exhausted.
	ReadRecord(ctx context.Context) ([]string, error)

	// GetHeader returns the header row of the source, or nil if it has none.
	GetHeader() []string
}
