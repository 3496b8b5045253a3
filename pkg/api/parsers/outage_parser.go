package parsers

import (
	"context"

	attr "outageschedule/pkg/api/attribute"
)

// OutageParser defines an interface for turning schedule records into outages
// and sending them to a channel
type OutageParser interface {
	// ParseOutages reads records from a source and sends parsed outages to the
	// provided channel in source order. Malformed records are logged and skipped.
	// The channel is closed when parsing is complete or an error occurs.
	ParseOutages(ctx context.Context, out chan<- attr.Outage) error
}
