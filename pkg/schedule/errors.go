package schedule

import (
	"errors"

	"outageschedule/pkg/addresses"
	"outageschedule/pkg/timewindow"
)

var (
	// Error definitions
	errNilRecordStream         = errors.New("record stream cannot be nil")
	errNoHeader                = errors.New("record stream has no header")
	errColumnNotSpecified      = errors.New("column name not specified")
	errColumnIndexNotSpecified = errors.New("column index not specified")
	errColumnNamesEqual        = errors.New("column names are not distinct")
	errColumnIndexesEqual      = errors.New("column indexes are not distinct")
	errColumnMissing           = errors.New("column not found in header")
	errInvalidWorkers          = errors.New("number of workers must be positive")
	errNilParserOrStream       = errors.New("parser or stream is nil")
	errMissingColumns          = errors.New("record has too few columns")
)

// Classify names the part of a record that made it unusable: "columns",
// "window", or the address production that failed ("list" or "entry").
func Classify(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, errMissingColumns):
		return "columns"
	case errors.Is(err, timewindow.ErrMalformedWindow), errors.Is(err, timewindow.ErrTimeOutOfRange):
		return "window"
	}
	var perr *addresses.ParseError
	if errors.As(err, &perr) {
		return perr.Kind.String()
	}
	return "unknown"
}

// Cause names the innermost grammar failure behind err, e.g. "token" for a
// list whose first item is not a house number. It is empty for other errors.
func Cause(err error) string {
	var perr *addresses.ParseError
	if !errors.As(err, &perr) {
		return ""
	}
	return perr.Root().Kind.String()
}
