package schedule

import (
	"fmt"
	"strings"
)

// OutageParserOption configures an OutageParser
type OutageParserOption func(*outageParser) error

// WithColNames selects the date, time window and address columns by header lookup
func WithColNames(dateColName, windowColName, addressColName string) OutageParserOption {
	return func(p *outageParser) error {
		names := []string{
			strings.TrimSpace(dateColName),
			strings.TrimSpace(windowColName),
			strings.TrimSpace(addressColName),
		}
		for i, name := range names {
			if name == "" {
				return errColumnNotSpecified
			}
			for _, other := range names[:i] {
				if strings.EqualFold(name, other) {
					return errColumnNamesEqual
				}
			}
		}

		header := p.stream.GetHeader()
		if len(header) == 0 {
			return errNoHeader
		}
		idx := []int{-1, -1, -1}
		for i, col := range header {
			col = strings.TrimSpace(col)
			for j, name := range names {
				if idx[j] == -1 && strings.EqualFold(col, name) {
					idx[j] = i
				}
			}
		}
		for j, name := range names {
			if idx[j] == -1 {
				return fmt.Errorf("%w: %q", errColumnMissing, name)
			}
		}
		p.dateIdx, p.windowIdx, p.addressIdx = idx[0], idx[1], idx[2]
		return nil
	}
}

// WithColIndexes sets the date, time window and address column indexes directly
func WithColIndexes(dateColIdx, windowColIdx, addressColIdx int) OutageParserOption {
	return func(p *outageParser) error {
		if dateColIdx < 0 || windowColIdx < 0 || addressColIdx < 0 {
			return errColumnIndexNotSpecified
		}
		if dateColIdx == windowColIdx || dateColIdx == addressColIdx || windowColIdx == addressColIdx {
			return errColumnIndexesEqual
		}
		p.dateIdx, p.windowIdx, p.addressIdx = dateColIdx, windowColIdx, addressColIdx
		return nil
	}
}

// WithWorkers sets how many records are parsed concurrently
func WithWorkers(n int) OutageParserOption {
	return func(p *outageParser) error {
		if n <= 0 {
			return errInvalidWorkers
		}
		p.workers = n
		return nil
	}
}

// WithStrict rejects records whose address text has an unparsable tail
func WithStrict() OutageParserOption {
	return func(p *outageParser) error {
		p.strict = true
		return nil
	}
}

// WithoutTransliteration parses the date and address columns as they are.
// The address grammar only accepts uppercase Latin text.
func WithoutTransliteration() OutageParserOption {
	return func(p *outageParser) error {
		p.raw = true
		return nil
	}
}
