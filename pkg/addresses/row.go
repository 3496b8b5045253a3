package addresses

import (
	"encoding/json"
	"iter"
	"strings"
)

// Option configures Parse.
type Option func(*options)

type options struct {
	strict bool
}

// WithStrict makes Parse fail when text is left after the last street entry
// instead of silently dropping it.
func WithStrict() Option {
	return func(o *options) {
		o.strict = true
	}
}

// Row is the parsed form of one address line: street entries in source order.
// A Row is never modified after Parse returns it.
type Row struct {
	entries []StreetEntry
	rest    string
}

// Parse parses one uppercase, Latin-script address line.
//
// At least one street entry must be recognized. By default anything after
// the last recognized entry is discarded and only reported by Rest; with
// WithStrict it makes Parse fail. Errors are *ParseError values.
func Parse(line string, opts ...Option) (*Row, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	c := &cursor{input: line}
	entries, stop, err := c.row()
	if err != nil {
		return nil, err
	}
	if o.strict && stop != nil {
		return nil, stop
	}
	return &Row{entries: entries, rest: c.rest()}, nil
}

// Len returns the number of street entries.
func (r *Row) Len() int {
	if r == nil {
		return 0
	}
	return len(r.entries)
}

// Entry returns a copy of the i-th street entry.
func (r *Row) Entry(i int) StreetEntry {
	return r.entries[i].clone()
}

// Entries returns a copy of the street entries.
func (r *Row) Entries() []StreetEntry {
	if r == nil {
		return nil
	}
	entries := make([]StreetEntry, len(r.entries))
	for i, e := range r.entries {
		entries[i] = e.clone()
	}
	return entries
}

// All iterates over the street entries in source order.
func (r *Row) All() iter.Seq2[int, StreetEntry] {
	return func(yield func(int, StreetEntry) bool) {
		if r == nil {
			return
		}
		for i, e := range r.entries {
			if !yield(i, e.clone()) {
				return
			}
		}
	}
}

// Rest returns the text that followed the last recognized entry, if any.
func (r *Row) Rest() string {
	if r == nil {
		return ""
	}
	return r.rest
}

// String renders the entries so that parsing the result yields an equal Row,
// unless a street name is blank: "  : 2" parses but ": 2," does not.
func (r *Row) String() string {
	if r == nil {
		return ""
	}
	parts := make([]string, len(r.entries))
	for i, e := range r.entries {
		parts[i] = e.String()
	}
	return strings.Join(parts, " ")
}

// MarshalJSON implements json.Marshaler.
func (r *Row) MarshalJSON() ([]byte, error) {
	if r == nil {
		return []byte("null"), nil
	}
	return json.Marshal(r.entries)
}
