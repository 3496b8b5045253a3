package addresses

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a grammar failure.
type ErrorKind int

const (
	// MalformedToken means digits were expected and none were found.
	MalformedToken ErrorKind = iota + 1
	// MalformedRange means the "-" or the right bound of a range is missing.
	// Parse never returns it: a broken range is read as a single number instead.
	MalformedRange
	// MalformedList means no number specification was found where one is
	// required. The failed specification is its Cause.
	MalformedList
	// MalformedEntry means the ":" is missing or no street name precedes it.
	MalformedEntry
)

var (
	ErrMalformedToken = errors.New("malformed house number")
	ErrMalformedRange = errors.New("malformed house number range")
	ErrMalformedList  = errors.New("malformed house number list")
	ErrMalformedEntry = errors.New("malformed street entry")
)

var _ fmt.Stringer = MalformedToken

// String implements fmt.Stringer.
func (k ErrorKind) String() string {
	switch k {
	case MalformedToken:
		return "token"
	case MalformedRange:
		return "range"
	case MalformedList:
		return "list"
	case MalformedEntry:
		return "entry"
	default:
		return "unknown"
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case MalformedToken:
		return ErrMalformedToken
	case MalformedRange:
		return ErrMalformedRange
	case MalformedList:
		return ErrMalformedList
	default:
		return ErrMalformedEntry
	}
}

// ParseError reports where and why a line could not be parsed.
// It unwraps to one of the ErrMalformed* sentinels and to its Cause, if any.
type ParseError struct {
	Kind      ErrorKind
	Offset    int    // byte offset into the parsed line
	Remaining string // unconsumed input starting at Offset
	Expected  string
	Cause     *ParseError
}

const snippetLen = 24

// Error implements error.
func (e *ParseError) Error() string {
	found := e.Remaining
	if len(found) > snippetLen {
		found = found[:snippetLen] + "..."
	}
	if found == "" {
		found = "end of input"
	} else {
		found = fmt.Sprintf("%q", found)
	}
	return fmt.Sprintf("%v at offset %d: expected %s, found %s", e.Kind.sentinel(), e.Offset, e.Expected, found)
}

func (e *ParseError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind.sentinel()}
	}
	return []error{e.Kind.sentinel(), e.Cause}
}

// Root returns the innermost error of the Cause chain.
func (e *ParseError) Root() *ParseError {
	for e.Cause != nil {
		e = e.Cause
	}
	return e
}
