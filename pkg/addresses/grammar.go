package addresses

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// cursor walks one input line. Every parse method either succeeds and
// advances pos, or fails and leaves pos where it was on entry.
type cursor struct {
	input string
	pos   int
}

func (c *cursor) rest() string {
	return c.input[c.pos:]
}

func (c *cursor) eof() bool {
	return c.pos >= len(c.input)
}

func (c *cursor) peek() byte {
	return c.peekAt(0)
}

func (c *cursor) peekAt(n int) byte {
	if c.pos+n >= len(c.input) {
		return 0
	}
	return c.input[c.pos+n]
}

func (c *cursor) errorAt(pos int, kind ErrorKind, expected string) *ParseError {
	return &ParseError{
		Kind:      kind,
		Offset:    pos,
		Remaining: c.input[pos:],
		Expected:  expected,
	}
}

func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

func (c *cursor) skipSpace() {
	for !c.eof() && isSpace(c.peek()) {
		c.pos++
	}
}

func (c *cursor) digits() string {
	start := c.pos
	for !c.eof() && isDigit(c.peek()) {
		c.pos++
	}
	return c.input[start:c.pos]
}

func (c *cursor) letters() {
	for !c.eof() {
		r, size := utf8.DecodeRuneInString(c.rest())
		if !unicode.IsLetter(r) {
			return
		}
		c.pos += size
	}
}

// number parses digits, then letters, then an optional "/digits" suffix.
// Everything after the digits is kept verbatim as the extension.
func (c *cursor) number() (Number, error) {
	start := c.pos
	digits := c.digits()
	if digits == "" {
		return Number{}, c.errorAt(start, MalformedToken, "house number")
	}
	value, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		c.pos = start
		return Number{}, c.errorAt(start, MalformedToken, "house number that fits 64 bits")
	}

	extStart := c.pos
	c.letters()
	if c.peek() == '/' && isDigit(c.peekAt(1)) {
		c.pos++
		c.digits()
	}
	return Number{Value: value, Extension: c.input[extStart:c.pos]}, nil
}

func (c *cursor) numberRange() (Range, error) {
	start := c.pos
	from, err := c.number()
	if err != nil {
		return Range{}, err
	}
	if c.peek() != '-' {
		perr := c.errorAt(c.pos, MalformedRange, `"-" between range bounds`)
		c.pos = start
		return Range{}, perr
	}
	c.pos++
	to, err := c.number()
	if err != nil {
		perr := c.errorAt(c.pos, MalformedRange, `house number after "-"`)
		c.pos = start
		return Range{}, perr
	}
	return Range{From: from, To: to}, nil
}

const noNumberMarker = "BB"

// spec tries the alternatives in a fixed order. Range has to come before
// Single: a single number would take the left bound and leave "-..." behind.
func (c *cursor) spec() (Spec, error) {
	if rest := c.rest(); len(rest) >= len(noNumberMarker) && strings.EqualFold(rest[:len(noNumberMarker)], noNumberMarker) {
		c.pos += len(noNumberMarker)
		return NoNumber{}, nil
	}
	if r, err := c.numberRange(); err == nil {
		return r, nil
	}
	if n, err := c.number(); err == nil {
		return Single{Number: n}, nil
	}
	return nil, c.errorAt(c.pos, MalformedToken, `"BB", house number or range`)
}

// list parses comma separated specs. Whitespace is allowed only around the
// whole list, and a single trailing comma is accepted.
func (c *cursor) list() ([]Spec, error) {
	start := c.pos
	c.skipSpace()
	first, err := c.spec()
	if err != nil {
		perr := c.errorAt(c.pos, MalformedList, "at least one house number specification")
		perr.Cause, _ = err.(*ParseError)
		c.pos = start
		return nil, perr
	}

	specs := []Spec{first}
	for c.peek() == ',' {
		sep := c.pos
		c.pos++
		s, err := c.spec()
		if err != nil {
			c.pos = sep
			break
		}
		specs = append(specs, s)
	}
	if c.peek() == ',' {
		c.pos++
	}
	c.skipSpace()
	return specs, nil
}

// entry parses "<street>:<list>". The street is everything up to the first
// colon, trimmed.
func (c *cursor) entry() (StreetEntry, error) {
	start := c.pos
	colon := strings.IndexByte(c.rest(), ':')
	switch {
	case colon < 0:
		return StreetEntry{}, c.errorAt(start, MalformedEntry, `street name followed by ":"`)
	case colon == 0:
		return StreetEntry{}, c.errorAt(start, MalformedEntry, `street name before ":"`)
	}

	street := strings.TrimSpace(c.input[start : start+colon])
	c.pos += colon + 1
	numbers, err := c.list()
	if err != nil {
		c.pos = start
		return StreetEntry{}, err
	}
	return StreetEntry{Street: street, Numbers: numbers}, nil
}

// row applies entry until it fails. The first entry is mandatory; the error
// of the attempt that ended the row is returned as stop.
func (c *cursor) row() (entries []StreetEntry, stop error, err error) {
	first, err := c.entry()
	if err != nil {
		return nil, nil, err
	}
	entries = []StreetEntry{first}
	for !c.eof() {
		e, err := c.entry()
		if err != nil {
			return entries, err, nil
		}
		entries = append(entries, e)
	}
	return entries, nil, nil
}
