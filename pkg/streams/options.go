package streams

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
)

// StreamOption configures a record stream
type StreamOption func(*streamConfig) error

type streamConfig struct {
	comma    rune
	header   bool
	encoding encoding.Encoding
}

func newStreamConfig(opts []StreamOption) (*streamConfig, error) {
	cfg := &streamConfig{comma: ','}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// WithComma sets the field delimiter of delimited text, ',' by default
func WithComma(comma rune) StreamOption {
	return func(c *streamConfig) error {
		if comma == 0 || comma == '"' || comma == '\r' || comma == '\n' || !utf8.ValidRune(comma) {
			return fmt.Errorf("invalid field delimiter %q", comma)
		}
		c.comma = comma
		return nil
	}
}

// WithHeader makes the stream treat the first record as a header row
func WithHeader() StreamOption {
	return func(c *streamConfig) error {
		c.header = true
		return nil
	}
}

// Schedules published by the utility are often saved from legacy Windows tools.
var knownEncodings = map[string]encoding.Encoding{
	"utf-8":        unicode.UTF8,
	"utf8":         unicode.UTF8,
	"windows-1250": charmap.Windows1250,
	"cp1250":       charmap.Windows1250,
	"windows-1251": charmap.Windows1251,
	"cp1251":       charmap.Windows1251,
	"iso-8859-2":   charmap.ISO8859_2,
	"latin2":       charmap.ISO8859_2,
	"iso-8859-5":   charmap.ISO8859_5,
}

// WithEncoding decodes the input from the named character set into UTF-8.
// Names not in the short list are resolved through the WHATWG encoding index.
func WithEncoding(name string) StreamOption {
	return func(c *streamConfig) error {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			return nil
		}
		if enc, ok := knownEncodings[name]; ok {
			c.encoding = enc
			return nil
		}
		enc, err := htmlindex.Get(name)
		if err != nil {
			return fmt.Errorf("%w: %s", errUnknownEncoding, name)
		}
		c.encoding = enc
		return nil
	}
}
