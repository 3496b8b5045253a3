package attribute

import (
	"fmt"
	"regexp"
	"strings"
)

// StreetName is a street name normalized for grouping.
type StreetName string

var (
	_             fmt.Stringer = (*StreetName)(nil)
	spaceSquasher              = regexp.MustCompile(`\s+`)
)

// String implements fmt.Stringer.
func (s StreetName) String() string {
	return string(s)
}

// ParseStreetName trims, uppercases and squashes inner whitespace, so that
// "KLISINA NOVA  8" and "Klisina Nova 8" group together.
func ParseStreetName(s string) StreetName {
	s = spaceSquasher.ReplaceAllString(strings.ToUpper(strings.TrimSpace(s)), " ")
	return StreetName(s)
}
