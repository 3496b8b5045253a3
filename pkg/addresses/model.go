// Package addresses parses the street and house-number lists published in
// scheduled power outage notices, e.g. "MAIN ST: BB,12,15-19A,".
package addresses

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Number is a house number with an optional verbatim extension such as
// "A", "A/1" or "/1". An empty Extension means there is none.
type Number struct {
	Value     uint64
	Extension string
}

// HasExtension reports whether letters or a "/digits" suffix followed the digits.
func (n Number) HasExtension() bool {
	return n.Extension != ""
}

// String implements fmt.Stringer.
func (n Number) String() string {
	return strconv.FormatUint(n.Value, 10) + n.Extension
}

type numberJSON struct {
	Value     uint64 `json:"value"`
	Extension string `json:"extension,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (n Number) MarshalJSON() ([]byte, error) {
	return json.Marshal(numberJSON{Value: n.Value, Extension: n.Extension})
}

// Spec is one comma separated item of a street's number list.
// It is implemented by NoNumber, Single and Range only.
type Spec interface {
	fmt.Stringer
	json.Marshaler
	isSpec()
}

var (
	_ Spec = NoNumber{}
	_ Spec = Single{}
	_ Spec = Range{}
)

// NoNumber is the "BB" marker: the street segment has no house numbers assigned.
type NoNumber struct{}

func (NoNumber) isSpec() {}

func (NoNumber) String() string { return "BB" }

// MarshalJSON implements json.Marshaler.
func (NoNumber) MarshalJSON() ([]byte, error) {
	return []byte(`{"kind":"bb"}`), nil
}

// Single is one house number.
type Single struct {
	Number
}

func (Single) isSpec() {}

// MarshalJSON implements json.Marshaler.
func (s Single) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind string `json:"kind"`
		numberJSON
	}{Kind: "single", numberJSON: numberJSON{Value: s.Value, Extension: s.Extension}})
}

// Range is an inclusive span of house numbers. From is not required to be
// lower than To.
type Range struct {
	From Number
	To   Number
}

func (Range) isSpec() {}

// String implements fmt.Stringer.
func (r Range) String() string {
	return r.From.String() + "-" + r.To.String()
}

// MarshalJSON implements json.Marshaler.
func (r Range) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind string `json:"kind"`
		From Number `json:"from"`
		To   Number `json:"to"`
	}{Kind: "range", From: r.From, To: r.To})
}

// StreetEntry is a street name with its list of house number specifications.
type StreetEntry struct {
	Street  string `json:"street"`
	Numbers []Spec `json:"numbers"`
}

// Specs are values, so copying the slice detaches the entry from its Row.
func (e StreetEntry) clone() StreetEntry {
	e.Numbers = slices.Clone(e.Numbers)
	return e
}

// String renders the entry in the form it is parsed from, with a trailing comma.
func (e StreetEntry) String() string {
	var sb strings.Builder
	sb.WriteString(e.Street)
	sb.WriteString(": ")
	for _, s := range e.Numbers {
		sb.WriteString(s.String())
		sb.WriteByte(',')
	}
	return sb.String()
}
