package numeric

import (
	"encoding/json"
	"testing"

	apd "github.com/cockroachdb/apd/v3"
)

func TestHours(t *testing.T) {
	tests := []struct {
		name    string
		minutes int64
		count   int64
		want    string
	}{
		{"Whole hours", 120, 1, "2.00"},
		{"Half hour", 330, 1, "5.50"},
		{"Average over two", 570, 2, "4.75"},
		{"Rounds half to even", 15, 2, "0.12"},
		{"Repeating fraction", 100, 3, "0.56"},
		{"No outages", 0, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Hours(apd.New(tt.minutes, 0), tt.count)
			if err != nil {
				t.Fatalf("Hours() error = %v", err)
			}
			if got.String() != tt.want {
				t.Errorf("Hours(%d, %d) = %s, want %s", tt.minutes, tt.count, got, tt.want)
			}
		})
	}
}

func TestDecimalEquality(t *testing.T) {
	a := NewDecimalAttribute(apd.New(150, -2))
	b := NewDecimalAttribute(apd.New(15, -1))
	if !a.EqualTo(b) {
		t.Errorf("%s != %s", a, b)
	}
	if a.EqualTo(NoneNumeric) || NoneNumeric.EqualTo(a) || a.EqualTo(nil) {
		t.Errorf("decimal compared equal to nothing")
	}
}

func TestDecimalJSON(t *testing.T) {
	h, err := Hours(apd.New(90, 0), 1)
	if err != nil {
		t.Fatal(err)
	}
	data, err := json.Marshal(h)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"1.50"` {
		t.Errorf("json.Marshal() = %s", data)
	}
}

func TestNothingJSON(t *testing.T) {
	data, err := json.Marshal(NoneNumeric)
	if err != nil || string(data) != "null" {
		t.Errorf("json.Marshal(NoneNumeric) = %s, %v", data, err)
	}
}
