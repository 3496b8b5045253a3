// Package timewindow parses outage time windows such as "08:30-14:00".
package timewindow

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const minutesPerDay = 24 * 60

// TimeOfDay is a wall clock time with minute precision.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// Minutes returns the number of minutes since midnight.
func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Window is the interval between two times of day. To may be earlier than
// From, in which case the window ends on the next day.
type Window struct {
	From TimeOfDay
	To   TimeOfDay
}

// Duration returns the length of the window.
func (w Window) Duration() time.Duration {
	d := w.To.Minutes() - w.From.Minutes()
	if d < 0 {
		d += minutesPerDay
	}
	return time.Duration(d) * time.Minute
}

func (w Window) String() string {
	return w.From.String() + "-" + w.To.String()
}

// MarshalText implements encoding.TextMarshaler.
func (w Window) MarshalText() ([]byte, error) {
	return []byte(w.String()), nil
}

// Parse parses "HH:MM-HH:MM". Surrounding whitespace is ignored, nothing else
// may follow the second time.
func Parse(s string) (Window, error) {
	from, rest, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		return Window{}, fmt.Errorf("%w: %q", ErrMalformedWindow, s)
	}
	f, err := parseTime(from)
	if err != nil {
		return Window{}, fmt.Errorf("%w: %q", err, s)
	}
	t, err := parseTime(rest)
	if err != nil {
		return Window{}, fmt.Errorf("%w: %q", err, s)
	}
	return Window{From: f, To: t}, nil
}

func parseTime(s string) (TimeOfDay, error) {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok || !allDigits(hh) || !allDigits(mm) {
		return TimeOfDay{}, ErrMalformedWindow
	}
	h, err := strconv.Atoi(hh)
	if err != nil {
		return TimeOfDay{}, ErrTimeOutOfRange
	}
	m, err := strconv.Atoi(mm)
	if err != nil {
		return TimeOfDay{}, ErrTimeOutOfRange
	}
	if h > 23 || m > 59 {
		return TimeOfDay{}, ErrTimeOutOfRange
	}
	return TimeOfDay{Hour: h, Minute: m}, nil
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
