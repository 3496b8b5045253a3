package attribute

import (
	"outageschedule/pkg/addresses"
	"outageschedule/pkg/timewindow"
)

// Outage is one parsed row of an outage schedule.
type Outage interface {
	// Index returns the zero based position of the row in its source
	Index() int

	// Date returns the transliterated date column
	Date() string

	// Window returns the time of day the power is off
	Window() timewindow.Window

	// Addresses returns the affected streets and house numbers
	Addresses() *addresses.Row
}
