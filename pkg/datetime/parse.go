// Package datetime provides date utility functions for claim dates and
// payment scheduling.
package datetime

import (
	"time"

	"github.com/onestop-insurance/onestop/pkg/constants"
)

const (
	// DateLayout is the display format for all dates.
	DateLayout = constants.DateLayout
)

// ComposeDate builds a calendar date from individually validated year, month,
// and day components. time.Date normalizes impossible combinations, so
// February 31 rolls forward into March.
func ComposeDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// FirstOfNextMonth returns the first day of the month following t. Used for
// the first payment date on the receipt.
func FirstOfNextMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).AddDate(0, 1, 0)
}

// MustParseTime parses a date string using the given layout and panics on
// error. This is intended for use in tests where the date string is known to
// be valid.
func MustParseTime(layout, dateStr string) time.Time {
	t, err := time.Parse(layout, dateStr)
	if err != nil {
		panic(err)
	}
	return t
}
