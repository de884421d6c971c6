// Package dates converts user-typed dates into the canonical display
// form used for both storage and rendering.
package dates

import (
	"errors"
	"strings"
	"time"
)

// Layout is the canonical DD/MM/YYYY form.
const Layout = "02/01/2006"

// MonthLayout renders the "MM/YYYY" token used for month filtering.
const MonthLayout = "01/2006"

var inputLayouts = []string{"02/01/2006", "02-01-2006", "2006-01-02"}

var errUnknownFormat = errors.New("unknown date format")

// ParseAny tries the accepted input forms in order and returns the first
// valid calendar date.
func ParseAny(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range inputLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errUnknownFormat
}

// Canonicalize never fails: empty or unparseable input yields now in the
// given layout, so "no date" and "bad date" both default to today.
func Canonicalize(layout, s string, now time.Time) string {
	if s == "" {
		return now.Format(layout)
	}
	t, err := ParseAny(s)
	if err != nil {
		return now.Format(layout)
	}
	return t.Format(layout)
}

// MonthToken returns the "MM/YYYY" token for t.
func MonthToken(t time.Time) string {
	return t.Format(MonthLayout)
}
