package util

import (
	"fmt"
	"strings"
	"time"
)

// clockLayouts are tried in order; 24-hour first.
var clockLayouts = []string{
	"15:04",
	"3:04PM",
	"3:04 PM",
	"03:04PM",
	"03:04 PM",
	"3PM",
	"3 PM",
}

// ParseClock returns today's date at the wall-clock time in s, in now's
// location. Both "17:30" and "5:30PM" are accepted.
func ParseClock(s string, now time.Time) (time.Time, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for _, layout := range clockLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		return time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), 0, 0, now.Location()), nil
	}

	return time.Time{}, fmt.Errorf("invalid time format: %q\n\nValid formats:\n"+
		"• 24-hour format: HH:MM (e.g., '23:30', '09:45')\n"+
		"• 12-hour format: HH:MM[AM|PM] (e.g., '11:30PM', '9:45 AM', '5PM')", s)
}

// NextOccurrence returns the next wall-clock time matching s after now.
// A time that has already passed today rolls over to tomorrow.
func NextOccurrence(s string, now time.Time) (time.Time, error) {
	t, err := ParseClock(s, now)
	if err != nil {
		return time.Time{}, err
	}
	if !t.After(now) {
		t = t.AddDate(0, 0, 1)
	}
	return t, nil
}
