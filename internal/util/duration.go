// Package util parses the run-length flags: durations and wall-clock times.
package util

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const durationHelp = "\n\nValid formats:\n" +
	"• Minutes: 90\n" +
	"• Duration: 1h30m, 45m, 2h"

// ParseDuration accepts either plain minutes ("90") or a Go duration string
// ("1h30m"). Negative values are rejected.
func ParseDuration(input string) (time.Duration, error) {
	input = strings.TrimSpace(input)

	var d time.Duration
	if minutes, err := strconv.Atoi(input); err == nil {
		d = time.Duration(minutes) * time.Minute
	} else if d, err = time.ParseDuration(input); err != nil {
		return 0, fmt.Errorf("invalid duration format: %q%s", input, durationHelp)
	}

	if d < 0 {
		return 0, fmt.Errorf("duration cannot be negative: %q%s", input, durationHelp)
	}
	return d, nil
}
