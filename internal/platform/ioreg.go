package platform

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var hidIdlePattern = regexp.MustCompile(`"HIDIdleTime"\s*=\s*(\d+)`)

// parseHIDIdleTime extracts HIDIdleTime (nanoseconds) from `ioreg -c IOHIDSystem` output.
func parseHIDIdleTime(out string) (time.Duration, error) {
	matches := hidIdlePattern.FindStringSubmatch(out)
	if len(matches) < 2 {
		return 0, fmt.Errorf("HIDIdleTime not found in ioreg output")
	}
	nanos, err := strconv.ParseInt(matches[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse HIDIdleTime: %w", err)
	}
	return time.Duration(nanos), nil
}
