// Package config resolves the run configuration from flags, environment,
// an optional .env file and activity.config.json.
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

// Profile selects the behaviour pattern to simulate.
type Profile string

const (
	ProfileReading Profile = "reading"
	ProfileCoding  Profile = "coding"
)

// Profiles lists every supported profile in menu order.
var Profiles = []Profile{ProfileReading, ProfileCoding}

// Valid reports whether p names a supported profile.
func (p Profile) Valid() bool {
	return p == ProfileReading || p == ProfileCoding
}

// Default tuning values.
const (
	DefaultIdleThreshold = 60
	DefaultClickChance   = 0.4

	ReadingMinInterval = 60
	ReadingMaxInterval = 180
	CodingMinInterval  = 60
	CodingMaxInterval  = 120
)

var (
	// ErrInvalid wraps every validation failure.
	ErrInvalid = errors.New("invalid configuration")
	// ErrMissingProfile is returned when no profile was selected anywhere.
	ErrMissingProfile = errors.New("profile must be specified via -p/--profile or config file")
)

// RunConfig is what a profile loop consumes. It is fixed once the loop starts.
type RunConfig struct {
	Profile       Profile
	MinInterval   int // seconds
	MaxInterval   int // seconds
	Clicks        bool
	ClickChance   float64
	IdleThreshold float64 // seconds
	URLs          []string
	FocusApp      string
	DryRun        bool
}

// DefaultIntervals returns the think-interval range used when none is configured.
func DefaultIntervals(p Profile) (min, max int) {
	if p == ProfileCoding {
		return CodingMinInterval, CodingMaxInterval
	}
	return ReadingMinInterval, ReadingMaxInterval
}

// MaxIdleThreshold is the largest idle threshold, in seconds, that fits a
// time.Duration.
const MaxIdleThreshold = float64(math.MaxInt64 / int64(time.Second))

// IdleThresholdDuration converts IdleThreshold to a time.Duration. Values
// beyond MaxIdleThreshold saturate; NaN and non-positive values give zero.
func (c RunConfig) IdleThresholdDuration() time.Duration {
	switch {
	case !(c.IdleThreshold > 0):
		return 0
	case c.IdleThreshold >= MaxIdleThreshold:
		return time.Duration(math.MaxInt64)
	default:
		return time.Duration(c.IdleThreshold * float64(time.Second))
	}
}

// Validate rejects configurations the loop cannot run with.
func (c RunConfig) Validate() error {
	if c.Profile == "" {
		return fmt.Errorf("%w: %w", ErrInvalid, ErrMissingProfile)
	}
	if !c.Profile.Valid() {
		return fmt.Errorf("%w: unknown profile %q (available: %s)", ErrInvalid, c.Profile, profileNames())
	}
	if c.MinInterval <= 0 || c.MaxInterval <= 0 {
		return fmt.Errorf("%w: intervals must be positive (min %d, max %d)", ErrInvalid, c.MinInterval, c.MaxInterval)
	}
	if c.MinInterval > c.MaxInterval {
		return fmt.Errorf("%w: min interval %ds is greater than max interval %ds", ErrInvalid, c.MinInterval, c.MaxInterval)
	}
	if !(c.IdleThreshold > 0) || math.IsInf(c.IdleThreshold, 0) {
		return fmt.Errorf("%w: idle threshold must be a positive number of seconds, got %v", ErrInvalid, c.IdleThreshold)
	}
	if c.IdleThreshold > MaxIdleThreshold {
		return fmt.Errorf("%w: idle threshold %v exceeds %v seconds", ErrInvalid, c.IdleThreshold, MaxIdleThreshold)
	}
	if !(c.ClickChance >= 0 && c.ClickChance <= 1) {
		return fmt.Errorf("%w: click chance must be within [0,1], got %v", ErrInvalid, c.ClickChance)
	}
	for _, u := range c.URLs {
		if strings.TrimSpace(u) == "" {
			return fmt.Errorf("%w: empty URL in list", ErrInvalid)
		}
	}
	return nil
}

func profileNames() string {
	names := make([]string, len(Profiles))
	for i, p := range Profiles {
		names[i] = string(p)
	}
	return strings.Join(names, ", ")
}
