package platform

import (
	"errors"

	"go.uber.org/zap"
)

var (
	// ErrUnsupportedPlatform is returned when no native driver exists for the OS.
	ErrUnsupportedPlatform = errors.New("unsupported platform")
	// ErrUnsupportedKey is returned for keys outside the supported set.
	ErrUnsupportedKey = errors.New("unsupported key")
)

// NewInput selects the input driver once at startup: the dry-run logger when
// dryRun is set, the native robotgo driver otherwise.
func NewInput(dryRun bool, logger *zap.Logger) (Input, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if dryRun {
		return &dryRunInput{logger: logger.Named("dryrun")}, nil
	}
	return newNativeInput(logger.Named("input"))
}
