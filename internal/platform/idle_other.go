//go:build !darwin && !linux && !windows

package platform

import (
	"context"
	"time"
)

func osIdleProbe() probeFunc {
	return func(ctx context.Context) (time.Duration, error) {
		return 0, ErrUnsupportedPlatform
	}
}
