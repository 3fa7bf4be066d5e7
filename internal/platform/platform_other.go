//go:build !darwin && !linux && !windows

package platform

import "go.uber.org/zap"

func newNativeInput(logger *zap.Logger) (Input, error) {
	return nil, ErrUnsupportedPlatform
}
