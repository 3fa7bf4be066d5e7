//go:build linux

package platform

import (
	"github.com/stigoleg/keep-busy/internal/platform/linux"
)

func osIdleProbe() probeFunc {
	return linux.GetIdleTime
}
