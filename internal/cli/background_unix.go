//go:build !windows

package cli

import (
	"fmt"
	"syscall"
)

func detachedProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setsid: true}
}

func stopHint(pid int) string {
	return fmt.Sprintf("kill %d", pid)
}
