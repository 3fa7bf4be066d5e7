//go:build windows

package cli

import (
	"fmt"
	"syscall"

	"golang.org/x/sys/windows"
)

func detachedProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{
		CreationFlags: windows.CREATE_NEW_PROCESS_GROUP | windows.DETACHED_PROCESS,
		HideWindow:    true,
	}
}

func stopHint(pid int) string {
	return fmt.Sprintf("taskkill /PID %d", pid)
}
