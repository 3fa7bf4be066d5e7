//go:build windows

package keepalive

import (
	"golang.org/x/sys/windows"
)

var (
	modkernel32                 = windows.NewLazySystemDLL("kernel32.dll")
	procSetThreadExecutionState = modkernel32.NewProc("SetThreadExecutionState")
)

const (
	esContinuous      = 0x80000000
	esSystemRequired  = 0x00000001
	esDisplayRequired = 0x00000002
)

// preventSleep keeps the system and display awake while a profile runs.
func preventSleep() error {
	r, _, err := procSetThreadExecutionState.Call(uintptr(esContinuous | esSystemRequired | esDisplayRequired))
	if r == 0 {
		return err
	}
	return nil
}

// allowSleep resets the thread execution state.
func allowSleep() error {
	r, _, err := procSetThreadExecutionState.Call(uintptr(esContinuous))
	if r == 0 {
		return err
	}
	return nil
}
