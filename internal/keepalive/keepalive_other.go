//go:build !windows

package keepalive

// Display sleep is only managed on Windows; elsewhere the simulated input
// itself keeps the session awake.
func preventSleep() error {
	return nil
}

func allowSleep() error {
	return nil
}
