package profile

import "time"

// Guard decides whether a real user is at the keyboard. Simulated input
// resets the OS idle counter too, so recent input only counts as human when
// it happened after the last simulated action (with slack for latency).
type Guard struct {
	Threshold time.Duration
}

// UserActive reports whether the loop should pause. sinceLastAction < 0
// means no simulated action has happened yet.
func (g Guard) UserActive(idle, sinceLastAction time.Duration) bool {
	if idle >= g.Threshold {
		return false
	}
	if sinceLastAction < 0 {
		return true
	}
	slack := time.Duration(guardSlackSeconds * float64(time.Second))
	return idle < sinceLastAction-slack
}
