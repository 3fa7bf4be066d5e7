package profile

import "time"

// LoopState is owned by the running loop. Profiles mutate it only from
// inside Cycle.
type LoopState struct {
	// LastAction is when the last cycle finished; zero before the first one.
	LastAction time.Time

	openTabs int
	onStep   func(action string)
}

// OpenTabs returns how many tabs the reading profile currently has open.
func (s *LoopState) OpenTabs() int { return s.openTabs }

// TabOpened records a successful URL open.
func (s *LoopState) TabOpened() { s.openTabs++ }

// TabClosed records an issued close-tab shortcut. The count never goes below zero.
func (s *LoopState) TabClosed() {
	if s.openTabs > 0 {
		s.openTabs--
	}
}

// Step announces the action about to run.
func (s *LoopState) Step(action string) {
	if s.onStep != nil {
		s.onStep(action)
	}
}

// Phase describes what the loop is doing right now.
type Phase string

const (
	PhaseStarting Phase = "starting"
	PhaseActing   Phase = "acting"
	PhaseThinking Phase = "thinking"
	PhasePaused   Phase = "paused"
	PhaseBackoff  Phase = "backing off"
	PhaseStopped  Phase = "stopped"
)

// Status is a point-in-time copy of the loop's progress for display.
type Status struct {
	Profile  string
	Phase    Phase
	Cycles   int
	Failures int
	OpenTabs int
	// Action is the most recent step description.
	Action     string
	LastAction time.Time
	LastIdle   time.Duration
	// Until is when the current pause, back-off or think sleep ends.
	Until   time.Time
	LastErr error
}
