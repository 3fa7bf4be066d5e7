// Package keepalive owns the lifecycle of a running profile: start, timed
// end, stop and cleanup.
package keepalive

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/stigoleg/keep-busy/internal/profile"
)

// ErrAlreadyRunning is returned by Start when a profile is already running.
var ErrAlreadyRunning = errors.New("a profile is already running")

// defaultStopTimeout bounds how long Stop waits for the loop to return.
const defaultStopTimeout = 5 * time.Second

// SimulationHealth represents the runtime health of activity simulation
type SimulationHealth int

const (
	SimulationHealthUnknown SimulationHealth = iota
	SimulationHealthOK
	SimulationHealthFailed
)

func (h SimulationHealth) String() string {
	switch h {
	case SimulationHealthOK:
		return "ok"
	case SimulationHealthFailed:
		return "failing"
	default:
		return "waiting for first cycle"
	}
}

// sleepControl holds the display-sleep hooks. On Windows the execution
// state belongs to the calling OS thread, so both hooks must run on the
// same locked thread.
type sleepControl struct {
	prevent func() error
	allow   func() error
}

var displaySleep = sleepControl{prevent: preventSleep, allow: allowSleep}

// Runner is a cancellable activity loop, normally a *profile.Engine.
type Runner interface {
	Name() string
	Run(ctx context.Context) error
	Status() profile.Status
}

// Keeper runs one Runner at a time in its own goroutine.
type Keeper struct {
	logger *zap.Logger

	mu      sync.Mutex
	running bool
	runner  Runner
	cancel  context.CancelFunc
	done    chan struct{}
	endTime time.Time
	err     error
}

// New returns an idle Keeper.
func New(logger *zap.Logger) *Keeper {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Keeper{logger: logger.Named("keeper")}
}

// IsRunning returns whether a profile is currently active
func (k *Keeper) IsRunning() bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.running
}

// StartIndefinite runs r until Stop is called.
func (k *Keeper) StartIndefinite(r Runner) error {
	return k.start(r, time.Time{})
}

// StartTimed runs r for d.
func (k *Keeper) StartTimed(r Runner, d time.Duration) error {
	return k.start(r, time.Now().Add(d))
}

// StartUntil runs r until deadline; a zero deadline means indefinitely.
func (k *Keeper) StartUntil(r Runner, deadline time.Time) error {
	return k.start(r, deadline)
}

func (k *Keeper) start(r Runner, deadline time.Time) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.running {
		return ErrAlreadyRunning
	}

	var (
		ctx    context.Context
		cancel context.CancelFunc
	)
	if deadline.IsZero() {
		ctx, cancel = context.WithCancel(context.Background())
	} else {
		ctx, cancel = context.WithDeadline(context.Background(), deadline)
	}

	k.running = true
	k.runner = r
	k.cancel = cancel
	k.done = make(chan struct{})
	k.endTime = deadline
	k.err = nil

	go k.run(ctx, r, k.done)

	if deadline.IsZero() {
		k.logger.Info("started", zap.String("profile", r.Name()))
	} else {
		k.logger.Info("started", zap.String("profile", r.Name()), zap.Time("until", deadline))
	}
	return nil
}

func (k *Keeper) run(ctx context.Context, r Runner, done chan struct{}) {
	defer close(done)
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := displaySleep.prevent(); err != nil {
		k.logger.Warn("could not keep the display awake", zap.Error(err))
	}
	err := r.Run(ctx)

	k.mu.Lock()
	defer k.mu.Unlock()
	if errors.Is(err, context.DeadlineExceeded) {
		k.logger.Info("run time elapsed", zap.String("profile", r.Name()))
		err = nil
	} else if errors.Is(err, context.Canceled) {
		err = nil
	}
	k.err = err
	k.running = false
	if k.cancel != nil {
		k.cancel()
		k.cancel = nil
	}
	if err := displaySleep.allow(); err != nil {
		k.logger.Warn("could not restore sleep settings", zap.Error(err))
	}
}

// Done is closed when the current run ends, by Stop or by its deadline. It
// returns nil before the first Start.
func (k *Keeper) Done() <-chan struct{} {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.done
}

// Err returns the error the last run ended with, if it was not a plain
// cancellation or deadline.
func (k *Keeper) Err() error {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.err
}

// Stop stops the running profile
func (k *Keeper) Stop() error {
	return k.StopWithTimeout(0)
}

// StopWithTimeout cancels the run and waits up to timeout for it to return.
func (k *Keeper) StopWithTimeout(timeout time.Duration) error {
	k.mu.Lock()
	if !k.running {
		k.mu.Unlock()
		return nil
	}
	if timeout <= 0 {
		timeout = defaultStopTimeout
	}
	if k.cancel != nil {
		k.cancel()
		k.cancel = nil
	}
	done := k.done
	k.mu.Unlock()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-done:
		k.logger.Info("stopped")
		return nil
	case <-timer.C:
		k.logger.Warn("stop timeout exceeded", zap.Duration("timeout", timeout))
		return context.DeadlineExceeded
	}
}

// TimeRemaining returns the remaining duration for timed mode
func (k *Keeper) TimeRemaining() time.Duration {
	k.mu.Lock()
	defer k.mu.Unlock()

	if !k.running || k.endTime.IsZero() {
		return 0
	}
	remaining := time.Until(k.endTime)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// EndTime returns the deadline of a timed run, or zero.
func (k *Keeper) EndTime() time.Time {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.endTime
}

// Status returns the running profile's progress; ok is false before the
// first Start.
func (k *Keeper) Status() (st profile.Status, ok bool) {
	k.mu.Lock()
	r := k.runner
	k.mu.Unlock()
	if r == nil {
		return profile.Status{}, false
	}
	return r.Status(), true
}

// GetSimulationHealth reports Failed while the loop is backing off after a
// failed cycle and OK once a cycle has completed.
func (k *Keeper) GetSimulationHealth() SimulationHealth {
	st, ok := k.Status()
	switch {
	case !ok:
		return SimulationHealthUnknown
	case st.Phase == profile.PhaseBackoff:
		return SimulationHealthFailed
	case st.Cycles > 0:
		return SimulationHealthOK
	default:
		return SimulationHealthUnknown
	}
}
