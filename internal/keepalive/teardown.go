package keepalive

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// ErrTeardownTimeout is reported when teardown steps did not finish in time.
var ErrTeardownTimeout = errors.New("teardown timeout exceeded")

const defaultTeardownTimeout = 5 * time.Second

type teardownStep struct {
	name string
	fn   func() error
}

// Teardown releases what a run acquired: the keeper, the redirected
// standard logger and the log sink. Steps run last-added first, at most once.
type Teardown struct {
	mu      sync.Mutex
	steps   []teardownStep
	timeout time.Duration
	logger  *zap.Logger
	once    sync.Once
	errs    []error
}

// NewTeardown bounds the whole teardown by timeout (5s when zero).
func NewTeardown(timeout time.Duration, logger *zap.Logger) *Teardown {
	if timeout <= 0 {
		timeout = defaultTeardownTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Teardown{timeout: timeout, logger: logger.Named("teardown")}
}

// Add registers a named step.
func (t *Teardown) Add(name string, fn func() error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.steps = append(t.steps, teardownStep{name: name, fn: fn})
}

// Run executes the steps and returns their errors. A step that panics is
// reported as an error and the rest still run. Later calls return the
// errors of the first.
func (t *Teardown) Run() []error {
	t.once.Do(func() { t.errs = t.run() })
	return t.errs
}

func (t *Teardown) run() []error {
	t.mu.Lock()
	steps := make([]teardownStep, len(t.steps))
	for i, s := range t.steps {
		steps[len(steps)-1-i] = s
	}
	t.mu.Unlock()
	if len(steps) == 0 {
		return nil
	}

	var (
		mu   sync.Mutex
		errs []error
	)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for _, s := range steps {
			if err := t.runStep(s); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		}
	}()

	timer := time.NewTimer(t.timeout)
	defer timer.Stop()
	select {
	case <-done:
		return errs
	case <-timer.C:
		t.logger.Warn("teardown timed out", zap.Duration("timeout", t.timeout))
		mu.Lock()
		defer mu.Unlock()
		return append(append([]error(nil), errs...), ErrTeardownTimeout)
	}
}

func (t *Teardown) runStep(s teardownStep) (err error) {
	defer func() {
		if r := recover(); r != nil {
			t.logger.Error("teardown step panicked", zap.String("step", s.name), zap.Any("panic", r))
			err = fmt.Errorf("%s panicked: %v", s.name, r)
		}
	}()

	if err = s.fn(); err != nil {
		t.logger.Warn("teardown step failed", zap.String("step", s.name), zap.Error(err))
		return fmt.Errorf("%s: %w", s.name, err)
	}
	t.logger.Debug("teardown step done", zap.String("step", s.name))
	return nil
}
