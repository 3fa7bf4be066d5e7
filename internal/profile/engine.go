package profile

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/stigoleg/keep-busy/internal/config"
	"github.com/stigoleg/keep-busy/internal/platform"
)

// activeLogInterval throttles "user is active" log lines.
const activeLogInterval = 2 * time.Minute

// Engine drives one profile until its context is cancelled: sample idle
// time, pause while a user is present, otherwise run a cycle and think.
type Engine struct {
	profile  Profile
	sensor   platform.IdleSensor
	guard    Guard
	env      Env
	minMs    int
	maxMs    int
	focusApp string
	logger   *zap.Logger

	activeLog rate.Sometimes
	state     LoopState

	mu     sync.Mutex
	status Status
}

// NewEngine validates cfg and builds the engine for its profile.
func NewEngine(cfg config.RunConfig, sensor platform.IdleSensor, env Env) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	env = env.withDefaults()
	p, err := New(cfg, env)
	if err != nil {
		return nil, err
	}
	return newEngine(p, cfg, sensor, env), nil
}

func newEngine(p Profile, cfg config.RunConfig, sensor platform.IdleSensor, env Env) *Engine {
	e := &Engine{
		profile:   p,
		sensor:    sensor,
		guard:     Guard{Threshold: cfg.IdleThresholdDuration()},
		env:       env,
		minMs:     cfg.MinInterval * 1000,
		maxMs:     cfg.MaxInterval * 1000,
		focusApp:  cfg.FocusApp,
		logger:    env.Logger.With(zap.String("profile", p.Name())),
		activeLog: rate.Sometimes{Interval: activeLogInterval},
		status:    Status{Profile: p.Name(), Phase: PhaseStarting},
	}
	e.state.onStep = e.step
	return e
}

// Name returns the running profile's name.
func (e *Engine) Name() string { return e.profile.Name() }

// Status returns a copy of the current progress.
func (e *Engine) Status() Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status
}

func (e *Engine) update(fn func(*Status)) {
	e.mu.Lock()
	fn(&e.status)
	e.mu.Unlock()
}

func (e *Engine) step(action string) {
	e.logger.Info("=> " + action)
	e.update(func(s *Status) { s.Action = action })
}

// Run loops until ctx is cancelled and then returns ctx.Err(). Cycle
// failures are logged and followed by a back-off; they never end the loop.
func (e *Engine) Run(ctx context.Context) error {
	clock := e.env.Rand.Clock()
	rnd := e.env.Rand
	paused := false

	e.logger.Info("starting profile",
		zap.Int("min_interval_ms", e.minMs),
		zap.Int("max_interval_ms", e.maxMs),
		zap.Duration("idle_threshold", e.guard.Threshold))
	defer e.update(func(s *Status) { s.Phase = PhaseStopped; s.Until = time.Time{} })

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		idle := e.sensor.IdleTime(ctx)
		since := time.Duration(-1)
		if !e.state.LastAction.IsZero() {
			since = clock.Now().Sub(e.state.LastAction)
		}
		e.update(func(s *Status) { s.LastIdle = idle })

		if e.guard.UserActive(idle, since) {
			if !paused {
				paused = true
				e.activeLog.Do(func() {
					e.logger.Info("user is active; pausing simulation", zap.Duration("idle", idle))
				})
			}
			d := rnd.Duration(pauseMinMs, pauseMaxMs)
			e.update(func(s *Status) { s.Phase = PhasePaused; s.Until = clock.Now().Add(d) })
			if err := clock.Sleep(ctx, d); err != nil {
				return err
			}
			continue
		}
		if paused {
			paused = false
			e.logger.Info("user is idle again; resuming simulation", zap.Duration("idle", idle))
		}

		e.update(func(s *Status) { s.Phase = PhaseActing; s.Until = time.Time{} })
		err := e.cycle(ctx)
		e.state.LastAction = clock.Now()

		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			e.logger.Error("cycle failed; backing off", zap.Error(err))
			d := rnd.Duration(backoffMinMs, backoffMaxMs)
			e.update(func(s *Status) {
				s.Failures++
				s.LastErr = err
				s.Phase = PhaseBackoff
				s.OpenTabs = e.state.OpenTabs()
				s.LastAction = e.state.LastAction
				s.Until = clock.Now().Add(d)
			})
			if err := clock.Sleep(ctx, d); err != nil {
				return err
			}
			continue
		}

		think := rnd.Duration(e.minMs, e.maxMs)
		e.logger.Info("thinking", zap.Duration("for", think.Round(time.Second)))
		e.update(func(s *Status) {
			s.Cycles++
			s.Phase = PhaseThinking
			s.OpenTabs = e.state.OpenTabs()
			s.LastAction = e.state.LastAction
			s.Until = clock.Now().Add(think)
		})
		if err := clock.Sleep(ctx, think); err != nil {
			return err
		}
	}
}

func (e *Engine) cycle(ctx context.Context) error {
	if e.focusApp != "" {
		e.step("focusing " + e.focusApp)
		if err := e.env.Input.ActivateApp(ctx, e.focusApp); err != nil {
			return err
		}
	}
	return e.profile.Cycle(ctx, &e.state)
}
