package platform

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// IdleUnknown is reported when the OS cannot be queried. It reads as
// "definitely idle" so a broken sensor never blocks the simulation.
const IdleUnknown = 99999 * time.Second

// idleWarnEvery throttles repeated sensor failure warnings.
const idleWarnEvery = time.Minute

// IdleSensor reports how long ago the last genuine user input happened.
type IdleSensor interface {
	IdleTime(ctx context.Context) time.Duration
}

// IdleFunc adapts a plain function to IdleSensor.
type IdleFunc func(ctx context.Context) time.Duration

func (f IdleFunc) IdleTime(ctx context.Context) time.Duration { return f(ctx) }

type probeFunc func(ctx context.Context) (time.Duration, error)

// sensor wraps an OS probe with the sentinel fallback and throttled logging.
type sensor struct {
	probe  probeFunc
	logger *zap.Logger
	warn   rate.Sometimes
}

// NewIdleSensor returns the idle sensor for the running OS.
func NewIdleSensor(logger *zap.Logger) IdleSensor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return newSensor(osIdleProbe(), logger.Named("idle"))
}

func newSensor(probe probeFunc, logger *zap.Logger) *sensor {
	return &sensor{
		probe:  probe,
		logger: logger,
		warn:   rate.Sometimes{Interval: idleWarnEvery},
	}
}

func (s *sensor) IdleTime(ctx context.Context) time.Duration {
	idle, err := s.probe(ctx)
	if err != nil {
		s.warn.Do(func() {
			s.logger.Warn("idle detection failed; assuming idle", zap.Error(err))
		})
		return IdleUnknown
	}
	if idle < 0 {
		return 0
	}
	return idle
}
