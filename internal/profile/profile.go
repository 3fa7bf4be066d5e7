// Package profile runs the behaviour simulations: the reading and coding
// state machines, the user-activity guard and the loop that drives them.
package profile

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/stigoleg/keep-busy/internal/config"
	"github.com/stigoleg/keep-busy/internal/platform"
	"github.com/stigoleg/keep-busy/internal/random"
)

// Profile is one behaviour pattern. Cycle runs a single pass of it.
type Profile interface {
	Name() string
	Cycle(ctx context.Context, st *LoopState) error
}

// Env carries the capabilities a profile acts through.
type Env struct {
	Input     platform.Input
	Rand      *random.Rand
	Shortcuts platform.Shortcuts
	Logger    *zap.Logger
}

func (e Env) withDefaults() Env {
	if e.Logger == nil {
		e.Logger = zap.NewNop()
	}
	if e.Rand == nil {
		e.Rand = random.NewFromTime(nil)
	}
	return e
}

// New builds the profile cfg selects.
func New(cfg config.RunConfig, env Env) (Profile, error) {
	env = env.withDefaults()
	switch cfg.Profile {
	case config.ProfileReading:
		return NewReading(cfg, env), nil
	case config.ProfileCoding:
		return NewCoding(cfg, env), nil
	default:
		return nil, fmt.Errorf("%w: unknown profile %q", config.ErrInvalid, cfg.Profile)
	}
}

// moveToRandomPoint moves the pointer somewhere inside the working rectangle.
func moveToRandomPoint(ctx context.Context, env Env, click bool) (int, int, error) {
	x := env.Rand.Int(screenMinX, screenMaxX)
	y := env.Rand.Int(screenMinY, screenMaxY)
	if err := env.Input.MoveMouse(ctx, x, y, click); err != nil {
		return x, y, fmt.Errorf("move mouse: %w", err)
	}
	return x, y, nil
}
