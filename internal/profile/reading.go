package profile

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/stigoleg/keep-busy/internal/config"
	"github.com/stigoleg/keep-busy/internal/platform"
	"github.com/stigoleg/keep-busy/internal/platform/patterns"
	"github.com/stigoleg/keep-busy/internal/random"
)

// Reading simulates someone browsing documentation: pointer moves, tab
// opening and closing, window switches and bursts of scrolling.
type Reading struct {
	env         Env
	urls        []string
	clicks      bool
	clickChance float64
	wiggle      *patterns.Generator
}

// NewReading returns the reading profile. Without custom URLs it opens
// DefaultReadingURLs.
func NewReading(cfg config.RunConfig, env Env) *Reading {
	env = env.withDefaults()
	urls := cfg.URLs
	if len(urls) == 0 {
		urls = DefaultReadingURLs
	}
	return &Reading{
		env:         env,
		urls:        urls,
		clicks:      cfg.Clicks,
		clickChance: cfg.ClickChance,
		wiggle:      patterns.NewGenerator(env.Rand),
	}
}

func (r *Reading) Name() string { return string(config.ProfileReading) }

func (r *Reading) Cycle(ctx context.Context, st *LoopState) error {
	rnd := r.env.Rand

	click := r.clicks && rnd.Chance(r.clickChance)
	st.Step("moving the mouse")
	if _, _, err := moveToRandomPoint(ctx, r.env, click); err != nil {
		return err
	}
	if err := rnd.Sleep(ctx, settleMinMs, settleMaxMs); err != nil {
		return err
	}

	if rnd.Chance(readingOpenChance) {
		if err := r.openOrClose(ctx, st); err != nil {
			return err
		}
		if err := rnd.Sleep(ctx, pageLoadMinMs, pageLoadMaxMs); err != nil {
			return err
		}
	} else {
		st.Step("cycling active window")
		if err := r.env.Shortcuts.CycleWindow.Press(ctx, r.env.Input); err != nil {
			return fmt.Errorf("cycle window: %w", err)
		}
		if err := rnd.Sleep(ctx, readingCycleMinMs, readingCycleMaxMs); err != nil {
			return err
		}
	}

	return r.scroll(ctx, st)
}

// openOrClose keeps at most readingMaxOpenTabs tabs open: at the limit it
// closes one instead of opening another.
func (r *Reading) openOrClose(ctx context.Context, st *LoopState) error {
	if st.OpenTabs() >= readingMaxOpenTabs {
		st.Step("closing a tab")
		if err := r.env.Shortcuts.CloseTab.Press(ctx, r.env.Input); err != nil {
			return fmt.Errorf("close tab: %w", err)
		}
		st.TabClosed()
		return nil
	}

	url := random.Pick(r.env.Rand, r.urls)
	st.Step("opening " + url)
	if err := r.env.Input.OpenURL(ctx, url); err != nil {
		return fmt.Errorf("open url: %w", err)
	}
	st.TabOpened()
	return nil
}

func (r *Reading) scroll(ctx context.Context, st *LoopState) error {
	rnd := r.env.Rand
	n := rnd.Int(scrollMinCount, scrollMaxCount)
	st.Step(fmt.Sprintf("scrolling %d times", n))

	for i := 0; i < n; i++ {
		switch {
		case rnd.Chance(longReadChance):
			if err := rnd.Sleep(ctx, longReadMinMs, longReadMaxMs); err != nil {
				return err
			}
		case rnd.Chance(overscrollChance):
			presses := rnd.Int(overscrollMinPresses, overscrollMaxPresses)
			for j := 0; j < presses; j++ {
				if err := r.env.Input.PressKey(ctx, platform.KeyUp); err != nil {
					return fmt.Errorf("scroll up: %w", err)
				}
				if err := rnd.Sleep(ctx, overscrollMinMs, overscrollMaxMs); err != nil {
					return err
				}
			}
		default:
			key := platform.KeySpace
			if rnd.Chance(smallScrollChance) {
				key = platform.KeyDown
			}
			if err := r.env.Input.PressKey(ctx, key); err != nil {
				return fmt.Errorf("scroll: %w", err)
			}
			if rnd.Chance(wiggleChance) {
				if err := r.wiggleMouse(ctx); err != nil {
					return err
				}
			}
			if err := rnd.Sleep(ctx, scrollPauseMinMs, scrollPauseMaxMs); err != nil {
				return err
			}
		}
	}
	return nil
}

// wiggleMouse traces a small shape around a random point without clicking.
func (r *Reading) wiggleMouse(ctx context.Context) error {
	x := r.env.Rand.Int(screenMinX, screenMaxX)
	y := r.env.Rand.Int(screenMinY, screenMaxY)
	steps := r.wiggle.Wiggle(x, y)
	r.env.Logger.Debug("wiggle", zap.Int("x", x), zap.Int("y", y), zap.Int("steps", len(steps)))

	clock := r.env.Rand.Clock()
	for _, s := range steps {
		if err := r.env.Input.MoveMouse(ctx, s.X, s.Y, false); err != nil {
			return fmt.Errorf("wiggle: %w", err)
		}
		if err := clock.Sleep(ctx, s.Delay); err != nil {
			return err
		}
	}
	return nil
}
