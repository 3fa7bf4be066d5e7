package profile

import (
	"context"
	"fmt"

	"github.com/stigoleg/keep-busy/internal/config"
	"github.com/stigoleg/keep-busy/internal/platform"
	"github.com/stigoleg/keep-busy/internal/random"
)

// Coding simulates someone working in an editor and terminal: switching
// windows and tabs, moving the cursor and typing shell commands.
type Coding struct {
	env      Env
	clicks   bool
	snippets []string
	typist   *Typist
}

// NewCoding returns the coding profile.
func NewCoding(cfg config.RunConfig, env Env) *Coding {
	env = env.withDefaults()
	return &Coding{
		env:      env,
		clicks:   cfg.Clicks,
		snippets: ShellSnippets,
		typist:   NewTypist(env.Input, env.Rand),
	}
}

func (c *Coding) Name() string { return string(config.ProfileCoding) }

func (c *Coding) Cycle(ctx context.Context, st *LoopState) error {
	rnd := c.env.Rand
	in := c.env.Input

	click := c.clicks && rnd.Chance(codingClickChance)
	st.Step("moving the mouse")
	if _, _, err := moveToRandomPoint(ctx, c.env, click); err != nil {
		return err
	}
	if rnd.Chance(microBreakChance) {
		st.Step("taking a micro-break")
		if err := rnd.Sleep(ctx, microBreakMinMs, microBreakMaxMs); err != nil {
			return err
		}
	} else if err := rnd.Sleep(ctx, settleMinMs, settleMaxMs); err != nil {
		return err
	}

	if rnd.Chance(codingCycleChance) && c.env.Shortcuts.WindowCycling {
		st.Step("cycling active window")
		if err := c.env.Shortcuts.CycleWindow.Press(ctx, in); err != nil {
			return fmt.Errorf("cycle window: %w", err)
		}
		if err := rnd.Sleep(ctx, codingCycleMinMs, codingCycleMaxMs); err != nil {
			return err
		}
	}

	if rnd.Chance(editorTabChance) {
		st.Step("switching editor tab")
		if err := c.env.Shortcuts.NextTab.Press(ctx, in); err != nil {
			return fmt.Errorf("next tab: %w", err)
		}
	} else {
		st.Step("pressing escape")
		if err := in.PressKey(ctx, platform.KeyEscape); err != nil {
			return fmt.Errorf("escape: %w", err)
		}
	}
	if err := rnd.Sleep(ctx, editorPauseMinMs, editorPauseMaxMs); err != nil {
		return err
	}

	moves := rnd.Int(cursorMinMoves, cursorMaxMoves)
	st.Step(fmt.Sprintf("moving cursor %d times", moves))
	for i := 0; i < moves; i++ {
		key := platform.KeyUp
		if rnd.Chance(0.5) {
			key = platform.KeyDown
		}
		if err := in.PressKey(ctx, key); err != nil {
			return fmt.Errorf("move cursor: %w", err)
		}
		if err := rnd.Sleep(ctx, cursorPauseMinMs, cursorPauseMaxMs); err != nil {
			return err
		}
	}

	if rnd.Chance(snippetChance) {
		snippet := random.Pick(rnd, c.snippets)
		st.Step("typing " + snippet)
		if err := c.typist.Type(ctx, snippet); err != nil {
			return fmt.Errorf("type snippet: %w", err)
		}
		if err := rnd.Sleep(ctx, snippetPauseMinMs, snippetPauseMaxMs); err != nil {
			return err
		}
	}
	return nil
}
