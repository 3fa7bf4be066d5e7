package profile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stigoleg/keep-busy/internal/config"
	"github.com/stigoleg/keep-busy/internal/platform"
)

func codingConfig() config.RunConfig {
	return config.RunConfig{
		Profile:       config.ProfileCoding,
		MinInterval:   1,
		MaxInterval:   1,
		IdleThreshold: config.DefaultIdleThreshold,
	}
}

func TestCodingSnippetFrequency(t *testing.T) {
	env, in, _ := testEnv(42)
	c := NewCoding(codingConfig(), env)

	const cycles = 1000
	typed := 0
	var st LoopState
	for i := 0; i < cycles; i++ {
		in.reset()
		require.NoError(t, c.Cycle(context.Background(), &st))
		if in.count("type") > 0 {
			typed++
		}
	}

	freq := float64(typed) / cycles
	assert.InDelta(t, snippetChance, freq, 0.05, "snippet frequency %.3f", freq)
}

func TestCodingTypesKnownSnippets(t *testing.T) {
	env, in, _ := testEnv(11)
	c := NewCoding(codingConfig(), env)

	var st LoopState
	for i := 0; i < 50; i++ {
		in.reset()
		require.NoError(t, c.Cycle(context.Background(), &st))
		if in.count("type") == 0 {
			continue
		}
		assert.Contains(t, ShellSnippets, replay(in.events))
	}
}

func TestCodingWindowCyclingGated(t *testing.T) {
	env, in, _ := testEnv(12)
	env.Shortcuts = platform.ShortcutsFor("plan9")
	c := NewCoding(codingConfig(), env)

	var st LoopState
	for i := 0; i < 200; i++ {
		require.NoError(t, c.Cycle(context.Background(), &st))
	}
	for _, e := range in.events {
		assert.NotEqual(t, "alt+tab", e.combo)
	}

	env, in, _ = testEnv(12)
	c = NewCoding(codingConfig(), env)
	for i := 0; i < 200; i++ {
		require.NoError(t, c.Cycle(context.Background(), &st))
	}
	cycled := 0
	for _, e := range in.events {
		if e.combo == "alt+tab" {
			cycled++
		}
	}
	assert.InDelta(t, codingCycleChance*200, cycled, 30)
}

func TestCodingEditorActions(t *testing.T) {
	env, in, _ := testEnv(13)
	env.Shortcuts = platform.ShortcutsFor("darwin")
	c := NewCoding(codingConfig(), env)

	var st LoopState
	for i := 0; i < 100; i++ {
		in.reset()
		require.NoError(t, c.Cycle(context.Background(), &st))

		tabs, escapes, cursor := 0, 0, 0
		for _, e := range in.events {
			switch {
			case e.combo == "cmd+shift+]":
				tabs++
			case e.kind == "key" && e.key == platform.KeyEscape:
				escapes++
			case e.kind == "key" && (e.key == platform.KeyUp || e.key == platform.KeyDown):
				cursor++
			}
		}
		assert.Equal(t, 1, tabs+escapes, "exactly one editor action per cycle")
		assert.GreaterOrEqual(t, cursor, cursorMinMoves)
		assert.LessOrEqual(t, cursor, cursorMaxMoves)
	}
}

func TestCodingClicks(t *testing.T) {
	env, in, _ := testEnv(14)
	c := NewCoding(codingConfig(), env)
	var st LoopState
	for i := 0; i < 100; i++ {
		require.NoError(t, c.Cycle(context.Background(), &st))
	}
	for _, e := range in.events {
		assert.False(t, e.click)
	}

	env, in, _ = testEnv(14)
	cfg := codingConfig()
	cfg.Clicks = true
	c = NewCoding(cfg, env)
	clicks := 0
	for i := 0; i < 500; i++ {
		require.NoError(t, c.Cycle(context.Background(), &st))
	}
	for _, e := range in.events {
		if e.click {
			clicks++
		}
	}
	assert.InDelta(t, codingClickChance*500, clicks, 50)
}
