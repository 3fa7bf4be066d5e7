package profile

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stigoleg/keep-busy/internal/platform"
	"github.com/stigoleg/keep-busy/internal/random"
)

// replay applies typed characters and backspaces to reconstruct the text on screen.
func replay(events []event) string {
	var out []rune
	for _, e := range events {
		switch {
		case e.kind == "type":
			out = append(out, []rune(e.text)...)
		case e.kind == "key" && e.key == platform.KeyBackspace && len(out) > 0:
			out = out[:len(out)-1]
		}
	}
	return string(out)
}

func TestTypistTypoRate(t *testing.T) {
	env, in, _ := testEnv(2024)
	typist := NewTypist(env.Input, env.Rand)

	text := strings.Repeat("abcdefghijklmnopqrstuvwxy", 40)
	require.Len(t, text, 1000)
	require.NoError(t, typist.Type(context.Background(), text))

	backspaces := 0
	intended := []rune(text)
	pos := 0
	for i, e := range in.events {
		if e.kind == "key" {
			require.Equal(t, platform.KeyBackspace, e.key)
			backspaces++

			require.Positive(t, i)
			require.Less(t, i+1, len(in.events))
			prev, next := in.events[i-1], in.events[i+1]
			assert.Equal(t, "type", prev.kind)
			assert.NotEqual(t, string(intended[pos]), prev.text, "wrong letter differs from intended")
			assert.Equal(t, strings.ToLower(prev.text), prev.text, "wrong letter is lowercase")
			assert.Equal(t, "type", next.kind)
			assert.Equal(t, string(intended[pos]), next.text, "backspace is followed by the intended letter")
			continue
		}
		// A typed character is correct unless the next event erases it.
		if i+1 < len(in.events) && in.events[i+1].kind == "key" {
			continue
		}
		pos++
	}

	assert.Equal(t, len(text), pos)
	// 2% of 1000 is 20; allow roughly four standard deviations.
	assert.InDelta(t, 20, backspaces, 18, "backspaces %d", backspaces)
	assert.Equal(t, text, replay(in.events))
}

func TestTypistPacing(t *testing.T) {
	env, _, clock := testEnv(9)
	typist := NewTypist(env.Input, env.Rand)

	require.NoError(t, typist.Type(context.Background(), "git status"))
	sleeps := clock.Sleeps()
	require.GreaterOrEqual(t, len(sleeps), len("git status"))
	for _, d := range sleeps {
		assert.GreaterOrEqual(t, d.Milliseconds(), int64(keystrokeMinMs))
		assert.LessOrEqual(t, d.Milliseconds(), int64(typoFixMaxMs))
	}
}

func TestTypistNonLettersNeverTypo(t *testing.T) {
	clock := testClock()
	in := newFakeInput(clock)
	typist := NewTypist(in, random.New(1, clock))

	require.NoError(t, typist.Type(context.Background(), strings.Repeat("-./ 0123456789", 100)))
	assert.Zero(t, in.count("key"))
}
