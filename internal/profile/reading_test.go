package profile

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stigoleg/keep-busy/internal/config"
	"github.com/stigoleg/keep-busy/internal/platform"
)

func readingConfig() config.RunConfig {
	return config.RunConfig{
		Profile:       config.ProfileReading,
		MinInterval:   1,
		MaxInterval:   1,
		ClickChance:   config.DefaultClickChance,
		IdleThreshold: config.DefaultIdleThreshold,
	}
}

func TestReadingTabBookkeeping(t *testing.T) {
	env, in, _ := testEnv(1)
	r := NewReading(readingConfig(), env)
	closeTab := env.Shortcuts.CloseTab.String()

	var st LoopState
	ctx := context.Background()
	opened, closed := 0, 0

	for i := 0; i < 500; i++ {
		before := st.OpenTabs()
		in.reset()
		require.NoError(t, r.Cycle(ctx, &st))

		sawOpen, sawClose := false, false
		for _, e := range in.events {
			switch {
			case e.kind == "open":
				sawOpen = true
			case e.kind == "combo" && e.combo == closeTab:
				sawClose = true
			}
		}

		switch {
		case sawClose:
			closed++
			assert.GreaterOrEqual(t, before, 2, "tab closed below the limit")
			assert.Equal(t, before-1, st.OpenTabs())
		case sawOpen:
			opened++
			assert.Less(t, before, 2, "tab opened at the limit")
			assert.Equal(t, before+1, st.OpenTabs())
		default:
			assert.Equal(t, before, st.OpenTabs())
		}
		assert.GreaterOrEqual(t, st.OpenTabs(), 0)
		assert.LessOrEqual(t, st.OpenTabs(), 2)
	}

	assert.Positive(t, opened)
	assert.Positive(t, closed)
}

func TestReadingOpenFailureKeepsCount(t *testing.T) {
	env, in, _ := testEnv(3)
	in.fail["open"] = errors.New("xdg-open: not found")
	r := NewReading(readingConfig(), env)

	var st LoopState
	sawErr := false
	for i := 0; i < 50; i++ {
		if err := r.Cycle(context.Background(), &st); err != nil {
			sawErr = true
			assert.Contains(t, err.Error(), "open url")
		}
		assert.Equal(t, 0, st.OpenTabs())
	}
	assert.True(t, sawErr)
}

func TestReadingUsesCustomURLs(t *testing.T) {
	env, in, _ := testEnv(5)
	cfg := readingConfig()
	cfg.URLs = []string{"https://pkg.go.dev/std"}
	r := NewReading(cfg, env)

	var st LoopState
	for i := 0; i < 30; i++ {
		require.NoError(t, r.Cycle(context.Background(), &st))
	}
	require.Positive(t, in.count("open"))
	for _, e := range in.events {
		if e.kind == "open" {
			assert.Equal(t, "https://pkg.go.dev/std", e.text)
		}
	}
}

func TestReadingDefaultURLs(t *testing.T) {
	env, in, _ := testEnv(6)
	r := NewReading(readingConfig(), env)

	var st LoopState
	for i := 0; i < 30; i++ {
		require.NoError(t, r.Cycle(context.Background(), &st))
	}
	for _, e := range in.events {
		if e.kind == "open" {
			assert.Contains(t, DefaultReadingURLs, e.text)
		}
	}
}

func TestReadingClicks(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		env, in, _ := testEnv(7)
		r := NewReading(readingConfig(), env)
		var st LoopState
		for i := 0; i < 100; i++ {
			require.NoError(t, r.Cycle(context.Background(), &st))
		}
		for _, e := range in.events {
			assert.False(t, e.click)
		}
	})

	t.Run("enabled", func(t *testing.T) {
		env, in, _ := testEnv(7)
		cfg := readingConfig()
		cfg.Clicks = true
		cfg.ClickChance = 1
		r := NewReading(cfg, env)
		var st LoopState
		require.NoError(t, r.Cycle(context.Background(), &st))
		require.NotEmpty(t, in.events)
		first := in.events[0]
		assert.Equal(t, "move", first.kind)
		assert.True(t, first.click, "first move of the cycle clicks")
		for _, e := range in.events[1:] {
			assert.False(t, e.click, "wiggles never click")
		}
	})
}

func TestReadingPointerStaysInRectangle(t *testing.T) {
	env, in, _ := testEnv(8)
	r := NewReading(readingConfig(), env)
	var st LoopState
	for i := 0; i < 100; i++ {
		require.NoError(t, r.Cycle(context.Background(), &st))
	}

	for _, e := range in.events {
		if e.kind != "move" {
			continue
		}
		// Wiggles trace small shapes around an in-rectangle origin.
		assert.GreaterOrEqual(t, e.x, screenMinX-100)
		assert.LessOrEqual(t, e.x, screenMaxX+100)
		assert.GreaterOrEqual(t, e.y, screenMinY-100)
		assert.LessOrEqual(t, e.y, screenMaxY+100)
	}
}

func TestReadingScrollKeys(t *testing.T) {
	env, in, _ := testEnv(9)
	r := NewReading(readingConfig(), env)
	var st LoopState
	for i := 0; i < 200; i++ {
		require.NoError(t, r.Cycle(context.Background(), &st))
	}

	counts := map[platform.Key]int{}
	for _, e := range in.events {
		if e.kind == "key" {
			counts[e.key]++
		}
	}
	assert.Positive(t, counts[platform.KeyDown])
	assert.Positive(t, counts[platform.KeySpace])
	assert.Positive(t, counts[platform.KeyUp])
	assert.Greater(t, counts[platform.KeyDown], counts[platform.KeySpace], "small scrolls dominate")
}

func TestReadingCancelled(t *testing.T) {
	env, _, _ := testEnv(10)
	r := NewReading(readingConfig(), env)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var st LoopState
	err := r.Cycle(ctx, &st)
	assert.ErrorIs(t, err, context.Canceled)
}
