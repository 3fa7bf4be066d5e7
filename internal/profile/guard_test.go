package profile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/stigoleg/keep-busy/internal/platform"
)

func TestGuardUserActive(t *testing.T) {
	g := Guard{Threshold: 60 * time.Second}

	tests := []struct {
		name  string
		idle  time.Duration
		since time.Duration
		want  bool
	}{
		{"idle activity is our own", 5 * time.Second, 3 * time.Second, false},
		{"real user after our action", 5 * time.Second, 30 * time.Second, true},
		{"inside the slack window", 5 * time.Second, 7 * time.Second, false},
		{"just past the slack window", 5 * time.Second, 7*time.Second + time.Millisecond, true},
		{"idle above threshold", 61 * time.Second, 300 * time.Second, false},
		{"idle equal to threshold", 60 * time.Second, 300 * time.Second, false},
		{"sensor failure sentinel", platform.IdleUnknown, 300 * time.Second, false},
		{"before first action, user present", 5 * time.Second, -1, true},
		{"before first action, user away", 90 * time.Second, -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.UserActive(tt.idle, tt.since))
		})
	}
}

func TestLoopStateTabsNeverNegative(t *testing.T) {
	var st LoopState
	st.TabClosed()
	assert.Equal(t, 0, st.OpenTabs())

	st.TabOpened()
	st.TabOpened()
	st.TabClosed()
	assert.Equal(t, 1, st.OpenTabs())
	st.TabClosed()
	st.TabClosed()
	assert.Equal(t, 0, st.OpenTabs())
}

func TestLoopStateStep(t *testing.T) {
	var got []string
	st := LoopState{onStep: func(a string) { got = append(got, a) }}
	st.Step("one")
	st.Step("two")
	assert.Equal(t, []string{"one", "two"}, got)

	var silent LoopState
	assert.NotPanics(t, func() { silent.Step("ignored") })
}
