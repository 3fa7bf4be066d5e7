package keepalive

import (
	"context"
	"bytes"
	"errors"
	"runtime"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/stigoleg/keep-busy/internal/profile"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// blockingRunner runs until its context ends.
type blockingRunner struct {
	started atomic.Bool
	err     error
}

func (b *blockingRunner) Name() string { return "reading" }

func (b *blockingRunner) Run(ctx context.Context) error {
	b.started.Store(true)
	if b.err != nil {
		return b.err
	}
	<-ctx.Done()
	return ctx.Err()
}

func (b *blockingRunner) Status() profile.Status {
	return profile.Status{Profile: "reading", Phase: profile.PhaseThinking, Cycles: 2}
}

func TestKeeperIndefinite(t *testing.T) {
	k := New(zap.NewNop())
	assert.False(t, k.IsRunning())
	_, ok := k.Status()
	assert.False(t, ok)
	assert.Equal(t, SimulationHealthUnknown, k.GetSimulationHealth())

	r := &blockingRunner{}
	require.NoError(t, k.StartIndefinite(r))
	assert.True(t, k.IsRunning())
	assert.Zero(t, k.TimeRemaining())
	assert.ErrorIs(t, k.StartIndefinite(r), ErrAlreadyRunning)

	assert.Eventually(t, r.started.Load, time.Second, 5*time.Millisecond)
	st, ok := k.Status()
	require.True(t, ok)
	assert.Equal(t, 2, st.Cycles)
	assert.Equal(t, SimulationHealthOK, k.GetSimulationHealth())

	require.NoError(t, k.Stop())
	assert.False(t, k.IsRunning())
	assert.NoError(t, k.Err())
	assert.NoError(t, k.Stop(), "stopping twice is a no-op")
}

func TestKeeperTimed(t *testing.T) {
	k := New(nil)
	require.NoError(t, k.StartTimed(&blockingRunner{}, 50*time.Millisecond))
	assert.Positive(t, k.TimeRemaining())
	assert.False(t, k.EndTime().IsZero())

	select {
	case <-k.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("timed run did not end")
	}
	assert.False(t, k.IsRunning())
	assert.NoError(t, k.Err(), "deadline is a normal end")
	assert.Zero(t, k.TimeRemaining())
}

func TestKeeperRestart(t *testing.T) {
	k := New(nil)
	require.NoError(t, k.StartIndefinite(&blockingRunner{}))
	require.NoError(t, k.Stop())
	require.NoError(t, k.StartUntil(&blockingRunner{}, time.Time{}))
	assert.True(t, k.IsRunning())
	require.NoError(t, k.Stop())
}

func TestKeeperRunnerError(t *testing.T) {
	k := New(nil)
	boom := errors.New("no display")
	require.NoError(t, k.StartIndefinite(&blockingRunner{err: boom}))

	<-k.Done()
	assert.False(t, k.IsRunning())
	assert.ErrorIs(t, k.Err(), boom)
}

func TestKeeperWithEngine(t *testing.T) {
	k := New(nil)
	engine := newDryRunEngine(t)
	require.NoError(t, k.StartTimed(engine, 30*time.Millisecond))
	<-k.Done()

	st, ok := k.Status()
	require.True(t, ok)
	assert.Equal(t, profile.PhaseStopped, st.Phase)
	assert.NoError(t, k.Err())
}

func goroutineID() uint64 {
	buf := make([]byte, 64)
	buf = buf[:runtime.Stack(buf, false)]
	buf = bytes.TrimPrefix(buf, []byte("goroutine "))
	id, _ := strconv.ParseUint(string(buf[:bytes.IndexByte(buf, ' ')]), 10, 64)
	return id
}

// threadRunner records the goroutine its Run executes on.
type threadRunner struct {
	blockingRunner
	id atomic.Uint64
}

func (r *threadRunner) Run(ctx context.Context) error {
	r.id.Store(goroutineID())
	return r.blockingRunner.Run(ctx)
}

func TestKeeperSleepHooksShareRunGoroutine(t *testing.T) {
	var (
		mu    sync.Mutex
		calls []string
		ids   []uint64
	)
	record := func(name string) func() error {
		return func() error {
			mu.Lock()
			defer mu.Unlock()
			calls = append(calls, name)
			ids = append(ids, goroutineID())
			return nil
		}
	}
	saved := displaySleep
	displaySleep = sleepControl{prevent: record("prevent"), allow: record("allow")}
	t.Cleanup(func() { displaySleep = saved })

	k := New(nil)
	r := &threadRunner{}
	require.NoError(t, k.StartIndefinite(r))
	assert.Eventually(t, r.started.Load, time.Second, 5*time.Millisecond)
	require.NoError(t, k.Stop())

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, []string{"prevent", "allow"}, calls)
	assert.NotEqual(t, goroutineID(), ids[0], "prevent must not run on the caller of Start")
	assert.Equal(t, r.id.Load(), ids[0])
	assert.Equal(t, ids[0], ids[1], "allow must run where prevent ran")
}
