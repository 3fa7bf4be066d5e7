package profile

import (
	"context"
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/stigoleg/keep-busy/internal/platform"
	"github.com/stigoleg/keep-busy/internal/random"
	"github.com/stigoleg/keep-busy/internal/random/randomtest"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var epoch = time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)

type event struct {
	kind  string // move, click, key, combo, type, activate, open
	x, y  int
	click bool
	key   platform.Key
	combo string
	text  string
	at    time.Time
}

// fakeInput records every action with the virtual time it happened at.
type fakeInput struct {
	clock  *randomtest.Clock
	events []event
	// fail, when set, is returned by every action of that kind.
	fail map[string]error
}

func newFakeInput(clock *randomtest.Clock) *fakeInput {
	return &fakeInput{clock: clock, fail: map[string]error{}}
}

func (f *fakeInput) record(ctx context.Context, e event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	e.at = f.clock.Now()
	f.events = append(f.events, e)
	return f.fail[e.kind]
}

func (f *fakeInput) MoveMouse(ctx context.Context, x, y int, click bool) error {
	return f.record(ctx, event{kind: "move", x: x, y: y, click: click})
}

func (f *fakeInput) Click(ctx context.Context) error {
	return f.record(ctx, event{kind: "click"})
}

func (f *fakeInput) PressKey(ctx context.Context, key platform.Key) error {
	return f.record(ctx, event{kind: "key", key: key})
}

func (f *fakeInput) PressKeyWithModifiers(ctx context.Context, key platform.Key, mods ...platform.Modifier) error {
	return f.record(ctx, event{kind: "combo", key: key, combo: platform.Combo{Key: key, Mods: mods}.String()})
}

func (f *fakeInput) TypeText(ctx context.Context, text string) error {
	return f.record(ctx, event{kind: "type", text: text})
}

func (f *fakeInput) ActivateApp(ctx context.Context, name string) error {
	return f.record(ctx, event{kind: "activate", text: name})
}

func (f *fakeInput) OpenURL(ctx context.Context, url string) error {
	return f.record(ctx, event{kind: "open", text: url})
}

func (f *fakeInput) count(kind string) int {
	n := 0
	for _, e := range f.events {
		if e.kind == kind {
			n++
		}
	}
	return n
}

func (f *fakeInput) reset() { f.events = nil }

// fakeSensor returns scripted idle samples and records when it was polled.
type fakeSensor struct {
	clock *randomtest.Clock
	idle  func(poll int) time.Duration
	polls []time.Time
	// onPoll runs after each poll with the poll number (1-based).
	onPoll func(poll int)
}

func (s *fakeSensor) IdleTime(context.Context) time.Duration {
	s.polls = append(s.polls, s.clock.Now())
	n := len(s.polls)
	if s.onPoll != nil {
		s.onPoll(n)
	}
	if s.idle == nil {
		return platform.IdleUnknown
	}
	return s.idle(n)
}

func testEnv(seed int64) (Env, *fakeInput, *randomtest.Clock) {
	clock := randomtest.NewClock(epoch)
	in := newFakeInput(clock)
	return Env{
		Input:     in,
		Rand:      random.New(seed, clock),
		Shortcuts: platform.ShortcutsFor("linux"),
	}, in, clock
}

func testClock() *randomtest.Clock {
	return randomtest.NewClock(epoch)
}
