// Package platform provides the OS-facing capabilities the activity profiles
// consume: synthetic input, URL opening, app activation and idle sensing.
// One implementation of each is selected at startup.
package platform

import (
	"context"
	"fmt"
	"runtime"
)

// Key is a logical key understood by every Input driver.
type Key string

const (
	KeySpace        Key = "space"
	KeyTab          Key = "tab"
	KeyDown         Key = "down"
	KeyUp           Key = "up"
	KeyLeft         Key = "left"
	KeyRight        Key = "right"
	KeyEscape       Key = "escape"
	KeyBackspace    Key = "backspace"
	KeyRightBracket Key = "]"
	KeyLeftBracket  Key = "["
	KeyW            Key = "w"
)

// Modifier is a logical modifier key. ModCmd maps to ctrl off macOS.
type Modifier string

const (
	ModCtrl  Modifier = "ctrl"
	ModAlt   Modifier = "alt"
	ModShift Modifier = "shift"
	ModCmd   Modifier = "cmd"
)

var validKeys = map[Key]bool{
	KeySpace: true, KeyTab: true, KeyDown: true, KeyUp: true, KeyLeft: true,
	KeyRight: true, KeyEscape: true, KeyBackspace: true, KeyRightBracket: true,
	KeyLeftBracket: true, KeyW: true,
}

// Valid reports whether k is one of the supported keys.
func (k Key) Valid() bool { return validKeys[k] }

// Input injects synthetic user input. Every call may block on the OS and is
// fallible; callers decide whether a failure aborts the current cycle.
type Input interface {
	MoveMouse(ctx context.Context, x, y int, click bool) error
	Click(ctx context.Context) error
	PressKey(ctx context.Context, key Key) error
	PressKeyWithModifiers(ctx context.Context, key Key, mods ...Modifier) error
	TypeText(ctx context.Context, text string) error
	ActivateApp(ctx context.Context, name string) error
	OpenURL(ctx context.Context, url string) error
}

// Combo is a key plus the modifiers held while it is pressed.
type Combo struct {
	Key  Key
	Mods []Modifier
}

func (c Combo) String() string {
	s := ""
	for _, m := range c.Mods {
		s += string(m) + "+"
	}
	return s + string(c.Key)
}

// Press sends the combo through in.
func (c Combo) Press(ctx context.Context, in Input) error {
	if len(c.Mods) == 0 {
		return in.PressKey(ctx, c.Key)
	}
	return in.PressKeyWithModifiers(ctx, c.Key, c.Mods...)
}

// Shortcuts holds the platform's key combinations for window and tab
// handling.
type Shortcuts struct {
	CycleWindow Combo
	NextTab     Combo
	CloseTab    Combo
	// WindowCycling is false where there is no reliable app switcher combo.
	WindowCycling bool
}

// ShortcutsFor returns the shortcut set for goos.
func ShortcutsFor(goos string) Shortcuts {
	switch goos {
	case "darwin":
		return Shortcuts{
			CycleWindow:   Combo{Key: KeyTab, Mods: []Modifier{ModCmd}},
			NextTab:       Combo{Key: KeyRightBracket, Mods: []Modifier{ModCmd, ModShift}},
			CloseTab:      Combo{Key: KeyW, Mods: []Modifier{ModCmd}},
			WindowCycling: true,
		}
	case "windows", "linux":
		return Shortcuts{
			CycleWindow:   Combo{Key: KeyTab, Mods: []Modifier{ModAlt}},
			NextTab:       Combo{Key: KeyTab, Mods: []Modifier{ModCtrl}},
			CloseTab:      Combo{Key: KeyW, Mods: []Modifier{ModCtrl}},
			WindowCycling: true,
		}
	default:
		return Shortcuts{
			CycleWindow: Combo{Key: KeyTab, Mods: []Modifier{ModAlt}},
			NextTab:     Combo{Key: KeyTab, Mods: []Modifier{ModCtrl}},
			CloseTab:    Combo{Key: KeyW, Mods: []Modifier{ModCtrl}},
		}
	}
}

// CurrentShortcuts returns the shortcut set for the running OS.
func CurrentShortcuts() Shortcuts {
	return ShortcutsFor(runtime.GOOS)
}

// nativeModifier maps a logical modifier to the name the OS driver expects.
func nativeModifier(goos string, m Modifier) string {
	if m == ModCmd && goos != "darwin" {
		return string(ModCtrl)
	}
	return string(m)
}

// ActionError wraps a failed input action with the action name.
type ActionError struct {
	Action string
	Err    error
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("%s: %v", e.Action, e.Err)
}

func (e *ActionError) Unwrap() error { return e.Err }
