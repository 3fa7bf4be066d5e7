//go:build darwin || linux || windows

package platform

import (
	"context"
	"runtime"

	"github.com/go-vgo/robotgo"
	"go.uber.org/zap"

	"github.com/stigoleg/keep-busy/internal/platform/command"
)

// robotgoInput drives the real mouse and keyboard through robotgo.
type robotgoInput struct {
	goos   string
	logger *zap.Logger
}

func newNativeInput(logger *zap.Logger) (Input, error) {
	return &robotgoInput{goos: runtime.GOOS, logger: logger}, nil
}

var robotgoKeys = map[Key]string{
	KeySpace:        "space",
	KeyTab:          "tab",
	KeyDown:         "down",
	KeyUp:           "up",
	KeyLeft:         "left",
	KeyRight:        "right",
	KeyEscape:       "esc",
	KeyBackspace:    "backspace",
	KeyRightBracket: "]",
	KeyLeftBracket:  "[",
	KeyW:            "w",
}

func (r *robotgoInput) MoveMouse(ctx context.Context, x, y int, click bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !robotgo.MoveSmooth(x, y) {
		robotgo.Move(x, y)
	}
	if click {
		robotgo.Click()
	}
	return nil
}

func (r *robotgoInput) Click(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	robotgo.Click()
	return nil
}

func (r *robotgoInput) PressKey(ctx context.Context, key Key) error {
	return r.PressKeyWithModifiers(ctx, key)
}

func (r *robotgoInput) PressKeyWithModifiers(ctx context.Context, key Key, mods ...Modifier) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	name, ok := robotgoKeys[key]
	if !ok {
		return &ActionError{Action: "press " + string(key), Err: ErrUnsupportedKey}
	}

	var err error
	if len(mods) == 0 {
		err = robotgo.KeyTap(name)
	} else {
		native := make([]string, 0, len(mods))
		for _, m := range mods {
			native = append(native, nativeModifier(r.goos, m))
		}
		err = robotgo.KeyTap(name, native)
	}
	if err != nil {
		return &ActionError{Action: "press " + Combo{Key: key, Mods: mods}.String(), Err: err}
	}
	return nil
}

func (r *robotgoInput) TypeText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	robotgo.TypeStr(text)
	return nil
}

func (r *robotgoInput) ActivateApp(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := robotgo.ActiveName(name); err != nil {
		return &ActionError{Action: "activate " + name, Err: err}
	}
	return nil
}

func (r *robotgoInput) OpenURL(ctx context.Context, url string) error {
	name, args := openURLCommand(url)
	if _, err := command.Run(ctx, name, args...); err != nil {
		r.logger.Warn("failed to open url", zap.String("url", url), zap.Error(err))
		return &ActionError{Action: "open " + url, Err: err}
	}
	return nil
}
