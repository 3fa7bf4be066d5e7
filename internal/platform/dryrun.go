package platform

import (
	"context"

	"go.uber.org/zap"
)

// dryRunInput logs every action instead of performing it. It lets a profile
// run on machines without input-simulation permissions.
type dryRunInput struct {
	logger *zap.Logger
}

func (d *dryRunInput) MoveMouse(ctx context.Context, x, y int, click bool) error {
	d.logger.Debug("move mouse", zap.Int("x", x), zap.Int("y", y), zap.Bool("click", click))
	return ctx.Err()
}

func (d *dryRunInput) Click(ctx context.Context) error {
	d.logger.Debug("click")
	return ctx.Err()
}

func (d *dryRunInput) PressKey(ctx context.Context, key Key) error {
	if !key.Valid() {
		return &ActionError{Action: "press " + string(key), Err: ErrUnsupportedKey}
	}
	d.logger.Debug("press key", zap.String("key", string(key)))
	return ctx.Err()
}

func (d *dryRunInput) PressKeyWithModifiers(ctx context.Context, key Key, mods ...Modifier) error {
	if !key.Valid() {
		return &ActionError{Action: "press " + string(key), Err: ErrUnsupportedKey}
	}
	d.logger.Debug("press combo", zap.Stringer("combo", Combo{Key: key, Mods: mods}))
	return ctx.Err()
}

func (d *dryRunInput) TypeText(ctx context.Context, text string) error {
	d.logger.Debug("type", zap.String("text", text))
	return ctx.Err()
}

func (d *dryRunInput) ActivateApp(ctx context.Context, name string) error {
	d.logger.Debug("activate app", zap.String("app", name))
	return ctx.Err()
}

func (d *dryRunInput) OpenURL(ctx context.Context, url string) error {
	d.logger.Debug("open url", zap.String("url", url))
	return ctx.Err()
}
