package profile

import (
	"context"
	"unicode"

	"github.com/stigoleg/keep-busy/internal/platform"
	"github.com/stigoleg/keep-busy/internal/random"
)

// Typist types text one character at a time with humanlike pacing and the
// occasional corrected typo.
type Typist struct {
	in  platform.Input
	rnd *random.Rand
}

// NewTypist returns a Typist sending keystrokes through in.
func NewTypist(in platform.Input, rnd *random.Rand) *Typist {
	return &Typist{in: in, rnd: rnd}
}

// Type emits text. Total latency grows with len(text) and varies per call.
func (t *Typist) Type(ctx context.Context, text string) error {
	for _, ch := range text {
		if isLetter(ch) && t.rnd.Chance(typoChance) {
			if err := t.typo(ctx, ch); err != nil {
				return err
			}
		}
		if err := t.in.TypeText(ctx, string(ch)); err != nil {
			return err
		}
		if err := t.rnd.Sleep(ctx, keystrokeMinMs, keystrokeMaxMs); err != nil {
			return err
		}
	}
	return nil
}

// typo types a wrong lowercase letter and erases it.
func (t *Typist) typo(ctx context.Context, intended rune) error {
	wrong := t.wrongLetter(unicode.ToLower(intended))
	if err := t.in.TypeText(ctx, string(wrong)); err != nil {
		return err
	}
	if err := t.rnd.Sleep(ctx, typoFixMinMs, typoFixMaxMs); err != nil {
		return err
	}
	if err := t.in.PressKey(ctx, platform.KeyBackspace); err != nil {
		return err
	}
	return t.rnd.Sleep(ctx, typoFixMinMs, typoFixMaxMs)
}

func (t *Typist) wrongLetter(intended rune) rune {
	for {
		r := rune('a' + t.rnd.Int(0, 25))
		if r != intended {
			return r
		}
	}
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
