// Package matrix maps host keyboard keys onto the split keyboard's 8x4
// switch matrix so key presses land in a stable spot on the OLED.
package matrix

import (
	"math/rand/v2"
	"unicode"

	"github.com/iburimskiy/oled-ripple/internal/ripple"
)

// rows of the left half, top to bottom
var rows = [...]string{
	"12345678",
	"qwertyui",
	"asdfghjk",
	"zxcvbnm,",
}

const (
	Cols = 8
	Rows = len(rows)
)

var positions = func() map[rune]ripple.KeyEvent {
	m := make(map[rune]ripple.KeyEvent, Cols*Rows)
	for r, keys := range rows {
		for c, k := range keys {
			m[k] = ripple.KeyEvent{Col: uint8(c), Row: uint8(r)}
		}
	}
	return m
}()

// Lookup returns the matrix position of k. Letters match case-insensitively.
func Lookup(k rune) (ripple.KeyEvent, bool) {
	ev, ok := positions[unicode.ToLower(k)]
	return ev, ok
}

// Random picks a matrix position, used for keys outside the layout.
func Random(r *rand.Rand) ripple.KeyEvent {
	return ripple.KeyEvent{Col: uint8(r.IntN(Cols)), Row: uint8(r.IntN(Rows))}
}

// Event resolves k to a key event, falling back to a random position.
func Event(k rune, pressed bool, r *rand.Rand) ripple.KeyEvent {
	ev, ok := Lookup(k)
	if !ok {
		ev = Random(r)
	}
	ev.Pressed = pressed
	return ev
}
