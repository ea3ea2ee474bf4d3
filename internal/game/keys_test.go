package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/oled-ripple/internal/matrix"
)

func TestKeyRunesCoverMatrix(t *testing.T) {
	if len(keyRunes) != matrix.Cols*matrix.Rows {
		t.Errorf("keyRunes has %d entries, want %d", len(keyRunes), matrix.Cols*matrix.Rows)
	}
	seen := make(map[[2]uint8]ebiten.Key)
	for k, r := range keyRunes {
		ev, ok := matrix.Lookup(r)
		if !ok {
			t.Errorf("key %v rune %q missing from the matrix", k, r)
			continue
		}
		pos := [2]uint8{ev.Col, ev.Row}
		if other, dup := seen[pos]; dup {
			t.Errorf("keys %v and %v share position %v", k, other, pos)
		}
		seen[pos] = k
	}
}

func TestControlKeys(t *testing.T) {
	for _, k := range []ebiten.Key{keyQuit, keyPause, keyOpenClick, keyScreenshot} {
		if !isControl(k) {
			t.Errorf("isControl(%v) = false", k)
		}
		if keyRune(k) != 0 {
			t.Errorf("control key %v also maps to a rune", k)
		}
	}
	if isControl(ebiten.KeyA) {
		t.Error("KeyA is not a control key")
	}
}

func TestQuitAfterPress(t *testing.T) {
	if !quitAfterPress(ebiten.KeyQ) {
		t.Error("KeyQ should quit")
	}
	if isControl(ebiten.KeyQ) || keyRune(ebiten.KeyQ) != 'q' {
		t.Error("KeyQ should still reach the matrix as 'q'")
	}
	for _, k := range []ebiten.Key{ebiten.KeyW, ebiten.KeyA, keyPause} {
		if quitAfterPress(k) {
			t.Errorf("quitAfterPress(%v) = true", k)
		}
	}
}

func TestNewRand(t *testing.T) {
	a, b := newRand(5), newRand(5)
	if a.IntN(1000) != b.IntN(1000) {
		t.Error("equal seeds diverged")
	}
	if newRand(0) == nil {
		t.Error("newRand(0) returned nil")
	}
}
