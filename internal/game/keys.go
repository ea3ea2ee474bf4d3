package game

import "github.com/hajimehoshi/ebiten/v2"

// keyRunes translates the ebiten keys covered by the matrix layout.
var keyRunes = map[ebiten.Key]rune{
	ebiten.KeyDigit1: '1', ebiten.KeyDigit2: '2', ebiten.KeyDigit3: '3', ebiten.KeyDigit4: '4',
	ebiten.KeyDigit5: '5', ebiten.KeyDigit6: '6', ebiten.KeyDigit7: '7', ebiten.KeyDigit8: '8',
	ebiten.KeyQ: 'q', ebiten.KeyW: 'w', ebiten.KeyE: 'e', ebiten.KeyR: 'r',
	ebiten.KeyT: 't', ebiten.KeyY: 'y', ebiten.KeyU: 'u', ebiten.KeyI: 'i',
	ebiten.KeyA: 'a', ebiten.KeyS: 's', ebiten.KeyD: 'd', ebiten.KeyF: 'f',
	ebiten.KeyG: 'g', ebiten.KeyH: 'h', ebiten.KeyJ: 'j', ebiten.KeyK: 'k',
	ebiten.KeyZ: 'z', ebiten.KeyX: 'x', ebiten.KeyC: 'c', ebiten.KeyV: 'v',
	ebiten.KeyB: 'b', ebiten.KeyN: 'n', ebiten.KeyM: 'm', ebiten.KeyComma: ',',
}

// control keys handled by the emulator instead of the matrix
const (
	keyQuit       = ebiten.KeyEscape
	keyPause      = ebiten.KeySpace
	keyOpenClick  = ebiten.KeyF2
	keyScreenshot = ebiten.KeyF12
)

// quitAfterPress reports whether k stops the emulator once its press has
// reached the matrix.
func quitAfterPress(k ebiten.Key) bool {
	return k == ebiten.KeyQ
}

func isControl(k ebiten.Key) bool {
	switch k {
	case keyQuit, keyPause, keyOpenClick, keyScreenshot:
		return true
	}
	return false
}

// keyRune returns the layout rune for k, or 0 for keys outside the layout.
func keyRune(k ebiten.Key) rune {
	return keyRunes[k]
}
