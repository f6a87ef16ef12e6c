//go:build !tinygo && cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// desktopKeys maps desktop keys onto the calculator keypad.
var desktopKeys = []struct {
	key  ebiten.Key
	code KeyCode
}{
	{ebiten.KeyShiftLeft, KeyShift},
	{ebiten.KeyEscape, KeyClear},
	{ebiten.KeyBackspace, KeyBackspace},
	{ebiten.KeyArrowLeft, KeyLeft},
	{ebiten.KeyArrowRight, KeyRight},
	{ebiten.KeyArrowUp, KeyUp},
	{ebiten.KeyArrowDown, KeyDown},
	{ebiten.KeyZ, KeyZ},
	{ebiten.KeyX, KeyX},
	{ebiten.KeyY, KeyY},
	{ebiten.KeyEnd, KeyPower},
	{ebiten.KeySlash, KeyDivide},
	{ebiten.KeyNumpadMultiply, KeyMultiply},
	{ebiten.KeyNumpadSubtract, KeySubtract},
	{ebiten.KeyNumpadAdd, KeyAdd},
	{ebiten.KeyEnter, KeyExe},
	{ebiten.KeyE, KeyExp},
	{ebiten.KeyTab, KeyKeyboard},
	{ebiten.KeyEqual, KeyEquals},
	{ebiten.KeyBracketLeft, KeyLeftBracket},
	{ebiten.KeyBracketRight, KeyRightBracket},
	{ebiten.KeyComma, KeyComma},
	{ebiten.KeyMinus, KeyNegative},
	{ebiten.KeyPeriod, KeyDot},
	{ebiten.KeyDigit0, Key0},
	{ebiten.KeyDigit1, Key1},
	{ebiten.KeyDigit2, Key2},
	{ebiten.KeyDigit3, Key3},
	{ebiten.KeyDigit4, Key4},
	{ebiten.KeyDigit5, Key5},
	{ebiten.KeyDigit6, Key6},
	{ebiten.KeyDigit7, Key7},
	{ebiten.KeyDigit8, Key8},
	{ebiten.KeyDigit9, Key9},
}

type hostKeyboard struct {
	ch chan KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent, 64)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

func (k *hostKeyboard) emit(code KeyCode, press bool) {
	select {
	case k.ch <- KeyEvent{Code: code, Press: press}:
	default:
	}
}

func (k *hostKeyboard) poll() {
	for _, m := range desktopKeys {
		if inpututil.IsKeyJustPressed(m.key) {
			k.emit(m.code, true)
		}
		if inpututil.IsKeyJustReleased(m.key) {
			k.emit(m.code, false)
		}
	}
}
