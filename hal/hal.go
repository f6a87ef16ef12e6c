package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("not implemented")

// ErrStop may be returned by a step function to end its runner cleanly.
var ErrStop = errors.New("stop")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb, stored little-endian.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// KeyCode identifies a physical key in the device keycode domain.
//
// Both legacy keyspaces map onto this single domain.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota

	KeyShift
	KeyClear
	KeyBackspace
	KeyLeft
	KeyRight
	KeyZ
	KeyPower
	KeyDivide
	KeyMultiply
	KeySubtract
	KeyAdd
	KeyExe
	KeyExp
	Key3
	Key6
	Key9

	KeyKeyboard
	KeyUp
	KeyDown
	KeyEquals
	KeyX
	KeyY
	KeyLeftBracket
	KeyRightBracket
	KeyComma
	KeyNegative
	Key0
	KeyDot
	Key1
	Key2
	Key4
	Key5
	Key7
	Key8

	keyCodeCount
)

// NumKeyCodes is the size of the keycode domain including KeyUnknown.
const NumKeyCodes = int(keyCodeCount)

var keyNames = [...]string{
	KeyUnknown:      "UNKNOWN",
	KeyShift:        "SHIFT",
	KeyClear:        "CLEAR",
	KeyBackspace:    "BACKSPACE",
	KeyLeft:         "LEFT",
	KeyRight:        "RIGHT",
	KeyZ:            "Z",
	KeyPower:        "POWER",
	KeyDivide:       "DIVIDE",
	KeyMultiply:     "MULTIPLY",
	KeySubtract:     "SUBTRACT",
	KeyAdd:          "ADD",
	KeyExe:          "EXE",
	KeyExp:          "EXP",
	Key3:            "3",
	Key6:            "6",
	Key9:            "9",
	KeyKeyboard:     "KEYBOARD",
	KeyUp:           "UP",
	KeyDown:         "DOWN",
	KeyEquals:       "EQUALS",
	KeyX:            "X",
	KeyY:            "Y",
	KeyLeftBracket:  "LEFT_BRACKET",
	KeyRightBracket: "RIGHT_BRACKET",
	KeyComma:        "COMMA",
	KeyNegative:     "NEGATIVE",
	Key0:            "0",
	KeyDot:          "DOT",
	Key1:            "1",
	Key2:            "2",
	Key4:            "4",
	Key5:            "5",
	Key7:            "7",
	Key8:            "8",
}

func (k KeyCode) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return "UNKNOWN"
}

// KeyEvent is a keyboard event.
type KeyEvent struct {
	Code  KeyCode
	Press bool
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
}

// HAL provides the only contact point between the engine and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
}
