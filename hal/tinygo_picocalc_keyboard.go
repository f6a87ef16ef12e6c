//go:build tinygo && baremetal && picocalc

package hal

import (
	"fmt"
	"machine"
	"time"
)

const (
	picoCalcKbdAddr uint16 = 0x1F
	picoCalcKbdCmd         = 0x09
)

const (
	picoCalcKeyShiftL    byte = 0xA2
	picoCalcKeyShiftR    byte = 0xA3
	picoCalcKeyBackspace byte = 0x08
	picoCalcKeyTab       byte = 0x09
	picoCalcKeyEnter     byte = 0x0A
	picoCalcKeyEnd       byte = 0xD5
	picoCalcKeyEsc       byte = 0xB1
	picoCalcKeyLeft      byte = 0xB4
	picoCalcKeyRight     byte = 0xB7
	picoCalcKeyUp        byte = 0xB5
	picoCalcKeyDown      byte = 0xB6
)

// picoCalcKeys maps the carrier's QWERTY codes onto the calculator keypad.
var picoCalcKeys = map[byte]KeyCode{
	picoCalcKeyShiftL:    KeyShift,
	picoCalcKeyShiftR:    KeyShift,
	picoCalcKeyBackspace: KeyBackspace,
	picoCalcKeyTab:       KeyKeyboard,
	picoCalcKeyEnter:     KeyExe,
	'\r':                 KeyExe,
	picoCalcKeyEnd:       KeyPower,
	picoCalcKeyEsc:       KeyClear,
	picoCalcKeyLeft:      KeyLeft,
	picoCalcKeyRight:     KeyRight,
	picoCalcKeyUp:        KeyUp,
	picoCalcKeyDown:      KeyDown,

	'z': KeyZ, 'x': KeyX, 'y': KeyY, 'e': KeyExp,
	'/': KeyDivide, '*': KeyMultiply, '-': KeySubtract, '+': KeyAdd, '_': KeyNegative,
	'=': KeyEquals, '(': KeyLeftBracket, ')': KeyRightBracket, ',': KeyComma, '.': KeyDot,
	'0': Key0, '1': Key1, '2': Key2, '3': Key3, '4': Key4,
	'5': Key5, '6': Key6, '7': Key7, '8': Key8, '9': Key9,
}

type i2cKeyboard struct {
	i2c   *machine.I2C
	write [1]byte
	read  [2]byte
}

func initI2CKeyboard() (*i2cKeyboard, error) {
	write := [1]byte{picoCalcKbdCmd}

	// Prefer I2C1 (original PicoCalc wiring), but some TinyGo targets expose only I2C0.
	for _, bus := range []*machine.I2C{machine.I2C1, machine.I2C0} {
		if bus == nil {
			continue
		}
		for _, freq := range []uint32{100_000, 400_000} {
			if err := bus.Configure(machine.I2CConfig{
				SCL:       machine.GP7,
				SDA:       machine.GP6,
				Frequency: freq,
			}); err != nil {
				continue
			}

			k := &i2cKeyboard{i2c: bus, write: write}

			// The keyboard MCU can be slow to answer right after power-on.
			const probeTries = 50
			for i := 0; i < probeTries; i++ {
				if err := k.i2c.Tx(picoCalcKbdAddr, k.write[:], k.read[:]); err == nil {
					return k, nil
				}
				time.Sleep(10 * time.Millisecond)
			}
		}
	}

	return nil, fmt.Errorf("keyboard: I2C unavailable")
}

func (k *i2cKeyboard) readEvent() (KeyEvent, bool) {
	if err := k.i2c.Tx(picoCalcKbdAddr, k.write[:], k.read[:]); err != nil {
		return KeyEvent{}, false
	}
	if k.read[0] == 0 && k.read[1] == 0 {
		return KeyEvent{}, false
	}

	switch k.read[0] {
	case 0x01: // key down
		return translatePicoCalcKey(k.read[1], true)
	case 0x03: // key up
		return translatePicoCalcKey(k.read[1], false)
	default:
		// Held reports carry no new edge; pressed state persists until key up.
		return KeyEvent{}, false
	}
}

func translatePicoCalcKey(code byte, press bool) (KeyEvent, bool) {
	if code >= 'A' && code <= 'Z' {
		code += 'a' - 'A'
	}
	kc, ok := picoCalcKeys[code]
	if !ok {
		return KeyEvent{}, false
	}
	return KeyEvent{Code: kc, Press: press}, true
}
