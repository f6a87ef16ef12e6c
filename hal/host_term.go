//go:build !tinygo

package hal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
)

// TermConfig controls the terminal runner.
type TermConfig struct {
	Hz int
	// HoldTicks is how long a key stays down after the last terminal key
	// event. Terminals report no key-up, so autorepeat keeps it held.
	HoldTicks int
}

var termSpecialKeys = map[tcell.Key]KeyCode{
	tcell.KeyUp:         KeyUp,
	tcell.KeyDown:       KeyDown,
	tcell.KeyLeft:       KeyLeft,
	tcell.KeyRight:      KeyRight,
	tcell.KeyEnter:      KeyExe,
	tcell.KeyEscape:     KeyClear,
	tcell.KeyBackspace:  KeyBackspace,
	tcell.KeyBackspace2: KeyBackspace,
	tcell.KeyTab:        KeyKeyboard,
	tcell.KeyEnd:        KeyPower,
}

var termRuneKeys = map[rune]KeyCode{
	's': KeyShift, 'z': KeyZ, 'x': KeyX, 'y': KeyY, 'e': KeyExp,
	'/': KeyDivide, '*': KeyMultiply, '-': KeySubtract, '+': KeyAdd, '_': KeyNegative,
	'=': KeyEquals, '(': KeyLeftBracket, ')': KeyRightBracket, '[': KeyLeftBracket, ']': KeyRightBracket,
	',': KeyComma, '.': KeyDot,
	'0': Key0, '1': Key1, '2': Key2, '3': Key3, '4': Key4,
	'5': Key5, '6': Key6, '7': Key7, '8': Key8, '9': Key9,
}

func termKeyCode(ev *tcell.EventKey) (KeyCode, bool) {
	if ev.Key() == tcell.KeyRune {
		code, ok := termRuneKeys[ev.Rune()]
		return code, ok
	}
	code, ok := termSpecialKeys[ev.Key()]
	return code, ok
}

// termKeys turns press-only terminal key reports into press/release pairs.
type termKeys struct {
	kbd  *hostKeyboard
	hold int
	down map[KeyCode]int
}

func newTermKeys(kbd *hostKeyboard, hold int) *termKeys {
	if hold <= 0 {
		hold = 6
	}
	return &termKeys{kbd: kbd, hold: hold, down: make(map[KeyCode]int)}
}

func (k *termKeys) press(code KeyCode) {
	if _, held := k.down[code]; !held {
		k.kbd.emit(code, true)
	}
	k.down[code] = k.hold
}

func (k *termKeys) tick() {
	for code, left := range k.down {
		left--
		if left <= 0 {
			delete(k.down, code)
			k.kbd.emit(code, false)
			continue
		}
		k.down[code] = left
	}
}

// pumpEvents forwards polled events until poll returns nil or done closes.
// A full events buffer never strands it once done is closed.
func pumpEvents(poll func() tcell.Event, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := poll()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// RunTerminal renders the framebuffer into the terminal using half-block
// cells and feeds terminal keys into the keyboard. Ctrl-C quits.
func RunTerminal(ctx context.Context, newApp func(HAL) func() error, cfg TermConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 30
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	h := New().(*hostHAL)
	step := newApp(h)
	keys := newTermKeys(h.kbd, cfg.HoldTicks)

	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)
	go pumpEvents(screen.PollEvent, events, done)

	t := time.NewTicker(time.Second / time.Duration(cfg.Hz))
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyCtrlC {
					return nil
				}
				if code, ok := termKeyCode(ev); ok {
					keys.press(code)
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-t.C:
			if step != nil {
				if err := step(); err != nil {
					if errors.Is(err, ErrStop) {
						return nil
					}
					return fmt.Errorf("terminal step: %w", err)
				}
			}
			keys.tick()
			drawTerminal(screen, h.fb)
		}
	}
}

func drawTerminal(screen tcell.Screen, fb *hostFramebuffer) {
	cols, rows := screen.Size()
	if cols <= 0 || rows <= 0 {
		return
	}
	fb.mu.Lock()
	defer fb.mu.Unlock()

	sx := (fb.width + cols - 1) / cols
	sy := (fb.height + rows*2 - 1) / (rows * 2)
	scale := sx
	if sy > scale {
		scale = sy
	}
	if scale < 1 {
		scale = 1
	}
	for cy := 0; cy < rows; cy++ {
		top := cy * 2 * scale
		bottom := top + scale
		if top >= fb.height {
			break
		}
		for cx := 0; cx < cols; cx++ {
			x := cx * scale
			if x >= fb.width {
				break
			}
			style := tcell.StyleDefault.Foreground(termColor(fb.pixelAt(x, top)))
			if bottom < fb.height {
				style = style.Background(termColor(fb.pixelAt(x, bottom)))
			}
			screen.SetContent(cx, cy, '▀', nil, style)
		}
	}
	screen.Show()
}

func termColor(p uint16) tcell.Color {
	r, g, b := RGB888(p)
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
