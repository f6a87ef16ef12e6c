//go:build !tinygo

package hal

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Hz      int
	Ticks   uint64
	// Screenshot, when set, receives a BMP of the last presented frame.
	Screenshot string
	// Script replays key presses at fixed ticks.
	Script []ScriptedKey
}

// ScriptedKey holds Code down from tick Down until tick Up (exclusive).
type ScriptedKey struct {
	Code KeyCode
	Down uint64
	Up   uint64
}

// ParseKeyScript parses a comma separated list of KEY@TICK or KEY@FIRST-LAST.
// A single tick presses the key for exactly one tick.
func ParseKeyScript(s string) ([]ScriptedKey, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	var out []ScriptedKey
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		name, span, ok := strings.Cut(item, "@")
		if !ok {
			return nil, fmt.Errorf("key script %q: missing @", item)
		}
		code, ok := KeyCodeByName(name)
		if !ok {
			return nil, fmt.Errorf("key script %q: unknown key %q", item, name)
		}
		first, last, ranged := strings.Cut(span, "-")
		down, err := strconv.ParseUint(first, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("key script %q: %w", item, err)
		}
		up := down + 1
		if ranged {
			end, err := strconv.ParseUint(last, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("key script %q: %w", item, err)
			}
			if end < down {
				return nil, fmt.Errorf("key script %q: range ends before it starts", item)
			}
			up = end + 1
		}
		out = append(out, ScriptedKey{Code: code, Down: down, Up: up})
	}
	return out, nil
}

// KeyCodeByName looks a key up by its String form, case-insensitively.
func KeyCodeByName(name string) (KeyCode, bool) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for i := 1; i < NumKeyCodes; i++ {
		if keyNames[i] == name {
			return KeyCode(i), true
		}
	}
	return KeyUnknown, false
}

// RunHeadless runs the game loop without opening a window.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}

	h := New().(*hostHAL)
	step := newApp(h)

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	finish := func(err error) error {
		if cfg.Screenshot != "" {
			if serr := writeScreenshot(cfg.Screenshot, h.fb); serr != nil {
				h.logger.WriteLineString(fmt.Sprintf("headless: screenshot: %v", serr))
			}
		}
		if errors.Is(err, ErrStop) {
			return nil
		}
		return err
	}

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return finish(ctx.Err())
		case <-t.C:
			replayScript(h.kbd, cfg.Script, tick)
			if step != nil {
				if err := step(); err != nil {
					return finish(err)
				}
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return finish(nil)
			}
		}
	}
}

func replayScript(kbd *hostKeyboard, script []ScriptedKey, tick uint64) {
	for _, sk := range script {
		if sk.Down == tick {
			kbd.emit(sk.Code, true)
		}
		if sk.Up == tick {
			kbd.emit(sk.Code, false)
		}
	}
}
