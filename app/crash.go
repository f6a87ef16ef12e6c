package app

import (
	"fmt"
	"image/color"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"cpboy/engine/asset"
	"cpboy/engine/draw"
	"cpboy/engine/surface"
	"cpboy/hal"

	"tinygo.org/x/tinyfont"
)

// guard turns a panic inside step into an error after logging it and
// painting it on screen.
func guard(h hal.HAL, step func() error) func() error {
	return func() (err error) {
		defer func() {
			if v := recover(); v != nil {
				stack := debug.Stack()
				crashScreen(h, v, stack)
				err = fmt.Errorf("app: panic: %v", v)
			}
		}()
		return step()
	}
}

func crashScreen(h hal.HAL, v any, stack []byte) {
	if h == nil {
		return
	}
	if l := h.Logger(); l != nil {
		l.WriteLineString(fmt.Sprintf("cpboy panic: %v", v))
		for _, line := range strings.Split(string(stack), "\n") {
			if line == "" {
				continue
			}
			l.WriteLineString(line)
		}
	}

	disp := h.Display()
	if disp == nil {
		return
	}
	fb := disp.Framebuffer()
	if fb == nil {
		return
	}
	fb.ClearRGB(255, 255, 255)

	font := draw.NewFonter(asset.Builtin())
	fontHeight := int16(font.GetYAdvance())
	_, outboxWidth := tinyfont.LineWidth(font, "0")
	fontWidth := int16(outboxWidth)
	if fontWidth <= 0 || fontHeight <= 0 {
		_ = fb.Present()
		return
	}

	d := surface.Displayer{T: surface.NewFramebuffer(fb)}
	lines := []string{"cpboy panic:", fmt.Sprintf("%v", v)}
	if len(stack) > 0 {
		lines = append(lines, "stack:")
		for _, line := range strings.Split(string(stack), "\n") {
			if line != "" {
				lines = append(lines, strings.TrimSpace(line))
			}
		}
	}

	fg := color.RGBA{A: 0xFF}
	cols := int16(fb.Width()) / fontWidth
	if cols <= 0 {
		cols = 1
	}
	y := fontHeight - 1
	for _, line := range lines {
		for len(line) > 0 {
			if y >= int16(fb.Height()) {
				_ = fb.Present()
				return
			}
			chunk, rest := takeRunes(line, cols)
			tinyfont.WriteLine(d, font, 0, y, chunk, fg)
			y += fontHeight
			line = strings.TrimLeft(rest, " ")
		}
	}
	_ = fb.Present()
}

func takeRunes(s string, n int16) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if int64(len(s)) <= int64(n) {
		return s, ""
	}
	var i int
	var count int16
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
