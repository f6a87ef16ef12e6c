package draw

import (
	"cpboy/engine/asset"
	"cpboy/engine/shader"
)

// CharSpacing is the gap in pixels between neighbouring glyph cells.
const CharSpacing = 1

// TextOptions controls text placement.
type TextOptions struct {
	// Color is the RGB565 sample written for every set glyph bit.
	Color uint16
	// WrapLength is the line width in pixels; 0 disables wrapping.
	WrapLength int
	// LineSpacing is the extra gap in pixels between lines.
	LineSpacing int
}

// Glyph is one printable character placed on the text grid.
type Glyph struct {
	Char byte
	Col  int
	Line int
}

// Layout places the printable characters of text in cells of width w.
//
// '\n' starts a new line. Other characters outside 32..126 are dropped
// without taking a cell. With wrap > 0 a line is broken before a glyph
// whose right edge would pass wrap pixels; the gap after the last glyph
// of a line does not count. A line always takes at least one glyph.
func Layout(text string, w, wrap int) []Glyph {
	out := make([]Glyph, 0, len(text))
	col, line := 0, 0
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c == '\n' {
			line++
			col = 0
			continue
		}
		if c < asset.FirstGlyph || c > asset.LastGlyph {
			continue
		}
		if wrap > 0 && col > 0 && (w+CharSpacing)*col+w > wrap {
			line++
			col = 0
		}
		out = append(out, Glyph{Char: c, Col: col, Line: line})
		col++
	}
	return out
}

// Text draws text with its first cell's top-left corner at (x, y).
func Text(s shader.Surface, f *asset.Font, x, y int, text string, opt TextOptions) {
	TextShader(s, f, x, y, text, opt, shader.ModePlain, 0)
}

// TextShader draws text, compositing every set glyph bit with mode and arg.
// Glyph bits are passed in local coordinates of the whole text block, with
// the glyph cell size as the sprite size. Nil or released fonts draw nothing.
func TextShader(s shader.Surface, f *asset.Font, x, y int, text string, opt TextOptions, mode shader.Mode, arg int) {
	if s == nil || f == nil || f.Released() {
		return
	}
	w, h := int(f.Width), int(f.Height)
	if w == 0 || h == 0 {
		return
	}
	n := w * h
	for _, g := range Layout(text, w, opt.WrapLength) {
		ox := (w + CharSpacing) * g.Col
		oy := (h + opt.LineSpacing) * g.Line
		for bit := 0; bit < n; bit++ {
			if !f.Bit(g.Char, bit) {
				continue
			}
			shader.Composite(s, x, y, w, h, bit%w+ox, bit/w+oy, opt.Color, mode, arg)
		}
	}
}

// TextSize returns the pixel extent of text as laid out by Text.
func TextSize(f *asset.Font, text string, opt TextOptions) (w, h int) {
	if f == nil {
		return 0, 0
	}
	gw, gh := int(f.Width), int(f.Height)
	glyphs := Layout(text, gw, opt.WrapLength)
	if len(glyphs) == 0 {
		return 0, 0
	}
	cols, lines := 0, 0
	for _, g := range glyphs {
		if g.Col+1 > cols {
			cols = g.Col + 1
		}
		if g.Line+1 > lines {
			lines = g.Line + 1
		}
	}
	w = (gw+CharSpacing)*cols - CharSpacing
	h = (gh+opt.LineSpacing)*lines - opt.LineSpacing
	return w, h
}
