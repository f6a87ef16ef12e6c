package draw

import (
	"image/color"

	"cpboy/engine/asset"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// Fonter exposes a packed asset.Font as a tinyfont.Fonter so tinyfont's
// WriteLine, LineWidth and friends can render it on any drivers.Displayer.
//
// The y coordinate passed to tinyfont is the glyph baseline, the bottom
// row of the cell. Characters without a glyph render as '?'.
// Concurrent access is not safe due to internal glyph reuse.
type Fonter struct {
	font *asset.Font
	g    fontGlyph
}

var _ tinyfont.Fonter = (*Fonter)(nil)

// NewFonter wraps f. A nil font falls back to asset.Builtin.
func NewFonter(f *asset.Font) *Fonter {
	if f == nil {
		f = asset.Builtin()
	}
	return &Fonter{font: f, g: fontGlyph{font: f}}
}

func (f *Fonter) GetYAdvance() uint8 {
	return clampU8(int(f.font.Height) + CharSpacing)
}

func (f *Fonter) GetGlyph(r rune) tinyfont.Glypher {
	c := byte('?')
	if r >= asset.FirstGlyph && r <= asset.LastGlyph {
		c = byte(r)
	}
	f.g.r = r
	f.g.c = c
	return &f.g
}

type fontGlyph struct {
	font *asset.Font
	r    rune
	c    byte
}

func (g *fontGlyph) Draw(display drivers.Displayer, x, y int16, c color.RGBA) {
	if g.font.Released() {
		return
	}
	w, h := int(g.font.Width), int(g.font.Height)
	top := y - int16(h-1)
	for bit := 0; bit < w*h; bit++ {
		if g.font.Bit(g.c, bit) {
			display.SetPixel(x+int16(bit%w), top+int16(bit/w), c)
		}
	}
}

func (g *fontGlyph) Info() tinyfont.GlyphInfo {
	w, h := int(g.font.Width), int(g.font.Height)
	rise := h - 1
	if rise > 127 {
		rise = 127
	}
	return tinyfont.GlyphInfo{
		Rune:     g.r,
		Width:    clampU8(w),
		Height:   clampU8(h),
		XAdvance: clampU8(w + CharSpacing),
		XOffset:  0,
		YOffset:  int8(-rise),
	}
}

func clampU8(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 0xFF {
		return 0xFF
	}
	return uint8(v)
}
