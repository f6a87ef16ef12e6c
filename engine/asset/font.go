package asset

import (
	"fmt"
	"image"
)

const (
	// FontHeaderSize is the glyph width/height header, each big-endian u16.
	FontHeaderSize = 4
	// FirstGlyph and LastGlyph bound the printable ASCII range a font covers.
	FirstGlyph = 32
	LastGlyph  = 126
	// GlyphCount is the number of glyphs stored in every font.
	GlyphCount = LastGlyph - FirstGlyph + 1
)

// Font is a fixed-cell 1bpp bitmap font covering ASCII 32..126.
//
// Glyph c's bits start at bit (c-32)*Width*Height of Bits, row-major,
// most significant bit first within each byte.
type Font struct {
	Width  uint16
	Height uint16
	Bits   []byte

	owner    *Loader
	released bool
}

// FontSize returns the encoded size of a font with w x h glyph cells.
func FontSize(w, h uint16) int {
	return GlyphCount*int(w)*int(h)/8 + 5
}

// Size returns the encoded size in bytes, header included.
func (f *Font) Size() int {
	return FontSize(f.Width, f.Height)
}

// Released reports whether the font was handed back to its loader.
func (f *Font) Released() bool { return f.released }

// Has reports whether c has a glyph in the font.
func (f *Font) Has(c byte) bool {
	return c >= FirstGlyph && c <= LastGlyph
}

// Bit reports whether bit n of glyph c is set. Out of range lookups are unset.
func (f *Font) Bit(c byte, n int) bool {
	if !f.Has(c) || n < 0 || n >= int(f.Width)*int(f.Height) {
		return false
	}
	off := int(c-FirstGlyph)*int(f.Width)*int(f.Height) + n
	idx := off / 8
	if idx >= len(f.Bits) {
		return false
	}
	return f.Bits[idx]&(0x80>>(off%8)) != 0
}

// DecodeFont parses an encoded font. Bytes past the declared size are ignored.
func DecodeFont(b []byte) (*Font, error) {
	if len(b) < FontHeaderSize {
		return nil, fmt.Errorf("%w: font header needs %d bytes, have %d", ErrMalformed, FontHeaderSize, len(b))
	}
	w := uint16(b[0])<<8 | uint16(b[1])
	h := uint16(b[2])<<8 | uint16(b[3])
	need := FontSize(w, h)
	if len(b) < need {
		return nil, fmt.Errorf("%w: font %dx%d needs %d bytes, have %d", ErrMalformed, w, h, need, len(b))
	}
	bits := make([]byte, need-FontHeaderSize)
	copy(bits, b[FontHeaderSize:need])
	return &Font{Width: w, Height: h, Bits: bits}, nil
}

// EncodeFont returns the on-disk form of f.
func EncodeFont(f *Font) []byte {
	out := make([]byte, f.Size())
	out[0] = byte(f.Width >> 8)
	out[1] = byte(f.Width)
	out[2] = byte(f.Height >> 8)
	out[3] = byte(f.Height)
	copy(out[FontHeaderSize:], f.Bits)
	return out
}

// FontFromGlyphs packs per-glyph pixel predicates into a Font.
func FontFromGlyphs(w, h uint16, set func(c byte, col, row int) bool) *Font {
	f := &Font{Width: w, Height: h, Bits: make([]byte, FontSize(w, h)-FontHeaderSize)}
	cell := int(w) * int(h)
	for c := FirstGlyph; c <= LastGlyph; c++ {
		base := (c - FirstGlyph) * cell
		for n := 0; n < cell; n++ {
			if !set(byte(c), n%int(w), n/int(w)) {
				continue
			}
			off := base + n
			f.Bits[off/8] |= 0x80 >> (off % 8)
		}
	}
	return f
}

// FontFromMask packs glyphs stacked vertically in mask, one h-pixel-tall
// cell per glyph, into a Font. index maps a character to its cell.
func FontFromMask(mask image.Image, w, h uint16, index func(c byte) (int, bool)) *Font {
	origin := mask.Bounds().Min
	return FontFromGlyphs(w, h, func(c byte, col, row int) bool {
		i, ok := index(c)
		if !ok {
			return false
		}
		_, _, _, a := mask.At(origin.X+col, origin.Y+i*int(h)+row).RGBA()
		return a >= 0x8000
	})
}
