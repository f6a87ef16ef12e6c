package asset

import (
	"encoding/binary"
	"fmt"
)

// TextureHeaderSize is the width/height header that precedes pixel data.
const TextureHeaderSize = 4

// Texture is a row-major grid of RGB565 samples.
//
// On disk: [u16 width LE][u16 height LE][width*height u16 samples LE].
type Texture struct {
	Width  uint16
	Height uint16
	Pix    []uint16

	owner    *Loader
	released bool
}

// TextureSize returns the encoded size of a w x h texture.
func TextureSize(w, h uint16) int {
	return int(w)*int(h)*2 + TextureHeaderSize
}

// NewTexture wraps pix as a w x h texture.
func NewTexture(w, h uint16, pix []uint16) (*Texture, error) {
	if len(pix) != int(w)*int(h) {
		return nil, fmt.Errorf("%w: texture %dx%d with %d samples", ErrMalformed, w, h, len(pix))
	}
	return &Texture{Width: w, Height: h, Pix: pix}, nil
}

// Size returns the encoded size in bytes, header included.
func (t *Texture) Size() int {
	return TextureSize(t.Width, t.Height)
}

// Released reports whether the texture was handed back to its loader.
func (t *Texture) Released() bool { return t.released }

// DecodeTexture parses an encoded texture. Bytes past the declared size are ignored.
func DecodeTexture(b []byte) (*Texture, error) {
	if len(b) < TextureHeaderSize {
		return nil, fmt.Errorf("%w: texture header needs %d bytes, have %d", ErrMalformed, TextureHeaderSize, len(b))
	}
	w := binary.LittleEndian.Uint16(b[0:])
	h := binary.LittleEndian.Uint16(b[2:])
	need := TextureSize(w, h)
	if len(b) < need {
		return nil, fmt.Errorf("%w: texture %dx%d needs %d bytes, have %d", ErrMalformed, w, h, need, len(b))
	}

	pix := make([]uint16, int(w)*int(h))
	for i := range pix {
		pix[i] = binary.LittleEndian.Uint16(b[TextureHeaderSize+i*2:])
	}
	return &Texture{Width: w, Height: h, Pix: pix}, nil
}

// EncodeTexture returns the on-disk form of t.
func EncodeTexture(t *Texture) []byte {
	out := make([]byte, t.Size())
	binary.LittleEndian.PutUint16(out[0:], t.Width)
	binary.LittleEndian.PutUint16(out[2:], t.Height)
	n := int(t.Width) * int(t.Height)
	for i := 0; i < n && i < len(t.Pix); i++ {
		binary.LittleEndian.PutUint16(out[TextureHeaderSize+i*2:], t.Pix[i])
	}
	return out
}
