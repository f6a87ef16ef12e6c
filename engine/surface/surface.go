// Package surface provides bounded pixel targets for the compositor.
package surface

import (
	"image/color"

	"cpboy/hal"

	"tinygo.org/x/drivers"
)

// Framebuffer writes RGB565 samples into a HAL framebuffer.
type Framebuffer struct {
	fb hal.Framebuffer
}

// NewFramebuffer wraps fb. Framebuffers in other formats, or without a
// backing buffer, accept writes and drop them.
func NewFramebuffer(fb hal.Framebuffer) *Framebuffer {
	return &Framebuffer{fb: fb}
}

func (s *Framebuffer) Width() int {
	if s.fb == nil {
		return 0
	}
	return s.fb.Width()
}

func (s *Framebuffer) Height() int {
	if s.fb == nil {
		return 0
	}
	return s.fb.Height()
}

// SetPixel stores c at (x, y) in the framebuffer's little-endian layout.
func (s *Framebuffer) SetPixel(x, y int, c uint16) {
	if s.fb == nil || s.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	buf := s.fb.Buffer()
	if buf == nil {
		return
	}
	if x < 0 || x >= s.fb.Width() || y < 0 || y >= s.fb.Height() {
		return
	}
	off := y*s.fb.StrideBytes() + x*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	buf[off] = byte(c)
	buf[off+1] = byte(c >> 8)
}

// Fill sets every pixel to c.
func (s *Framebuffer) Fill(c uint16) {
	if s.fb == nil {
		return
	}
	r, g, b := hal.RGB888(c)
	s.fb.ClearRGB(r, g, b)
}

// Present hands the finished frame to the display.
func (s *Framebuffer) Present() error {
	if s.fb == nil {
		return hal.ErrNotImplemented
	}
	return s.fb.Present()
}

// Memory is an off-screen RGB565 surface.
type Memory struct {
	W, H int
	Pix  []uint16
}

func NewMemory(w, h int) *Memory {
	return &Memory{W: w, H: h, Pix: make([]uint16, w*h)}
}

func (m *Memory) Width() int  { return m.W }
func (m *Memory) Height() int { return m.H }

func (m *Memory) SetPixel(x, y int, c uint16) {
	if x < 0 || x >= m.W || y < 0 || y >= m.H {
		return
	}
	m.Pix[y*m.W+x] = c
}

// At returns the sample at (x, y), or 0 outside the surface.
func (m *Memory) At(x, y int) uint16 {
	if x < 0 || x >= m.W || y < 0 || y >= m.H {
		return 0
	}
	return m.Pix[y*m.W+x]
}

func (m *Memory) Fill(c uint16) {
	for i := range m.Pix {
		m.Pix[i] = c
	}
}

// Target is a sized surface.
type Target interface {
	Width() int
	Height() int
	SetPixel(x, y int, c uint16)
}

// Displayer adapts a Target to the tinygo drivers.Displayer interface so
// tinyfont and tinydraw style renderers can draw on it.
type Displayer struct {
	T Target
}

var _ drivers.Displayer = Displayer{}

func (d Displayer) Size() (x, y int16) {
	if d.T == nil {
		return 0, 0
	}
	return int16(d.T.Width()), int16(d.T.Height())
}

func (d Displayer) SetPixel(x, y int16, c color.RGBA) {
	if d.T == nil {
		return
	}
	d.T.SetPixel(int(x), int(y), hal.RGB565(c.R, c.G, c.B))
}

func (d Displayer) Display() error { return nil }
