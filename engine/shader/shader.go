// Package shader decides, one source pixel at a time, whether and where a
// sample lands on a surface.
package shader

import "math"

// Surface accepts RGB565 samples. Writes outside the surface are ignored.
type Surface interface {
	SetPixel(x, y int, c uint16)
}

// Mode selects a compositing rule.
type Mode uint16

const (
	// ModeNone draws nothing.
	ModeNone Mode = iota
	// ModePlain writes every sample at origin+(i,j).
	ModePlain
	// ModeFrame treats the source as a horizontal strip of square frames,
	// each spriteH pixels wide, and draws only frame arg at the origin.
	ModeFrame
	// ModeKeyed writes every sample except those equal to the color key arg.
	ModeKeyed
)

func (m Mode) String() string {
	switch m {
	case ModeNone:
		return "none"
	case ModePlain:
		return "plain"
	case ModeFrame:
		return "frame"
	case ModeKeyed:
		return "keyed"
	default:
		return "unknown"
	}
}

// FrameCount returns how many whole frames a w x h strip holds.
func FrameCount(w, h int) int {
	if h <= 0 {
		return 0
	}
	return w / h
}

// Composite places the sample at local (i, j) of a spriteW x spriteH source
// drawn with its origin at (x, y).
func Composite(s Surface, x, y, spriteW, spriteH, i, j int, c uint16, mode Mode, arg int) {
	switch mode {
	case ModePlain:
		s.SetPixel(x+i, y+j, c)
	case ModeFrame:
		if spriteH <= 0 || arg < 0 || i < 0 {
			return
		}
		// Frames this far out cannot be addressed without overflowing.
		if arg > (math.MaxInt-spriteH)/spriteH {
			return
		}
		left := arg * spriteH
		if i < left || i >= left+spriteH {
			return
		}
		s.SetPixel(x+i-left, y+j, c)
	case ModeKeyed:
		if c == uint16(arg) {
			return
		}
		s.SetPixel(x+i, y+j, c)
	}
}
