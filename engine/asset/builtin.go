package asset

import (
	"sync"

	"golang.org/x/image/font/basicfont"
)

var (
	builtinOnce sync.Once
	builtin     *Font
)

// Builtin returns the fallback 6x13 font used when no font file is available.
//
// The returned font is shared; callers must not free it through a Loader.
func Builtin() *Font {
	builtinOnce.Do(func() {
		face := basicfont.Face7x13
		builtin = FontFromMask(face.Mask, uint16(face.Width), uint16(face.Height), func(c byte) (int, bool) {
			r := rune(c)
			for _, rg := range face.Ranges {
				if r >= rg.Low && r < rg.High {
					return int(r-rg.Low) + rg.Offset, true
				}
			}
			return 0, false
		})
	})
	return builtin
}
