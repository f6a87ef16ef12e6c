//go:build !tinygo

package hal

import (
	"image"
	"os"

	"golang.org/x/image/bmp"
)

// expandRGBA converts little-endian RGB565 into opaque RGBA.
func expandRGBA(dst, src []byte) {
	for i := 0; i+1 < len(src) && i/2*4+3 < len(dst); i += 2 {
		r, g, b := RGB888(uint16(src[i]) | uint16(src[i+1])<<8)
		j := (i / 2) * 4
		dst[j+0] = r
		dst[j+1] = g
		dst[j+2] = b
		dst[j+3] = 0xFF
	}
}

func (f *hostFramebuffer) image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	scratch := make([]byte, len(f.buf))
	f.snapshotRGB565(scratch)
	expandRGBA(img.Pix, scratch)
	return img
}

func writeScreenshot(path string, fb *hostFramebuffer) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := bmp.Encode(out, fb.image()); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
