// Package draw walks decoded textures and fonts and hands every visible
// source pixel to the compositor.
package draw

import (
	"cpboy/engine/asset"
	"cpboy/engine/shader"
)

// Texture draws tex unmodified with its top-left corner at (x, y).
func Texture(s shader.Surface, tex *asset.Texture, x, y int) {
	TextureShader(s, tex, x, y, shader.ModePlain, 0)
}

// TextureFrame draws frame k of a horizontal sprite strip at (x, y).
func TextureFrame(s shader.Surface, tex *asset.Texture, x, y, frame int) {
	TextureShader(s, tex, x, y, shader.ModeFrame, frame)
}

// TextureShader evaluates every source pixel of tex in storage order and
// composites it with mode and arg. Nil or released textures draw nothing.
func TextureShader(s shader.Surface, tex *asset.Texture, x, y int, mode shader.Mode, arg int) {
	if s == nil || tex == nil || tex.Released() {
		return
	}
	w, h := int(tex.Width), int(tex.Height)
	if len(tex.Pix) < w*h {
		return
	}
	k := 0
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			shader.Composite(s, x, y, w, h, i, j, tex.Pix[k], mode, arg)
			k++
		}
	}
}
