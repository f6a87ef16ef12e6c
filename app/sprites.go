package app

import (
	"cpboy/engine"
	"cpboy/engine/asset"
	"cpboy/hal"
)

// Transparent is the color key used by keyed sprites.
const Transparent = 0xF81F

var (
	colSky     = hal.RGB565(0x70, 0xC5, 0xCE)
	colGround  = hal.RGB565(0xDE, 0xD8, 0x95)
	colGrass   = hal.RGB565(0x5E, 0xE2, 0x70)
	colPipe    = hal.RGB565(0x55, 0x80, 0x22)
	colPipeHi  = hal.RGB565(0x9C, 0xE6, 0x59)
	colBird    = hal.RGB565(0xF8, 0xD8, 0x20)
	colWing    = hal.RGB565(0xF8, 0xF8, 0xE0)
	colBeak    = hal.RGB565(0xF8, 0x70, 0x20)
	colInk     = hal.RGB565(0x00, 0x00, 0x00)
	colCloud   = hal.RGB565(0xF8, 0xF8, 0xF8)
	colText    = hal.RGB565(0xFF, 0xFF, 0xFF)
	colOverlay = hal.RGB565(0xE8, 0x60, 0x30)
)

const (
	birdSize   = 16
	birdFrames = 3
	pipeWidth  = 32
	capHeight  = 8
	groundTile = 16
)

type sprites struct {
	bird   *asset.Texture
	pipe   *asset.Texture
	cap    *asset.Texture
	cloud  *asset.Texture
	ground *asset.Texture
	font   *asset.Font
}

// loadSprites loads each sprite by name and draws a stand-in for any that
// cannot be loaded.
func loadSprites(e *engine.Engine) sprites {
	return sprites{
		bird:   loadOr(e, "bird.bin", birdStrip),
		pipe:   loadOr(e, "pipe.bin", pipeBody),
		cap:    loadOr(e, "cap.bin", pipeCap),
		cloud:  loadOr(e, "cloud.bin", cloud),
		ground: loadOr(e, "ground.bin", ground),
		font:   e.LoadFontOr("score.bin"),
	}
}

func (s sprites) free(e *engine.Engine) {
	e.Free(s.bird, s.pipe, s.cap, s.cloud, s.ground, s.font)
}

func loadOr(e *engine.Engine, name string, gen func() *asset.Texture) *asset.Texture {
	if tex, err := e.LoadTexture(name); err == nil {
		return tex
	}
	return gen()
}

func paint(w, h int, fill uint16, px func(x, y int) (uint16, bool)) *asset.Texture {
	pix := make([]uint16, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := fill
			if v, ok := px(x, y); ok {
				c = v
			}
			pix[y*w+x] = c
		}
	}
	tex, _ := asset.NewTexture(uint16(w), uint16(h), pix)
	return tex
}

// birdStrip is three square frames side by side, wing up, level and down.
func birdStrip() *asset.Texture {
	return paint(birdSize*birdFrames, birdSize, colSky, func(x, y int) (uint16, bool) {
		frame, fx := x/birdSize, x%birdSize
		dx, dy := fx-7, y-8
		if dx*dx+dy*dy > 36 {
			if fx >= 13 && fx <= 15 && y >= 8 && y <= 10 {
				return colBeak, true
			}
			return 0, false
		}
		if fx == 10 && y == 6 {
			return colInk, true
		}
		wingY := 6 + frame*2
		if fx >= 2 && fx <= 6 && y >= wingY && y <= wingY+2 {
			return colWing, true
		}
		return colBird, true
	})
}

func pipeBody() *asset.Texture {
	return paint(pipeWidth, 16, colPipe, func(x, y int) (uint16, bool) {
		if x >= 4 && x <= 8 {
			return colPipeHi, true
		}
		if x == 0 || x == pipeWidth-1 {
			return colInk, true
		}
		return 0, false
	})
}

// pipeCap overhangs the body by two pixels on each side, with keyed corners.
func pipeCap() *asset.Texture {
	w := pipeWidth + 4
	return paint(w, capHeight, colPipe, func(x, y int) (uint16, bool) {
		corner := (x == 0 || x == w-1) && (y == 0 || y == capHeight-1)
		switch {
		case corner:
			return Transparent, true
		case x == 0 || x == w-1 || y == 0 || y == capHeight-1:
			return colInk, true
		case x >= 5 && x <= 10:
			return colPipeHi, true
		}
		return 0, false
	})
}

func cloud() *asset.Texture {
	return paint(24, 12, Transparent, func(x, y int) (uint16, bool) {
		for _, c := range [][3]int{{6, 7, 5}, {12, 5, 6}, {18, 7, 5}} {
			dx, dy := x-c[0], y-c[1]
			if dx*dx+dy*dy <= c[2]*c[2] {
				return colCloud, true
			}
		}
		return 0, false
	})
}

func ground() *asset.Texture {
	return paint(groundTile, groundTile, colGround, func(x, y int) (uint16, bool) {
		if y < 3 {
			return colGrass, true
		}
		if (x+y)%8 == 0 {
			return colGrass, true
		}
		return 0, false
	})
}
