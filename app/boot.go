package app

import (
	"cpboy/engine"
	"cpboy/engine/asset"
	"cpboy/engine/draw"
	"cpboy/hal"
	"cpboy/internal/buildinfo"
)

// bootScreen shows the build banner and msg on a blank screen while assets
// load.
func bootScreen(e *engine.Engine, msg string) {
	banner := buildinfo.Banner()
	e.Logf("%s", banner)
	font := asset.Builtin()
	e.Screen.Fill(hal.RGB565(0, 0, 0))
	opt := draw.TextOptions{Color: colText, WrapLength: e.Screen.Width(), LineSpacing: 2}
	draw.Text(e.Screen, font, 0, 2, banner, opt)
	draw.Text(e.Screen, font, 0, 2+int(font.Height)+opt.LineSpacing, msg, opt)
	_ = e.Frame()
}
