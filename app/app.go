// Package app is the game loop driver: a small side-scrolling flap game
// built on the engine.
package app

import (
	"errors"
	"io/fs"
	"time"

	"cpboy/engine"
	"cpboy/hal"
)

type Config struct {
	// Assets is searched for usr/textures/*.bin and usr/fonts/*.bin.
	// Missing files are replaced by built-in sprites.
	Assets fs.FS
}

// New builds the game and returns its per-frame step. The step returns
// hal.ErrStop once the player powers off.
func New(h hal.HAL, cfg Config) func() error {
	e := engine.New(h, engine.Config{Assets: cfg.Assets})
	bootScreen(e, "loading assets...")
	g := newGame(e)
	e.LogStats()

	return guard(h, func() error {
		e.Update()
		if g.quit {
			g.spr.free(e)
			e.LogStats()
			return hal.ErrStop
		}
		g.step()
		g.render()
		// Boards without a panel still run the game.
		if err := e.Frame(); err != nil && !errors.Is(err, hal.ErrNotImplemented) {
			return err
		}
		return nil
	})
}

// Run drives the game at roughly 60 frames per second until it stops,
// then parks (TinyGo/native entrypoint).
func Run(h hal.HAL) {
	step := New(h, Config{})
	frame := time.Second / 60
	for {
		start := time.Now()
		if err := step(); err != nil {
			if l := h.Logger(); l != nil && !errors.Is(err, hal.ErrStop) {
				l.WriteLineString("app: " + err.Error())
			}
			break
		}
		if d := frame - time.Since(start); d > 0 {
			time.Sleep(d)
		}
	}
	select {}
}
