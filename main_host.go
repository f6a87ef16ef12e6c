//go:build !tinygo

package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"os/signal"

	"cpboy/app"
	"cpboy/hal"
)

func main() {
	var cfg hal.HeadlessConfig
	var term bool
	var keys string
	assets := os.Getenv("CPBOY_ASSETS")
	if assets == "" {
		assets = "."
	}
	flag.BoolVar(&cfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", 60, "Tick rate in headless and terminal mode.")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.StringVar(&cfg.Screenshot, "screenshot", "", "Write a BMP of the last frame when a headless run ends.")
	flag.StringVar(&keys, "keys", "", "Headless key script, e.g. EXE@3,LEFT@10-20.")
	flag.BoolVar(&term, "term", false, "Render in the terminal instead of a window.")
	flag.StringVar(&assets, "assets", assets, "Directory holding usr/textures and usr/fonts (env CPBOY_ASSETS).")
	flag.Parse()

	script, err := hal.ParseKeyScript(keys)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	cfg.Script = script

	var fsys fs.FS
	if st, err := os.Stat(assets); err == nil && st.IsDir() {
		fsys = os.DirFS(assets)
	}
	newApp := func(h hal.HAL) func() error {
		return app.New(h, app.Config{Assets: fsys})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch {
	case cfg.Enabled:
		err = hal.RunHeadless(ctx, newApp, cfg)
	case term:
		err = hal.RunTerminal(ctx, newApp, hal.TermConfig{Hz: cfg.Hz})
	default:
		err = hal.RunWindow(newApp)
	}
	if err != nil {
		if err == context.Canceled {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
