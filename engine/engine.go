// Package engine ties the asset loader, input dispatcher and screen surface
// into the single context object a game loop owns.
package engine

import (
	"fmt"
	"io/fs"

	"cpboy/engine/asset"
	"cpboy/engine/input"
	"cpboy/engine/surface"
	"cpboy/hal"
)

type Config struct {
	// Assets holds the texture and font files. Nil means nothing can load.
	Assets        fs.FS
	TexturePrefix string
	FontPrefix    string
}

// Engine is not safe for concurrent use; drive it from the game loop.
type Engine struct {
	Assets *asset.Loader
	Input  *input.Dispatcher
	Screen *surface.Framebuffer

	log hal.Logger
}

func New(h hal.HAL, cfg Config) *Engine {
	var (
		log hal.Logger
		fb  hal.Framebuffer
		kbd hal.Keyboard
	)
	if h != nil {
		log = h.Logger()
		if d := h.Display(); d != nil {
			fb = d.Framebuffer()
		}
		if in := h.Input(); in != nil {
			kbd = in.Keyboard()
		}
	}

	e := &Engine{
		Assets: asset.NewLoader(cfg.Assets, asset.LoaderConfig{
			TexturePrefix: cfg.TexturePrefix,
			FontPrefix:    cfg.FontPrefix,
		}),
		Input:  input.New(input.NewKeyboardSource(kbd)),
		Screen: surface.NewFramebuffer(fb),
		log:    log,
	}
	if log != nil {
		e.Input.SetLogger(log)
	}
	if fb == nil {
		e.Logf("engine: no framebuffer, drawing is discarded")
	}
	return e
}

// Logf writes one formatted line to the HAL logger, if there is one.
func (e *Engine) Logf(format string, args ...any) {
	if e.log == nil {
		return
	}
	e.log.WriteLineString(fmt.Sprintf(format, args...))
}

// LoadTexture loads name through the asset loader and logs the outcome.
func (e *Engine) LoadTexture(name string) (*asset.Texture, error) {
	tex, err := e.Assets.LoadTexture(name)
	if err != nil {
		e.Logf("asset: load %s: %v", name, err)
		return nil, err
	}
	e.Logf("asset: loaded texture %s %dx%d (%d bytes)", name, tex.Width, tex.Height, tex.Size())
	return tex, nil
}

// LoadFont loads name through the asset loader and logs the outcome.
func (e *Engine) LoadFont(name string) (*asset.Font, error) {
	f, err := e.Assets.LoadFont(name)
	if err != nil {
		e.Logf("asset: load %s: %v", name, err)
		return nil, err
	}
	e.Logf("asset: loaded font %s %dx%d (%d bytes)", name, f.Width, f.Height, f.Size())
	return f, nil
}

// LoadFontOr loads name, falling back to asset.Builtin when it cannot.
func (e *Engine) LoadFontOr(name string) *asset.Font {
	f, err := e.LoadFont(name)
	if err != nil {
		return asset.Builtin()
	}
	return f
}

// Free releases assets loaded by this engine. Anything else is ignored.
func (e *Engine) Free(assets ...any) {
	for _, a := range assets {
		switch a := a.(type) {
		case *asset.Texture:
			e.Assets.FreeTexture(a)
		case *asset.Font:
			e.Assets.FreeFont(a)
		}
	}
}

// Update runs one input dispatch cycle.
func (e *Engine) Update() {
	e.Input.CheckEvents()
}

// Frame presents the screen.
func (e *Engine) Frame() error {
	return e.Screen.Present()
}

// LogStats writes the loader counters.
func (e *Engine) LogStats() {
	st := e.Assets.Stats()
	e.Logf("asset: %d textures, %d fonts, %d bytes", st.TexturesLoaded, st.FontsLoaded, st.BytesUsed)
}
