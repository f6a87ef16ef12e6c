package engine

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"cpboy/engine/asset"
	"cpboy/engine/draw"
	"cpboy/hal"
)

type testLogger struct{ lines []string }

func (l *testLogger) WriteLineString(s string) { l.lines = append(l.lines, s) }
func (l *testLogger) WriteLineBytes(b []byte)  { l.lines = append(l.lines, string(b)) }

func (l *testLogger) has(sub string) bool {
	for _, s := range l.lines {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

type testFB struct {
	w, h     int
	buf      []byte
	presents int
}

func (f *testFB) Width() int              { return f.w }
func (f *testFB) Height() int             { return f.h }
func (f *testFB) Format() hal.PixelFormat { return hal.PixelFormatRGB565 }
func (f *testFB) StrideBytes() int        { return f.w * 2 }
func (f *testFB) Buffer() []byte          { return f.buf }
func (f *testFB) ClearRGB(r, g, b uint8)  {}
func (f *testFB) Present() error          { f.presents++; return nil }

type testKeyboard struct{ ch chan hal.KeyEvent }

func (k *testKeyboard) Events() <-chan hal.KeyEvent { return k.ch }

type testHAL struct {
	log *testLogger
	fb  *testFB
	kbd *testKeyboard
}

func (h *testHAL) Logger() hal.Logger   { return h.log }
func (h *testHAL) Display() hal.Display { return h }
func (h *testHAL) Input() hal.Input     { return h }

func (h *testHAL) Framebuffer() hal.Framebuffer { return h.fb }
func (h *testHAL) Keyboard() hal.Keyboard       { return h.kbd }

func newTestHAL() *testHAL {
	return &testHAL{
		log: &testLogger{},
		fb:  &testFB{w: 8, h: 8, buf: make([]byte, 8*8*2)},
		kbd: &testKeyboard{ch: make(chan hal.KeyEvent, 8)},
	}
}

func testAssets() fstest.MapFS {
	tex, _ := asset.NewTexture(1, 2, []uint16{0xFFFF, 0x1234})
	font := asset.FontFromGlyphs(3, 5, func(byte, int, int) bool { return true })
	return fstest.MapFS{
		"usr/textures/dot.bin": {Data: asset.EncodeTexture(tex)},
		"usr/fonts/tiny.bin":   {Data: asset.EncodeFont(font)},
	}
}

func TestEngineLoadsAndLogs(t *testing.T) {
	h := newTestHAL()
	e := New(h, Config{Assets: testAssets()})

	tex, err := e.LoadTexture("dot.bin")
	if err != nil {
		t.Fatalf("LoadTexture: %v", err)
	}
	if !h.log.has("asset: loaded texture dot.bin 1x2 (8 bytes)") {
		t.Fatalf("log = %q", h.log.lines)
	}
	if _, err := e.LoadTexture("nope.bin"); !errors.Is(err, asset.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if !h.log.has("asset: load nope.bin") {
		t.Fatalf("log = %q", h.log.lines)
	}

	f := e.LoadFontOr("tiny.bin")
	if f.Width != 3 || f.Height != 5 {
		t.Fatalf("font %dx%d", f.Width, f.Height)
	}
	if e.LoadFontOr("missing.bin") != asset.Builtin() {
		t.Fatal("expected builtin fallback")
	}

	e.Free(tex, f, asset.Builtin(), "ignored")
	if st := e.Assets.Stats(); st != (asset.Stats{}) {
		t.Fatalf("stats after Free = %+v", st)
	}
	e.LogStats()
	if !h.log.has("asset: 0 textures, 0 fonts, 0 bytes") {
		t.Fatalf("log = %q", h.log.lines)
	}
}

func TestEngineDrawsToFramebuffer(t *testing.T) {
	h := newTestHAL()
	e := New(h, Config{Assets: testAssets()})
	tex, err := e.LoadTexture("dot.bin")
	if err != nil {
		t.Fatalf("LoadTexture: %v", err)
	}

	draw.Texture(e.Screen, tex, 7, 6)
	if err := e.Frame(); err != nil {
		t.Fatalf("Frame: %v", err)
	}
	off := 7*8*2 + 7*2
	if got := uint16(h.fb.buf[off]) | uint16(h.fb.buf[off+1])<<8; got != 0x1234 {
		t.Fatalf("pixel = %#04x", got)
	}
	if h.fb.presents != 1 {
		t.Fatalf("presents = %d", h.fb.presents)
	}
}

func TestEngineDispatchesKeyboard(t *testing.T) {
	h := newTestHAL()
	e := New(h, Config{})
	n := 0
	if err := e.Input.AddListener(hal.KeyExe, func() { n++ }, false); err != nil {
		t.Fatalf("AddListener: %v", err)
	}
	h.kbd.ch <- hal.KeyEvent{Code: hal.KeyExe, Press: true}
	e.Update()
	e.Update()
	if n != 1 {
		t.Fatalf("n = %d", n)
	}
}

func TestEngineWithoutHAL(t *testing.T) {
	e := New(nil, Config{})
	e.Update()
	draw.Text(e.Screen, asset.Builtin(), 0, 0, "x", draw.TextOptions{Color: 1})
	if err := e.Frame(); !errors.Is(err, hal.ErrNotImplemented) {
		t.Fatalf("expected ErrNotImplemented, got %v", err)
	}
}
