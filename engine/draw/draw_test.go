package draw

import (
	"image/color"
	"testing"

	"cpboy/engine/asset"
	"cpboy/engine/shader"
	"cpboy/engine/surface"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"tinygo.org/x/tinyfont"
)

type call struct {
	x, y int
	c    uint16
}

type recorder struct {
	calls []call
}

func (r *recorder) SetPixel(x, y int, c uint16) {
	r.calls = append(r.calls, call{x, y, c})
}

func mustTexture(t *testing.T, w, h uint16, pix []uint16) *asset.Texture {
	t.Helper()
	tex, err := asset.NewTexture(w, h, pix)
	if err != nil {
		t.Fatalf("NewTexture: %v", err)
	}
	return tex
}

// solidFont sets every bit of every glyph.
func solidFont(w, h uint16) *asset.Font {
	return asset.FontFromGlyphs(w, h, func(byte, int, int) bool { return true })
}

func TestTextureRowMajor(t *testing.T) {
	tex := mustTexture(t, 3, 2, []uint16{1, 2, 3, 4, 5, 6})
	var r recorder
	Texture(&r, tex, 10, 20)
	want := []call{
		{10, 20, 1}, {11, 20, 2}, {12, 20, 3},
		{10, 21, 4}, {11, 21, 5}, {12, 21, 6},
	}
	if len(r.calls) != len(want) {
		t.Fatalf("calls = %v", r.calls)
	}
	for i := range want {
		if r.calls[i] != want[i] {
			t.Fatalf("call %d = %v, want %v", i, r.calls[i], want[i])
		}
	}
}

func TestTextureClipsOnlyAtSurface(t *testing.T) {
	m := surface.NewMemory(2, 2)
	tex := mustTexture(t, 3, 3, []uint16{1, 2, 3, 4, 5, 6, 7, 8, 9})
	Texture(m, tex, -1, -1)
	if m.At(0, 0) != 5 || m.At(1, 1) != 9 || m.At(1, 0) != 6 {
		t.Fatalf("pix = %v", m.Pix)
	}
}

func TestTextureNilInputs(t *testing.T) {
	var r recorder
	Texture(&r, nil, 0, 0)
	tex := mustTexture(t, 1, 1, []uint16{1})
	Texture(nil, tex, 0, 0)
	if len(r.calls) != 0 {
		t.Fatalf("calls = %v", r.calls)
	}
}

func TestTextureFrame(t *testing.T) {
	// Two 2x2 frames side by side.
	tex := mustTexture(t, 4, 2, []uint16{
		1, 1, 2, 2,
		1, 1, 2, 2,
	})
	m := surface.NewMemory(4, 2)
	TextureFrame(m, tex, 0, 0, 1)
	want := []uint16{2, 2, 0, 0, 2, 2, 0, 0}
	for i := range want {
		if m.Pix[i] != want[i] {
			t.Fatalf("pix = %v, want %v", m.Pix, want)
		}
	}
}

func TestTextureKeyed(t *testing.T) {
	const key = 0xF81F
	tex := mustTexture(t, 2, 1, []uint16{key, 7})
	m := surface.NewMemory(2, 1)
	m.Fill(3)
	TextureShader(m, tex, 0, 0, shader.ModeKeyed, key)
	if m.At(0, 0) != 3 || m.At(1, 0) != 7 {
		t.Fatalf("pix = %v", m.Pix)
	}
}

func TestProperty_TextureFrameIsolation(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("frame k shows only frame k samples", prop.ForAll(
		func(h, frames, k int) bool {
			w := h * frames
			pix := make([]uint16, w*h)
			for j := 0; j < h; j++ {
				for i := 0; i < w; i++ {
					pix[j*w+i] = uint16(i/h + 1)
				}
			}
			tex, err := asset.NewTexture(uint16(w), uint16(h), pix)
			if err != nil {
				return false
			}
			m := surface.NewMemory(w, h)
			TextureFrame(m, tex, 0, 0, k)
			for y := 0; y < h; y++ {
				for x := 0; x < w; x++ {
					want := uint16(0)
					if x < h {
						want = uint16(k + 1)
					}
					if m.At(x, y) != want {
						return false
					}
				}
			}
			return true
		},
		gen.IntRange(1, 10),
		gen.IntRange(1, 5),
		gen.IntRange(0, 4),
	))

	properties.TestingRun(t)
}

func lines(gs []Glyph) []int {
	out := make([]int, len(gs))
	for i, g := range gs {
		out[i] = g.Line
	}
	return out
}

func TestLayoutWrap(t *testing.T) {
	gs := Layout("AAAA", 5, 11)
	got := lines(gs)
	want := []int{0, 0, 1, 1}
	if len(got) != len(want) {
		t.Fatalf("lines = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("lines = %v, want %v", got, want)
		}
	}
	if gs[2].Col != 0 || gs[3].Col != 1 {
		t.Fatalf("columns after wrap = %d,%d", gs[2].Col, gs[3].Col)
	}
}

func TestLayoutNewlineAndNonPrintable(t *testing.T) {
	gs := Layout("a\tb\nc\x7f", 4, 0)
	if len(gs) != 3 {
		t.Fatalf("glyphs = %+v", gs)
	}
	want := []Glyph{{'a', 0, 0}, {'b', 1, 0}, {'c', 0, 1}}
	for i := range want {
		if gs[i] != want[i] {
			t.Fatalf("glyph %d = %+v, want %+v", i, gs[i], want[i])
		}
	}
}

func TestLayoutWideGlyphKeepsFirstColumn(t *testing.T) {
	got := lines(Layout("AB", 20, 10))
	if got[0] != 0 || got[1] != 1 {
		t.Fatalf("lines = %v", got)
	}
}

func TestTextPlacement(t *testing.T) {
	f := solidFont(2, 3)
	m := surface.NewMemory(16, 16)
	Text(m, f, 1, 1, "AB\nC", TextOptions{Color: 9, LineSpacing: 2})

	// Cells: A at x 1..2, B at x 4..5, C on line 1 at y 1+5.
	for _, p := range [][2]int{{1, 1}, {2, 3}, {4, 1}, {5, 3}, {1, 6}, {2, 8}} {
		if m.At(p[0], p[1]) != 9 {
			t.Fatalf("expected ink at %v", p)
		}
	}
	for _, p := range [][2]int{{3, 1}, {0, 1}, {1, 4}, {1, 5}, {4, 6}} {
		if m.At(p[0], p[1]) != 0 {
			t.Fatalf("unexpected ink at %v", p)
		}
	}
}

func TestTextOnlySetBits(t *testing.T) {
	f := asset.FontFromGlyphs(3, 3, func(c byte, col, row int) bool {
		return c == 'x' && col == row
	})
	var r recorder
	Text(&r, f, 0, 0, "x ", TextOptions{Color: 1})
	if len(r.calls) != 3 {
		t.Fatalf("calls = %v", r.calls)
	}
	for i, c := range r.calls {
		if c.x != i || c.y != i {
			t.Fatalf("call %d at %d,%d", i, c.x, c.y)
		}
	}
}

func TestTextNilFont(t *testing.T) {
	var r recorder
	Text(&r, nil, 0, 0, "abc", TextOptions{Color: 1})
	if len(r.calls) != 0 {
		t.Fatal("nil font must not draw")
	}
}

func TestTextSize(t *testing.T) {
	f := solidFont(5, 7)
	w, h := TextSize(f, "AAAA", TextOptions{WrapLength: 11, LineSpacing: 1})
	if w != 11 || h != 15 {
		t.Fatalf("TextSize = %dx%d", w, h)
	}
	if w, h := TextSize(f, "", TextOptions{}); w != 0 || h != 0 {
		t.Fatalf("empty TextSize = %dx%d", w, h)
	}
}

func TestFonterMatchesText(t *testing.T) {
	f := asset.Builtin()
	text := "Hi 42"

	want := surface.NewMemory(64, 16)
	Text(want, f, 2, 1, text, TextOptions{Color: 0xFFFF})

	got := surface.NewMemory(64, 16)
	fonter := NewFonter(f)
	white := color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	tinyfont.WriteLine(surface.Displayer{T: got}, fonter, 2, 1+int16(f.Height)-1, text, white)

	for i := range want.Pix {
		if got.Pix[i] != want.Pix[i] {
			t.Fatalf("pixel %d,%d differs: tinyfont=%#04x text=%#04x", i%64, i/64, got.Pix[i], want.Pix[i])
		}
	}
	if fonter.GetYAdvance() != uint8(f.Height)+1 {
		t.Fatalf("YAdvance = %d", fonter.GetYAdvance())
	}
}

func TestFonterUnknownRune(t *testing.T) {
	fonter := NewFonter(nil)
	info := fonter.GetGlyph('é').Info()
	if info.Rune != 'é' || info.XAdvance != 7 {
		t.Fatalf("info = %+v", info)
	}
}
