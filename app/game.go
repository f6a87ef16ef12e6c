package app

import (
	"fmt"
	"image/color"

	"cpboy/engine"
	"cpboy/engine/draw"
	"cpboy/engine/shader"
	"cpboy/engine/surface"
	"cpboy/hal"

	"tinygo.org/x/tinyfont"
)

// Positions are in 1/16 pixel.
const (
	fix = 16

	gravity     = 6
	flapSpeed   = -80
	maxFall     = 96
	driftSpeed  = 2
	scrollSpeed = 2

	pipeGap     = 104
	pipeSpacing = 148
	animTicks   = 6
)

type pipe struct {
	x    int
	gapY int
	seen bool
}

type game struct {
	e   *engine.Engine
	spr sprites

	hud       *draw.Fonter
	hudHeight int16

	w, h    int
	groundY int

	birdX int
	birdY int
	vy    int
	pipes []pipe
	rng   uint32

	tick   uint64
	score  int
	best   int
	alive  bool
	paused bool
	quit   bool
}

func newGame(e *engine.Engine) *game {
	g := &game{
		e:   e,
		spr: loadSprites(e),
		w:   e.Screen.Width(),
		h:   e.Screen.Height(),
	}
	g.hud = draw.NewFonter(g.spr.font)
	g.hudHeight = int16(g.hud.GetYAdvance())
	g.groundY = g.h - 2*groundTile
	if err := g.bind(g.controls()); err != nil {
		e.Logf("%v", err)
	}
	g.initGame()
	return g
}

// binding is one control. Second puts it in the lower priority registry.
type binding struct {
	key    hal.KeyCode
	fn     func()
	hold   bool
	second bool
}

func (g *game) controls() []binding {
	return []binding{
		{key: hal.KeyPower, fn: func() { g.quit = true }},
		{key: hal.KeyClear, fn: g.initGame},
		{key: hal.KeyExe, fn: g.flap},
		{key: hal.KeyLeft, fn: func() { g.drift(-driftSpeed) }, hold: true},
		{key: hal.KeyRight, fn: func() { g.drift(driftSpeed) }, hold: true},
		{key: hal.KeyUp, fn: g.flap, second: true},
		{key: hal.KeyDown, fn: func() { g.vy = maxFall }, hold: true, second: true},
		{key: hal.Key0, fn: func() { g.paused = !g.paused }, second: true},
	}
}

// bind replaces every listener with bs and stops at the first one the
// dispatcher refuses.
func (g *game) bind(bs []binding) error {
	in := g.e.Input
	in.RemoveAllListeners()
	for _, b := range bs {
		add := in.AddListener
		if b.second {
			add = in.AddListener2
		}
		if err := add(b.key, b.fn, b.hold); err != nil {
			return fmt.Errorf("app: bind %v: %w", b.key, err)
		}
	}
	return nil
}

func (g *game) initGame() {
	g.birdX = g.w / 4
	g.birdY = g.h / 3 * fix
	g.vy = 0
	g.score = 0
	g.alive = true
	g.paused = false
	g.rng = 0x12345678
	g.pipes = g.pipes[:0]
	for x := g.w; x < g.w+3*pipeSpacing; x += pipeSpacing {
		g.pipes = append(g.pipes, pipe{x: x, gapY: g.randomGap()})
	}
}

func (g *game) flap() {
	if !g.alive {
		g.initGame()
		return
	}
	g.paused = false
	g.vy = flapSpeed
}

func (g *game) drift(dx int) {
	if !g.alive || g.paused {
		return
	}
	g.birdX = clampInt(g.birdX+dx, 0, g.w-birdSize)
}

func (g *game) randomGap() int {
	g.rng = xorshift32(g.rng)
	lo := 24 + capHeight
	hi := g.groundY - pipeGap - capHeight - 8
	if hi <= lo {
		return lo
	}
	return lo + int(g.rng%uint32(hi-lo))
}

func (g *game) step() {
	g.tick++
	if !g.alive || g.paused {
		return
	}

	g.vy += gravity
	if g.vy > maxFall {
		g.vy = maxFall
	}
	g.birdY += g.vy
	if g.birdY < 0 {
		g.birdY = 0
		g.vy = 0
	}

	for i := range g.pipes {
		p := &g.pipes[i]
		p.x -= scrollSpeed
		if !p.seen && p.x+pipeWidth < g.birdX {
			p.seen = true
			g.score++
			if g.score > g.best {
				g.best = g.score
			}
		}
	}
	if len(g.pipes) > 0 && g.pipes[0].x+pipeWidth+2 < 0 {
		last := g.pipes[len(g.pipes)-1].x
		g.pipes = append(g.pipes[1:], pipe{x: last + pipeSpacing, gapY: g.randomGap()})
	}

	if g.collides() {
		g.alive = false
	}
}

func (g *game) collides() bool {
	y := g.birdY / fix
	if y+birdSize >= g.groundY {
		return true
	}
	// Shrink the box a little; the sprite is round.
	bx0, by0 := g.birdX+2, y+2
	bx1, by1 := g.birdX+birdSize-2, y+birdSize-2
	for _, p := range g.pipes {
		if bx1 <= p.x || bx0 >= p.x+pipeWidth {
			continue
		}
		if by0 < p.gapY || by1 > p.gapY+pipeGap {
			return true
		}
	}
	return false
}

func (g *game) render() {
	s := g.e.Screen
	s.Fill(colSky)

	for i := 0; i < 3; i++ {
		x := (i*130 - int(g.tick/4)) % (g.w + 48)
		if x < -24 {
			x += g.w + 48
		}
		draw.TextureShader(s, g.spr.cloud, x, 40+i*36, shader.ModeKeyed, Transparent)
	}

	for _, p := range g.pipes {
		g.drawPipe(s, p)
	}

	frame := 1
	if g.alive {
		frame = int(g.tick/animTicks) % birdFrames
	}
	draw.TextureFrame(s, g.spr.bird, g.birdX, g.birdY/fix, frame)

	scroll := int(g.tick*scrollSpeed) % groundTile
	if !g.alive {
		scroll = 0
	}
	for y := g.groundY; y < g.h; y += groundTile {
		for x := -scroll; x < g.w; x += groundTile {
			draw.Texture(s, g.spr.ground, x, y)
		}
	}

	score := fmt.Sprintf("%d", g.score)
	tw, _ := draw.TextSize(g.spr.font, score, draw.TextOptions{})
	draw.Text(s, g.spr.font, (g.w-tw)/2, 8, score, draw.TextOptions{Color: colText})

	switch {
	case !g.alive:
		g.banner(fmt.Sprintf("GAME OVER\nbest %d\nEXE to retry", g.best))
	case g.paused:
		g.banner("PAUSED")
	}
}

func (g *game) drawPipe(s *surface.Framebuffer, p pipe) {
	top := p.gapY - capHeight
	bottom := p.gapY + pipeGap
	if th := int(g.spr.pipe.Height); th > 0 {
		for y := top - th; y > -th; y -= th {
			draw.Texture(s, g.spr.pipe, p.x, y)
		}
		for y := bottom + capHeight; y < g.groundY; y += th {
			draw.Texture(s, g.spr.pipe, p.x, y)
		}
	}
	draw.TextureShader(s, g.spr.cap, p.x-2, top, shader.ModeKeyed, Transparent)
	draw.TextureShader(s, g.spr.cap, p.x-2, bottom, shader.ModeKeyed, Transparent)
}

// banner draws a centered multi-line message through tinyfont.
func (g *game) banner(msg string) {
	d := surface.Displayer{T: g.e.Screen}
	lines := 1
	for i := 0; i < len(msg); i++ {
		if msg[i] == '\n' {
			lines++
		}
	}
	_, outbox := tinyfont.LineWidth(g.hud, "GAME OVER")
	x := int16(g.w/2) - int16(outbox)/2
	y := int16(g.h/2) - g.hudHeight*int16(lines)/2 + g.hudHeight
	r, gr, b := hal.RGB888(colOverlay)
	tinyfont.WriteLine(d, g.hud, x, y, msg, color.RGBA{R: r, G: gr, B: b, A: 0xFF})
}

func xorshift32(x uint32) uint32 {
	if x == 0 {
		x = 0x6d2b79f5
	}
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	return x
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
