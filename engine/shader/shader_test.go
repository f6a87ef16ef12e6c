package shader

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

type write struct {
	x, y int
	c    uint16
}

type recorder struct {
	writes []write
}

func (r *recorder) SetPixel(x, y int, c uint16) {
	r.writes = append(r.writes, write{x, y, c})
}

func TestCompositePlain(t *testing.T) {
	var r recorder
	Composite(&r, 10, 20, 4, 4, 1, 2, 0xAAAA, ModePlain, 0)
	if len(r.writes) != 1 || r.writes[0] != (write{11, 22, 0xAAAA}) {
		t.Fatalf("writes = %v", r.writes)
	}
}

func TestCompositeNoneAndUnknown(t *testing.T) {
	var r recorder
	Composite(&r, 0, 0, 4, 4, 1, 1, 1, ModeNone, 0)
	Composite(&r, 0, 0, 4, 4, 1, 1, 1, Mode(42), 0)
	if len(r.writes) != 0 {
		t.Fatalf("writes = %v", r.writes)
	}
}

func TestCompositeKeyed(t *testing.T) {
	var r recorder
	const key = 0xF81F
	Composite(&r, 0, 0, 2, 2, 0, 0, key, ModeKeyed, key)
	Composite(&r, 0, 0, 2, 2, 1, 0, 0x1234, ModeKeyed, key)
	if len(r.writes) != 1 || r.writes[0] != (write{1, 0, 0x1234}) {
		t.Fatalf("writes = %v", r.writes)
	}
}

func TestCompositeFrameSelectsColumns(t *testing.T) {
	// 3 frames of 2x2.
	var r recorder
	for j := 0; j < 2; j++ {
		for i := 0; i < 6; i++ {
			Composite(&r, 100, 50, 6, 2, i, j, uint16(i), ModeFrame, 1)
		}
	}
	if len(r.writes) != 4 {
		t.Fatalf("expected 4 writes, got %v", r.writes)
	}
	for _, w := range r.writes {
		if w.c != 2 && w.c != 3 {
			t.Fatalf("pixel from column %d leaked into frame 1", w.c)
		}
		if w.x != 100+int(w.c)-2 {
			t.Fatalf("frame pixel placed at x=%d", w.x)
		}
	}
}

func TestCompositeFrameFarPastStripDrawsNothing(t *testing.T) {
	for _, k := range []int{3, 1 << 40, 1 << 60, math.MaxInt / 16, math.MaxInt} {
		var r recorder
		for i := 0; i < 48; i++ {
			Composite(&r, 0, 0, 48, 16, i, 0, 1, ModeFrame, k)
		}
		if len(r.writes) != 0 {
			t.Fatalf("frame %d of a 3-frame strip drew %d pixels", k, len(r.writes))
		}
	}
}

func TestFrameCount(t *testing.T) {
	if FrameCount(48, 16) != 3 || FrameCount(10, 0) != 0 || FrameCount(15, 16) != 0 {
		t.Fatal("unexpected frame count")
	}
}

func TestProperty_FrameIsolation(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("frame k only ever draws pixels from frame k", prop.ForAll(
		func(h, frames, k int) bool {
			w := h * frames
			var r recorder
			for j := 0; j < h; j++ {
				for i := 0; i < w; i++ {
					// Encode the source frame in the sample.
					Composite(&r, 0, 0, w, h, i, j, uint16(i/h), ModeFrame, k)
				}
			}
			if k >= frames {
				return len(r.writes) == 0
			}
			if len(r.writes) != h*h {
				return false
			}
			for _, wr := range r.writes {
				if int(wr.c) != k || wr.x < 0 || wr.x >= h || wr.y < 0 || wr.y >= h {
					return false
				}
			}
			return true
		},
		gen.IntRange(1, 12),
		gen.IntRange(1, 6),
		gen.IntRange(0, 7),
	))

	properties.TestingRun(t)
}
