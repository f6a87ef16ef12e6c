package hal

// rowSpan is a run of framebuffer rows [Y0, Y1).
type rowSpan struct {
	Y0, Y1 int
}

// rowTracker remembers a checksum per framebuffer row so a panel driver can
// resend only the rows that changed since the last Present.
type rowTracker struct {
	sums   []uint32
	primed bool
}

// invalidate makes the next call to changed report every row.
func (t *rowTracker) invalidate() { t.primed = false }

// changed appends to spans the runs of rows whose contents differ from the
// previous call and records the new checksums. Adjacent dirty rows are merged
// into one span.
func (t *rowTracker) changed(buf []byte, stride, rowBytes, h int, spans []rowSpan) []rowSpan {
	if h <= 0 || stride <= 0 || rowBytes <= 0 {
		return spans
	}
	if len(t.sums) != h {
		t.sums = make([]uint32, h)
		t.primed = false
	}
	start := -1
	for y := 0; y < h; y++ {
		off := y * stride
		end := off + rowBytes
		if end > len(buf) {
			// Rows past the buffer never change.
			h = y
			break
		}
		sum := fnv1a(buf[off:end])
		dirty := !t.primed || sum != t.sums[y]
		t.sums[y] = sum
		switch {
		case dirty && start < 0:
			start = y
		case !dirty && start >= 0:
			spans = append(spans, rowSpan{Y0: start, Y1: y})
			start = -1
		}
	}
	if start >= 0 {
		spans = append(spans, rowSpan{Y0: start, Y1: h})
	}
	t.primed = true
	return spans
}

func fnv1a(b []byte) uint32 {
	h := uint32(2166136261)
	for _, c := range b {
		h ^= uint32(c)
		h *= 16777619
	}
	return h
}
