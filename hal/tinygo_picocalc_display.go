//go:build tinygo && baremetal && picocalc

package hal

import (
	"errors"
	"machine"
	"time"
)

// ILI9488 command bytes used by the panel.
const (
	lcdSLPOUT  = 0x11
	lcdINVON   = 0x21
	lcdDISPON  = 0x29
	lcdCASET   = 0x2A
	lcdPASET   = 0x2B
	lcdRAMWR   = 0x2C
	lcdMADCTL  = 0x36
	lcdCOLMOD  = 0x3A
	lcdFRMCTR1 = 0xB1
	lcdDISCTRL = 0xB6
	lcdPWCTRL1 = 0xC0
	lcdPWCTRL2 = 0xC1
	lcdVMCTRL  = 0xC5
)

type lcdStep struct {
	cmd   byte
	data  []byte
	delay time.Duration
}

// picoPanelInit brings the PicoCalc panel up in 16bpp mode, mirrored to
// match the carrier wiring and in BGR order.
var picoPanelInit = []lcdStep{
	{cmd: lcdPWCTRL1, data: []byte{0x17, 0x15}},
	{cmd: lcdPWCTRL2, data: []byte{0x41}},
	{cmd: lcdVMCTRL, data: []byte{0x00, 0x12, 0x80, 0x40}},
	{cmd: lcdCOLMOD, data: []byte{0x55}},
	{cmd: lcdFRMCTR1, data: []byte{0xA0, 0x11}},
	{cmd: lcdDISCTRL, data: []byte{0x02, 0x22, 0x27}},
	{cmd: lcdINVON},
	{cmd: lcdMADCTL, data: []byte{0x40 | 0x08 | 0x04}},
	{cmd: lcdSLPOUT, delay: 120 * time.Millisecond},
	{cmd: lcdDISPON},
}

// picoPanel is the ILI9488 on SPI1. It only accepts whole-width row spans:
// the engine redraws the full screen each frame and Present sends the rows
// that changed.
type picoPanel struct {
	spi *machine.SPI
	cs  machine.Pin
	dc  machine.Pin
	rst machine.Pin

	line []byte
	arg  [4]byte
	op   [1]byte
}

func openPicoPanel() (*picoPanel, error) {
	if machine.SPI1 == nil {
		return nil, errors.New("SPI1 unavailable")
	}
	err := machine.SPI1.Configure(machine.SPIConfig{
		SCK:       machine.GP10,
		SDO:       machine.GP11,
		SDI:       machine.GP12,
		Frequency: 40_000_000,
	})
	if err != nil {
		return nil, err
	}

	p := &picoPanel{
		spi: machine.SPI1,
		cs:  machine.GP13,
		dc:  machine.GP14,
		rst: machine.GP15,
		// Eight rows of byte-swapped pixels per SPI burst.
		line: make([]byte, 8*picoCalcWidth*2),
	}
	for _, pin := range []machine.Pin{p.cs, p.dc, p.rst} {
		pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
		pin.High()
	}

	p.rst.Low()
	time.Sleep(64 * time.Millisecond)
	p.rst.High()
	time.Sleep(140 * time.Millisecond)

	for _, s := range picoPanelInit {
		p.send(s.cmd, s.data)
		if s.delay > 0 {
			time.Sleep(s.delay)
		}
	}
	return p, nil
}

func (p *picoPanel) send(cmd byte, data []byte) {
	p.cs.Low()
	p.dc.Low()
	p.op[0] = cmd
	p.spi.Tx(p.op[:], nil)
	p.dc.High()
	if len(data) > 0 {
		p.spi.Tx(data, nil)
	}
	p.cs.High()
}

func (p *picoPanel) window(x0, y0, x1, y1 int) {
	p.arg = [4]byte{byte(x0 >> 8), byte(x0), byte(x1 >> 8), byte(x1)}
	p.send(lcdCASET, p.arg[:])
	p.arg = [4]byte{byte(y0 >> 8), byte(y0), byte(y1 >> 8), byte(y1)}
	p.send(lcdPASET, p.arg[:])
	p.send(lcdRAMWR, nil)
}

// blitRows sends rows [y0, y1) of a little-endian RGB565 buffer. The panel
// takes pixels big-endian, so each burst is byte-swapped into p.line.
func (p *picoPanel) blitRows(buf []byte, stride, w, y0, y1 int) error {
	rowBytes := w * 2
	if w <= 0 || y0 < 0 || y1 <= y0 || len(buf) < (y1-1)*stride+rowBytes {
		return errors.New("hal: panel blit out of range")
	}
	perBurst := len(p.line) / rowBytes
	if perBurst == 0 {
		return errors.New("hal: panel line buffer too small")
	}

	p.window(0, y0, w-1, y1-1)
	p.cs.Low()
	p.dc.High()
	for y := y0; y < y1; {
		n := 0
		for ; n < perBurst && y < y1; n, y = n+1, y+1 {
			src := buf[y*stride : y*stride+rowBytes]
			dst := p.line[n*rowBytes : (n+1)*rowBytes]
			for i := 0; i < rowBytes; i += 2 {
				dst[i], dst[i+1] = src[i+1], src[i]
			}
		}
		p.spi.Tx(p.line[:n*rowBytes], nil)
	}
	p.cs.High()
	return nil
}
