//go:build tinygo && baremetal && picocalc

package hal

import "time"

const (
	picoCalcWidth  = 320
	picoCalcHeight = 320
)

type picoCalcHAL struct {
	logger *uartLogger
	fb     Framebuffer
	kbd    Keyboard
}

// New returns a PicoCalc HAL implementation (Pico/Pico2 on the PicoCalc carrier).
func New() HAL {
	logger := newUARTLogger()

	var fb Framebuffer
	if disp, err := newPicoCalcDisplay(); err == nil {
		fb = disp
	} else {
		logger.WriteLineString("hal: display: " + err.Error())
		fb = newPicoCalcFramebuffer(nil)
	}

	var kbd Keyboard
	if kb, err := newPicoCalcKeyboard(); err == nil {
		kbd = kb
	} else {
		logger.WriteLineString("hal: keyboard: " + err.Error())
		kbd = &stubKeyboard{}
	}

	return &picoCalcHAL{logger: logger, fb: fb, kbd: kbd}
}

func (h *picoCalcHAL) Logger() Logger   { return h.logger }
func (h *picoCalcHAL) Display() Display { return tinyGoDisplay{fb: h.fb} }
func (h *picoCalcHAL) Input() Input     { return tinyGoInput{kbd: h.kbd} }

// picoCalcFramebuffer is the RAM video buffer; Present pushes the rows that
// changed since the previous Present to the panel.
type picoCalcFramebuffer struct {
	w      int
	h      int
	stride int
	buf    []byte

	lcd   *picoPanel
	rows  rowTracker
	spans []rowSpan
}

func newPicoCalcFramebuffer(lcd *picoPanel) *picoCalcFramebuffer {
	return &picoCalcFramebuffer{
		w:      picoCalcWidth,
		h:      picoCalcHeight,
		stride: picoCalcWidth * 2,
		buf:    make([]byte, picoCalcWidth*picoCalcHeight*2),
		lcd:    lcd,
	}
}

func (f *picoCalcFramebuffer) Width() int          { return f.w }
func (f *picoCalcFramebuffer) Height() int         { return f.h }
func (f *picoCalcFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *picoCalcFramebuffer) StrideBytes() int    { return f.stride }
func (f *picoCalcFramebuffer) Buffer() []byte      { return f.buf }

func (f *picoCalcFramebuffer) ClearRGB(r, g, b uint8) {
	fillRGB565(f.buf, RGB565(r, g, b))
}

func (f *picoCalcFramebuffer) Present() error {
	if f.lcd == nil {
		return ErrNotImplemented
	}
	f.spans = f.rows.changed(f.buf, f.stride, f.w*2, f.h, f.spans[:0])
	for _, s := range f.spans {
		if err := f.lcd.blitRows(f.buf, f.stride, f.w, s.Y0, s.Y1); err != nil {
			f.rows.invalidate()
			return err
		}
	}
	return nil
}

func newPicoCalcDisplay() (*picoCalcFramebuffer, error) {
	lcd, err := openPicoPanel()
	if err != nil {
		return nil, err
	}
	return newPicoCalcFramebuffer(lcd), nil
}

type picoCalcKeyboard struct {
	ch chan KeyEvent
}

func (k *picoCalcKeyboard) Events() <-chan KeyEvent { return k.ch }

func newPicoCalcKeyboard() (*picoCalcKeyboard, error) {
	dev := &picoCalcKeyboard{ch: make(chan KeyEvent, 64)}
	kbd, err := initI2CKeyboard()
	if err != nil {
		return nil, err
	}

	go func() {
		defer close(dev.ch)
		for {
			ev, ok := kbd.readEvent()
			if ok {
				select {
				case dev.ch <- ev:
				default:
				}
			}
			time.Sleep(2 * time.Millisecond)
		}
	}()

	return dev, nil
}
