package hal

import "testing"

func TestRGB565Primaries(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		want    uint16
	}{
		{"black", 0, 0, 0, 0x0000},
		{"white", 0xFF, 0xFF, 0xFF, 0xFFFF},
		{"red", 0xFF, 0, 0, 0xF800},
		{"green", 0, 0xFF, 0, 0x07E0},
		{"blue", 0, 0, 0xFF, 0x001F},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RGB565(tt.r, tt.g, tt.b); got != tt.want {
				t.Fatalf("RGB565(%d,%d,%d)=%#04x, want %#04x", tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

func TestRGB888RoundTrip(t *testing.T) {
	for p := 0; p <= 0xFFFF; p += 37 {
		r, g, b := RGB888(uint16(p))
		if got := RGB565(r, g, b); got != uint16(p) {
			t.Fatalf("sample %#04x -> (%d,%d,%d) -> %#04x", p, r, g, b, got)
		}
	}
}

func TestFillRGB565LittleEndian(t *testing.T) {
	buf := make([]byte, 6)
	fillRGB565(buf, 0xABCD)
	for i := 0; i < len(buf); i += 2 {
		if buf[i] != 0xCD || buf[i+1] != 0xAB {
			t.Fatalf("pixel %d = %02x %02x", i/2, buf[i], buf[i+1])
		}
	}
}

func TestKeyCodeString(t *testing.T) {
	if KeyExe.String() != "EXE" {
		t.Fatalf("KeyExe.String()=%q", KeyExe.String())
	}
	if KeyCode(999).String() != "UNKNOWN" {
		t.Fatalf("out of range key should be UNKNOWN")
	}
}
