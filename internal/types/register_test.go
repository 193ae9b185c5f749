package types

import "testing"

func TestRegisterPair(t *testing.T) {
	t.Run("Uint16", func(t *testing.T) {
		var r RegisterPair
		for v := 0; v <= 0xFFFF; v++ {
			r.SetUint16(uint16(v))
			if got := r.Uint16(); got != uint16(v) {
				t.Fatalf("expected %04X, got %04X", v, got)
			}
			if got := r.High(); got != uint8(v>>8) {
				t.Fatalf("%04X: expected high %02X, got %02X", v, uint8(v>>8), got)
			}
			if got := r.Low(); got != uint8(v) {
				t.Fatalf("%04X: expected low %02X, got %02X", v, uint8(v), got)
			}
		}
	})
	t.Run("byte order", func(t *testing.T) {
		r := NewRegisterPair(0xABCD)
		if r.High() != 0xAB {
			t.Errorf("expected high byte 0xAB, got %02X", r.High())
		}
		if r.Low() != 0xCD {
			t.Errorf("expected low byte 0xCD, got %02X", r.Low())
		}
	})
	t.Run("halves", func(t *testing.T) {
		for h := 0; h <= 0xFF; h++ {
			for l := 0; l <= 0xFF; l += 0x11 {
				want := uint16(h)<<8 | uint16(l)

				var hl RegisterPair
				hl.SetHigh(uint8(h))
				hl.SetLow(uint8(l))
				if hl.Uint16() != want {
					t.Fatalf("high then low: expected %04X, got %04X", want, hl.Uint16())
				}

				var lh RegisterPair
				lh.SetLow(uint8(l))
				lh.SetHigh(uint8(h))
				if lh.Uint16() != want {
					t.Fatalf("low then high: expected %04X, got %04X", want, lh.Uint16())
				}
			}
		}
	})
	t.Run("SetHigh keeps low", func(t *testing.T) {
		for _, v := range []uint16{0x0000, 0x00FF, 0x1234, 0xFF00, 0xFFFF} {
			r := NewRegisterPair(v)
			r.SetHigh(0x5A)
			if r.Low() != uint8(v) {
				t.Errorf("%04X: expected low byte %02X to be unchanged, got %02X", v, uint8(v), r.Low())
			}
			if r.High() != 0x5A {
				t.Errorf("%04X: expected high byte 5A, got %02X", v, r.High())
			}
		}
	})
	t.Run("SetLow keeps high", func(t *testing.T) {
		for _, v := range []uint16{0x0000, 0x00FF, 0x1234, 0xFF00, 0xFFFF} {
			r := NewRegisterPair(v)
			r.SetLow(0xA5)
			if r.High() != uint8(v>>8) {
				t.Errorf("%04X: expected high byte %02X to be unchanged, got %02X", v, uint8(v>>8), r.High())
			}
			if r.Low() != 0xA5 {
				t.Errorf("%04X: expected low byte A5, got %02X", v, r.Low())
			}
		}
	})
	t.Run("String", func(t *testing.T) {
		r := NewRegisterPair(0x01B0)
		if s := r.String(); s != "0x01b0" {
			t.Errorf("expected 0x01b0, got %s", s)
		}
	})
}
