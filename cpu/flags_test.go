package cpu

import "testing"

func TestAdd8Flags(t *testing.T) {
	c, _ := newTestCPU(nil)

	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			for _, carryIn := range []bool{false, true} {
				ci := 0
				if carryIn {
					ci = 1
				}
				total := a + b + ci
				want := byte(total % 256)

				got := c.add8(byte(a), byte(b), carryIn)
				if got != want {
					t.Fatalf("add8(%d,%d,%v) = %d, want %d", a, b, carryIn, got, want)
				}
				if wantZ := got == 0; c.Flag(FlagZ) != wantZ {
					t.Fatalf("add8(%d,%d,%v) Z = %v, want %v", a, b, carryIn, c.Flag(FlagZ), wantZ)
				}
				if c.Flag(FlagN) {
					t.Fatalf("add8(%d,%d,%v) N set, want clear", a, b, carryIn)
				}
				wantH := (a&0x0F)+(b&0x0F)+ci > 0x0F
				if c.Flag(FlagH) != wantH {
					t.Fatalf("add8(%d,%d,%v) H = %v, want %v", a, b, carryIn, c.Flag(FlagH), wantH)
				}
				wantC := total > 0xFF
				if c.Flag(FlagC) != wantC {
					t.Fatalf("add8(%d,%d,%v) C = %v, want %v", a, b, carryIn, c.Flag(FlagC), wantC)
				}
			}
		}
	}
}

func TestSub8Flags(t *testing.T) {
	c, _ := newTestCPU(nil)

	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			for _, carryIn := range []bool{false, true} {
				ci := 0
				if carryIn {
					ci = 1
				}
				total := a - b - ci
				want := byte(((total % 256) + 256) % 256)

				got := c.sub8(byte(a), byte(b), carryIn)
				if got != want {
					t.Fatalf("sub8(%d,%d,%v) = %d, want %d", a, b, carryIn, got, want)
				}
				if wantZ := got == 0; c.Flag(FlagZ) != wantZ {
					t.Fatalf("sub8(%d,%d,%v) Z = %v, want %v", a, b, carryIn, c.Flag(FlagZ), wantZ)
				}
				if !c.Flag(FlagN) {
					t.Fatalf("sub8(%d,%d,%v) N clear, want set", a, b, carryIn)
				}
				wantH := (a&0x0F) < (b&0x0F)+ci
				if c.Flag(FlagH) != wantH {
					t.Fatalf("sub8(%d,%d,%v) H = %v, want %v", a, b, carryIn, c.Flag(FlagH), wantH)
				}
				wantC := total < 0
				if c.Flag(FlagC) != wantC {
					t.Fatalf("sub8(%d,%d,%v) C = %v, want %v", a, b, carryIn, c.Flag(FlagC), wantC)
				}
			}
		}
	}
}

func TestAdd16Flags(t *testing.T) {
	c, _ := newTestCPU(nil)

	cases := []struct{ a, b uint16 }{
		{0x0FFF, 0x0001}, {0xFFFF, 0x0001}, {0x1234, 0x5678}, {0x0000, 0x0000},
	}
	for _, tc := range cases {
		total := uint32(tc.a) + uint32(tc.b)
		got := c.add16(tc.a, tc.b)
		if got != uint16(total) {
			t.Errorf("add16(%#04X,%#04X) = %#04X, want %#04X", tc.a, tc.b, got, uint16(total))
		}
		if c.Flag(FlagN) {
			t.Errorf("add16(%#04X,%#04X) N set, want clear", tc.a, tc.b)
		}
		wantH := (tc.a&0x0FFF)+(tc.b&0x0FFF) > 0x0FFF
		if c.Flag(FlagH) != wantH {
			t.Errorf("add16(%#04X,%#04X) H = %v, want %v", tc.a, tc.b, c.Flag(FlagH), wantH)
		}
		wantC := total > 0xFFFF
		if c.Flag(FlagC) != wantC {
			t.Errorf("add16(%#04X,%#04X) C = %v, want %v", tc.a, tc.b, c.Flag(FlagC), wantC)
		}
	}
}

func TestFLowNibbleAlwaysZero(t *testing.T) {
	c, _ := newTestCPU(nil)

	for v := 0; v < 256; v++ {
		c.Write8(F, byte(v))
		if got := c.Read8(F); got&0x0F != 0 {
			t.Fatalf("F&0x0F = %#02X after writing %#02X, want 0", got&0x0F, v)
		}
	}
}
