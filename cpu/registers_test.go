package cpu

import "testing"

func TestRegister16RoundTrip(t *testing.T) {
	c, _ := newTestCPU(nil)

	pairs := []RegisterPair{AF, BC, DE, HL, SP, PC}
	for _, rr := range pairs {
		for _, v := range []uint16{0x0000, 0x00FF, 0xFF00, 0xFFFF, 0x1234, 0xAA55} {
			c.Write16(rr, v)
			want := v
			if rr == AF {
				want &= 0xFFF0 // low nibble of F always reads zero
			}
			if got := c.Read16(rr); got != want {
				t.Errorf("rr=%v v=%#04X: got %#04X, want %#04X", rr, v, got, want)
			}
		}
	}
}

func TestHLByteRegisterAlias(t *testing.T) {
	c, _ := newTestCPU(nil)

	c.Write8(H, 0x55)
	c.Write8(L, 0xAA)
	if got := c.Read16(HL); got != 0x55AA {
		t.Errorf("HL = %#04X, want 0x55AA", got)
	}

	c.Write16(HL, 0xAA55)
	if h, l := c.Read8(H), c.Read8(L); h != 0xAA || l != 0x55 {
		t.Errorf("H,L = %#02X,%#02X, want 0xAA,0x55", h, l)
	}
}

func TestPopAFMasksLowNibble(t *testing.T) {
	c, bus := newTestCPU(nil)
	c.sp = 0xFFFC
	bus.ram[0xFFFC] = 0xFF // low byte (F) pushed with all bits set
	bus.ram[0xFFFD] = 0x12 // high byte (A)

	c.opPop(AF)

	if got := c.Read8(F); got != 0xF0 {
		t.Errorf("F = %#02X, want 0xF0 (low nibble masked)", got)
	}
	if got := c.Read8(A); got != 0x12 {
		t.Errorf("A = %#02X, want 0x12", got)
	}
}

func TestPushPopRoundTrip(t *testing.T) {
	c, _ := newTestCPU(nil)
	c.sp = 0xFFFE
	c.Write16(BC, 0x1234)

	spBefore := c.sp
	c.opPush(BC)
	c.Write16(BC, 0x0000)
	c.opPop(BC)

	if got := c.Read16(BC); got != 0x1234 {
		t.Errorf("BC = %#04X, want 0x1234", got)
	}
	if c.sp != spBefore {
		t.Errorf("SP = %#04X, want %#04X", c.sp, spBefore)
	}
}

func TestLdRRIsPureMove(t *testing.T) {
	c, _ := newTestCPU(nil)
	c.Write8(F, 0xD0)
	c.Write8(B, 0x42)

	c.opLdRR(A, B)

	if got := c.Read8(A); got != 0x42 {
		t.Errorf("A = %#02X, want 0x42", got)
	}
	if got := c.Read8(B); got != 0x42 {
		t.Errorf("B = %#02X, want unchanged 0x42", got)
	}
	if got := c.Read8(F); got != 0xD0 {
		t.Errorf("F = %#02X, want unchanged 0xD0", got)
	}
}
