package cpu

// Flag identifies one of the four flag bits held in the high nibble of F.
type Flag byte

// Bit positions within F. Z, N, H, C occupy bits 7..4; bits 3..0 are
// always zero (spec invariant, kept by Read8/Write8 masking F).
const (
	FlagZ Flag = 1 << 7
	FlagN Flag = 1 << 6
	FlagH Flag = 1 << 5
	FlagC Flag = 1 << 4
)

// Flag returns whether the given flag bit is set.
func (c *CPU) Flag(f Flag) bool {
	return c.regs[F]&byte(f) != 0
}

// SetFlag sets or clears the given flag bit.
func (c *CPU) SetFlag(f Flag, set bool) {
	if set {
		c.regs[F] |= byte(f)
	} else {
		c.regs[F] &^= byte(f)
	}
}

// setFlags is a convenience for writing all four flags at once.
func (c *CPU) setFlags(z, n, h, cy bool) {
	c.SetFlag(FlagZ, z)
	c.SetFlag(FlagN, n)
	c.SetFlag(FlagH, h)
	c.SetFlag(FlagC, cy)
}

func boolToByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}

// add8 computes a + b + carryIn mod 256, sets Z/N/H/C per spec.md §4.1,
// and returns the wrapped result.
func (c *CPU) add8(a, b byte, carryIn bool) byte {
	ci := boolToByte(carryIn)
	total := uint16(a) + uint16(b) + uint16(ci)
	result := byte(total)

	c.setFlags(
		result == 0,
		false,
		(a&0x0F)+(b&0x0F)+ci > 0x0F,
		total > 0xFF,
	)
	return result
}

// sub8 computes a - b - carryIn mod 256, sets Z/N/H/C per spec.md §4.1,
// and returns the wrapped result.
func (c *CPU) sub8(a, b byte, carryIn bool) byte {
	ci := int16(boolToByte(carryIn))
	total := int16(a) - int16(b) - ci
	result := byte(total)

	c.setFlags(
		result == 0,
		true,
		int16(a&0x0F) < int16(b&0x0F)+ci,
		total < 0,
	)
	return result
}

// add16 computes a + b mod 65536 for ADD HL,rr. Z is left unchanged by the
// caller; N/H/C are set per spec.md §4.1.
func (c *CPU) add16(a, b uint16) uint16 {
	total := uint32(a) + uint32(b)
	result := uint16(total)

	c.SetFlag(FlagN, false)
	c.SetFlag(FlagH, (a&0x0FFF)+(b&0x0FFF) > 0x0FFF)
	c.SetFlag(FlagC, total > 0xFFFF)
	return result
}

// addSPSigned computes sp + signExtend(e) mod 65536 for ADD SP,e and
// LD HL,SP+e. Z and N are always cleared; H/C use the unsigned low bytes
// of sp and e per spec.md §4.1, not the signed total.
func (c *CPU) addSPSigned(sp uint16, e int8) uint16 {
	result := uint16(int32(sp) + int32(e))

	eu := byte(e)
	c.setFlags(
		false,
		false,
		(sp&0x0F)+uint16(eu&0x0F) > 0x0F,
		(sp&0xFF)+uint16(eu) > 0xFF,
	)
	return result
}
