package cpu

// operandRegs is the standard Z80/DMG 3-bit operand encoding shared by the
// LD r,r' block (0x40-0x7F), the 8-bit ALU block (0x80-0xBF), and every CB
// page instruction (spec.md §4.5): B, C, D, E, H, L, (HL), A in that order.
var operandRegs = [8]Register{B, C, D, E, H, L, 0, A}

const operandHL = 6 // index of the (HL) operand within operandRegs

// getOperand reads the 8-bit value selected by a 3-bit operand index,
// reading memory at (HL) for index 6.
func (c *CPU) getOperand(idx byte) byte {
	if idx == operandHL {
		return c.bus.Read(c.Read16(HL))
	}
	return c.Read8(operandRegs[idx])
}

// setOperand writes the 8-bit value selected by a 3-bit operand index,
// writing memory at (HL) for index 6.
func (c *CPU) setOperand(idx byte, v byte) {
	if idx == operandHL {
		c.bus.Write(c.Read16(HL), v)
		return
	}
	c.Write8(operandRegs[idx], v)
}
