package cpu

// fetch8 reads the byte at PC and advances PC by one (spec.md §4.3).
func (c *CPU) fetch8() byte {
	v := c.bus.Read(c.pc)
	c.pc++
	return v
}

// fetch16 reads the little-endian word at PC and advances PC by two.
func (c *CPU) fetch16() uint16 {
	v := c.read16(c.pc)
	c.pc += 2
	return v
}

// fetchSigned8 reads a byte at PC, advances PC by one, and returns its
// signed interpretation for relative jumps and SP-relative offsets.
func (c *CPU) fetchSigned8() int8 {
	return int8(c.fetch8())
}
