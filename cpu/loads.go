package cpu

// 8-bit and 16-bit load instructions (spec.md §4.5). None of these affect
// flags except LD HL,SP+e.

// opLdRN loads an 8-bit immediate into register r: LD r, n.
func (c *CPU) opLdRN(r Register) {
	c.Write8(r, c.fetch8())
}

// opLdRR copies register src into dst: LD r, r'.
func (c *CPU) opLdRR(dst, src Register) {
	c.Write8(dst, c.Read8(src))
}

// opLdRHL loads register r from the byte at (HL): LD r, (HL).
func (c *CPU) opLdRHL(r Register) {
	c.Write8(r, c.bus.Read(c.Read16(HL)))
}

// opLdHLR stores register r to the byte at (HL): LD (HL), r.
func (c *CPU) opLdHLR(r Register) {
	c.bus.Write(c.Read16(HL), c.Read8(r))
}

// opLdHLN stores an 8-bit immediate to the byte at (HL): LD (HL), n.
func (c *CPU) opLdHLN() {
	c.bus.Write(c.Read16(HL), c.fetch8())
}

// opLdAIndirect loads A from the byte at the given 16-bit register pair
// (BC or DE): LD A, (BC) / LD A, (DE).
func (c *CPU) opLdAIndirect(rr RegisterPair) {
	c.Write8(A, c.bus.Read(c.Read16(rr)))
}

// opLdIndirectA stores A to the byte at the given 16-bit register pair
// (BC or DE): LD (BC), A / LD (DE), A.
func (c *CPU) opLdIndirectA(rr RegisterPair) {
	c.bus.Write(c.Read16(rr), c.Read8(A))
}

// opLdANN loads A from the byte at a 16-bit immediate address: LD A, (nn).
func (c *CPU) opLdANN() {
	addr := c.fetch16()
	c.Write8(A, c.bus.Read(addr))
}

// opLdNNA stores A to the byte at a 16-bit immediate address: LD (nn), A.
func (c *CPU) opLdNNA() {
	addr := c.fetch16()
	c.bus.Write(addr, c.Read8(A))
}

// opLdhNA stores A to 0xFF00+n: LDH (n), A.
func (c *CPU) opLdhNA() {
	n := c.fetch8()
	c.bus.Write(0xFF00+uint16(n), c.Read8(A))
}

// opLdhAN loads A from 0xFF00+n: LDH A, (n).
func (c *CPU) opLdhAN() {
	n := c.fetch8()
	c.Write8(A, c.bus.Read(0xFF00+uint16(n)))
}

// opLdCIndirectA stores A to 0xFF00+C: LD (C), A.
func (c *CPU) opLdCIndirectA() {
	c.bus.Write(0xFF00+uint16(c.Read8(C)), c.Read8(A))
}

// opLdACIndirect loads A from 0xFF00+C: LD A, (C).
func (c *CPU) opLdACIndirect() {
	c.Write8(A, c.bus.Read(0xFF00+uint16(c.Read8(C))))
}

// opLdiHLA stores A to (HL), then increments HL: LDI (HL), A.
func (c *CPU) opLdiHLA() {
	hl := c.Read16(HL)
	c.bus.Write(hl, c.Read8(A))
	c.Write16(HL, hl+1)
}

// opLdiAHL loads A from (HL), then increments HL: LDI A, (HL).
func (c *CPU) opLdiAHL() {
	hl := c.Read16(HL)
	c.Write8(A, c.bus.Read(hl))
	c.Write16(HL, hl+1)
}

// opLddHLA stores A to (HL), then decrements HL: LDD (HL), A.
func (c *CPU) opLddHLA() {
	hl := c.Read16(HL)
	c.bus.Write(hl, c.Read8(A))
	c.Write16(HL, hl-1)
}

// opLddAHL loads A from (HL), then decrements HL: LDD A, (HL).
func (c *CPU) opLddAHL() {
	hl := c.Read16(HL)
	c.Write8(A, c.bus.Read(hl))
	c.Write16(HL, hl-1)
}

// --- 16-bit loads ---

// opLdRRNN loads a 16-bit immediate into a register pair: LD rr, nn.
func (c *CPU) opLdRRNN(rr RegisterPair) {
	c.Write16(rr, c.fetch16())
}

// opLdSPHL copies HL into SP: LD SP, HL. No flags.
func (c *CPU) opLdSPHL() {
	c.sp = c.Read16(HL)
}

// opLdHLSPe loads HL with SP plus a signed 8-bit immediate: LD HL, SP+e.
// Flags per addSPSigned.
func (c *CPU) opLdHLSPe() {
	e := c.fetchSigned8()
	c.Write16(HL, c.addSPSigned(c.sp, e))
}

// opLdNNSP stores SP little-endian to a 16-bit immediate address:
// LD (nn), SP.
func (c *CPU) opLdNNSP() {
	addr := c.fetch16()
	c.write16(addr, c.sp)
}

// opPush pushes a register pair onto the stack: PUSH rr.
func (c *CPU) opPush(rr RegisterPair) {
	c.push16(c.Read16(rr))
}

// opPop pops a register pair off the stack: POP rr. POP AF masks F's low
// nibble to zero via Write16's AF case.
func (c *CPU) opPop(rr RegisterPair) {
	c.Write16(rr, c.pop16())
}
