package cpu

// 8-bit and 16-bit ALU instructions (spec.md §4.1, §4.5).

func (c *CPU) opAdd(v byte) {
	c.Write8(A, c.add8(c.Read8(A), v, false))
}

func (c *CPU) opAdc(v byte) {
	c.Write8(A, c.add8(c.Read8(A), v, c.Flag(FlagC)))
}

func (c *CPU) opSub(v byte) {
	c.Write8(A, c.sub8(c.Read8(A), v, false))
}

func (c *CPU) opSbc(v byte) {
	c.Write8(A, c.sub8(c.Read8(A), v, c.Flag(FlagC)))
}

// opAnd: H set to 1 for AND (spec.md §4.5), unlike OR/XOR.
func (c *CPU) opAnd(v byte) {
	a := c.Read8(A) & v
	c.Write8(A, a)
	c.setFlags(a == 0, false, true, false)
}

func (c *CPU) opOr(v byte) {
	a := c.Read8(A) | v
	c.Write8(A, a)
	c.setFlags(a == 0, false, false, false)
}

func (c *CPU) opXor(v byte) {
	a := c.Read8(A) ^ v
	c.Write8(A, a)
	c.setFlags(a == 0, false, false, false)
}

// opCp compares A against v like SUB, but does not write A.
func (c *CPU) opCp(v byte) {
	a := c.Read8(A)
	c.sub8(a, v, false)
	c.Write8(A, a)
}

// opIncR increments an 8-bit register: INC r. Z,N=0,H set; C unaffected.
func (c *CPU) opIncR(r Register) {
	v := c.Read8(r)
	result := v + 1
	c.Write8(r, result)
	c.SetFlag(FlagZ, result == 0)
	c.SetFlag(FlagN, false)
	c.SetFlag(FlagH, v&0x0F == 0x0F)
}

// opDecR decrements an 8-bit register: DEC r. Z,N=1,H set; C unaffected.
func (c *CPU) opDecR(r Register) {
	v := c.Read8(r)
	result := v - 1
	c.Write8(r, result)
	c.SetFlag(FlagZ, result == 0)
	c.SetFlag(FlagN, true)
	c.SetFlag(FlagH, v&0x0F == 0x00)
}

// opIncHL increments the byte at (HL): INC (HL).
func (c *CPU) opIncHL() {
	addr := c.Read16(HL)
	v := c.bus.Read(addr)
	result := v + 1
	c.bus.Write(addr, result)
	c.SetFlag(FlagZ, result == 0)
	c.SetFlag(FlagN, false)
	c.SetFlag(FlagH, v&0x0F == 0x0F)
}

// opDecHL decrements the byte at (HL): DEC (HL).
func (c *CPU) opDecHL() {
	addr := c.Read16(HL)
	v := c.bus.Read(addr)
	result := v - 1
	c.bus.Write(addr, result)
	c.SetFlag(FlagZ, result == 0)
	c.SetFlag(FlagN, true)
	c.SetFlag(FlagH, v&0x0F == 0x00)
}

// --- 16-bit ALU ---

// opAddHLRR: ADD HL, rr. Flags per add16; Z preserved.
func (c *CPU) opAddHLRR(rr RegisterPair) {
	c.Write16(HL, c.add16(c.Read16(HL), c.Read16(rr)))
}

// opAddSPe: ADD SP, e. Signed 8-bit immediate (spec.md §9: a documented
// fix over the Python source, which incorrectly fetched 16 bits here).
func (c *CPU) opAddSPe() {
	e := c.fetchSigned8()
	c.sp = c.addSPSigned(c.sp, e)
}

// opIncRR: INC rr. No flags.
func (c *CPU) opIncRR(rr RegisterPair) {
	c.Write16(rr, c.Read16(rr)+1)
}

// opDecRR: DEC rr. No flags.
func (c *CPU) opDecRR(rr RegisterPair) {
	c.Write16(rr, c.Read16(rr)-1)
}
