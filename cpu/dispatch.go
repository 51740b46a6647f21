package cpu

// buildPrimaryTable wires the 256-entry primary opcode dispatch table
// (spec.md §9: prefer a dispatch table to a long conditional chain, the
// shape the teacher's InstLookup array already uses for the 6502). Most
// entries are assigned individually since the DMG opcode map is highly
// irregular; the two genuinely regular blocks (LD r,r' and the 8-bit ALU
// block) are generated by loop instead of spelled out 64 times each.
// Opcodes with no defined instruction (0xD3, 0xDB, 0xDD, 0xE3, 0xE4,
// 0xEB-0xED, 0xF4, 0xFC, 0xFD) are left nil and surface a DecodeError.
func (c *CPU) buildPrimaryTable() {
	t := &c.primary

	// 0x00 - 0x0F
	t[0x00] = c.opNOP
	t[0x01] = func() { c.opLdRRNN(BC) }
	t[0x02] = func() { c.opLdIndirectA(BC) }
	t[0x03] = func() { c.opIncRR(BC) }
	t[0x04] = func() { c.opIncR(B) }
	t[0x05] = func() { c.opDecR(B) }
	t[0x06] = func() { c.opLdRN(B) }
	t[0x07] = c.opRLCA
	t[0x08] = c.opLdNNSP
	t[0x09] = func() { c.opAddHLRR(BC) }
	t[0x0A] = func() { c.opLdAIndirect(BC) }
	t[0x0B] = func() { c.opDecRR(BC) }
	t[0x0C] = func() { c.opIncR(C) }
	t[0x0D] = func() { c.opDecR(C) }
	t[0x0E] = func() { c.opLdRN(C) }
	t[0x0F] = c.opRRCA

	// 0x10 - 0x1F
	t[0x10] = c.opSTOP
	t[0x11] = func() { c.opLdRRNN(DE) }
	t[0x12] = func() { c.opLdIndirectA(DE) }
	t[0x13] = func() { c.opIncRR(DE) }
	t[0x14] = func() { c.opIncR(D) }
	t[0x15] = func() { c.opDecR(D) }
	t[0x16] = func() { c.opLdRN(D) }
	t[0x17] = c.opRLA
	t[0x18] = c.opJRe
	t[0x19] = func() { c.opAddHLRR(DE) }
	t[0x1A] = func() { c.opLdAIndirect(DE) }
	t[0x1B] = func() { c.opDecRR(DE) }
	t[0x1C] = func() { c.opIncR(E) }
	t[0x1D] = func() { c.opDecR(E) }
	t[0x1E] = func() { c.opLdRN(E) }
	t[0x1F] = c.opRRA

	// 0x20 - 0x2F
	t[0x20] = func() { c.opJRcce(CondNZ) }
	t[0x21] = func() { c.opLdRRNN(HL) }
	t[0x22] = c.opLdiHLA
	t[0x23] = func() { c.opIncRR(HL) }
	t[0x24] = func() { c.opIncR(H) }
	t[0x25] = func() { c.opDecR(H) }
	t[0x26] = func() { c.opLdRN(H) }
	t[0x27] = c.opDAA
	t[0x28] = func() { c.opJRcce(CondZ) }
	t[0x29] = func() { c.opAddHLRR(HL) }
	t[0x2A] = c.opLdiAHL
	t[0x2B] = func() { c.opDecRR(HL) }
	t[0x2C] = func() { c.opIncR(L) }
	t[0x2D] = func() { c.opDecR(L) }
	t[0x2E] = func() { c.opLdRN(L) }
	t[0x2F] = c.opCPL

	// 0x30 - 0x3F
	t[0x30] = func() { c.opJRcce(CondNC) }
	t[0x31] = func() { c.opLdRRNN(SP) }
	t[0x32] = c.opLddHLA
	t[0x33] = func() { c.opIncRR(SP) }
	t[0x34] = c.opIncHL
	t[0x35] = c.opDecHL
	t[0x36] = c.opLdHLN
	t[0x37] = c.opSCF
	t[0x38] = func() { c.opJRcce(CondC) }
	t[0x39] = func() { c.opAddHLRR(SP) }
	t[0x3A] = c.opLddAHL
	t[0x3B] = func() { c.opDecRR(SP) }
	t[0x3C] = func() { c.opIncR(A) }
	t[0x3D] = func() { c.opDecR(A) }
	t[0x3E] = func() { c.opLdRN(A) }
	t[0x3F] = c.opCCF

	c.buildLoadBlock(t)
	c.buildALUBlock(t)

	// 0xC0 - 0xCF
	t[0xC0] = func() { c.opRETcc(CondNZ) }
	t[0xC1] = func() { c.opPop(BC) }
	t[0xC2] = func() { c.opJPccnn(CondNZ) }
	t[0xC3] = c.opJPnn
	t[0xC4] = func() { c.opCALLccnn(CondNZ) }
	t[0xC5] = func() { c.opPush(BC) }
	t[0xC6] = func() { c.opAdd(c.fetch8()) }
	t[0xC7] = func() { c.opRST(0x00) }
	t[0xC8] = func() { c.opRETcc(CondZ) }
	t[0xC9] = c.opRET
	t[0xCA] = func() { c.opJPccnn(CondZ) }
	// 0xCB: handled directly by execute() before this table is consulted.
	t[0xCC] = func() { c.opCALLccnn(CondZ) }
	t[0xCD] = c.opCALLnn
	t[0xCE] = func() { c.opAdc(c.fetch8()) }
	t[0xCF] = func() { c.opRST(0x08) }

	// 0xD0 - 0xDF (0xD3, 0xDB, 0xDD undefined)
	t[0xD0] = func() { c.opRETcc(CondNC) }
	t[0xD1] = func() { c.opPop(DE) }
	t[0xD2] = func() { c.opJPccnn(CondNC) }
	t[0xD4] = func() { c.opCALLccnn(CondNC) }
	t[0xD5] = func() { c.opPush(DE) }
	t[0xD6] = func() { c.opSub(c.fetch8()) }
	t[0xD7] = func() { c.opRST(0x10) }
	t[0xD8] = func() { c.opRETcc(CondC) }
	t[0xD9] = c.opRETI
	t[0xDA] = func() { c.opJPccnn(CondC) }
	t[0xDC] = func() { c.opCALLccnn(CondC) }
	t[0xDE] = func() { c.opSbc(c.fetch8()) }
	t[0xDF] = func() { c.opRST(0x18) }

	// 0xE0 - 0xEF (0xE3, 0xE4, 0xEB, 0xEC, 0xED undefined)
	t[0xE0] = c.opLdhNA
	t[0xE1] = func() { c.opPop(HL) }
	t[0xE2] = c.opLdCIndirectA
	t[0xE5] = func() { c.opPush(HL) }
	t[0xE6] = func() { c.opAnd(c.fetch8()) }
	t[0xE7] = func() { c.opRST(0x20) }
	t[0xE8] = c.opAddSPe
	t[0xE9] = c.opJPHL
	t[0xEA] = c.opLdNNA
	t[0xEE] = func() { c.opXor(c.fetch8()) }
	t[0xEF] = func() { c.opRST(0x28) }

	// 0xF0 - 0xFF (0xF4, 0xFC, 0xFD undefined)
	t[0xF0] = c.opLdhAN
	t[0xF1] = func() { c.opPop(AF) }
	t[0xF2] = c.opLdACIndirect
	t[0xF3] = c.opDI
	t[0xF5] = func() { c.opPush(AF) }
	t[0xF6] = func() { c.opOr(c.fetch8()) }
	t[0xF7] = func() { c.opRST(0x30) }
	t[0xF8] = c.opLdHLSPe
	t[0xF9] = c.opLdSPHL
	t[0xFA] = c.opLdANN
	t[0xFB] = c.opEI
	t[0xFE] = func() { c.opCp(c.fetch8()) }
	t[0xFF] = func() { c.opRST(0x38) }
}

// buildLoadBlock generates the regular 0x40-0x7F LD r,r' block: opcode =
// 0x40 | dst<<3 | src, operands indexed per operandRegs. 0x76 (dst=(HL),
// src=(HL)) is HALT, not LD (HL),(HL).
func (c *CPU) buildLoadBlock(t *[256]func()) {
	for dst := byte(0); dst < 8; dst++ {
		for src := byte(0); src < 8; src++ {
			op := 0x40 | dst<<3 | src
			if dst == operandHL && src == operandHL {
				t[op] = c.opHALT
				continue
			}
			d, s := dst, src
			switch {
			case d == operandHL:
				t[op] = func() { c.opLdHLR(operandRegs[s]) }
			case s == operandHL:
				t[op] = func() { c.opLdRHL(operandRegs[d]) }
			default:
				t[op] = func() { c.opLdRR(operandRegs[d], operandRegs[s]) }
			}
		}
	}
}

// buildALUBlock generates the regular 0x80-0xBF 8-bit ALU block: opcode =
// 0x80 | row<<3 | src, row selects ADD/ADC/SUB/SBC/AND/XOR/OR/CP in that
// order, src is indexed per operandRegs.
func (c *CPU) buildALUBlock(t *[256]func()) {
	ops := [8]func(byte){c.opAdd, c.opAdc, c.opSub, c.opSbc, c.opAnd, c.opXor, c.opOr, c.opCp}
	for row := byte(0); row < 8; row++ {
		for src := byte(0); src < 8; src++ {
			op := 0x80 | row<<3 | src
			r, s := row, src
			t[op] = func() { ops[r](c.getOperand(s)) }
		}
	}
}
