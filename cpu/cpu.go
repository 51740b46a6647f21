package cpu

import (
	"fmt"
	"log"
	"os"
	"time"
)

// CPU holds the full state of a Sharp LR35902 (DMG) core: the eight 8-bit
// registers, SP, PC, and the interrupt master enable flag (spec.md §3).
// It owns no memory of its own; all reads/writes go through the attached
// Bus (spec.md §4.2).
type CPU struct {
	regs reg8
	sp   uint16
	pc   uint16
	ime  bool

	// eiPending models the one-instruction EI delay: IME is promoted true
	// only after the instruction following EI has executed
	// (spec.md §9, decided in SPEC_FULL.md §8).
	eiPending bool

	bus Bus

	primary [256]func()

	Logger *log.Logger

	// halted records that a HALT has executed since the last Reset. It
	// does not suspend execution or gate interrupt dispatch; HALT and STOP
	// each log one not-implemented notice per occurrence.
	halted bool
}

// Power-on reset values (spec.md §3).
const (
	resetSP uint16 = 0xFFFE
	resetPC uint16 = 0x0100
)

// New creates a CPU wired to the given bus, with registers at their
// power-on reset values.
func New(bus Bus) *CPU {
	c := &CPU{bus: bus}
	c.Logger = newDefaultLogger()
	c.Reset()
	c.buildPrimaryTable()
	return c
}

// newDefaultLogger mirrors the teacher's per-run log file construction
// (nes.NewCpu6502), generalized from the NES register set to the DMG one.
func newDefaultLogger() *log.Logger {
	if err := os.MkdirAll("logs", 0755); err != nil {
		return log.New(os.Stderr, "", 0)
	}
	name := fmt.Sprintf("logs/dmgcpu-%s.log", time.Now().Format("20060102-150405"))
	f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0664)
	if err != nil {
		return log.New(os.Stderr, "", 0)
	}
	return log.New(f, "", 0)
}

// PC returns the current program counter, for callers such as a
// disassembler front end or CLI that need to report position without
// reaching into CPU internals.
func (c *CPU) PC() uint16 {
	return c.pc
}

// Reset restores power-on register values (spec.md §3). The attached bus
// and logger are left untouched.
func (c *CPU) Reset() {
	c.regs = reg8{}
	c.sp = resetSP
	c.pc = resetPC
	c.ime = false
	c.eiPending = false
	c.halted = false
}

// Tick executes exactly one instruction: fetch, decode/execute, then
// service interrupts (spec.md §4.7). It is synchronous and total modulo
// decode errors.
func (c *CPU) Tick() error {
	opcodePC := c.pc
	op := c.fetch8()

	// The EI delay promotes a pending enable after the instruction that
	// follows EI itself has run, not after EI's own fetch. A DI or RETI in
	// that instruction clears eiPending and so cancels the promotion.
	promoteEI := c.eiPending

	if err := c.execute(op, opcodePC); err != nil {
		return err
	}

	if promoteEI && c.eiPending {
		c.ime = true
		c.eiPending = false
	}

	c.handleInterrupts()
	return nil
}

// execute dispatches a fetched primary opcode, recursing into the CB page
// when op is the 0xCB prefix (spec.md §4.5).
func (c *CPU) execute(op byte, opcodePC uint16) error {
	if op == 0xCB {
		cbPC := c.pc
		op2 := c.fetch8()
		return c.executeCB(op2, cbPC)
	}

	fn := c.primary[op]
	if fn == nil {
		return newDecodeError(opcodePC, op, false)
	}
	fn()
	return nil
}
