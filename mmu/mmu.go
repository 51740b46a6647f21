// Package mmu provides a reference memory-bus implementation for the DMG
// CPU core. spec.md keeps the MMU external to the CPU core (§1, §6); this
// package is the one concrete bus a complete repository ships to run the
// core against, the same way the teacher ships nes.Bus alongside
// nes.Cpu6502 even though a "CPU core" spec would treat the bus as
// external (SPEC_FULL.md §4).
package mmu

import "github.com/huntmark/dmg-cpu/cpu"

// Memory-mapped interrupt control register addresses, mirrored from the
// cpu package for documentation; mmu treats them as ordinary RAM cells,
// since the CPU itself is responsible for masking bits 5..7 on read
// (spec.md §4.6, §6).
const (
	addrIF uint16 = 0xFF0F
	addrIE uint16 = 0xFFFF
)

// MMU is a flat 64KB memory bus, generalizing the teacher's
// `Ram [64*1024]byte` (nes/bus.go) from a banked NES address map to a
// single unbanked DMG-sized image. It satisfies cpu.Bus.
type MMU struct {
	ram [65536]byte
}

var _ cpu.Bus = (*MMU)(nil)

// New returns an MMU with all memory zeroed.
func New() *MMU {
	return &MMU{}
}

// Read returns the byte at addr. Every address is backed by RAM; this
// reference implementation does not model ROM banking, VRAM access
// timing, or unmapped regions reading 0xFF (spec.md §4.2 leaves those to
// the MMU's discretion, and a real cartridge mapper is explicitly out of
// scope, spec.md §1).
func (m *MMU) Read(addr uint16) byte {
	return m.ram[addr]
}

// Write stores v at addr.
func (m *MMU) Write(addr uint16, v byte) {
	m.ram[addr] = v
}

// LoadAt copies data into memory starting at addr, truncating at the end
// of the address space. Mirrors the teacher's Bus.LoadBytes (nes/bus.go),
// generalized to an arbitrary load address instead of a fixed cartridge
// offset.
func (m *MMU) LoadAt(addr uint16, data []byte) {
	copy(m.ram[addr:], data)
}

// RequestInterrupt sets the given bit in IF, as a peripheral would when
// raising one of the five interrupt sources spec.md §4.6 names.
func (m *MMU) RequestInterrupt(bit cpu.InterruptBit) {
	m.ram[addrIF] |= byte(bit)
}
