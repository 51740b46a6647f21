package cpu

// memBus is a flat 64KB RAM bus used only by this package's tests. The
// reference embedder-facing implementation lives in the mmu package.
type memBus struct {
	ram [65536]byte
}

func (m *memBus) Read(addr uint16) byte     { return m.ram[addr] }
func (m *memBus) Write(addr uint16, v byte) { m.ram[addr] = v }

func newTestCPU(rom []byte) (*CPU, *memBus) {
	bus := &memBus{}
	copy(bus.ram[0x0100:], rom)
	c := New(bus)
	return c, bus
}
