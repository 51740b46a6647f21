package mmu

import (
	"testing"

	"github.com/huntmark/dmg-cpu/cpu"
)

func TestReadWriteRoundTrip(t *testing.T) {
	m := New()
	m.Write(0x1234, 0x42)
	if got := m.Read(0x1234); got != 0x42 {
		t.Errorf("Read(0x1234) = %#02X, want 0x42", got)
	}
}

func TestLoadAtTruncatesAtEndOfAddressSpace(t *testing.T) {
	m := New()
	data := []byte{0x01, 0x02, 0x03}
	m.LoadAt(0xFFFE, data)

	if got := m.Read(0xFFFE); got != 0x01 {
		t.Errorf("Read(0xFFFE) = %#02X, want 0x01", got)
	}
	if got := m.Read(0xFFFF); got != 0x02 {
		t.Errorf("Read(0xFFFF) = %#02X, want 0x02", got)
	}
}

func TestRequestInterruptSetsIFBit(t *testing.T) {
	m := New()
	m.RequestInterrupt(cpu.InterruptVBlank)
	m.RequestInterrupt(cpu.InterruptTimer)

	if got := m.Read(0xFF0F); got != byte(cpu.InterruptVBlank|cpu.InterruptTimer) {
		t.Errorf("IF = %#02X, want %#02X", got, byte(cpu.InterruptVBlank|cpu.InterruptTimer))
	}
}

func TestMMUSatisfiesCPUBus(t *testing.T) {
	m := New()
	c := cpu.New(m)
	_ = c
}
