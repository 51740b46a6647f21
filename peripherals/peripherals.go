// Package peripherals provides minimal interrupt-request sources for the
// four DMG subsystems spec.md §1 says the CPU core treats only as sources
// of interrupt requests via IF: the PPU (V-Blank/STAT), the timer, the
// serial port, and the joypad. None of these model real pixel output,
// cycle-exact timing, or byte-level register layout (spec.md §1
// Non-goals); they exist to give the interrupt controller something to
// dispatch in integration tests (SPEC_FULL.md §4).
package peripherals

import "github.com/huntmark/dmg-cpu/cpu"

// interruptRequester is the narrow capability these stubs need from the
// bus: raising an IF bit. mmu.MMU satisfies this.
type interruptRequester interface {
	RequestInterrupt(bit cpu.InterruptBit)
}

// Video is a minimal scanline counter adapted from the teacher's
// Ppu.clock() (nes/ppu.go), which is itself a clock-driven stub with no
// rendering. It raises V-Blank once per frame and, when enabled with
// SetSTATOnLine, STAT on every scanline boundary, rather than modeling
// pixel fetch timing.
type Video struct {
	bus             interruptRequester
	dot             int
	line            int
	statOnLine      bool
}

const (
	dotsPerLine  = 456
	linesPerFrame = 154
	vblankLine    = 144
)

// NewVideo creates a video stub attached to bus.
func NewVideo(bus interruptRequester) *Video {
	return &Video{bus: bus}
}

// Step advances the video stub by one dot-clock tick, raising V-Blank at
// the start of line 144 and STAT at the start of every line when enabled.
func (v *Video) Step() {
	v.dot++
	if v.dot < dotsPerLine {
		return
	}
	v.dot = 0
	v.line++
	if v.line >= linesPerFrame {
		v.line = 0
	}

	if v.line == vblankLine {
		v.bus.RequestInterrupt(cpu.InterruptVBlank)
	}
	if v.statOnLine {
		v.bus.RequestInterrupt(cpu.InterruptSTAT)
	}
}

// SetSTATOnLine enables or disables raising STAT on every line boundary,
// standing in for the real LYC/mode-select logic the DMG STAT register
// exposes.
func (v *Video) SetSTATOnLine(enabled bool) {
	v.statOnLine = enabled
}

// Timer is a free-running counter that raises the Timer interrupt on
// overflow, grounded in the same Clock()-driven counter idiom as
// Ppu.clock(), generalized to an 8-bit overflow instead of a scanline
// count. It does not model TAC's selectable input clock or TMA reload.
type Timer struct {
	bus     interruptRequester
	divisor int
	period  int
	counter byte
}

// NewTimer creates a timer stub whose 8-bit counter advances once every
// period Step calls, so the Timer interrupt is raised every 256*period
// Step calls. A period of zero or less is treated as 256.
func NewTimer(bus interruptRequester, period int) *Timer {
	if period <= 0 {
		period = 256
	}
	return &Timer{bus: bus, period: period}
}

// Step advances the timer by one tick, raising the Timer interrupt on
// 8-bit counter overflow.
func (t *Timer) Step() {
	t.divisor++
	if t.divisor < t.period {
		return
	}
	t.divisor = 0
	t.counter++
	if t.counter == 0 {
		t.bus.RequestInterrupt(cpu.InterruptTimer)
	}
}

// Serial models only the transfer-complete notice: a single Send call
// immediately raises the Serial interrupt, standing in for the
// bit-by-bit shift register a real implementation would clock out.
type Serial struct {
	bus interruptRequester
}

// NewSerial creates a serial stub attached to bus.
func NewSerial(bus interruptRequester) *Serial {
	return &Serial{bus: bus}
}

// Send raises the Serial interrupt, as if a byte had just finished
// shifting out.
func (s *Serial) Send(byte) {
	s.bus.RequestInterrupt(cpu.InterruptSerial)
}

// Joypad button identifiers, adapted from the teacher's Controller
// button-state bitset (nes/controller.go) minus its pixelgl key-binding
// layer, which has no platform-independent equivalent here.
type Button int

const (
	ButtonA Button = iota
	ButtonB
	ButtonSelect
	ButtonStart
	ButtonUp
	ButtonDown
	ButtonLeft
	ButtonRight
)

// Joypad tracks button press state and raises the Joypad interrupt on a
// release-to-press transition, matching the real P10-P13-go-low trigger
// (spec.md §4.6) without modeling the P14/P15 column-select registers.
type Joypad struct {
	bus   interruptRequester
	state [8]bool
}

// NewJoypad creates a joypad stub attached to bus.
func NewJoypad(bus interruptRequester) *Joypad {
	return &Joypad{bus: bus}
}

// Press marks a button down, raising the Joypad interrupt on the
// transition from released to pressed.
func (j *Joypad) Press(b Button) {
	if !j.state[b] {
		j.bus.RequestInterrupt(cpu.InterruptJoypad)
	}
	j.state[b] = true
}

// Release marks a button up.
func (j *Joypad) Release(b Button) {
	j.state[b] = false
}

// Pressed reports whether the given button is currently held.
func (j *Joypad) Pressed(b Button) bool {
	return j.state[b]
}
