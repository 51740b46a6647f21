package cpu

import (
	"fmt"

	"github.com/pkg/errors"
)

// DecodeError reports an opcode, or CB-prefixed sub-opcode, outside the
// defined instruction maps (spec.md §7). It is fatal: the CPU does not
// attempt recovery, but returns the error to its caller rather than
// aborting the host process.
type DecodeError struct {
	PC     uint16
	Opcode byte
	CB     bool
}

func (e *DecodeError) Error() string {
	if e.CB {
		return fmt.Sprintf("cpu: unknown CB-prefixed opcode 0x%02X at PC=0x%04X", e.Opcode, e.PC)
	}
	return fmt.Sprintf("cpu: unknown opcode 0x%02X at PC=0x%04X", e.Opcode, e.PC)
}

func newDecodeError(pc uint16, op byte, cb bool) error {
	return errors.WithStack(&DecodeError{PC: pc, Opcode: op, CB: cb})
}
