// Command dmgcpu is a headless runner for the DMG CPU core, generalizing
// the teacher's main.go (load cartridge, reset, run) from a pixelgl
// windowed NES front end to a front-end-less loop suited to a CPU-core
// module (spec.md §1 Non-goals exclude video/audio output).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/huntmark/dmg-cpu/cpu"
	"github.com/huntmark/dmg-cpu/mmu"
)

var (
	flagLoadAddr uint16
	flagTicks    int
	flagDisasm   bool
	flagDisasmLo uint16
	flagDisasmHi uint16
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "dmgcpu <image>",
		Short: "Run a flat binary image against the DMG CPU core",
		Args:  cobra.ExactArgs(1),
		RunE:  runImage,
	}

	root.Flags().Uint16Var(&flagLoadAddr, "load-addr", 0x0100, "address to load the image at")
	root.Flags().IntVar(&flagTicks, "ticks", 1000, "number of instructions to execute")
	root.Flags().BoolVar(&flagDisasm, "disasm", false, "print a disassembly instead of running")
	root.Flags().Uint16Var(&flagDisasmLo, "disasm-lo", 0x0000, "disassembly range start")
	root.Flags().Uint16Var(&flagDisasmHi, "disasm-hi", 0xFFFF, "disassembly range end")

	return root
}

func runImage(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading image: %w", err)
	}

	bus := mmu.New()
	bus.LoadAt(flagLoadAddr, data)

	c := cpu.New(bus)
	c.Reset()

	if flagDisasm {
		lines := c.Disassemble(flagDisasmLo, flagDisasmHi)
		for addr := uint32(flagDisasmLo); addr <= uint32(flagDisasmHi); addr++ {
			if line, ok := lines[uint16(addr)]; ok {
				fmt.Println(line)
			}
		}
		return nil
	}

	fmt.Printf("Running %d ticks from $%04X...\n", flagTicks, c.PC())
	for i := 0; i < flagTicks; i++ {
		if err := c.Tick(); err != nil {
			return fmt.Errorf("tick %d: %w", i, err)
		}
	}
	fmt.Printf("Halted after %d ticks at $%04X\n", flagTicks, c.PC())
	return nil
}
