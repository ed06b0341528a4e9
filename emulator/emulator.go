// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator wraps a trained machine: it trains the gate set once,
// then assembles and runs programs on it.
package emulator

import (
	"fmt"
	"io"
	"iter"
	"maps"

	"github.com/ezrec/nibblenet/cpu"
	"github.com/ezrec/nibblenet/internal"
)

const (
	DEFAULT_SEED        = 1    // Default gate training seed.
	DEFAULT_CYCLE_LIMIT = 1000 // Default bound on program execution.
)

var _emulator_defines = map[string]string{
	"CYCLE_LIMIT": fmt.Sprintf("%v", DEFAULT_CYCLE_LIMIT),
}

// Machine is one trained computer: a CPU whose ALU gates were converged
// at construction, plus an assembler primed with the machine's defines.
type Machine struct {
	Verbose bool // If set, enables verbose logging.

	Cpu *cpu.CPU       // The machine under emulation.
	Asm *cpu.Assembler // Assembler for this machine.

	// CycleLimit bounds every run; programs are expected to halt well
	// before it. 0 or less disables the bound.
	CycleLimit int
}

// NewMachine trains the gate set for a new machine. seed fixes the gate
// weight initialization; an epochs value of 0 or less selects the
// training default.
func NewMachine(seed int64, epochs int) (m *Machine, err error) {
	alu, err := cpu.NewALU(seed, epochs)
	if err != nil {
		return
	}

	m = &Machine{
		Cpu:        cpu.NewCPU(alu),
		Asm:        &cpu.Assembler{},
		CycleLimit: DEFAULT_CYCLE_LIMIT,
	}

	for attr, val := range m.Defines() {
		m.Asm.Predefine(attr, val)
	}

	return
}

// Defines returns an iterator over all of the defines.
func (m *Machine) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		cpu.Defines(),
	)
}

// Result is the observable machine state after a run.
type Result struct {
	Accumulator cpu.Nibble
	PC          cpu.Nibble
	Zero        bool
	Carry       bool
	Memory      [cpu.MEMORY_SIZE]cpu.Nibble
	Cycles      int
	Halted      bool
}

// snapshot captures the current machine state.
func (m *Machine) snapshot() Result {
	return Result{
		Accumulator: m.Cpu.Registers.Accumulator.Read(),
		PC:          m.Cpu.Registers.PC.Read(),
		Zero:        m.Cpu.Registers.Zero,
		Carry:       m.Cpu.Registers.Carry,
		Memory:      m.Cpu.Memory.Image(),
		Cycles:      m.Cpu.Cycles,
		Halted:      m.Cpu.Halted(),
	}
}

// RunSource assembles source, loads it into a reset machine, writes data
// into memory from address 0 up, and runs to halt (or the cycle limit).
// The result reflects the machine state even when err is not nil.
func (m *Machine) RunSource(source io.Reader, data ...cpu.Nibble) (result Result, err error) {
	m.Asm.Verbose = m.Verbose
	m.Cpu.Verbose = m.Verbose

	prog, err := m.Asm.Assemble(source)
	if err != nil {
		return
	}

	m.Cpu.Reset()
	err = m.Cpu.LoadProgram(prog.Words())
	if err != nil {
		return
	}

	for addr, value := range data {
		err = m.Cpu.Memory.Write(uint8(addr), value)
		if err != nil {
			return
		}
	}

	err = m.Cpu.RunLimit(m.CycleLimit)
	result = m.snapshot()
	return
}
