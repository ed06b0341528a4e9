// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"log"
)

// CPU is the 4-bit stored-program machine. It owns its registers, data
// memory, program store, and ALU exclusively; instances share nothing.
type CPU struct {
	Verbose bool // Set to enable verbose execution tracing.

	Registers Registers
	Memory    Memory
	Alu       *ALU

	program [PROGRAM_SIZE]uint8
	halted  bool

	Cycles int // Executed instruction counter.
}

// NewCPU creates a machine around an already-trained ALU.
func NewCPU(alu *ALU) *CPU {
	return &CPU{Alu: alu}
}

// Reset returns the machine to power-on state: registers and flags
// clear, memory zeroed, running, cycle counter zeroed. The program store
// is kept.
func (cpu *CPU) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Registers.Reset()
	cpu.Memory.Clear()
	cpu.halted = false
	cpu.Cycles = 0
}

// Halted reports whether the machine has stopped.
func (cpu *CPU) Halted() bool {
	return cpu.halted
}

// LoadProgram writes encoded instruction words into the program store
// starting at address 0. The remainder of the store is zeroed (NOP).
func (cpu *CPU) LoadProgram(words []uint8) (err error) {
	if len(words) > len(cpu.program) {
		err = ErrProgramSize
		return
	}

	clear(cpu.program[:])
	copy(cpu.program[:], words)
	return
}

// ProgramWord returns the program store word at addr, for inspection.
func (cpu *CPU) ProgramWord(addr uint8) (word uint8, err error) {
	if int(addr) >= len(cpu.program) {
		err = ErrAddressRange
		return
	}

	word = cpu.program[addr]
	return
}

// opAlu maps the arithmetic and bitwise opcodes to ALU operations.
var opAlu = map[Opcode]ALUOp{
	OP_ADD: ALU_OP_ADD,
	OP_SUB: ALU_OP_SUB,
	OP_AND: ALU_OP_AND,
	OP_OR:  ALU_OP_OR,
	OP_XOR: ALU_OP_XOR,
}

// Step runs one fetch-decode-execute cycle. An illegal instruction or an
// execution fault halts the machine and is returned; stepping a halted
// machine returns ErrHalted.
func (cpu *CPU) Step() (err error) {
	if cpu.halted {
		err = ErrHalted
		return
	}

	// Fetch
	pc := cpu.Registers.PC.Read()
	word := cpu.program[pc]
	cpu.Registers.IR = word

	// Decode
	op, operand, err := Decode(word)
	if err != nil {
		cpu.halted = true
		return
	}

	if cpu.Verbose {
		if op.HasOperand() {
			log.Printf("cpu: %01X: %v 0x%X", pc, op, operand)
		} else {
			log.Printf("cpu: %01X: %v", pc, op)
		}
	}

	// Execute
	advance := true
	switch op {
	case OP_NOP:
		// pass
	case OP_LOAD:
		var value Nibble
		value, err = cpu.Memory.Read(operand)
		if err != nil {
			break
		}
		cpu.Registers.Accumulator.Load(value)
		cpu.Registers.UpdateFlags(value, false)
	case OP_STORE:
		err = cpu.Memory.Write(operand, cpu.Registers.Accumulator.Read())
	case OP_ADD, OP_SUB, OP_AND, OP_OR, OP_XOR:
		var b Nibble
		b, err = cpu.Memory.Read(operand)
		if err != nil {
			break
		}

		var result ALUResult
		result, err = cpu.Alu.Compute(cpu.Registers.Accumulator.Read(), b, opAlu[op])
		if err != nil {
			break
		}

		cpu.Registers.Accumulator.Load(result.Result)
		cpu.Registers.UpdateFlags(result.Result, result.Carry)
	case OP_JUMP:
		cpu.Registers.PC.Load(Nibble(operand))
		advance = false
	case OP_JZ:
		if cpu.Registers.Zero {
			cpu.Registers.PC.Load(Nibble(operand))
			advance = false
		}
	case OP_HALT:
		cpu.halted = true
		advance = false
	}
	if err != nil {
		cpu.halted = true
		return
	}

	// Advance
	if advance {
		cpu.Registers.PC.Increment()
	}

	cpu.Cycles += 1
	return
}

// Run executes until the machine halts. Programs that never reach HALT
// never return; use RunLimit to bound execution.
func (cpu *CPU) Run() (err error) {
	return cpu.RunLimit(0)
}

// RunLimit executes until the machine halts or limit instructions have
// run. A limit of 0 or less means no limit.
func (cpu *CPU) RunLimit(limit int) (err error) {
	for steps := 0; !cpu.halted; steps++ {
		if limit > 0 && steps >= limit {
			err = ErrCycleLimit
			return
		}

		err = cpu.Step()
		if err != nil {
			return
		}
	}

	return
}
