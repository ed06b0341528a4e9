package cpu

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// testProgram assembles source and loads it into a fresh CPU sharing the
// package test ALU.
func testProgram(t *testing.T, source string) *CPU {
	t.Helper()
	assert := assert.New(t)

	asm := &Assembler{}
	prog, err := asm.Assemble(strings.NewReader(source))
	assert.NoError(err)

	cpu := NewCPU(testALU(t))
	assert.NoError(cpu.LoadProgram(prog.Words()))

	return cpu
}

func TestCpuAddScenario(t *testing.T) {
	assert := assert.New(t)

	cpu := testProgram(t, `
		LOAD 0   ; a
		ADD 1    ; a + b
		STORE 2  ; result
		HALT
	`)

	assert.NoError(cpu.Memory.Write(0, 3))
	assert.NoError(cpu.Memory.Write(1, 5))

	assert.NoError(cpu.Run())
	assert.True(cpu.Halted())

	value, err := cpu.Memory.Read(2)
	assert.NoError(err)
	assert.Equal(Nibble(8), value)
	assert.Equal(Nibble(8), cpu.Registers.Accumulator.Read())
	assert.False(cpu.Registers.Zero)
	assert.False(cpu.Registers.Carry)
	assert.Equal(4, cpu.Cycles)
}

func TestCpuJumpScenario(t *testing.T) {
	assert := assert.New(t)

	cpu := testProgram(t, `
		LOAD 0
		JZ 4
		SUB 1
		JUMP 1
		HALT
	`)

	// Memory[0] is zero: the JZ is taken immediately, no SUB executes.
	assert.NoError(cpu.Run())
	assert.True(cpu.Halted())
	assert.Equal(Nibble(0), cpu.Registers.Accumulator.Read())
	assert.Equal(3, cpu.Cycles)
}

func TestCpuCountdownLoop(t *testing.T) {
	assert := assert.New(t)

	cpu := testProgram(t, `
		LOAD 0     ; counter
	loop:	JZ done
		SUB 1      ; decrement by Memory[1]
		JUMP loop
	done:	HALT
	`)

	assert.NoError(cpu.Memory.Write(0, 3))
	assert.NoError(cpu.Memory.Write(1, 1))

	assert.NoError(cpu.Run())
	assert.True(cpu.Halted())
	assert.Equal(Nibble(0), cpu.Registers.Accumulator.Read())
	assert.True(cpu.Registers.Zero)
}

func TestCpuAddCarry(t *testing.T) {
	assert := assert.New(t)

	cpu := testProgram(t, `
		LOAD 0
		ADD 1
		HALT
	`)

	assert.NoError(cpu.Memory.Write(0, 15))
	assert.NoError(cpu.Memory.Write(1, 1))

	assert.NoError(cpu.Run())
	assert.Equal(Nibble(0), cpu.Registers.Accumulator.Read())
	assert.True(cpu.Registers.Carry)
	assert.True(cpu.Registers.Zero)
}

func TestCpuSubBorrow(t *testing.T) {
	assert := assert.New(t)

	cpu := testProgram(t, `
		LOAD 0
		SUB 1
		HALT
	`)

	assert.NoError(cpu.Memory.Write(0, 5))
	assert.NoError(cpu.Memory.Write(1, 7))

	assert.NoError(cpu.Run())

	// 5 - 7 wraps to 14; the cleared carry reports the borrow.
	assert.Equal(Nibble(14), cpu.Registers.Accumulator.Read())
	assert.False(cpu.Registers.Carry)
}

func TestCpuBitwise(t *testing.T) {
	assert := assert.New(t)

	cpu := testProgram(t, `
		LOAD 0
		AND 1
		STORE 2
		LOAD 0
		OR 1
		STORE 3
		LOAD 0
		XOR 1
		STORE 4
		HALT
	`)

	assert.NoError(cpu.Memory.Write(0, 0b1100))
	assert.NoError(cpu.Memory.Write(1, 0b1010))

	assert.NoError(cpu.Run())

	value, _ := cpu.Memory.Read(2)
	assert.Equal(Nibble(0b1000), value)
	value, _ = cpu.Memory.Read(3)
	assert.Equal(Nibble(0b1110), value)
	value, _ = cpu.Memory.Read(4)
	assert.Equal(Nibble(0b0110), value)
}

func TestCpuIllegalInstruction(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCPU(testALU(t))

	for _, opcode := range []uint8{0xA, 0xB, 0xC, 0xD, 0xE} {
		cpu.Reset()
		assert.NoError(cpu.LoadProgram([]uint8{opcode << 4}))

		err := cpu.Run()
		assert.ErrorIs(err, ErrIllegalInstruction(0))
		assert.True(cpu.Halted())
	}
}

func TestCpuStepAfterHalt(t *testing.T) {
	assert := assert.New(t)

	cpu := testProgram(t, `HALT`)

	assert.NoError(cpu.Step())
	assert.True(cpu.Halted())

	err := cpu.Step()
	assert.ErrorIs(err, ErrHalted)
}

func TestCpuRunLimit(t *testing.T) {
	assert := assert.New(t)

	cpu := testProgram(t, `JUMP 0`)

	err := cpu.RunLimit(100)
	assert.ErrorIs(err, ErrCycleLimit)
	assert.False(cpu.Halted())
}

func TestCpuNopAndPcWrap(t *testing.T) {
	assert := assert.New(t)

	// An empty program store is all NOPs; the PC wraps through all 16
	// addresses under a cycle limit.
	cpu := NewCPU(testALU(t))
	assert.NoError(cpu.LoadProgram(nil))

	err := cpu.RunLimit(20)
	assert.ErrorIs(err, ErrCycleLimit)
	assert.Equal(Nibble(20%16), cpu.Registers.PC.Read())
}

func TestCpuLoadProgramSize(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCPU(testALU(t))

	err := cpu.LoadProgram(make([]uint8, PROGRAM_SIZE+1))
	assert.ErrorIs(err, ErrProgramSize)

	assert.NoError(cpu.LoadProgram(make([]uint8, PROGRAM_SIZE)))
}

func TestCpuReset(t *testing.T) {
	assert := assert.New(t)

	cpu := testProgram(t, `
		LOAD 0
		ADD 1
		HALT
	`)

	assert.NoError(cpu.Memory.Write(0, 2))
	assert.NoError(cpu.Memory.Write(1, 3))
	assert.NoError(cpu.Run())
	assert.True(cpu.Halted())

	cpu.Reset()
	assert.False(cpu.Halted())
	assert.Equal(0, cpu.Cycles)
	assert.Equal(Nibble(0), cpu.Registers.Accumulator.Read())

	// Program survives reset, memory does not.
	word, err := cpu.ProgramWord(0)
	assert.NoError(err)
	assert.Equal(Encode(OP_LOAD, 0), word)

	value, err := cpu.Memory.Read(0)
	assert.NoError(err)
	assert.Equal(Nibble(0), value)
}
