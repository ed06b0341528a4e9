package cpu

// Register is a mutable 4-bit cell.
type Register struct {
	value Nibble
}

// Load replaces the register content.
func (reg *Register) Load(value Nibble) {
	reg.value = Wrap(uint8(value))
}

// Read returns the register content.
func (reg *Register) Read() Nibble {
	return reg.value
}

// Increment advances the register, wrapping modulo 16.
func (reg *Register) Increment() {
	reg.value = Wrap(uint8(reg.value) + 1)
}

// Registers is the CPU register file.
type Registers struct {
	Accumulator Register // ALU operand and result.
	PC          Register // Program counter, auto-incrementing.
	IR          uint8    // Raw fetched instruction word.

	Zero  bool // Last ALU result was zero.
	Carry bool // Carry/borrow out of the last ALU operation.
}

// Reset returns all registers and flags to power-on state.
func (regs *Registers) Reset() {
	regs.Accumulator.Load(0)
	regs.PC.Load(0)
	regs.IR = 0
	regs.Zero = false
	regs.Carry = false
}

// UpdateFlags records the flag outcome of an ALU operation.
func (regs *Registers) UpdateFlags(result Nibble, carry bool) {
	regs.Zero = result == 0
	regs.Carry = carry
}
