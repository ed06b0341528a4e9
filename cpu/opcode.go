package cpu

// Opcode is the 4-bit instruction-type selector, stored in the high
// nibble of an encoded instruction word.
type Opcode uint8

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_NOP   = Opcode(0x0) // NOP
	OP_LOAD  = Opcode(0x1) // LOAD
	OP_STORE = Opcode(0x2) // STORE
	OP_ADD   = Opcode(0x3) // ADD
	OP_SUB   = Opcode(0x4) // SUB
	OP_AND   = Opcode(0x5) // AND
	OP_OR    = Opcode(0x6) // OR
	OP_XOR   = Opcode(0x7) // XOR
	OP_JUMP  = Opcode(0x8) // JUMP
	OP_JZ    = Opcode(0x9) // JZ
	OP_HALT  = Opcode(0xF) // HALT
)

// Valid reports whether the opcode is assigned. 0xA-0xE are reserved;
// decoding one is an illegal instruction.
func (op Opcode) Valid() bool {
	return op <= OP_JZ || op == OP_HALT
}

// HasOperand reports whether the opcode carries a 4-bit operand in the
// low nibble of its word.
func (op Opcode) HasOperand() bool {
	switch op {
	case OP_NOP, OP_HALT:
		return false
	}

	return true
}

// Encode packs an opcode and operand into one instruction word:
// high nibble opcode, low nibble operand (0 when unused).
func Encode(op Opcode, operand uint8) uint8 {
	if !op.HasOperand() {
		operand = 0
	}

	return uint8(op)<<4 | (operand & NIBBLE_MASK)
}

// Decode splits an instruction word into opcode and operand.
func Decode(word uint8) (op Opcode, operand uint8, err error) {
	op = Opcode(word >> 4)
	operand = word & NIBBLE_MASK

	if !op.Valid() {
		err = ErrIllegalInstruction(word)
		return
	}

	return
}
