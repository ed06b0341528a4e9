package cpu

import (
	"github.com/ezrec/nibblenet/gate"
)

// ALUOp selects the ALU operation.
type ALUOp int

//go:generate go tool stringer -linecomment -type=ALUOp
const (
	ALU_OP_ADD = ALUOp(iota) // add
	ALU_OP_SUB               // sub
	ALU_OP_AND               // and
	ALU_OP_OR                // or
	ALU_OP_XOR               // xor
)

// ALUResult is the outcome of one ALU operation.
type ALUResult struct {
	Result Nibble
	Carry  bool // Carry out (ADD) or inverted borrow (SUB); cleared for bitwise ops.
	Zero   bool // Result is zero.
}

// ALU is the 4-bit arithmetic logic unit. Every bit operation goes
// through trained gates: a ripple chain of four full adders for
// arithmetic, and per-bit gate banks for AND/OR/XOR. Subtraction inverts
// the subtrahend through NOT gates and reuses the adder chain with
// carry-in 1.
type ALU struct {
	adders [4]*gate.FullAdder // bit 0 (LSB) .. bit 3 (MSB)
	and    [4]*gate.Gate
	or     [4]*gate.Gate
	xor    [4]*gate.Gate
	not    [4]*gate.Gate
}

// NewALU trains every gate in the unit. Sub-gates derive their seeds
// from seed; an epochs value of 0 or less selects the default.
func NewALU(seed int64, epochs int) (alu *ALU, err error) {
	alu = &ALU{}

	// A full adder consumes 5 gate seeds; space the chains well apart.
	for bit := range 4 {
		alu.adders[bit], err = gate.NewFullAdder(seed+int64(bit)*8, epochs)
		if err != nil {
			return
		}
	}

	banks := [](struct {
		gates *[4]*gate.Gate
		train func(int64, int) (*gate.Gate, error)
	}){
		{&alu.and, gate.AND},
		{&alu.or, gate.OR},
		{&alu.xor, gate.XOR},
		{&alu.not, gate.NOT},
	}

	bankSeed := seed + 64
	for _, bank := range banks {
		for bit := range 4 {
			bank.gates[bit], err = bank.train(bankSeed, epochs)
			if err != nil {
				return
			}
			bankSeed++
		}
	}

	return
}

// Compute performs op on two nibbles and derives the flags.
func (alu *ALU) Compute(a, b Nibble, op ALUOp) (result ALUResult, err error) {
	a = Wrap(uint8(a))
	b = Wrap(uint8(b))

	switch op {
	case ALU_OP_ADD:
		result.Result, result.Carry, err = alu.add(a, b, false)
	case ALU_OP_SUB:
		// a - b = a + ^b + 1. The chain carry-out is the inverted
		// borrow: set when no borrow occurred.
		var inverted Nibble
		inverted, err = alu.invert(b)
		if err != nil {
			return
		}
		result.Result, result.Carry, err = alu.add(a, inverted, true)
	case ALU_OP_AND:
		result.Result, err = alu.bitwise(&alu.and, a, b)
	case ALU_OP_OR:
		result.Result, err = alu.bitwise(&alu.or, a, b)
	case ALU_OP_XOR:
		result.Result, err = alu.bitwise(&alu.xor, a, b)
	default:
		err = ErrAluOp(op)
	}
	if err != nil {
		return
	}

	result.Zero = result.Result == 0
	return
}

// add ripples a + b + cin through the full adder chain, LSB first.
func (alu *ALU) add(a, b Nibble, cin bool) (value Nibble, carry bool, err error) {
	aBits := a.Bits()
	bBits := b.Bits()

	var sum [4]bool
	carry = cin
	for bit := range 4 {
		sum[bit], carry, err = alu.adders[bit].Add(aBits[bit], bBits[bit], carry)
		if err != nil {
			return
		}
	}

	value = FromBits(sum)
	return
}

// invert flips every bit of b through the NOT gate bank.
func (alu *ALU) invert(b Nibble) (value Nibble, err error) {
	bBits := b.Bits()

	var out [4]bool
	for bit := range 4 {
		out[bit], err = alu.not[bit].Call(bBits[bit])
		if err != nil {
			return
		}
	}

	value = FromBits(out)
	return
}

// bitwise applies a gate bank to each of the 4 bit pairs.
func (alu *ALU) bitwise(bank *[4]*gate.Gate, a, b Nibble) (value Nibble, err error) {
	aBits := a.Bits()
	bBits := b.Bits()

	var out [4]bool
	for bit := range 4 {
		out[bit], err = bank[bit].Call(aBits[bit], bBits[bit])
		if err != nil {
			return
		}
	}

	value = FromBits(out)
	return
}
