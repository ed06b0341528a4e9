package cpu

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	aluOnce sync.Once
	aluUnit *ALU
	aluErr  error
)

// testALU trains one shared ALU for the whole package test run.
func testALU(t *testing.T) *ALU {
	t.Helper()

	aluOnce.Do(func() {
		aluUnit, aluErr = NewALU(7, 0)
	})
	if aluErr != nil {
		t.Fatalf("alu training: %v", aluErr)
	}

	return aluUnit
}

func TestAluAdd(t *testing.T) {
	assert := assert.New(t)
	alu := testALU(t)

	for a := range 16 {
		for b := range 16 {
			result, err := alu.Compute(Nibble(a), Nibble(b), ALU_OP_ADD)
			assert.NoError(err)

			expected := Nibble((a + b) % 16)
			assert.Equal(expected, result.Result, "%d + %d", a, b)
			assert.Equal(a+b >= 16, result.Carry, "carry of %d + %d", a, b)
			assert.Equal(expected == 0, result.Zero, "zero of %d + %d", a, b)
		}
	}
}

func TestAluSub(t *testing.T) {
	assert := assert.New(t)
	alu := testALU(t)

	for a := range 16 {
		for b := range 16 {
			result, err := alu.Compute(Nibble(a), Nibble(b), ALU_OP_SUB)
			assert.NoError(err)

			expected := Nibble(((a - b) % 16 + 16) % 16)
			assert.Equal(expected, result.Result, "%d - %d", a, b)
			// Inverted borrow: set when no borrow occurred.
			assert.Equal(a >= b, result.Carry, "carry of %d - %d", a, b)
			assert.Equal(expected == 0, result.Zero, "zero of %d - %d", a, b)
		}
	}
}

func TestAluBitwise(t *testing.T) {
	assert := assert.New(t)
	alu := testALU(t)

	table := [](struct {
		op    ALUOp
		truth func(a, b int) int
	}){
		{ALU_OP_AND, func(a, b int) int { return a & b }},
		{ALU_OP_OR, func(a, b int) int { return a | b }},
		{ALU_OP_XOR, func(a, b int) int { return a ^ b }},
	}

	for _, entry := range table {
		for a := range 16 {
			for b := range 16 {
				result, err := alu.Compute(Nibble(a), Nibble(b), entry.op)
				assert.NoError(err)

				expected := Nibble(entry.truth(a, b))
				assert.Equal(expected, result.Result, "%d %v %d", a, entry.op, b)
				assert.False(result.Carry, "carry of %d %v %d", a, entry.op, b)
				assert.Equal(expected == 0, result.Zero, "zero of %d %v %d", a, entry.op, b)
			}
		}
	}
}

func TestAluWrapsInputs(t *testing.T) {
	assert := assert.New(t)
	alu := testALU(t)

	// Wider inputs are masked to 4 bits first.
	result, err := alu.Compute(Nibble(0x12), Nibble(0x23), ALU_OP_ADD)
	assert.NoError(err)
	assert.Equal(Nibble(5), result.Result)
}

func TestAluUnknownOp(t *testing.T) {
	assert := assert.New(t)
	alu := testALU(t)

	_, err := alu.Compute(1, 2, ALUOp(99))
	assert.ErrorIs(err, ErrAluOp(0))
}
