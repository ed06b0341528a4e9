// Package cpu implements the 4-bit stored-program computer and its assembler.
//
// The processor is a fetch-decode-execute machine with an accumulator, a
// program counter, an instruction register, and Zero/Carry flags. Its ALU
// performs every bit operation through trained neural gates: addition
// ripples through four full adders, subtraction feeds the two's complement
// through the same chain, and the bitwise operations apply per-bit gate
// banks. Program store (16 eight-bit instruction words) and data memory
// (16 four-bit words) are separate address spaces sharing the 0-15 range.
//
// The assembler provides the textual instruction format, supporting
// comments, labels, equates, and compile-time expression evaluation.
package cpu
