package cpu

import (
	"fmt"
	"iter"
	"maps"
)

// Defines for the instruction set, exposed to assembler front ends as
// predefined equates.
var _cpu_defines = map[string]string{
	"OP_NOP":   fmt.Sprintf("%#x", uint8(OP_NOP)),
	"OP_LOAD":  fmt.Sprintf("%#x", uint8(OP_LOAD)),
	"OP_STORE": fmt.Sprintf("%#x", uint8(OP_STORE)),
	"OP_ADD":   fmt.Sprintf("%#x", uint8(OP_ADD)),
	"OP_SUB":   fmt.Sprintf("%#x", uint8(OP_SUB)),
	"OP_AND":   fmt.Sprintf("%#x", uint8(OP_AND)),
	"OP_OR":    fmt.Sprintf("%#x", uint8(OP_OR)),
	"OP_XOR":   fmt.Sprintf("%#x", uint8(OP_XOR)),
	"OP_JUMP":  fmt.Sprintf("%#x", uint8(OP_JUMP)),
	"OP_JZ":    fmt.Sprintf("%#x", uint8(OP_JZ)),
	"OP_HALT":  fmt.Sprintf("%#x", uint8(OP_HALT)),
}

// Defines returns the instruction set constants.
func Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}
