package emulator

import (
	"github.com/ezrec/nibblenet/cpu"
)

// Demo is a canned program with its initial memory image.
type Demo struct {
	Name   string
	Source string
	Data   []cpu.Nibble
}

// Demos are the shipped demonstration programs. All of them halt.
var Demos = []Demo{
	{
		Name: "add",
		Source: `; add two numbers: Memory[2] = Memory[0] + Memory[1]
	LOAD 0
	ADD 1
	STORE 2
	HALT
`,
		Data: []cpu.Nibble{3, 5},
	},
	{
		Name: "countdown",
		Source: `; count the accumulator down to zero
	LOAD 0     ; counter
loop:	JZ done
	SUB 1      ; step
	JUMP loop
done:	HALT
`,
		Data: []cpu.Nibble{9, 1},
	},
	{
		Name: "bitmask",
		Source: `; Memory[3] = (Memory[0] | Memory[1]) ^ Memory[2]
	LOAD 0
	OR 1
	XOR 2
	STORE 3
	HALT
`,
		Data: []cpu.Nibble{0b1100, 0b0011, 0b1010},
	},
}

// FindDemo looks a demo up by name. Returns nil when not found.
func FindDemo(name string) *Demo {
	for n := range Demos {
		if Demos[n].Name == name {
			return &Demos[n]
		}
	}

	return nil
}
