package cpu

const (
	NIBBLE_MASK  = 0x0F // Mask of the 4 value bits.
	MEMORY_SIZE  = 16   // Data memory cells.
	PROGRAM_SIZE = 16   // Program store words.
)

// Nibble is a 4-bit unsigned value, the computer's word size.
type Nibble uint8

// Wrap reduces a wider value modulo 16. All nibble arithmetic wraps;
// two's-complement subtraction relies on this wraparound.
func Wrap(value uint8) Nibble {
	return Nibble(value & NIBBLE_MASK)
}

// Bits splits a nibble into its 4 bits, least significant first. The bit
// ordering here is the one the ALU chain and the instruction encoding
// both assume.
func (n Nibble) Bits() (bits [4]bool) {
	for pos := range 4 {
		bits[pos] = (n>>pos)&1 != 0
	}

	return
}

// FromBits assembles a nibble from 4 bits, least significant first.
func FromBits(bits [4]bool) (n Nibble) {
	for pos, bit := range bits {
		if bit {
			n |= 1 << pos
		}
	}

	return
}
