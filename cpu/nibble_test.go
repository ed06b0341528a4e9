package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(Nibble(0), Wrap(16))
	assert.Equal(Nibble(15), Wrap(15))
	assert.Equal(Nibble(1), Wrap(17))
	assert.Equal(Nibble(9), Wrap(0xF9))
}

func TestBits(t *testing.T) {
	assert := assert.New(t)

	// Bit 0 is least significant.
	assert.Equal([4]bool{true, false, true, false}, Nibble(5).Bits())
	assert.Equal([4]bool{false, false, false, true}, Nibble(8).Bits())

	for value := range Nibble(16) {
		assert.Equal(value, FromBits(value.Bits()))
	}
}
