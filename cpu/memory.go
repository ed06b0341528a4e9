package cpu

// Memory is the fixed 16-cell data store, addressed 0-15.
type Memory struct {
	cells [MEMORY_SIZE]Nibble
}

// Read returns the nibble at addr.
func (mem *Memory) Read(addr uint8) (value Nibble, err error) {
	if int(addr) >= len(mem.cells) {
		err = ErrAddressRange
		return
	}

	value = mem.cells[addr]
	return
}

// Write stores a nibble at addr.
func (mem *Memory) Write(addr uint8, value Nibble) (err error) {
	if int(addr) >= len(mem.cells) {
		err = ErrAddressRange
		return
	}

	mem.cells[addr] = Wrap(uint8(value))
	return
}

// Clear zeroes every cell.
func (mem *Memory) Clear() {
	clear(mem.cells[:])
}

// Image returns a copy of all cells, for inspection.
func (mem *Memory) Image() [MEMORY_SIZE]Nibble {
	return mem.cells
}
