package gate

// HalfAdder computes the one-bit sum and carry of two bits:
// sum = a XOR b, carry = a AND b. Purely combinational over its gates.
type HalfAdder struct {
	xor *Gate
	and *Gate
}

// NewHalfAdder trains the XOR and AND gates of a half adder.
// Sub-gates derive their seeds from seed, so construction is reproducible.
func NewHalfAdder(seed int64, epochs int) (ha *HalfAdder, err error) {
	xor, err := XOR(seed, epochs)
	if err != nil {
		return
	}
	and, err := AND(seed+1, epochs)
	if err != nil {
		return
	}

	ha = &HalfAdder{xor: xor, and: and}
	return
}

// Add computes (sum, carry) for two bits.
func (ha *HalfAdder) Add(a, b bool) (sum, carry bool, err error) {
	sum, err = ha.xor.Call(a, b)
	if err != nil {
		return
	}
	carry, err = ha.and.Call(a, b)
	return
}

// FullAdder computes the one-bit sum and carry of two bits plus a carry
// in, built from two half adders in series and an OR gate combining the
// partial carries.
type FullAdder struct {
	first  *HalfAdder // a + b
	second *HalfAdder // (a XOR b) + carry in
	or     *Gate      // carry out
}

// NewFullAdder trains the five gates of a full adder.
func NewFullAdder(seed int64, epochs int) (fa *FullAdder, err error) {
	first, err := NewHalfAdder(seed, epochs)
	if err != nil {
		return
	}
	second, err := NewHalfAdder(seed+2, epochs)
	if err != nil {
		return
	}
	or, err := OR(seed+4, epochs)
	if err != nil {
		return
	}

	fa = &FullAdder{first: first, second: second, or: or}
	return
}

// Add computes (sum, carry out) for a + b + cin.
func (fa *FullAdder) Add(a, b, cin bool) (sum, carry bool, err error) {
	s1, c1, err := fa.first.Add(a, b)
	if err != nil {
		return
	}
	sum, c2, err := fa.second.Add(s1, cin)
	if err != nil {
		return
	}

	carry, err = fa.or.Call(c1, c2)
	return
}
