package gate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const testSeed = 1234

type pairCase struct {
	a, b bool
	out  bool
}

func checkPairGate(t *testing.T, g *Gate, err error, truth func(a, b bool) bool) {
	t.Helper()
	assert := assert.New(t)

	assert.NoError(err)

	for _, a := range []bool{false, true} {
		for _, b := range []bool{false, true} {
			out, err := g.Call(a, b)
			assert.NoError(err)
			assert.Equal(truth(a, b), out, "%v(%v, %v)", g.Name(), a, b)
		}
	}
}

func TestAnd(t *testing.T) {
	g, err := AND(testSeed, 0)
	checkPairGate(t, g, err, func(a, b bool) bool { return a && b })
}

func TestOr(t *testing.T) {
	g, err := OR(testSeed, 0)
	checkPairGate(t, g, err, func(a, b bool) bool { return a || b })
}

func TestXor(t *testing.T) {
	g, err := XOR(testSeed, 0)
	checkPairGate(t, g, err, func(a, b bool) bool { return a != b })
}

func TestNand(t *testing.T) {
	g, err := NAND(testSeed, 0)
	checkPairGate(t, g, err, func(a, b bool) bool { return !(a && b) })
}

func TestNor(t *testing.T) {
	g, err := NOR(testSeed, 0)
	checkPairGate(t, g, err, func(a, b bool) bool { return !(a || b) })
}

func TestXnor(t *testing.T) {
	g, err := XNOR(testSeed, 0)
	checkPairGate(t, g, err, func(a, b bool) bool { return a == b })
}

func TestNot(t *testing.T) {
	assert := assert.New(t)

	g, err := NOT(testSeed, 0)
	assert.NoError(err)
	assert.Equal(1, g.Arity())

	for _, a := range []bool{false, true} {
		out, err := g.Call(a)
		assert.NoError(err)
		assert.Equal(!a, out, "NOT(%v)", a)
	}
}

func TestArity(t *testing.T) {
	assert := assert.New(t)

	g, err := AND(testSeed, 100)
	assert.NoError(err)

	_, err = g.Call(true)
	assert.ErrorIs(err, ErrArity(""))

	_, err = g.Call(true, false, true)
	assert.ErrorIs(err, ErrArity(""))

	not, err := NOT(testSeed, 100)
	assert.NoError(err)
	_, err = not.Call(true, false)
	assert.ErrorIs(err, ErrArity(""))
}

func TestGateInterchangeable(t *testing.T) {
	assert := assert.New(t)

	// Two independent trainings of the same table decode identically.
	first, err := XOR(testSeed, 0)
	assert.NoError(err)
	second, err := XOR(testSeed+99, 0)
	assert.NoError(err)

	for _, a := range []bool{false, true} {
		for _, b := range []bool{false, true} {
			one, err := first.Call(a, b)
			assert.NoError(err)
			two, err := second.Call(a, b)
			assert.NoError(err)
			assert.Equal(one, two)
		}
	}
}
