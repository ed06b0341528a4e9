// Package gate provides boolean logic gates realized by converged
// feed-forward networks, and the half/full adders composed from them.
//
// A gate's identity is its truth table, not its network shape: two
// independent trainings of the same table are interchangeable. Gates are
// immutable once trained; composition never retrains them.
package gate

import (
	"github.com/ezrec/nibblenet/neural"
)

// Threshold decodes a continuous network output back to a boolean.
const Threshold = 0.5

// Hidden layer widths. Two-input tables (XOR in particular) need a few
// redundant hidden units to escape flat regions under online descent.
const (
	HIDDEN_PAIR = 8
	HIDDEN_UNIT = 4
)

// Gate is a boolean function of one or two bits backed by a converged
// network.
type Gate struct {
	name  string
	arity int
	net   *neural.Network
}

// Name returns the gate name ("AND", "XOR", ...).
func (g *Gate) Name() string { return g.name }

// Arity returns the number of boolean inputs.
func (g *Gate) Arity() int { return g.arity }

// Call encodes bits as 0/1 floats, runs the network, and decodes the
// scalar output against Threshold.
func (g *Gate) Call(bits ...bool) (out bool, err error) {
	if len(bits) != g.arity {
		err = ErrArity(g.name)
		return
	}

	input := make([]float64, len(bits))
	for n, bit := range bits {
		if bit {
			input[n] = 1
		}
	}

	raw, err := g.net.Predict(input)
	if err != nil {
		return
	}

	out = raw[0] >= Threshold
	return
}

// train builds and converges a gate network on its full truth table.
// An epochs value of 0 or less selects neural.DefaultEpochs.
func train(name string, arity int, table []neural.Sample, seed int64, epochs int) (g *Gate, err error) {
	if epochs <= 0 {
		epochs = neural.DefaultEpochs
	}

	hidden := HIDDEN_PAIR
	if arity == 1 {
		hidden = HIDDEN_UNIT
	}

	net, err := neural.New(seed,
		neural.Spec{In: arity, Out: hidden},
		neural.Spec{In: hidden, Out: 1},
	)
	if err != nil {
		return
	}

	err = net.Train(table, epochs, neural.DefaultLearningRate)
	if err != nil {
		return
	}

	g = &Gate{name: name, arity: arity, net: net}
	return
}

// pairTable builds the four-row truth table for a two-input gate from
// its outputs in (00, 01, 10, 11) order.
func pairTable(outputs [4]float64) []neural.Sample {
	return []neural.Sample{
		{Input: []float64{0, 0}, Target: []float64{outputs[0]}},
		{Input: []float64{0, 1}, Target: []float64{outputs[1]}},
		{Input: []float64{1, 0}, Target: []float64{outputs[2]}},
		{Input: []float64{1, 1}, Target: []float64{outputs[3]}},
	}
}

// AND trains a two-input AND gate.
func AND(seed int64, epochs int) (*Gate, error) {
	return train("AND", 2, pairTable([4]float64{0, 0, 0, 1}), seed, epochs)
}

// OR trains a two-input OR gate.
func OR(seed int64, epochs int) (*Gate, error) {
	return train("OR", 2, pairTable([4]float64{0, 1, 1, 1}), seed, epochs)
}

// XOR trains a two-input XOR gate.
func XOR(seed int64, epochs int) (*Gate, error) {
	return train("XOR", 2, pairTable([4]float64{0, 1, 1, 0}), seed, epochs)
}

// NAND trains a two-input NAND gate.
func NAND(seed int64, epochs int) (*Gate, error) {
	return train("NAND", 2, pairTable([4]float64{1, 1, 1, 0}), seed, epochs)
}

// NOR trains a two-input NOR gate.
func NOR(seed int64, epochs int) (*Gate, error) {
	return train("NOR", 2, pairTable([4]float64{1, 0, 0, 0}), seed, epochs)
}

// XNOR trains a two-input XNOR gate.
func XNOR(seed int64, epochs int) (*Gate, error) {
	return train("XNOR", 2, pairTable([4]float64{1, 0, 0, 1}), seed, epochs)
}

// NOT trains a single-input NOT gate.
func NOT(seed int64, epochs int) (*Gate, error) {
	table := []neural.Sample{
		{Input: []float64{0}, Target: []float64{1}},
		{Input: []float64{1}, Target: []float64{0}},
	}
	return train("NOT", 1, table, seed, epochs)
}
