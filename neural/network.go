package neural

import (
	"math/rand"

	"github.com/ezrec/nibblenet/matrix"
)

// Spec describes one layer of a network: input width, output width, and
// activation. A nil Act means Sigmoid.
type Spec struct {
	In  int
	Out int
	Act matrix.Activation
}

// Sample is one labeled training example.
type Sample struct {
	Input  []float64
	Target []float64
}

// Network is an ordered stack of layers. The architecture is fixed at
// construction; only the weights change afterwards.
type Network struct {
	layers []*Layer
}

// New builds a network from layer specs. Adjacent specs must chain
// (each Out equal to the next In). Weights and biases are initialized to
// small values from a rand source seeded with seed, so construction with
// the same seed is reproducible.
func New(seed int64, specs ...Spec) (nn *Network, err error) {
	if len(specs) == 0 {
		err = ErrLayerChain
		return
	}

	rng := rand.New(rand.NewSource(seed))

	layers := make([]*Layer, 0, len(specs))
	for n, spec := range specs {
		if spec.In < 1 || spec.Out < 1 {
			err = ErrLayerChain
			return
		}
		if n > 0 && specs[n-1].Out != spec.In {
			err = ErrLayerChain
			return
		}

		act := spec.Act
		if act == nil {
			act = matrix.Sigmoid{}
		}

		weights := randomMatrix(rng, spec.In, spec.Out)
		bias := randomMatrix(rng, 1, spec.Out)

		var layer *Layer
		layer, err = NewLayer(weights, bias, act)
		if err != nil {
			return
		}
		layers = append(layers, layer)
	}

	nn = &Network{layers: layers}
	return
}

// randomMatrix draws rows x cols values uniformly from [-1, 1).
func randomMatrix(rng *rand.Rand, rows, cols int) *matrix.Matrix {
	data := make([]float64, rows*cols)
	for n := range data {
		data[n] = rng.Float64()*2 - 1
	}

	m, _ := matrix.New(rows, cols, data)
	return m
}

// InSize returns the network input width.
func (nn *Network) InSize() int { return nn.layers[0].InSize() }

// OutSize returns the network output width.
func (nn *Network) OutSize() int { return nn.layers[len(nn.layers)-1].OutSize() }

// forward runs input through every layer, leaving each layer's cache
// primed for a backward pass.
func (nn *Network) forward(input *matrix.Matrix) (out *matrix.Matrix, err error) {
	out = input
	for _, layer := range nn.layers {
		out, err = layer.Forward(out)
		if err != nil {
			return
		}
	}

	return
}

// Train runs epochs of online gradient descent over samples, in order.
// The loss is squared error; its gradient (prediction - target) is
// propagated through the layers in reverse.
func (nn *Network) Train(samples []Sample, epochs int, rate float64) (err error) {
	for range epochs {
		for _, sample := range samples {
			var input, target *matrix.Matrix
			input, err = matrix.New(1, len(sample.Input), sample.Input)
			if err != nil {
				return
			}
			target, err = matrix.New(1, len(sample.Target), sample.Target)
			if err != nil {
				return
			}

			var out *matrix.Matrix
			out, err = nn.forward(input)
			if err != nil {
				return
			}

			var grad *matrix.Matrix
			grad, err = out.Sub(target)
			if err != nil {
				return
			}

			for n := len(nn.layers) - 1; n >= 0; n-- {
				grad, err = nn.layers[n].Backward(grad, rate)
				if err != nil {
					return
				}
			}
		}
	}

	return
}

// Predict runs a single forward pass. Weights are not mutated.
func (nn *Network) Predict(input []float64) (out []float64, err error) {
	m, err := matrix.New(1, len(input), input)
	if err != nil {
		return
	}

	result, err := nn.forward(m)
	if err != nil {
		return
	}

	out = result.Row(0)
	return
}
