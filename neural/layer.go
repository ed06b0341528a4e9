// Package neural implements the feed-forward networks that back the
// trained logic gates.
//
// A Network is an ordered stack of Layers, each an affine transform plus
// an elementwise activation. Training is strictly sequential online
// gradient descent: one forward and one backward pass per sample, in
// dataset order, with no shuffling and no batching. Given a fixed seed
// for weight initialization, training is deterministic.
package neural

import (
	"github.com/ezrec/nibblenet/matrix"
)

// Default training configuration. The epoch default is the count the
// shipped gate tables converge under; tests that are not about
// truth-table exactness use far fewer.
const (
	DefaultEpochs       = 10_000
	DefaultLearningRate = 0.5
)

// forwardCache is the single-slot state captured by Forward and consumed
// by the immediately following Backward.
type forwardCache struct {
	input *matrix.Matrix // 1 x in
	pre   *matrix.Matrix // 1 x out, pre-activation
}

// Layer is one affine transform (weights + bias) followed by an activation.
type Layer struct {
	weights *matrix.Matrix // in x out
	bias    *matrix.Matrix // 1 x out
	act     matrix.Activation

	cache *forwardCache
}

// NewLayer creates a layer from explicit weight and bias matrices.
// weights must be in x out and bias 1 x out.
func NewLayer(weights, bias *matrix.Matrix, act matrix.Activation) (layer *Layer, err error) {
	if bias.Rows() != 1 || bias.Cols() != weights.Cols() {
		err = matrix.ErrDimension
		return
	}

	layer = &Layer{
		weights: weights,
		bias:    bias,
		act:     act,
	}

	return
}

// InSize returns the layer input width.
func (layer *Layer) InSize() int { return layer.weights.Rows() }

// OutSize returns the layer output width.
func (layer *Layer) OutSize() int { return layer.weights.Cols() }

// Forward computes activation(input * weights + bias) for a 1 x in row
// vector, and caches the pass for the next Backward call. Any previous
// cached pass is discarded.
func (layer *Layer) Forward(input *matrix.Matrix) (out *matrix.Matrix, err error) {
	layer.cache = nil

	if input.Rows() != 1 {
		err = matrix.ErrDimension
		return
	}

	pre, err := input.Mul(layer.weights)
	if err != nil {
		return
	}
	pre, err = pre.Add(layer.bias)
	if err != nil {
		return
	}

	layer.cache = &forwardCache{input: input, pre: pre}

	out = pre.Apply(layer.act.Activate)
	return
}

// Backward consumes the cached forward pass, updates weights and bias in
// place by gradient descent, and returns the gradient with respect to
// the layer input. grad is dLoss/dOutput, 1 x out.
//
// Calling Backward without a preceding Forward returns ErrNoForward.
func (layer *Layer) Backward(grad *matrix.Matrix, rate float64) (gradIn *matrix.Matrix, err error) {
	if layer.cache == nil {
		err = ErrNoForward
		return
	}
	cache := layer.cache
	layer.cache = nil

	// delta = dLoss/dPre = grad (.) activation'(pre)
	delta, err := grad.MulElem(cache.pre.Apply(layer.act.Derivative))
	if err != nil {
		return
	}

	// dLoss/dWeights = input^T * delta
	gradW, err := cache.input.T().Mul(delta)
	if err != nil {
		return
	}

	// dLoss/dInput = delta * weights^T, propagated to the previous layer.
	gradIn, err = delta.Mul(layer.weights.T())
	if err != nil {
		return
	}

	layer.weights, err = layer.weights.Sub(gradW.Scale(rate))
	if err != nil {
		return
	}
	layer.bias, err = layer.bias.Sub(delta.Scale(rate))

	return
}
