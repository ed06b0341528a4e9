package neural

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/nibblenet/matrix"
)

var xorSamples = []Sample{
	{Input: []float64{0, 0}, Target: []float64{0}},
	{Input: []float64{0, 1}, Target: []float64{1}},
	{Input: []float64{1, 0}, Target: []float64{1}},
	{Input: []float64{1, 1}, Target: []float64{0}},
}

func TestNew(t *testing.T) {
	assert := assert.New(t)

	nn, err := New(1, Spec{In: 2, Out: 4}, Spec{In: 4, Out: 1})
	assert.NoError(err)
	assert.Equal(2, nn.InSize())
	assert.Equal(1, nn.OutSize())

	_, err = New(1)
	assert.ErrorIs(err, ErrLayerChain)

	_, err = New(1, Spec{In: 2, Out: 4}, Spec{In: 3, Out: 1})
	assert.ErrorIs(err, ErrLayerChain)

	_, err = New(1, Spec{In: 0, Out: 4})
	assert.ErrorIs(err, ErrLayerChain)
}

func TestDeterministicInit(t *testing.T) {
	assert := assert.New(t)

	specs := []Spec{{In: 2, Out: 4}, {In: 4, Out: 1}}

	a, err := New(42, specs...)
	assert.NoError(err)
	b, err := New(42, specs...)
	assert.NoError(err)
	c, err := New(43, specs...)
	assert.NoError(err)

	same, err := a.Predict([]float64{1, 0})
	assert.NoError(err)
	again, err := b.Predict([]float64{1, 0})
	assert.NoError(err)
	other, err := c.Predict([]float64{1, 0})
	assert.NoError(err)

	assert.Equal(same, again)
	assert.NotEqual(same, other)
}

func TestPredictShape(t *testing.T) {
	assert := assert.New(t)

	nn, err := New(1, Spec{In: 2, Out: 1})
	assert.NoError(err)

	out, err := nn.Predict([]float64{0, 1})
	assert.NoError(err)
	assert.Len(out, 1)

	_, err = nn.Predict([]float64{0, 1, 2})
	assert.ErrorIs(err, matrix.ErrDimension)
}

func TestPredictDoesNotLearn(t *testing.T) {
	assert := assert.New(t)

	nn, err := New(7, Spec{In: 2, Out: 4}, Spec{In: 4, Out: 1})
	assert.NoError(err)

	before, err := nn.Predict([]float64{1, 1})
	assert.NoError(err)

	for range 100 {
		_, err = nn.Predict([]float64{0, 1})
		assert.NoError(err)
	}

	after, err := nn.Predict([]float64{1, 1})
	assert.NoError(err)
	assert.Equal(before, after)
}

func TestTrainXor(t *testing.T) {
	assert := assert.New(t)

	nn, err := New(3, Spec{In: 2, Out: 8}, Spec{In: 8, Out: 1})
	assert.NoError(err)

	err = nn.Train(xorSamples, DefaultEpochs, DefaultLearningRate)
	assert.NoError(err)

	for _, sample := range xorSamples {
		out, err := nn.Predict(sample.Input)
		assert.NoError(err)

		decoded := out[0] >= 0.5
		assert.Equal(sample.Target[0] >= 0.5, decoded,
			"xor(%v) = %v", sample.Input, out[0])
	}
}

func TestTrainTanhHidden(t *testing.T) {
	assert := assert.New(t)

	// Tanh hidden layer, sigmoid output.
	nn, err := New(5,
		Spec{In: 2, Out: 8, Act: matrix.Tanh{}},
		Spec{In: 8, Out: 1, Act: matrix.Sigmoid{}},
	)
	assert.NoError(err)

	err = nn.Train(xorSamples, DefaultEpochs, 0.1)
	assert.NoError(err)

	for _, sample := range xorSamples {
		out, err := nn.Predict(sample.Input)
		assert.NoError(err)
		assert.Equal(sample.Target[0] >= 0.5, out[0] >= 0.5,
			"xor(%v) = %v", sample.Input, out[0])
	}
}

func TestTrainBadSample(t *testing.T) {
	assert := assert.New(t)

	nn, err := New(1, Spec{In: 2, Out: 1})
	assert.NoError(err)

	err = nn.Train([]Sample{{Input: []float64{1}, Target: []float64{0}}}, 1, 0.5)
	assert.ErrorIs(err, matrix.ErrDimension)
}
