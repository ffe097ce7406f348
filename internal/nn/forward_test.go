package nn

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bpnn-ml/bpnn/internal/tensor"
)

// newState is a test helper for a freshly initialized seeded state.
func newState(t *testing.T, structure Topology) *State {
	t.Helper()
	s, err := Init(structure, InitConfig{Rand: rand.New(rand.NewSource(1))})
	require.NoError(t, err)
	return s
}

func TestForward_Identity(t *testing.T) {
	// Identity weights, zero bias and a linear activation must reproduce
	// the input exactly.
	structure := Topology{3, 3}
	s := newState(t, structure)
	copy(s.Weights[0].Data(), tensor.Eye(3).Data())
	s.Bias[0].Fill(0)

	input := []float64{0.5, -1.25, 2}
	out, err := Forward(structure, input, s, []Activation{Linear})
	require.NoError(t, err)
	assert.Equal(t, input, out)
}

func TestForward_SingleLayerSigmoid(t *testing.T) {
	structure := Topology{2, 1}
	s := newState(t, structure)
	copy(s.Weights[0].Data(), []float64{0.4, -0.6})
	copy(s.Bias[0].Data(), []float64{0.1})

	input := []float64{1.0, 0.5}
	out, err := Forward(structure, input, s, []Activation{Sigmoid})
	require.NoError(t, err)

	z := 0.1 + 1.0*0.4 + 0.5*(-0.6)
	want := 1.0 / (1.0 + math.Exp(-z))
	assert.InDelta(t, want, out[0], 1e-12)
	assert.InDelta(t, z, s.Z[0].At(0), 1e-12)
}

func TestForward_TwoLayerLinear(t *testing.T) {
	// With linear activations the network is a composition of affine
	// maps, so the output can be checked exactly.
	structure := Topology{2, 2, 1}
	s := newState(t, structure)
	copy(s.Weights[0].Data(), []float64{
		1, 2, // fan-out of input 0
		3, 4, // fan-out of input 1
	})
	copy(s.Bias[0].Data(), []float64{1, -1})
	copy(s.Weights[1].Data(), []float64{2, -1})
	copy(s.Bias[1].Data(), []float64{0.5})

	acts := []Activation{Linear, Linear}
	out, err := Forward(structure, []float64{1, 1}, s, acts)
	require.NoError(t, err)

	// Hidden: (1+3+1, 2+4-1) = (5, 5); output: 0.5 + 2*5 - 1*5 = 5.5.
	assert.Equal(t, []float64{5, 5}, s.A[1].Data())
	assert.Equal(t, 5.5, out[0])
}

func TestForward_StatePopulated(t *testing.T) {
	// A[l] must equal f(Z[l-1]) for every layer after a pass.
	structure := Topology{3, 4, 2}
	s := newState(t, structure)
	acts := []Activation{Tanh, Sigmoid}

	_, err := Forward(structure, []float64{0.2, -0.4, 0.9}, s, acts)
	require.NoError(t, err)

	for l := 1; l < structure.Layers(); l++ {
		z := s.Z[l-1].Data()
		a := s.A[l].Data()
		for j := range z {
			assert.InDelta(t, acts[l-1].Apply(z[j]), a[j], 1e-12, "layer %d unit %d", l, j)
		}
	}
}

func TestForward_ReturnsLiveOutput(t *testing.T) {
	structure := Topology{2, 2}
	s := newState(t, structure)
	out, err := Forward(structure, []float64{1, 0}, s, []Activation{Sigmoid})
	require.NoError(t, err)
	assert.Equal(t, s.A[1].Data(), out)
}

func TestForward_Errors(t *testing.T) {
	structure := Topology{2, 2, 1}
	acts := []Activation{Sigmoid, Sigmoid}

	t.Run("input length", func(t *testing.T) {
		s := newState(t, structure)
		_, err := Forward(structure, []float64{1}, s, acts)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrShapeMismatch), "got %v", err)
	})

	t.Run("activation count", func(t *testing.T) {
		s := newState(t, structure)
		_, err := Forward(structure, []float64{1, 0}, s, []Activation{Sigmoid})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrShapeMismatch), "got %v", err)
	})

	t.Run("unregistered activation", func(t *testing.T) {
		s := newState(t, structure)
		_, err := Forward(structure, []float64{1, 0}, s, []Activation{Sigmoid, Activation(42)})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnknownActivation), "got %v", err)
	})

	t.Run("malformed container", func(t *testing.T) {
		s := newState(t, structure)
		s.Weights[1] = tensor.Zeros(tensor.Shape{3, 3}) // wrong shape
		_, err := Forward(structure, []float64{1, 0}, s, acts)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrShapeMismatch), "got %v", err)
	})

	t.Run("no mutation on error", func(t *testing.T) {
		s := newState(t, structure)
		before := s.A[0].Clone()
		_, err := Forward(structure, []float64{1, 2, 3}, s, acts)
		require.Error(t, err)
		assert.Equal(t, before.Data(), s.A[0].Data())
	})
}
