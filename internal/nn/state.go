package nn

import (
	"fmt"

	"github.com/bpnn-ml/bpnn/internal/tensor"
)

// Topology is the ordered sequence of layer widths defining the network
// shape: Topology[0] is the input width, Topology[len-1] the output width.
// It must not change once training has begun.
type Topology []int

// Layers returns the number of layers, including input and output.
func (t Topology) Layers() int {
	return len(t)
}

// Validate checks that the topology describes at least an input and an
// output layer, each with a positive width.
func (t Topology) Validate() error {
	if len(t) < 2 {
		return fmt.Errorf("topology %v has %d layers, need at least 2: %w", t, len(t), ErrShapeMismatch)
	}
	for i, width := range t {
		if width <= 0 {
			return fmt.Errorf("topology %v: layer %d has width %d: %w", t, i, width, ErrShapeMismatch)
		}
	}
	return nil
}

// State is the complete container set of a network. It is owned by the
// host: Init shapes and randomizes it once, Forward overwrites A and Z,
// and Backward writes the accumulators and (policy permitting) the live
// weights and biases. The engine never allocates into it after Init and
// never retains references to it across calls.
//
// For a topology of L layers:
//   - A has L entries; A[i] is the post-activation output of layer i,
//     A[0] the external input, each a vector of width Topology[i].
//   - Z, Bias, DeltaBias, Weights and DeltaWeights have L-1 entries.
//   - Z[i] and Bias[i] are vectors of width Topology[i+1].
//   - Weights[i] is a (Topology[i], Topology[i+1]) matrix connecting
//     layer i to layer i+1; row k holds the fan-out of unit k.
//   - DeltaBias and DeltaWeights mirror Bias and Weights exactly.
type State struct {
	A            []*tensor.Dense
	Z            []*tensor.Dense
	Bias         []*tensor.Dense
	DeltaBias    []*tensor.Dense
	Weights      []*tensor.Dense
	DeltaWeights []*tensor.Dense
}

// ZeroDeltas clears the gradient accumulators. Hosts running deferred
// mini-batches call this after a Flush to start a new accumulation window.
func (s *State) ZeroDeltas() {
	for _, d := range s.DeltaBias {
		d.Fill(0)
	}
	for _, d := range s.DeltaWeights {
		d.Fill(0)
	}
}

// validate checks every container against the topology's invariants.
func (s *State) validate(structure Topology) error {
	l := structure.Layers()
	if len(s.A) != l {
		return fmt.Errorf("state has %d activation vectors for %d layers: %w", len(s.A), l, ErrShapeMismatch)
	}
	for name, set := range map[string][]*tensor.Dense{
		"Z": s.Z, "Bias": s.Bias, "DeltaBias": s.DeltaBias,
		"Weights": s.Weights, "DeltaWeights": s.DeltaWeights,
	} {
		if len(set) != l-1 {
			return fmt.Errorf("state has %d %s entries, want %d: %w", len(set), name, l-1, ErrShapeMismatch)
		}
	}

	for i, width := range structure {
		if s.A[i] == nil || !s.A[i].Shape().Equal(tensor.Shape{width}) {
			return fmt.Errorf("A[%d] is not a vector of width %d: %w", i, width, ErrShapeMismatch)
		}
	}
	for i := 0; i < l-1; i++ {
		out := tensor.Shape{structure[i+1]}
		mat := tensor.Shape{structure[i], structure[i+1]}
		if s.Z[i] == nil || !s.Z[i].Shape().Equal(out) {
			return fmt.Errorf("Z[%d] is not a vector of width %d: %w", i, structure[i+1], ErrShapeMismatch)
		}
		if s.Bias[i] == nil || !s.Bias[i].Shape().Equal(out) {
			return fmt.Errorf("Bias[%d] is not a vector of width %d: %w", i, structure[i+1], ErrShapeMismatch)
		}
		if s.DeltaBias[i] == nil || !s.DeltaBias[i].Shape().Equal(out) {
			return fmt.Errorf("DeltaBias[%d] is not a vector of width %d: %w", i, structure[i+1], ErrShapeMismatch)
		}
		if s.Weights[i] == nil || !s.Weights[i].Shape().Equal(mat) {
			return fmt.Errorf("Weights[%d] is not a %v matrix: %w", i, mat, ErrShapeMismatch)
		}
		if s.DeltaWeights[i] == nil || !s.DeltaWeights[i].Shape().Equal(mat) {
			return fmt.Errorf("DeltaWeights[%d] is not a %v matrix: %w", i, mat, ErrShapeMismatch)
		}
	}
	return nil
}

// validateActivations checks that acts carries one registered activation
// per non-input layer.
func validateActivations(structure Topology, acts []Activation) error {
	if len(acts) != structure.Layers()-1 {
		return fmt.Errorf("%d activations for %d non-input layers: %w",
			len(acts), structure.Layers()-1, ErrShapeMismatch)
	}
	for i, a := range acts {
		if !a.Valid() {
			return fmt.Errorf("layer %d: %v: %w", i+1, a, ErrUnknownActivation)
		}
	}
	return nil
}
