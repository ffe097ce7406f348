package nn

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Forward computes one forward propagation pass.
//
// It copies input into A[0] and then, for every layer l from 1 on,
// computes the pre-activation state
//
//	Z[l-1] = Bias[l-1] + A[l-1] · Weights[l-1]
//
// and the post-activation state A[l] = f_l(Z[l-1]). The returned slice is
// the live output vector A[L-1]; the intermediate Z and A stay populated
// for a following Backward call.
//
// All shapes are validated before any container is written, so a failing
// call leaves the state untouched.
func Forward(structure Topology, input []float64, s *State, acts []Activation) ([]float64, error) {
	if err := structure.Validate(); err != nil {
		return nil, fmt.Errorf("Forward: %w", err)
	}
	if err := s.validate(structure); err != nil {
		return nil, fmt.Errorf("Forward: %w", err)
	}
	if err := validateActivations(structure, acts); err != nil {
		return nil, fmt.Errorf("Forward: %w", err)
	}
	if len(input) != structure[0] {
		return nil, fmt.Errorf("Forward: input has length %d, want %d: %w",
			len(input), structure[0], ErrShapeMismatch)
	}

	copy(s.A[0].Data(), input)
	for l := 1; l < structure.Layers(); l++ {
		z := s.Z[l-1].Data()
		copy(z, s.Bias[l-1].Data())

		// Accumulate the weighted sums row by row: weight row k is the
		// contiguous fan-out of unit k in layer l-1.
		w := s.Weights[l-1]
		for k, ak := range s.A[l-1].Data() {
			floats.AddScaled(z, ak, w.Row(k))
		}

		f := acts[l-1]
		out := s.A[l].Data()
		for j, zj := range z {
			out[j] = f.Apply(zj)
		}
	}
	return s.A[structure.Layers()-1].Data(), nil
}
