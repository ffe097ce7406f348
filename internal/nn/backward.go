package nn

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// TrainConfig holds the gradient-descent parameters consumed by Backward.
type TrainConfig struct {
	// LearningRate scales every gradient step. Must be positive for the
	// network to learn.
	LearningRate float64

	// Momentum is the factor applied to the previous accumulator content
	// before the new gradient step is added. Zero disables momentum;
	// one turns the accumulator into a plain running sum, which is what
	// deferred mini-batch accumulation wants.
	Momentum float64

	// Policy selects when accumulated deltas are committed to the live
	// weights (default: Immediate).
	Policy UpdatePolicy
}

// Backward computes one backpropagation pass against the Z/A state left by
// the most recent Forward call, using the squared-error loss gradient.
//
// The error signal at the output layer is
//
//	δ[L-1] = (A[L-1] - y) ⊙ f'(Z[L-2])
//
// and is propagated backwards through the weight matrices for the hidden
// layers. Every call folds the scaled descent step into the accumulators,
//
//	DeltaWeights = Momentum*DeltaWeights - LearningRate*δ⊗A
//	DeltaBias    = Momentum*DeltaBias    - LearningRate*δ
//
// and the policy decides whether the accumulators are then added to the
// live Weights and Bias: always under Immediate, never under Deferred, and
// once (including every previously deferred contribution) under Flush.
//
// All inputs are validated before the first write, so no partial update is
// visible when an error is returned.
func Backward(structure Topology, target []float64, s *State, cfg TrainConfig, acts []Activation) error {
	if err := structure.Validate(); err != nil {
		return fmt.Errorf("Backward: %w", err)
	}
	if err := s.validate(structure); err != nil {
		return fmt.Errorf("Backward: %w", err)
	}
	if err := validateActivations(structure, acts); err != nil {
		return fmt.Errorf("Backward: %w", err)
	}
	if !cfg.Policy.Valid() {
		return fmt.Errorf("Backward: %v: %w", cfg.Policy, ErrInvalidUpdatePolicy)
	}
	l := structure.Layers()
	if len(target) != structure[l-1] {
		return fmt.Errorf("Backward: target has length %d, want %d: %w",
			len(target), structure[l-1], ErrShapeMismatch)
	}

	// delta[i] is the error signal of layer i; layer 0 carries none.
	delta := make([][]float64, l)

	out := s.A[l-1].Data()
	zOut := s.Z[l-2].Data()
	f := acts[l-2]
	d := make([]float64, structure[l-1])
	for j := range d {
		d[j] = (out[j] - target[j]) * f.Derivative(zOut[j])
	}
	delta[l-1] = d

	for i := l - 2; i >= 1; i-- {
		z := s.Z[i-1].Data()
		w := s.Weights[i]
		f := acts[i-1]
		next := delta[i+1]
		d := make([]float64, structure[i])
		for j := range d {
			d[j] = floats.Dot(next, w.Row(j)) * f.Derivative(z[j])
		}
		delta[i] = d
	}

	// Fold the descent step into the accumulators. The step carries the
	// negative sign so that committing is a plain addition.
	for i := 0; i < l-1; i++ {
		db := s.DeltaBias[i].Data()
		floats.Scale(cfg.Momentum, db)
		floats.AddScaled(db, -cfg.LearningRate, delta[i+1])

		dw := s.DeltaWeights[i]
		floats.Scale(cfg.Momentum, dw.Data())
		for k, ak := range s.A[i].Data() {
			floats.AddScaled(dw.Row(k), -cfg.LearningRate*ak, delta[i+1])
		}
	}

	if cfg.Policy == Deferred {
		return nil
	}
	for i := 0; i < l-1; i++ {
		floats.Add(s.Bias[i].Data(), s.DeltaBias[i].Data())
		floats.Add(s.Weights[i].Data(), s.DeltaWeights[i].Data())
	}
	return nil
}
