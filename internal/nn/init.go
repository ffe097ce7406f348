package nn

import (
	"math/rand"
	"time"

	"github.com/bpnn-ml/bpnn/internal/tensor"
)

// Init defaults.
const (
	DefaultAmplitude = 1.0
	DefaultFinesse   = 1000
)

// InitConfig holds configuration for Init.
type InitConfig struct {
	// Amplitude is the exclusive upper bound of the random initial
	// weights and biases (default: 1.0).
	Amplitude float64

	// Finesse is the number of distinct levels the random values are
	// discretized into (default: 1000).
	Finesse int

	// Rand is the random source for parameter initialization. Hosts
	// wanting reproducible runs seed it themselves; when nil, Init uses
	// a private time-seeded generator, never the process-global one.
	Rand *rand.Rand
}

// Init shapes and randomizes the full container set for the given
// topology.
//
// Bias and weight entries are drawn from a discretized uniform
// distribution on [0, Amplitude) with Finesse levels:
//
//	value = Amplitude * (draw mod Finesse) / Finesse
//
// A and Z are zero-filled, as are the DeltaBias/DeltaWeights
// accumulators. The returned State is owned by the caller.
//
// Example:
//
//	rng := rand.New(rand.NewSource(42))
//	state, err := nn.Init(nn.Topology{2, 2, 1}, nn.InitConfig{Rand: rng})
func Init(structure Topology, cfg InitConfig) (*State, error) {
	if err := structure.Validate(); err != nil {
		return nil, err
	}

	// Set defaults
	if cfg.Amplitude == 0 {
		cfg.Amplitude = DefaultAmplitude
	}
	if cfg.Finesse <= 0 {
		cfg.Finesse = DefaultFinesse
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec // weight init is not security-critical
	}

	l := structure.Layers()
	s := &State{
		A:            make([]*tensor.Dense, l),
		Z:            make([]*tensor.Dense, l-1),
		Bias:         make([]*tensor.Dense, l-1),
		DeltaBias:    make([]*tensor.Dense, l-1),
		Weights:      make([]*tensor.Dense, l-1),
		DeltaWeights: make([]*tensor.Dense, l-1),
	}

	draw := func() float64 {
		return cfg.Amplitude * float64(cfg.Rand.Intn(cfg.Finesse)) / float64(cfg.Finesse)
	}

	for i, width := range structure {
		s.A[i] = tensor.Zeros(tensor.Shape{width})
		if i == 0 {
			continue
		}

		out := tensor.Shape{width}
		mat := tensor.Shape{structure[i-1], width}

		s.Z[i-1] = tensor.Zeros(out)
		s.DeltaBias[i-1] = tensor.Zeros(out)
		s.DeltaWeights[i-1] = tensor.Zeros(mat)

		s.Bias[i-1] = tensor.Zeros(out)
		for j := range s.Bias[i-1].Data() {
			s.Bias[i-1].Data()[j] = draw()
		}
		s.Weights[i-1] = tensor.Zeros(mat)
		for j := range s.Weights[i-1].Data() {
			s.Weights[i-1].Data()[j] = draw()
		}
	}
	return s, nil
}
