package nn

import "fmt"

// Network bundles a topology with its state, per-layer activations and
// training parameters behind a small train/predict surface. Hosts that
// want to own the containers directly use Init, Forward and Backward
// instead; both surfaces operate on the same State.
type Network struct {
	structure Topology
	acts      []Activation
	cfg       TrainConfig
	state     *State
}

// NetworkConfig holds configuration for NewNetwork.
type NetworkConfig struct {
	// Activations names one activation per non-input layer.
	// Empty selects sigmoid for every layer.
	Activations []string

	// Init configures parameter initialization.
	Init InitConfig

	// Train configures the backpropagation updates.
	// A zero learning rate defaults to 0.01.
	Train TrainConfig
}

// NewNetwork initializes a network for the given topology.
//
// Example:
//
//	net, err := nn.NewNetwork(nn.Topology{2, 2, 1}, nn.NetworkConfig{
//	    Train: nn.TrainConfig{LearningRate: 0.5},
//	})
func NewNetwork(structure Topology, cfg NetworkConfig) (*Network, error) {
	if err := structure.Validate(); err != nil {
		return nil, fmt.Errorf("NewNetwork: %w", err)
	}
	acts, err := Activations(structure.Layers()-1, cfg.Activations)
	if err != nil {
		return nil, fmt.Errorf("NewNetwork: %w", err)
	}
	if !cfg.Train.Policy.Valid() {
		return nil, fmt.Errorf("NewNetwork: %v: %w", cfg.Train.Policy, ErrInvalidUpdatePolicy)
	}
	if cfg.Train.LearningRate == 0 {
		cfg.Train.LearningRate = 0.01
	}
	state, err := Init(structure, cfg.Init)
	if err != nil {
		return nil, fmt.Errorf("NewNetwork: %w", err)
	}
	return &Network{
		structure: append(Topology(nil), structure...),
		acts:      acts,
		cfg:       cfg.Train,
		state:     state,
	}, nil
}

// Predict runs a forward pass and returns a copy of the output vector.
func (n *Network) Predict(input []float64) ([]float64, error) {
	out, err := Forward(n.structure, input, n.state, n.acts)
	if err != nil {
		return nil, err
	}
	res := make([]float64, len(out))
	copy(res, out)
	return res, nil
}

// Train runs one forward/backward pass on a single example and returns the
// total squared error of the prediction before the update.
func (n *Network) Train(input, target []float64) (float64, error) {
	out, err := Forward(n.structure, input, n.state, n.acts)
	if err != nil {
		return 0, err
	}
	loss, err := SquaredError(out, target)
	if err != nil {
		return 0, err
	}
	if err := Backward(n.structure, target, n.state, n.cfg, n.acts); err != nil {
		return 0, err
	}
	return loss, nil
}

// Topology returns the network's layer widths.
func (n *Network) Topology() Topology {
	return n.structure
}

// State returns the network's container set. The caller and the network
// share it; mutating shapes breaks the invariants Init established.
func (n *Network) State() *State {
	return n.state
}

// Config returns the current training parameters.
func (n *Network) Config() TrainConfig {
	return n.cfg
}

// SetConfig replaces the training parameters. Useful for switching the
// update policy between deferred accumulation and a flush, or for
// learning-rate scheduling.
func (n *Network) SetConfig(cfg TrainConfig) error {
	if !cfg.Policy.Valid() {
		return fmt.Errorf("SetConfig: %v: %w", cfg.Policy, ErrInvalidUpdatePolicy)
	}
	n.cfg = cfg
	return nil
}
