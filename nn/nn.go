// Copyright 2026 The bpnn Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/bpnn-ml/bpnn/internal/nn"
)

// Error kinds. Every error returned by the engine wraps one of these.
var (
	ErrShapeMismatch       = nn.ErrShapeMismatch
	ErrUnknownActivation   = nn.ErrUnknownActivation
	ErrInvalidUpdatePolicy = nn.ErrInvalidUpdatePolicy
)

// Topology is the ordered sequence of layer widths defining the network
// shape; Topology[0] is the input width, the last entry the output width.
type Topology = nn.Topology

// State is the host-owned container set of a network: layer state,
// pre-activation state, biases, weights and their gradient accumulators.
type State = nn.State

// Activation selects the transfer function of a layer.
// The zero value is Sigmoid.
type Activation = nn.Activation

// Registered activation functions.
const (
	Sigmoid   = nn.Sigmoid
	Tanh      = nn.Tanh
	ReLU      = nn.ReLU
	LeakyReLU = nn.LeakyReLU
	Linear    = nn.Linear
)

// ActivationByName resolves an activation identifier; the empty string
// resolves to Sigmoid and unregistered names fail with
// ErrUnknownActivation.
func ActivationByName(name string) (Activation, error) {
	return nn.ActivationByName(name)
}

// Activations resolves one activation name per non-input layer; an empty
// names slice selects Sigmoid everywhere.
func Activations(layerCount int, names []string) ([]Activation, error) {
	return nn.Activations(layerCount, names)
}

// UpdatePolicy governs when computed gradients are committed to the live
// weights. The zero value is Immediate.
type UpdatePolicy = nn.UpdatePolicy

// Update policies.
const (
	Immediate = nn.Immediate
	Deferred  = nn.Deferred
	Flush     = nn.Flush
)

// UpdatePolicyByName resolves a policy name, including the legacy
// learning-type strings "online", "" and "batch".
func UpdatePolicyByName(name string) (UpdatePolicy, error) {
	return nn.UpdatePolicyByName(name)
}

// InitConfig holds configuration for Init (amplitude, finesse, random
// source).
type InitConfig = nn.InitConfig

// TrainConfig holds configuration for Backward (learning rate, momentum,
// update policy).
type TrainConfig = nn.TrainConfig

// Init defaults.
const (
	DefaultAmplitude = nn.DefaultAmplitude
	DefaultFinesse   = nn.DefaultFinesse
)

// Init shapes and randomizes the full container set for a topology.
//
// Example:
//
//	rng := rand.New(rand.NewSource(42))
//	state, err := nn.Init(nn.Topology{2, 3, 1}, nn.InitConfig{Rand: rng})
func Init(structure Topology, cfg InitConfig) (*State, error) {
	return nn.Init(structure, cfg)
}

// Forward computes one forward propagation pass and returns the live
// output vector A[L-1].
//
// Example:
//
//	acts, _ := nn.Activations(2, nil) // sigmoid everywhere
//	out, err := nn.Forward(structure, input, state, acts)
func Forward(structure Topology, input []float64, s *State, acts []Activation) ([]float64, error) {
	return nn.Forward(structure, input, s, acts)
}

// Backward computes one backpropagation pass against the state left by the
// most recent Forward call and updates the accumulators and, depending on
// cfg.Policy, the live weights and biases.
//
// Example:
//
//	err := nn.Backward(structure, target, state, nn.TrainConfig{
//	    LearningRate: 0.5,
//	    Momentum:     0.9,
//	    Policy:       nn.Immediate,
//	}, acts)
func Backward(structure Topology, target []float64, s *State, cfg TrainConfig, acts []Activation) error {
	return nn.Backward(structure, target, s, cfg, acts)
}

// SquaredError returns the total squared error between output and target.
func SquaredError(output, target []float64) (float64, error) {
	return nn.SquaredError(output, target)
}

// Network bundles a topology, its state, activations and training
// parameters behind a train/predict surface.
type Network = nn.Network

// NetworkConfig holds configuration for NewNetwork.
type NetworkConfig = nn.NetworkConfig

// NewNetwork initializes a network for the given topology.
//
// Example:
//
//	net, err := nn.NewNetwork(nn.Topology{2, 2, 1}, nn.NetworkConfig{
//	    Train: nn.TrainConfig{LearningRate: 0.5, Momentum: 0.9},
//	})
func NewNetwork(structure Topology, cfg NetworkConfig) (*Network, error) {
	return nn.NewNetwork(structure, cfg)
}
