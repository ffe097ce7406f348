// Copyright 2026 The bpnn Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn is the public API of the bpnn feedforward backpropagation
// engine.
//
// # Overview
//
// The engine covers exactly three operations over a host-owned State:
//   - Init: shape and randomize layer state, biases, weights and their
//     gradient accumulators for an arbitrary-depth fully-connected
//     topology.
//   - Forward: propagate an input vector through the current parameters,
//     leaving pre- and post-activation state behind for backpropagation.
//   - Backward: propagate the squared-error gradient of a target vector
//     back through the network and update the parameters under a
//     configurable learning rate, momentum factor and update policy.
//
// The host owns the training loop: it iterates over its dataset, calls
// Forward/Backward per example and decides convergence. The engine does
// no I/O, no persistence and no concurrency.
//
// # Basic Usage
//
//	structure := nn.Topology{2, 2, 1}
//	rng := rand.New(rand.NewSource(1))
//	state, err := nn.Init(structure, nn.InitConfig{Rand: rng})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	acts, _ := nn.Activations(2, nil) // sigmoid everywhere
//	cfg := nn.TrainConfig{LearningRate: 0.5, Policy: nn.Immediate}
//
//	for epoch := 0; epoch < 10000; epoch++ {
//	    for i, input := range inputs {
//	        if _, err := nn.Forward(structure, input, state, acts); err != nil {
//	            log.Fatal(err)
//	        }
//	        if err := nn.Backward(structure, targets[i], state, cfg, acts); err != nil {
//	            log.Fatal(err)
//	        }
//	    }
//	}
//
// Hosts that prefer not to drive the procedural surface directly can use
// the Network wrapper, which owns a State and exposes Train and Predict.
//
// # Update Policies
//
// Backward always folds the current gradient step into the DeltaWeights
// and DeltaBias accumulators; the policy decides when the accumulators
// reach the live parameters:
//   - Immediate: committed on every call (online learning).
//   - Deferred: never committed; gradients accumulate across calls.
//     Use Momentum 1 to make the accumulator a plain running sum.
//   - Flush: the whole accumulated delta, including the current call's
//     contribution, is committed once (closing a mini-batch).
package nn
