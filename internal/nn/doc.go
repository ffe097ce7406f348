// Package nn implements a minimal feedforward neural-network engine:
// parameter initialization, forward propagation and gradient-descent
// backpropagation with optional momentum and a selectable update policy.
//
// The engine is a set of pure functions over a host-owned State. It does
// no I/O, keeps no private state and provides no synchronization; a host
// sharing one State across goroutines must serialize the calls itself.
package nn
