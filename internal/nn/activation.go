package nn

import (
	"fmt"
	"math"
	"strings"
)

// Activation selects the element-wise transfer function of a layer.
//
// The zero value is Sigmoid, so a freshly allocated []Activation gives
// every layer the default transfer function.
type Activation int

// Supported activation functions.
const (
	Sigmoid Activation = iota
	Tanh
	ReLU
	LeakyReLU
	Linear
)

// leakySlope is the negative-side slope of LeakyReLU.
const leakySlope = 0.01

// String returns the activation's registry name.
func (a Activation) String() string {
	switch a {
	case Sigmoid:
		return "sigmoid"
	case Tanh:
		return "tanh"
	case ReLU:
		return "relu"
	case LeakyReLU:
		return "leakyrelu"
	case Linear:
		return "linear"
	default:
		return fmt.Sprintf("Activation(%d)", int(a))
	}
}

// Valid reports whether a names a registered activation.
func (a Activation) Valid() bool {
	return a >= Sigmoid && a <= Linear
}

// Apply evaluates the activation function at x.
func (a Activation) Apply(x float64) float64 {
	switch a {
	case Sigmoid:
		return 1.0 / (1.0 + math.Exp(-x))
	case Tanh:
		return math.Tanh(x)
	case ReLU:
		if x > 0 {
			return x
		}
		return 0
	case LeakyReLU:
		if x > 0 {
			return x
		}
		return leakySlope * x
	case Linear:
		return x
	default:
		panic(fmt.Sprintf("Apply: %v", a))
	}
}

// Derivative evaluates the activation function's derivative at x.
func (a Activation) Derivative(x float64) float64 {
	switch a {
	case Sigmoid:
		s := 1.0 / (1.0 + math.Exp(-x))
		return s * (1.0 - s)
	case Tanh:
		t := math.Tanh(x)
		return 1.0 - t*t
	case ReLU:
		if x > 0 {
			return 1
		}
		return 0
	case LeakyReLU:
		if x > 0 {
			return 1
		}
		return leakySlope
	case Linear:
		return 1
	default:
		panic(fmt.Sprintf("Derivative: %v", a))
	}
}

// ActivationByName resolves an activation identifier to its enum value.
// The empty string resolves to the default, Sigmoid. Any other unregistered
// name is an error, never a silent fallback.
func ActivationByName(name string) (Activation, error) {
	switch strings.ToLower(name) {
	case "", "sigmoid":
		return Sigmoid, nil
	case "tanh":
		return Tanh, nil
	case "relu":
		return ReLU, nil
	case "leakyrelu", "leaky_relu":
		return LeakyReLU, nil
	case "linear", "identity":
		return Linear, nil
	default:
		return 0, fmt.Errorf("ActivationByName: %q: %w", name, ErrUnknownActivation)
	}
}

// Activations resolves one activation name per non-input layer.
// An empty or nil names slice selects Sigmoid for all layerCount layers.
func Activations(layerCount int, names []string) ([]Activation, error) {
	acts := make([]Activation, layerCount)
	if len(names) == 0 {
		return acts, nil
	}
	if len(names) != layerCount {
		return nil, fmt.Errorf("Activations: %d names for %d layers: %w",
			len(names), layerCount, ErrShapeMismatch)
	}
	for i, name := range names {
		a, err := ActivationByName(name)
		if err != nil {
			return nil, err
		}
		acts[i] = a
	}
	return acts, nil
}
