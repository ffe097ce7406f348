package nn

import "fmt"

// SquaredError returns the total squared error between a network output
// and its target:
//
//	Σ (output[j] - target[j])²
//
// This is the quantity Backward's loss gradient descends on, and the usual
// convergence measure for a host's training loop.
func SquaredError(output, target []float64) (float64, error) {
	if len(output) != len(target) {
		return 0, fmt.Errorf("SquaredError: output has length %d, target %d: %w",
			len(output), len(target), ErrShapeMismatch)
	}
	var sum float64
	for j, o := range output {
		diff := o - target[j]
		sum += diff * diff
	}
	return sum, nil
}
