// Copyright 2026 The bpnn Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/bpnn-ml/bpnn/internal/tensor"
)

// Shape represents the dimensions of a dense array.
// Example: Shape{2, 3} represents a 2×3 matrix.
type Shape = tensor.Shape

// Dense is a flat, shape-checked, row-major array of float64 values.
//
// One- and two-dimensional Dense values are the containers the nn engine
// operates on: vectors for layer state and biases, matrices for weights.
type Dense = tensor.Dense

// NewDense creates a new zero-filled Dense with the given shape.
func NewDense(shape Shape) (*Dense, error) {
	return tensor.NewDense(shape)
}

// FromSlice creates a Dense backed by a copy of data with the given shape.
//
// Example:
//
//	w, err := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2})
func FromSlice(data []float64, shape Shape) (*Dense, error) {
	return tensor.FromSlice(data, shape)
}

// Zeros creates a zero-filled Dense with the given shape.
// Panics on an invalid shape.
func Zeros(shape Shape) *Dense {
	return tensor.Zeros(shape)
}

// Eye creates an n×n identity matrix.
func Eye(n int) *Dense {
	return tensor.Eye(n)
}
