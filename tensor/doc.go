// Copyright 2026 The bpnn Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the flat dense-array containers used by the
// bpnn engine.
//
// # Overview
//
// A Dense is a contiguous float64 buffer with an explicit Shape and
// row-major strides. Compared to nested Go slices it has a single
// allocation, cheap contiguous row access and shape validation at
// construction time.
//
// # Basic Usage
//
//	v := tensor.Zeros(tensor.Shape{3})          // vector of 3 zeros
//	m, err := tensor.FromSlice(data, tensor.Shape{2, 3})
//	m.Set(1.5, 0, 2)
//	row := m.Row(0)                             // contiguous []float64 view
//
// Element access through At/Set is bounds-checked and panics on a bad
// index; Data and Row expose the backing storage for numeric kernels.
package tensor
