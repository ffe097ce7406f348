// Package tensor implements flat, shape-checked dense arrays of float64
// values with row-major strides. It is the storage layer under the nn
// engine; nothing in it knows about networks.
package tensor

import "fmt"

// Dense is a dense row-major array of float64 values.
// The backing buffer is flat and contiguous; element lookup goes through
// precomputed strides with explicit bounds checks.
type Dense struct {
	data   []float64
	shape  Shape
	stride []int
}

// NewDense creates a new zero-filled Dense with the given shape.
func NewDense(shape Shape) (*Dense, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	return &Dense{
		data:   make([]float64, shape.NumElements()),
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
	}, nil
}

// FromSlice creates a Dense backed by a copy of data, interpreted with the
// given shape. The number of elements must match the shape exactly.
func FromSlice(data []float64, shape Shape) (*Dense, error) {
	d, err := NewDense(shape)
	if err != nil {
		return nil, err
	}
	if len(data) != shape.NumElements() {
		return nil, fmt.Errorf("data length %d does not match shape %v (%d elements)",
			len(data), shape, shape.NumElements())
	}
	copy(d.data, data)
	return d, nil
}

// Zeros creates a zero-filled Dense with the given shape.
// Panics on an invalid shape; use NewDense when the shape is not known good.
func Zeros(shape Shape) *Dense {
	d, err := NewDense(shape)
	if err != nil {
		panic(err)
	}
	return d
}

// Eye creates an n×n identity matrix.
func Eye(n int) *Dense {
	d := Zeros(Shape{n, n})
	for i := 0; i < n; i++ {
		d.data[i*n+i] = 1
	}
	return d
}

// Shape returns the array's shape.
func (d *Dense) Shape() Shape {
	return d.shape
}

// Strides returns the array's memory strides.
func (d *Dense) Strides() []int {
	return d.stride
}

// NumElements returns the total number of elements.
func (d *Dense) NumElements() int {
	return len(d.data)
}

// Data returns the flat backing slice.
// Mutating the returned slice mutates the array.
func (d *Dense) Data() []float64 {
	return d.data
}

// At returns the element at the given multi-index.
// Panics if the index arity or any coordinate is out of range.
func (d *Dense) At(idx ...int) float64 {
	return d.data[d.offset(idx)]
}

// Set stores v at the given multi-index.
// Panics if the index arity or any coordinate is out of range.
func (d *Dense) Set(v float64, idx ...int) {
	d.data[d.offset(idx)] = v
}

// Row returns a contiguous view of row i of a 2-D array.
// Mutating the returned slice mutates the array.
func (d *Dense) Row(i int) []float64 {
	if len(d.shape) != 2 {
		panic(fmt.Sprintf("Row: array is %d-dimensional, not 2-dimensional", len(d.shape)))
	}
	if i < 0 || i >= d.shape[0] {
		panic(fmt.Sprintf("Row: index %d out of range [0, %d)", i, d.shape[0]))
	}
	return d.data[i*d.stride[0] : i*d.stride[0]+d.shape[1]]
}

// Fill sets every element to v.
func (d *Dense) Fill(v float64) {
	for i := range d.data {
		d.data[i] = v
	}
}

// Clone returns a deep copy of the array.
func (d *Dense) Clone() *Dense {
	clone := &Dense{
		data:   make([]float64, len(d.data)),
		shape:  d.shape.Clone(),
		stride: append([]int(nil), d.stride...),
	}
	copy(clone.data, d.data)
	return clone
}

func (d *Dense) offset(idx []int) int {
	if len(idx) != len(d.shape) {
		panic(fmt.Sprintf("index arity %d does not match shape %v", len(idx), d.shape))
	}
	off := 0
	for i, x := range idx {
		if x < 0 || x >= d.shape[i] {
			panic(fmt.Sprintf("index %d out of range [0, %d) in dimension %d", x, d.shape[i], i))
		}
		off += x * d.stride[i]
	}
	return off
}
