// SPDX-License-Identifier: MIT

package matrix

// Matrix is a two-dimensional mutable array of float64 values.
// All methods are expected O(1) except Row (O(c)) and Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at (i, j), or ErrOutOfRange.
	At(i, j int) (float64, error)

	// Set assigns v at (i, j), or returns ErrOutOfRange / ErrNaNInf.
	Set(i, j int, v float64) error

	// Row returns a copy of row i, or ErrOutOfRange.
	Row(i int) ([]float64, error)

	// Clone returns an independent deep copy.
	Clone() Matrix
}
