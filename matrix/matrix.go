// Package matrix provides the dense 2-D numeric type used by the neural
// training core.
//
// Matrix is a thin wrapper over gonum's mat.Dense that makes every shape
// requirement an explicit, checked precondition. All binary operations
// require exactly matching (or multiplication-compatible) dimensions and
// report ErrDimension otherwise; there is no broadcasting. Operations
// never mutate their inputs.
package matrix

import (
	"gonum.org/v1/gonum/mat"
)

// Matrix is a rectangular numeric grid with dimensions fixed at construction.
type Matrix struct {
	rows int
	cols int
	data *mat.Dense
}

// New creates a rows x cols matrix from row-major data.
// A nil data slice creates a zero matrix.
func New(rows, cols int, data []float64) (m *Matrix, err error) {
	if rows <= 0 || cols <= 0 {
		err = ErrDimension
		return
	}
	if data != nil && len(data) != rows*cols {
		err = ErrDimension
		return
	}

	m = &Matrix{
		rows: rows,
		cols: cols,
		data: mat.NewDense(rows, cols, data),
	}

	return
}

// FromRows creates a matrix from a slice of equal-length rows.
func FromRows(rows [][]float64) (m *Matrix, err error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		err = ErrDimension
		return
	}

	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	for _, row := range rows {
		if len(row) != cols {
			err = ErrDimension
			return
		}
		data = append(data, row...)
	}

	return New(len(rows), cols, data)
}

// Zeros creates a rows x cols matrix of zeroes.
func Zeros(rows, cols int) (m *Matrix, err error) {
	return New(rows, cols, nil)
}

// Rows returns the row count.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the column count.
func (m *Matrix) Cols() int { return m.cols }

// At returns the element at (row, col).
func (m *Matrix) At(row, col int) float64 {
	return m.data.At(row, col)
}

// Row returns a copy of a single row.
func (m *Matrix) Row(row int) (out []float64) {
	out = make([]float64, m.cols)
	copy(out, m.data.RawRowView(row))
	return
}

// Mul returns the matrix product m x b.
func (m *Matrix) Mul(b *Matrix) (out *Matrix, err error) {
	if m.cols != b.rows {
		err = ErrDimension
		return
	}

	result := mat.NewDense(m.rows, b.cols, nil)
	result.Mul(m.data, b.data)

	out = &Matrix{rows: m.rows, cols: b.cols, data: result}
	return
}

// Add returns the elementwise sum m + b.
func (m *Matrix) Add(b *Matrix) (out *Matrix, err error) {
	if m.rows != b.rows || m.cols != b.cols {
		err = ErrDimension
		return
	}

	result := mat.NewDense(m.rows, m.cols, nil)
	result.Add(m.data, b.data)

	out = &Matrix{rows: m.rows, cols: m.cols, data: result}
	return
}

// Sub returns the elementwise difference m - b.
func (m *Matrix) Sub(b *Matrix) (out *Matrix, err error) {
	if m.rows != b.rows || m.cols != b.cols {
		err = ErrDimension
		return
	}

	result := mat.NewDense(m.rows, m.cols, nil)
	result.Sub(m.data, b.data)

	out = &Matrix{rows: m.rows, cols: m.cols, data: result}
	return
}

// MulElem returns the elementwise (Hadamard) product m * b.
func (m *Matrix) MulElem(b *Matrix) (out *Matrix, err error) {
	if m.rows != b.rows || m.cols != b.cols {
		err = ErrDimension
		return
	}

	result := mat.NewDense(m.rows, m.cols, nil)
	result.MulElem(m.data, b.data)

	out = &Matrix{rows: m.rows, cols: m.cols, data: result}
	return
}

// T returns the transpose of m.
func (m *Matrix) T() (out *Matrix) {
	result := mat.NewDense(m.cols, m.rows, nil)
	result.Copy(m.data.T())

	return &Matrix{rows: m.cols, cols: m.rows, data: result}
}

// Apply returns a new matrix with fn applied to every element.
func (m *Matrix) Apply(fn func(float64) float64) (out *Matrix) {
	result := mat.NewDense(m.rows, m.cols, nil)
	result.Apply(func(_, _ int, v float64) float64 { return fn(v) }, m.data)

	return &Matrix{rows: m.rows, cols: m.cols, data: result}
}

// Scale returns m with every element multiplied by c.
func (m *Matrix) Scale(c float64) (out *Matrix) {
	result := mat.NewDense(m.rows, m.cols, nil)
	result.Scale(c, m.data)

	return &Matrix{rows: m.rows, cols: m.cols, data: result}
}

// EqualApprox reports whether m and b have the same shape and all
// elements within epsilon of each other.
func (m *Matrix) EqualApprox(b *Matrix, epsilon float64) bool {
	if m.rows != b.rows || m.cols != b.cols {
		return false
	}

	return mat.EqualApprox(m.data, b.data, epsilon)
}
