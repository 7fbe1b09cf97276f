// Package dense: entrywise arithmetic and matrix products.
// Real products go through gonum's mat.Dense; the complex product is a
// plain triple loop, since mat.CDense carries no multiplication. A zero
// dimension short-circuits to a correctly shaped zero matrix without
// touching any numerical code.

package dense

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvldense/cdouble"
)

// Add returns m + other. Shapes must match; the result ring is the join
// of the operand rings.
func (m *Matrix) Add(other *Matrix) (*Matrix, error) {
	if other == nil || m.rows != other.rows || m.cols != other.cols {
		return nil, ErrShapeMismatch
	}
	out := make([]complex128, len(m.data))
	var k int
	for k = range m.data {
		out[k] = m.data[k] + other.data[k]
	}
	return m.derived(m.ring.join(other.ring), m.rows, m.cols, out), nil
}

// Sub returns m − other.
func (m *Matrix) Sub(other *Matrix) (*Matrix, error) {
	if other == nil || m.rows != other.rows || m.cols != other.cols {
		return nil, ErrShapeMismatch
	}
	out := make([]complex128, len(m.data))
	var k int
	for k = range m.data {
		out[k] = m.data[k] - other.data[k]
	}
	return m.derived(m.ring.join(other.ring), m.rows, m.cols, out), nil
}

// Neg returns −m.
func (m *Matrix) Neg() *Matrix {
	out := make([]complex128, len(m.data))
	var k int
	for k = range m.data {
		out[k] = -m.data[k]
	}
	return m.derived(m.ring, m.rows, m.cols, out)
}

// Scale returns z·m. Scaling an RDF matrix by a non-real z widens the
// result to CDF.
func (m *Matrix) Scale(z cdouble.Complex) *Matrix {
	v := z.Complex128()
	out := make([]complex128, len(m.data))
	var k int
	for k = range m.data {
		out[k] = v * m.data[k]
	}
	ring := m.ring
	if imag(v) != 0 {
		ring = CDF
	}
	return m.derived(ring, m.rows, m.cols, out)
}

// Mul returns the matrix product m · other. The inner dimensions must
// agree; any zero dimension yields the shaped zero matrix directly.
func (m *Matrix) Mul(other *Matrix) (*Matrix, error) {
	if other == nil || m.cols != other.rows {
		return nil, ErrShapeMismatch
	}
	ring := m.ring.join(other.ring)
	if m.rows == 0 || m.cols == 0 || other.cols == 0 {
		return m.derived(ring, m.rows, other.cols, make([]complex128, m.rows*other.cols)), nil
	}
	if ring == RDF {
		var prod mat.Dense
		prod.Mul(
			mat.NewDense(m.rows, m.cols, m.realData()),
			mat.NewDense(other.rows, other.cols, other.realData()),
		)
		return m.fromReal(RDF, m.rows, other.cols, denseData(&prod)), nil
	}
	out := make([]complex128, m.rows*other.cols)
	var i, j, k int
	for i = 0; i < m.rows; i++ {
		for k = 0; k < m.cols; k++ {
			aik := m.data[i*m.cols+k]
			if aik == 0 {
				continue
			}
			for j = 0; j < other.cols; j++ {
				out[i*other.cols+j] += aik * other.data[k*other.cols+j]
			}
		}
	}
	return m.derived(CDF, m.rows, other.cols, out), nil
}

// MulVec multiplies by a column vector given as a cols×1 matrix.
func (m *Matrix) MulVec(v *Matrix) (*Matrix, error) {
	if v == nil || v.cols != 1 {
		return nil, ErrShapeMismatch
	}
	return m.Mul(v)
}

// denseData copies a mat.Dense into a contiguous row-major slice.
func denseData(d *mat.Dense) []float64 {
	r, c := d.Dims()
	raw := d.RawMatrix()
	out := make([]float64, r*c)
	var i int
	for i = 0; i < r; i++ {
		copy(out[i*c:(i+1)*c], raw.Data[i*raw.Stride:i*raw.Stride+c])
	}
	return out
}
