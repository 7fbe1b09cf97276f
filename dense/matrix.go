// Package dense: the immutable Matrix type and its readers.
// A Matrix never changes after construction; every derivation returns a
// fresh matrix carrying the same injected engine and its own empty cache.

package dense

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvldense/backend"
	"github.com/katalvlaran/lvldense/cdouble"
)

// Matrix is an immutable rows×cols matrix over RDF or CDF.
// Storage is a single flat row-major []complex128 for both rings; RDF
// matrices keep every imaginary lane at exactly zero. Safe for concurrent
// readers.
type Matrix struct {
	ring       Ring
	rows, cols int
	data       []complex128
	eng        backend.Engine
	cache      *cache
}

// newMatrix takes ownership of data; callers hand over a fresh buffer.
func newMatrix(ring Ring, rows, cols int, data []complex128, eng backend.Engine) *Matrix {
	return &Matrix{
		ring:  ring,
		rows:  rows,
		cols:  cols,
		data:  data,
		eng:   eng,
		cache: newCache(),
	}
}

// derived builds a result matrix inheriting the receiver's engine.
func (m *Matrix) derived(ring Ring, rows, cols int, data []complex128) *Matrix {
	return newMatrix(ring, rows, cols, data, m.eng)
}

// Ring returns the coefficient ring.
func (m *Matrix) Ring() Ring { return m.ring }

// Dims returns (rows, cols).
func (m *Matrix) Dims() (int, int) { return m.rows, m.cols }

// Rows returns the row count.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the column count.
func (m *Matrix) Cols() int { return m.cols }

// IsSquare reports rows == cols.
func (m *Matrix) IsSquare() bool { return m.rows == m.cols }

// At returns entry (i, j).
func (m *Matrix) At(i, j int) (cdouble.Complex, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return cdouble.Zero, ErrOutOfRange
	}
	return cdouble.FromComplex128(m.data[i*m.cols+j]), nil
}

// at is the unchecked internal accessor.
func (m *Matrix) at(i, j int) complex128 { return m.data[i*m.cols+j] }

// dataCopy returns a private copy of the flat storage.
func (m *Matrix) dataCopy() []complex128 {
	return append([]complex128(nil), m.data...)
}

// realData projects the storage onto the real lanes. Only called on RDF
// matrices, whose imaginary lanes are zero by construction.
func (m *Matrix) realData() []float64 {
	out := make([]float64, len(m.data))
	var k int
	for k = range m.data {
		out[k] = real(m.data[k])
	}
	return out
}

// T returns the transpose.
func (m *Matrix) T() *Matrix {
	out := make([]complex128, len(m.data))
	var i, j int
	for i = 0; i < m.rows; i++ {
		for j = 0; j < m.cols; j++ {
			out[j*m.rows+i] = m.data[i*m.cols+j]
		}
	}
	return m.derived(m.ring, m.cols, m.rows, out)
}

// ConjT returns the conjugate transpose. On RDF it coincides with T.
func (m *Matrix) ConjT() *Matrix {
	out := make([]complex128, len(m.data))
	var i, j int
	for i = 0; i < m.rows; i++ {
		for j = 0; j < m.cols; j++ {
			e := m.data[i*m.cols+j]
			out[j*m.rows+i] = complex(real(e), -imag(e))
		}
	}
	return m.derived(m.ring, m.cols, m.rows, out)
}

// Conj returns the entrywise conjugate.
func (m *Matrix) Conj() *Matrix {
	out := make([]complex128, len(m.data))
	var k int
	for k = range m.data {
		out[k] = complex(real(m.data[k]), -imag(m.data[k]))
	}
	return m.derived(m.ring, m.rows, m.cols, out)
}

// ChangeRing converts between rings. RDF→CDF always succeeds (widening);
// CDF→RDF requires every imaginary lane to be exactly zero, otherwise
// ErrRingConversion. Converting to the current ring returns the receiver.
func (m *Matrix) ChangeRing(r Ring) (*Matrix, error) {
	if !r.valid() {
		return nil, ErrBadShape
	}
	if r == m.ring {
		return m, nil
	}
	if r == RDF {
		var k int
		for k = range m.data {
			if imag(m.data[k]) != 0 {
				return nil, ErrRingConversion
			}
		}
	}
	return m.derived(r, m.rows, m.cols, m.dataCopy()), nil
}

// Equal reports exact entrywise equality over the same shape. Rings may
// differ; only values are compared.
func (m *Matrix) Equal(other *Matrix) bool {
	if other == nil || m.rows != other.rows || m.cols != other.cols {
		return false
	}
	var k int
	for k = range m.data {
		if m.data[k] != other.data[k] {
			return false
		}
	}
	return true
}

// EqualWithin reports entrywise equality within an absolute tolerance.
func (m *Matrix) EqualWithin(other *Matrix, tol float64) bool {
	if other == nil || m.rows != other.rows || m.cols != other.cols || !validTolerance(tol) {
		return false
	}
	var k int
	for k = range m.data {
		d := m.data[k] - other.data[k]
		if real(d)*real(d)+imag(d)*imag(d) > tol*tol {
			return false
		}
	}
	return true
}

// String renders the matrix row by row, entries in cdouble notation.
func (m *Matrix) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %dx%d", m.ring, m.rows, m.cols)
	var i, j int
	for i = 0; i < m.rows; i++ {
		sb.WriteString("\n[")
		for j = 0; j < m.cols; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(cdouble.FromComplex128(m.at(i, j)).String())
		}
		sb.WriteByte(']')
	}
	return sb.String()
}

// fromReal lifts a flat real buffer into a matrix of the given ring.
func (m *Matrix) fromReal(ring Ring, rows, cols int, data []float64) *Matrix {
	out := make([]complex128, len(data))
	var k int
	for k = range data {
		out[k] = complex(data[k], 0)
	}
	return m.derived(ring, rows, cols, out)
}

// mapBackendErr translates engine sentinels into the package taxonomy.
func mapBackendErr(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, backend.ErrSingular):
		return ErrSingular
	case errors.Is(err, backend.ErrNotPositiveDefinite):
		return ErrNotPositiveDefinite
	case errors.Is(err, backend.ErrConvergence):
		return ErrNumerical
	case errors.Is(err, backend.ErrShape):
		return ErrBadShape
	}
	return err
}
