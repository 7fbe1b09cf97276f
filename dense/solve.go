// Package dense: linear solves, inversion and determinants.
// Determinants read the cached LU factors, so Det / LogDeterminant after
// any factorization-driven call costs only the diagonal walk.

package dense

import (
	"math"

	"github.com/katalvlaran/lvldense/cdouble"
)

// Solve returns x with m·x = b, for a square m and a b with matching row
// count (any column count, including vectors as n×1). A singular m yields
// ErrSingular; a non-square m ErrNotSquare.
func (m *Matrix) Solve(b *Matrix) (*Matrix, error) {
	if !m.IsSquare() {
		return nil, ErrNotSquare
	}
	if b == nil || b.rows != m.rows {
		return nil, ErrShapeMismatch
	}
	ring := m.ring.join(b.ring)
	if m.rows == 0 || b.cols == 0 {
		return m.derived(ring, m.rows, b.cols, make([]complex128, 0)), nil
	}
	if ring == RDF {
		x, err := m.eng.DSolve(m.realData(), m.rows, b.realData(), b.cols)
		if err != nil {
			return nil, mapBackendErr(err)
		}
		return m.fromReal(RDF, m.rows, b.cols, x), nil
	}
	x, err := m.eng.ZSolve(m.dataCopy(), m.rows, b.dataCopy(), b.cols)
	if err != nil {
		return nil, mapBackendErr(err)
	}
	return m.derived(CDF, m.rows, b.cols, x), nil
}

// Inverse returns m⁻¹. The 0×0 matrix is its own inverse; a singular
// matrix yields ErrSingular (distinct from ErrNotSquare).
func (m *Matrix) Inverse() (*Matrix, error) {
	if !m.IsSquare() {
		return nil, ErrNotSquare
	}
	if m.rows == 0 {
		return m, nil
	}
	id, err := Identity(m.ring, m.rows)
	if err != nil {
		return nil, err
	}
	return m.Solve(id)
}

// Determinant returns det(m) for a square m; the 0×0 determinant is 1.
// Computed from the cached LU factors as the product of U's diagonal
// times the permutation sign.
func (m *Matrix) Determinant() (cdouble.Complex, error) {
	if !m.IsSquare() {
		return cdouble.Zero, ErrNotSquare
	}
	if m.rows == 0 {
		return cdouble.One, nil
	}
	f, err := m.luFactors()
	if err != nil {
		return cdouble.Zero, err
	}
	det := complex(float64(permSign(f.perm)), 0)
	var i int
	for i = 0; i < m.rows; i++ {
		det *= f.u.at(i, i)
	}
	return cdouble.FromComplex128(det), nil
}

// LogDeterminant returns log|det(m)|, −Inf for a singular matrix and 0
// for the 0×0 matrix. Accumulated in log space from U's diagonal, so it
// stays finite where the determinant itself over- or underflows.
func (m *Matrix) LogDeterminant() (float64, error) {
	if !m.IsSquare() {
		return 0, ErrNotSquare
	}
	if m.rows == 0 {
		return 0, nil
	}
	f, err := m.luFactors()
	if err != nil {
		return 0, err
	}
	sum := 0.0
	var i int
	for i = 0; i < m.rows; i++ {
		p := f.u.at(i, i)
		if p == 0 {
			return math.Inf(-1), nil
		}
		sum += cdouble.FromComplex128(p).LogAbs()
	}
	return sum, nil
}

// permSign returns the parity (+1/−1) of a permutation given in one-line
// notation. The input is copied; counting is by cycle decomposition.
func permSign(perm []int) int {
	n := len(perm)
	seen := make([]bool, n)
	sign := 1
	var i, j int
	for i = 0; i < n; i++ {
		if seen[i] {
			continue
		}
		length := 0
		for j = i; !seen[j]; j = perm[j] {
			seen[j] = true
			length++
		}
		if length%2 == 0 {
			sign = -sign
		}
	}
	return sign
}
