// Package dense: norms, condition numbers and the matrix exponential.

package dense

import (
	"errors"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/lvldense/cdouble"
)

// NormKind selects the operator or entrywise norm.
type NormKind int

const (
	// NormFrobenius is the entrywise Euclidean norm.
	NormFrobenius NormKind = iota

	// Norm1 is the maximum absolute column sum.
	Norm1

	// Norm2 is the spectral norm, the largest singular value.
	Norm2

	// NormInf is the maximum absolute row sum.
	NormInf
)

// String implements fmt.Stringer.
func (k NormKind) String() string {
	switch k {
	case NormFrobenius:
		return "frobenius"
	case Norm1:
		return "1"
	case Norm2:
		return "2"
	case NormInf:
		return "inf"
	default:
		return "NormKind(?)"
	}
}

func (k NormKind) valid() bool {
	return k == NormFrobenius || k == Norm1 || k == Norm2 || k == NormInf
}

// ulp is the double-precision unit roundoff.
const ulp = 0x1p-52

// Norm returns the requested norm; empty matrices have norm 0. Norm2
// factors through the cached SVD, the others are single passes.
func (m *Matrix) Norm(kind NormKind) (float64, error) {
	if !kind.valid() {
		return 0, ErrBadShape
	}
	if m.rows == 0 || m.cols == 0 {
		return 0, nil
	}
	var i, j int
	switch kind {
	case NormFrobenius:
		sum := 0.0
		for i = range m.data {
			e := m.data[i]
			sum += real(e)*real(e) + imag(e)*imag(e)
		}
		return math.Sqrt(sum), nil
	case Norm1:
		best := 0.0
		for j = 0; j < m.cols; j++ {
			sum := 0.0
			for i = 0; i < m.rows; i++ {
				sum += cmplx.Abs(m.at(i, j))
			}
			best = math.Max(best, sum)
		}
		return best, nil
	case NormInf:
		best := 0.0
		for i = 0; i < m.rows; i++ {
			sum := 0.0
			for j = 0; j < m.cols; j++ {
				sum += cmplx.Abs(m.at(i, j))
			}
			best = math.Max(best, sum)
		}
		return best, nil
	default:
		sv, err := m.SingularValues()
		if err != nil {
			return 0, err
		}
		return sv[0], nil
	}
}

// Cond returns the condition number in the given norm; +Inf for a
// singular matrix, 1 for the empty matrix. The spectral condition number
// is σmax/σmin from the cached SVD; the others multiply the norm of m by
// the norm of its inverse.
func (m *Matrix) Cond(kind NormKind) (float64, error) {
	if !m.IsSquare() {
		return 0, ErrNotSquare
	}
	if !kind.valid() {
		return 0, ErrBadShape
	}
	if m.rows == 0 {
		return 1, nil
	}
	if kind == Norm2 {
		sv, err := m.SingularValues()
		if err != nil {
			return 0, err
		}
		smax := sv[0]
		smin := sv[len(sv)-1]
		// Same rank tolerance the SVD uses: below it the matrix is
		// numerically singular, matching the ErrSingular verdict of the
		// other norms.
		if smin <= float64(m.rows)*ulp*smax {
			return math.Inf(1), nil
		}
		return smax / smin, nil
	}
	inv, err := m.Inverse()
	if errors.Is(err, ErrSingular) {
		return math.Inf(1), nil
	}
	if err != nil {
		return 0, err
	}
	nm, err := m.Norm(kind)
	if err != nil {
		return 0, err
	}
	ni, err := inv.Norm(kind)
	if err != nil {
		return 0, err
	}
	return nm * ni, nil
}

// Expm returns the matrix exponential exp(m) of a square matrix, by the
// backend's scaling-and-squaring Padé evaluation. exp of the 0×0 matrix
// is the 0×0 matrix.
func (m *Matrix) Expm() (*Matrix, error) {
	if !m.IsSquare() {
		return nil, ErrNotSquare
	}
	if m.rows == 0 {
		return m, nil
	}
	if m.ring == RDF {
		out, err := m.eng.DExpm(m.realData(), m.rows)
		if err != nil {
			return nil, mapBackendErr(err)
		}
		return m.fromReal(RDF, m.rows, m.rows, out), nil
	}
	out, err := m.eng.ZExpm(m.dataCopy(), m.rows)
	if err != nil {
		return nil, mapBackendErr(err)
	}
	return m.derived(CDF, m.rows, m.rows, out), nil
}

// Trace returns the sum of the diagonal of a square matrix.
func (m *Matrix) Trace() (cdouble.Complex, error) {
	if !m.IsSquare() {
		return cdouble.Zero, ErrNotSquare
	}
	var tr complex128
	var i int
	for i = 0; i < m.rows; i++ {
		tr += m.at(i, i)
	}
	return cdouble.FromComplex128(tr), nil
}
