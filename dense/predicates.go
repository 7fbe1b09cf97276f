// Package dense: structural predicates.
// Two strategies answer each question: AlgNaive inspects entries (and
// Gram products) directly; AlgOrthonormal reads the structure of the
// cached complex Schur factor T, which is cheap once any spectral call
// has already triangularized the matrix. Verdicts are cached per
// (predicate, algorithm, tolerance).

package dense

import (
	"errors"
	"math/cmplx"
)

// IsHermitian reports whether m equals its conjugate transpose within
// the tolerance. Non-square matrices are simply not Hermitian: false,
// never an error.
func (m *Matrix) IsHermitian(opts ...PredicateOption) bool {
	po := gatherPredicateOptions(opts)
	if !m.IsSquare() {
		return false
	}
	return m.cache.predicate(predicateKey{predHermitian, po.algorithm, po.tolerance}, func() bool {
		if po.algorithm == AlgNaive {
			return naiveHermitian(m, po.tolerance)
		}
		return m.schurPredicate(po.tolerance, func(d complex128, tol float64) bool {
			return abs(imag(d)) <= tol
		})
	})
}

// IsSkewHermitian reports whether mᴴ = −m within the tolerance.
func (m *Matrix) IsSkewHermitian(opts ...PredicateOption) bool {
	po := gatherPredicateOptions(opts)
	if !m.IsSquare() {
		return false
	}
	return m.cache.predicate(predicateKey{predSkewHermitian, po.algorithm, po.tolerance}, func() bool {
		if po.algorithm == AlgNaive {
			return naiveSkewHermitian(m, po.tolerance)
		}
		return m.schurPredicate(po.tolerance, func(d complex128, tol float64) bool {
			return abs(real(d)) <= tol
		})
	})
}

// IsUnitary reports whether mᴴ·m is the identity within the tolerance.
func (m *Matrix) IsUnitary(opts ...PredicateOption) bool {
	po := gatherPredicateOptions(opts)
	if !m.IsSquare() {
		return false
	}
	return m.cache.predicate(predicateKey{predUnitary, po.algorithm, po.tolerance}, func() bool {
		if po.algorithm == AlgNaive {
			return naiveUnitary(m, po.tolerance)
		}
		return m.schurPredicate(po.tolerance, func(d complex128, tol float64) bool {
			return abs(cmplx.Abs(d)-1) <= tol
		})
	})
}

// IsNormal reports whether m commutes with its conjugate transpose.
func (m *Matrix) IsNormal(opts ...PredicateOption) bool {
	po := gatherPredicateOptions(opts)
	if !m.IsSquare() {
		return false
	}
	return m.cache.predicate(predicateKey{predNormal, po.algorithm, po.tolerance}, func() bool {
		if po.algorithm == AlgNaive {
			return naiveNormal(m, po.tolerance)
		}
		// Every diagonal is admissible; normality is exactly the
		// triangular factor collapsing to its diagonal.
		return m.schurPredicate(po.tolerance, func(complex128, float64) bool { return true })
	})
}

// IsPositiveDefinite reports whether m is Hermitian positive definite,
// defined operationally as Cholesky success. The verdict rides on the
// cached Cholesky slot, so a later Cholesky call is free and agrees.
func (m *Matrix) IsPositiveDefinite() bool {
	if !m.IsSquare() {
		return false
	}
	_, err := m.Cholesky()
	return err == nil
}

// IsSingular reports whether Cond₂ is infinite (no usable inverse).
func (m *Matrix) IsSingular() bool {
	if !m.IsSquare() {
		return true
	}
	if m.rows == 0 {
		return false
	}
	_, err := m.Inverse()
	return errors.Is(err, ErrSingular)
}

// schurPredicate answers orthonormal-strategy predicates: the matrix is
// normal iff its complex Schur factor T is diagonal (within tol), and the
// predicate then constrains each diagonal entry via diagOK.
func (m *Matrix) schurPredicate(tol float64, diagOK func(complex128, float64) bool) bool {
	if m.rows == 0 {
		return true
	}
	_, t, err := m.Schur(WithSchurRing(CDF))
	if err != nil {
		return false
	}
	n := m.rows
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			if cmplx.Abs(t.at(i, j)) > tol {
				return false
			}
		}
	}
	for i = 0; i < n; i++ {
		if !diagOK(t.at(i, i), tol) {
			return false
		}
	}
	return true
}

func naiveHermitian(m *Matrix, tol float64) bool {
	var i, j int
	for i = 0; i < m.rows; i++ {
		for j = 0; j <= i; j++ {
			d := m.at(i, j) - cmplx.Conj(m.at(j, i))
			if cmplx.Abs(d) > tol {
				return false
			}
		}
	}
	return true
}

func naiveSkewHermitian(m *Matrix, tol float64) bool {
	var i, j int
	for i = 0; i < m.rows; i++ {
		for j = 0; j <= i; j++ {
			d := m.at(i, j) + cmplx.Conj(m.at(j, i))
			if cmplx.Abs(d) > tol {
				return false
			}
		}
	}
	return true
}

// naiveUnitary compares mᴴ·m against the identity entrywise.
func naiveUnitary(m *Matrix, tol float64) bool {
	n := m.rows
	var i, j, k int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			var s complex128
			for k = 0; k < n; k++ {
				s += cmplx.Conj(m.at(k, i)) * m.at(k, j)
			}
			if i == j {
				s -= 1
			}
			if cmplx.Abs(s) > tol {
				return false
			}
		}
	}
	return true
}

// naiveNormal compares m·mᴴ against mᴴ·m entrywise.
func naiveNormal(m *Matrix, tol float64) bool {
	n := m.rows
	var i, j, k int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			var lhs, rhs complex128
			for k = 0; k < n; k++ {
				lhs += m.at(i, k) * cmplx.Conj(m.at(j, k))
				rhs += cmplx.Conj(m.at(k, i)) * m.at(k, j)
			}
			if cmplx.Abs(lhs-rhs) > tol {
				return false
			}
		}
	}
	return true
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
