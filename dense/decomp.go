// Package dense: the cached factorization engine.
// Each decomposition is computed at most once per matrix; the public
// methods return the cached immutable factor matrices on every repeat
// call. Degenerate zero-dimension shapes are answered structurally,
// without reaching the backend.

package dense

import "math/cmplx"

// LU returns the factorization m = P·L·U with P a permutation matrix,
// L m×m unit lower triangular and U m×n upper trapezoidal. Defined for
// any shape; an exactly singular matrix still factors (a zero lands on
// U's diagonal).
func (m *Matrix) LU() (p, l, u *Matrix, err error) {
	f, err := m.luFactors()
	if err != nil {
		return nil, nil, nil, err
	}
	return f.p, f.l, f.u, nil
}

func (m *Matrix) luFactors() (luFactors, error) {
	return m.cache.lu.get(func() (luFactors, error) {
		if m.rows == 0 || m.cols == 0 {
			perm := make([]int, m.rows)
			var i int
			for i = range perm {
				perm[i] = i
			}
			id, _ := Identity(m.ring, m.rows)
			return luFactors{
				perm: perm,
				p:    id,
				l:    id,
				u:    m.derived(m.ring, m.rows, m.cols, make([]complex128, 0)),
			}, nil
		}
		var perm []int
		var l, u *Matrix
		if m.ring == RDF {
			pm, lf, uf, err := m.eng.DLU(m.realData(), m.rows, m.cols)
			if err != nil {
				return luFactors{}, mapBackendErr(err)
			}
			perm = pm
			l = m.fromReal(RDF, m.rows, m.rows, lf)
			u = m.fromReal(RDF, m.rows, m.cols, uf)
		} else {
			pm, lf, uf, err := m.eng.ZLU(m.dataCopy(), m.rows, m.cols)
			if err != nil {
				return luFactors{}, mapBackendErr(err)
			}
			perm = pm
			l = m.derived(CDF, m.rows, m.rows, lf)
			u = m.derived(CDF, m.rows, m.cols, uf)
		}
		// Row i of L·U reproduces row perm[i] of m, so the permutation
		// matrix with P[perm[i], i] = 1 satisfies m = P·L·U.
		pdata := make([]complex128, m.rows*m.rows)
		var i int
		for i = range perm {
			pdata[perm[i]*m.rows+i] = 1
		}
		return luFactors{
			perm: perm,
			p:    m.derived(m.ring, m.rows, m.rows, pdata),
			l:    l,
			u:    u,
		}, nil
	})
}

// QR returns m = Q·R with Q m×m unitary and R m×n upper trapezoidal.
// The diagonal of R carries whatever phases the Householder sweep
// produced; pass the factors through NormalizeQRSigns for the unique
// form with a real non-negative diagonal.
func (m *Matrix) QR() (q, r *Matrix, err error) {
	f, err := m.cache.qr.get(func() (qrFactors, error) {
		if m.rows == 0 || m.cols == 0 {
			id, _ := Identity(m.ring, m.rows)
			return qrFactors{
				q: id,
				r: m.derived(m.ring, m.rows, m.cols, make([]complex128, 0)),
			}, nil
		}
		if m.ring == RDF {
			qf, rf, err := m.eng.DQR(m.realData(), m.rows, m.cols)
			if err != nil {
				return qrFactors{}, mapBackendErr(err)
			}
			return qrFactors{
				q: m.fromReal(RDF, m.rows, m.rows, qf),
				r: m.fromReal(RDF, m.rows, m.cols, rf),
			}, nil
		}
		qf, rf, err := m.eng.ZQR(m.dataCopy(), m.rows, m.cols)
		if err != nil {
			return qrFactors{}, mapBackendErr(err)
		}
		return qrFactors{
			q: m.derived(CDF, m.rows, m.rows, qf),
			r: m.derived(CDF, m.rows, m.cols, rf),
		}, nil
	})
	if err != nil {
		return nil, nil, err
	}
	return f.q, f.r, nil
}

// NormalizeQRSigns rescales QR factors so the diagonal of R is real and
// non-negative, multiplying each affected column of Q by the inverse
// phase. The product Q·R is unchanged; zero diagonal entries are left
// alone. Returns fresh matrices; the inputs stay untouched.
func NormalizeQRSigns(q, r *Matrix) (*Matrix, *Matrix, error) {
	if q == nil || r == nil || q.cols != r.rows {
		return nil, nil, ErrShapeMismatch
	}
	qd := q.dataCopy()
	rd := r.dataCopy()
	k := min(r.rows, r.cols)
	var i, j int
	for i = 0; i < k; i++ {
		d := rd[i*r.cols+i]
		if d == 0 {
			continue
		}
		phase := d / complex(cmplx.Abs(d), 0)
		inv := cmplx.Conj(phase)
		for j = i; j < r.cols; j++ {
			rd[i*r.cols+j] *= inv
		}
		rd[i*r.cols+i] = complex(real(rd[i*r.cols+i]), 0)
		for j = 0; j < q.rows; j++ {
			qd[j*q.cols+i] *= phase
		}
	}
	return q.derived(q.ring, q.rows, q.cols, qd),
		r.derived(r.ring, r.rows, r.cols, rd), nil
}

// SVD returns m = U·S·Vᴴ with U m×m and V n×n unitary and S the m×n
// diagonal matrix of singular values in descending order.
func (m *Matrix) SVD() (u, s, v *Matrix, err error) {
	f, err := m.cache.svd.get(func() (svdFactors, error) {
		if m.rows == 0 || m.cols == 0 {
			idU, _ := Identity(m.ring, m.rows)
			idV, _ := Identity(m.ring, m.cols)
			return svdFactors{
				u: idU,
				s: m.derived(m.ring, m.rows, m.cols, make([]complex128, 0)),
				v: idV,
			}, nil
		}
		k := min(m.rows, m.cols)
		sdata := make([]complex128, m.rows*m.cols)
		if m.ring == RDF {
			uf, sv, vf, err := m.eng.DSVD(m.realData(), m.rows, m.cols)
			if err != nil {
				return svdFactors{}, mapBackendErr(err)
			}
			var i int
			for i = 0; i < k; i++ {
				sdata[i*m.cols+i] = complex(sv[i], 0)
			}
			return svdFactors{
				u: m.fromReal(RDF, m.rows, m.rows, uf),
				s: m.derived(RDF, m.rows, m.cols, sdata),
				v: m.fromReal(RDF, m.cols, m.cols, vf),
			}, nil
		}
		uf, sv, vf, err := m.eng.ZSVD(m.dataCopy(), m.rows, m.cols)
		if err != nil {
			return svdFactors{}, mapBackendErr(err)
		}
		var i int
		for i = 0; i < k; i++ {
			sdata[i*m.cols+i] = complex(sv[i], 0)
		}
		return svdFactors{
			u: m.derived(CDF, m.rows, m.rows, uf),
			s: m.derived(CDF, m.rows, m.cols, sdata),
			v: m.derived(CDF, m.cols, m.cols, vf),
		}, nil
	})
	if err != nil {
		return nil, nil, nil, err
	}
	return f.u, f.s, f.v, nil
}

// SingularValues returns the min(rows, cols) singular values descending.
func (m *Matrix) SingularValues() ([]float64, error) {
	_, s, _, err := m.SVD()
	if err != nil {
		return nil, err
	}
	k := min(m.rows, m.cols)
	out := make([]float64, k)
	var i int
	for i = 0; i < k; i++ {
		out[i] = real(s.at(i, i))
	}
	return out, nil
}

// Schur returns m = Q·T·Qᴴ. For an RDF matrix the default is the real
// form: Q orthogonal and T quasi-triangular (2×2 bumps for conjugate
// eigenvalue pairs). WithSchurRing(CDF) requests the fully triangular
// complex form instead; it is also the default for CDF matrices.
// Requesting RDF output from a CDF matrix is a narrowing the
// factorization cannot honor and yields ErrRingConversion.
func (m *Matrix) Schur(opts ...SchurOption) (q, t *Matrix, err error) {
	if !m.IsSquare() {
		return nil, nil, ErrNotSquare
	}
	so := gatherSchurOptions(opts, m.ring)
	if so.ring == RDF && m.ring == CDF {
		return nil, nil, ErrRingConversion
	}
	var f schurFactors
	if so.ring == RDF {
		f, err = m.cache.schurRDF.get(func() (schurFactors, error) {
			if m.rows == 0 {
				id, _ := Identity(RDF, 0)
				return schurFactors{q: id, t: id}, nil
			}
			qf, tf, err := m.eng.DSchur(m.realData(), m.rows)
			if err != nil {
				return schurFactors{}, mapBackendErr(err)
			}
			return schurFactors{
				q: m.fromReal(RDF, m.rows, m.rows, qf),
				t: m.fromReal(RDF, m.rows, m.rows, tf),
			}, nil
		})
	} else {
		f, err = m.cache.schurCDF.get(func() (schurFactors, error) {
			if m.rows == 0 {
				id, _ := Identity(CDF, 0)
				return schurFactors{q: id, t: id}, nil
			}
			qf, tf, err := m.eng.ZSchur(m.dataCopy(), m.rows)
			if err != nil {
				return schurFactors{}, mapBackendErr(err)
			}
			return schurFactors{
				q: m.derived(CDF, m.rows, m.rows, qf),
				t: m.derived(CDF, m.rows, m.rows, tf),
			}, nil
		})
	}
	if err != nil {
		return nil, nil, err
	}
	return f.q, f.t, nil
}

// Cholesky returns the lower triangular L with m = L·Lᴴ and a real
// positive diagonal. A non-Hermitian matrix yields ErrNotHermitian; a
// Hermitian one that is not positive definite ErrNotPositiveDefinite.
// The verdict is shared with IsPositiveDefinite through the cache.
func (m *Matrix) Cholesky() (*Matrix, error) {
	if !m.IsSquare() {
		return nil, ErrNotSquare
	}
	return m.cache.chol.get(func() (*Matrix, error) {
		if !m.hermitianWithin(DefaultTolerance) {
			return nil, ErrNotHermitian
		}
		if m.rows == 0 {
			return m, nil
		}
		if m.ring == RDF {
			lf, err := m.eng.DCholesky(m.realData(), m.rows)
			if err != nil {
				return nil, mapBackendErr(err)
			}
			return m.fromReal(RDF, m.rows, m.rows, lf), nil
		}
		lf, err := m.eng.ZCholesky(m.dataCopy(), m.rows)
		if err != nil {
			return nil, mapBackendErr(err)
		}
		return m.derived(CDF, m.rows, m.rows, lf), nil
	})
}

// hermitianWithin is the cached entrywise conjugate-symmetry check used
// by Cholesky. The predicate facade keeps its own per-tolerance cache;
// this slot pins the single tolerance the factorizations rely on.
func (m *Matrix) hermitianWithin(tol float64) bool {
	v, _ := m.cache.hermitian.get(func() (bool, error) {
		return naiveHermitian(m, tol), nil
	})
	return v
}
