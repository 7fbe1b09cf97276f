// Package backend: the generalized complex eigenproblem A·x = λ·B·x by
// a single-shift QZ iteration on the pencil (A, B).
//
// Pipeline: QR-triangularize B, reduce A to Hessenberg while keeping B
// triangular (Givens, zgghrd-style), then chase single-shift bulges until
// the pencil is triangular-triangular. Eigenvalues come out in
// homogeneous form: alpha[i] = S[i,i], beta[i] = T[i,i], so a singular B
// never forces a division.

package backend

import (
	"math"
	"math/cmplx"
)

// colZeroRotation returns the rotation (c, s) that, applied from the
// right as X·Gᴴ on columns (k, k+1), annihilates X[row, k] against
// X[row, k+1].
func colZeroRotation(x []complex128, n, row, k int) (float64, complex128) {
	c, s, _ := givens(x[row*n+k+1], x[row*n+k])
	return c, -s
}

// qzState carries the transformed pencil and accumulated unitaries:
// S = Qᴴ·A·Z (Hessenberg, then triangular), T = Qᴴ·B·Z (triangular).
type qzState struct {
	n          int
	s, t, q, z []complex128
}

// rotLeft applies G to rows (k, k+1) of S and T and folds Gᴴ into Q.
func (st *qzState) rotLeft(k int, c float64, s complex128, fromS, fromT int) {
	rotateRows(st.s, st.n, k, c, s, fromS)
	rotateRows(st.t, st.n, k, c, s, fromT)
	rotateCols(st.q, st.n, k, c, s, st.n-1)
}

// rotRight applies Gᴴ to columns (k, k+1) of S and T and folds it into Z.
func (st *qzState) rotRight(k int, c float64, s complex128, uptoS, uptoT int) {
	rotateCols(st.s, st.n, k, c, s, uptoS)
	rotateCols(st.t, st.n, k, c, s, uptoT)
	rotateCols(st.z, st.n, k, c, s, st.n-1)
}

// hessTriangular brings S to upper Hessenberg form while keeping T upper
// triangular.
func (st *qzState) hessTriangular() {
	n := st.n
	var j, i int
	for j = 0; j < n-2; j++ {
		for i = n - 1; i >= j+2; i-- {
			// Zero S[i,j] from the left, then repair the fill-in T[i,i-1]
			// from the right.
			c, s, _ := givens(st.s[(i-1)*n+j], st.s[i*n+j])
			st.rotLeft(i-1, c, s, j, i-1)
			st.s[i*n+j] = 0
			c2, s2 := colZeroRotation(st.t, n, i, i-1)
			st.rotRight(i-1, c2, s2, n-1, i)
			st.t[i*n+i-1] = 0
		}
	}
}

// iterate runs the single-shift QZ sweep until the pencil is triangular.
func (st *qzState) iterate() bool {
	n := st.n
	normT := offDiagNormZ(st.t, n)
	var i int
	for i = 0; i < n; i++ {
		normT += cmplx.Abs(st.t[i*n+i])
	}
	// Regularize roundoff-tiny T pivots; a true zero beta re-emerges in
	// the deflation post-scan inside ZEigGen.
	tinyT := ulp * normT
	if tinyT == 0 {
		tinyT = ulp
	}

	m := n - 1
	its := 0
	var l, k int
	for m > 0 {
		l = m
		for l > 0 {
			sub := cmplx.Abs(st.s[l*n+l-1])
			thr := ulp * (cmplx.Abs(st.s[(l-1)*n+l-1]) + cmplx.Abs(st.s[l*n+l]))
			if thr == 0 {
				thr = ulp
			}
			if sub <= thr {
				st.s[l*n+l-1] = 0
				break
			}
			l--
		}
		if l == m {
			m--
			its = 0
			continue
		}
		if its > 30*n+100 {
			return false
		}
		for i = l; i <= m; i++ {
			if cmplx.Abs(st.t[i*n+i]) < tinyT {
				st.t[i*n+i] = complex(tinyT, 0)
			}
		}
		// Rayleigh shift on the pencil, with a periodic exceptional kick.
		sigma := st.s[m*n+m] / st.t[m*n+m]
		if its > 0 && its%10 == 0 {
			sigma = (st.s[m*n+m] + complex(0.75*cmplx.Abs(st.s[m*n+m-1]), 0)) / st.t[m*n+m]
		}
		x := st.s[l*n+l] - sigma*st.t[l*n+l]
		y := st.s[(l+1)*n+l]
		for k = l; k < m; k++ {
			c, s, _ := givens(x, y)
			from := l
			if k > l {
				from = k - 1
			}
			st.rotLeft(k, c, s, from, k)
			// The left rotation fills T[k+1,k]; repair it from the right,
			// which pushes the bulge one row down in S.
			c2, s2 := colZeroRotation(st.t, st.n, k+1, k)
			st.rotRight(k, c2, s2, st.n-1, k+1)
			st.t[(k+1)*n+k] = 0
			if k < m-1 {
				x = st.s[(k+1)*n+k]
				y = st.s[(k+2)*n+k]
			}
		}
		its++
	}
	// Scrub the subdiagonals.
	var j int
	for i = 0; i < n; i++ {
		for j = 0; j < i; j++ {
			st.s[i*n+j] = 0
			st.t[i*n+j] = 0
		}
	}
	return true
}

// ZEigGen solves β·A·x = α·B·x, returning eigenvalues as homogeneous
// (alpha, beta) pairs read off the triangularized pencil. A beta within
// roundoff of zero is flattened to exactly zero, so infinite eigenvalues
// of a singular pencil are representable without division. Right
// eigenvectors are unit-norm; left eigenvectors are also normalized here,
// though callers following the LAPACK habit re-normalize defensively.
func (e gonumEngine) ZEigGen(a, b []complex128, n int, left, right bool) ([]complex128, []complex128, []complex128, []complex128, error) {
	if err := checkPositive(a, n, n); err != nil {
		return nil, nil, nil, nil, err
	}
	if err := checkPositive(b, n, n); err != nil {
		return nil, nil, nil, nil, err
	}
	qb, rb, err := e.ZQR(b, n, n)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	st := &qzState{
		n: n,
		s: mulZ(conjTransposeZ(qb, n, n), a, n, n, n),
		t: rb,
		q: qb,
		z: identityZ(n),
	}
	st.hessTriangular()
	if !st.iterate() {
		return nil, nil, nil, nil, ErrConvergence
	}

	alpha := make([]complex128, n)
	beta := make([]complex128, n)
	normB := 0.0
	var i int
	for i = range b {
		normB += real(b[i])*real(b[i]) + imag(b[i])*imag(b[i])
	}
	betaFloor := 16 * ulp * math.Sqrt(normB)
	for i = 0; i < n; i++ {
		alpha[i] = st.s[i*n+i]
		beta[i] = st.t[i*n+i]
		if cmplx.Abs(beta[i]) <= betaFloor {
			beta[i] = 0
		}
	}
	var vl, vr []complex128
	if right {
		vr = pencilRightVectors(st, alpha, beta)
	}
	if left {
		vl = pencilLeftVectors(st, alpha, beta)
	}
	return alpha, beta, vl, vr, nil
}

// pencilRightVectors back-substitutes (β·S − α·T)·y = 0 per eigenvalue
// and maps x = Z·y to the original basis.
func pencilRightVectors(st *qzState, alpha, beta []complex128) []complex128 {
	n := st.n
	out := make([]complex128, n*n)
	scale := offDiagNormZ(st.s, n) + offDiagNormZ(st.t, n) + 1
	y := make([]complex128, n)
	var k, i, j int
	for k = 0; k < n; k++ {
		bk, ak := beta[k], alpha[k]
		if bk == 0 && ak == 0 {
			ak = 1 // degenerate pencil entry; pick a basis direction
		}
		for i = range y {
			y[i] = 0
		}
		y[k] = 1
		for i = k - 1; i >= 0; i-- {
			var sum complex128
			for j = i + 1; j <= k; j++ {
				sum += (bk*st.s[i*n+j] - ak*st.t[i*n+j]) * y[j]
			}
			y[i] = -sum / smallDenom(bk*st.s[i*n+i]-ak*st.t[i*n+i], scale)
		}
		var norm float64
		for i = 0; i < n; i++ {
			var s complex128
			for j = 0; j <= k; j++ {
				s += st.z[i*n+j] * y[j]
			}
			out[i*n+k] = s
			norm += real(s)*real(s) + imag(s)*imag(s)
		}
		inv := complex(1/math.Sqrt(norm), 0)
		for i = 0; i < n; i++ {
			out[i*n+k] *= inv
		}
	}
	return out
}

// pencilLeftVectors solves z·(β·S − α·T) = 0 and maps w = Q·conj(z).
func pencilLeftVectors(st *qzState, alpha, beta []complex128) []complex128 {
	n := st.n
	out := make([]complex128, n*n)
	scale := offDiagNormZ(st.s, n) + offDiagNormZ(st.t, n) + 1
	z := make([]complex128, n)
	var k, i, j int
	for k = 0; k < n; k++ {
		bk, ak := beta[k], alpha[k]
		if bk == 0 && ak == 0 {
			ak = 1
		}
		for i = range z {
			z[i] = 0
		}
		z[k] = 1
		for j = k + 1; j < n; j++ {
			var sum complex128
			for i = k; i < j; i++ {
				sum += z[i] * (bk*st.s[i*n+j] - ak*st.t[i*n+j])
			}
			z[j] = -sum / smallDenom(bk*st.s[j*n+j]-ak*st.t[j*n+j], scale)
		}
		var norm float64
		for i = 0; i < n; i++ {
			var s complex128
			for j = k; j < n; j++ {
				s += st.q[i*n+j] * cmplx.Conj(z[j])
			}
			out[i*n+k] = s
			norm += real(s)*real(s) + imag(s)*imag(s)
		}
		inv := complex(1/math.Sqrt(norm), 0)
		for i = 0; i < n; i++ {
			out[i*n+k] *= inv
		}
	}
	return out
}
