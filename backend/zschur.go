// Package backend: complex Schur decomposition and the general complex
// eigenproblem. Hessenberg reduction by Householder similarity followed
// by an implicit single-shift QR iteration with Wilkinson shifts, then
// triangular back-substitution for the eigenvectors.

package backend

import (
	"math"
	"math/cmplx"
)

// ulp is the double-precision unit roundoff used in deflation tests.
const ulp = 0x1p-52

// applyRight computes A ← A·H for the reflector H = I − 2·v·vᴴ/(vᴴv),
// acting on columns h.col..n-1 over all m rows.
func (h zreflector) applyRight(a []complex128, m, n int) {
	var vv float64
	var i, j int
	for i = range h.v {
		vv += real(h.v[i])*real(h.v[i]) + imag(h.v[i])*imag(h.v[i])
	}
	if vv == 0 {
		return
	}
	scale := complex(2/vv, 0)
	for i = 0; i < m; i++ {
		var dot complex128 // row · v
		for j = range h.v {
			dot += a[i*n+h.col+j] * h.v[j]
		}
		dot *= scale
		for j = range h.v {
			a[i*n+h.col+j] -= dot * cmplx.Conj(h.v[j])
		}
	}
}

// zhessenberg reduces a (in place) to upper Hessenberg form by unitary
// similarity and accumulates the transform into q: A_in = Q·H·Qᴴ.
func zhessenberg(a, q []complex128, n int) {
	var col, i int
	for col = 0; col < n-2; col++ {
		norm := 0.0
		for i = col + 1; i < n; i++ {
			e := a[i*n+col]
			norm += real(e)*real(e) + imag(e)*imag(e)
		}
		if norm == 0 {
			continue
		}
		lead := a[(col+1)*n+col]
		phase := complex(1, 0)
		if lead != 0 {
			phase = lead / complex(cmplx.Abs(lead), 0)
		}
		v := make([]complex128, n-col-1)
		for i = col + 1; i < n; i++ {
			v[i-col-1] = a[i*n+col]
		}
		v[0] += phase * complex(math.Sqrt(norm), 0)
		h := zreflector{col: col + 1, v: v}
		h.applyLeft(a, n, n, col) // similarity: H·A on rows col+1..
		h.applyRight(a, n, n)     // ...then A·H on columns col+1..
		h.applyRight(q, n, n)     // accumulate Q ← Q·H
	}
}

// rotateRows applies G = [[c, s], [-conj(s), c]] to rows k and k+1 of the
// n-column matrix a, touching columns from..n-1.
func rotateRows(a []complex128, n, k int, c float64, s complex128, from int) {
	cc := complex(c, 0)
	var j int
	for j = from; j < n; j++ {
		t1, t2 := a[k*n+j], a[(k+1)*n+j]
		a[k*n+j] = cc*t1 + s*t2
		a[(k+1)*n+j] = -cmplx.Conj(s)*t1 + cc*t2
	}
}

// rotateCols applies Gᴴ to columns k and k+1 of a, touching rows 0..upto.
func rotateCols(a []complex128, n, k int, c float64, s complex128, upto int) {
	cc := complex(c, 0)
	var i int
	for i = 0; i <= upto; i++ {
		t1, t2 := a[i*n+k], a[i*n+k+1]
		a[i*n+k] = t1*cc + t2*cmplx.Conj(s)
		a[i*n+k+1] = -t1*s + t2*cc
	}
}

// wilkinsonShift returns the eigenvalue of the trailing 2×2 block of the
// active window closest to its bottom-right entry.
func wilkinsonShift(h []complex128, n, m int) complex128 {
	a11 := h[(m-1)*n+m-1]
	a12 := h[(m-1)*n+m]
	a21 := h[m*n+m-1]
	a22 := h[m*n+m]
	tr := a11 + a22
	det := a11*a22 - a12*a21
	disc := cmplx.Sqrt(tr*tr - 4*det)
	e1 := (tr + disc) / 2
	e2 := (tr - disc) / 2
	if cmplx.Abs(e1-a22) < cmplx.Abs(e2-a22) {
		return e1
	}
	return e2
}

// zhqr runs the implicit single-shift QR iteration on the upper
// Hessenberg matrix h, accumulating rotations into q. On success h is
// the upper triangular Schur factor and A = Q·T·Qᴴ.
func zhqr(h, q []complex128, n int) bool {
	m := n - 1
	its := 0
	var l, k int
	for m > 0 {
		// Deflation scan: find the top of the active block.
		l = m
		for l > 0 {
			sub := cmplx.Abs(h[l*n+l-1])
			thr := ulp * (cmplx.Abs(h[(l-1)*n+l-1]) + cmplx.Abs(h[l*n+l]))
			if thr == 0 {
				thr = ulp * offDiagNormZ(h, n)
			}
			if sub <= thr {
				h[l*n+l-1] = 0
				break
			}
			l--
		}
		if l == m {
			// 1×1 block converged.
			m--
			its = 0
			continue
		}
		if its > 30*n+100 {
			return false
		}
		shift := wilkinsonShift(h, n, m)
		if its > 0 && its%10 == 0 {
			// Exceptional shift to break rare symmetric stalls.
			shift = h[m*n+m] + complex(0.75*cmplx.Abs(h[m*n+m-1]), 0)
		}
		// Implicit bulge chase over the active block.
		x := h[l*n+l] - shift
		y := h[(l+1)*n+l]
		for k = l; k < m; k++ {
			c, s, _ := givens(x, y)
			from := l
			if k > l {
				from = k - 1
			}
			rotateRows(h, n, k, c, s, from)
			rotateCols(h, n, k, c, s, min(k+2, m))
			rotateCols(q, n, k, c, s, n-1)
			if k < m-1 {
				x = h[(k+1)*n+k]
				y = h[(k+2)*n+k]
			}
		}
		its++
	}
	// Scrub the annihilated subdiagonal.
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < i; j++ {
			h[i*n+j] = 0
		}
	}
	return true
}

// ZSchur computes the complex Schur decomposition A = Q·T·Qᴴ with T
// exactly upper triangular (eigenvalues on the diagonal).
func (gonumEngine) ZSchur(a []complex128, n int) ([]complex128, []complex128, error) {
	if err := checkPositive(a, n, n); err != nil {
		return nil, nil, err
	}
	t := cloneZ(a)
	q := identityZ(n)
	zhessenberg(t, q, n)
	if !zhqr(t, q, n) {
		return nil, nil, ErrConvergence
	}
	return q, t, nil
}

// ZEig solves the ordinary complex eigenproblem through the Schur form.
// Right eigenvectors satisfy A·x = λ·x, left ones wᴴ·A = λ·wᴴ; both come
// back as unit-norm columns.
func (e gonumEngine) ZEig(a []complex128, n int, left, right bool) ([]complex128, []complex128, []complex128, error) {
	q, t, err := e.ZSchur(a, n)
	if err != nil {
		return nil, nil, nil, err
	}
	vals := make([]complex128, n)
	var i int
	for i = 0; i < n; i++ {
		vals[i] = t[i*n+i]
	}
	var vl, vr []complex128
	if right {
		vr = rightVectorsFromSchur(q, t, n)
	}
	if left {
		vl = leftVectorsFromSchur(q, t, n)
	}
	return vals, vl, vr, nil
}

// smallDenom guards the triangular solves against exact eigenvalue ties.
func smallDenom(d complex128, scale float64) complex128 {
	guard := ulp * scale
	if guard == 0 {
		guard = ulp
	}
	if cmplx.Abs(d) < guard {
		return complex(guard, 0)
	}
	return d
}

// rightVectorsFromSchur back-substitutes (T − λI)·y = 0 for each diagonal
// eigenvalue and rotates the result back with Q. Column k of the output
// is the unit eigenvector for λ_k = T[k,k].
func rightVectorsFromSchur(q, t []complex128, n int) []complex128 {
	out := make([]complex128, n*n)
	scale := offDiagNormZ(t, n) + cmplx.Abs(t[0])
	y := make([]complex128, n)
	var k, i, j int
	for k = 0; k < n; k++ {
		lambda := t[k*n+k]
		for i = range y {
			y[i] = 0
		}
		y[k] = 1
		for i = k - 1; i >= 0; i-- {
			var sum complex128
			for j = i + 1; j <= k; j++ {
				sum += t[i*n+j] * y[j]
			}
			y[i] = -sum / smallDenom(t[i*n+i]-lambda, scale)
		}
		// x = Q·y, normalized.
		var norm float64
		for i = 0; i < n; i++ {
			var s complex128
			for j = 0; j <= k; j++ {
				s += q[i*n+j] * y[j]
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

// leftVectorsFromSchur solves z·(T − λI) = 0 by forward substitution and
// maps w = Q·conj(z) back to the original basis.
func leftVectorsFromSchur(q, t []complex128, n int) []complex128 {
	out := make([]complex128, n*n)
	scale := offDiagNormZ(t, n) + cmplx.Abs(t[0])
	z := make([]complex128, n)
	var k, i, j int
	for k = 0; k < n; k++ {
		lambda := t[k*n+k]
		for i = range z {
			z[i] = 0
		}
		z[k] = 1
		for j = k + 1; j < n; j++ {
			var sum complex128
			for i = k; i < j; i++ {
				sum += z[i] * t[i*n+j]
			}
			z[j] = -sum / smallDenom(t[j*n+j]-lambda, scale)
		}
		var norm float64
		for i = 0; i < n; i++ {
			var s complex128
			for j = k; j < n; j++ {
				s += q[i*n+j] * cmplx.Conj(z[j])
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
