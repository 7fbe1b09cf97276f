// Package backend: Hermitian eigenproblem by cyclic Jacobi rotations.

package backend

import (
	"math"
	"math/cmplx"
	"sort"
)

// jacobiMaxSweeps bounds the cyclic sweeps; Jacobi converges quadratically
// once the off-diagonal mass is small, so the bound is generous.
const jacobiMaxSweeps = 60

// ZEigHerm solves the Hermitian eigenproblem. Only the lower triangle of
// a is read (mirrored by conjugation), so asymmetric input is silently
// Hermitianized — callers who care must verify Hermitian-ness first.
// Eigenvalues are real, ascending; eigenvector columns are orthonormal.
func (gonumEngine) ZEigHerm(a []complex128, n int, vectors bool) ([]float64, []complex128, error) {
	if err := checkPositive(a, n, n); err != nil {
		return nil, nil, err
	}
	// Mirror the lower triangle into a full Hermitian working copy.
	w := make([]complex128, n*n)
	var i, j int
	for i = 0; i < n; i++ {
		w[i*n+i] = complex(real(a[i*n+i]), 0)
		for j = 0; j < i; j++ {
			w[i*n+j] = a[i*n+j]
			w[j*n+i] = cmplx.Conj(a[i*n+j])
		}
	}
	v := identityZ(n)

	frob := 0.0
	for i = range w {
		frob += real(w[i])*real(w[i]) + imag(w[i])*imag(w[i])
	}
	frob = math.Sqrt(frob)
	tol := 1e-14 * frob

	var sweep, p, q int
	for sweep = 0; sweep < jacobiMaxSweeps; sweep++ {
		if offDiagNormZ(w, n) <= tol {
			break
		}
		for p = 0; p < n-1; p++ {
			for q = p + 1; q < n; q++ {
				jacobiRotate(w, v, n, p, q)
			}
		}
	}
	if offDiagNormZ(w, n) > tol && tol > 0 {
		return nil, nil, ErrConvergence
	}

	vals := make([]float64, n)
	for i = 0; i < n; i++ {
		vals[i] = real(w[i*n+i])
	}
	// Sort ascending, carrying eigenvector columns along.
	idx := make([]int, n)
	for i = range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(x, y int) bool { return vals[idx[x]] < vals[idx[y]] })
	sorted := make([]float64, n)
	var vecs []complex128
	if vectors {
		vecs = make([]complex128, n*n)
	}
	for j = 0; j < n; j++ {
		sorted[j] = vals[idx[j]]
		if vectors {
			for i = 0; i < n; i++ {
				vecs[i*n+j] = v[i*n+idx[j]]
			}
		}
	}
	return sorted, vecs, nil
}

// jacobiRotate annihilates w[p,q] with the unitary plane rotation
// J = [[c, s·φ], [−s·conj(φ), c]] (φ the phase of w[p,q]), updating
// w ← Jᴴ·w·J and v ← v·J.
func jacobiRotate(w, v []complex128, n, p, q int) {
	apq := w[p*n+q]
	b := cmplx.Abs(apq)
	if b == 0 {
		return
	}
	app, aqq := real(w[p*n+p]), real(w[q*n+q])
	phi := apq / complex(b, 0)

	tau := (aqq - app) / (2 * b)
	var t float64
	if tau >= 0 {
		t = 1 / (tau + math.Sqrt(1+tau*tau))
	} else {
		t = -1 / (-tau + math.Sqrt(1+tau*tau))
	}
	c := 1 / math.Sqrt(1+t*t)
	s := t * c

	cc := complex(c, 0)
	sp := complex(s, 0) * phi
	var i int
	// Column update: w ← w·J, v ← v·J.
	for i = 0; i < n; i++ {
		wip, wiq := w[i*n+p], w[i*n+q]
		w[i*n+p] = cc*wip - cmplx.Conj(sp)*wiq
		w[i*n+q] = sp*wip + cc*wiq
		vip, viq := v[i*n+p], v[i*n+q]
		v[i*n+p] = cc*vip - cmplx.Conj(sp)*viq
		v[i*n+q] = sp*vip + cc*viq
	}
	// Row update: w ← Jᴴ·w.
	for i = 0; i < n; i++ {
		wpi, wqi := w[p*n+i], w[q*n+i]
		w[p*n+i] = cc*wpi - sp*wqi
		w[q*n+i] = cmplx.Conj(sp)*wpi + cc*wqi
	}
	// Scrub rounding on the annihilated pair and keep the diagonal real.
	w[p*n+q] = 0
	w[q*n+p] = 0
	w[p*n+p] = complex(real(w[p*n+p]), 0)
	w[q*n+q] = complex(real(w[q*n+q]), 0)
}
