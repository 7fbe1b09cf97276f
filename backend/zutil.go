// Package backend: shared helpers for the native complex kernels.

package backend

import (
	"math"
	"math/cmplx"
)

func absReal(x float64) float64    { return math.Abs(x) }
func absCplx(z complex128) float64 { return cmplx.Abs(z) }

// cloneZ deep-copies a complex buffer.
func cloneZ(a []complex128) []complex128 {
	return append([]complex128(nil), a...)
}

// identityZ returns the n×n identity.
func identityZ(n int) []complex128 {
	id := make([]complex128, n*n)
	var i int
	for i = 0; i < n; i++ {
		id[i*n+i] = 1
	}
	return id
}

// mulZ returns the (m×k)·(k×n) product.
func mulZ(a, b []complex128, m, k, n int) []complex128 {
	out := make([]complex128, m*n)
	var i, j, p int
	var s complex128
	for i = 0; i < m; i++ {
		for j = 0; j < n; j++ {
			s = 0
			for p = 0; p < k; p++ {
				s += a[i*k+p] * b[p*n+j]
			}
			out[i*n+j] = s
		}
	}
	return out
}

// conjTransposeZ returns Aᴴ for an m×n matrix.
func conjTransposeZ(a []complex128, m, n int) []complex128 {
	out := make([]complex128, n*m)
	var i, j int
	for i = 0; i < m; i++ {
		for j = 0; j < n; j++ {
			out[j*m+i] = cmplx.Conj(a[i*n+j])
		}
	}
	return out
}

// givens computes a complex Givens rotation for the pair (f, g):
//
//	[ c        s ] [f]   [r]
//	[-conj(s)  c ] [g] = [0]
//
// with real non-negative c and c² + |s|² = 1.
func givens(f, g complex128) (c float64, s complex128, r complex128) {
	if g == 0 {
		return 1, 0, f
	}
	if f == 0 {
		return 0, complex(1, 0) * cmplx.Conj(g) / complex(cmplx.Abs(g), 0), complex(cmplx.Abs(g), 0)
	}
	af, ag := cmplx.Abs(f), cmplx.Abs(g)
	norm := math.Hypot(af, ag)
	c = af / norm
	s = (f / complex(af, 0)) * cmplx.Conj(g) / complex(norm, 0)
	r = f / complex(af, 0) * complex(norm, 0)
	return c, s, r
}

// normColumnZ returns the Euclidean norm of column j of an m×n matrix.
func normColumnZ(a []complex128, m, n, j int) float64 {
	var i int
	var sum float64
	for i = 0; i < m; i++ {
		e := a[i*n+j]
		sum += real(e)*real(e) + imag(e)*imag(e)
	}
	return math.Sqrt(sum)
}

// offDiagNormZ returns the Frobenius norm of the strict off-diagonal part
// of an n×n matrix.
func offDiagNormZ(a []complex128, n int) float64 {
	var i, j int
	var sum float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			e := a[i*n+j]
			sum += real(e)*real(e) + imag(e)*imag(e)
		}
	}
	return math.Sqrt(sum)
}
