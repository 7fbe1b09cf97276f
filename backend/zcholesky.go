// Package backend: complex (Hermitian) Cholesky factorization.

package backend

import (
	"math"
	"math/cmplx"
)

// ZCholesky factors a Hermitian positive definite matrix as A = L·Lᴴ with
// L lower triangular and a real positive diagonal. Only the lower triangle
// of a is read; the Hermitian-ness of the input is the caller's contract
// (the dense layer checks it first and reports ErrNotHermitian itself).
// A non-positive pivot yields ErrNotPositiveDefinite.
func (gonumEngine) ZCholesky(a []complex128, n int) ([]complex128, error) {
	if err := checkPositive(a, n, n); err != nil {
		return nil, err
	}
	l := make([]complex128, n*n)
	var i, j, k int
	for i = 0; i < n; i++ {
		for j = 0; j <= i; j++ {
			sum := a[i*n+j]
			for k = 0; k < j; k++ {
				sum -= l[i*n+k] * cmplx.Conj(l[j*n+k])
			}
			if i == j {
				// The pivot of a Hermitian PD matrix is real positive.
				d := real(sum)
				if d <= 0 || math.IsNaN(d) || math.IsInf(d, 0) {
					return nil, ErrNotPositiveDefinite
				}
				l[i*n+j] = complex(math.Sqrt(d), 0)
			} else {
				l[i*n+j] = sum / l[j*n+j]
			}
		}
	}
	return l, nil
}
