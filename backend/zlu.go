// Package backend: complex LU with partial pivoting, and the LU-backed
// linear solver.

package backend

import "math/cmplx"

// zgetrf factors a into L and U in place with row pivoting, returning the
// swap vector (LAPACK ipiv convention: row i was swapped with ipiv[i])
// and whether every pivot was nonzero.
func zgetrf(a []complex128, m, n int) (ipiv []int, ok bool) {
	k := min(m, n)
	ipiv = make([]int, k)
	ok = true
	var col, row, i, j, p int
	var best float64
	for col = 0; col < k; col++ {
		// Pick the largest-modulus pivot in the column.
		p, best = col, cmplx.Abs(a[col*n+col])
		for row = col + 1; row < m; row++ {
			if ab := cmplx.Abs(a[row*n+col]); ab > best {
				p, best = row, ab
			}
		}
		ipiv[col] = p
		if p != col {
			for j = 0; j < n; j++ {
				a[col*n+j], a[p*n+j] = a[p*n+j], a[col*n+j]
			}
		}
		piv := a[col*n+col]
		if piv == 0 {
			// Exactly singular; keep factoring the remaining columns.
			ok = false
			continue
		}
		for i = col + 1; i < m; i++ {
			mult := a[i*n+col] / piv
			a[i*n+col] = mult
			for j = col + 1; j < n; j++ {
				a[i*n+j] -= mult * a[col*n+j]
			}
		}
	}
	return ipiv, ok
}

func (gonumEngine) ZLU(a []complex128, m, n int) ([]int, []complex128, []complex128, error) {
	if err := checkPositive(a, m, n); err != nil {
		return nil, nil, nil, err
	}
	k := min(m, n)
	f := cloneZ(a)
	ipiv, _ := zgetrf(f, m, n)

	perm := make([]int, m)
	var i, j int
	for i = range perm {
		perm[i] = i
	}
	for i = 0; i < k; i++ {
		perm[i], perm[ipiv[i]] = perm[ipiv[i]], perm[i]
	}
	l := make([]complex128, m*m)
	u := make([]complex128, m*n)
	for i = 0; i < m; i++ {
		l[i*m+i] = 1
		for j = 0; j < min(i, k); j++ {
			l[i*m+j] = f[i*n+j]
		}
		if i < k {
			for j = i; j < n; j++ {
				u[i*n+j] = f[i*n+j]
			}
		}
	}
	return perm, l, u, nil
}

func (gonumEngine) ZSolve(a []complex128, n int, b []complex128, nrhs int) ([]complex128, error) {
	if err := checkPositive(a, n, n); err != nil {
		return nil, err
	}
	if err := checkPositive(b, n, nrhs); err != nil {
		return nil, err
	}
	f := cloneZ(a)
	ipiv, ok := zgetrf(f, n, n)
	if !ok {
		return nil, ErrSingular
	}
	x := cloneZ(b)
	var i, j, c int
	// Apply the row swaps to the right-hand sides.
	for i = 0; i < n; i++ {
		if p := ipiv[i]; p != i {
			for c = 0; c < nrhs; c++ {
				x[i*nrhs+c], x[p*nrhs+c] = x[p*nrhs+c], x[i*nrhs+c]
			}
		}
	}
	// Forward substitution with unit L.
	for i = 0; i < n; i++ {
		for j = 0; j < i; j++ {
			m := f[i*n+j]
			if m == 0 {
				continue
			}
			for c = 0; c < nrhs; c++ {
				x[i*nrhs+c] -= m * x[j*nrhs+c]
			}
		}
	}
	// Back substitution with U.
	for i = n - 1; i >= 0; i-- {
		d := f[i*n+i]
		for j = i + 1; j < n; j++ {
			m := f[i*n+j]
			if m == 0 {
				continue
			}
			for c = 0; c < nrhs; c++ {
				x[i*nrhs+c] -= m * x[j*nrhs+c]
			}
		}
		for c = 0; c < nrhs; c++ {
			x[i*nrhs+c] /= d
		}
	}
	return x, nil
}
